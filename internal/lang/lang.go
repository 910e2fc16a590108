// Package lang holds the user facing strings in every supported language.
package lang

import (
	"strings"

	"golang.org/x/text/language"
)

// placeholder is replaced by the argument of a string.
const placeholder = "{$a}"

var supported = []language.Tag{language.English, language.French}

var catalogs = map[language.Tag]map[string]string{
	language.English: english,
	language.French:  french,
}

var matcher = language.NewMatcher(supported)

// Localizer returns strings in one language.
type Localizer struct {
	tag language.Tag
}

// Match returns the Localizer best matching the given preferences, which
// may be Accept-Language header values or plain language tags. English
// is used when nothing matches.
func Match(preferences ...string) Localizer {
	_, index := language.MatchStrings(matcher, preferences...)
	return Localizer{tag: supported[index]}
}

// English returns the default Localizer.
func English() Localizer {
	return Localizer{tag: language.English}
}

// Tag returns the language of the Localizer.
func (l Localizer) Tag() language.Tag {
	return l.tag
}

// String returns the string for key with {$a} replaced by arg when
// given. Keys missing from the language fall back to English, unknown
// keys are returned as [[key]].
func (l Localizer) String(key string, arg ...string) string {
	s, ok := catalogs[l.tag][key]
	if !ok {
		s, ok = english[key]
	}
	if !ok {
		return "[[" + key + "]]"
	}

	if len(arg) > 0 {
		s = strings.ReplaceAll(s, placeholder, arg[0])
	}
	return s
}
