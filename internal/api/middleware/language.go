package middleware

import (
	"context"
	"net/http"

	"github.com/hszk-dev/openveo-repository/internal/lang"
)

// Language negotiates the response language from the lang query
// parameter, then the Accept-Language header.
func Language(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var preferences []string
		if q := r.URL.Query().Get("lang"); q != "" {
			preferences = append(preferences, q)
		}
		preferences = append(preferences, r.Header.Get("Accept-Language"))

		localizer := lang.Match(preferences...)
		w.Header().Set("Content-Language", localizer.Tag().String())
		w.Header().Add("Vary", "Accept-Language")

		ctx := context.WithValue(r.Context(), LocalizerKey, localizer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetLocalizer retrieves the negotiated Localizer from context, English
// when none was negotiated.
func GetLocalizer(ctx context.Context) lang.Localizer {
	if l, ok := ctx.Value(LocalizerKey).(lang.Localizer); ok {
		return l
	}
	return lang.English()
}
