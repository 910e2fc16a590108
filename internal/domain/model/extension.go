package model

import (
	"errors"
	"strings"
)

// AnyType is the accepted type sent by host fields accepting every file.
const AnyType = "*"

var ErrNoCompatibleType = errors.New("no compatible file type")

// SelectExtension picks the extension stamped on a reference file name.
//
// When accepted contains AnyType the first supported extension is used.
// Otherwise the first supported extension also present in accepted wins,
// so the order of supported is significant. Returns ErrNoCompatibleType
// when nothing matches.
func SelectExtension(accepted, supported []string) (string, error) {
	if len(supported) == 0 {
		return "", ErrNoCompatibleType
	}

	for _, a := range accepted {
		if strings.TrimSpace(a) == AnyType {
			return supported[0], nil
		}
	}

	for _, s := range supported {
		for _, a := range accepted {
			if strings.EqualFold(strings.TrimSpace(a), s) {
				return s, nil
			}
		}
	}

	return "", ErrNoCompatibleType
}
