package repository

import (
	"errors"
	"fmt"
)

var (
	// ErrNotConfigured is returned when the OpenVeo web service client
	// cannot be built from the configuration.
	ErrNotConfigured = errors.New("openveo web service is not configured")

	// ErrConnectionFailed is returned when the web service cannot be
	// reached or its response cannot be understood.
	ErrConnectionFailed = errors.New("openveo web service connection failed")
)

// RemoteError is an error payload returned by the web service.
// Code and Module are kept as sent, empty when absent.
type RemoteError struct {
	Code   string
	Module string
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("openveo web service error: code %s, module %s", e.Code, e.Module)
}
