package app

import (
	"fmt"

	"github.com/pkg/errors"
)

// TransportError is returned when api request couldn't be made or returned non-success status.
type TransportError struct {
	Path       string
	StatusCode int
	Err        error
}

// Error implements error interface
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("request %s: got http status %d", e.Path, e.StatusCode)
	}
	return fmt.Sprintf("request %s: %v", e.Path, e.Err)
}

// Unwrap returns underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// Cause returns underlying error, for github.com/pkg/errors.
func (e *TransportError) Cause() error {
	return e.Err
}

// MalformedResponseError is returned when api response is missing expected field or has unexpected shape.
type MalformedResponseError struct {
	Path   string
	Field  string
	Reason string
}

// Error implements error interface
func (e *MalformedResponseError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("malformed response from %s: %s", e.Path, e.Reason)
	}
	return fmt.Sprintf("malformed response from %s: field %q %s", e.Path, e.Field, e.Reason)
}

// IsTransportError checks if given error is caused by failed api request.
func IsTransportError(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsMalformedResponseError checks if given error is caused by unexpected api response.
func IsMalformedResponseError(err error) bool {
	var me *MalformedResponseError
	return errors.As(err, &me)
}
