package report

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error code for save failures.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"
	// CodeMissingGameKind indicates no game kind was resolvable at
	// save time. This is a programmer error in the calling page.
	CodeMissingGameKind Code = "MISSING_GAME_KIND"
	// CodeTransport indicates the HTTP exchange never completed
	// (network, DNS, or connection failure).
	CodeTransport Code = "TRANSPORT_FAILURE"
	// CodeServer indicates the server answered with a non-ok status.
	CodeServer Code = "SERVER_REJECTED"
)

// Error is a save failure with a code and, for server rejections, the
// HTTP status and the message surfaced by the response body.
type Error struct {
	Code    Code
	Status  int
	Message string
	cause   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s (%d): %s", e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// GetCode extracts the error code from any error. Returns CodeUnknown
// when the error is not a report error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// IsCode checks whether the error carries the specified code.
func IsCode(err error, code Code) bool {
	return GetCode(err) == code
}
