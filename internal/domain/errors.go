package domain

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	ErrNotFound          = errors.New("resource not found")
	ErrInvalidInput      = errors.New("invalid input")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrForbidden         = errors.New("forbidden")
	ErrInternalError     = errors.New("internal error")
	ErrTransport         = errors.New("backend unreachable")
	ErrSessionNotFound   = errors.New("session not found")
	ErrTwoFactorRequired = errors.New("two-factor verification required")
	ErrAccountNotFound   = errors.New("account not found")
	ErrNameRequired      = errors.New("name is required")
	ErrNameTooLong       = errors.New("name exceeds maximum length")
	ErrInvalidOrder      = errors.New("category order must be a permutation of the current categories")
)

// Validation constants
const (
	MaxAccountNameLength = 255
)

// ErrorKind classifies a failed backend call.
type ErrorKind string

const (
	ErrorKindTransport    ErrorKind = "transport"
	ErrorKindValidation   ErrorKind = "validation"
	ErrorKindUnauthorized ErrorKind = "unauthorized"
	ErrorKindNotFound     ErrorKind = "not_found"
	ErrorKindServer       ErrorKind = "server"
)

// APIError is returned by the upstream client for every failed call.
// Detail carries the backend's human-readable message when it sent one.
type APIError struct {
	Kind   ErrorKind
	Status int
	Detail string
	Err    error
}

func (e *APIError) Error() string {
	if e.Status == 0 {
		if e.Err != nil {
			return fmt.Sprintf("%s: %v", e.Kind, e.Err)
		}
		return string(e.Kind)
	}
	if e.Detail != "" {
		return fmt.Sprintf("%s (status %d): %s", e.Kind, e.Status, e.Detail)
	}
	return fmt.Sprintf("%s (status %d)", e.Kind, e.Status)
}

// Unwrap maps the error kind onto the matching sentinel so callers can use errors.Is.
func (e *APIError) Unwrap() []error {
	var sentinel error
	switch e.Kind {
	case ErrorKindTransport:
		sentinel = ErrTransport
	case ErrorKindValidation:
		sentinel = ErrInvalidInput
	case ErrorKindUnauthorized:
		sentinel = ErrUnauthorized
	case ErrorKindNotFound:
		sentinel = ErrNotFound
	default:
		sentinel = ErrInternalError
	}
	if e.Err != nil {
		return []error{sentinel, e.Err}
	}
	return []error{sentinel}
}

// ErrorMessage returns the message a view should show for err: the backend's
// detail when one was sent, otherwise fallback.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apiErr.Detail
	}
	return fallback
}
