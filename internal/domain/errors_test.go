package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestAPIError_Is(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		sentinel error
	}{
		{"transport", &APIError{Kind: ErrorKindTransport, Err: errors.New("dial tcp: refused")}, ErrTransport},
		{"validation", &APIError{Kind: ErrorKindValidation, Status: 422}, ErrInvalidInput},
		{"unauthorized", &APIError{Kind: ErrorKindUnauthorized, Status: 401}, ErrUnauthorized},
		{"not found", &APIError{Kind: ErrorKindNotFound, Status: 404}, ErrNotFound},
		{"server", &APIError{Kind: ErrorKindServer, Status: 503}, ErrInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("list accounts: %w", tt.err)
			if !errors.Is(wrapped, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", wrapped, tt.sentinel)
			}
		})
	}
}

func TestAPIError_KeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := &APIError{Kind: ErrorKindTransport, Err: cause}
	if !errors.Is(err, cause) {
		t.Error("expected the underlying cause to be reachable")
	}
}

func TestAPIError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *APIError
		want string
	}{
		{"transport with cause", &APIError{Kind: ErrorKindTransport, Err: errors.New("timeout")}, "transport: timeout"},
		{"status with detail", &APIError{Kind: ErrorKindValidation, Status: 400, Detail: "Amount must be positive"}, "validation (status 400): Amount must be positive"},
		{"status only", &APIError{Kind: ErrorKindServer, Status: 500}, "server (status 500)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	withDetail := fmt.Errorf("create: %w", &APIError{Kind: ErrorKindValidation, Status: 400, Detail: "Account name already exists"})
	if got := ErrorMessage(withDetail, "Failed to create account"); got != "Account name already exists" {
		t.Errorf("ErrorMessage() = %q, want backend detail", got)
	}

	noDetail := &APIError{Kind: ErrorKindServer, Status: 500}
	if got := ErrorMessage(noDetail, "Failed to create account"); got != "Failed to create account" {
		t.Errorf("ErrorMessage() = %q, want fallback", got)
	}

	if got := ErrorMessage(ErrNameRequired, "fallback"); got != "fallback" {
		t.Errorf("ErrorMessage() = %q, want fallback for non-API errors", got)
	}
}
