package handler

import (
	"errors"
	"net/http"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/dafibh/fortuna/ledger-gateway/internal/middleware"
	"github.com/dafibh/fortuna/ledger-gateway/internal/session"
	"github.com/dafibh/fortuna/ledger-gateway/internal/store"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// ProblemDetails represents an RFC 7807 Problem Details response
type ProblemDetails struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail,omitempty"`
	Instance string            `json:"instance,omitempty"`
	Errors   []ValidationError `json:"errors,omitempty"`
}

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error types
const (
	ErrorTypeValidation   = "https://ledger-gateway.app/errors/validation"
	ErrorTypeNotFound     = "https://ledger-gateway.app/errors/not-found"
	ErrorTypeUnauthorized = "https://ledger-gateway.app/errors/unauthorized"
	ErrorTypeBadGateway   = "https://ledger-gateway.app/errors/upstream-unavailable"
	ErrorTypeInternal     = "https://ledger-gateway.app/errors/internal"
)

// NewValidationError creates a validation error response
func NewValidationError(c echo.Context, detail string, errors []ValidationError) error {
	return c.JSON(http.StatusBadRequest, ProblemDetails{
		Type:     ErrorTypeValidation,
		Title:    "Validation Error",
		Status:   http.StatusBadRequest,
		Detail:   detail,
		Instance: c.Request().URL.Path,
		Errors:   errors,
	})
}

// NewNotFoundError creates a not found error response
func NewNotFoundError(c echo.Context, detail string) error {
	return c.JSON(http.StatusNotFound, ProblemDetails{
		Type:     ErrorTypeNotFound,
		Title:    "Not Found",
		Status:   http.StatusNotFound,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewUnauthorizedError creates an unauthorized error response
func NewUnauthorizedError(c echo.Context, detail string) error {
	return c.JSON(http.StatusUnauthorized, ProblemDetails{
		Type:     ErrorTypeUnauthorized,
		Title:    "Unauthorized",
		Status:   http.StatusUnauthorized,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewBadGatewayError creates a response for a backend that failed or could not be reached
func NewBadGatewayError(c echo.Context, detail string) error {
	return c.JSON(http.StatusBadGateway, ProblemDetails{
		Type:     ErrorTypeBadGateway,
		Title:    "Bad Gateway",
		Status:   http.StatusBadGateway,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewInternalError creates an internal error response
func NewInternalError(c echo.Context, detail string) error {
	return c.JSON(http.StatusInternalServerError, ProblemDetails{
		Type:     ErrorTypeInternal,
		Title:    "Internal Server Error",
		Status:   http.StatusInternalServerError,
		Detail:   detail,
		Instance: c.Request().URL.Path,
	})
}

// NewDomainError renders err from a store or the session manager. fallback
// is used when the backend sent no message of its own.
func NewDomainError(c echo.Context, err error, fallback string) error {
	detail := domain.ErrorMessage(err, fallback)

	switch {
	case errors.Is(err, domain.ErrNameRequired):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "name", Message: "Name is required"},
		})
	case errors.Is(err, domain.ErrNameTooLong):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "name", Message: "Name must be 255 characters or less"},
		})
	case errors.Is(err, domain.ErrInvalidOrder):
		return NewValidationError(c, "Validation failed", []ValidationError{
			{Field: "ids", Message: "Must list every category exactly once"},
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return NewValidationError(c, domain.ErrorMessage(err, "Invalid input"), nil)
	case errors.Is(err, domain.ErrNotFound):
		return NewNotFoundError(c, detail)
	case errors.Is(err, domain.ErrUnauthorized), errors.Is(err, domain.ErrSessionNotFound):
		return NewUnauthorizedError(c, "Session expired, please log in again")
	case errors.Is(err, domain.ErrTransport):
		return NewBadGatewayError(c, "Could not reach the accounting backend")
	}

	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		return NewBadGatewayError(c, detail)
	}

	log.Error().Err(err).Str("path", c.Request().URL.Path).Msg(fallback)
	return NewInternalError(c, fallback)
}

// requireSession returns the caller's session, writing a 401 when there is none
func requireSession(c echo.Context) (*session.Session, error) {
	sess := middleware.GetSession(c)
	if sess == nil {
		return nil, NewUnauthorizedError(c, "Session required")
	}
	return sess, nil
}

// ListResponse wraps a store snapshot with the store's bookkeeping, so a
// client can show a stale list together with the last error.
type ListResponse[T any] struct {
	Items   []T    `json:"items"`
	Loading bool   `json:"loading"`
	Error   string `json:"error,omitempty"`
}

// storeStatus is the bookkeeping every store reports next to its snapshot
type storeStatus = store.Status

func newListResponse[S, T any](items []S, status storeStatus, convert func(S) T) ListResponse[T] {
	out := make([]T, 0, len(items))
	for _, item := range items {
		out = append(out, convert(item))
	}
	return ListResponse[T]{Items: out, Loading: status.Loading, Error: status.Error}
}
