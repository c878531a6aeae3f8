package middleware

import (
	"context"
	"errors"
	"strings"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/dafibh/fortuna/ledger-gateway/internal/session"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	// SessionKey is the context key for the resolved session
	SessionKey contextKey = "session"
	// SessionIDKey is the context key for the session ID
	SessionIDKey contextKey = "session_id"
)

// SessionResolver resolves a backend bearer token to a session
type SessionResolver interface {
	Attach(ctx context.Context, token string) (*session.Session, error)
}

// AuthMiddleware resolves the bearer token of each request to a session
type AuthMiddleware struct {
	resolver SessionResolver
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(resolver SessionResolver) *AuthMiddleware {
	return &AuthMiddleware{resolver: resolver}
}

// BearerToken extracts the token from an Authorization header value
func BearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// Authenticate returns an Echo middleware that attaches the caller's session
func (m *AuthMiddleware) Authenticate() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return unauthorizedError(c, "missing authorization header")
			}

			token, ok := BearerToken(authHeader)
			if !ok {
				return unauthorizedError(c, "invalid authorization header format")
			}

			sess, err := m.resolver.Attach(c.Request().Context(), token)
			if err != nil {
				if errors.Is(err, domain.ErrUnauthorized) {
					log.Debug().Err(err).Msg("Token rejected")
					return unauthorizedError(c, "invalid or expired token")
				}
				log.Error().Err(err).Msg("Failed to open session")
				return unavailableError(c, "could not reach the accounting backend")
			}

			WithSession(c, sess)
			return next(c)
		}
	}
}

// GetSession extracts the session from the context
func GetSession(c echo.Context) *session.Session {
	if sess, ok := c.Request().Context().Value(SessionKey).(*session.Session); ok {
		return sess
	}
	return nil
}

// GetSessionID extracts the session ID from the context
func GetSessionID(c echo.Context) string {
	if id, ok := c.Request().Context().Value(SessionIDKey).(string); ok {
		return id
	}
	return ""
}

// WithSession stores sess in the request context the way Authenticate does
func WithSession(c echo.Context, sess *session.Session) {
	ctx := context.WithValue(c.Request().Context(), SessionKey, sess)
	ctx = context.WithValue(ctx, SessionIDKey, sess.ID)
	c.SetRequest(c.Request().WithContext(ctx))
}
