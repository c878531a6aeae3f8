package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/dafibh/fortuna/ledger-gateway/internal/domain"
	"github.com/dafibh/fortuna/ledger-gateway/internal/session"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	sessions *session.Manager
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(sessions *session.Manager) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
	}
}

// LoginRequest accepts the backend's form fields or the same names as JSON
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// VerifyTwoFactorRequest completes a login that required a second factor
type VerifyTwoFactorRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	Token    string `json:"token" form:"token"`
}

// RegisterRequest represents the register request body
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents the response to a login attempt. SessionID is
// empty while the backend still waits for a second factor.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	Requires2FA bool   `json:"requires2fa"`
	SessionID   string `json:"sessionId,omitempty"`
}

// UserResponse represents a registered user in API responses
type UserResponse struct {
	ID               int32  `json:"id"`
	Email            string `json:"email"`
	TwoFactorEnabled bool   `json:"twoFactorEnabled"`
}

// SessionResponse describes the caller's session
type SessionResponse struct {
	SessionID string     `json:"sessionId"`
	Subject   string     `json:"subject"`
	ExpiresAt *time.Time `json:"expiresAt"`
}

// Login godoc
// @Summary Log in
// @Description Exchange credentials for a backend access token and open a session. A 2FA account answers with requires2fa and no token.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 502 {object} ProblemDetails
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if fieldErrs := credentialErrors(req.Username, req.Password); len(fieldErrs) > 0 {
		return NewValidationError(c, "Validation failed", fieldErrs)
	}

	sess, err := h.sessions.Login(c.Request().Context(), domain.Credentials{Username: req.Username, Password: req.Password})
	if err != nil {
		var twoFactor *session.TwoFactorError
		if errors.As(err, &twoFactor) {
			return c.JSON(http.StatusOK, LoginResponse{
				AccessToken: twoFactor.Token.AccessToken,
				TokenType:   twoFactor.Token.TokenType,
				Requires2FA: true,
			})
		}
		return loginError(c, err)
	}

	log.Info().Str("session_id", sess.ID).Str("subject", sess.Subject).Msg("User logged in")

	return c.JSON(http.StatusOK, loginResponse(sess))
}

// VerifyTwoFactor godoc
// @Summary Complete a 2FA login
// @Description Repeat the credentials with the one-time code to obtain the access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body VerifyTwoFactorRequest true "Credentials and one-time code"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} ProblemDetails
// @Failure 401 {object} ProblemDetails
// @Failure 502 {object} ProblemDetails
// @Router /auth/login/2fa/verify [post]
func (h *AuthHandler) VerifyTwoFactor(c echo.Context) error {
	var req VerifyTwoFactorRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	fieldErrs := credentialErrors(req.Username, req.Password)
	if req.Token == "" {
		fieldErrs = append(fieldErrs, ValidationError{Field: "token", Message: "Code is required"})
	}
	if len(fieldErrs) > 0 {
		return NewValidationError(c, "Validation failed", fieldErrs)
	}

	sess, err := h.sessions.VerifyTwoFactor(c.Request().Context(), domain.Credentials{Username: req.Username, Password: req.Password}, req.Token)
	if err != nil {
		return loginError(c, err)
	}

	log.Info().Str("session_id", sess.ID).Str("subject", sess.Subject).Msg("User logged in with 2FA")

	return c.JSON(http.StatusOK, loginResponse(sess))
}

// Register godoc
// @Summary Register a user
// @Description Create a backend user account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration request"
// @Success 201 {object} UserResponse
// @Failure 400 {object} ProblemDetails
// @Failure 502 {object} ProblemDetails
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}
	if fieldErrs := credentialErrors(req.Email, req.Password); len(fieldErrs) > 0 {
		return NewValidationError(c, "Validation failed", fieldErrs)
	}

	user, err := h.sessions.Register(c.Request().Context(), &domain.RegisterRequest{Email: req.Email, Password: req.Password})
	if err != nil {
		return NewDomainError(c, err, "Registration failed")
	}

	log.Info().Int32("user_id", user.ID).Msg("User registered")

	return c.JSON(http.StatusCreated, UserResponse{
		ID:               user.ID,
		Email:            user.Email,
		TwoFactorEnabled: user.TwoFactorEnabled,
	})
}

// Me godoc
// @Summary Get the current session
// @Description Describe the session the bearer token resolves to
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} SessionResponse
// @Failure 401 {object} ProblemDetails
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	resp := SessionResponse{SessionID: sess.ID, Subject: sess.Subject}
	if !sess.ExpiresAt.IsZero() {
		expiresAt := sess.ExpiresAt.UTC()
		resp.ExpiresAt = &expiresAt
	}
	return c.JSON(http.StatusOK, resp)
}

// Logout godoc
// @Summary Log out
// @Description Close the caller's session and notify its WebSocket clients
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 204
// @Failure 401 {object} ProblemDetails
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	sess, err := requireSession(c)
	if sess == nil {
		return err
	}

	if err := h.sessions.Logout(sess.ID); err != nil {
		log.Debug().Err(err).Str("session_id", sess.ID).Msg("Session already gone at logout")
	}
	return c.NoContent(http.StatusNoContent)
}

func credentialErrors(username, password string) []ValidationError {
	var errs []ValidationError
	if username == "" {
		errs = append(errs, ValidationError{Field: "username", Message: "Username is required"})
	}
	if password == "" {
		errs = append(errs, ValidationError{Field: "password", Message: "Password is required"})
	}
	return errs
}

// loginError renders a failed login. Unlike other calls, a 401 here means
// bad credentials and carries the backend's message.
func loginError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrUnauthorized) {
		return NewUnauthorizedError(c, domain.ErrorMessage(err, "Incorrect email or password"))
	}
	return NewDomainError(c, err, "Login failed")
}

func loginResponse(sess *session.Session) LoginResponse {
	return LoginResponse{
		AccessToken: sess.Token(),
		TokenType:   "bearer",
		SessionID:   sess.ID,
	}
}
