package domain

import "context"

type User struct {
	ID               int32   `json:"id"`
	Email            string  `json:"email"`
	IsGoogleUser     bool    `json:"is_google_user"`
	TwoFactorEnabled bool    `json:"two_factor_enabled"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        *string `json:"updated_at"`
}

// Credentials are the username (email) and password sent to the backend's login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Token is the backend's login response. When Requires2FA is set the access
// token is a temporary one that only the 2FA verify endpoint accepts.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	Requires2FA bool   `json:"requires_2fa,omitempty"`
}

type AuthAPI interface {
	Login(ctx context.Context, creds Credentials) (*Token, error)
	VerifyTwoFactor(ctx context.Context, creds Credentials, code string) (*Token, error)
	Register(ctx context.Context, input *RegisterRequest) (*User, error)
}
