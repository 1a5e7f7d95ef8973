package auth

import (
	"context"
)

type AuthService interface {
	// Register creates a Pending account; no tokens are issued until an
	// admin approves it.
	Register(ctx context.Context, req RegisterRequest) (RegisterResponse, error)

	// Login checks credentials and the approval gate (admins bypass it).
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)

	// RefreshToken exchanges a refresh token for a new access token.
	RefreshToken(ctx context.Context, req RefreshTokenRequest) (AccessTokenResponse, error)

	// Logout revokes the caller's refresh token and, when presented, the
	// access token, so neither survives the session.
	Logout(ctx context.Context, req RefreshTokenRequest, accessToken string) error
}
