package auth

import (
	"context"
	"time"
)

// JWTService issues and validates the signed tokens of a login session.
type JWTService interface {
	// GenerateAccessToken creates a short-lived access token whose only
	// custom claim is the login ID.
	GenerateAccessToken(ctx context.Context, loginID string) (string, error)

	// ValidateAccessToken verifies signature and expiry and returns the
	// embedded claims.
	ValidateAccessToken(ctx context.Context, tokenString string) (*AccessClaims, error)

	// GenerateRefreshToken creates a long-lived refresh token carrying only
	// registered claims.
	GenerateRefreshToken(ctx context.Context) (string, error)
}

// AccessClaims is the validated content of an access token.
type AccessClaims struct {
	LoginID   string    `json:"loginId"`
	ExpiresAt time.Time `json:"exp"`
}

// TokenPair is the result of a successful login.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
