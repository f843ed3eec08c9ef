package mocks

import (
	"context"

	"github.com/phrazzld/clinic-api/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing
type MockJWTService struct {
	GenerateAccessTokenFn  func(ctx context.Context, loginID string) (string, error)
	ValidateAccessTokenFn  func(ctx context.Context, tokenString string) (*auth.AccessClaims, error)
	GenerateRefreshTokenFn func(ctx context.Context) (string, error)

	// Default values used when functions aren't explicitly defined
	Token        string
	RefreshToken string
	Err          error
	ValidateErr  error
	Claims       *auth.AccessClaims
}

var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateAccessToken implements auth.JWTService.
func (m *MockJWTService) GenerateAccessToken(ctx context.Context, loginID string) (string, error) {
	if m.GenerateAccessTokenFn != nil {
		return m.GenerateAccessTokenFn(ctx, loginID)
	}
	return m.Token, m.Err
}

// ValidateAccessToken implements auth.JWTService.
func (m *MockJWTService) ValidateAccessToken(ctx context.Context, tokenString string) (*auth.AccessClaims, error) {
	if m.ValidateAccessTokenFn != nil {
		return m.ValidateAccessTokenFn(ctx, tokenString)
	}
	return m.Claims, m.ValidateErr
}

// GenerateRefreshToken implements auth.JWTService.
func (m *MockJWTService) GenerateRefreshToken(ctx context.Context) (string, error) {
	if m.GenerateRefreshTokenFn != nil {
		return m.GenerateRefreshTokenFn(ctx)
	}
	return m.RefreshToken, m.Err
}
