package mocks

import (
	"context"

	"github.com/phrazzld/clinic-api/internal/domain"
	"github.com/phrazzld/clinic-api/internal/service/auth"
	"github.com/phrazzld/clinic-api/internal/store"
)

// MockUserFinder implements auth.UserFinder. Without GetByLoginIDFn it
// serves Users and reports store.ErrUserNotFound for unknown login IDs.
type MockUserFinder struct {
	GetByLoginIDFn func(ctx context.Context, loginID string) (*domain.User, error)
	Users          map[string]*domain.User
}

var _ auth.UserFinder = (*MockUserFinder)(nil)

// GetByLoginID implements auth.UserFinder.
func (m *MockUserFinder) GetByLoginID(ctx context.Context, loginID string) (*domain.User, error) {
	if m.GetByLoginIDFn != nil {
		return m.GetByLoginIDFn(ctx, loginID)
	}
	if u, ok := m.Users[loginID]; ok {
		return u, nil
	}
	return nil, store.ErrUserNotFound
}

// MockRegistrar mocks account signup.
type MockRegistrar struct {
	SignupFn func(ctx context.Context, input auth.SignupInput) (*domain.User, error)
}

// Signup calls SignupFn.
func (m *MockRegistrar) Signup(ctx context.Context, input auth.SignupInput) (*domain.User, error) {
	if m.SignupFn != nil {
		return m.SignupFn(ctx, input)
	}
	return nil, nil
}

// MockSessionStarter mocks credential login.
type MockSessionStarter struct {
	LoginFn func(ctx context.Context, loginID, password string) (auth.TokenPair, error)
}

// Login calls LoginFn.
func (m *MockSessionStarter) Login(ctx context.Context, loginID, password string) (auth.TokenPair, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, loginID, password)
	}
	return auth.TokenPair{}, nil
}
