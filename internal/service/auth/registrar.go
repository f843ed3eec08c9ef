package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/clinic-api/internal/domain"
	"github.com/phrazzld/clinic-api/internal/platform/logger"
	"github.com/phrazzld/clinic-api/internal/store"
)

// UserCreator persists new users.
type UserCreator interface {
	Create(ctx context.Context, user *domain.User) error
}

// SignupInput carries everything needed to open an account.
type SignupInput struct {
	LoginID  string
	Password string
	Name     string
	Phone    string
	IDNumber string
	Role     domain.Role
}

// AccountRegistrar creates accounts with hashed passwords.
type AccountRegistrar struct {
	users  UserCreator
	hasher PasswordHasher
	logger *slog.Logger
}

// NewAccountRegistrar creates an AccountRegistrar.
func NewAccountRegistrar(users UserCreator, hasher PasswordHasher, logger *slog.Logger) *AccountRegistrar {
	if users == nil || hasher == nil {
		panic("account registrar dependencies cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AccountRegistrar{
		users:  users,
		hasher: hasher,
		logger: logger.With(slog.String("component", "account_registrar")),
	}
}

// Signup creates a user. An empty role defaults to customer. Returns
// store.ErrLoginIDExists when the login ID is taken by a live account.
func (r *AccountRegistrar) Signup(ctx context.Context, input SignupInput) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, r.logger)

	if input.Password == "" {
		return nil, domain.NewValidationError("password", "cannot be empty", nil)
	}
	role := input.Role
	if role == "" {
		role = domain.RoleCustomer
	}
	if err := role.Validate(); err != nil {
		return nil, err
	}

	hashed, err := r.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	user, err := domain.NewUser(input.LoginID, hashed, input.Name, input.Phone, input.IDNumber, role)
	if err != nil {
		return nil, err
	}

	if err := r.users.Create(ctx, user); err != nil {
		if store.IsDuplicateError(err) {
			log.Debug("signup with existing login id")
			return nil, store.ErrLoginIDExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	log.Info("account registered",
		slog.Int64("user_id", user.ID),
		slog.String("role", role.String()))
	return user, nil
}
