package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/clinic-api/internal/domain"
	"github.com/phrazzld/clinic-api/internal/platform/logger"
	"github.com/phrazzld/clinic-api/internal/store"
)

// UserFinder looks up live users by login ID.
type UserFinder interface {
	GetByLoginID(ctx context.Context, loginID string) (*domain.User, error)
}

// SessionIssuer exchanges credentials for a token pair.
type SessionIssuer struct {
	users     UserFinder
	passwords PasswordVerifier
	tokens    JWTService
	dummyHash string
	logger    *slog.Logger
}

// NewSessionIssuer creates a SessionIssuer. hasher produces the hash compared
// against when the login ID is unknown, so both failure paths cost one
// bcrypt comparison.
func NewSessionIssuer(
	users UserFinder,
	passwords PasswordVerifier,
	hasher PasswordHasher,
	tokens JWTService,
	logger *slog.Logger,
) (*SessionIssuer, error) {
	if users == nil || passwords == nil || hasher == nil || tokens == nil {
		return nil, fmt.Errorf("session issuer dependencies cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	dummy, err := hasher.Hash("not-a-real-password")
	if err != nil {
		return nil, fmt.Errorf("failed to prepare dummy hash: %w", err)
	}

	return &SessionIssuer{
		users:     users,
		passwords: passwords,
		tokens:    tokens,
		dummyHash: dummy,
		logger:    logger.With(slog.String("component", "session_issuer")),
	}, nil
}

// Login verifies loginID and password and issues an access and refresh
// token. Unknown login IDs and wrong passwords both yield ErrAuthFailure.
func (s *SessionIssuer) Login(ctx context.Context, loginID, password string) (TokenPair, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.GetByLoginID(ctx, loginID)
	if err != nil {
		if !store.IsNotFoundError(err) {
			log.Error("credential lookup failed", slog.String("error", err.Error()))
			return TokenPair{}, fmt.Errorf("credential lookup failed: %w", err)
		}
		_ = s.passwords.Compare(s.dummyHash, password)
		log.Debug("login failed", slog.String("reason", "unknown login id"))
		return TokenPair{}, ErrAuthFailure
	}

	if err := s.passwords.Compare(user.HashedPassword, password); err != nil {
		log.Debug("login failed",
			slog.String("reason", "password mismatch"),
			slog.Int64("user_id", user.ID))
		return TokenPair{}, ErrAuthFailure
	}

	access, err := s.tokens.GenerateAccessToken(ctx, user.LoginID)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.tokens.GenerateRefreshToken(ctx)
	if err != nil {
		return TokenPair{}, err
	}

	log.Info("user logged in",
		slog.Int64("user_id", user.ID),
		slog.String("role", user.Role.String()))
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}
