package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/phrazzld/clinic-api/internal/api/shared"
	"github.com/phrazzld/clinic-api/internal/domain"
	"github.com/phrazzld/clinic-api/internal/platform/logger"
	"github.com/phrazzld/clinic-api/internal/service/auth"
)

// Registrar opens new accounts.
type Registrar interface {
	Signup(ctx context.Context, input auth.SignupInput) (*domain.User, error)
}

// SessionStarter exchanges credentials for a token pair.
type SessionStarter interface {
	Login(ctx context.Context, loginID, password string) (auth.TokenPair, error)
}

// AuthHandler handles signup and login.
type AuthHandler struct {
	registrar Registrar
	sessions  SessionStarter
	logger    *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(registrar Registrar, sessions SessionStarter, logger *slog.Logger) *AuthHandler {
	if registrar == nil || sessions == nil {
		panic("auth handler dependencies cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		registrar: registrar,
		sessions:  sessions,
		logger:    logger.With(slog.String("component", "auth_handler")),
	}
}

// Signup handles POST /api/auth/signup.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req SignupRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.registrar.Signup(r.Context(), auth.SignupInput{
		LoginID:  req.LoginID,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
		IDNumber: req.IDNumber,
		Role:     domain.Role(req.Role),
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create account")
		return
	}

	log.Debug("account created", slog.Int64("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, SignupResponse{
		UserID:  user.ID,
		LoginID: user.LoginID,
		Role:    user.Role,
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	tokens, err := h.sessions.Login(r.Context(), req.LoginID, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrAuthFailure) {
			HandleAPIError(w, r, err, "", shared.WithElevatedLogLevel())
			return
		}
		HandleAPIError(w, r, err, "Failed to authenticate user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, tokens)
}
