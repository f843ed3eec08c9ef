package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/clinic-api/internal/api/shared"
	"github.com/phrazzld/clinic-api/internal/platform/logger"
	"github.com/phrazzld/clinic-api/internal/service"
)

// UserHandler serves the authenticated user's own account.
type UserHandler struct {
	users    service.UserService
	accounts service.AccountService
	logger   *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users service.UserService, accounts service.AccountService, logger *slog.Logger) *UserHandler {
	if users == nil || accounts == nil {
		panic("user handler dependencies cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		users:    users,
		accounts: accounts,
		logger:   logger.With(slog.String("component", "user_handler")),
	}
}

// GetProfile handles GET /api/users/me.
func (h *UserHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	principal, ok := requirePrincipal(w, r, log)
	if !ok {
		return
	}

	profile, err := h.users.GetProfile(r.Context(), principal.UserID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load profile")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}

// EditProfile handles PATCH /api/users/me.
func (h *UserHandler) EditProfile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	principal, ok := requirePrincipal(w, r, log)
	if !ok {
		return
	}

	var req EditProfileRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	profile, err := h.users.EditProfile(r.Context(), principal.UserID, req.Address, req.Phone, req.Name)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update profile")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, profile)
}

// DeleteAccount handles DELETE /api/users/me.
func (h *UserHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	principal, ok := requirePrincipal(w, r, log)
	if !ok {
		return
	}

	result, err := h.accounts.DeleteAccount(r.Context(), principal.UserID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete account")
		return
	}

	log.Info("account deleted by owner",
		slog.Int64("user_id", principal.UserID),
		slog.Int64("rows_affected", result.RowsAffected()))
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
