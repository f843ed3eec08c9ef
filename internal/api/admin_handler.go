package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/clinic-api/internal/api/shared"
	"github.com/phrazzld/clinic-api/internal/domain"
	"github.com/phrazzld/clinic-api/internal/pagination"
	"github.com/phrazzld/clinic-api/internal/platform/logger"
	"github.com/phrazzld/clinic-api/internal/service"
)

// AdminHandler serves administrative account management.
type AdminHandler struct {
	users    service.UserService
	accounts service.AccountService
	logger   *slog.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(users service.UserService, accounts service.AccountService, logger *slog.Logger) *AdminHandler {
	if users == nil || accounts == nil {
		panic("admin handler dependencies cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AdminHandler{
		users:    users,
		accounts: accounts,
		logger:   logger.With(slog.String("component", "admin_handler")),
	}
}

// ListAll handles GET /api/admin/users.
func (h *AdminHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.ListUsers(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list users")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, usersToResponse(users))
}

// ListPage handles GET /api/admin/users/page?page=&type=&role=. type is a
// keyword matched against name or login ID; role narrows to one role.
func (h *AdminHandler) ListPage(w http.ResponseWriter, r *http.Request) {
	page, err := parsePage(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	query := r.URL.Query()
	listType := query.Get("type")

	var result pagination.Page[domain.User]
	if rawRole := query.Get("role"); rawRole != "" {
		role, perr := domain.ParseRole(rawRole)
		if perr != nil {
			HandleAPIError(w, r, perr, "")
			return
		}
		result, err = h.users.ListUsersByRole(r.Context(), role, page, listType)
	} else {
		result, err = h.users.ListUsersPage(r.Context(), page, listType)
	}
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list users")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, pagination.Page[UserResponse]{
		Items:    usersToResponse(result.Items),
		Total:    result.Total,
		Page:     result.Page,
		LastPage: result.LastPage,
	})
}

// UpdateRole handles PATCH /api/admin/users/{id}/role.
func (h *AdminHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	principal, userID, ok := handlePrincipalAndPathID(w, r, "id", log)
	if !ok {
		return
	}

	var req UpdateRoleRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.users.UpdateRole(r.Context(), userID, domain.Role(req.Role))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update role")
		return
	}

	log.Info("role changed",
		slog.Int64("admin_id", principal.UserID),
		slog.Int64("user_id", userID),
		slog.String("role", req.Role))
	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(*user))
}

// DeleteAccount handles DELETE /api/admin/users/{id}.
func (h *AdminHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	principal, userID, ok := handlePrincipalAndPathID(w, r, "id", log)
	if !ok {
		return
	}

	result, err := h.accounts.DeleteAccount(r.Context(), userID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to delete account")
		return
	}

	log.Info("account deleted by admin",
		slog.Int64("admin_id", principal.UserID),
		slog.Int64("user_id", userID),
		slog.Int64("rows_affected", result.RowsAffected()))
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}
