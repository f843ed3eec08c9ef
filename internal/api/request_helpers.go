package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/phrazzld/clinic-api/internal/api/shared"
	"github.com/phrazzld/clinic-api/internal/domain"
)

// pageParam is the query parameter selecting a 1-indexed page.
const pageParam = "page"

// parsePage reads the page query parameter. A missing parameter means page
// 1; anything that is not an integer >= 1 is a validation error.
func parsePage(r *http.Request) (int, error) {
	raw := r.URL.Query().Get(pageParam)
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(pageParam, "must be an integer", nil)
	}
	if page < 1 {
		return 0, domain.NewValidationError(pageParam, "must be at least 1", nil)
	}
	return page, nil
}

// getPathID parses a positive int64 path parameter.
func getPathID(r *http.Request, paramName string) (int64, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return 0, domain.NewValidationError(paramName, "is required", nil)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}
	return id, nil
}

// requirePrincipal returns the authenticated caller, writing a 401 when the
// auth middleware did not run.
func requirePrincipal(w http.ResponseWriter, r *http.Request, log *slog.Logger) (shared.Principal, bool) {
	userID, ok := shared.GetUserID(r.Context())
	if !ok {
		log.Warn("user ID not found or invalid in request context")
		HandleAPIError(w, r, domain.ErrUnauthorized, "")
		return shared.Principal{}, false
	}
	role, _ := shared.GetRole(r.Context())
	loginID, _ := shared.GetLoginID(r.Context())
	return shared.Principal{UserID: userID, LoginID: loginID, Role: role}, true
}

// handlePrincipalAndPathID extracts both the caller and a path ID, writing
// an error response if either is missing or invalid.
func handlePrincipalAndPathID(
	w http.ResponseWriter,
	r *http.Request,
	paramName string,
	log *slog.Logger,
) (shared.Principal, int64, bool) {
	principal, ok := requirePrincipal(w, r, log)
	if !ok {
		return shared.Principal{}, 0, false
	}

	id, err := getPathID(r, paramName)
	if err != nil {
		log.Warn("invalid "+paramName, slog.String("value", chi.URLParam(r, paramName)))
		HandleAPIError(w, r, err, "")
		return shared.Principal{}, 0, false
	}
	return principal, id, true
}

// decodeAndValidate decodes the JSON body into v and validates it, writing
// a 400 on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(w, r, v); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}
	if err := shared.ValidateRequest(v); err != nil {
		HandleAPIError(w, r, err, "")
		return false
	}
	return true
}
