package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/clinic-api/internal/api/shared"
	"github.com/phrazzld/clinic-api/internal/domain"
	"github.com/phrazzld/clinic-api/internal/service"
	"github.com/phrazzld/clinic-api/internal/service/auth"
	"github.com/phrazzld/clinic-api/internal/store"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"nil error", nil, http.StatusInternalServerError},
		{"auth failure", auth.ErrAuthFailure, http.StatusUnauthorized},
		{"wrapped expired token", fmt.Errorf("validate: %w", auth.ErrExpiredToken), http.StatusUnauthorized},
		{"not owned", service.ErrNotOwned, http.StatusForbidden},
		{"user not found", store.ErrUserNotFound, http.StatusNotFound},
		{"reservation not found", fmt.Errorf("cancel: %w", store.ErrReservationNotFound), http.StatusNotFound},
		{"login id exists", store.ErrLoginIDExists, http.StatusConflict},
		{"reservation canceled", domain.ErrReservationCanceled, http.StatusConflict},
		{"partner owns hospitals", service.ErrOwnsFacilities, http.StatusConflict},
		{"empty update", service.ErrEmptyUpdate, http.StatusBadRequest},
		{"invalid role", domain.Role("owner").Validate(), http.StatusBadRequest},
		{"request validation", shared.ValidateRequest(SignupRequest{}), http.StatusBadRequest},
		{
			"cascade failure",
			store.NewStoreError("account", "delete", "cascade rolled back", errors.New("deadlock")),
			http.StatusInternalServerError,
		},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, "An unexpected error occurred"},
		{"auth failure", auth.ErrAuthFailure, "Invalid login ID or password"},
		{"expired", auth.ErrExpiredToken, "Token expired"},
		{"wrong token type", auth.ErrWrongTokenType, "Invalid token"},
		{"reservation not found", store.ErrReservationNotFound, "Reservation not found"},
		{"login id exists", store.ErrLoginIDExists, "Login ID already exists"},
		{"not owned", service.ErrNotOwned, "You do not have access to this resource"},
		{"partner owns hospitals", service.ErrOwnsFacilities, "Partner still owns hospitals"},
		{"domain validation", domain.NewValidationError("page", "must be at least 1", nil), "Invalid page: must be at least 1"},
		{"request validation", shared.ValidateRequest(LoginRequest{LoginID: "kim"}), "Invalid password: required field"},
		{
			"internal details hidden",
			fmt.Errorf("query failed: postgres://clinic:pw@db:5432/clinic: %w", errors.New("timeout")),
			"An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}

func TestGetValidationTagMessage(t *testing.T) {
	assert.Equal(t, "required field", getValidationTagMessage("required"))
	assert.Equal(t, "too short", getValidationTagMessage("min"))
	assert.Equal(t, "invalid value", getValidationTagMessage("oneof"))
	assert.Equal(t, "validation failed", getValidationTagMessage("uuid"))
}
