package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/phrazzld/clinic-api/internal/api/shared"
	"github.com/phrazzld/clinic-api/internal/domain"
	"github.com/phrazzld/clinic-api/internal/service"
	"github.com/phrazzld/clinic-api/internal/service/auth"
	"github.com/phrazzld/clinic-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes without
// exposing internal error types to clients.
func MapErrorToStatusCode(err error) int {
	var verrs validator.ValidationErrors

	switch {
	case err == nil:
		return http.StatusInternalServerError

	// Authentication errors
	case errors.Is(err, auth.ErrAuthFailure),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrWrongTokenType),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, service.ErrNotOwned):
		return http.StatusForbidden

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate),
		errors.Is(err, domain.ErrReservationCanceled),
		errors.Is(err, service.ErrOwnsFacilities):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, service.ErrEmptyUpdate),
		errors.Is(err, store.ErrInvalidEntity),
		domain.IsValidationError(err),
		errors.As(err, &verrs):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a client-facing message for err that never
// includes internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var verrs validator.ValidationErrors
	var domainErr *domain.ValidationError

	switch {
	case errors.Is(err, auth.ErrAuthFailure):
		return "Invalid login ID or password"
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"
	case errors.Is(err, auth.ErrMissingToken):
		return "Authorization header required"
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid token"
	case errors.Is(err, domain.ErrUnauthorized):
		return "Authentication required"

	case errors.Is(err, service.ErrNotOwned):
		return "You do not have access to this resource"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"
	case errors.Is(err, store.ErrReservationNotFound):
		return "Reservation not found"
	case errors.Is(err, store.ErrHospitalNotFound):
		return "Hospital not found"
	case errors.Is(err, store.ErrDoctorNotFound):
		return "Doctor not found"
	case errors.Is(err, store.ErrNotFound):
		return "Resource not found"

	case errors.Is(err, store.ErrLoginIDExists):
		return "Login ID already exists"
	case errors.Is(err, store.ErrDuplicate):
		return "Resource already exists"
	case errors.Is(err, domain.ErrReservationCanceled):
		return "Reservation is canceled and cannot be changed"
	case errors.Is(err, service.ErrOwnsFacilities):
		return "Partner still owns hospitals"

	case errors.Is(err, service.ErrEmptyUpdate):
		return "No fields to update"
	case errors.As(err, &verrs):
		return SanitizeValidationError(verrs)
	case errors.As(err, &domainErr):
		if domainErr.Field == "" {
			return "Invalid " + domainErr.Message
		}
		return fmt.Sprintf("Invalid %s: %s", domainErr.Field, domainErr.Message)
	case errors.Is(err, store.ErrInvalidEntity), domain.IsValidationError(err):
		return "Validation error"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError reports the first failed field of a request
// struct by its JSON name.
func SanitizeValidationError(verrs validator.ValidationErrors) string {
	if len(verrs) == 0 {
		return "Validation error"
	}
	first := verrs[0]
	return fmt.Sprintf("Invalid %s: %s", first.Field(), getValidationTagMessage(first.Tag()))
}

func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	case "numeric":
		return "must be numeric"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the mapped status and safe message for err. When
// the status is 500 and fallback is non-empty, fallback replaces the generic
// message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallback string, opts ...shared.ResponseOption) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallback != "" {
		message = fallback
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err, opts...)
}
