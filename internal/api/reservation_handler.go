package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/phrazzld/clinic-api/internal/api/shared"
	"github.com/phrazzld/clinic-api/internal/domain"
	"github.com/phrazzld/clinic-api/internal/pagination"
	"github.com/phrazzld/clinic-api/internal/platform/logger"
	"github.com/phrazzld/clinic-api/internal/service"
)

// ReservationHandler serves reservation listings, cancellation and partner
// reservation management.
type ReservationHandler struct {
	reservations service.ReservationService
	logger       *slog.Logger
}

// NewReservationHandler creates a new ReservationHandler.
func NewReservationHandler(reservations service.ReservationService, logger *slog.Logger) *ReservationHandler {
	if reservations == nil {
		panic("reservation service cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &ReservationHandler{
		reservations: reservations,
		logger:       logger.With(slog.String("component", "reservation_handler")),
	}
}

type reservationLister func(ctx context.Context, userID int64, page int) (pagination.Page[domain.ReservationView], error)

// list writes one page of the caller's reservations produced by fetch.
func (h *ReservationHandler) list(w http.ResponseWriter, r *http.Request, fetch reservationLister) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	principal, ok := requirePrincipal(w, r, log)
	if !ok {
		return
	}

	page, err := parsePage(r)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	result, err := fetch(r.Context(), principal.UserID, page)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list reservations")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// ListApproved handles GET /api/users/me/reservations/approved.
func (h *ReservationHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.reservations.GetApprovedReservations)
}

// ListWaiting handles GET /api/users/me/reservations/waiting.
func (h *ReservationHandler) ListWaiting(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.reservations.GetWaitingReservations)
}

// ListDoneOrReviewed handles GET /api/users/me/reservations/done.
func (h *ReservationHandler) ListDoneOrReviewed(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.reservations.GetDoneOrReviewedReservations)
}

// ListCanceled handles GET /api/users/me/reservations/canceled.
func (h *ReservationHandler) ListCanceled(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.reservations.GetCanceledReservations)
}

// Cancel handles PUT /api/reservations/{id}/cancel. Admins may cancel any
// reservation; everyone else only their own.
func (h *ReservationHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	principal, reservationID, ok := handlePrincipalAndPathID(w, r, "id", log)
	if !ok {
		return
	}

	var (
		result domain.CancelResult
		err    error
	)
	if principal.Role == domain.RoleAdmin {
		result, err = h.reservations.CancelReservation(r.Context(), reservationID)
	} else {
		result, err = h.reservations.CancelOwnReservation(r.Context(), principal.UserID, reservationID)
	}
	if err != nil {
		HandleAPIError(w, r, err, "Failed to cancel reservation")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// ListHospital handles GET /api/partner/reservations.
func (h *ReservationHandler) ListHospital(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.reservations.ListHospitalReservations)
}

// Update handles PATCH /api/partner/reservations/{id}.
func (h *ReservationHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	principal, reservationID, ok := handlePrincipalAndPathID(w, r, "id", log)
	if !ok {
		return
	}

	var req UpdateReservationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	if req.Date == nil && req.Status == nil {
		HandleAPIError(w, r, service.ErrEmptyUpdate, "")
		return
	}

	var status *domain.ReservationStatus
	if req.Status != nil {
		parsed, err := domain.ParseReservationStatus(*req.Status)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}
		status = &parsed
	}

	updated, err := h.reservations.UpdateReservation(r.Context(), principal.UserID, reservationID, req.Date, status)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update reservation")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, updated)
}
