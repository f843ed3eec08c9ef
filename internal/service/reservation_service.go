package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"time"

	"github.com/phrazzld/clinic-api/internal/domain"
	"github.com/phrazzld/clinic-api/internal/pagination"
	"github.com/phrazzld/clinic-api/internal/platform/logger"
	"github.com/phrazzld/clinic-api/internal/store"
)

// ReservationService provides status-filtered reservation queries,
// cancellation, and partner-side reservation management.
type ReservationService interface {
	GetApprovedReservations(ctx context.Context, userID int64, page int) (pagination.Page[domain.ReservationView], error)
	GetWaitingReservations(ctx context.Context, userID int64, page int) (pagination.Page[domain.ReservationView], error)
	GetDoneOrReviewedReservations(
		ctx context.Context,
		userID int64,
		page int,
	) (pagination.Page[domain.ReservationView], error)
	GetCanceledReservations(ctx context.Context, userID int64, page int) (pagination.Page[domain.ReservationView], error)

	// CancelReservation moves a reservation to canceled whatever its current
	// status. Cancelling a canceled reservation succeeds.
	CancelReservation(ctx context.Context, reservationID int64) (domain.CancelResult, error)

	// CancelOwnReservation cancels a reservation booked by userID and
	// returns ErrNotOwned for anyone else's reservation.
	CancelOwnReservation(ctx context.Context, userID, reservationID int64) (domain.CancelResult, error)

	// ListHospitalReservations pages through reservations at every live
	// hospital owned by the partner.
	ListHospitalReservations(
		ctx context.Context,
		ownerUserID int64,
		page int,
	) (pagination.Page[domain.ReservationView], error)

	// UpdateReservation changes the date and/or status of a reservation at
	// one of the partner's hospitals. Nil arguments are left unchanged.
	UpdateReservation(
		ctx context.Context,
		ownerUserID, reservationID int64,
		date *time.Time,
		status *domain.ReservationStatus,
	) (*domain.Reservation, error)
}

type reservationServiceImpl struct {
	db           store.TxBeginner
	reservations store.ReservationStore
	hospitals    store.HospitalStore
	logger       *slog.Logger
}

// NewReservationService creates a new ReservationService.
func NewReservationService(
	db store.TxBeginner,
	reservations store.ReservationStore,
	hospitals store.HospitalStore,
	logger *slog.Logger,
) ReservationService {
	if db == nil || reservations == nil || hospitals == nil {
		panic("reservation service dependencies cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &reservationServiceImpl{
		db:           db,
		reservations: reservations,
		hospitals:    hospitals,
		logger:       logger.With(slog.String("component", "reservation_service")),
	}
}

// GetApprovedReservations implements ReservationService.
func (s *reservationServiceImpl) GetApprovedReservations(
	ctx context.Context,
	userID int64,
	page int,
) (pagination.Page[domain.ReservationView], error) {
	return s.listByStatus(ctx, userID, domain.ReservationStatusApproved, page)
}

// GetWaitingReservations implements ReservationService.
func (s *reservationServiceImpl) GetWaitingReservations(
	ctx context.Context,
	userID int64,
	page int,
) (pagination.Page[domain.ReservationView], error) {
	return s.listByStatus(ctx, userID, domain.ReservationStatusWaiting, page)
}

// GetDoneOrReviewedReservations implements ReservationService.
func (s *reservationServiceImpl) GetDoneOrReviewedReservations(
	ctx context.Context,
	userID int64,
	page int,
) (pagination.Page[domain.ReservationView], error) {
	return s.listByStatus(ctx, userID, domain.ReservationStatusDoneOrReviewed, page)
}

// GetCanceledReservations implements ReservationService.
func (s *reservationServiceImpl) GetCanceledReservations(
	ctx context.Context,
	userID int64,
	page int,
) (pagination.Page[domain.ReservationView], error) {
	return s.listByStatus(ctx, userID, domain.ReservationStatusCanceled, page)
}

func (s *reservationServiceImpl) listByStatus(
	ctx context.Context,
	userID int64,
	status domain.ReservationStatus,
	page int,
) (pagination.Page[domain.ReservationView], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	window := pagination.Paginate(page, pagination.DefaultLimit)

	result, err := s.reservations.FindByUserAndStatus(ctx, userID, status, window.Limit, window.Offset)
	if err != nil {
		log.Error("failed to list reservations",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID),
			slog.String("status", string(status)))
		return pagination.Page[domain.ReservationView]{}, NewServiceError("reservation", "list_by_status", err)
	}

	return pagination.NewPage(result.Rows, result.Count, page, window.Limit), nil
}

// CancelReservation implements ReservationService.
func (s *reservationServiceImpl) CancelReservation(
	ctx context.Context,
	reservationID int64,
) (domain.CancelResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	previous, err := s.reservations.Cancel(ctx, reservationID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return domain.CancelResult{}, err
		}
		log.Error("failed to cancel reservation",
			slog.String("error", err.Error()),
			slog.Int64("reservation_id", reservationID))
		return domain.CancelResult{}, NewServiceError("reservation", "cancel", err)
	}

	return domain.CancelResult{
		ReservationID:  reservationID,
		Status:         domain.ReservationStatusCanceled,
		PreviousStatus: previous,
	}, nil
}

// CancelOwnReservation implements ReservationService.
func (s *reservationServiceImpl) CancelOwnReservation(
	ctx context.Context,
	userID, reservationID int64,
) (domain.CancelResult, error) {
	reservation, err := s.reservations.GetByID(ctx, reservationID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return domain.CancelResult{}, err
		}
		return domain.CancelResult{}, NewServiceError("reservation", "cancel", err)
	}
	if reservation.UserID != userID {
		return domain.CancelResult{}, ErrNotOwned
	}
	return s.CancelReservation(ctx, reservationID)
}

// ListHospitalReservations implements ReservationService.
func (s *reservationServiceImpl) ListHospitalReservations(
	ctx context.Context,
	ownerUserID int64,
	page int,
) (pagination.Page[domain.ReservationView], error) {
	window := pagination.Paginate(page, pagination.DefaultLimit)

	result, err := s.reservations.FindByOwner(ctx, ownerUserID, window.Limit, window.Offset)
	if err != nil {
		return pagination.Page[domain.ReservationView]{}, NewServiceError("reservation", "list_hospital", err)
	}

	return pagination.NewPage(result.Rows, result.Count, page, window.Limit), nil
}

// UpdateReservation implements ReservationService.
func (s *reservationServiceImpl) UpdateReservation(
	ctx context.Context,
	ownerUserID, reservationID int64,
	date *time.Time,
	status *domain.ReservationStatus,
) (*domain.Reservation, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if date == nil && status == nil {
		return nil, ErrEmptyUpdate
	}
	if status != nil {
		if err := status.Validate(); err != nil {
			return nil, err
		}
	}

	var updated *domain.Reservation
	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		reservations := s.reservations.WithTx(tx)

		current, err := reservations.GetByID(ctx, reservationID)
		if err != nil {
			return err
		}

		owned, err := s.hospitals.WithTx(tx).ListByOwner(ctx, ownerUserID)
		if err != nil {
			return err
		}
		if !ownsHospital(owned, current.HospitalID) {
			return ErrNotOwned
		}

		if status != nil && !current.Status.CanTransitionTo(*status) {
			return domain.ErrReservationCanceled
		}

		updated, err = reservations.Update(ctx, reservationID, store.ReservationUpdate{Date: date, Status: status})
		return err
	})
	if err != nil {
		switch {
		case store.IsNotFoundError(err),
			errors.Is(err, ErrNotOwned),
			errors.Is(err, domain.ErrReservationCanceled),
			domain.IsValidationError(err):
			log.Debug("reservation update rejected",
				slog.String("reason", err.Error()),
				slog.Int64("reservation_id", reservationID))
			return nil, err
		default:
			log.Error("failed to update reservation",
				slog.String("error", err.Error()),
				slog.Int64("reservation_id", reservationID))
			return nil, NewServiceError("reservation", "update", err)
		}
	}

	return updated, nil
}

func ownsHospital(hospitals []domain.Hospital, hospitalID int64) bool {
	for _, h := range hospitals {
		if h.ID == hospitalID {
			return true
		}
	}
	return false
}
