package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/phrazzld/clinic-api/internal/domain"
)

// ReservationUpdate carries the partner-editable reservation fields. Nil
// fields are left untouched.
type ReservationUpdate struct {
	Date   *time.Time
	Status *domain.ReservationStatus
}

// ReservationStore defines the interface for reservation persistence.
type ReservationStore interface {
	// GetByID retrieves a live reservation.
	// Returns ErrReservationNotFound if it does not exist or was deleted.
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)

	// FindByUserAndStatus returns one window of the user's reservations in
	// the given status, joined with doctor and hospital, ordered by date
	// descending then ID descending, plus the total match count.
	FindByUserAndStatus(
		ctx context.Context,
		userID int64,
		status domain.ReservationStatus,
		limit, offset int,
	) (Page[domain.ReservationView], error)

	// FindByOwner returns one window of reservations at hospitals owned by
	// the given partner, in the same order as FindByUserAndStatus.
	FindByOwner(ctx context.Context, ownerUserID int64, limit, offset int) (Page[domain.ReservationView], error)

	// Cancel sets the reservation to canceled and returns the status it had
	// before. Returns ErrReservationNotFound if no live reservation matched.
	Cancel(ctx context.Context, id int64) (domain.ReservationStatus, error)

	// Update applies the non-nil fields of update.
	// Returns ErrReservationNotFound if no live reservation matched.
	Update(ctx context.Context, id int64, update ReservationUpdate) (*domain.Reservation, error)

	// CancelOpenByOwner cancels every waiting or approved reservation at a
	// hospital owned by the given partner and returns the rows affected.
	CancelOpenByOwner(ctx context.Context, ownerUserID int64) (int64, error)

	// WithTx returns a new ReservationStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) ReservationStore
}
