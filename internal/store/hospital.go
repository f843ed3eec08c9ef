package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/phrazzld/clinic-api/internal/domain"
)

// HospitalStore defines the interface for hospital persistence.
type HospitalStore interface {
	// ListByOwner returns the live hospitals owned by the given partner.
	ListByOwner(ctx context.Context, ownerUserID int64) ([]domain.Hospital, error)

	// SoftDeleteByOwner stamps deleted_at on every live hospital owned by
	// the given partner and returns the number of rows affected.
	SoftDeleteByOwner(ctx context.Context, ownerUserID int64, at time.Time) (int64, error)

	// WithTx returns a new HospitalStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) HospitalStore
}
