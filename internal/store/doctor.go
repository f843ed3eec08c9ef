package store

import (
	"context"
	"database/sql"
	"time"
)

// DoctorStore defines the interface for doctor persistence.
type DoctorStore interface {
	// SoftDeleteByOwner stamps deleted_at on every live doctor working at a
	// hospital owned by the given partner and returns the rows affected.
	// Hospitals already soft-deleted in the same transaction still match.
	SoftDeleteByOwner(ctx context.Context, ownerUserID int64, at time.Time) (int64, error)

	// WithTx returns a new DoctorStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) DoctorStore
}
