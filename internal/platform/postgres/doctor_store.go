package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"github.com/phrazzld/clinic-api/internal/platform/logger"
	"github.com/phrazzld/clinic-api/internal/store"
)

// PostgresDoctorStore implements store.DoctorStore.
type PostgresDoctorStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresDoctorStore creates a new PostgreSQL DoctorStore.
func NewPostgresDoctorStore(db store.DBTX, logger *slog.Logger) *PostgresDoctorStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresDoctorStore{
		db:     db,
		logger: logger.With(slog.String("component", "doctor_store")),
	}
}

var _ store.DoctorStore = (*PostgresDoctorStore)(nil)

// WithTx implements store.DoctorStore.WithTx
func (s *PostgresDoctorStore) WithTx(tx *sql.Tx) store.DoctorStore {
	return &PostgresDoctorStore{db: tx, logger: s.logger}
}

// SoftDeleteByOwner implements store.DoctorStore.SoftDeleteByOwner
// The hospital subquery ignores hospitals.deleted_at so the doctors of
// hospitals deleted earlier in the same transaction are still reached.
func (s *PostgresDoctorStore) SoftDeleteByOwner(ctx context.Context, ownerUserID int64, at time.Time) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE doctors SET deleted_at = $2
		WHERE deleted_at IS NULL
		  AND hospital_id IN (SELECT id FROM hospitals WHERE owner_user_id = $1)
	`
	result, err := s.db.ExecContext(ctx, query, ownerUserID, at)
	if err != nil {
		log.Error("failed to soft delete doctors",
			slog.String("error", err.Error()),
			slog.Int64("owner_user_id", ownerUserID))
		return 0, MapError(err)
	}

	n, err := rowsAffected(result)
	if err != nil {
		return 0, err
	}

	log.Debug("doctors soft deleted",
		slog.Int64("owner_user_id", ownerUserID),
		slog.Int64("rows", n))
	return n, nil
}
