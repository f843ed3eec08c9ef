package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/clinic-api/internal/domain"
	"github.com/phrazzld/clinic-api/internal/platform/logger"
	"github.com/phrazzld/clinic-api/internal/store"
)

// PostgresHospitalStore implements store.HospitalStore.
type PostgresHospitalStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresHospitalStore creates a new PostgreSQL HospitalStore.
// If logger is nil, a default logger will be used.
func NewPostgresHospitalStore(db store.DBTX, logger *slog.Logger) *PostgresHospitalStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresHospitalStore{
		db:     db,
		logger: logger.With(slog.String("component", "hospital_store")),
	}
}

var _ store.HospitalStore = (*PostgresHospitalStore)(nil)

// WithTx implements store.HospitalStore.WithTx
func (s *PostgresHospitalStore) WithTx(tx *sql.Tx) store.HospitalStore {
	return &PostgresHospitalStore{db: tx, logger: s.logger}
}

// ListByOwner implements store.HospitalStore.ListByOwner
func (s *PostgresHospitalStore) ListByOwner(ctx context.Context, ownerUserID int64) ([]domain.Hospital, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, owner_user_id, name, location, created_at
		FROM hospitals
		WHERE owner_user_id = $1 AND deleted_at IS NULL
		ORDER BY id
	`
	rows, err := s.db.QueryContext(ctx, query, ownerUserID)
	if err != nil {
		log.Error("failed to list hospitals",
			slog.String("error", err.Error()),
			slog.Int64("owner_user_id", ownerUserID))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	hospitals := []domain.Hospital{}
	for rows.Next() {
		var h domain.Hospital
		if err := rows.Scan(&h.ID, &h.OwnerUserID, &h.Name, &h.Location, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan hospital: %w", err)
		}
		hospitals = append(hospitals, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating hospitals: %w", err)
	}

	return hospitals, nil
}

// SoftDeleteByOwner implements store.HospitalStore.SoftDeleteByOwner
func (s *PostgresHospitalStore) SoftDeleteByOwner(ctx context.Context, ownerUserID int64, at time.Time) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`UPDATE hospitals SET deleted_at = $2 WHERE owner_user_id = $1 AND deleted_at IS NULL`,
		ownerUserID, at)
	if err != nil {
		log.Error("failed to soft delete hospitals",
			slog.String("error", err.Error()),
			slog.Int64("owner_user_id", ownerUserID))
		return 0, MapError(err)
	}

	n, err := rowsAffected(result)
	if err != nil {
		return 0, err
	}

	log.Debug("hospitals soft deleted",
		slog.Int64("owner_user_id", ownerUserID),
		slog.Int64("rows", n))
	return n, nil
}
