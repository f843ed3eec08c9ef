package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/clinic-api/internal/domain"
	"github.com/phrazzld/clinic-api/internal/platform/logger"
	"github.com/phrazzld/clinic-api/internal/store"
)

const reservationColumns = `id, user_id, doctor_id, hospital_id, date, status, created_at, updated_at`

// reservationViewSelect joins a reservation with its doctor and hospital.
// Soft-deleted doctors and hospitals still appear so history stays readable.
const reservationViewSelect = `
	SELECT r.id, h.name, d.name, d.image, r.date, r.status
	FROM reservations r
	JOIN doctors d ON d.id = r.doctor_id
	JOIN hospitals h ON h.id = r.hospital_id
`

// PostgresReservationStore implements store.ReservationStore.
type PostgresReservationStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresReservationStore creates a new PostgreSQL ReservationStore.
// If logger is nil, a default logger will be used.
func NewPostgresReservationStore(db store.DBTX, logger *slog.Logger) *PostgresReservationStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresReservationStore{
		db:     db,
		logger: logger.With(slog.String("component", "reservation_store")),
	}
}

var _ store.ReservationStore = (*PostgresReservationStore)(nil)

// WithTx implements store.ReservationStore.WithTx
func (s *PostgresReservationStore) WithTx(tx *sql.Tx) store.ReservationStore {
	return &PostgresReservationStore{db: tx, logger: s.logger}
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var (
		r      domain.Reservation
		status string
	)
	if err := row.Scan(
		&r.ID,
		&r.UserID,
		&r.DoctorID,
		&r.HospitalID,
		&r.Date,
		&status,
		&r.CreatedAt,
		&r.UpdatedAt,
	); err != nil {
		return nil, err
	}
	r.Status = domain.ReservationStatus(status)
	return &r, nil
}

// GetByID implements store.ReservationStore.GetByID
func (s *PostgresReservationStore) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1 AND deleted_at IS NULL`

	r, err := scanReservation(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		err = mapNotFound(err, store.ErrReservationNotFound)
		if !store.IsNotFoundError(err) {
			log.Error("failed to get reservation",
				slog.String("error", err.Error()),
				slog.Int64("reservation_id", id))
		}
		return nil, err
	}
	return r, nil
}

// findViews runs a count query and a windowed view query sharing the same
// WHERE clause and arguments.
func (s *PostgresReservationStore) findViews(
	ctx context.Context,
	where string,
	args []any,
	limit, offset int,
) (store.Page[domain.ReservationView], error) {
	var count int
	countQuery := `SELECT COUNT(*) FROM reservations r ` + where
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return store.Page[domain.ReservationView]{}, MapError(err)
	}

	n := len(args)
	query := fmt.Sprintf("%s %s ORDER BY r.date DESC, r.id DESC LIMIT $%d OFFSET $%d",
		reservationViewSelect, where, n+1, n+2)

	rows, err := s.db.QueryContext(ctx, query, append(append([]any{}, args...), limit, offset)...)
	if err != nil {
		return store.Page[domain.ReservationView]{}, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	views := []domain.ReservationView{}
	for rows.Next() {
		var (
			v      domain.ReservationView
			status string
		)
		if err := rows.Scan(&v.ID, &v.HospitalName, &v.DoctorName, &v.DoctorImage, &v.Date, &status); err != nil {
			return store.Page[domain.ReservationView]{}, fmt.Errorf("failed to scan reservation: %w", err)
		}
		v.Status = domain.ReservationStatus(status)
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return store.Page[domain.ReservationView]{}, fmt.Errorf("error iterating reservations: %w", err)
	}

	return store.Page[domain.ReservationView]{Count: count, Rows: views}, nil
}

// FindByUserAndStatus implements store.ReservationStore.FindByUserAndStatus
func (s *PostgresReservationStore) FindByUserAndStatus(
	ctx context.Context,
	userID int64,
	status domain.ReservationStatus,
	limit, offset int,
) (store.Page[domain.ReservationView], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	page, err := s.findViews(ctx,
		`WHERE r.user_id = $1 AND r.status = $2 AND r.deleted_at IS NULL`,
		[]any{userID, string(status)},
		limit, offset)
	if err != nil {
		log.Error("failed to find reservations",
			slog.String("error", err.Error()),
			slog.Int64("user_id", userID),
			slog.String("status", string(status)))
		return page, err
	}

	log.Debug("reservations found",
		slog.Int64("user_id", userID),
		slog.String("status", string(status)),
		slog.Int("count", page.Count))
	return page, nil
}

// FindByOwner implements store.ReservationStore.FindByOwner
func (s *PostgresReservationStore) FindByOwner(
	ctx context.Context,
	ownerUserID int64,
	limit, offset int,
) (store.Page[domain.ReservationView], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	page, err := s.findViews(ctx,
		`WHERE r.deleted_at IS NULL
		   AND r.hospital_id IN (SELECT id FROM hospitals WHERE owner_user_id = $1 AND deleted_at IS NULL)`,
		[]any{ownerUserID},
		limit, offset)
	if err != nil {
		log.Error("failed to find hospital reservations",
			slog.String("error", err.Error()),
			slog.Int64("owner_user_id", ownerUserID))
		return page, err
	}
	return page, nil
}

// Cancel implements store.ReservationStore.Cancel
// The row is locked while its previous status is read so the returned
// status is the one actually replaced.
func (s *PostgresReservationStore) Cancel(ctx context.Context, id int64) (domain.ReservationStatus, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE reservations r
		SET status = 'canceled', updated_at = $2
		FROM (
			SELECT id, status FROM reservations
			WHERE id = $1 AND deleted_at IS NULL
			FOR UPDATE
		) old
		WHERE r.id = old.id
		RETURNING old.status
	`

	var previous string
	if err := s.db.QueryRowContext(ctx, query, id, time.Now().UTC()).Scan(&previous); err != nil {
		err = mapNotFound(err, store.ErrReservationNotFound)
		if !store.IsNotFoundError(err) {
			log.Error("failed to cancel reservation",
				slog.String("error", err.Error()),
				slog.Int64("reservation_id", id))
		}
		return "", err
	}

	log.Info("reservation canceled",
		slog.Int64("reservation_id", id),
		slog.String("previous_status", previous))
	return domain.ReservationStatus(previous), nil
}

func nullStatus(p *domain.ReservationStatus) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: string(*p), Valid: true}
}

func nullTime(p *time.Time) sql.NullTime {
	if p == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *p, Valid: true}
}

// Update implements store.ReservationStore.Update
// A canceled reservation only accepts canceled as its new status; any other
// change yields domain.ErrReservationCanceled.
func (s *PostgresReservationStore) Update(
	ctx context.Context,
	id int64,
	update store.ReservationUpdate,
) (*domain.Reservation, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if update.Status != nil {
		if err := update.Status.Validate(); err != nil {
			return nil, err
		}
	}

	query := `
		UPDATE reservations
		SET date = COALESCE($2, date),
		    status = COALESCE($3, status),
		    updated_at = $4
		WHERE id = $1 AND deleted_at IS NULL
		  AND (status <> 'canceled' OR COALESCE($3, status) = 'canceled')
		RETURNING ` + reservationColumns

	r, err := scanReservation(s.db.QueryRowContext(ctx, query,
		id, nullTime(update.Date), nullStatus(update.Status), time.Now().UTC()))
	if err == nil {
		log.Info("reservation updated",
			slog.Int64("reservation_id", id),
			slog.String("status", string(r.Status)))
		return r, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		log.Error("failed to update reservation",
			slog.String("error", err.Error()),
			slog.Int64("reservation_id", id))
		return nil, MapError(err)
	}

	// No row: either missing or blocked by the canceled guard.
	if _, getErr := s.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, domain.ErrReservationCanceled
}

// CancelOpenByOwner implements store.ReservationStore.CancelOpenByOwner
func (s *PostgresReservationStore) CancelOpenByOwner(ctx context.Context, ownerUserID int64) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE reservations SET status = 'canceled', updated_at = $2
		WHERE deleted_at IS NULL
		  AND status IN ('waiting', 'approved')
		  AND hospital_id IN (SELECT id FROM hospitals WHERE owner_user_id = $1)
	`
	result, err := s.db.ExecContext(ctx, query, ownerUserID, time.Now().UTC())
	if err != nil {
		log.Error("failed to cancel open reservations",
			slog.String("error", err.Error()),
			slog.Int64("owner_user_id", ownerUserID))
		return 0, MapError(err)
	}

	n, err := rowsAffected(result)
	if err != nil {
		return 0, err
	}

	log.Debug("open reservations canceled",
		slog.Int64("owner_user_id", ownerUserID),
		slog.Int64("rows", n))
	return n, nil
}
