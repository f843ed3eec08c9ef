package testdb

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/clinic-api/internal/domain"
	"github.com/stretchr/testify/require"
)

// uniqueLoginID returns a login ID that cannot collide across parallel tests.
func uniqueLoginID(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString()[:8])
}

// CreateTestUser inserts a live user with the given role and returns its ID.
func CreateTestUser(t *testing.T, tx *sql.Tx, role domain.Role) int64 {
	t.Helper()

	var id int64
	err := tx.QueryRowContext(context.Background(), `
		INSERT INTO users (login_id, hashed_password, name, phone, address, id_number, role)
		VALUES ($1, $2, $3, '010-0000-0000', 'Seoul', '900101-1234567', $4)
		RETURNING id`,
		uniqueLoginID(string(role)), "$2a$04$placeholderplaceholderplacehold", "Test "+string(role), string(role),
	).Scan(&id)
	require.NoError(t, err, "failed to create test user")
	return id
}

// CreateTestHospital inserts a hospital owned by ownerID.
func CreateTestHospital(t *testing.T, tx *sql.Tx, ownerID int64, name string) int64 {
	t.Helper()

	var id int64
	err := tx.QueryRowContext(context.Background(),
		`INSERT INTO hospitals (owner_user_id, name, location) VALUES ($1, $2, 'Gangnam') RETURNING id`,
		ownerID, name,
	).Scan(&id)
	require.NoError(t, err, "failed to create test hospital")
	return id
}

// CreateTestDoctor inserts a doctor working at hospitalID.
func CreateTestDoctor(t *testing.T, tx *sql.Tx, hospitalID int64, name string) int64 {
	t.Helper()

	var id int64
	err := tx.QueryRowContext(context.Background(),
		`INSERT INTO doctors (hospital_id, name, image) VALUES ($1, $2, $3) RETURNING id`,
		hospitalID, name, name+".png",
	).Scan(&id)
	require.NoError(t, err, "failed to create test doctor")
	return id
}

// CreateTestReservation inserts a reservation of doctorID at hospitalID.
func CreateTestReservation(
	t *testing.T,
	tx *sql.Tx,
	userID, doctorID, hospitalID int64,
	date time.Time,
	status domain.ReservationStatus,
) int64 {
	t.Helper()

	var id int64
	err := tx.QueryRowContext(context.Background(), `
		INSERT INTO reservations (user_id, doctor_id, hospital_id, date, status)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		userID, doctorID, hospitalID, date, string(status),
	).Scan(&id)
	require.NoError(t, err, "failed to create test reservation")
	return id
}

// CountLive returns the number of rows of table matching where that have
// not been soft-deleted. table and where are trusted test literals.
func CountLive(t *testing.T, tx *sql.Tx, table, where string, args ...any) int {
	t.Helper()

	var n int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE deleted_at IS NULL AND %s", table, where)
	require.NoError(t, tx.QueryRowContext(context.Background(), query, args...).Scan(&n))
	return n
}
