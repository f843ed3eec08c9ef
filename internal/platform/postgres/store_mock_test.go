package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

var (
	userCols = []string{
		"id", "login_id", "hashed_password", "name", "phone", "address",
		"id_number", "role", "created_at", "updated_at",
	}
	reservationCols = []string{
		"id", "user_id", "doctor_id", "hospital_id", "date", "status", "created_at", "updated_at",
	}
	viewCols = []string{"id", "hospital_name", "doctor_name", "doctor_image", "date", "status"}

	fixedTime = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)
)

// newMockDB returns a sqlmock-backed *sql.DB and verifies expectations on cleanup.
func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}

func userRow(id int64, loginID, role string) *sqlmock.Rows {
	return sqlmock.NewRows(userCols).AddRow(
		id, loginID, "$2a$12$hash", "Kim", "010-0000-0000", "Seoul", "900101-1234567",
		role, fixedTime, fixedTime,
	)
}
