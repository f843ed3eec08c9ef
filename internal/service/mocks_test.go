package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/phrazzld/clinic-api/internal/domain"
	"github.com/phrazzld/clinic-api/internal/store"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockUserStore mocks store.UserStore. WithTx returns the same mock so
// expectations apply inside and outside transactions.
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) GetByLoginID(ctx context.Context, loginID string) (*domain.User, error) {
	args := m.Called(ctx, loginID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) UpdateProfile(
	ctx context.Context,
	id int64,
	update store.ProfileUpdate,
) (*domain.User, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) UpdateRole(ctx context.Context, id int64, role domain.Role) (*domain.User, error) {
	args := m.Called(ctx, id, role)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserStore) ListAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserStore) ListPage(
	ctx context.Context,
	filter domain.UserListFilter,
	limit, offset int,
) (store.Page[domain.User], error) {
	args := m.Called(ctx, filter, limit, offset)
	return args.Get(0).(store.Page[domain.User]), args.Error(1)
}

func (m *MockUserStore) SoftDelete(ctx context.Context, id int64, at time.Time) (int64, error) {
	args := m.Called(ctx, id, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserStore) WithTx(*sql.Tx) store.UserStore { return m }

// MockHospitalStore mocks store.HospitalStore.
type MockHospitalStore struct {
	mock.Mock
}

func (m *MockHospitalStore) ListByOwner(ctx context.Context, ownerUserID int64) ([]domain.Hospital, error) {
	args := m.Called(ctx, ownerUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Hospital), args.Error(1)
}

func (m *MockHospitalStore) SoftDeleteByOwner(ctx context.Context, ownerUserID int64, at time.Time) (int64, error) {
	args := m.Called(ctx, ownerUserID, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockHospitalStore) WithTx(*sql.Tx) store.HospitalStore { return m }

// MockDoctorStore mocks store.DoctorStore.
type MockDoctorStore struct {
	mock.Mock
}

func (m *MockDoctorStore) SoftDeleteByOwner(ctx context.Context, ownerUserID int64, at time.Time) (int64, error) {
	args := m.Called(ctx, ownerUserID, at)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDoctorStore) WithTx(*sql.Tx) store.DoctorStore { return m }

// MockReservationStore mocks store.ReservationStore.
type MockReservationStore struct {
	mock.Mock
}

func (m *MockReservationStore) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationStore) FindByUserAndStatus(
	ctx context.Context,
	userID int64,
	status domain.ReservationStatus,
	limit, offset int,
) (store.Page[domain.ReservationView], error) {
	args := m.Called(ctx, userID, status, limit, offset)
	return args.Get(0).(store.Page[domain.ReservationView]), args.Error(1)
}

func (m *MockReservationStore) FindByOwner(
	ctx context.Context,
	ownerUserID int64,
	limit, offset int,
) (store.Page[domain.ReservationView], error) {
	args := m.Called(ctx, ownerUserID, limit, offset)
	return args.Get(0).(store.Page[domain.ReservationView]), args.Error(1)
}

func (m *MockReservationStore) Cancel(ctx context.Context, id int64) (domain.ReservationStatus, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(domain.ReservationStatus), args.Error(1)
}

func (m *MockReservationStore) Update(
	ctx context.Context,
	id int64,
	update store.ReservationUpdate,
) (*domain.Reservation, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

func (m *MockReservationStore) CancelOpenByOwner(ctx context.Context, ownerUserID int64) (int64, error) {
	args := m.Called(ctx, ownerUserID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationStore) WithTx(*sql.Tx) store.ReservationStore { return m }

// newTxDB returns a sqlmock database for services that open transactions.
func newTxDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		_ = db.Close()
	})
	return db, mock
}
