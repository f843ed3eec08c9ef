package mocks

import (
	"context"
	"time"

	"github.com/phrazzld/clinic-api/internal/domain"
	"github.com/phrazzld/clinic-api/internal/pagination"
	"github.com/phrazzld/clinic-api/internal/service"
)

// MockUserService implements service.UserService for testing
type MockUserService struct {
	GetProfileFn      func(ctx context.Context, userID int64) (domain.Profile, error)
	EditProfileFn     func(ctx context.Context, userID int64, address, phone, name string) (domain.Profile, error)
	ListUsersFn       func(ctx context.Context) ([]domain.User, error)
	ListUsersPageFn   func(ctx context.Context, pageNum int, listType string) (pagination.Page[domain.User], error)
	ListUsersByRoleFn func(
		ctx context.Context,
		role domain.Role,
		pageNum int,
		listType string,
	) (pagination.Page[domain.User], error)
	UpdateRoleFn func(ctx context.Context, userID int64, role domain.Role) (*domain.User, error)
}

var _ service.UserService = (*MockUserService)(nil)

// GetProfile implements service.UserService.
func (m *MockUserService) GetProfile(ctx context.Context, userID int64) (domain.Profile, error) {
	if m.GetProfileFn != nil {
		return m.GetProfileFn(ctx, userID)
	}
	return domain.Profile{}, nil
}

// EditProfile implements service.UserService.
func (m *MockUserService) EditProfile(
	ctx context.Context,
	userID int64,
	address, phone, name string,
) (domain.Profile, error) {
	if m.EditProfileFn != nil {
		return m.EditProfileFn(ctx, userID, address, phone, name)
	}
	return domain.Profile{}, nil
}

// ListUsers implements service.UserService.
func (m *MockUserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	if m.ListUsersFn != nil {
		return m.ListUsersFn(ctx)
	}
	return nil, nil
}

// ListUsersPage implements service.UserService.
func (m *MockUserService) ListUsersPage(
	ctx context.Context,
	pageNum int,
	listType string,
) (pagination.Page[domain.User], error) {
	if m.ListUsersPageFn != nil {
		return m.ListUsersPageFn(ctx, pageNum, listType)
	}
	return pagination.Page[domain.User]{}, nil
}

// ListUsersByRole implements service.UserService.
func (m *MockUserService) ListUsersByRole(
	ctx context.Context,
	role domain.Role,
	pageNum int,
	listType string,
) (pagination.Page[domain.User], error) {
	if m.ListUsersByRoleFn != nil {
		return m.ListUsersByRoleFn(ctx, role, pageNum, listType)
	}
	return pagination.Page[domain.User]{}, nil
}

// UpdateRole implements service.UserService.
func (m *MockUserService) UpdateRole(ctx context.Context, userID int64, role domain.Role) (*domain.User, error) {
	if m.UpdateRoleFn != nil {
		return m.UpdateRoleFn(ctx, userID, role)
	}
	return nil, nil
}

// MockAccountService implements service.AccountService for testing
type MockAccountService struct {
	DeleteAccountFn func(ctx context.Context, userID int64) (domain.DeleteResult, error)
}

var _ service.AccountService = (*MockAccountService)(nil)

// DeleteAccount implements service.AccountService.
func (m *MockAccountService) DeleteAccount(ctx context.Context, userID int64) (domain.DeleteResult, error) {
	if m.DeleteAccountFn != nil {
		return m.DeleteAccountFn(ctx, userID)
	}
	return domain.DeleteResult{UserID: userID, UserDeleted: 1}, nil
}

// ViewPageFn is the signature shared by the reservation listing methods.
type ViewPageFn func(ctx context.Context, userID int64, page int) (pagination.Page[domain.ReservationView], error)

// MockReservationService implements service.ReservationService for testing
type MockReservationService struct {
	GetApprovedFn       ViewPageFn
	GetWaitingFn        ViewPageFn
	GetDoneOrReviewedFn ViewPageFn
	GetCanceledFn       ViewPageFn
	ListHospitalFn      ViewPageFn

	CancelReservationFn    func(ctx context.Context, reservationID int64) (domain.CancelResult, error)
	CancelOwnReservationFn func(ctx context.Context, userID, reservationID int64) (domain.CancelResult, error)
	UpdateReservationFn    func(
		ctx context.Context,
		ownerUserID, reservationID int64,
		date *time.Time,
		status *domain.ReservationStatus,
	) (*domain.Reservation, error)
}

var _ service.ReservationService = (*MockReservationService)(nil)

func callViewPage(ctx context.Context, fn ViewPageFn, userID int64, page int) (pagination.Page[domain.ReservationView], error) {
	if fn != nil {
		return fn(ctx, userID, page)
	}
	return pagination.NewPage[domain.ReservationView](nil, 0, page, pagination.DefaultLimit), nil
}

// GetApprovedReservations implements service.ReservationService.
func (m *MockReservationService) GetApprovedReservations(
	ctx context.Context,
	userID int64,
	page int,
) (pagination.Page[domain.ReservationView], error) {
	return callViewPage(ctx, m.GetApprovedFn, userID, page)
}

// GetWaitingReservations implements service.ReservationService.
func (m *MockReservationService) GetWaitingReservations(
	ctx context.Context,
	userID int64,
	page int,
) (pagination.Page[domain.ReservationView], error) {
	return callViewPage(ctx, m.GetWaitingFn, userID, page)
}

// GetDoneOrReviewedReservations implements service.ReservationService.
func (m *MockReservationService) GetDoneOrReviewedReservations(
	ctx context.Context,
	userID int64,
	page int,
) (pagination.Page[domain.ReservationView], error) {
	return callViewPage(ctx, m.GetDoneOrReviewedFn, userID, page)
}

// GetCanceledReservations implements service.ReservationService.
func (m *MockReservationService) GetCanceledReservations(
	ctx context.Context,
	userID int64,
	page int,
) (pagination.Page[domain.ReservationView], error) {
	return callViewPage(ctx, m.GetCanceledFn, userID, page)
}

// ListHospitalReservations implements service.ReservationService.
func (m *MockReservationService) ListHospitalReservations(
	ctx context.Context,
	ownerUserID int64,
	page int,
) (pagination.Page[domain.ReservationView], error) {
	return callViewPage(ctx, m.ListHospitalFn, ownerUserID, page)
}

// CancelReservation implements service.ReservationService.
func (m *MockReservationService) CancelReservation(ctx context.Context, reservationID int64) (domain.CancelResult, error) {
	if m.CancelReservationFn != nil {
		return m.CancelReservationFn(ctx, reservationID)
	}
	return domain.CancelResult{ReservationID: reservationID, Status: domain.ReservationStatusCanceled}, nil
}

// CancelOwnReservation implements service.ReservationService.
func (m *MockReservationService) CancelOwnReservation(
	ctx context.Context,
	userID, reservationID int64,
) (domain.CancelResult, error) {
	if m.CancelOwnReservationFn != nil {
		return m.CancelOwnReservationFn(ctx, userID, reservationID)
	}
	return domain.CancelResult{ReservationID: reservationID, Status: domain.ReservationStatusCanceled}, nil
}

// UpdateReservation implements service.ReservationService.
func (m *MockReservationService) UpdateReservation(
	ctx context.Context,
	ownerUserID, reservationID int64,
	date *time.Time,
	status *domain.ReservationStatus,
) (*domain.Reservation, error) {
	if m.UpdateReservationFn != nil {
		return m.UpdateReservationFn(ctx, ownerUserID, reservationID, date, status)
	}
	return nil, nil
}
