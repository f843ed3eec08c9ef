package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/phrazzld/clinic-api/internal/domain"
	"github.com/phrazzld/clinic-api/internal/pagination"
	"github.com/phrazzld/clinic-api/internal/platform/logger"
	"github.com/phrazzld/clinic-api/internal/store"
)

// UserService provides profile and administrative user operations.
type UserService interface {
	// GetProfile returns the profile of a live user.
	GetProfile(ctx context.Context, userID int64) (domain.Profile, error)

	// EditProfile updates address, phone and name. Empty arguments leave
	// the stored value unchanged.
	EditProfile(ctx context.Context, userID int64, address, phone, name string) (domain.Profile, error)

	// ListUsers returns every live user.
	ListUsers(ctx context.Context) ([]domain.User, error)

	// ListUsersPage returns one page of live users of any role. listType is
	// an optional keyword matched against name or login ID.
	ListUsersPage(ctx context.Context, pageNum int, listType string) (pagination.Page[domain.User], error)

	// ListUsersByRole returns one page of live users with the given role.
	ListUsersByRole(
		ctx context.Context,
		role domain.Role,
		pageNum int,
		listType string,
	) (pagination.Page[domain.User], error)

	// UpdateRole changes the role of a live user. A partner that still owns
	// live hospitals keeps the partner role and gets ErrOwnsFacilities.
	UpdateRole(ctx context.Context, userID int64, role domain.Role) (*domain.User, error)
}

type userServiceImpl struct {
	users     store.UserStore
	hospitals store.HospitalStore
	logger    *slog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(users store.UserStore, hospitals store.HospitalStore, logger *slog.Logger) UserService {
	if users == nil {
		panic("user store cannot be nil")
	}
	if hospitals == nil {
		panic("hospital store cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &userServiceImpl{
		users:     users,
		hospitals: hospitals,
		logger:    logger.With(slog.String("component", "user_service")),
	}
}

// GetProfile implements UserService.
func (s *userServiceImpl) GetProfile(ctx context.Context, userID int64) (domain.Profile, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if !store.IsNotFoundError(err) {
			return domain.Profile{}, NewServiceError("user", "get_profile", err)
		}
		return domain.Profile{}, err
	}
	return user.Profile(), nil
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// EditProfile implements UserService.
func (s *userServiceImpl) EditProfile(
	ctx context.Context,
	userID int64,
	address, phone, name string,
) (domain.Profile, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	update := store.ProfileUpdate{
		Name:    optional(name),
		Phone:   optional(phone),
		Address: optional(address),
	}
	if update.IsEmpty() {
		return domain.Profile{}, ErrEmptyUpdate
	}

	user, err := s.users.UpdateProfile(ctx, userID, update)
	if err != nil {
		if store.IsNotFoundError(err) {
			log.Debug("profile edit for missing user", slog.Int64("user_id", userID))
			return domain.Profile{}, err
		}
		return domain.Profile{}, NewServiceError("user", "edit_profile", err)
	}

	log.Info("profile edited", slog.Int64("user_id", userID))
	return user.Profile(), nil
}

// ListUsers implements UserService.
func (s *userServiceImpl) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, NewServiceError("user", "list", err)
	}
	return users, nil
}

// ListUsersPage implements UserService.
func (s *userServiceImpl) ListUsersPage(
	ctx context.Context,
	pageNum int,
	listType string,
) (pagination.Page[domain.User], error) {
	return s.listPage(ctx, domain.UserListFilter{Keyword: listType}, pageNum)
}

// ListUsersByRole implements UserService.
func (s *userServiceImpl) ListUsersByRole(
	ctx context.Context,
	role domain.Role,
	pageNum int,
	listType string,
) (pagination.Page[domain.User], error) {
	if err := role.Validate(); err != nil {
		return pagination.Page[domain.User]{}, err
	}
	return s.listPage(ctx, domain.UserListFilter{Role: &role, Keyword: listType}, pageNum)
}

func (s *userServiceImpl) listPage(
	ctx context.Context,
	filter domain.UserListFilter,
	pageNum int,
) (pagination.Page[domain.User], error) {
	window := pagination.Paginate(pageNum, pagination.DefaultLimit)

	result, err := s.users.ListPage(ctx, filter, window.Limit, window.Offset)
	if err != nil {
		return pagination.Page[domain.User]{}, NewServiceError("user", "list_page", err)
	}

	return pagination.NewPage(result.Rows, result.Count, pageNum, window.Limit), nil
}

// UpdateRole implements UserService.
func (s *userServiceImpl) UpdateRole(ctx context.Context, userID int64, role domain.Role) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := role.Validate(); err != nil {
		return nil, err
	}

	current, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, NewServiceError("user", "update_role", err)
	}

	// A partner keeps its role while it owns live hospitals. Account
	// deletion chooses its cascade from the role.
	if current.Role == domain.RolePartner && role != domain.RolePartner {
		owned, err := s.hospitals.ListByOwner(ctx, userID)
		if err != nil {
			return nil, NewServiceError("user", "update_role", err)
		}
		if len(owned) > 0 {
			log.Debug("role change rejected",
				slog.Int64("user_id", userID),
				slog.Int("hospitals", len(owned)))
			return nil, ErrOwnsFacilities
		}
	}

	user, err := s.users.UpdateRole(ctx, userID, role)
	if err != nil {
		if store.IsNotFoundError(err) {
			return nil, err
		}
		return nil, NewServiceError("user", "update_role", err)
	}

	log.Info("role updated",
		slog.Int64("user_id", userID),
		slog.String("role", role.String()))
	return user, nil
}
