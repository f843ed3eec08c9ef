package service

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

// AccountService owns the account lifecycle.
type AccountService interface {
	// DeleteAccount soft-deletes a user and, for partners, every hospital
	// and doctor it owns while canceling their open reservations. All
	// changes commit together or not at all.
	DeleteAccount(ctx context.Context, userID int64) (domain.DeleteResult, error)
}

// deletionStrategy removes everything a role owns inside tx. The user row
// itself is removed by the caller.
type deletionStrategy func(ctx context.Context, tx *sql.Tx, user *domain.User, at time.Time, result *domain.DeleteResult) error

type accountServiceImpl struct {
	db           store.TxBeginner
	users        store.UserStore
	hospitals    store.HospitalStore
	doctors      store.DoctorStore
	reservations store.ReservationStore
	logger       *slog.Logger
	now          func() time.Time
}

// NewAccountService creates a new AccountService.
func NewAccountService(
	db store.TxBeginner,
	users store.UserStore,
	hospitals store.HospitalStore,
	doctors store.DoctorStore,
	reservations store.ReservationStore,
	logger *slog.Logger,
) AccountService {
	if db == nil || users == nil || hospitals == nil || doctors == nil || reservations == nil {
		panic("account service dependencies cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &accountServiceImpl{
		db:           db,
		users:        users,
		hospitals:    hospitals,
		doctors:      doctors,
		reservations: reservations,
		logger:       logger.With(slog.String("component", "account_service")),
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// strategyFor returns the deletion strategy of role. Every domain.Role must
// have a case here.
func (s *accountServiceImpl) strategyFor(role domain.Role) (deletionStrategy, error) {
	switch role {
	case domain.RolePartner:
		return s.deletePartnerFacilities, nil
	case domain.RoleCustomer, domain.RoleAdmin:
		return deleteNothingOwned, nil
	default:
		return nil, domain.NewValidationError("role", fmt.Sprintf("no deletion strategy for %q", role), domain.ErrInvalidRole)
	}
}

func deleteNothingOwned(context.Context, *sql.Tx, *domain.User, time.Time, *domain.DeleteResult) error {
	return nil
}

func (s *accountServiceImpl) deletePartnerFacilities(
	ctx context.Context,
	tx *sql.Tx,
	user *domain.User,
	at time.Time,
	result *domain.DeleteResult,
) error {
	// Reservations and doctors are found through hospital ownership, which
	// still resolves after the hospitals are stamped deleted.
	n, err := s.hospitals.WithTx(tx).SoftDeleteByOwner(ctx, user.ID, at)
	if err != nil {
		return fmt.Errorf("delete hospitals: %w", err)
	}
	result.HospitalsDeleted = n

	n, err = s.doctors.WithTx(tx).SoftDeleteByOwner(ctx, user.ID, at)
	if err != nil {
		return fmt.Errorf("delete doctors: %w", err)
	}
	result.DoctorsDeleted = n

	n, err = s.reservations.WithTx(tx).CancelOpenByOwner(ctx, user.ID)
	if err != nil {
		return fmt.Errorf("cancel reservations: %w", err)
	}
	result.ReservationsCanceled = n

	return nil
}

// DeleteAccount implements AccountService.
func (s *accountServiceImpl) DeleteAccount(ctx context.Context, userID int64) (domain.DeleteResult, error) {
	log := logger.FromContextOrDefault(ctx, s.logger).With(slog.Int64("user_id", userID))

	var result domain.DeleteResult
	var rejected error

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		users := s.users.WithTx(tx)

		user, err := users.GetByID(ctx, userID)
		if err != nil {
			if store.IsNotFoundError(err) {
				rejected = err
			}
			return err
		}

		strategy, err := s.strategyFor(user.Role)
		if err != nil {
			rejected = err
			return err
		}

		result = domain.DeleteResult{UserID: user.ID, Role: user.Role}
		at := s.now()

		if err := strategy(ctx, tx, user, at, &result); err != nil {
			return err
		}

		n, err := users.SoftDelete(ctx, user.ID, at)
		if err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		if n == 0 {
			return fmt.Errorf("delete user: %w", store.ErrUserNotFound)
		}
		result.UserDeleted = n

		return nil
	})

	if err != nil {
		if rejected != nil {
			log.Debug("account deletion rejected", slog.String("reason", rejected.Error()))
			return domain.DeleteResult{}, rejected
		}
		log.Error("account deletion rolled back", slog.String("error", err.Error()))
		return domain.DeleteResult{}, store.NewStoreError("account", "delete", "cascade rolled back", err)
	}

	log.Info("account deleted",
		slog.String("role", result.Role.String()),
		slog.Int64("hospitals", result.HospitalsDeleted),
		slog.Int64("doctors", result.DoctorsDeleted),
		slog.Int64("reservations_canceled", result.ReservationsCanceled))
	return result, nil
}
