package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/phrazzld/clinic-api/internal/domain"
)

// ProfileUpdate carries the editable profile fields. Nil fields are left
// untouched.
type ProfileUpdate struct {
	Name    *string
	Phone   *string
	Address *string
}

// IsEmpty reports whether the update changes nothing.
func (p ProfileUpdate) IsEmpty() bool {
	return p.Name == nil && p.Phone == nil && p.Address == nil
}

// UserStore defines the interface for user data persistence.
// Soft-deleted users are invisible to every read method.
type UserStore interface {
	// Create saves a new user and sets its ID.
	// Returns ErrLoginIDExists if the login ID is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a live user by ID.
	// Returns ErrUserNotFound if the user does not exist or was deleted.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByLoginID retrieves a live user by login ID.
	// Returns ErrUserNotFound if the user does not exist or was deleted.
	GetByLoginID(ctx context.Context, loginID string) (*domain.User, error)

	// UpdateProfile applies the non-nil fields of update and returns the
	// resulting user. Returns ErrUserNotFound if no live user matched.
	UpdateProfile(ctx context.Context, id int64, update ProfileUpdate) (*domain.User, error)

	// UpdateRole changes the role of a live user.
	// Returns ErrUserNotFound if no live user matched.
	UpdateRole(ctx context.Context, id int64, role domain.Role) (*domain.User, error)

	// ListAll returns every live user ordered by ID.
	ListAll(ctx context.Context) ([]domain.User, error)

	// ListPage returns one window of live users matching filter, ordered by
	// ID, together with the total match count.
	ListPage(ctx context.Context, filter domain.UserListFilter, limit, offset int) (Page[domain.User], error)

	// SoftDelete stamps deleted_at on a live user and returns the number of
	// rows affected (0 or 1).
	SoftDelete(ctx context.Context, id int64, at time.Time) (int64, error)

	// WithTx returns a new UserStore instance that uses the provided transaction.
	WithTx(tx *sql.Tx) UserStore
}
