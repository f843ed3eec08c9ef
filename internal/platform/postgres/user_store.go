package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/clinic-api/internal/domain"
	"github.com/phrazzld/clinic-api/internal/platform/logger"
	"github.com/phrazzld/clinic-api/internal/store"
)

const userColumns = `id, login_id, hashed_password, name, phone, address, id_number, role, created_at, updated_at`

// PostgresUserStore implements the store.UserStore interface
// using a PostgreSQL database as the storage backend.
type PostgresUserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresUserStore creates a new PostgreSQL implementation of the UserStore interface.
// It accepts a database connection or transaction that is managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresUserStore(db store.DBTX, logger *slog.Logger) *PostgresUserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresUserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure PostgresUserStore implements store.UserStore interface
var _ store.UserStore = (*PostgresUserStore)(nil)

// WithTx implements store.UserStore.WithTx
func (s *PostgresUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &PostgresUserStore{
		db:     tx,
		logger: s.logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var (
		user domain.User
		role string
	)
	err := row.Scan(
		&user.ID,
		&user.LoginID,
		&user.HashedPassword,
		&user.Name,
		&user.Phone,
		&user.Address,
		&user.IDNumber,
		&role,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	user.Role = domain.Role(role)
	return &user, nil
}

// Create implements store.UserStore.Create
// Returns store.ErrLoginIDExists if a live user already holds the login ID.
func (s *PostgresUserStore) Create(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during create",
			slog.String("error", err.Error()),
			slog.String("login_id", user.LoginID))
		return err
	}

	query := `
		INSERT INTO users (login_id, hashed_password, name, phone, address, id_number, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := s.db.QueryRowContext(
		ctx,
		query,
		user.LoginID,
		user.HashedPassword,
		user.Name,
		user.Phone,
		user.Address,
		user.IDNumber,
		string(user.Role),
		user.CreatedAt,
		user.UpdatedAt,
	).Scan(&user.ID)
	if err != nil {
		if IsUniqueViolation(err) {
			log.Debug("login id already exists", slog.String("login_id", user.LoginID))
			return store.ErrLoginIDExists
		}
		log.Error("failed to create user",
			slog.String("error", err.Error()),
			slog.String("login_id", user.LoginID))
		return MapError(err)
	}

	log.Info("user created",
		slog.Int64("user_id", user.ID),
		slog.String("role", user.Role.String()))
	return nil
}

// GetByID implements store.UserStore.GetByID
func (s *PostgresUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND deleted_at IS NULL`

	user, err := scanUser(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		err = mapNotFound(err, store.ErrUserNotFound)
		if !store.IsNotFoundError(err) {
			log.Error("failed to get user by id",
				slog.String("error", err.Error()),
				slog.Int64("user_id", id))
		}
		return nil, err
	}
	return user, nil
}

// GetByLoginID implements store.UserStore.GetByLoginID
// The match is exact.
func (s *PostgresUserStore) GetByLoginID(ctx context.Context, loginID string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + userColumns + ` FROM users WHERE login_id = $1 AND deleted_at IS NULL`

	user, err := scanUser(s.db.QueryRowContext(ctx, query, loginID))
	if err != nil {
		err = mapNotFound(err, store.ErrUserNotFound)
		if !store.IsNotFoundError(err) {
			log.Error("failed to get user by login id", slog.String("error", err.Error()))
		}
		return nil, err
	}
	return user, nil
}

func nullString(p *string) sql.NullString {
	if p == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *p, Valid: true}
}

// UpdateProfile implements store.UserStore.UpdateProfile
func (s *PostgresUserStore) UpdateProfile(
	ctx context.Context,
	id int64,
	update store.ProfileUpdate,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		UPDATE users
		SET name = COALESCE($2, name),
		    phone = COALESCE($3, phone),
		    address = COALESCE($4, address),
		    updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + userColumns

	user, err := scanUser(s.db.QueryRowContext(
		ctx,
		query,
		id,
		nullString(update.Name),
		nullString(update.Phone),
		nullString(update.Address),
		time.Now().UTC(),
	))
	if err != nil {
		err = mapNotFound(err, store.ErrUserNotFound)
		if !store.IsNotFoundError(err) {
			log.Error("failed to update profile",
				slog.String("error", err.Error()),
				slog.Int64("user_id", id))
		}
		return nil, err
	}

	log.Debug("profile updated", slog.Int64("user_id", id))
	return user, nil
}

// UpdateRole implements store.UserStore.UpdateRole
func (s *PostgresUserStore) UpdateRole(ctx context.Context, id int64, role domain.Role) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := role.Validate(); err != nil {
		return nil, err
	}

	query := `
		UPDATE users
		SET role = $2, updated_at = $3
		WHERE id = $1 AND deleted_at IS NULL
		RETURNING ` + userColumns

	user, err := scanUser(s.db.QueryRowContext(ctx, query, id, string(role), time.Now().UTC()))
	if err != nil {
		err = mapNotFound(err, store.ErrUserNotFound)
		if !store.IsNotFoundError(err) {
			log.Error("failed to update role",
				slog.String("error", err.Error()),
				slog.Int64("user_id", id))
		}
		return nil, err
	}

	log.Info("user role updated",
		slog.Int64("user_id", id),
		slog.String("role", role.String()))
	return user, nil
}

// ListAll implements store.UserStore.ListAll
func (s *PostgresUserStore) ListAll(ctx context.Context) ([]domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `SELECT ` + userColumns + ` FROM users WHERE deleted_at IS NULL ORDER BY id`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to list users", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	return collectUsers(rows)
}

func collectUsers(rows *sql.Rows) ([]domain.User, error) {
	users := []domain.User{}
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}

// userFilterClause builds the WHERE clause for filter. Placeholders start
// at $1.
func userFilterClause(filter domain.UserListFilter) (string, []any) {
	conditions := []string{"deleted_at IS NULL"}
	var args []any

	if filter.Role != nil {
		args = append(args, string(*filter.Role))
		conditions = append(conditions, fmt.Sprintf("role = $%d", len(args)))
	}
	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		args = append(args, "%"+escapeLike(keyword)+"%")
		n := len(args)
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR login_id ILIKE $%d)", n, n))
	}

	return " WHERE " + strings.Join(conditions, " AND "), args
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ListPage implements store.UserStore.ListPage
func (s *PostgresUserStore) ListPage(
	ctx context.Context,
	filter domain.UserListFilter,
	limit, offset int,
) (store.Page[domain.User], error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	where, args := userFilterClause(filter)

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`+where, args...).Scan(&count); err != nil {
		log.Error("failed to count users", slog.String("error", err.Error()))
		return store.Page[domain.User]{}, MapError(err)
	}

	pageArgs := append(append([]any{}, args...), limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM users%s ORDER BY id LIMIT $%d OFFSET $%d`,
		userColumns, where, len(args)+1, len(args)+2)

	rows, err := s.db.QueryContext(ctx, query, pageArgs...)
	if err != nil {
		log.Error("failed to list user page", slog.String("error", err.Error()))
		return store.Page[domain.User]{}, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	users, err := collectUsers(rows)
	if err != nil {
		return store.Page[domain.User]{}, err
	}

	return store.Page[domain.User]{Count: count, Rows: users}, nil
}

// SoftDelete implements store.UserStore.SoftDelete
func (s *PostgresUserStore) SoftDelete(ctx context.Context, id int64, at time.Time) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx,
		`UPDATE users SET deleted_at = $2, updated_at = $2 WHERE id = $1 AND deleted_at IS NULL`,
		id, at)
	if err != nil {
		log.Error("failed to soft delete user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return 0, MapError(err)
	}

	n, err := rowsAffected(result)
	if err != nil {
		return 0, err
	}

	log.Debug("user soft deleted", slog.Int64("user_id", id), slog.Int64("rows", n))
	return n, nil
}
