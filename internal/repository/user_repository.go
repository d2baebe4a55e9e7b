package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abkoo/helpdesk/internal/domain"
	apperrors "github.com/abkoo/helpdesk/pkg/util/errorutil"
)

// UserRepository defines persistence access for accounts. Deletion is always
// soft: rows stay so ticket references keep resolving.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	FindActiveByLogin(ctx context.Context, identifier string) (*domain.User, error)
	ListActive(ctx context.Context) ([]domain.User, error)
	Deactivate(ctx context.Context, id string) error
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (identifier, display_name, credential_hash, role)
        VALUES ($1, $2, $3, $4)
        RETURNING id, active, created_at`

	if err := r.pool.QueryRow(ctx, query,
		user.Identifier,
		user.DisplayName,
		user.CredentialHash,
		user.Role,
	).Scan(&user.ID, &user.Active, &user.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewConflict("identifier already taken", map[string]any{"identifier": user.Identifier})
		}
		return apperrors.MapError(err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const query = `
        SELECT id, identifier, display_name, credential_hash, role, active, created_at, deleted_at
        FROM users WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

// FindActiveByLogin looks up a user by exact identifier match. Inactive users
// are indistinguishable from nonexistent ones: both return a not-found error,
// so the lookup never leaks that a disabled account exists.
func (r *userRepository) FindActiveByLogin(ctx context.Context, identifier string) (*domain.User, error) {
	const query = `
        SELECT id, identifier, display_name, credential_hash, role, active, created_at, deleted_at
        FROM users WHERE identifier=$1 AND active=TRUE`
	return r.fetchSingle(ctx, query, strings.TrimSpace(identifier))
}

func (r *userRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.User, error) {
	var user domain.User
	if err := r.pool.QueryRow(ctx, query, arg).Scan(
		&user.ID,
		&user.Identifier,
		&user.DisplayName,
		&user.CredentialHash,
		&user.Role,
		&user.Active,
		&user.CreatedAt,
		&user.DeletedAt,
	); err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, apperrors.MapError(err)
	}
	return &user, nil
}

func (r *userRepository) ListActive(ctx context.Context) ([]domain.User, error) {
	const query = `
        SELECT id, identifier, display_name, credential_hash, role, active, created_at, deleted_at
        FROM users WHERE active=TRUE
        ORDER BY display_name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	defer rows.Close()

	var result []domain.User
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.ID,
			&user.Identifier,
			&user.DisplayName,
			&user.CredentialHash,
			&user.Role,
			&user.Active,
			&user.CreatedAt,
			&user.DeletedAt,
		); err != nil {
			return nil, apperrors.MapError(err)
		}
		result = append(result, user)
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.MapError(err)
	}
	return result, nil
}

// Deactivate soft-deletes an account. Repeating the call on an already
// inactive user succeeds without moving the deletion timestamp; a missing id
// is a not-found error.
func (r *userRepository) Deactivate(ctx context.Context, id string) error {
	const query = `
        UPDATE users SET active=FALSE, deleted_at=COALESCE(deleted_at, now())
        WHERE id=$1`

	cmd, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return apperrors.MapError(err)
	}
	if cmd.RowsAffected() == 0 {
		return apperrors.NewNotFound("user", map[string]any{"id": id})
	}
	return nil
}
