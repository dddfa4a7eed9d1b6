package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/auth"
)

// postgresRepository is the concrete auth.Repository. Unexported so callers
// depend on the interface.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) auth.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, account *auth.AdminAccount) error {
	query := `
		INSERT INTO admin_accounts (id, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query,
		account.ID,
		account.Email,
		account.PasswordHash,
		account.CreatedAt,
	)
	if err != nil {
		// 23505 = unique_violation on the email column
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return auth.ErrEmailAlreadyExists
		}
		return fmt.Errorf("create admin account: %w", err)
	}

	return nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*auth.AdminAccount, error) {
	query := `
		SELECT id, email, password_hash, created_at
		FROM admin_accounts
		WHERE id = $1
	`

	var a auth.AdminAccount
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.Email,
		&a.PasswordHash,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account by id: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) FindByEmail(ctx context.Context, email string) (*auth.AdminAccount, error) {
	query := `
		SELECT id, email, password_hash, created_at
		FROM admin_accounts
		WHERE email = $1
	`

	var a auth.AdminAccount
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&a.ID,
		&a.Email,
		&a.PasswordHash,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, auth.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account by email: %w", err)
	}

	return &a, nil
}

func (r *postgresRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM admin_accounts WHERE email = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, email).Scan(&exists); err != nil {
		return false, fmt.Errorf("check email exists: %w", err)
	}

	return exists, nil
}
