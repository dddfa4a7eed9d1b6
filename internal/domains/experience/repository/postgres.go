package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/experience"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) experience.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context) ([]*experience.Experience, error) {
	query := `
		SELECT id, role, company, period, description, created_at, updated_at
		FROM experience
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list experience: %w", err)
	}
	defer rows.Close()

	entries := make([]*experience.Experience, 0)
	for rows.Next() {
		var e experience.Experience
		err := rows.Scan(&e.ID, &e.Role, &e.Company, &e.Period, &e.Description, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan experience: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list experience: %w", err)
	}

	return entries, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*experience.Experience, error) {
	query := `
		SELECT id, role, company, period, description, created_at, updated_at
		FROM experience
		WHERE id = $1
	`

	var e experience.Experience
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&e.ID, &e.Role, &e.Company, &e.Period, &e.Description, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, experience.ErrExperienceNotFound
		}
		return nil, fmt.Errorf("find experience: %w", err)
	}

	return &e, nil
}

func (r *postgresRepository) Create(ctx context.Context, e *experience.Experience) (*experience.Experience, error) {
	query := `
		INSERT INTO experience (id, role, company, period, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, role, company, period, description, created_at, updated_at
	`

	var stored experience.Experience
	err := r.pool.QueryRow(ctx, query,
		e.ID, e.Role, e.Company, e.Period, e.Description, e.CreatedAt, e.UpdatedAt,
	).Scan(&stored.ID, &stored.Role, &stored.Company, &stored.Period, &stored.Description, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("create experience: %w", err)
	}

	return &stored, nil
}

func (r *postgresRepository) Update(ctx context.Context, e *experience.Experience) (*experience.Experience, error) {
	query := `
		UPDATE experience
		SET role = $2, company = $3, period = $4, description = $5, updated_at = $6
		WHERE id = $1
		RETURNING id, role, company, period, description, created_at, updated_at
	`

	var stored experience.Experience
	err := r.pool.QueryRow(ctx, query,
		e.ID, e.Role, e.Company, e.Period, e.Description, e.UpdatedAt,
	).Scan(&stored.ID, &stored.Role, &stored.Company, &stored.Period, &stored.Description, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, experience.ErrExperienceNotFound
		}
		return nil, fmt.Errorf("update experience: %w", err)
	}

	return &stored, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM experience WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete experience: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return experience.ErrExperienceNotFound
	}

	return nil
}
