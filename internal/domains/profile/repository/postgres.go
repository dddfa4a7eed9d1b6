package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/profile"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) profile.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Get(ctx context.Context) (*profile.Profile, error) {
	// Singleton table: at most one row ever exists.
	query := `
		SELECT id, name, title, bio, email, github, linkedin, updated_at
		FROM profiles
		LIMIT 1
	`

	var p profile.Profile
	err := r.pool.QueryRow(ctx, query).Scan(
		&p.ID,
		&p.Name,
		&p.Title,
		&p.Bio,
		&p.Email,
		&p.GitHub,
		&p.LinkedIn,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, profile.ErrProfileNotFound
		}
		return nil, fmt.Errorf("get profile: %w", err)
	}

	return &p, nil
}

func (r *postgresRepository) Upsert(ctx context.Context, p *profile.Profile) (*profile.Profile, error) {
	existing, err := r.Get(ctx)
	if err != nil {
		if !errors.Is(err, profile.ErrProfileNotFound) {
			return nil, err
		}
		return r.insert(ctx, p)
	}

	return r.update(ctx, existing.ID, p)
}

func (r *postgresRepository) insert(ctx context.Context, p *profile.Profile) (*profile.Profile, error) {
	query := `
		INSERT INTO profiles (id, name, title, bio, email, github, linkedin, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, title, bio, email, github, linkedin, updated_at
	`

	var stored profile.Profile
	err := r.pool.QueryRow(ctx, query,
		p.ID, p.Name, p.Title, p.Bio, p.Email, p.GitHub, p.LinkedIn, p.UpdatedAt,
	).Scan(
		&stored.ID, &stored.Name, &stored.Title, &stored.Bio,
		&stored.Email, &stored.GitHub, &stored.LinkedIn, &stored.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert profile: %w", err)
	}

	return &stored, nil
}

func (r *postgresRepository) update(ctx context.Context, id uuid.UUID, p *profile.Profile) (*profile.Profile, error) {
	query := `
		UPDATE profiles
		SET name = $2, title = $3, bio = $4, email = $5, github = $6, linkedin = $7, updated_at = $8
		WHERE id = $1
		RETURNING id, name, title, bio, email, github, linkedin, updated_at
	`

	var stored profile.Profile
	err := r.pool.QueryRow(ctx, query,
		id, p.Name, p.Title, p.Bio, p.Email, p.GitHub, p.LinkedIn, p.UpdatedAt,
	).Scan(
		&stored.ID, &stored.Name, &stored.Title, &stored.Bio,
		&stored.Email, &stored.GitHub, &stored.LinkedIn, &stored.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("update profile: %w", err)
	}

	return &stored, nil
}
