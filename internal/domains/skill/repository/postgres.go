package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/skill"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) skill.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context) ([]*skill.Skill, error) {
	query := `
		SELECT id, name, category, created_at
		FROM skills
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer rows.Close()

	skills := make([]*skill.Skill, 0)
	for rows.Next() {
		var s skill.Skill
		if err := rows.Scan(&s.ID, &s.Name, &s.Category, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		skills = append(skills, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}

	return skills, nil
}

func (r *postgresRepository) Create(ctx context.Context, s *skill.Skill) (*skill.Skill, error) {
	query := `
		INSERT INTO skills (id, name, category, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, category, created_at
	`

	var stored skill.Skill
	err := r.pool.QueryRow(ctx, query, s.ID, s.Name, s.Category, s.CreatedAt).
		Scan(&stored.ID, &stored.Name, &stored.Category, &stored.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create skill: %w", err)
	}

	return &stored, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return skill.ErrSkillNotFound
	}

	return nil
}
