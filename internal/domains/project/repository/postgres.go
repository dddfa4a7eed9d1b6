package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"portfolio-backend/internal/domains/project"
)

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) project.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) List(ctx context.Context) ([]*project.Project, error) {
	query := `
		SELECT id, title, description, image, link, tech, created_at, updated_at
		FROM projects
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	projects := make([]*project.Project, 0)
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return projects, nil
}

func (r *postgresRepository) FindByID(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	query := `
		SELECT id, title, description, image, link, tech, created_at, updated_at
		FROM projects
		WHERE id = $1
	`

	p, err := scanProject(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, project.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project: %w", err)
	}

	return p, nil
}

func (r *postgresRepository) Create(ctx context.Context, p *project.Project) (*project.Project, error) {
	tech, err := p.Tech.Serialize()
	if err != nil {
		return nil, err
	}

	query := `
		INSERT INTO projects (id, title, description, image, link, tech, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, title, description, image, link, tech, created_at, updated_at
	`

	stored, err := scanProject(r.pool.QueryRow(ctx, query,
		p.ID, p.Title, p.Description, p.Image, p.Link, tech, p.CreatedAt, p.UpdatedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	return stored, nil
}

func (r *postgresRepository) Update(ctx context.Context, p *project.Project) (*project.Project, error) {
	tech, err := p.Tech.Serialize()
	if err != nil {
		return nil, err
	}

	query := `
		UPDATE projects
		SET title = $2, description = $3, image = $4, link = $5, tech = $6, updated_at = $7
		WHERE id = $1
		RETURNING id, title, description, image, link, tech, created_at, updated_at
	`

	stored, err := scanProject(r.pool.QueryRow(ctx, query,
		p.ID, p.Title, p.Description, p.Image, p.Link, tech, p.UpdatedAt,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, project.ErrProjectNotFound
		}
		return nil, fmt.Errorf("update project: %w", err)
	}

	return stored, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return project.ErrProjectNotFound
	}

	return nil
}

func scanProject(row pgx.Row) (*project.Project, error) {
	var p project.Project
	var tech string

	err := row.Scan(
		&p.ID,
		&p.Title,
		&p.Description,
		&p.Image,
		&p.Link,
		&tech,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Tech, err = project.ParseTechList(tech)
	if err != nil {
		return nil, err
	}

	return &p, nil
}
