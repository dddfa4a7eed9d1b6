package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/project"
)

type projectService struct {
	repo project.Repository
}

func NewProjectService(repo project.Repository) project.Service {
	return &projectService{repo: repo}
}

func (s *projectService) List(ctx context.Context) ([]*project.Project, error) {
	return s.repo.List(ctx)
}

func (s *projectService) Create(ctx context.Context, req *project.CreateRequest) (*project.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := req.ToEntity()
	p.ID = uuid.New()
	now := time.Now().UTC()
	p.CreatedAt = now
	p.UpdatedAt = now

	return s.repo.Create(ctx, p)
}

func (s *projectService) Update(ctx context.Context, id uuid.UUID, req *project.UpdateRequest) (*project.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyToEntity(existing)
	existing.UpdatedAt = time.Now().UTC()

	return s.repo.Update(ctx, existing)
}

func (s *projectService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
