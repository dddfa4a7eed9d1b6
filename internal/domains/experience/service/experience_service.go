package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/experience"
)

type experienceService struct {
	repo experience.Repository
}

func NewExperienceService(repo experience.Repository) experience.Service {
	return &experienceService{repo: repo}
}

func (s *experienceService) List(ctx context.Context) ([]*experience.Experience, error) {
	return s.repo.List(ctx)
}

func (s *experienceService) Create(ctx context.Context, req *experience.CreateRequest) (*experience.Experience, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	e := req.ToEntity()
	e.ID = uuid.New()
	now := time.Now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now

	return s.repo.Create(ctx, e)
}

func (s *experienceService) Update(ctx context.Context, id uuid.UUID, req *experience.UpdateRequest) (*experience.Experience, error) {
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

func (s *experienceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
