package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/skill"
)

type skillService struct {
	repo skill.Repository
}

func NewSkillService(repo skill.Repository) skill.Service {
	return &skillService{repo: repo}
}

func (s *skillService) List(ctx context.Context) ([]*skill.Skill, error) {
	return s.repo.List(ctx)
}

func (s *skillService) Create(ctx context.Context, req *skill.CreateRequest) (*skill.Skill, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	entity := req.ToEntity()
	entity.ID = uuid.New()
	entity.CreatedAt = time.Now().UTC()

	return s.repo.Create(ctx, entity)
}

func (s *skillService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
