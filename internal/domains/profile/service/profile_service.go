package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"portfolio-backend/internal/domains/profile"
)

type profileService struct {
	repo profile.Repository
}

func NewProfileService(repo profile.Repository) profile.Service {
	return &profileService{repo: repo}
}

func (s *profileService) Get(ctx context.Context) (*profile.Profile, error) {
	return s.repo.Get(ctx)
}

func (s *profileService) Update(ctx context.Context, req *profile.UpdateRequest) (*profile.Profile, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	p := &profile.Profile{
		ID:        uuid.New(),
		UpdatedAt: time.Now().UTC(),
	}
	req.ApplyToEntity(p)

	// The repository keeps the existing row's id when one is already
	// stored; the fresh id above only lands on first write.
	return s.repo.Upsert(ctx, p)
}
