package project

import (
	"context"

	"github.com/google/uuid"
)

// Service exposes project CRUD operations.
type Service interface {
	List(ctx context.Context) ([]*Project, error)
	Create(ctx context.Context, req *CreateRequest) (*Project, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateRequest) (*Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
