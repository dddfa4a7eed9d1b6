package experience

import (
	"context"

	"github.com/google/uuid"
)

// Service exposes experience CRUD operations.
type Service interface {
	List(ctx context.Context) ([]*Experience, error)
	Create(ctx context.Context, req *CreateRequest) (*Experience, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateRequest) (*Experience, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
