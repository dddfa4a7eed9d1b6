package skill

import (
	"context"

	"github.com/google/uuid"
)

// Service exposes skill operations. Skills are append-and-remove only;
// there is no update.
type Service interface {
	List(ctx context.Context) ([]*Skill, error)
	Create(ctx context.Context, req *CreateRequest) (*Skill, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
