package skill

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for skills.
type Repository interface {
	// List returns all skills in creation order (oldest first).
	List(ctx context.Context) ([]*Skill, error)

	// Create stores a new skill and returns the stored row.
	Create(ctx context.Context, s *Skill) (*Skill, error)

	// Delete removes the skill. Returns ErrSkillNotFound when the id does
	// not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
