package experience

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for experience entries.
type Repository interface {
	// List returns all entries in creation order (oldest first).
	List(ctx context.Context) ([]*Experience, error)

	// FindByID returns the entry, or ErrExperienceNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*Experience, error)

	// Create stores a new entry and returns the stored row.
	Create(ctx context.Context, e *Experience) (*Experience, error)

	// Update replaces the stored fields and returns the stored row.
	// Returns ErrExperienceNotFound when the id does not exist.
	Update(ctx context.Context, e *Experience) (*Experience, error)

	// Delete removes the entry. Returns ErrExperienceNotFound when the id
	// does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
