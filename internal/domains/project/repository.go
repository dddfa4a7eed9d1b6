package project

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for projects.
type Repository interface {
	// List returns all projects in creation order (oldest first).
	List(ctx context.Context) ([]*Project, error)

	// FindByID returns the project, or ErrProjectNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*Project, error)

	// Create stores a new project and returns the stored row.
	Create(ctx context.Context, p *Project) (*Project, error)

	// Update replaces the stored fields and returns the stored row.
	// Returns ErrProjectNotFound when the id does not exist.
	Update(ctx context.Context, p *Project) (*Project, error)

	// Delete removes the project. Returns ErrProjectNotFound when the id
	// does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
