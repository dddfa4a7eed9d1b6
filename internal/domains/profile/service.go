package profile

import "context"

// Service exposes profile read and replace operations.
type Service interface {
	// Get returns the stored profile, or ErrProfileNotFound when the
	// profile was never written.
	Get(ctx context.Context) (*Profile, error)

	// Update validates the request and replaces the profile, creating it
	// on first write. Returns the stored profile.
	Update(ctx context.Context, req *UpdateRequest) (*Profile, error)
}
