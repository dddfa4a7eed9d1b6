package profile

import "context"

// Repository is the data access contract for the singleton profile.
// There is deliberately no Delete: once bootstrapped the profile exists for
// the lifetime of the system.
type Repository interface {
	// Get returns the first (and in practice only) profile row.
	// Returns ErrProfileNotFound before the first update.
	Get(ctx context.Context) (*Profile, error)

	// Upsert updates the existing profile or creates it when absent,
	// returning the stored row.
	Upsert(ctx context.Context, p *Profile) (*Profile, error)
}
