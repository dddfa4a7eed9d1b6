package auth

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the data access contract for admin accounts.
type Repository interface {
	// Create persists a new account.
	// Returns ErrEmailAlreadyExists when the email is taken.
	Create(ctx context.Context, account *AdminAccount) error

	// FindByID looks an account up by id.
	// Returns ErrAccountNotFound when it does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*AdminAccount, error)

	// FindByEmail looks an account up by email (login path).
	// Returns ErrAccountNotFound when it does not exist.
	FindByEmail(ctx context.Context, email string) (*AdminAccount, error)

	// ExistsByEmail reports whether an account with the email exists.
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
