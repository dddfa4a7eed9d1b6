package auth

import (
	"context"
)

// Service is the business logic contract for authentication.
type Service interface {
	// Register creates the admin account.
	// Returns ErrEmailAlreadyExists when the email is taken.
	Register(ctx context.Context, req RegisterRequest) (*AdminAccount, error)

	// Login verifies credentials and issues a session token.
	// Unknown email and wrong password both return ErrInvalidCredentials.
	Login(ctx context.Context, req LoginRequest) (*AdminAccount, string, error)

	// Logout invalidates the session token. Idempotent.
	Logout(ctx context.Context, token string) error

	// CurrentUser resolves a session token to its account.
	// Returns ErrUnauthorized for missing, expired or unknown tokens.
	CurrentUser(ctx context.Context, token string) (*AdminAccount, error)
}
