package auth

import (
	"context"

	"github.com/google/uuid"
)

// SessionStore holds the server-side session records keyed by the opaque
// token the client carries in its cookie. Records are durable across
// application restarts and expire after the configured TTL.
type SessionStore interface {
	// Create issues a new random token bound to the account.
	Create(ctx context.Context, accountID uuid.UUID) (token string, err error)

	// Resolve returns the account id behind a live token.
	// Returns ErrSessionNotFound for unknown or expired tokens.
	Resolve(ctx context.Context, token string) (uuid.UUID, error)

	// Delete invalidates a token. Deleting an unknown token is not an
	// error (logout is idempotent).
	Delete(ctx context.Context, token string) error
}
