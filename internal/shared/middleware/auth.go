package middleware

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"portfolio-backend/internal/shared/response"
)

// SessionResolver resolves a session token to the account it belongs to.
// Defined here (not in the auth domain) so the middleware has no dependency
// on domain packages.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (uuid.UUID, error)
}

const (
	// ContextKeyAccountID is where RequireAuth stores the authenticated
	// account id for downstream handlers.
	ContextKeyAccountID = "account_id"
)

// RequireAuth gates mutating routes behind a valid, non-expired session.
// The token travels in an HttpOnly cookie; the session record lives
// server-side, so an unknown or expired token fails here before any handler
// or store mutation runs.
func RequireAuth(cookieName string, sessions SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			response.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}

		accountID, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			response.Unauthorized(c, "Unauthorized")
			c.Abort()
			return
		}

		c.Set(ContextKeyAccountID, accountID)
		c.Next()
	}
}

// GetAccountID retrieves the authenticated account id set by RequireAuth.
func GetAccountID(c *gin.Context) (uuid.UUID, error) {
	v, exists := c.Get(ContextKeyAccountID)
	if !exists {
		return uuid.Nil, ErrAccountIDNotFound
	}

	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil, ErrInvalidAccountID
	}

	return id, nil
}

var (
	ErrAccountIDNotFound = fmt.Errorf("account_id not found in context")
	ErrInvalidAccountID  = fmt.Errorf("invalid account_id type in context")
)
