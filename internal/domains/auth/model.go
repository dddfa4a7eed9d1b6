package auth

import (
	"time"

	"github.com/google/uuid"
)

// AdminAccount is the single credentialed identity behind the CMS. The
// bootstrap path creates exactly one; registration refuses duplicates by
// email but the schema does not otherwise enforce singularity.
type AdminAccount struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"` // never expose in JSON
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Session is the server-side record behind the cookie token. Expiry is
// enforced by the store; a resolved session is always live.
type Session struct {
	Token     string    `json:"-"`
	AccountID uuid.UUID `json:"account_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
