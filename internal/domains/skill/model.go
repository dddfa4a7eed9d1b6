package skill

import (
	"time"

	"github.com/google/uuid"
)

// Skill categories. The set is fixed; the validation layer rejects anything
// else.
const (
	CategoryFrontend = "Frontend"
	CategoryBackend  = "Backend"
	CategoryTools    = "Tools"
)

// Skill represents a single technology the portfolio owner lists.
type Skill struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Category  string    `db:"category" json:"category"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
