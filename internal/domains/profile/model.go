package profile

import (
	"time"

	"github.com/google/uuid"
)

// Profile is a logical singleton: the repository always resolves the first
// row, and updates create the row when none exists yet. There is no delete.
type Profile struct {
	ID        uuid.UUID `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Title     string    `db:"title" json:"title"`
	Bio       string    `db:"bio" json:"bio"`
	Email     string    `db:"email" json:"email"`
	GitHub    string    `db:"github" json:"github"`
	LinkedIn  string    `db:"linkedin" json:"linkedin"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}
