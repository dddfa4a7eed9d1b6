package experience

import (
	"time"

	"github.com/google/uuid"
)

// Experience represents a single career entry. Period is free text
// ("2021 - Present") rather than structured dates.
type Experience struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Role        string    `db:"role" json:"role"`
	Company     string    `db:"company" json:"company"`
	Period      string    `db:"period" json:"period"`
	Description string    `db:"description" json:"description"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}
