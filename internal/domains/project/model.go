package project

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a portfolio project entry.
type Project struct {
	ID          uuid.UUID `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	Image       string    `db:"image" json:"image"`
	Link        string    `db:"link" json:"link"`
	Tech        TechList  `db:"tech" json:"tech"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// DefaultLink is stored when a project is created without a link.
const DefaultLink = "#"
