package skill

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateRequest - POST /api/skills.
type CreateRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

func (r *CreateRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Category = strings.TrimSpace(r.Category)
}

func (r *CreateRequest) Validate() error {
	r.normalize()
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
		validation.Field(&r.Category,
			validation.Required.Error("category is required"),
			validation.In(CategoryFrontend, CategoryBackend, CategoryTools).
				Error("category must be one of Frontend, Backend, Tools"),
		),
	)
}

func (r *CreateRequest) ToEntity() *Skill {
	return &Skill{
		Name:     r.Name,
		Category: r.Category,
	}
}
