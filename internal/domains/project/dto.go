package project

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateRequest - POST /api/projects.
type CreateRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Link        string   `json:"link"`
	Tech        TechList `json:"tech"`
}

func (r *CreateRequest) normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Image = strings.TrimSpace(r.Image)
	r.Link = strings.TrimSpace(r.Link)
}

func (r *CreateRequest) Validate() error {
	r.normalize()
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Description, validation.Required.Error("description is required")),
		validation.Field(&r.Image, validation.Required.Error("image is required")),
	)
}

// ToEntity builds a project from the request. Link falls back to the
// placeholder anchor when omitted.
func (r *CreateRequest) ToEntity() *Project {
	link := r.Link
	if link == "" {
		link = DefaultLink
	}
	tech := r.Tech
	if tech == nil {
		tech = TechList{}
	}
	return &Project{
		Title:       r.Title,
		Description: r.Description,
		Image:       r.Image,
		Link:        link,
		Tech:        tech,
	}
}

// UpdateRequest - PUT /api/projects/:id. Nil fields are left unchanged.
type UpdateRequest struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Image       *string   `json:"image"`
	Link        *string   `json:"link"`
	Tech        *TechList `json:"tech"`
}

func (r *UpdateRequest) normalize() {
	trim := func(s *string) {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
	trim(r.Title)
	trim(r.Description)
	trim(r.Image)
	trim(r.Link)
}

func (r *UpdateRequest) Validate() error {
	r.normalize()
	return validation.ValidateStruct(r,
		validation.Field(&r.Title, validation.NilOrNotEmpty.Error("title cannot be empty")),
		validation.Field(&r.Description, validation.NilOrNotEmpty.Error("description cannot be empty")),
		validation.Field(&r.Image, validation.NilOrNotEmpty.Error("image cannot be empty")),
	)
}

// ApplyToEntity writes only the provided fields onto the project.
func (r *UpdateRequest) ApplyToEntity(p *Project) {
	if r.Title != nil {
		p.Title = *r.Title
	}
	if r.Description != nil {
		p.Description = *r.Description
	}
	if r.Image != nil {
		p.Image = *r.Image
	}
	if r.Link != nil {
		p.Link = *r.Link
	}
	if r.Tech != nil {
		p.Tech = *r.Tech
	}
}
