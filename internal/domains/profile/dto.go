package profile

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// UpdateRequest - PUT /api/profile. The profile is replaced whole; github
// and linkedin are optional and default to empty.
type UpdateRequest struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Bio      string `json:"bio"`
	Email    string `json:"email"`
	GitHub   string `json:"github"`
	LinkedIn string `json:"linkedin"`
}

func (r *UpdateRequest) normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Title = strings.TrimSpace(r.Title)
	r.Bio = strings.TrimSpace(r.Bio)
	r.Email = strings.TrimSpace(r.Email)
	r.GitHub = strings.TrimSpace(r.GitHub)
	r.LinkedIn = strings.TrimSpace(r.LinkedIn)
}

func (r *UpdateRequest) Validate() error {
	r.normalize()
	return validation.ValidateStruct(r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
		validation.Field(&r.Title, validation.Required.Error("title is required")),
		validation.Field(&r.Bio, validation.Required.Error("bio is required")),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
	)
}

// ApplyToEntity writes the request fields onto the profile entity.
func (r *UpdateRequest) ApplyToEntity(p *Profile) {
	p.Name = r.Name
	p.Title = r.Title
	p.Bio = r.Bio
	p.Email = r.Email
	p.GitHub = r.GitHub
	p.LinkedIn = r.LinkedIn
}
