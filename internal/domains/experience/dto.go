package experience

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateRequest - POST /api/experience.
type CreateRequest struct {
	Role        string `json:"role"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

func (r *CreateRequest) normalize() {
	r.Role = strings.TrimSpace(r.Role)
	r.Company = strings.TrimSpace(r.Company)
	r.Period = strings.TrimSpace(r.Period)
	r.Description = strings.TrimSpace(r.Description)
}

func (r *CreateRequest) Validate() error {
	r.normalize()
	return validation.ValidateStruct(r,
		validation.Field(&r.Role, validation.Required.Error("role is required")),
		validation.Field(&r.Company, validation.Required.Error("company is required")),
		validation.Field(&r.Period, validation.Required.Error("period is required")),
		validation.Field(&r.Description, validation.Required.Error("description is required")),
	)
}

func (r *CreateRequest) ToEntity() *Experience {
	return &Experience{
		Role:        r.Role,
		Company:     r.Company,
		Period:      r.Period,
		Description: r.Description,
	}
}

// UpdateRequest - PUT /api/experience/:id. Nil fields are left unchanged.
type UpdateRequest struct {
	Role        *string `json:"role"`
	Company     *string `json:"company"`
	Period      *string `json:"period"`
	Description *string `json:"description"`
}

func (r *UpdateRequest) normalize() {
	trim := func(s *string) {
		if s != nil {
			*s = strings.TrimSpace(*s)
		}
	}
	trim(r.Role)
	trim(r.Company)
	trim(r.Period)
	trim(r.Description)
}

func (r *UpdateRequest) Validate() error {
	r.normalize()
	return validation.ValidateStruct(r,
		validation.Field(&r.Role, validation.NilOrNotEmpty.Error("role cannot be empty")),
		validation.Field(&r.Company, validation.NilOrNotEmpty.Error("company cannot be empty")),
		validation.Field(&r.Period, validation.NilOrNotEmpty.Error("period cannot be empty")),
		validation.Field(&r.Description, validation.NilOrNotEmpty.Error("description cannot be empty")),
	)
}

// ApplyToEntity writes only the provided fields onto the experience entry.
func (r *UpdateRequest) ApplyToEntity(e *Experience) {
	if r.Role != nil {
		e.Role = *r.Role
	}
	if r.Company != nil {
		e.Company = *r.Company
	}
	if r.Period != nil {
		e.Period = *r.Period
	}
	if r.Description != nil {
		e.Description = *r.Description
	}
}
