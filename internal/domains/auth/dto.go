package auth

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// RegisterRequest - POST /api/auth/register
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
			validation.Length(5, 255),
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(8, 72).Error("password must be 8-72 characters"),
		),
	)
}

// LoginRequest - POST /api/auth/login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// RegisterResponse echoes the new account id, matching the login shape.
type RegisterResponse struct {
	Message string    `json:"message"`
	UserID  uuid.UUID `json:"userId"`
}

// LoginResponse - returned next to the Set-Cookie carrying the session token.
type LoginResponse struct {
	Message string    `json:"message"`
	UserID  uuid.UUID `json:"userId"`
}

// StatusResponse - GET /api/auth/me
type StatusResponse struct {
	UserID uuid.UUID `json:"userId"`
	Email  string    `json:"email"`
}

// ToStatusResponse converts an account to the /me payload.
func (a *AdminAccount) ToStatusResponse() StatusResponse {
	return StatusResponse{
		UserID: a.ID,
		Email:  a.Email,
	}
}
