package auth

import "errors"

// Repository-level errors
var (
	ErrAccountNotFound    = errors.New("account not found")
	ErrEmailAlreadyExists = errors.New("user already exists")
)

// Service-level errors
var (
	// ErrInvalidCredentials is returned for unknown email and wrong
	// password alike, so login failures never reveal whether an account
	// exists.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized covers missing, expired and unknown sessions.
	ErrUnauthorized = errors.New("unauthorized")

	ErrSessionNotFound = errors.New("session not found")
)

// ToHTTPStatus maps auth domain errors to HTTP status codes.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrEmailAlreadyExists):
		return 400
	case errors.Is(err, ErrInvalidCredentials):
		return 401
	case errors.Is(err, ErrUnauthorized), errors.Is(err, ErrSessionNotFound):
		return 401
	case errors.Is(err, ErrAccountNotFound):
		return 404
	default:
		return 500
	}
}
