package profile

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
)

// ToHTTPStatus maps profile domain errors to HTTP status codes.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrProfileNotFound):
		return 404
	default:
		return 500
	}
}
