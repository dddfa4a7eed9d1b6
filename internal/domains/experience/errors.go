package experience

import "errors"

var (
	ErrExperienceNotFound = errors.New("experience not found")
)

// ToHTTPStatus maps experience domain errors to HTTP status codes.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrExperienceNotFound):
		return 404
	default:
		return 500
	}
}
