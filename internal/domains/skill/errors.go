package skill

import "errors"

var (
	ErrSkillNotFound = errors.New("skill not found")
)

// ToHTTPStatus maps skill domain errors to HTTP status codes.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrSkillNotFound):
		return 404
	default:
		return 500
	}
}
