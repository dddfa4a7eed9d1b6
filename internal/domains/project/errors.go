package project

import "errors"

var (
	ErrProjectNotFound = errors.New("project not found")
)

// ToHTTPStatus maps project domain errors to HTTP status codes.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrProjectNotFound):
		return 404
	default:
		return 500
	}
}
