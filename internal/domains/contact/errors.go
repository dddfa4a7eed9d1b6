package contact

import "errors"

var (
	// ErrNotConfigured means no mail transport is set up; the submission
	// is rejected rather than silently dropped.
	ErrNotConfigured = errors.New("email service not configured")
)
