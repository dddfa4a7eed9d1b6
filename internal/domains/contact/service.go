package contact

import "context"

// Service relays contact form submissions to the portfolio owner's inbox.
type Service interface {
	// Send validates the submission and dispatches it by email. Returns
	// ErrNotConfigured when no mail transport is available; validation
	// always runs before any dispatch attempt.
	Send(ctx context.Context, req *SendRequest) error
}
