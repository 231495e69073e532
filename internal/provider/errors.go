package provider

import (
	"context"
	"errors"
)

// Provider errors. These never escape the execution boundary; the
// orchestrator folds them into the execution result.
var (
	// ErrUnavailable indicates the completion endpoint could not serve the
	// request: missing or rejected credential, rate limit, or network failure.
	ErrUnavailable = errors.New("provider: unavailable")

	// ErrTimeout indicates the completion did not finish within the
	// caller's deadline.
	ErrTimeout = errors.New("provider: timeout")
)

// mapContextErr translates context cancellation into provider sentinels.
func mapContextErr(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout
	}
	return nil
}
