package health

import "errors"

var (
	// ErrCheckFailed wraps a check that panicked.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrCheckTimeout reports a check that did not finish within the timeout.
	ErrCheckTimeout = errors.New("health: check timeout")
)
