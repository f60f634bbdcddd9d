package schema

import "errors"

// Sentinel errors shared across packages.
var (
	ErrMissingRepo    = errors.New("repository display name is not set")
	ErrUnknownChart   = errors.New("unknown chart")
	ErrInvalidWeekday = errors.New("invalid weekday")
	ErrNonIncreasingX = errors.New("sample x values must be strictly increasing")
)
