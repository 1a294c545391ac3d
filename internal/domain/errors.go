package domain

import "errors"

// Domain-specific errors for counter operations.
var (
	// Store errors
	ErrStoreUnavailable   = errors.New("counter store unavailable")
	ErrInvalidStoredValue = errors.New("stored counter value is not a non-negative integer")

	// Configuration errors
	ErrStoreURLMissing  = errors.New("counter store URL is not configured")
	ErrUnsupportedStore = errors.New("unsupported counter store scheme")
	ErrEphemeralStore   = errors.New("counter store does not persist between invocations")
)
