package domain

import (
	"fmt"
	"strconv"
)

// InstallsCounter is the name of the counter incremented on every install.
const InstallsCounter = "installs"

// Count is a non-negative counter value.
type Count int64

// ParseCount decodes a string-encoded counter value.
// An empty string is an absent counter and decodes to zero.
func ParseCount(raw string) (Count, error) {
	if raw == "" {
		return 0, nil
	}

	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidStoredValue, raw)
	}
	if n < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidStoredValue, n)
	}

	return Count(n), nil
}

// Validate checks that a value read back from a store is non-negative.
func (c Count) Validate() error {
	if c < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidStoredValue, int64(c))
	}
	return nil
}

// FormatCount encodes a counter value the way string-valued stores hold it.
func FormatCount(c Count) string {
	return strconv.FormatInt(int64(c), 10)
}
