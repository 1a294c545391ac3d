package store

import (
	"context"
	"fmt"

	"github.com/mtlprog/antiptrn/internal/domain"
)

// unavailable stands in for a store that could not be opened.
type unavailable struct {
	err error
}

// Unavailable returns a Store whose every call fails with ErrStoreUnavailable
// wrapping cause. Callers use it to keep the read path's zero fallback when
// the connection itself cannot be established.
func Unavailable(cause error) Store {
	return unavailable{err: fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, cause)}
}

func (u unavailable) Get(context.Context, string) (domain.Count, error)  { return 0, u.err }
func (u unavailable) Incr(context.Context, string) (domain.Count, error) { return 0, u.err }
func (u unavailable) Ping(context.Context) error                         { return u.err }
func (u unavailable) Close() error                                       { return nil }
