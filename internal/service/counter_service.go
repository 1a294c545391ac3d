package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/fortify/timeout"

	"github.com/mtlprog/antiptrn/internal/domain"
)

// CounterStore is the subset of a counter store the service needs.
type CounterStore interface {
	Get(ctx context.Context, name string) (domain.Count, error)
	Incr(ctx context.Context, name string) (domain.Count, error)
}

// CounterService reads and records installs. It keeps no counter state;
// the store owns the value and its atomicity.
type CounterService struct {
	store        CounterStore
	name         string
	storeTimeout time.Duration
}

// NewCounterService creates a CounterService for the installs counter.
func NewCounterService(store CounterStore, storeTimeout time.Duration) *CounterService {
	return &CounterService{
		store:        store,
		name:         domain.InstallsCounter,
		storeTimeout: storeTimeout,
	}
}

// GetCount returns the current install count. An absent counter is zero.
// Errors are ErrStoreUnavailable or ErrInvalidStoredValue; the count is zero
// whenever an error is returned.
func (s *CounterService) GetCount(ctx context.Context) (domain.Count, error) {
	return s.call(ctx, "get count", s.store.Get)
}

// DisplayCount returns the install count for display. Any store failure is
// logged and reported as zero.
func (s *CounterService) DisplayCount(ctx context.Context) domain.Count {
	count, err := s.GetCount(ctx)
	if err != nil {
		slog.Warn("install count unavailable, showing zero",
			"counter", s.name,
			"error", err,
		)
		return 0
	}
	return count
}

// Increment records one install and returns the new count.
// There is no deduplication: every call counts. The only error is
// ErrStoreUnavailable.
func (s *CounterService) Increment(ctx context.Context) (domain.Count, error) {
	count, err := s.call(ctx, "increment", s.store.Incr)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStoredValue) {
			return 0, fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
		}
		return 0, err
	}

	slog.Info("install recorded",
		"counter", s.name,
		"count", count,
	)

	return count, nil
}

// call runs one store operation under the store timeout and normalizes its
// error into the domain taxonomy.
func (s *CounterService) call(
	ctx context.Context,
	op string,
	fn func(ctx context.Context, name string) (domain.Count, error),
) (domain.Count, error) {
	t := timeout.New[domain.Count](timeout.Config{
		DefaultTimeout: s.storeTimeout,
	})

	count, err := t.Execute(ctx, s.storeTimeout, func(ctx context.Context) (domain.Count, error) {
		return fn(ctx, s.name)
	})
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStoredValue) || errors.Is(err, domain.ErrStoreUnavailable) {
			return 0, fmt.Errorf("%s: %w", op, err)
		}
		return 0, fmt.Errorf("%s: %w: %w", op, domain.ErrStoreUnavailable, err)
	}

	if err := count.Validate(); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}
