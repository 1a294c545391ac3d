package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/mtlprog/antiptrn/internal/domain"
)

// MemoryStore is a process-local store for development and tests.
type MemoryStore struct {
	mu       sync.Mutex
	counters map[string]*atomic.Int64
}

// NewMemoryStore returns an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{counters: make(map[string]*atomic.Int64)}
}

func (s *MemoryStore) counter(name string, create bool) *atomic.Int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.counters[name]
	if !ok && create {
		c = new(atomic.Int64)
		s.counters[name] = c
	}
	return c
}

// Set overwrites a counter. Only used to seed state.
func (s *MemoryStore) Set(name string, value domain.Count) {
	s.counter(name, true).Store(int64(value))
}

// Get implements Store.
func (s *MemoryStore) Get(ctx context.Context, name string) (domain.Count, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	c := s.counter(name, false)
	if c == nil {
		return 0, nil
	}
	return domain.Count(c.Load()), nil
}

// Incr implements Store.
func (s *MemoryStore) Incr(ctx context.Context, name string) (domain.Count, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	c := s.counter(name, true)
	for {
		cur := c.Load()
		if cur < 0 {
			return 0, fmt.Errorf("increment %s: %w: %v", name, domain.ErrStoreUnavailable, domain.ErrInvalidStoredValue)
		}
		if c.CompareAndSwap(cur, cur+1) {
			return domain.Count(cur + 1), nil
		}
	}
}

// Ping implements Store.
func (s *MemoryStore) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close implements Store.
func (s *MemoryStore) Close() error {
	return nil
}
