// Package store provides the external counter stores behind the install
// counter. Every backend offers an atomic increment; the service layer holds
// no counter state of its own.
package store

import (
	"context"
	"fmt"
	"net/url"

	"github.com/mtlprog/antiptrn/internal/database"
	"github.com/mtlprog/antiptrn/internal/domain"
)

// Store is an atomic named-counter store.
type Store interface {
	// Get returns the counter value, or zero when the counter does not exist.
	Get(ctx context.Context, name string) (domain.Count, error)
	// Incr atomically adds one and returns the new value.
	Incr(ctx context.Context, name string) (domain.Count, error)
	// Ping checks that the store is reachable.
	Ping(ctx context.Context) error
	// Close releases every resource held by the store.
	Close() error
}

// Kind identifies a store backend by URL scheme.
type Kind string

const (
	KindRedis    Kind = "redis"
	KindPostgres Kind = "postgres"
	KindMemory   Kind = "memory"
)

// KindOf returns the backend kind for a store URL.
func KindOf(storeURL string) (Kind, error) {
	if storeURL == "" {
		return "", domain.ErrStoreURLMissing
	}

	u, err := url.Parse(storeURL)
	if err != nil {
		return "", fmt.Errorf("parse store URL: %w", err)
	}

	switch u.Scheme {
	case "redis", "rediss":
		return KindRedis, nil
	case "postgres", "postgresql":
		return KindPostgres, nil
	case "memory":
		return KindMemory, nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrUnsupportedStore, u.Scheme)
	}
}

// Options tunes how a store is opened.
type Options struct {
	// Ephemeral opens the smallest possible connection pool, for callers that
	// open a store per request and close it afterwards.
	Ephemeral bool
}

// Open connects to the store identified by storeURL.
func Open(ctx context.Context, storeURL string, opts Options) (Store, error) {
	kind, err := KindOf(storeURL)
	if err != nil {
		return nil, err
	}

	switch kind {
	case KindRedis:
		s, err := NewRedisStore(storeURL, opts)
		if err != nil {
			return nil, err
		}
		return s, nil
	case KindPostgres:
		var dbOpts []database.Option
		if opts.Ephemeral {
			dbOpts = append(dbOpts, database.WithPoolSize(1, 0))
		}
		s, err := NewPostgresStore(ctx, storeURL, dbOpts...)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return NewMemoryStore(), nil
	}
}

// Migrate applies schema migrations for backends that have a schema.
// It reports whether anything was run.
func Migrate(ctx context.Context, storeURL string) (bool, error) {
	kind, err := KindOf(storeURL)
	if err != nil {
		return false, err
	}
	if kind != KindPostgres {
		return false, nil
	}

	db, err := database.New(ctx, storeURL, database.WithPoolSize(1, 0))
	if err != nil {
		return false, fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := database.RunMigrations(ctx, db.Pool()); err != nil {
		return false, fmt.Errorf("failed to run migrations: %w", err)
	}
	return true, nil
}
