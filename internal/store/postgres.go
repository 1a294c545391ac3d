package store

import (
	"context"
	"fmt"

	"github.com/mtlprog/antiptrn/internal/database"
	"github.com/mtlprog/antiptrn/internal/domain"
	"github.com/mtlprog/antiptrn/internal/repository"
)

// PostgresStore keeps counters in the counters table.
type PostgresStore struct {
	db   *database.DB
	repo *repository.CounterRepository
}

// NewPostgresStore opens a connection pool. The schema must already be
// migrated; see Migrate.
func NewPostgresStore(ctx context.Context, databaseURL string, opts ...database.Option) (*PostgresStore, error) {
	db, err := database.New(ctx, databaseURL, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return &PostgresStore{
		db:   db,
		repo: repository.NewCounterRepository(db.Pool()),
	}, nil
}

// Get implements Store.
func (s *PostgresStore) Get(ctx context.Context, name string) (domain.Count, error) {
	return s.repo.Get(ctx, name)
}

// Incr implements Store.
func (s *PostgresStore) Incr(ctx context.Context, name string) (domain.Count, error) {
	return s.repo.Increment(ctx, name)
}

// Ping implements Store.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// Close implements Store.
func (s *PostgresStore) Close() error {
	s.db.Close()
	return nil
}
