package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mtlprog/antiptrn/internal/domain"
)

// CounterRepository handles database operations for named counters.
type CounterRepository struct {
	pool *pgxpool.Pool
}

// NewCounterRepository creates a new CounterRepository.
func NewCounterRepository(pool *pgxpool.Pool) *CounterRepository {
	return &CounterRepository{pool: pool}
}

// Get returns the value of the named counter. A missing row is zero.
func (r *CounterRepository) Get(ctx context.Context, name string) (domain.Count, error) {
	query, args, err := selectCounter(name).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build Get query for counter %s: %w", name, err)
	}

	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return 0, fmt.Errorf("acquire connection: %w: %w", domain.ErrStoreUnavailable, err)
	}
	defer conn.Release()

	var value domain.Count
	if err := conn.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("query counter %s: %w: %w", name, domain.ErrStoreUnavailable, err)
	}

	if err := value.Validate(); err != nil {
		return 0, err
	}

	return value, nil
}

// Increment adds one to the named counter and returns the new value.
// The row is created on first use. The upsert is a single statement, so
// concurrent increments serialize on the row lock.
func (r *CounterRepository) Increment(ctx context.Context, name string) (domain.Count, error) {
	query, args, err := upsertCounter(name).ToSql()
	if err != nil {
		return 0, fmt.Errorf("build Increment query for counter %s: %w", name, err)
	}

	conn, err := r.pool.Acquire(ctx)
	if err != nil {
		return 0, fmt.Errorf("acquire connection: %w: %w", domain.ErrStoreUnavailable, err)
	}
	defer conn.Release()

	var value domain.Count
	if err := conn.QueryRow(ctx, query, args...).Scan(&value); err != nil {
		return 0, fmt.Errorf("increment counter %s: %w: %w", name, domain.ErrStoreUnavailable, err)
	}

	return value, nil
}

// Ping checks that the database is reachable.
func (r *CounterRepository) Ping(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}
