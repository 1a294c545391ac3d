package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/mtlprog/antiptrn/internal/domain"
)

// incrScript increments KEYS[1] only when it is absent or holds a
// non-negative integer, so a corrupt value is never modified.
var incrScript = redis.NewScript(`
local v = redis.call('GET', KEYS[1])
if v and not string.match(v, '^%d+$') then
  return redis.error_reply('INVALID_VALUE stored counter is not a non-negative integer')
end
return redis.call('INCR', KEYS[1])
`)

// RedisStore keeps counters as string-encoded integers under plain keys.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a client for a redis:// or rediss:// URL.
// No connection is made until the first command.
func NewRedisStore(redisURL string, opts Options) (*RedisStore, error) {
	ropts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis URL: %w", err)
	}
	// A retried INCR may have been applied already.
	ropts.MaxRetries = -1
	if opts.Ephemeral {
		ropts.PoolSize = 1
		ropts.MinIdleConns = 0
	}
	return &RedisStore{client: redis.NewClient(ropts)}, nil
}

// NewRedisStoreFromClient wraps an existing client.
func NewRedisStoreFromClient(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

// Get implements Store.
func (s *RedisStore) Get(ctx context.Context, name string) (domain.Count, error) {
	conn := s.client.Conn()
	defer conn.Close()

	raw, err := conn.Get(ctx, name).Result()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("redis GET %s: %w: %w", name, domain.ErrStoreUnavailable, err)
	}

	return domain.ParseCount(raw)
}

// Incr implements Store.
func (s *RedisStore) Incr(ctx context.Context, name string) (domain.Count, error) {
	conn := s.client.Conn()
	defer conn.Close()

	n, err := incrScript.Run(ctx, conn, []string{name}).Int64()
	if err != nil {
		if strings.HasPrefix(err.Error(), "INVALID_VALUE") {
			return 0, fmt.Errorf("redis INCR %s: %w: %v", name, domain.ErrStoreUnavailable, domain.ErrInvalidStoredValue)
		}
		return 0, fmt.Errorf("redis INCR %s: %w: %w", name, domain.ErrStoreUnavailable, err)
	}

	return domain.Count(n), nil
}

// Ping implements Store.
func (s *RedisStore) Ping(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis PING: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return nil
}

// Close implements Store.
func (s *RedisStore) Close() error {
	return s.client.Close()
}
