package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/mtlprog/antiptrn/internal/domain"
)

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultStoreURL is empty; must be provided via flag or environment.
	DefaultStoreURL = ""

	// DefaultStoreTimeout bounds a single store round trip.
	DefaultStoreTimeout = 3 * time.Second

	// DefaultLogLevel is used when LOG_LEVEL is unset.
	DefaultLogLevel = "info"
)

// Config holds process configuration read from the environment.
type Config struct {
	Port         string        `env:"PORT"          envDefault:"8080"`
	LogLevel     string        `env:"LOG_LEVEL"     envDefault:"info"`
	StoreURL     string        `env:"STORE_URL"`
	RedisURL     string        `env:"REDIS_URL"`
	DatabaseURL  string        `env:"DATABASE_URL"`
	StoreTimeout time.Duration `env:"STORE_TIMEOUT" envDefault:"3s"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = DefaultStoreTimeout
	}
	return cfg, nil
}

// ResolveStoreURL returns the counter store connection string.
// STORE_URL wins, then REDIS_URL, then DATABASE_URL.
func (c Config) ResolveStoreURL() (string, error) {
	for _, u := range []string{c.StoreURL, c.RedisURL, c.DatabaseURL} {
		if u != "" {
			return u, nil
		}
	}
	return "", domain.ErrStoreURLMissing
}
