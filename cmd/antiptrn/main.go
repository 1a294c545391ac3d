// @title			antiptrn API
// @version		1.0
// @description	Install counter for the antiptrn instruction file.
// @BasePath		/api

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mtlprog/antiptrn/internal/config"
	"github.com/mtlprog/antiptrn/internal/handler"
	"github.com/mtlprog/antiptrn/internal/logger"
	"github.com/mtlprog/antiptrn/internal/middleware"
	"github.com/mtlprog/antiptrn/internal/service"
	"github.com/mtlprog/antiptrn/internal/store"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "antiptrn",
		Usage: "Landing page and install counter for the antiptrn instruction file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Value:   config.DefaultLogLevel,
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    "store-url",
				Aliases: []string{"s"},
				Value:   config.DefaultStoreURL,
				Usage:   "Counter store URL (redis://, postgres://, memory://)",
				EnvVars: []string{"STORE_URL", "REDIS_URL", "DATABASE_URL"},
			},
			&cli.DurationFlag{
				Name:    "store-timeout",
				Value:   config.DefaultStoreTimeout,
				Usage:   "Deadline for a single counter store call",
				EnvVars: []string{"STORE_TIMEOUT"},
			},
		},
		Before: func(c *cli.Context) error {
			logger.Setup(logger.ParseLevel(c.String("log-level")))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "Start the web server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Value:   config.DefaultPort,
						Usage:   "HTTP server port",
						EnvVars: []string{"PORT"},
					},
				},
				Action: runServe,
			},
			{
				Name:   "count",
				Usage:  "Print the current install count",
				Action: runCount,
			},
			{
				Name:   "track",
				Usage:  "Record one install and print the new count",
				Action: runTrack,
			},
			{
				Name:   "migrate",
				Usage:  "Apply PostgreSQL counter migrations",
				Action: runMigrate,
			},
		},
		Action: runServe,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

// storeURL returns the configured store URL or a configuration error.
func storeURL(c *cli.Context) (string, error) {
	return config.Config{StoreURL: c.String("store-url")}.ResolveStoreURL()
}

// openService opens the counter store and wraps it in a CounterService.
func openService(c *cli.Context) (*service.CounterService, store.Store, error) {
	url, err := storeURL(c)
	if err != nil {
		return nil, nil, err
	}

	st, err := store.Open(c.Context, url, store.Options{})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open counter store: %w", err)
	}

	return service.NewCounterService(st, c.Duration("store-timeout")), st, nil
}

func runServe(c *cli.Context) error {
	ctx := c.Context

	port := c.String("port")
	if port == "" {
		port = config.DefaultPort
	}

	url, err := storeURL(c)
	if err != nil {
		return err
	}

	if _, err := store.Migrate(ctx, url); err != nil {
		return err
	}

	counters, st, err := openService(c)
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Ping(ctx); err != nil {
		slog.Warn("counter store not reachable at startup", "error", err)
	}

	h := handler.New(counters, st)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)

	server := &http.Server{
		Addr:              ":" + port,
		Handler:           middleware.RequestLog(mux),
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serverErr := make(chan error, 1)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		slog.Info("starting server", "server_addr", "http://localhost:"+port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-done:
		slog.Info("shutting down server")
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	slog.Info("server stopped")
	return nil
}

func runCount(c *cli.Context) error {
	counters, st, err := openService(c)
	if err != nil {
		return err
	}
	defer st.Close()

	count, err := counters.GetCount(c.Context)
	if err != nil {
		return fmt.Errorf("failed to read install count: %w", err)
	}

	fmt.Fprintln(c.App.Writer, count)
	return nil
}

func runTrack(c *cli.Context) error {
	counters, st, err := openService(c)
	if err != nil {
		return err
	}
	defer st.Close()

	count, err := counters.Increment(c.Context)
	if err != nil {
		return fmt.Errorf("failed to record install: %w", err)
	}

	fmt.Fprintln(c.App.Writer, count)
	return nil
}

func runMigrate(c *cli.Context) error {
	url, err := storeURL(c)
	if err != nil {
		return err
	}

	migrated, err := store.Migrate(c.Context, url)
	if err != nil {
		return err
	}
	if !migrated {
		slog.Info("store has no schema, nothing to migrate")
	}
	return nil
}
