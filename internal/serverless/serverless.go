// Package serverless runs the counter endpoints as single-invocation
// functions. Each invocation reads configuration, opens the store, serves one
// request and closes the store again.
package serverless

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/mtlprog/antiptrn/internal/config"
	"github.com/mtlprog/antiptrn/internal/domain"
	"github.com/mtlprog/antiptrn/internal/handler"
	"github.com/mtlprog/antiptrn/internal/logger"
	"github.com/mtlprog/antiptrn/internal/middleware"
	"github.com/mtlprog/antiptrn/internal/service"
	"github.com/mtlprog/antiptrn/internal/store"
)

var setupLogger sync.Once

// Count serves GET /api/count.
func Count(w http.ResponseWriter, r *http.Request) {
	invoke(w, r, (*handler.Handler).HandleCount)
}

// Track serves GET /api/track.
func Track(w http.ResponseWriter, r *http.Request) {
	invoke(w, r, (*handler.Handler).HandleTrack)
}

// NewMux routes both counter endpoints for hosts that deliver every path to
// one function.
func NewMux() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/count", Count)
	mux.HandleFunc("GET /api/track", Track)
	return middleware.RequestLog(mux)
}

func invoke(w http.ResponseWriter, r *http.Request, serve func(*handler.Handler, http.ResponseWriter, *http.Request)) {
	ctx := r.Context()

	if r.Method != http.MethodGet {
		handler.RespondMethodNotAllowed(w, http.MethodGet)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		handler.RespondDomainError(w, err)
		return
	}

	setupLogger.Do(func() {
		logger.Setup(logger.ParseLevel(cfg.LogLevel))
	})

	storeURL, err := cfg.ResolveStoreURL()
	if err != nil {
		slog.Error("counter store is not configured", "error", err)
		handler.RespondDomainError(w, err)
		return
	}

	// A memory store would start from zero on every invocation.
	if kind, err := store.KindOf(storeURL); err == nil && kind == store.KindMemory {
		slog.Error("memory store cannot back serverless invocations")
		handler.RespondDomainError(w, domain.ErrEphemeralStore)
		return
	}

	st, err := store.Open(ctx, storeURL, store.Options{Ephemeral: true})
	if err != nil {
		if !errors.Is(err, domain.ErrStoreUnavailable) {
			slog.Error("failed to open counter store", "error", err)
			handler.RespondDomainError(w, err)
			return
		}
		st = store.Unavailable(err)
	}
	defer func() {
		if err := st.Close(); err != nil {
			slog.Warn("failed to close counter store", "error", err)
		}
	}()

	h := handler.New(service.NewCounterService(st, cfg.StoreTimeout), st)
	serve(h, w, r)
}
