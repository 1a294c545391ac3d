package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	_ "github.com/mtlprog/antiptrn/docs" // Import generated docs
	"github.com/mtlprog/antiptrn/internal/handler/dto"
	"github.com/mtlprog/antiptrn/internal/service"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Pinger reports whether the counter store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler holds dependencies for HTTP handlers.
type Handler struct {
	counters *service.CounterService
	pinger   Pinger
}

// New creates a new Handler instance with all dependencies.
func New(counters *service.CounterService, pinger Pinger) *Handler {
	return &Handler{
		counters: counters,
		pinger:   pinger,
	}
}

// RegisterRoutes registers all HTTP routes.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Health check
	mux.HandleFunc("GET /healthz", h.handleHealthz)

	// Site
	mux.HandleFunc("GET /{$}", h.handleIndex)
	mux.HandleFunc("GET /install", h.handleInstallRedirect)
	mux.HandleFunc("GET /install.sh", h.handleInstallScript)
	mux.HandleFunc("GET /antiptrn.md", h.handlePromptMd)

	// Swagger UI
	mux.HandleFunc("GET /swagger/", httpSwagger.Handler())

	// Install counter
	h.RegisterCounterRoutes(mux)
}

// RegisterCounterRoutes registers only the counter API routes.
func (h *Handler) RegisterCounterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/count", h.HandleCount)
	mux.HandleFunc("GET /api/track", h.HandleTrack)
}

// handleHealthz returns 200 OK if the counter store is reachable.
func (h *Handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.pinger.Ping(ctx); err != nil {
		slog.Error("store health check failed", "error", err)
		http.Error(w, "store unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode JSON response", "error", err)
	}
}

// respondError writes a standard error response.
func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, dto.NewErrorResponse(code, message))
}

// RespondDomainError writes the mapped error response for err.
func RespondDomainError(w http.ResponseWriter, err error) {
	status, code, message := dto.MapDomainError(err)
	respondError(w, status, code, message)
}

// RespondMethodNotAllowed writes 405 with the Allow header set to allowed.
func RespondMethodNotAllowed(w http.ResponseWriter, allowed string) {
	w.Header().Set("Allow", allowed)
	respondError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
}
