package handler

import (
	"log/slog"
	"net/http"

	"github.com/mtlprog/antiptrn/internal/handler/dto"
	"github.com/mtlprog/antiptrn/internal/middleware"
)

// HandleCount returns the current install count.
// @Summary Get install count
// @Description Read the install counter. Store failures are reported as a count of 0 with status 200.
// @Tags installs
// @Produce json
// @Success 200 {object} dto.CountResponse
// @Router /count [get]
func (h *Handler) HandleCount(w http.ResponseWriter, r *http.Request) {
	count := h.counters.DisplayCount(r.Context())

	w.Header().Set("Cache-Control", "no-store")
	respondJSON(w, http.StatusOK, dto.NewCountResponse(count))
}

// HandleTrack records one install and returns the new count.
// @Summary Record an install
// @Description Atomically increment the install counter. Every call counts; there is no deduplication.
// @Tags installs
// @Produce json
// @Success 200 {object} dto.CountResponse
// @Failure 503 {object} dto.ErrorResponse
// @Router /track [get]
func (h *Handler) HandleTrack(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	w.Header().Set("Cache-Control", "no-store")

	count, err := h.counters.Increment(ctx)
	if err != nil {
		slog.Error("failed to record install",
			"request_id", middleware.GetRequestID(ctx),
			"error", err,
		)
		RespondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, dto.NewCountResponse(count))
}
