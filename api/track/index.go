// Package handler is the Vercel function behind /api/track.
package handler

import (
	"net/http"

	"github.com/mtlprog/antiptrn/internal/serverless"
)

// Handler records one install and returns the new count.
func Handler(w http.ResponseWriter, r *http.Request) {
	serverless.Track(w, r)
}
