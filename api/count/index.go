// Package handler is the Vercel function behind /api/count.
package handler

import (
	"net/http"

	"github.com/mtlprog/antiptrn/internal/serverless"
)

// Handler returns the current install count.
func Handler(w http.ResponseWriter, r *http.Request) {
	serverless.Count(w, r)
}
