package dto

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mtlprog/antiptrn/internal/domain"
)

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error code and message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewErrorResponse creates a new error response.
func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{
		Error: ErrorDetail{
			Code:    code,
			Message: message,
		},
	}
}

// MapDomainError maps domain errors to HTTP status codes and error codes.
// Messages are fixed strings; store error chains stay in the logs.
func MapDomainError(err error) (status int, code string, message string) {
	switch {
	// Store errors
	case errors.Is(err, domain.ErrInvalidStoredValue):
		return http.StatusInternalServerError, "INVALID_STORED_VALUE", domain.ErrInvalidStoredValue.Error()
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "STORE_UNAVAILABLE", domain.ErrStoreUnavailable.Error()

	// Configuration errors
	case errors.Is(err, domain.ErrStoreURLMissing):
		return http.StatusInternalServerError, "CONFIG_ERROR", domain.ErrStoreURLMissing.Error()
	case errors.Is(err, domain.ErrUnsupportedStore):
		return http.StatusInternalServerError, "CONFIG_ERROR", domain.ErrUnsupportedStore.Error()
	case errors.Is(err, domain.ErrEphemeralStore):
		return http.StatusInternalServerError, "CONFIG_ERROR", domain.ErrEphemeralStore.Error()

	// Default: internal server error
	default:
		slog.Error("unmapped domain error returned to client",
			"error", err,
			"error_type", fmt.Sprintf("%T", err),
		)
		return http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"
	}
}
