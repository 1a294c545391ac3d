package dto_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mtlprog/antiptrn/internal/domain"
	"github.com/mtlprog/antiptrn/internal/handler/dto"
)

func TestMapDomainError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "wrapped store unavailable",
			err:        fmt.Errorf("increment: %w: %w", domain.ErrStoreUnavailable, errors.New("dial tcp 10.0.0.1:6379: i/o timeout")),
			wantStatus: http.StatusServiceUnavailable,
			wantCode:   "STORE_UNAVAILABLE",
		},
		{
			name:       "invalid stored value",
			err:        fmt.Errorf("get count: %w", domain.ErrInvalidStoredValue),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INVALID_STORED_VALUE",
		},
		{
			name:       "ephemeral store",
			err:        domain.ErrEphemeralStore,
			wantStatus: http.StatusInternalServerError,
			wantCode:   "CONFIG_ERROR",
		},
		{
			name:       "missing store url",
			err:        domain.ErrStoreURLMissing,
			wantStatus: http.StatusInternalServerError,
			wantCode:   "CONFIG_ERROR",
		},
		{
			name:       "unknown",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, code, message := dto.MapDomainError(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantCode, code)
			assert.NotContains(t, message, "10.0.0.1")
		})
	}
}
