package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mtlprog/antiptrn/internal/domain"
)

func TestParseCount(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    domain.Count
		wantErr bool
	}{
		{name: "absent", raw: "", want: 0},
		{name: "zero", raw: "0", want: 0},
		{name: "positive", raw: "41", want: 41},
		{name: "negative", raw: "-3", wantErr: true},
		{name: "not a number", raw: "forty-one", wantErr: true},
		{name: "float", raw: "4.2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseCount(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, domain.ErrInvalidStoredValue)
				assert.Equal(t, domain.Count(0), got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCountValidate(t *testing.T) {
	assert.NoError(t, domain.Count(0).Validate())
	assert.NoError(t, domain.Count(42).Validate())
	assert.ErrorIs(t, domain.Count(-1).Validate(), domain.ErrInvalidStoredValue)
}

func TestFormatCount_RoundTrip(t *testing.T) {
	got, err := domain.ParseCount(domain.FormatCount(1234))
	require.NoError(t, err)
	assert.Equal(t, domain.Count(1234), got)
}
