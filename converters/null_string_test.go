package converters

import (
	"testing"

	"github.com/aarondl/null/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToNullString(t *testing.T) {
	tests := []struct {
		name      string
		input     any
		wantValid bool
		wantValue string
		wantErr   bool
	}{
		{
			name:      "valid non-empty string",
			input:     "England",
			wantValid: true,
			wantValue: "England",
		},
		{
			name:      "empty string becomes null",
			input:     "",
			wantValid: false,
		},
		{
			name:      "missing value becomes null",
			input:     nil,
			wantValid: false,
		},
		{
			name:    "non-string errors",
			input:   42,
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToNullString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			ns, ok := got.(null.String)
			require.True(t, ok)
			assert.Equal(t, tt.wantValid, ns.Valid)
			if tt.wantValid {
				assert.Equal(t, tt.wantValue, ns.String)
			}
		})
	}
}

func TestFromNullString(t *testing.T) {
	got, err := FromNullString(null.StringFrom("Wales"))
	require.NoError(t, err)
	assert.Equal(t, "Wales", got)

	got, err = FromNullString(null.String{})
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = FromNullString("plain")
	require.NoError(t, err)
	assert.Equal(t, "plain", got)

	_, err = FromNullString(42)
	assert.Error(t, err)
}
