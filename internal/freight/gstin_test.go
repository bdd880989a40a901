package freight_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightdesk/internal/freight"
)

func TestValidateGSTIN(t *testing.T) {
	tests := []struct {
		name    string
		gstin   string
		wantErr string
	}{
		{"valid maharashtra", "27AABCU9603R1ZM", ""},
		{"valid karnataka", "29AADCD4521K1ZQ", ""},
		{"highest state code", "38AAACF1234A1Z5", ""},
		{"lowercase", "27aabcu9603r1zm", "not a valid GSTIN"},
		{"too short", "27AABCU9603R1Z", "not a valid GSTIN"},
		{"missing Z", "27AABCU9603R1XM", "not a valid GSTIN"},
		{"entity zero", "27AABCU9603R0ZM", "not a valid GSTIN"},
		{"state 00", "00AABCU9603R1ZM", "state code 00"},
		{"state 39", "39AABCU9603R1ZM", "state code 39"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := freight.ValidateGSTIN("customer_gstin", tt.gstin)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			var ve *freight.ValidationError
			require.True(t, errors.As(err, &ve))
			assert.Equal(t, "customer_gstin", ve.Field)
			assert.Contains(t, ve.Message, tt.wantErr)
			assert.ErrorIs(t, err, freight.ErrValidation)
		})
	}
}

func TestNormalizeGSTIN(t *testing.T) {
	assert.Equal(t, "27AABCU9603R1ZM", freight.NormalizeGSTIN("  27aabcu9603r1zm "))
	assert.NoError(t, freight.ValidateGSTIN("gstin", freight.NormalizeGSTIN("27aabcu9603r1zm")))
}
