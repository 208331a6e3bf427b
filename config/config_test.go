package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("MAP_KEY", "k")
	t.Setenv("TWILIO_ACCOUNT_SID", "AC123")
	t.Setenv("TWILIO_AUTH_TOKEN", "tok")
	t.Setenv("TWILIO_FROM_NUMBER", "+1000")
}

func TestLoad_Defaults(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "VIIRS_SNPP_NRT", cfg.FeedProduct)
	assert.Equal(t, "ARG", cfg.CountryCode)
	assert.Equal(t, 1, cfg.DayRange)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
}

func TestLoad_MissingRequired(t *testing.T) {
	tests := []struct {
		name   string
		unset  string
		errMsg string
	}{
		{"missing map key", "MAP_KEY", "MAP_KEY"},
		{"missing twilio sid", "TWILIO_ACCOUNT_SID", "TWILIO_ACCOUNT_SID"},
		{"missing from number", "TWILIO_FROM_NUMBER", "TWILIO_FROM_NUMBER"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setRequired(t)
			t.Setenv(tt.unset, "")

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoad_BadDayRange(t *testing.T) {
	setRequired(t)
	t.Setenv("FIRMS_DAY_RANGE", "eleven")

	_, err := Load()
	assert.Error(t, err)
}
