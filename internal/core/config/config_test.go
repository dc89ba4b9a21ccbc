package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("APP_ENV")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("SERVER_PORT")

	os.Setenv("RATES_FILE", "rates.json")
	defer os.Unsetenv("RATES_FILE")

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, 200, cfg.Throttle.RequestPauseMs)
	assert.Equal(t, 15, cfg.Throttle.RequestBurstSize)
	assert.Equal(t, 30000, cfg.Throttle.BurstPauseMs)
	assert.Equal(t, "https://sellingpartnerapi-na.amazon.com", cfg.SellingPartner.NAEndpoint)
	assert.Equal(t, "https://sellingpartnerapi-eu.amazon.com", cfg.SellingPartner.EUEndpoint)
	assert.Empty(t, cfg.ReportTimezone)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	os.Setenv("APP_ENV", "production")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("RATES_FILE", "/etc/rates/2021.json")
	os.Setenv("REPORT_TIMEZONE", "UTC")
	os.Setenv("REQUEST_PAUSE_MS", "500")
	os.Setenv("REQUEST_BURST_SIZE", "5")
	os.Setenv("BURST_PAUSE_MS", "60000")
	os.Setenv("SP_NA_ACCESS_TOKEN", "Atza|na-token")
	defer func() {
		os.Unsetenv("APP_ENV")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("RATES_FILE")
		os.Unsetenv("REPORT_TIMEZONE")
		os.Unsetenv("REQUEST_PAUSE_MS")
		os.Unsetenv("REQUEST_BURST_SIZE")
		os.Unsetenv("BURST_PAUSE_MS")
		os.Unsetenv("SP_NA_ACCESS_TOKEN")
	}()

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, "/etc/rates/2021.json", cfg.RatesFile)
	assert.Equal(t, "UTC", cfg.ReportTimezone)
	assert.Equal(t, 500, cfg.Throttle.RequestPauseMs)
	assert.Equal(t, 5, cfg.Throttle.RequestBurstSize)
	assert.Equal(t, 60000, cfg.Throttle.BurstPauseMs)
	assert.Equal(t, "Atza|na-token", cfg.SellingPartner.NAAccessToken)
	assert.Empty(t, cfg.SellingPartner.EUAccessToken)
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
RATES_FILE=staging-rates.json
SP_EU_ACCESS_TOKEN=Atza|eu-token
`)
	err := os.WriteFile(".env", content, 0644)
	require.NoError(t, err)
	defer os.Remove(".env")

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.ServerPort)
	assert.Equal(t, "staging-rates.json", cfg.RatesFile)
	assert.Equal(t, "Atza|eu-token", cfg.SellingPartner.EUAccessToken)
}

// TestLoad_ValidationFailure verifies that missing required fields return an error.
func TestLoad_ValidationFailure(t *testing.T) {
	os.Unsetenv("RATES_FILE")

	cfg, err := Load(".")
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "missing required configuration")
}
