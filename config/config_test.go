package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/timesheet/config"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:8080"}, cfg.CORS.AllowedOrigins)
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := config.LoadFrom(map[string]string{
		"TIMESHEET_ENVIRONMENT":          "production",
		"TIMESHEET_SERVER_PORT":          "3000",
		"TIMESHEET_SERVER_WRITE_TIMEOUT": "5s",
		"TIMESHEET_LOG_LEVEL":            "debug",
		"TIMESHEET_LOG_FORMAT":           "console",
		"TIMESHEET_CORS_ALLOWED_ORIGINS": "https://hours.example.com",
		"SERVER_PORT":                    "9999", // unprefixed keys are ignored
	})
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, []string{"https://hours.example.com"}, cfg.CORS.AllowedOrigins)
}

func TestLoadFrom_Invalid(t *testing.T) {
	_, err := config.LoadFrom(map[string]string{"TIMESHEET_SERVER_PORT": "eighty"})
	assert.Error(t, err)

	_, err = config.LoadFrom(map[string]string{"TIMESHEET_SERVER_PORT": "70000"})
	assert.Error(t, err)

	_, err = config.LoadFrom(map[string]string{"TIMESHEET_SERVER_READ_TIMEOUT": "soon"})
	assert.Error(t, err)
}
