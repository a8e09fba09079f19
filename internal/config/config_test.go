package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "development", cfg.App.Environment)
	assert.Equal(t, "http://localhost:3000/api", cfg.API.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, 6, cfg.Report.TrendWindow)
	assert.Equal(t, 5*time.Minute, cfg.Report.SnapshotMaxAge)
	assert.True(t, cfg.Cache.Enabled)
	assert.True(t, cfg.IsDevelopment())
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("API_BASE_URL", "https://finance.example.com/api/")
	t.Setenv("API_TIMEOUT", "3s")
	t.Setenv("API_RATE_LIMIT_PER_SECOND", "2.5")
	t.Setenv("CACHE_ENABLED", "false")
	t.Setenv("REPORT_TREND_WINDOW", "12")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg := Load()

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "https://finance.example.com/api", cfg.API.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.API.Timeout)
	assert.Equal(t, 2.5, cfg.API.RateLimitPerSecond)
	assert.False(t, cfg.Cache.Enabled)
	assert.Equal(t, 12, cfg.Report.TrendWindow)
	assert.Equal(t, "json", cfg.Log.Format, "production defaults to json logs")

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("API_TIMEOUT", "soon")
	t.Setenv("REPORT_TREND_WINDOW", "six")
	t.Setenv("CACHE_ENABLED", "maybe")

	cfg := Load()

	assert.Equal(t, 10*time.Second, cfg.API.Timeout)
	assert.Equal(t, 6, cfg.Report.TrendWindow)
	assert.True(t, cfg.Cache.Enabled)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr error
	}{
		{name: "relative url", mutate: func(c *Config) { c.API.BaseURL = "/api" }, wantErr: ErrInvalidAPIBaseURL},
		{name: "missing url", mutate: func(c *Config) { c.API.BaseURL = "" }, wantErr: ErrMissingAPIBaseURL},
		{name: "zero rate", mutate: func(c *Config) { c.API.RateLimitPerSecond = 0 }, wantErr: ErrInvalidRateLimit},
		{name: "bad level", mutate: func(c *Config) { c.Log.Level = "verbose" }, wantErr: ErrInvalidLogLevel},
		{name: "bad format", mutate: func(c *Config) { c.Log.Format = "xml" }, wantErr: ErrInvalidLogFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Load()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), tt.wantErr)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("FINTRACK_TEST_DOTENV=loaded\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("FINTRACK_TEST_DOTENV") })

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "loaded", os.Getenv("FINTRACK_TEST_DOTENV"))

	assert.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env")))
}
