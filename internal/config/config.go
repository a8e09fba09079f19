package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

var (
	ErrMissingAPIBaseURL = errors.New("API_BASE_URL is required")
	ErrInvalidAPIBaseURL = errors.New("API_BASE_URL must be an absolute http(s) URL")
	ErrInvalidRateLimit  = errors.New("API_RATE_LIMIT_PER_SECOND must be positive")
	ErrInvalidLogLevel   = errors.New("LOG_LEVEL must be one of debug, info, warn, error")
	ErrInvalidLogFormat  = errors.New("LOG_FORMAT must be json or text")
)

type Config struct {
	App    AppConfig
	API    APIConfig
	Cache  CacheConfig
	Report ReportConfig
	Log    LogConfig
}

type AppConfig struct {
	Environment string
}

type APIConfig struct {
	BaseURL            string
	Token              string
	Timeout            time.Duration
	RateLimitPerSecond float64
	RateLimitBurst     int
	MaxFailures        int
	ResetTimeout       time.Duration
	HalfOpenMaxSucc    int
}

type CacheConfig struct {
	Enabled       bool
	Path          string
	RunMigrations bool
	MaxOpenConns  int
}

type ReportConfig struct {
	TrendWindow    int
	SnapshotMaxAge time.Duration
	DefaultPeriod  string
	DownloadDir    string
}

type LogConfig struct {
	Level  string
	Format string
}

// LoadDotEnv loads variables from the given files (or .env) without
// overriding variables already set. A missing file is not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	existing := make([]string, 0, len(files))
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}

	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("failed to load env files: %w", err)
	}
	return nil
}

func Load() *Config {
	config := &Config{
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
		},
		API: APIConfig{
			BaseURL:            strings.TrimRight(getEnv("API_BASE_URL", "http://localhost:3000/api"), "/"),
			Token:              getEnv("API_TOKEN", ""),
			Timeout:            getDurationEnv("API_TIMEOUT", 10*time.Second),
			RateLimitPerSecond: getFloatEnv("API_RATE_LIMIT_PER_SECOND", 10),
			RateLimitBurst:     getIntEnv("API_RATE_LIMIT_BURST", 5),
			MaxFailures:        getIntEnv("API_BREAKER_MAX_FAILURES", 5),
			ResetTimeout:       getDurationEnv("API_BREAKER_RESET_TIMEOUT", 30*time.Second),
			HalfOpenMaxSucc:    getIntEnv("API_BREAKER_HALF_OPEN_SUCCESSES", 2),
		},
		Cache: CacheConfig{
			Enabled:       getBoolEnv("CACHE_ENABLED", true),
			Path:          getEnv("CACHE_PATH", "fintrack.db"),
			RunMigrations: getBoolEnv("CACHE_RUN_MIGRATIONS", true),
			MaxOpenConns:  getIntEnv("CACHE_MAX_OPEN_CONNS", 1),
		},
		Report: ReportConfig{
			TrendWindow:    getIntEnv("REPORT_TREND_WINDOW", 6),
			SnapshotMaxAge: getDurationEnv("REPORT_SNAPSHOT_MAX_AGE", 5*time.Minute),
			DefaultPeriod:  getEnv("REPORT_DEFAULT_PERIOD", "THIS_YEAR"),
			DownloadDir:    getEnv("REPORT_DOWNLOAD_DIR", "."),
		},
		Log: LogConfig{
			Level:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
			Format: strings.ToLower(getEnv("LOG_FORMAT", "text")),
		},
	}

	if config.IsProduction() && config.Log.Format == "text" && os.Getenv("LOG_FORMAT") == "" {
		config.Log.Format = "json"
	}

	return config
}

// Validate checks the values Load cannot default sensibly.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return ErrMissingAPIBaseURL
	}

	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return ErrInvalidAPIBaseURL
	}

	if c.API.RateLimitPerSecond <= 0 {
		return ErrInvalidRateLimit
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return ErrInvalidLogFormat
	}

	return nil
}

// SlogLevel maps the configured level name.
func (c LogConfig) SlogLevel() (slog.Level, error) {
	switch c.Level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, ErrInvalidLogLevel
}

func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.App.Environment == "testing"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatEnv(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
