package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Source selects where the catalog comes from.
const (
	SourceRemote = "remote"
	SourceLocal  = "local"
)

// Config holds the whole application configuration, populated from
// environment variables.
type Config struct {
	App     AppConfig
	Backend BackendConfig
	Cache   CacheConfig
	Session SessionConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, production
	Source      string // remote, local
	PageSize    int
	StatePath   string // local-store JSON file
	LogPath     string
}

type BackendConfig struct {
	BaseURL  string
	Timeout  time.Duration
	CacheTTL time.Duration
}

type CacheConfig struct {
	Driver   string // memory, redis
	Host     string
	Password string
	DB       int
}

type SessionConfig struct {
	Secret string
	TTL    time.Duration
	Path   string // session token file
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	dataDir := getEnv("FOLIANT_DATA_DIR", defaultDataDir())

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Фолиант"),
			Environment: getEnv("APP_ENV", "development"),
			Source:      getEnv("CATALOG_SOURCE", SourceLocal),
			PageSize:    getEnvInt("PAGE_SIZE", 12),
			StatePath:   getEnv("STATE_PATH", filepath.Join(dataDir, "state.json")),
			LogPath:     getEnv("LOG_PATH", filepath.Join(dataDir, "foliant.log")),
		},
		Backend: BackendConfig{
			BaseURL:  getEnv("BACKEND_URL", "http://localhost:8000"),
			Timeout:  time.Duration(getEnvInt("BACKEND_TIMEOUT_SECONDS", 10)) * time.Second,
			CacheTTL: time.Duration(getEnvInt("BACKEND_CACHE_TTL_SECONDS", 300)) * time.Second,
		},
		Cache: CacheConfig{
			Driver:   getEnv("CACHE_DRIVER", "memory"),
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Session: SessionConfig{
			Secret: getEnv("SESSION_SECRET", "foliant-dev-secret-change-me"),
			TTL:    time.Duration(getEnvInt("SESSION_TTL_HOURS", 720)) * time.Hour,
			Path:   getEnv("SESSION_PATH", filepath.Join(dataDir, "session")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// Validate checks the parts that would otherwise fail much later.
func (c *Config) Validate() error {
	if c.App.Source != SourceRemote && c.App.Source != SourceLocal {
		return fmt.Errorf("CATALOG_SOURCE must be %q or %q, got %q", SourceRemote, SourceLocal, c.App.Source)
	}
	if c.App.PageSize <= 0 {
		return fmt.Errorf("PAGE_SIZE must be positive")
	}
	if c.App.Source == SourceRemote && c.Backend.BaseURL == "" {
		return fmt.Errorf("BACKEND_URL must be set for the remote source")
	}
	if c.App.Environment == "production" && c.Session.Secret == "foliant-dev-secret-change-me" {
		return fmt.Errorf("SESSION_SECRET must be set in production")
	}
	return nil
}

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".foliant"
	}
	return filepath.Join(home, ".foliant")
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
