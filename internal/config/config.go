package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds environment-driven settings. Variables are prefixed with
// UISCOUT_, e.g. UISCOUT_SESSION_DIR, UISCOUT_LOG_LEVEL.
type Config struct {
	SessionDir string        `envconfig:"SESSION_DIR"`
	LogLevel   string        `envconfig:"LOG_LEVEL" default:"warn"`
	CacheTTL   time.Duration `envconfig:"CACHE_TTL" default:"2s"` // MCP tree cache TTL; 0 disables
}

// Load reads configuration from the environment and fills in defaults.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("uiscout", &cfg); err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	if cfg.SessionDir == "" {
		dir, err := DefaultSessionDir()
		if err != nil {
			return cfg, err
		}
		cfg.SessionDir = dir
	}
	return cfg, nil
}

// DefaultSessionDir returns the per-user session directory.
func DefaultSessionDir() (string, error) {
	cache, err := os.UserCacheDir()
	if err != nil {
		return "", fmt.Errorf("resolve user cache dir: %w", err)
	}
	return filepath.Join(cache, "uiscout", "sessions"), nil
}
