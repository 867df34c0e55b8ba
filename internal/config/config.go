package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sethvargo/go-envconfig"
)

// Storage backend names accepted in TRACKLITE_BACKEND.
const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendMySQL    = "mysql"
	BackendPostgres = "postgres"
)

type Config struct {
	// Backend selects where the key-value records live.
	Backend string `env:"TRACKLITE_BACKEND, default=file"`
	// DataDir is the directory of the file backend. Defaults to
	// ~/.tracklite when unset.
	DataDir string `env:"TRACKLITE_DATA_DIR"`
	// DSN is the connection string for the mysql and postgres backends.
	DSN string `env:"TRACKLITE_DSN"`

	LogLevel  string `env:"TRACKLITE_LOG_LEVEL, default=warn"`
	LogPretty bool   `env:"TRACKLITE_LOG_PRETTY, default=true"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("config: resolve home directory: %w", err)
		}
		cfg.DataDir = filepath.Join(home, ".tracklite")
	}

	switch cfg.Backend {
	case BackendFile, BackendMemory:
	case BackendMySQL, BackendPostgres:
		if cfg.DSN == "" {
			return nil, fmt.Errorf("config: TRACKLITE_DSN is required for the %s backend", cfg.Backend)
		}
	default:
		return nil, fmt.Errorf("config: unknown backend %q", cfg.Backend)
	}

	return &cfg, nil
}
