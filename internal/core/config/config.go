// Package config provides configuration management for the translit tools.
package config

import (
	"fmt"
	"net/url"
)

// Store drivers.
const (
	DriverDir = "dir"
	DriverDB  = "db"
)

// Config is the complete runtime configuration.
type Config struct {
	Store StoreConfig
	Log   LogConfig
	Cache CacheConfig
}

// StoreConfig selects where transform resources are read from.
type StoreConfig struct {
	Driver      string
	ResourceDir string
	DBURL       string
}

// LogConfig controls the core tracer.
type LogConfig struct {
	Level string
}

// CacheConfig lists transforms compiled ahead of first use.
type CacheConfig struct {
	Preload []string
}

// Default returns configuration with default values.
func Default() *Config {
	return &Config{
		Store: StoreConfig{
			Driver:      DriverDir,
			ResourceDir: "./resources",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// validateConfig checks the store driver and its settings and the log level.
func validateConfig(cfg *Config) error {
	switch cfg.Store.Driver {
	case DriverDir:
		if cfg.Store.ResourceDir == "" {
			return fmt.Errorf("store.resource_dir must be set for the %q driver", DriverDir)
		}
	case DriverDB:
		if cfg.Store.DBURL == "" {
			return fmt.Errorf("store.db_url must be set for the %q driver", DriverDB)
		}
	default:
		return fmt.Errorf("store.driver must be %q or %q, got %q", DriverDir, DriverDB, cfg.Store.Driver)
	}
	switch cfg.Log.Level {
	case "debug", "info", "error":
	default:
		return fmt.Errorf("log.level must be debug, info or error, got %q", cfg.Log.Level)
	}
	return nil
}

// hasPassword reports whether a database URL embeds a password.
func hasPassword(dbURL string) bool {
	u, err := url.Parse(dbURL)
	if err != nil || u.User == nil {
		return false
	}
	_, ok := u.User.Password()
	return ok
}
