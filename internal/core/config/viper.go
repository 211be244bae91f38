package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// LoadConfig loads configuration from file using viper.
// CLI flags > environment > config file > defaults precedence; flags are
// applied by the caller.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("store.driver", def.Store.Driver)
	v.SetDefault("store.resource_dir", def.Store.ResourceDir)
	v.SetDefault("store.db_url", "")
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("cache.preload", []string{})

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Checked before env binding so only file contents are inspected
	if err := validateNoSecretsInConfig(v); err != nil {
		return nil, err
	}

	// Bind environment variables with TR_ prefix
	v.SetEnvPrefix("TR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Store: StoreConfig{
			Driver:      v.GetString("store.driver"),
			ResourceDir: v.GetString("store.resource_dir"),
			DBURL:       v.GetString("store.db_url"),
		},
		Log: LogConfig{
			Level: strings.ToLower(v.GetString("log.level")),
		},
		Cache: CacheConfig{
			Preload: v.GetStringSlice("cache.preload"),
		},
	}

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validateNoSecretsInConfig keeps database passwords out of config files.
func validateNoSecretsInConfig(v *viper.Viper) error {
	if hasPassword(v.GetString("store.db_url")) {
		return fmt.Errorf("database passwords not allowed in config files (use TR_STORE_DB_URL environment variable)")
	}
	return nil
}
