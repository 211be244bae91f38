package cmd

import (
	"context"
	"fmt"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/spf13/cobra"

	"github.com/solatis/translit/internal/core/config"
	"github.com/solatis/translit/internal/core/db"
	"github.com/solatis/translit/internal/resources"
	"github.com/solatis/translit/internal/types"
)

var (
	configFile  string
	dbURL       string
	resourceDir string
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:          "translit",
	Short:        "Transliteration rule compiler",
	Long:         `translit compiles CLDR-style transliteration rules into forward and backward rule sets.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&dbURL, "db-url", "", "database connection URL (sqlite://path or postgres://...); selects the db store")
	rootCmd.PersistentFlags().StringVar(&resourceDir, "resource-dir", "", "resource directory for the dir store")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, error)")
}

func Execute() error {
	return rootCmd.Execute()
}

// loadConfig reads the config and applies flags that were set explicitly.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("db-url") {
		cfg.Store.Driver = config.DriverDB
		cfg.Store.DBURL = dbURL
	}
	if flags.Changed("resource-dir") {
		cfg.Store.Driver = config.DriverDir
		cfg.Store.ResourceDir = resourceDir
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = logLevel
	}
	setupTracing(cfg.Log.Level)
	return cfg, nil
}

func setupTracing(level string) {
	gtrace.CoreTracer = gologadapter.New()
	switch level {
	case "debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	case "error":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	default:
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	}
}

// openStore returns the configured resource store and a function releasing
// it.
func openStore(ctx context.Context, cfg *config.Config) (types.ResourceStore, func(), error) {
	if cfg.Store.Driver == config.DriverDir {
		return resources.NewDir(cfg.Store.ResourceDir), func() {}, nil
	}
	store, release, err := openDBStore(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return store, release, nil
}

func openDBStore(ctx context.Context, cfg *config.Config) (*db.Store, func(), error) {
	if cfg.Store.DBURL == "" {
		return nil, nil, fmt.Errorf("--db-url or store.db_url required")
	}
	database, err := db.Open(ctx, cfg.Store.DBURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	store, err := db.NewStore(database)
	if err != nil {
		database.Close()
		return nil, nil, fmt.Errorf("failed to load queries: %w", err)
	}
	return store, func() { database.Close() }, nil
}
