package cmd

import (
	"fmt"

	"github.com/angela-xuanye/MSDS-Colorado/internal/contract"
	"github.com/angela-xuanye/MSDS-Colorado/internal/iocache"
	"github.com/angela-xuanye/MSDS-Colorado/internal/outwriter"
	"github.com/angela-xuanye/MSDS-Colorado/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// cacheSetup loads minimal configuration needed for cache operations.
// This is used by commands that need cache access without full shared setup.
func cacheSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get cache-related config values
	backend := schema.DatabaseBackend(viper.GetString("cache-backend"))
	connStr := viper.GetString("cache-db-connect")

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Initialize caching with the loaded config
	if err := iocache.InitCaching(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize cache: %w", err)
	}

	cfg.CacheBackend = backend
	cfg.CacheDBConnect = connStr
	cfg.Output = schema.OutputMode(viper.GetString("output"))
	if cfg.Output == "" {
		cfg.Output = schema.TextOut
	}
	cfg.OutputFile = viper.GetString("output-file")

	return nil
}

// cacheSetupWrapper wraps cacheSetup to provide PreRunE for cache commands.
func cacheSetupWrapper(_ *cobra.Command, _ []string) error {
	return cacheSetup()
}

// cacheCmd focused on cache management.
//
// Note: Cache subcommands use minimal initialization (cacheSetup)
// instead of the full sharedSetup used by analysis commands.
var cacheCmd = &cobra.Command{
	Use:   "cache",
	Short: "Manage the dataset download cache",
	Long: `Manage the cache of downloaded dataset extracts.

Shootings caches the raw CSV download so repeated analyses do not
refetch tens of megabytes from NYC Open Data on every run.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None

Subcommands:
  status - Show cache statistics and connection info
  clear  - Remove all cached downloads

Examples:
  # Check cache status
  shootings cache status

  # Clear the cache after the extract is republished
  shootings cache clear`,
}

// cacheClearCmd clears the cache.
var cacheClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all cached dataset downloads",
	Long: `Delete all cached downloads from the configured backend.

Use this when:
- The upstream extract was republished
- Cache may be stale or corrupted
- Testing download behavior without cache

For SQLite: Deletes the database file
For MySQL/PostgreSQL: Drops the cache table

Examples:
  # Clear SQLite cache (default)
  shootings cache clear

  # Clear MySQL cache (set connection string via env variable)
  SHOOTINGS_CACHE_BACKEND=mysql SHOOTINGS_CACHE_DB_CONNECT="..." shootings cache clear`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := iocache.ClearCache(cfg.CacheBackend, contract.GetCacheDBFilePath(), cfg.CacheDBConnect); err != nil {
			contract.LogFatal("Failed to clear cache", err)
		}
		fmt.Println("Cache cleared successfully.")
	},
}

// cacheStatusCmd shows cache status.
var cacheStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display cache statistics and connection details",
	Long: `Show detailed information about the download cache.

Displays:
- Backend type and location
- Total number of cached downloads
- Oldest and newest entry timestamps
- Cache size

Examples:
  # Check cache status
  shootings cache status`,
	PreRunE: cacheSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := iocache.Manager.GetDownloadStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get cache status", err)
		}
		if err := outwriter.WriteCacheStatus(status, cfg); err != nil {
			contract.LogFatal("Failed to write cache status", err)
		}
	},
}
