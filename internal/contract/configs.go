package contract

import (
	"fmt"
	"strings"

	"github.com/angela-xuanye/MSDS-Colorado/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 1
)

// DefaultDatasetURL is the NYC Open Data extract of shooting incidents.
const DefaultDatasetURL = "https://data.cityofnewyork.us/api/views/833y-fsy8/rows.csv?accessType=DOWNLOAD"

// Config holds the runtime configuration for the analysis.
// This struct remains the "final, validated" config.
type Config struct {
	DatasetURL string
	InputFile  string // local CSV path; takes precedence over DatasetURL
	Refresh    bool   // bypass the download cache

	RankBy schema.RankDimension
	Metric schema.Metric

	LegacyDayType bool // reproduce the constant-Weekday classification
	Strict        bool // abort on the first malformed row

	ResultLimit int
	Precision   int
	Output      schema.OutputMode
	OutputFile  string
	Width       int // Terminal width override (0 = auto-detect)

	ChartsDir   string
	ParquetFile string

	CacheBackend   schema.DatabaseBackend
	CacheDBConnect string // Please use env var as this is plaintext

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// --- Fields from rootCmd.PersistentFlags() ---
	URL            string `mapstructure:"url"`
	Input          string `mapstructure:"input"`
	Refresh        bool   `mapstructure:"refresh"`
	Output         string `mapstructure:"output"`
	OutputFile     string `mapstructure:"output-file"`
	Precision      int    `mapstructure:"precision"`
	Limit          int    `mapstructure:"limit"`
	Strict         bool   `mapstructure:"strict"`
	Width          int    `mapstructure:"width"`
	CacheBackend   string `mapstructure:"cache-backend"`
	CacheDBConnect string `mapstructure:"cache-db-connect"`
	ChartsDir      string `mapstructure:"charts-dir"`
	ParquetFile    string `mapstructure:"parquet-file"`
	Emoji          string `mapstructure:"emoji"`
	Color          string `mapstructure:"color"`

	// --- Fields from rankCmd.Flags() ---
	By     string `mapstructure:"by"`
	Metric string `mapstructure:"metric"`

	// --- Fields from regressCmd.Flags() ---
	LegacyDayType bool `mapstructure:"legacy-daytype"`
}

// Clone returns a copy of the Config struct. All fields are value
// types, so a shallow copy is a full copy.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw
// inputs and populates the final Config struct.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := validateAnalysisInputs(cfg, input); err != nil {
		return err
	}
	if err := validateBackendConfigs(cfg, input); err != nil {
		return err
	}
	return nil
}

// validateSimpleInputs processes and validates the shared fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.InputFile = input.Input
	cfg.Refresh = input.Refresh
	cfg.Strict = input.Strict
	cfg.OutputFile = input.OutputFile
	cfg.Width = input.Width
	cfg.ChartsDir = input.ChartsDir
	cfg.ParquetFile = input.ParquetFile
	cfg.LegacyDayType = input.LegacyDayType

	cfg.DatasetURL = strings.TrimSpace(input.URL)
	if cfg.DatasetURL == "" {
		cfg.DatasetURL = DefaultDatasetURL
	}

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > 2 {
		return fmt.Errorf("precision must be 1 or 2 (received %d)", input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json", cfg.Output)
	}

	return nil
}

// validateAnalysisInputs processes the ranking axis and metric.
func validateAnalysisInputs(cfg *Config, input *ConfigRawInput) error {
	cfg.RankBy = schema.RankDimension(strings.ToLower(input.By))
	if cfg.RankBy == "" {
		cfg.RankBy = schema.RankByDay
	}
	if _, ok := schema.ValidRankDimensions[cfg.RankBy]; !ok {
		return fmt.Errorf("invalid rank dimension '%s'. must be day, hour", input.By)
	}

	cfg.Metric = schema.Metric(strings.ToLower(input.Metric))
	if cfg.Metric == "" {
		cfg.Metric = schema.IncidentsMetric
	}
	// RateMetric is a heatmap-only display choice and carries no count
	// to rank by, so it passes through here and is checked per command.
	if cfg.Metric != schema.RateMetric {
		if _, ok := schema.ValidMetrics[cfg.Metric]; !ok {
			return fmt.Errorf("invalid metric '%s'. must be incidents, deaths", input.Metric)
		}
	}

	return nil
}

// validateBackendConfigs validates the cache backend configuration.
func validateBackendConfigs(cfg *Config, input *ConfigRawInput) error {
	cfg.CacheBackend = schema.DatabaseBackend(strings.ToLower(input.CacheBackend))
	if _, ok := schema.ValidCacheBackends[cfg.CacheBackend]; !ok {
		return fmt.Errorf("invalid cache backend '%s'. must be sqlite, mysql, postgresql, none", input.CacheBackend)
	}
	cfg.CacheDBConnect = input.CacheDBConnect
	return ValidateDatabaseConnectionString(cfg.CacheBackend, cfg.CacheDBConnect)
}

// ValidateDatabaseConnectionString validates the format of database
// connection strings for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.SQLiteBackend, schema.NoneBackend:
		return nil
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("cache-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}
