// Package cmd defines the command-line interface for shootings.
package cmd

import (
	"github.com/angela-xuanye/MSDS-Colorado/internal/contract"
	"github.com/angela-xuanye/MSDS-Colorado/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(rankCmd)
	rootCmd.AddCommand(heatmapCmd)
	rootCmd.AddCommand(trendCmd)
	rootCmd.AddCommand(regressCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("url", contract.DefaultDatasetURL, "Dataset CSV URL")
	rootCmd.PersistentFlags().StringP("input", "i", "", "Local CSV file to analyze instead of downloading")
	rootCmd.PersistentFlags().Bool("refresh", false, "Bypass the download cache and refetch the dataset")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Bool("strict", false, "Abort on the first malformed row instead of skipping")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("charts-dir", "charts", "Directory for the HTML chart report")
	rootCmd.PersistentFlags().String("parquet-file", "", "Optional path for the parquet export of the base series")
	rootCmd.PersistentFlags().String("emoji", "yes", "Enable emojis in status output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Bind all flags of rankCmd to Viper
	rankCmd.Flags().String("by", string(schema.RankByDay), "Ranking axis: day or hour")
	rankCmd.Flags().String("metric", string(schema.IncidentsMetric), "Metric to rank by: incidents or deaths")
	if err := viper.BindPFlags(rankCmd.Flags()); err != nil {
		contract.LogFatal("Error binding rank flags", err)
	}

	// Bind all flags of heatmapCmd to Viper
	heatmapCmd.Flags().String("metric", string(schema.IncidentsMetric), "Metric to display: incidents, deaths, or rate")
	if err := viper.BindPFlags(heatmapCmd.Flags()); err != nil {
		contract.LogFatal("Error binding heatmap flags", err)
	}

	// Bind all flags of regressCmd to Viper
	regressCmd.Flags().Bool("legacy-daytype", false, "Reproduce the legacy all-Weekday day-type classification")
	if err := viper.BindPFlags(regressCmd.Flags()); err != nil {
		contract.LogFatal("Error binding regress flags", err)
	}

	// Bind all flags of reportCmd to Viper
	reportCmd.Flags().Bool("legacy-daytype", false, "Reproduce the legacy all-Weekday day-type classification")
	if err := viper.BindPFlags(reportCmd.Flags()); err != nil {
		contract.LogFatal("Error binding report flags", err)
	}
}
