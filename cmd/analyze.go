package cmd

import (
	"fmt"

	"github.com/angela-xuanye/MSDS-Colorado/core"
	"github.com/angela-xuanye/MSDS-Colorado/internal/outwriter"
	"github.com/angela-xuanye/MSDS-Colorado/schema"
	"github.com/spf13/cobra"
)

// rankCmd ranks days or hour categories by a count metric.
var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Rank days or hour categories by incidents or deaths",
	Long: `Group the cleaned incidents by day of week or by hour category and
rank the groups by distinct incident or death counts, descending.
Ties keep the fixed axis order (Sunday..Saturday, Late Night..Evening).

Examples:
  # Rank days by incidents (default)
  shootings rank

  # Rank hour categories by deaths, as CSV
  shootings rank --by hour --metric deaths --output csv`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		if cfg.Metric == schema.RateMetric {
			return fmt.Errorf("metric 'rate' is only available for the heatmap command")
		}
		result, _, err := core.GetRankResults(rootCtx, cfg, cacheManager)
		if err != nil {
			return err
		}
		return outwriter.WriteRankResults(result, cfg)
	},
}

// heatmapCmd builds the day x hour-category matrix.
var heatmapCmd = &cobra.Command{
	Use:   "heatmap",
	Short: "Show the day x hour-category incident matrix",
	Long: `Build the 7x6 matrix of days (Sunday..Saturday) by hour categories
(Late Night..Evening). Cells carry distinct incident and death counts,
the fatality rate, and the cell's share of the grand total.

Examples:
  # Incident counts with share percentages
  shootings heatmap

  # Fatality rates with severity labels
  shootings heatmap --metric rate`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		result, _, err := core.GetHeatmapResults(rootCtx, cfg, cacheManager)
		if err != nil {
			return err
		}
		return outwriter.WriteHeatmapResults(result, cfg)
	},
}

// trendCmd builds the yearly series.
var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Show the yearly incident and death series",
	Long: `Aggregate incidents per calendar year, excluding years without a
single incident, and report counts and fatality rates in ascending
year order.

Examples:
  # Yearly table
  shootings trend

  # Yearly series as JSON
  shootings trend --output json`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		result, _, err := core.GetTrendResults(rootCtx, cfg, cacheManager)
		if err != nil {
			return err
		}
		return outwriter.WriteTrendResults(result, cfg)
	},
}

// regressCmd fits the fatality-rate model.
var regressCmd = &cobra.Command{
	Use:   "regress",
	Short: "Fit fatality rate on incident and death counts",
	Long: `Group incidents by (day type, hour category, borough), keep groups
with at least one incident, and fit an ordinary-least-squares model of
fatality rate on incident and death counts with an intercept.

The day type defaults to the corrected weekday/weekend split;
--legacy-daytype reproduces the historical classification in which
every group landed on Weekday.

Examples:
  # Corrected day types (default)
  shootings regress

  # Parity with the original report
  shootings regress --legacy-daytype`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		result, _, err := core.GetRegressionResults(rootCtx, cfg, cacheManager)
		if err != nil {
			return err
		}
		return outwriter.WriteRegressionResults(result, cfg)
	},
}
