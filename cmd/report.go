package cmd

import (
	"fmt"
	"os"

	"github.com/angela-xuanye/MSDS-Colorado/core"
	"github.com/angela-xuanye/MSDS-Colorado/internal/charts"
	"github.com/angela-xuanye/MSDS-Colorado/internal/outwriter"
	"github.com/angela-xuanye/MSDS-Colorado/internal/parquet"
	"github.com/spf13/cobra"
)

// reportCmd runs every analysis over one dataset load.
var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run all analyses and write the HTML chart report",
	Long: `Load the dataset once, run the rankings, heatmap, trend, and
regression, print their tables, and write an HTML chart page under
--charts-dir. With --parquet-file, the enriched base series is also
exported as parquet.

Examples:
  # Full report with charts under ./charts
  shootings report

  # Report plus a parquet export
  shootings report --parquet-file base_series.parquet`,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		results, _, err := core.GetReportResults(rootCtx, cfg, cacheManager)
		if err != nil {
			return err
		}

		if err := outwriter.WriteRankResults(results.RankByDay, cfg); err != nil {
			return err
		}
		if err := outwriter.WriteRankResults(results.RankByHour, cfg); err != nil {
			return err
		}
		if err := outwriter.WriteHeatmapResults(results.Heatmap, cfg); err != nil {
			return err
		}
		if err := outwriter.WriteTrendResults(results.Trend, cfg); err != nil {
			return err
		}
		if err := outwriter.WriteRegressionResults(results.Regression, cfg); err != nil {
			return err
		}

		pagePath, err := charts.WriteReportPage(cfg.ChartsDir, results.Heatmap, results.Trend, results.RankByDay, results.Regression)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote chart report to %s\n", pagePath)

		if cfg.ParquetFile != "" {
			rows := parquet.ConvertBaseSeries(results.BaseSeries)
			if err := parquet.WriteBaseSeriesParquet(rows, cfg.ParquetFile); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "💾 Wrote %d base-series rows to %s\n", len(rows), cfg.ParquetFile)
		}
		return nil
	},
}
