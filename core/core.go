// Package core runs the load, clean, and analysis stages.
package core

import (
	"context"
	"fmt"
	"os"

	"github.com/angela-xuanye/MSDS-Colorado/core/agg"
	"github.com/angela-xuanye/MSDS-Colorado/internal/contract"
	"github.com/angela-xuanye/MSDS-Colorado/schema"
)

// baseSeriesDims is the full enrichment key: one bucket per distinct
// (year, day, hour category, date, time, fatal) tuple.
var baseSeriesDims = []schema.Dimension{
	schema.DimYear,
	schema.DimWeekday,
	schema.DimHourCategory,
	schema.DimDate,
	schema.DimTime,
	schema.DimFatal,
}

// LoadIncidents runs the load and clean stages once and reports what
// they saw on stderr unless the context suppresses headers.
func LoadIncidents(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) ([]schema.Incident, schema.LoadSummary, error) {
	data, fromCache, err := FetchDataset(ctx, cfg, mgr)
	if err != nil {
		return nil, schema.LoadSummary{}, err
	}

	records, rows, err := ParseRecords(data)
	if err != nil {
		return nil, schema.LoadSummary{}, err
	}

	incidents, malformed, err := CleanRecords(records, cfg.Strict)
	if err != nil {
		return nil, schema.LoadSummary{}, err
	}

	source := cfg.DatasetURL
	if cfg.InputFile != "" {
		source = cfg.InputFile
	}
	summary := schema.LoadSummary{
		Source:    source,
		FromCache: fromCache,
		RowsRead:  rows,
		Malformed: malformed,
		Incidents: len(incidents),
	}

	if !isHeaderSuppressed(ctx) {
		printLoadSummary(cfg, summary)
	}
	return incidents, summary, nil
}

// printLoadSummary writes the load status lines to stderr.
func printLoadSummary(cfg *contract.Config, summary schema.LoadSummary) {
	sourceNote := "downloaded"
	if summary.FromCache {
		sourceNote = "from cache"
	}
	if cfg.InputFile != "" {
		sourceNote = "local file"
	}

	loadPrefix, warnPrefix := "", ""
	if cfg.UseEmojis {
		loadPrefix, warnPrefix = "\U0001F4E5 ", "⚠️ "
	}
	fmt.Fprintf(os.Stderr, "%sLoaded %d rows (%s), %d cleaned incidents\n",
		loadPrefix, summary.RowsRead, sourceNote, summary.Incidents)
	if summary.Malformed > 0 {
		fmt.Fprintf(os.Stderr, "%sSkipped %d malformed rows\n", warnPrefix, summary.Malformed)
	}
}

// GetRankResults runs the pipeline and ranks by the configured axis.
func GetRankResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (schema.RankResult, schema.LoadSummary, error) {
	incidents, summary, err := LoadIncidents(ctx, cfg, mgr)
	if err != nil {
		return schema.RankResult{}, summary, err
	}
	return BuildRanking(incidents, cfg.RankBy, cfg.Metric, cfg.ResultLimit), summary, nil
}

// GetHeatmapResults runs the pipeline and builds the day x hour matrix.
func GetHeatmapResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (schema.HeatmapResult, schema.LoadSummary, error) {
	incidents, summary, err := LoadIncidents(ctx, cfg, mgr)
	if err != nil {
		return schema.HeatmapResult{}, summary, err
	}
	return BuildHeatmap(incidents, cfg.Metric), summary, nil
}

// GetTrendResults runs the pipeline and builds the yearly series.
func GetTrendResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (schema.TrendResult, schema.LoadSummary, error) {
	incidents, summary, err := LoadIncidents(ctx, cfg, mgr)
	if err != nil {
		return schema.TrendResult{}, summary, err
	}
	return BuildTrend(incidents), summary, nil
}

// GetRegressionResults runs the pipeline and fits the fatality-rate
// model.
func GetRegressionResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (schema.RegressionResult, schema.LoadSummary, error) {
	incidents, summary, err := LoadIncidents(ctx, cfg, mgr)
	if err != nil {
		return schema.RegressionResult{}, summary, err
	}
	rows := BuildRegressionRows(incidents, cfg.LegacyDayType)
	result, err := BuildRegression(rows, cfg.LegacyDayType)
	if err != nil {
		return schema.RegressionResult{}, summary, err
	}
	return result, summary, nil
}

// ReportResults bundles every analysis over one pipeline run. Used by
// the report command so the dataset is loaded exactly once.
type ReportResults struct {
	RankByDay  schema.RankResult
	RankByHour schema.RankResult
	Heatmap    schema.HeatmapResult
	Trend      schema.TrendResult
	Regression schema.RegressionResult
	BaseSeries []schema.Bucket
}

// GetReportResults runs the pipeline once and computes all analyses.
func GetReportResults(ctx context.Context, cfg *contract.Config, mgr contract.CacheManager) (*ReportResults, schema.LoadSummary, error) {
	incidents, summary, err := LoadIncidents(ctx, cfg, mgr)
	if err != nil {
		return nil, summary, err
	}

	rows := BuildRegressionRows(incidents, cfg.LegacyDayType)
	regression, err := BuildRegression(rows, cfg.LegacyDayType)
	if err != nil {
		return nil, summary, err
	}

	return &ReportResults{
		RankByDay:  BuildRanking(incidents, schema.RankByDay, cfg.Metric, 0),
		RankByHour: BuildRanking(incidents, schema.RankByHour, cfg.Metric, 0),
		Heatmap:    BuildHeatmap(incidents, cfg.Metric),
		Trend:      BuildTrend(incidents),
		Regression: regression,
		BaseSeries: agg.Aggregate(incidents, baseSeriesDims),
	}, summary, nil
}
