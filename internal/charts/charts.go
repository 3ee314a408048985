// Package charts renders the report analyses as a single HTML page of
// go-echarts charts.
package charts

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/angela-xuanye/MSDS-Colorado/schema"
)

// reportFileName is the page written under the charts directory.
const reportFileName = "report.html"

// viridisPalette colors the heatmap visual map from low to high.
var viridisPalette = []string{"#440154", "#482777", "#3e4989", "#31688e", "#26828e", "#1f9e89", "#35b779", "#6ece58", "#b5de2b", "#fde725"}

// WriteReportPage assembles the heatmap, trend, ranking, and regression
// charts into one page and writes it under chartsDir. Returns the path
// of the written file.
func WriteReportPage(chartsDir string, heatmap schema.HeatmapResult, trend schema.TrendResult, rank schema.RankResult, regression schema.RegressionResult) (string, error) {
	if err := os.MkdirAll(chartsDir, 0o755); err != nil {
		return "", fmt.Errorf("create charts directory: %w", err)
	}

	page := components.NewPage()
	page.AddCharts(
		buildHeatmapChart(heatmap),
		buildTrendChart(trend),
		buildRankChart(rank),
		buildRegressionChart(regression),
	)

	outPath := filepath.Join(chartsDir, reportFileName)
	file, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("create report page: %w", err)
	}
	defer func() { _ = file.Close() }()

	if err := page.Render(file); err != nil {
		return "", fmt.Errorf("render report page: %w", err)
	}
	return outPath, nil
}

// buildHeatmapChart plots the day x hour matrix with a visual map over
// the displayed count metric.
func buildHeatmapChart(result schema.HeatmapResult) *charts.HeatMap {
	countOf := func(c schema.HeatmapCell) int {
		if result.Metric == schema.DeathsMetric {
			return c.Deaths
		}
		return c.Incidents
	}

	maxCount := 0
	data := make([]opts.HeatMapData, 0, len(result.Days)*len(result.Hours))
	for row := range result.Days {
		for col := range result.Hours {
			count := countOf(result.Cells[row][col])
			if count > maxCount {
				maxCount = count
			}
			// ECharts heatmap coordinates are [x, y, value].
			data = append(data, opts.HeatMapData{Value: [3]interface{}{col, row, count}})
		}
	}

	hours := make([]string, len(result.Hours))
	for i, h := range result.Hours {
		hours[i] = string(h)
	}

	heatmap := charts.NewHeatMap()
	heatmap.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Incidents by Day and Hour Category", Subtitle: fmt.Sprintf("metric=%s grand total=%d", result.Metric, result.GrandTotal)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: hours}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: result.Days}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxCount),
			InRange:    &opts.VisualMapInRange{Color: viridisPalette},
		}),
	)
	heatmap.AddSeries("counts", data)
	return heatmap
}

// buildTrendChart plots the yearly incident and death series.
func buildTrendChart(result schema.TrendResult) *charts.Line {
	years := make([]string, len(result.Years))
	incidents := make([]opts.LineData, len(result.Years))
	deaths := make([]opts.LineData, len(result.Years))
	for i, point := range result.Years {
		years[i] = strconv.Itoa(point.Year)
		incidents[i] = opts.LineData{Value: point.Incidents}
		deaths[i] = opts.LineData{Value: point.Deaths}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Yearly Trend", Subtitle: fmt.Sprintf("%d years with incidents", len(result.Years))}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	line.SetXAxis(years).
		AddSeries("incidents", incidents).
		AddSeries("deaths", deaths)
	return line
}

// buildRankChart plots the ranking as a bar chart in ranked order.
func buildRankChart(result schema.RankResult) *charts.Bar {
	labels := make([]string, len(result.Rows))
	counts := make([]opts.BarData, len(result.Rows))
	for i, row := range result.Rows {
		labels[i] = row.Label
		counts[i] = opts.BarData{Value: row.Count}
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Ranking", Subtitle: fmt.Sprintf("by %s, metric=%s", result.Dimension, result.Metric)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(labels).
		AddSeries(string(result.Metric), counts,
			charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Position: "top"}),
		)
	return bar
}

// buildRegressionChart plots actual vs predicted fatality rate per
// observation, colored by incident count.
func buildRegressionChart(result schema.RegressionResult) *charts.Scatter {
	maxIncidents := 0
	data := make([]opts.ScatterData, 0, len(result.Rows))
	for _, row := range result.Rows {
		if row.Incidents > maxIncidents {
			maxIncidents = row.Incidents
		}
		predicted := predictRate(result.Terms, row)
		data = append(data, opts.ScatterData{Value: []interface{}{row.Rate, predicted, row.Incidents}})
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Fatality Rate: Actual vs Predicted", Subtitle: fmt.Sprintf("observations=%d R2=%.3f", result.Observations, result.RSquared)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Actual", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Predicted", NameLocation: "middle", NameGap: 30}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(true),
			Min:        0,
			Max:        float32(maxIncidents),
			InRange:    &opts.VisualMapInRange{Color: viridisPalette},
		}),
	)
	scatter.AddSeries("groups", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 8}))
	return scatter
}

// predictRate applies the fitted terms to one observation. Term order
// is intercept, incidents, deaths.
func predictRate(terms []schema.RegressionTerm, row schema.RegressionRow) float64 {
	if len(terms) != 3 {
		return 0
	}
	return terms[0].Coefficient +
		terms[1].Coefficient*float64(row.Incidents) +
		terms[2].Coefficient*float64(row.Deaths)
}
