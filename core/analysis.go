package core

import (
	"fmt"
	"math"
	"sort"

	"github.com/angela-xuanye/MSDS-Colorado/core/agg"
	"github.com/angela-xuanye/MSDS-Colorado/core/algo"
	"github.com/angela-xuanye/MSDS-Colorado/schema"
)

// BuildRanking groups incidents by day or hour category and orders the
// groups by the chosen metric, descending. Ties keep the fixed axis
// order via the stable sort.
func BuildRanking(incidents []schema.Incident, dim schema.RankDimension, metric schema.Metric, limit int) schema.RankResult {
	var buckets []schema.Bucket
	if dim == schema.RankByHour {
		buckets = agg.Aggregate(incidents, []schema.Dimension{schema.DimHourCategory})
	} else {
		buckets = agg.Aggregate(incidents, []schema.Dimension{schema.DimWeekday})
	}

	rows := make([]schema.RankRow, 0, len(buckets))
	for _, b := range buckets {
		label := b.Key.Weekday
		if dim == schema.RankByHour {
			label = string(b.Key.HourCategory)
		}
		count := b.Incidents
		if metric == schema.DeathsMetric {
			count = b.Deaths
		}
		rows = append(rows, schema.RankRow{Label: label, Count: count})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Count > rows[j].Count
	})
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}

	return schema.RankResult{Dimension: dim, Metric: metric, Rows: rows}
}

// BuildHeatmap assembles the 7x6 day x hour-category matrix. Cell
// shares are the cell's fraction of the grand total of the displayed
// count metric, rounded at four decimal places before scaling to a
// percentage. The rate view keeps incident-based shares since a rate
// has no meaningful grand total.
func BuildHeatmap(incidents []schema.Incident, metric schema.Metric) schema.HeatmapResult {
	buckets := agg.Aggregate(incidents, []schema.Dimension{schema.DimWeekday, schema.DimHourCategory})

	result := schema.HeatmapResult{
		Metric: metric,
		Days:   append([]string(nil), schema.WeekdayOrder...),
		Hours:  append([]schema.HourCategory(nil), schema.HourCategoryOrder...),
	}

	dayIdx := make(map[string]int, len(schema.WeekdayOrder))
	for i, d := range schema.WeekdayOrder {
		dayIdx[d] = i
	}
	hourIdx := make(map[schema.HourCategory]int, len(schema.HourCategoryOrder))
	for i, h := range schema.HourCategoryOrder {
		hourIdx[h] = i
	}

	for _, b := range buckets {
		row, ok := dayIdx[b.Key.Weekday]
		if !ok {
			continue
		}
		col := hourIdx[b.Key.HourCategory]
		cell := &result.Cells[row][col]
		cell.Incidents = b.Incidents
		cell.Deaths = b.Deaths
		if b.Incidents > 0 {
			cell.Rate = float64(b.Deaths) / float64(b.Incidents)
		}
	}

	countOf := func(c schema.HeatmapCell) int {
		if metric == schema.DeathsMetric {
			return c.Deaths
		}
		return c.Incidents
	}

	grand := 0
	for row := range result.Cells {
		for col := range result.Cells[row] {
			grand += countOf(result.Cells[row][col])
		}
	}
	result.GrandTotal = grand

	if grand > 0 {
		for row := range result.Cells {
			for col := range result.Cells[row] {
				cell := &result.Cells[row][col]
				frac := float64(countOf(*cell)) / float64(grand)
				cell.SharePct = math.Round(frac*10000) / 10000 * 100
			}
		}
	}
	return result
}

// BuildTrend produces the ascending yearly series. Years without a
// single incident never form a bucket, and the guard below keeps the
// zero-incident filter explicit either way.
func BuildTrend(incidents []schema.Incident) schema.TrendResult {
	buckets := agg.Aggregate(incidents, []schema.Dimension{schema.DimYear})

	points := make([]schema.TrendPoint, 0, len(buckets))
	for _, b := range buckets {
		if b.Incidents == 0 {
			continue
		}
		points = append(points, schema.TrendPoint{
			Year:      b.Key.Year,
			Incidents: b.Incidents,
			Deaths:    b.Deaths,
			Rate:      float64(b.Deaths) / float64(b.Incidents),
		})
	}
	return schema.TrendResult{Years: points}
}

// BuildRegressionRows re-aggregates incidents into (day type, hour
// category, borough) observations. With legacyDayType set, every row
// classifies as Weekday, matching the report this tool descends from:
// it compared the date column against weekday-name strings, which
// never match a date, so the weekend branch was unreachable.
func BuildRegressionRows(incidents []schema.Incident, legacyDayType bool) []schema.RegressionRow {
	buckets := agg.Aggregate(incidents, []schema.Dimension{schema.DimWeekday, schema.DimHourCategory, schema.DimBorough})

	type groupKey struct {
		dayType schema.DayType
		hour    schema.HourCategory
		borough string
	}
	groups := make(map[groupKey]*schema.RegressionRow)

	for _, b := range buckets {
		dayType := schema.DayTypeOf(b.Key.Weekday)
		if legacyDayType {
			dayType = schema.WeekdayType
		}
		key := groupKey{dayType: dayType, hour: b.Key.HourCategory, borough: b.Key.Borough}

		row, ok := groups[key]
		if !ok {
			row = &schema.RegressionRow{
				DayType:      key.dayType,
				HourCategory: key.hour,
				Borough:      key.borough,
			}
			groups[key] = row
		}
		// Incident keys are disjoint across weekdays (one date each),
		// so distinct counts add cleanly within a day type.
		row.Incidents += b.Incidents
		row.Deaths += b.Deaths
	}

	rows := make([]schema.RegressionRow, 0, len(groups))
	for _, row := range groups {
		if row.Incidents == 0 {
			continue
		}
		row.Rate = float64(row.Deaths) / float64(row.Incidents)
		rows = append(rows, *row)
	}

	hourIdx := make(map[schema.HourCategory]int, len(schema.HourCategoryOrder))
	for i, h := range schema.HourCategoryOrder {
		hourIdx[h] = i
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].DayType != rows[j].DayType {
			return rows[i].DayType < rows[j].DayType
		}
		if hourIdx[rows[i].HourCategory] != hourIdx[rows[j].HourCategory] {
			return hourIdx[rows[i].HourCategory] < hourIdx[rows[j].HourCategory]
		}
		return rows[i].Borough < rows[j].Borough
	})
	return rows
}

// BuildRegression fits fatality rate on incident and death counts with
// an intercept and summarizes the fit per hour category.
func BuildRegression(rows []schema.RegressionRow, legacyDayType bool) (schema.RegressionResult, error) {
	if len(rows) == 0 {
		return schema.RegressionResult{}, fmt.Errorf("no observations with incidents > 0")
	}

	features := make([][]float64, len(rows))
	target := make([]float64, len(rows))
	for i, row := range rows {
		features[i] = []float64{float64(row.Incidents), float64(row.Deaths)}
		target[i] = row.Rate
	}

	fit, err := algo.FitOLS(features, target)
	if err != nil {
		return schema.RegressionResult{}, fmt.Errorf("fit fatality-rate model: %w", err)
	}

	termNames := []string{"Intercept", "Incidents", "Deaths"}
	terms := make([]schema.RegressionTerm, len(termNames))
	for j, name := range termNames {
		terms[j] = schema.RegressionTerm{
			Name:        name,
			Coefficient: fit.Coefficients[j],
			StdErr:      fit.StdErrs[j],
			TValue:      fit.TValues[j],
			PValue:      fit.PValues[j],
		}
	}

	residuals := schema.ResidualSummary{Min: fit.Residuals[0], Max: fit.Residuals[0]}
	sum := 0.0
	for _, r := range fit.Residuals {
		residuals.Min = math.Min(residuals.Min, r)
		residuals.Max = math.Max(residuals.Max, r)
		sum += r
	}
	residuals.Mean = sum / float64(len(fit.Residuals))

	return schema.RegressionResult{
		LegacyDayType:  legacyDayType,
		Observations:   len(rows),
		Terms:          terms,
		RSquared:       fit.RSquared,
		Residuals:      residuals,
		HourComparison: buildHourComparison(rows, fit.Fitted),
		Rows:           rows,
	}, nil
}

// buildHourComparison averages actual and predicted rates per hour
// category, in fixed axis order, skipping categories with no rows.
func buildHourComparison(rows []schema.RegressionRow, fitted []float64) []schema.HourComparison {
	type sums struct {
		actual    float64
		predicted float64
		n         int
	}
	byHour := make(map[schema.HourCategory]*sums)
	for i, row := range rows {
		s, ok := byHour[row.HourCategory]
		if !ok {
			s = &sums{}
			byHour[row.HourCategory] = s
		}
		s.actual += row.Rate
		s.predicted += fitted[i]
		s.n++
	}

	comparison := make([]schema.HourComparison, 0, len(byHour))
	for _, hour := range schema.HourCategoryOrder {
		s, ok := byHour[hour]
		if !ok {
			continue
		}
		comparison = append(comparison, schema.HourComparison{
			HourCategory:  hour,
			ActualRate:    s.actual / float64(s.n),
			PredictedRate: s.predicted / float64(s.n),
		})
	}
	return comparison
}
