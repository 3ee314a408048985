package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/angela-xuanye/MSDS-Colorado/internal/contract"
	"github.com/angela-xuanye/MSDS-Colorado/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteHeatmapResults outputs the day x hour matrix, dispatching based
// on the output format configured.
func WriteHeatmapResults(result schema.HeatmapResult, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHeatmapCSV(w, result, cfg)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeHeatmapTable(w, result, cfg)
		}, "Wrote table")
	}
}

// heatmapCellText formats one matrix cell for the text table. Narrow
// terminals drop the share suffix so rows stay on one line.
func heatmapCellText(cell schema.HeatmapCell, metric schema.Metric, compact bool, cfg *contract.Config, fmtRate func(float64) string) string {
	if metric == schema.RateMetric {
		if compact {
			return fmtRate(cell.Rate)
		}
		return fmt.Sprintf("%s %s", fmtRate(cell.Rate), rateLabel(cell.Rate, cfg.UseColors))
	}

	count := cell.Incidents
	if metric == schema.DeathsMetric {
		count = cell.Deaths
	}
	if compact {
		return strconv.Itoa(count)
	}
	return fmt.Sprintf("%d (%.2f%%)", count, cell.SharePct)
}

// writeHeatmapTable generates and writes the human-readable matrix.
func writeHeatmapTable(w io.Writer, result schema.HeatmapResult, cfg *contract.Config) error {
	_, fmtRate := createFormatters(cfg.Precision)
	compact := terminalWidth(cfg) < compactWidthThreshold

	table := tablewriter.NewWriter(w)
	headers := []string{"Day"}
	for _, hour := range result.Hours {
		headers = append(headers, string(hour))
	}
	table.Header(headers)
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for row, day := range result.Days {
		line := []string{day}
		for col := range result.Hours {
			line = append(line, heatmapCellText(result.Cells[row][col], result.Metric, compact, cfg, fmtRate))
		}
		data = append(data, line)
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if result.Metric != schema.RateMetric {
		if _, err := fmt.Fprintf(w, "Grand total %s: %d (cell shares sum to 100%%)\n", result.Metric, result.GrandTotal); err != nil {
			return err
		}
	}
	return nil
}

// writeHeatmapCSV writes the matrix in long format, one row per cell.
func writeHeatmapCSV(w io.Writer, result schema.HeatmapResult, cfg *contract.Config) error {
	_, fmtRate := createFormatters(cfg.Precision)
	header := []string{"day", "hour_category", "incidents", "deaths", "rate", "share_pct"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for row, day := range result.Days {
			for col, hour := range result.Hours {
				cell := result.Cells[row][col]
				rec := []string{
					day,
					string(hour),
					strconv.Itoa(cell.Incidents),
					strconv.Itoa(cell.Deaths),
					fmtRate(cell.Rate),
					fmt.Sprintf("%.2f", cell.SharePct),
				}
				if err := cw.Write(rec); err != nil {
					return err
				}
			}
		}
		return nil
	})
}
