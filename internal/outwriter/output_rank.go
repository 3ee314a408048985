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

// WriteRankResults outputs a ranking, dispatching based on the output format configured.
func WriteRankResults(result schema.RankResult, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankCSV(w, result)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankTable(w, result, cfg)
		}, "Wrote table")
	}
}

// writeRankTable generates and writes the human-readable table.
func writeRankTable(w io.Writer, result schema.RankResult, cfg *contract.Config) error {
	axis := "Day"
	if result.Dimension == schema.RankByHour {
		axis = "Hour Category"
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", axis, capitalizedMetric(result.Metric)})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, row := range result.Rows {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			row.Label,
			strconv.Itoa(row.Count),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	total := 0
	for _, row := range result.Rows {
		total += row.Count
	}
	_, err := fmt.Fprintf(w, "Showing %d groups (total %s: %d)\n", len(result.Rows), result.Metric, total)
	return err
}

// writeRankCSV writes the ranking in CSV format.
func writeRankCSV(w io.Writer, result schema.RankResult) error {
	header := []string{"rank", string(result.Dimension), string(result.Metric)}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, row := range result.Rows {
			rec := []string{
				strconv.Itoa(i + 1),
				row.Label,
				strconv.Itoa(row.Count),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// capitalizedMetric maps the metric flag value to a table header.
func capitalizedMetric(metric schema.Metric) string {
	switch metric {
	case schema.DeathsMetric:
		return "Deaths"
	case schema.RateMetric:
		return "Fatality Rate"
	default:
		return "Incidents"
	}
}
