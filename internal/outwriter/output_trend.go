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

// WriteTrendResults outputs the yearly series, dispatching based on the
// output format configured.
func WriteTrendResults(result schema.TrendResult, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTrendCSV(w, result, cfg)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeTrendTable(w, result, cfg)
		}, "Wrote table")
	}
}

// writeTrendTable generates and writes the human-readable table.
func writeTrendTable(w io.Writer, result schema.TrendResult, cfg *contract.Config) error {
	_, fmtRate := createFormatters(cfg.Precision)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Year", "Incidents", "Deaths", "Fatality Rate", "Label"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, point := range result.Years {
		data = append(data, []string{
			strconv.Itoa(point.Year),
			strconv.Itoa(point.Incidents),
			strconv.Itoa(point.Deaths),
			fmtRate(point.Rate),
			rateLabel(point.Rate, cfg.UseColors),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(w, "Showing %d years with at least one incident\n", len(result.Years))
	return err
}

// writeTrendCSV writes the yearly series in CSV format.
func writeTrendCSV(w io.Writer, result schema.TrendResult, cfg *contract.Config) error {
	_, fmtRate := createFormatters(cfg.Precision)
	header := []string{"year", "incidents", "deaths", "rate", "label"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, point := range result.Years {
			rec := []string{
				strconv.Itoa(point.Year),
				strconv.Itoa(point.Incidents),
				strconv.Itoa(point.Deaths),
				fmtRate(point.Rate),
				contract.GetPlainLabel(point.Rate),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
