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

// WriteRegressionResults outputs the fitted model, dispatching based on
// the output format configured.
func WriteRegressionResults(result schema.RegressionResult, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRegressionCSV(w, result)
		}, "Wrote CSV")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRegressionTables(w, result, cfg)
		}, "Wrote table")
	}
}

// writeRegressionTables writes the coefficient table, the fit summary,
// and the per-hour actual/predicted comparison.
func writeRegressionTables(w io.Writer, result schema.RegressionResult, cfg *contract.Config) error {
	_, fmtRate := createFormatters(cfg.Precision)

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Term", "Coefficient", "Std Err", "t", "p"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, term := range result.Terms {
		data = append(data, []string{
			term.Name,
			fmt.Sprintf("%.6f", term.Coefficient),
			fmt.Sprintf("%.6f", term.StdErr),
			fmt.Sprintf("%.3f", term.TValue),
			fmt.Sprintf("%.4f", term.PValue),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	dayTypeNote := "corrected weekday/weekend split"
	if result.LegacyDayType {
		dayTypeNote = "legacy all-Weekday split"
	}
	if _, err := fmt.Fprintf(w, "Observations: %d, R-squared: %.4f (%s)\n",
		result.Observations, result.RSquared, dayTypeNote); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Residuals: min %.4f, max %.4f, mean %.4f\n",
		result.Residuals.Min, result.Residuals.Max, result.Residuals.Mean); err != nil {
		return err
	}

	comparison := tablewriter.NewWriter(w)
	comparison.Header([]string{"Hour Category", "Actual Rate", "Predicted Rate", "Label"})
	comparison.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var rows [][]string
	for _, hc := range result.HourComparison {
		rows = append(rows, []string{
			string(hc.HourCategory),
			fmtRate(hc.ActualRate),
			fmtRate(hc.PredictedRate),
			rateLabel(hc.ActualRate, cfg.UseColors),
		})
	}
	if err := comparison.Bulk(rows); err != nil {
		return err
	}
	return comparison.Render()
}

// writeRegressionCSV writes the raw observation rows the model was
// fit on, one per (day type, hour category, borough) group.
func writeRegressionCSV(w io.Writer, result schema.RegressionResult) error {
	header := []string{"day_type", "hour_category", "borough", "incidents", "deaths", "rate"}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for _, row := range result.Rows {
			rec := []string{
				string(row.DayType),
				string(row.HourCategory),
				row.Borough,
				strconv.Itoa(row.Incidents),
				strconv.Itoa(row.Deaths),
				fmt.Sprintf("%.6f", row.Rate),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}
