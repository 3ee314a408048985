package outwriter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/angela-xuanye/MSDS-Colorado/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func regressionFixture(legacy bool) schema.RegressionResult {
	return schema.RegressionResult{
		LegacyDayType: legacy,
		Observations:  42,
		Terms: []schema.RegressionTerm{
			{Name: "Intercept", Coefficient: 0.21, StdErr: 0.02, TValue: 10.5, PValue: 0.0001},
			{Name: "Incidents", Coefficient: -0.0003, StdErr: 0.0001, TValue: -3.0, PValue: 0.0041},
			{Name: "Deaths", Coefficient: 0.0012, StdErr: 0.0005, TValue: 2.4, PValue: 0.0198},
		},
		RSquared:  0.6123,
		Residuals: schema.ResidualSummary{Min: -0.08, Max: 0.11, Mean: 0.0},
		HourComparison: []schema.HourComparison{
			{HourCategory: schema.LateNightHours, ActualRate: 0.24, PredictedRate: 0.22},
			{HourCategory: schema.MorningHours, ActualRate: 0.18, PredictedRate: 0.19},
		},
		Rows: []schema.RegressionRow{
			{DayType: schema.WeekdayType, HourCategory: schema.LateNightHours, Borough: "BRONX", Incidents: 100, Deaths: 24, Rate: 0.24},
			{DayType: schema.WeekendType, HourCategory: schema.MorningHours, Borough: "QUEENS", Incidents: 50, Deaths: 9, Rate: 0.18},
		},
	}
}

func TestWriteRegressionTables(t *testing.T) {
	var buf bytes.Buffer
	err := writeRegressionTables(&buf, regressionFixture(false), testConfig())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Intercept")
	assert.Contains(t, out, "0.210000")
	assert.Contains(t, out, "Observations: 42, R-squared: 0.6123 (corrected weekday/weekend split)")
	assert.Contains(t, out, "Late Night")
	assert.Contains(t, out, "High") // 0.24 actual rate label
}

func TestWriteRegressionTablesLegacyNote(t *testing.T) {
	var buf bytes.Buffer
	err := writeRegressionTables(&buf, regressionFixture(true), testConfig())
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "legacy all-Weekday split")
}

func TestWriteRegressionCSV(t *testing.T) {
	var buf bytes.Buffer
	err := writeRegressionCSV(&buf, regressionFixture(false))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "day_type,hour_category,borough,incidents,deaths,rate", lines[0])
	assert.Equal(t, "Weekday,Late Night,BRONX,100,24,0.240000", lines[1])
	assert.Equal(t, "Weekend,Morning,QUEENS,50,9,0.180000", lines[2])
}
