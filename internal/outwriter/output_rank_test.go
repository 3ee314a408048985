package outwriter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/angela-xuanye/MSDS-Colorado/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rankFixture() schema.RankResult {
	return schema.RankResult{
		Dimension: schema.RankByDay,
		Metric:    schema.IncidentsMetric,
		Rows: []schema.RankRow{
			{Label: "Saturday", Count: 120},
			{Label: "Sunday", Count: 110},
			{Label: "Friday", Count: 90},
		},
	}
}

func TestWriteRankTable(t *testing.T) {
	var buf bytes.Buffer
	err := writeRankTable(&buf, rankFixture(), testConfig())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Saturday")
	assert.Contains(t, out, "120")
	assert.Contains(t, out, "Showing 3 groups (total incidents: 320)")
}

func TestWriteRankCSV(t *testing.T) {
	var buf bytes.Buffer
	err := writeRankCSV(&buf, rankFixture())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4) // header + 3 rows
	assert.Equal(t, "rank,day,incidents", lines[0])
	assert.Equal(t, "1,Saturday,120", lines[1])
	assert.Equal(t, "3,Friday,90", lines[3])
}

func TestCapitalizedMetric(t *testing.T) {
	assert.Equal(t, "Incidents", capitalizedMetric(schema.IncidentsMetric))
	assert.Equal(t, "Deaths", capitalizedMetric(schema.DeathsMetric))
	assert.Equal(t, "Fatality Rate", capitalizedMetric(schema.RateMetric))
}
