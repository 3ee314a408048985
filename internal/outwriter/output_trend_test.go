package outwriter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/angela-xuanye/MSDS-Colorado/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func trendFixture() schema.TrendResult {
	return schema.TrendResult{
		Years: []schema.TrendPoint{
			{Year: 2019, Incidents: 967, Deaths: 190, Rate: 0.196},
			{Year: 2020, Incidents: 1948, Deaths: 372, Rate: 0.191},
		},
	}
}

func TestWriteTrendTable(t *testing.T) {
	var buf bytes.Buffer
	err := writeTrendTable(&buf, trendFixture(), testConfig())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "2019")
	assert.Contains(t, out, "967")
	assert.Contains(t, out, "Moderate")
	assert.Contains(t, out, "Showing 2 years with at least one incident")
}

func TestWriteTrendCSV(t *testing.T) {
	var buf bytes.Buffer
	err := writeTrendCSV(&buf, trendFixture(), testConfig())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "year,incidents,deaths,rate,label", lines[0])
	assert.Equal(t, "2019,967,190,0.196,Moderate", lines[1])
	assert.Equal(t, "2020,1948,372,0.191,Moderate", lines[2])
}
