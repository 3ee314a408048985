package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/angela-xuanye/MSDS-Colorado/internal/contract"
	"github.com/angela-xuanye/MSDS-Colorado/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// localConfig writes the shared CSV fixture to a temp file and returns
// a config pointed at it.
func localConfig(t *testing.T) *contract.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sample.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))
	return &contract.Config{
		InputFile:   path,
		RankBy:      schema.RankByDay,
		Metric:      schema.IncidentsMetric,
		ResultLimit: contract.DefaultResultLimit,
	}
}

func TestLoadIncidents(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	incidents, summary, err := LoadIncidents(ctx, localConfig(t), nil)
	require.NoError(t, err)

	// Three raw rows, one of which duplicates an incident key. Cleaning
	// keeps all three; dedup happens at aggregation time.
	assert.Equal(t, 3, summary.RowsRead)
	assert.Zero(t, summary.Malformed)
	assert.Len(t, incidents, 3)
	assert.False(t, summary.FromCache)
}

func TestGetRankResults(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	result, summary, err := GetRankResults(ctx, localConfig(t), nil)
	require.NoError(t, err)

	assert.Equal(t, 3, summary.Incidents)
	require.Len(t, result.Rows, 1) // both incidents fall on the same Thursday
	assert.Equal(t, "Thursday", result.Rows[0].Label)
	assert.Equal(t, 2, result.Rows[0].Count)
}

func TestGetReportResults(t *testing.T) {
	cfg := localConfig(t)
	ctx := WithSuppressHeader(context.Background())

	// Two observation groups cannot support the three-term model.
	_, _, err := GetReportResults(ctx, cfg, nil)
	assert.Error(t, err)
}

func TestGetHeatmapResults(t *testing.T) {
	ctx := WithSuppressHeader(context.Background())
	result, _, err := GetHeatmapResults(ctx, localConfig(t), nil)
	require.NoError(t, err)

	assert.Equal(t, 2, result.GrandTotal)
	// 01/01/2015 is a Thursday, row index 4.
	assert.Equal(t, 1, result.Cells[4][0].Incidents) // Late Night
	assert.Equal(t, 1, result.Cells[4][5].Incidents) // Evening
}
