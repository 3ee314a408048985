package core

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/angela-xuanye/MSDS-Colorado/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `INCIDENT_KEY,OCCUR_DATE,OCCUR_TIME,BORO,PRECINCT,STATISTICAL_MURDER_FLAG,LOCATION_DESC,X_COORD_CD,Y_COORD_CD,Latitude,Longitude
1001,01/01/2015,02:30:00,BRONX,40,false,STREET,100,200,40.1,-73.9
1001,01/01/2015,02:30:00,BRONX,40,false,STREET,100,200,40.1,-73.9
1002,01/01/2015,22:00:00,QUEENS,103,true,DWELLING,300,400,40.2,-73.8
`

// TestParseRecords verifies header-driven parsing and that dropped
// columns never surface.
func TestParseRecords(t *testing.T) {
	records, rows, err := ParseRecords([]byte(sampleCSV))
	require.NoError(t, err)
	assert.Equal(t, 3, rows)
	require.Len(t, records, 3)

	assert.Equal(t, "1001", records[0].IncidentKey)
	assert.Equal(t, "01/01/2015", records[0].OccurDateText)
	assert.Equal(t, "02:30:00", records[0].OccurTimeText)
	assert.Equal(t, "BRONX", records[0].Borough)
	assert.Equal(t, "STREET", records[0].LocationDesc)
	assert.Equal(t, "true", records[2].MurderFlag)
}

// TestParseRecordsColumnOrder verifies parsing is independent of the
// column order in the extract.
func TestParseRecordsColumnOrder(t *testing.T) {
	reordered := "OCCUR_TIME,BORO,INCIDENT_KEY,STATISTICAL_MURDER_FLAG,OCCUR_DATE\n" +
		"13:00:00,MANHATTAN,42,true,07/04/2019\n"

	records, rows, err := ParseRecords([]byte(reordered))
	require.NoError(t, err)
	assert.Equal(t, 1, rows)
	require.Len(t, records, 1)
	assert.Equal(t, "42", records[0].IncidentKey)
	assert.Equal(t, "07/04/2019", records[0].OccurDateText)
	assert.Equal(t, "13:00:00", records[0].OccurTimeText)
	assert.Equal(t, "MANHATTAN", records[0].Borough)
}

// TestParseRecordsMissingColumn verifies the required-header check.
func TestParseRecordsMissingColumn(t *testing.T) {
	noDate := "INCIDENT_KEY,OCCUR_TIME,BORO,STATISTICAL_MURDER_FLAG\n1,02:30:00,BRONX,false\n"
	_, _, err := ParseRecords([]byte(noDate))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "OCCUR_DATE")
}

// TestFetchDatasetLocalInput verifies that --input reads a local file
// and bypasses the cache.
func TestFetchDatasetLocalInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	cfg := &contract.Config{InputFile: path}
	data, fromCache, err := FetchDataset(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.False(t, fromCache)
	assert.Equal(t, []byte(sampleCSV), data)
}
