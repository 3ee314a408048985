package core

import (
	"testing"
	"time"

	"github.com/angela-xuanye/MSDS-Colorado/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCleanRecordsEnrichment verifies parsing and derived fields for a
// well-formed row.
func TestCleanRecordsEnrichment(t *testing.T) {
	records := []schema.RawIncidentRecord{
		{
			IncidentKey:   "12345",
			OccurDateText: "01/01/2015", // a Thursday
			OccurTimeText: "22:30:00",
			Borough:       "BROOKLYN",
			MurderFlag:    "TRUE",
		},
	}

	incidents, malformed, err := CleanRecords(records, false)
	require.NoError(t, err)
	assert.Zero(t, malformed)
	require.Len(t, incidents, 1)

	inc := incidents[0]
	assert.Equal(t, 2015, inc.OccurYear)
	assert.Equal(t, "Thursday", inc.Weekday)
	assert.Equal(t, schema.EveningHours, inc.HourCategory)
	assert.Equal(t, "22:30:00", inc.OccurTime)
	assert.True(t, inc.Fatal)
	assert.Equal(t, "BROOKLYN", inc.Borough)

	// Datetime must share the date component with the date field.
	y, m, d := inc.OccurDateTime.Date()
	assert.Equal(t, inc.OccurDate, time.Date(y, m, d, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 22, inc.OccurDateTime.Hour())
	assert.Equal(t, 30, inc.OccurDateTime.Minute())
}

// TestCleanRecordsMurderFlag tests the boolean-like flag parsing.
func TestCleanRecordsMurderFlag(t *testing.T) {
	tests := []struct {
		flag  string
		fatal bool
	}{
		{flag: "true", fatal: true},
		{flag: "TRUE", fatal: true},
		{flag: "True", fatal: true},
		{flag: "false", fatal: false},
		{flag: "FALSE", fatal: false},
		{flag: "", fatal: false},
	}

	for _, tt := range tests {
		t.Run("flag "+tt.flag, func(t *testing.T) {
			records := []schema.RawIncidentRecord{{
				IncidentKey:   "1",
				OccurDateText: "06/15/2020",
				OccurTimeText: "12:00:00",
				MurderFlag:    tt.flag,
			}}
			incidents, _, err := CleanRecords(records, false)
			require.NoError(t, err)
			require.Len(t, incidents, 1)
			assert.Equal(t, tt.fatal, incidents[0].Fatal)
		})
	}
}

// TestCleanRecordsMalformed verifies skip-and-count versus strict mode.
func TestCleanRecordsMalformed(t *testing.T) {
	records := []schema.RawIncidentRecord{
		{IncidentKey: "1", OccurDateText: "01/01/2015", OccurTimeText: "02:30:00"},
		{IncidentKey: "2", OccurDateText: "2015-01-01", OccurTimeText: "02:30:00"}, // wrong date format
		{IncidentKey: "3", OccurDateText: "01/01/2015", OccurTimeText: "2:30 PM"},  // wrong time format
		{IncidentKey: "", OccurDateText: "01/01/2015", OccurTimeText: "02:30:00"},  // missing key
	}

	incidents, malformed, err := CleanRecords(records, false)
	require.NoError(t, err)
	assert.Len(t, incidents, 1)
	assert.Equal(t, 3, malformed)

	_, _, err = CleanRecords(records, true)
	assert.Error(t, err)
}
