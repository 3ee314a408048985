package agg

import (
	"testing"
	"time"

	"github.com/angela-xuanye/MSDS-Colorado/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeIncident builds a minimal enriched incident for aggregation tests.
func makeIncident(key string, date time.Time, hour int, fatal bool, borough string) schema.Incident {
	return schema.Incident{
		IncidentKey:  key,
		OccurDate:    date,
		OccurTime:    time.Date(0, 1, 1, hour, 0, 0, 0, time.UTC).Format("15:04:05"),
		OccurYear:    date.Year(),
		Weekday:      date.Weekday().String(),
		HourCategory: schema.HourCategoryOf(hour),
		Fatal:        fatal,
		Borough:      borough,
	}
}

// TestAggregateDistinctCounts verifies that duplicate rows sharing an
// incident key do not inflate the counts.
func TestAggregateDistinctCounts(t *testing.T) {
	date := time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC)
	incidents := []schema.Incident{
		makeIncident("A", date, 2, true, "BRONX"),
		makeIncident("A", date, 2, true, "BRONX"), // duplicate victim row
		makeIncident("A", date, 2, true, "BRONX"),
		makeIncident("B", date, 2, false, "BRONX"),
	}

	buckets := Aggregate(incidents, []schema.Dimension{schema.DimDate, schema.DimHourCategory})
	require.Len(t, buckets, 1)
	assert.Equal(t, 2, buckets[0].Incidents)
	assert.Equal(t, 1, buckets[0].Deaths)
}

// TestAggregateDeathsBounded verifies deaths never exceed incidents.
func TestAggregateDeathsBounded(t *testing.T) {
	date := time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC)
	incidents := []schema.Incident{
		makeIncident("A", date, 22, true, "QUEENS"),
		makeIncident("B", date, 22, true, "QUEENS"),
		makeIncident("C", date, 22, false, "QUEENS"),
		makeIncident("D", date.AddDate(0, 0, 1), 3, false, "BROOKLYN"),
	}

	for _, dims := range [][]schema.Dimension{
		{schema.DimYear},
		{schema.DimWeekday, schema.DimHourCategory},
		{schema.DimBorough},
		{schema.DimDate, schema.DimTime, schema.DimFatal},
	} {
		for _, b := range Aggregate(incidents, dims) {
			assert.LessOrEqual(t, b.Deaths, b.Incidents)
		}
	}
}

// TestAggregateDimensionSubsets verifies that unused key fields stay
// zero-valued and grouping respects the requested subset only.
func TestAggregateDimensionSubsets(t *testing.T) {
	monday := time.Date(2019, 7, 1, 0, 0, 0, 0, time.UTC) // a Monday
	tuesday := monday.AddDate(0, 0, 1)
	incidents := []schema.Incident{
		makeIncident("A", monday, 14, false, "BRONX"),
		makeIncident("B", tuesday, 14, true, "QUEENS"),
	}

	buckets := Aggregate(incidents, []schema.Dimension{schema.DimHourCategory})
	require.Len(t, buckets, 1)
	assert.Equal(t, schema.AfternoonHours, buckets[0].Key.HourCategory)
	assert.Empty(t, buckets[0].Key.Weekday)
	assert.Empty(t, buckets[0].Key.Borough)
	assert.Zero(t, buckets[0].Key.Year)
	assert.Equal(t, 2, buckets[0].Incidents)
	assert.Equal(t, 1, buckets[0].Deaths)
}

// TestAggregateDeterministicOrder verifies the sorted output order.
func TestAggregateDeterministicOrder(t *testing.T) {
	date := time.Date(2018, 3, 4, 0, 0, 0, 0, time.UTC) // a Sunday
	incidents := []schema.Incident{
		makeIncident("C", date.AddDate(0, 0, 5), 10, false, "BRONX"), // Friday
		makeIncident("A", date, 10, false, "BRONX"),                  // Sunday
		makeIncident("B", date.AddDate(0, 0, 2), 10, false, "BRONX"), // Tuesday
	}

	buckets := Aggregate(incidents, []schema.Dimension{schema.DimWeekday})
	require.Len(t, buckets, 3)
	assert.Equal(t, "Sunday", buckets[0].Key.Weekday)
	assert.Equal(t, "Tuesday", buckets[1].Key.Weekday)
	assert.Equal(t, "Friday", buckets[2].Key.Weekday)
}
