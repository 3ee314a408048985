// Package parquet exports the enriched base series to Parquet files
// using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/angela-xuanye/MSDS-Colorado/schema"
	"github.com/parquet-go/parquet-go"
)

// BaseSeriesRow is one bucket of the full enrichment key tuple, flattened
// for columnar storage. The schema is inferred from the struct tags.
type BaseSeriesRow struct {
	// OccurYear is the calendar year of the incidents in this bucket
	OccurYear int32 `parquet:"occur_year,snappy"`

	// Weekday is the day-of-week name (Sunday..Saturday)
	Weekday string `parquet:"weekday,snappy"`

	// HourCategory is the six-bucket hour-of-day label
	HourCategory string `parquet:"hour_category,snappy"`

	// OccurDate is the incident date (stored as TIMESTAMP with nanosecond precision)
	OccurDate time.Time `parquet:"occur_date,snappy"`

	// OccurTime is the reported time of day, HH:MM:SS
	OccurTime string `parquet:"occur_time,snappy"`

	// Fatal marks buckets of incidents flagged as statistical murders
	Fatal bool `parquet:"fatal,snappy"`

	// Incidents is the distinct incident count for this bucket
	Incidents int32 `parquet:"incidents,snappy"`

	// Deaths is the distinct fatal incident count for this bucket
	Deaths int32 `parquet:"deaths,snappy"`
}

// ConvertBaseSeries converts aggregation buckets to BaseSeriesRow for
// Parquet export.
func ConvertBaseSeries(buckets []schema.Bucket) []BaseSeriesRow {
	result := make([]BaseSeriesRow, len(buckets))
	for i, b := range buckets {
		result[i] = BaseSeriesRow{
			OccurYear:    int32(b.Key.Year),
			Weekday:      b.Key.Weekday,
			HourCategory: string(b.Key.HourCategory),
			OccurDate:    b.Key.Date,
			OccurTime:    b.Key.Time,
			Fatal:        b.Key.Fatal,
			Incidents:    int32(b.Incidents),
			Deaths:       int32(b.Deaths),
		}
	}
	return result
}

// WriteBaseSeriesParquet writes the base series to a Parquet file.
func WriteBaseSeriesParquet(data []BaseSeriesRow, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the BaseSeriesRow struct tags
	writer := parquet.NewGenericWriter[BaseSeriesRow](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	// The Write method accepts a variadic slice
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}
