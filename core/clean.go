package core

import (
	"fmt"
	"strings"
	"time"

	"github.com/angela-xuanye/MSDS-Colorado/schema"
)

// Source formats for the occur date and time columns.
const (
	occurDateFormat = "01/02/2006"
	occurTimeFormat = "15:04:05"
)

// CleanRecords parses raw records into enriched incidents. Rows whose
// date or time fail to parse are skipped and counted; under strict
// mode the first malformed row aborts the run. The int return is the
// number of rows skipped.
func CleanRecords(records []schema.RawIncidentRecord, strict bool) ([]schema.Incident, int, error) {
	incidents := make([]schema.Incident, 0, len(records))
	malformed := 0

	for i, rec := range records {
		inc, err := cleanOne(rec)
		if err != nil {
			if strict {
				return nil, malformed + 1, fmt.Errorf("row %d (incident %s): %w", i+1, rec.IncidentKey, err)
			}
			malformed++
			continue
		}
		incidents = append(incidents, inc)
	}
	return incidents, malformed, nil
}

// cleanOne projects and enriches a single record.
func cleanOne(rec schema.RawIncidentRecord) (schema.Incident, error) {
	if rec.IncidentKey == "" {
		return schema.Incident{}, fmt.Errorf("empty incident key")
	}

	occurDate, err := time.Parse(occurDateFormat, rec.OccurDateText)
	if err != nil {
		return schema.Incident{}, fmt.Errorf("parse occur date %q: %w", rec.OccurDateText, err)
	}

	occurTime, err := time.Parse(occurTimeFormat, rec.OccurTimeText)
	if err != nil {
		return schema.Incident{}, fmt.Errorf("parse occur time %q: %w", rec.OccurTimeText, err)
	}

	// Datetime shares the date component with the date field, always.
	occurDateTime := time.Date(
		occurDate.Year(), occurDate.Month(), occurDate.Day(),
		occurTime.Hour(), occurTime.Minute(), occurTime.Second(),
		0, time.UTC,
	)

	return schema.Incident{
		IncidentKey:   rec.IncidentKey,
		OccurDate:     occurDate,
		OccurTime:     occurTime.Format(occurTimeFormat),
		OccurDateTime: occurDateTime,
		OccurYear:     occurDate.Year(),
		Weekday:       occurDate.Weekday().String(),
		HourCategory:  schema.HourCategoryOf(occurTime.Hour()),
		Fatal:         strings.EqualFold(rec.MurderFlag, "true"),
		Borough:       rec.Borough,
		LocationDesc:  rec.LocationDesc,
		PerpAgeGroup:  rec.PerpAgeGroup,
		PerpSex:       rec.PerpSex,
		PerpRace:      rec.PerpRace,
		VicAgeGroup:   rec.VicAgeGroup,
		VicSex:        rec.VicSex,
		VicRace:       rec.VicRace,
	}, nil
}
