// Package agg provides distinct-count aggregation over cleaned incidents.
package agg

import (
	"sort"

	"github.com/angela-xuanye/MSDS-Colorado/schema"
)

// accumulator tracks distinct incident keys per bucket. The source
// extract can repeat an incident key (one row per victim), so counting
// rows would overstate incidents; sets make the count idempotent.
type accumulator struct {
	seen      map[string]struct{}
	fatalSeen map[string]struct{}
}

// keyFor projects an incident onto the requested dimension subset.
// Unused key fields stay zero-valued so any subset groups correctly.
func keyFor(inc *schema.Incident, dims []schema.Dimension) schema.BucketKey {
	var key schema.BucketKey
	for _, dim := range dims {
		switch dim {
		case schema.DimYear:
			key.Year = inc.OccurYear
		case schema.DimWeekday:
			key.Weekday = inc.Weekday
		case schema.DimHourCategory:
			key.HourCategory = inc.HourCategory
		case schema.DimDate:
			key.Date = inc.OccurDate
		case schema.DimTime:
			key.Time = inc.OccurTime
		case schema.DimFatal:
			key.Fatal = inc.Fatal
		case schema.DimBorough:
			key.Borough = inc.Borough
		}
	}
	return key
}

// Aggregate groups incidents by the given dimension subset and counts
// distinct incident keys and distinct fatal incident keys per bucket.
// Output order is deterministic: sorted by key fields.
func Aggregate(incidents []schema.Incident, dims []schema.Dimension) []schema.Bucket {
	accs := make(map[schema.BucketKey]*accumulator)

	for i := range incidents {
		inc := &incidents[i]
		key := keyFor(inc, dims)

		acc, ok := accs[key]
		if !ok {
			acc = &accumulator{
				seen:      make(map[string]struct{}),
				fatalSeen: make(map[string]struct{}),
			}
			accs[key] = acc
		}

		acc.seen[inc.IncidentKey] = struct{}{}
		if inc.Fatal {
			acc.fatalSeen[inc.IncidentKey] = struct{}{}
		}
	}

	buckets := make([]schema.Bucket, 0, len(accs))
	for key, acc := range accs {
		buckets = append(buckets, schema.Bucket{
			Key:       key,
			Incidents: len(acc.seen),
			Deaths:    len(acc.fatalSeen),
		})
	}

	sort.Slice(buckets, func(i, j int) bool {
		return lessKey(buckets[i].Key, buckets[j].Key)
	})
	return buckets
}

// weekdayIndex returns the fixed Sunday..Saturday position, or len for
// unknown names so they sort last.
func weekdayIndex(name string) int {
	for i, d := range schema.WeekdayOrder {
		if d == name {
			return i
		}
	}
	return len(schema.WeekdayOrder)
}

// hourIndex returns the fixed Late Night..Evening position, or len for
// the zero value.
func hourIndex(cat schema.HourCategory) int {
	for i, h := range schema.HourCategoryOrder {
		if h == cat {
			return i
		}
	}
	return len(schema.HourCategoryOrder)
}

// lessKey orders bucket keys by year, date, weekday, hour category,
// time, borough, then fatal flag.
func lessKey(a, b schema.BucketKey) bool {
	if a.Year != b.Year {
		return a.Year < b.Year
	}
	if !a.Date.Equal(b.Date) {
		return a.Date.Before(b.Date)
	}
	if ai, bi := weekdayIndex(a.Weekday), weekdayIndex(b.Weekday); ai != bi {
		return ai < bi
	}
	if ai, bi := hourIndex(a.HourCategory), hourIndex(b.HourCategory); ai != bi {
		return ai < bi
	}
	if a.Time != b.Time {
		return a.Time < b.Time
	}
	if a.Borough != b.Borough {
		return a.Borough < b.Borough
	}
	return !a.Fatal && b.Fatal
}
