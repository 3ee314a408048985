// Package schema defines the data model shared by all pipeline stages.
package schema

import "time"

// RawIncidentRecord is one row of the source CSV after dropping the
// location-coordinate and precinct columns. Everything is still text;
// the cleaner owns parsing.
type RawIncidentRecord struct {
	IncidentKey   string
	OccurDateText string // MM/DD/YYYY
	OccurTimeText string // HH:MM:SS
	Borough       string
	LocationDesc  string
	MurderFlag    string // boolean-like text
	PerpAgeGroup  string
	PerpSex       string
	PerpRace      string
	VicAgeGroup   string
	VicSex        string
	VicRace       string
}

// Incident is a cleaned and enriched record. OccurDateTime always
// carries the same date component as OccurDate.
type Incident struct {
	IncidentKey   string
	OccurDate     time.Time
	OccurTime     string // HH:MM:SS, as reported
	OccurDateTime time.Time
	OccurYear     int
	Weekday       string
	HourCategory  HourCategory
	Fatal         bool
	Borough       string
	LocationDesc  string
	PerpAgeGroup  string
	PerpSex       string
	PerpRace      string
	VicAgeGroup   string
	VicSex        string
	VicRace       string
}

// Dimension selects one grouping axis for aggregation.
type Dimension int

// All grouping dimensions supported by the aggregator.
const (
	DimYear Dimension = iota
	DimWeekday
	DimHourCategory
	DimDate
	DimTime
	DimFatal
	DimBorough
)

// BucketKey is a comparable grouping key. Fields for dimensions not in
// the requested set stay zero-valued, so keys group correctly for any
// dimension subset.
type BucketKey struct {
	Year         int
	Weekday      string
	HourCategory HourCategory
	Date         time.Time
	Time         string
	Fatal        bool
	Borough      string
}

// Bucket is one aggregation cell: a key plus distinct-incident counts.
// Deaths counts distinct fatal incident keys, so Deaths <= Incidents.
type Bucket struct {
	Key       BucketKey
	Incidents int
	Deaths    int
}

// LoadSummary reports what the load and clean stages saw.
type LoadSummary struct {
	Source    string `json:"source"`
	FromCache bool   `json:"from_cache"`
	RowsRead  int    `json:"rows_read"`
	Malformed int    `json:"malformed_skipped"`
	Incidents int    `json:"incidents"`
}

// RankRow is one line of a ranking table.
type RankRow struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// RankResult is a ranking of days or hour categories by a metric,
// descending, with ties kept in fixed axis order.
type RankResult struct {
	Dimension RankDimension `json:"dimension"`
	Metric    Metric        `json:"metric"`
	Rows      []RankRow     `json:"rows"`
}

// HeatmapCell is one day x hour-category cell. SharePct is the cell's
// share of the grand total, as a percentage rounded from four decimal
// places of the raw fraction.
type HeatmapCell struct {
	Incidents int     `json:"incidents"`
	Deaths    int     `json:"deaths"`
	Rate      float64 `json:"rate"`
	SharePct  float64 `json:"share_pct"`
}

// HeatmapResult is the full 7x6 matrix in fixed axis order: rows
// Sunday..Saturday, columns Late Night..Evening.
type HeatmapResult struct {
	Metric     Metric            `json:"metric"`
	Days       []string          `json:"days"`
	Hours      []HourCategory    `json:"hours"`
	Cells      [7][6]HeatmapCell `json:"cells"`
	GrandTotal int               `json:"grand_total"`
}

// TrendPoint is one year of the yearly series. Years with zero
// incidents are filtered out before this type is built.
type TrendPoint struct {
	Year      int     `json:"year"`
	Incidents int     `json:"incidents"`
	Deaths    int     `json:"deaths"`
	Rate      float64 `json:"rate"`
}

// TrendResult is the yearly incident/death series in ascending year
// order.
type TrendResult struct {
	Years []TrendPoint `json:"years"`
}

// RegressionRow is one observation for the fatality-rate model: a
// (day type, hour category, borough) group with its summed counts.
// Rows only exist where Incidents > 0.
type RegressionRow struct {
	DayType      DayType      `json:"day_type"`
	HourCategory HourCategory `json:"hour_category"`
	Borough      string       `json:"borough"`
	Incidents    int          `json:"incidents"`
	Deaths       int          `json:"deaths"`
	Rate         float64      `json:"rate"`
}

// RegressionTerm is one fitted coefficient with its inference stats.
type RegressionTerm struct {
	Name        string  `json:"name"`
	Coefficient float64 `json:"coefficient"`
	StdErr      float64 `json:"std_err"`
	TValue      float64 `json:"t_value"`
	PValue      float64 `json:"p_value"`
}

// ResidualSummary describes the fit residuals.
type ResidualSummary struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
}

// HourComparison pairs the mean actual and mean predicted fatality
// rate for one hour category.
type HourComparison struct {
	HourCategory  HourCategory `json:"hour_category"`
	ActualRate    float64      `json:"actual_rate"`
	PredictedRate float64      `json:"predicted_rate"`
}

// RegressionResult is the OLS fit of fatality rate on incident and
// death counts with an intercept.
type RegressionResult struct {
	LegacyDayType  bool             `json:"legacy_day_type"`
	Observations   int              `json:"observations"`
	Terms          []RegressionTerm `json:"terms"`
	RSquared       float64          `json:"r_squared"`
	Residuals      ResidualSummary  `json:"residuals"`
	HourComparison []HourComparison `json:"hour_comparison"`
	Rows           []RegressionRow  `json:"rows,omitempty"`
}

// CacheStatus holds status information about the download cache.
type CacheStatus struct {
	Backend    DatabaseBackend `json:"backend"`
	Location   string          `json:"location"`
	EntryCount int             `json:"entry_count"`
	TotalBytes int64           `json:"total_bytes"`
	OldestUnix int64           `json:"oldest_unix"`
	NewestUnix int64           `json:"newest_unix"`
}
