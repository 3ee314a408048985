package schema

// Custom string types for type safety.
type (
	// HourCategory represents one of the six hour-of-day buckets.
	HourCategory string

	// DayType represents the weekday/weekend classification.
	DayType string

	// RankDimension represents the axis a ranking is grouped by.
	RankDimension string

	// Metric represents the quantity a ranking or heatmap reports.
	Metric string

	// OutputMode represents the format of the output.
	OutputMode string

	// DatabaseBackend represents the database backend for caching.
	DatabaseBackend string
)

// All hour categories. Hour 0 folds into Evening together with 21-23;
// the remaining buckets cover four hours each starting at 1.
const (
	LateNightHours    HourCategory = "Late Night"    // 1-4
	EarlyMorningHours HourCategory = "Early Morning" // 5-8
	MorningHours      HourCategory = "Morning"       // 9-12
	AfternoonHours    HourCategory = "Afternoon"     // 13-16
	EarlyNightHours   HourCategory = "Early Night"   // 17-20
	EveningHours      HourCategory = "Evening"       // 21-23 and 0
)

// Day types used by the regression grouping.
const (
	WeekdayType DayType = "Weekday"
	WeekendType DayType = "Weekend"
)

// All ranking dimensions supported.
const (
	RankByDay  RankDimension = "day" // default
	RankByHour RankDimension = "hour"
)

// All metrics supported.
const (
	IncidentsMetric Metric = "incidents" // default
	DeathsMetric    Metric = "deaths"
	RateMetric      Metric = "rate" // heatmap only
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All cache backends supported.
const (
	SQLiteBackend     DatabaseBackend = "sqlite" // default
	MySQLBackend      DatabaseBackend = "mysql"
	PostgreSQLBackend DatabaseBackend = "postgresql"
	NoneBackend       DatabaseBackend = "none"
)

// HourCategoryOrder is the fixed column order for heatmap matrices and
// ranking tie-breaks.
var HourCategoryOrder = []HourCategory{
	LateNightHours,
	EarlyMorningHours,
	MorningHours,
	AfternoonHours,
	EarlyNightHours,
	EveningHours,
}

// WeekdayOrder is the fixed row order for heatmap matrices and ranking
// tie-breaks.
var WeekdayOrder = []string{
	"Sunday",
	"Monday",
	"Tuesday",
	"Wednesday",
	"Thursday",
	"Friday",
	"Saturday",
}

// ValidRankDimensions lists all valid ranking dimensions.
var ValidRankDimensions = map[RankDimension]struct{}{
	RankByDay:  {},
	RankByHour: {},
}

// ValidMetrics lists all valid ranking metrics. RateMetric is accepted
// only by the heatmap command and validated there.
var ValidMetrics = map[Metric]struct{}{
	IncidentsMetric: {},
	DeathsMetric:    {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidCacheBackends lists all valid cache backends.
var ValidCacheBackends = map[DatabaseBackend]struct{}{
	SQLiteBackend:     {},
	MySQLBackend:      {},
	PostgreSQLBackend: {},
	NoneBackend:       {},
}

// HourCategoryOf buckets an hour of day (0-23) into its category.
// Total by construction: anything outside the four-hour bands,
// including hour 0, is Evening.
func HourCategoryOf(hour int) HourCategory {
	switch {
	case hour >= 1 && hour <= 4:
		return LateNightHours
	case hour >= 5 && hour <= 8:
		return EarlyMorningHours
	case hour >= 9 && hour <= 12:
		return MorningHours
	case hour >= 13 && hour <= 16:
		return AfternoonHours
	case hour >= 17 && hour <= 20:
		return EarlyNightHours
	default:
		return EveningHours
	}
}

// DayTypeOf classifies a weekday name as Weekend or Weekday.
func DayTypeOf(weekday string) DayType {
	if weekday == "Saturday" || weekday == "Sunday" {
		return WeekendType
	}
	return WeekdayType
}
