package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestHourCategoryOf tests the hour bucketing against the fixed table.
func TestHourCategoryOf(t *testing.T) {
	tests := []struct {
		name     string
		hours    []int
		expected HourCategory
	}{
		{name: "late night", hours: []int{1, 2, 3, 4}, expected: LateNightHours},
		{name: "early morning", hours: []int{5, 6, 7, 8}, expected: EarlyMorningHours},
		{name: "morning", hours: []int{9, 10, 11, 12}, expected: MorningHours},
		{name: "afternoon", hours: []int{13, 14, 15, 16}, expected: AfternoonHours},
		{name: "early night", hours: []int{17, 18, 19, 20}, expected: EarlyNightHours},
		{name: "evening including midnight", hours: []int{21, 22, 23, 0}, expected: EveningHours},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, hour := range tt.hours {
				assert.Equal(t, tt.expected, HourCategoryOf(hour), "hour %d", hour)
			}
		})
	}
}

// TestHourCategoryOfTotal verifies that every hour of the day maps to
// one of the six labels.
func TestHourCategoryOfTotal(t *testing.T) {
	valid := make(map[HourCategory]struct{}, len(HourCategoryOrder))
	for _, h := range HourCategoryOrder {
		valid[h] = struct{}{}
	}
	for hour := range 24 {
		_, ok := valid[HourCategoryOf(hour)]
		assert.True(t, ok, "hour %d must map to a known category", hour)
	}
}

// TestDayTypeOf tests the weekend/weekday classification.
func TestDayTypeOf(t *testing.T) {
	tests := []struct {
		weekday  string
		expected DayType
	}{
		{weekday: "Saturday", expected: WeekendType},
		{weekday: "Sunday", expected: WeekendType},
		{weekday: "Monday", expected: WeekdayType},
		{weekday: "Friday", expected: WeekdayType},
	}

	for _, tt := range tests {
		t.Run(tt.weekday, func(t *testing.T) {
			assert.Equal(t, tt.expected, DayTypeOf(tt.weekday))
		})
	}
}
