package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/USM-SpaceService/pkg/types"
)

func TestClassifyOccupancy(t *testing.T) {
	testCases := []struct {
		name       string
		percentage float64
		expected   OccupancyClass
	}{
		{
			name:       "above threshold is over occupied",
			percentage: 86,
			expected:   OccupancyOverOccupied,
		},
		{
			name:       "exactly 85 is normal",
			percentage: 85,
			expected:   OccupancyNormal,
		},
		{
			name:       "exactly 50 is normal",
			percentage: 50,
			expected:   OccupancyNormal,
		},
		{
			name:       "below threshold is under utilized",
			percentage: 49,
			expected:   OccupancyUnderUtilized,
		},
		{
			name:       "zero is under utilized",
			percentage: 0,
			expected:   OccupancyUnderUtilized,
		},
		{
			name:       "full load is over occupied",
			percentage: 100,
			expected:   OccupancyOverOccupied,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ClassifyOccupancy(tc.percentage))
		})
	}
}

func TestDayPartFor(t *testing.T) {
	testCases := []struct {
		name     string
		start    string
		expected DayPart
	}{
		{name: "early morning", start: "08:00", expected: DayPartMorning},
		{name: "just before noon", start: "11:59", expected: DayPartMorning},
		{name: "noon is afternoon", start: "12:00", expected: DayPartAfternoon},
		{name: "late afternoon", start: "17:59", expected: DayPartAfternoon},
		{name: "evening boundary", start: "18:00", expected: DayPartEvening},
		{name: "late evening", start: "21:00", expected: DayPartEvening},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, DayPartFor(types.TimeString(tc.start)))
		})
	}
}

func TestParseWeekday(t *testing.T) {
	weekday, err := ParseWeekday("monday")
	assert.NoError(t, err)
	assert.Equal(t, Monday, weekday)

	_, err = ParseWeekday("funday")
	assert.Error(t, err)
}

func TestIsTeachingDay(t *testing.T) {
	assert.True(t, Monday.IsTeachingDay())
	assert.True(t, Saturday.IsTeachingDay())
	assert.False(t, Sunday.IsTeachingDay())
}
