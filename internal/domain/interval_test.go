package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/USM-SpaceService/pkg/types"
)

func mustInterval(t *testing.T, weekday Weekday, start, end string) Interval {
	t.Helper()
	interval, err := NewInterval(weekday, types.TimeString(start), types.TimeString(end))
	require.NoError(t, err)
	return interval
}

func TestNewInterval(t *testing.T) {
	testCases := []struct {
		name      string
		start     string
		end       string
		expectErr error
	}{
		{
			name:  "valid interval",
			start: "08:00",
			end:   "10:00",
		},
		{
			name:      "start equals end",
			start:     "10:00",
			end:       "10:00",
			expectErr: ErrInvalidInterval,
		},
		{
			name:      "start after end",
			start:     "12:00",
			end:       "10:00",
			expectErr: ErrInvalidInterval,
		},
		{
			name:      "malformed start time",
			start:     "8am",
			end:       "10:00",
			expectErr: types.ErrInvalidTimeString,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewInterval(Monday, types.TimeString(tc.start), types.TimeString(tc.end))
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestOverlaps(t *testing.T) {
	testCases := []struct {
		name     string
		a        Interval
		b        Interval
		expected bool
	}{
		{
			name:     "nested interval overlaps",
			a:        mustInterval(t, Monday, "08:00", "12:00"),
			b:        mustInterval(t, Monday, "09:00", "10:00"),
			expected: true,
		},
		{
			name:     "partial overlap",
			a:        mustInterval(t, Monday, "08:00", "10:00"),
			b:        mustInterval(t, Monday, "09:00", "11:00"),
			expected: true,
		},
		{
			name:     "touching intervals do not overlap",
			a:        mustInterval(t, Monday, "08:00", "10:00"),
			b:        mustInterval(t, Monday, "10:00", "12:00"),
			expected: false,
		},
		{
			name:     "disjoint intervals",
			a:        mustInterval(t, Monday, "08:00", "09:00"),
			b:        mustInterval(t, Monday, "11:00", "12:00"),
			expected: false,
		},
		{
			name:     "same bounds different weekday",
			a:        mustInterval(t, Monday, "08:00", "10:00"),
			b:        mustInterval(t, Tuesday, "08:00", "10:00"),
			expected: false,
		},
		{
			name:     "identical intervals overlap",
			a:        mustInterval(t, Friday, "14:00", "16:00"),
			b:        mustInterval(t, Friday, "14:00", "16:00"),
			expected: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Overlaps(tc.a, tc.b))
			// Пересечение симметрично
			assert.Equal(t, tc.expected, Overlaps(tc.b, tc.a))
		})
	}
}

func TestIntervalDurationMinutes(t *testing.T) {
	interval := mustInterval(t, Wednesday, "09:30", "11:00")

	minutes, err := interval.DurationMinutes()

	require.NoError(t, err)
	assert.Equal(t, 90, minutes)
}
