package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		expectErr bool
	}{
		{name: "valid time", input: "09:30"},
		{name: "midnight", input: "00:00"},
		{name: "end of day", input: "23:59"},
		{name: "missing leading zero", input: "9:30", expectErr: true},
		{name: "out of range hour", input: "24:00", expectErr: true},
		{name: "out of range minute", input: "12:60", expectErr: true},
		{name: "garbage", input: "noon", expectErr: true},
		{name: "empty", input: "", expectErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tc.input)
			if tc.expectErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.input, ts.String())
			}
		})
	}
}

func TestTimeStringComparisons(t *testing.T) {
	a := TimeString("08:00")
	b := TimeString("10:30")

	assert.True(t, a.IsBefore(b))
	assert.False(t, b.IsBefore(a))
	assert.True(t, b.IsAfter(a))
	assert.False(t, a.IsBefore(a))
}

func TestTimeStringMinutesUntil(t *testing.T) {
	start := TimeString("09:15")
	end := TimeString("11:00")

	minutes, err := start.MinutesUntil(end)

	require.NoError(t, err)
	assert.Equal(t, 105, minutes)
}

func TestTimeStringAddMinutes(t *testing.T) {
	ts := TimeString("22:30")

	later, err := ts.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, "23:30", later.String())

	_, err = ts.AddMinutes(120)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeStringScan(t *testing.T) {
	var ts TimeString

	// Postgres TIME приходит строкой с секундами
	require.NoError(t, ts.Scan("14:30:00"))
	assert.Equal(t, "14:30", ts.String())

	require.NoError(t, ts.Scan([]byte("08:05:00")))
	assert.Equal(t, "08:05", ts.String())

	require.NoError(t, ts.Scan(time.Date(2025, 10, 15, 16, 45, 0, 0, time.UTC)))
	assert.Equal(t, "16:45", ts.String())
}

func TestNewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2025, 10, 15, 7, 5, 0, 0, time.UTC))
	assert.Equal(t, "07:05", ts.String())
}
