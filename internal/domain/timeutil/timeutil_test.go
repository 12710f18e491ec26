package timeutil

import (
	"testing"
	"time"

	errs "github.com/amirhossein-jamali/transaction-manager/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToUTC(t *testing.T) {
	tests := []struct {
		name     string
		local    time.Time
		timezone string
		expected time.Time
	}{
		{
			name:     "New York standard time",
			local:    time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
			timezone: "America/New_York",
			expected: time.Date(2024, 1, 15, 17, 0, 0, 0, time.UTC),
		},
		{
			name:     "New York daylight time",
			local:    time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
			timezone: "America/New_York",
			expected: time.Date(2024, 6, 1, 16, 0, 0, 0, time.UTC),
		},
		{
			name:     "Half-hour offset zone",
			local:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			timezone: "Asia/Tehran",
			expected: time.Date(2023, 12, 31, 20, 30, 0, 0, time.UTC),
		},
		{
			name:     "UTC is identity",
			local:    time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
			timezone: "UTC",
			expected: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
		},
		{
			name:     "Nautical ocean zone",
			local:    time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
			timezone: "Etc/GMT+2",
			expected: time.Date(2024, 1, 15, 14, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ToUTC(tt.local, tt.timezone)

			require.NoError(t, err)
			assert.True(t, result.Equal(tt.expected), "got %v, want %v", result, tt.expected)
		})
	}
}

func TestToUTCIgnoresAttachedLocation(t *testing.T) {
	// Only the wall-clock fields matter; an attached location must not shift
	// the interpretation.
	tehran, err := time.LoadLocation("Asia/Tehran")
	require.NoError(t, err)

	inUTC := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	inTehran := time.Date(2024, 1, 15, 12, 0, 0, 0, tehran)

	fromUTC, err := ToUTC(inUTC, "America/New_York")
	require.NoError(t, err)
	fromTehran, err := ToUTC(inTehran, "America/New_York")
	require.NoError(t, err)

	assert.True(t, fromUTC.Equal(fromTehran))
}

func TestToUTCDSTEdges(t *testing.T) {
	t.Run("Nonexistent wall time normalizes forward", func(t *testing.T) {
		// 2024-03-10 02:30 does not exist in New York; clocks jump from
		// 02:00 EST to 03:00 EDT.
		result, err := ToUTC(time.Date(2024, 3, 10, 2, 30, 0, 0, time.UTC), "America/New_York")

		require.NoError(t, err)
		assert.True(t, result.Equal(time.Date(2024, 3, 10, 7, 30, 0, 0, time.UTC)), "got %v", result)
	})

	t.Run("Gap normalization in a CET zone", func(t *testing.T) {
		// 2024-03-31 02:30 does not exist in Berlin; clocks jump from
		// 02:00 CET to 03:00 CEST, so the value lands on 03:30 CEST.
		result, err := ToUTC(time.Date(2024, 3, 31, 2, 30, 0, 0, time.UTC), "Europe/Berlin")

		require.NoError(t, err)
		assert.True(t, result.Equal(time.Date(2024, 3, 31, 1, 30, 0, 0, time.UTC)), "got %v", result)
	})

	t.Run("Ambiguous wall time resolves to the earlier occurrence", func(t *testing.T) {
		// 2024-11-03 01:30 occurs twice in New York; the EDT occurrence
		// comes first.
		result, err := ToUTC(time.Date(2024, 11, 3, 1, 30, 0, 0, time.UTC), "America/New_York")

		require.NoError(t, err)
		assert.True(t, result.Equal(time.Date(2024, 11, 3, 5, 30, 0, 0, time.UTC)), "got %v", result)
	})

	t.Run("Conversion is deterministic", func(t *testing.T) {
		local := time.Date(2024, 11, 3, 1, 30, 0, 0, time.UTC)

		first, err := ToUTC(local, "America/New_York")
		require.NoError(t, err)
		second, err := ToUTC(local, "America/New_York")
		require.NoError(t, err)

		assert.True(t, first.Equal(second))
	})
}

func TestToLocal(t *testing.T) {
	t.Run("Converts instant into zone-local time", func(t *testing.T) {
		utc := time.Date(2024, 1, 15, 17, 0, 0, 0, time.UTC)

		local, err := ToLocal(utc, "America/New_York")

		require.NoError(t, err)
		assert.Equal(t, "2024-01-15 12:00:00", local.Format("2006-01-02 15:04:05"))
	})

	t.Run("Round-trips with ToUTC", func(t *testing.T) {
		wall := time.Date(2024, 5, 20, 9, 45, 0, 0, time.UTC)

		utc, err := ToUTC(wall, "Asia/Tehran")
		require.NoError(t, err)
		back, err := ToLocal(utc, "Asia/Tehran")
		require.NoError(t, err)

		assert.Equal(t, wall.Format("2006-01-02 15:04:05"), back.Format("2006-01-02 15:04:05"))
	})
}

func TestInvalidZones(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
	}{
		{name: "Empty zone", timezone: ""},
		{name: "Go-specific Local alias", timezone: "Local"},
		{name: "Made up zone", timezone: "Not/AZone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToUTC(time.Now(), tt.timezone)
			assert.ErrorIs(t, err, errs.ErrInvalidTimezone)

			_, err = ToLocal(time.Now(), tt.timezone)
			assert.ErrorIs(t, err, errs.ErrInvalidTimezone)
		})
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    int
		expected int
	}{
		{name: "January", year: 2024, month: 1, expected: 31},
		{name: "February leap year", year: 2024, month: 2, expected: 29},
		{name: "February non-leap year", year: 2023, month: 2, expected: 28},
		{name: "February century non-leap", year: 1900, month: 2, expected: 28},
		{name: "February 400-year leap", year: 2000, month: 2, expected: 29},
		{name: "April", year: 2024, month: 4, expected: 30},
		{name: "December", year: 2024, month: 12, expected: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DaysInMonth(tt.year, tt.month))
		})
	}
}
