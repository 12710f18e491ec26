package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCivilDateTimeKindDetection(t *testing.T) {
	tests := []struct {
		name         string
		value        string
		expectedKind DateTimeKind
		expectedTime time.Time
	}{
		{
			name:         "Trailing Z is UTC kind",
			value:        "2024-01-15T10:30:00Z",
			expectedKind: KindUTC,
			expectedTime: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:         "Fractional seconds with Z",
			value:        "2024-01-15T10:30:00.250Z",
			expectedKind: KindUTC,
			expectedTime: time.Date(2024, 1, 15, 10, 30, 0, 250000000, time.UTC),
		},
		{
			name:         "Explicit offset is local kind",
			value:        "2024-01-15T10:30:00+03:30",
			expectedKind: KindLocal,
		},
		{
			name:         "Negative offset is local kind",
			value:        "2024-01-15T10:30:00-05:00",
			expectedKind: KindLocal,
		},
		{
			name:         "Bare date-time is unspecified kind",
			value:        "2024-01-15T10:30:00",
			expectedKind: KindUnspecified,
			expectedTime: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:         "Space separator is unspecified kind",
			value:        "2024-01-15 10:30:00",
			expectedKind: KindUnspecified,
			expectedTime: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:         "Minute precision is unspecified kind",
			value:        "2024-01-15T10:30",
			expectedKind: KindUnspecified,
			expectedTime: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			name:         "Date only is unspecified kind",
			value:        "2024-01-15",
			expectedKind: KindUnspecified,
			expectedTime: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseCivilDateTime(tt.value)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedKind, parsed.Kind)
			if !tt.expectedTime.IsZero() {
				assert.True(t, parsed.Time.Equal(tt.expectedTime), "got %v, want %v", parsed.Time, tt.expectedTime)
			}
		})
	}
}

func TestParseCivilDateTimeRejectsGarbage(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{name: "Empty string", value: ""},
		{name: "Whitespace only", value: "   "},
		{name: "Not a date", value: "yesterday"},
		{name: "Wrong field order", value: "15-01-2024"},
		{name: "Z with broken time", value: "2024-13-45T99:99:99Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCivilDateTime(tt.value)
			assert.Error(t, err)
		})
	}
}

func TestCivilDateTimeJSONRoundTrip(t *testing.T) {
	t.Run("Unmarshal detects kind", func(t *testing.T) {
		var d CivilDateTime
		err := json.Unmarshal([]byte(`"2024-01-15T10:30:00Z"`), &d)

		require.NoError(t, err)
		assert.Equal(t, KindUTC, d.Kind)
	})

	t.Run("Unmarshal empty string yields zero value", func(t *testing.T) {
		var d CivilDateTime
		err := json.Unmarshal([]byte(`""`), &d)

		require.NoError(t, err)
		assert.True(t, d.IsZero())
	})

	t.Run("Unmarshal rejects malformed value", func(t *testing.T) {
		var d CivilDateTime
		err := json.Unmarshal([]byte(`"not-a-date"`), &d)

		assert.Error(t, err)
	})

	t.Run("Marshal keeps the Z suffix for UTC kind", func(t *testing.T) {
		d := CivilDateTime{Time: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), Kind: KindUTC}
		data, err := json.Marshal(d)

		require.NoError(t, err)
		assert.Equal(t, `"2024-01-15T10:30:00Z"`, string(data))
	})

	t.Run("Marshal keeps unspecified kind bare", func(t *testing.T) {
		d := CivilDateTime{Time: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC), Kind: KindUnspecified}
		data, err := json.Marshal(d)

		require.NoError(t, err)
		assert.Equal(t, `"2024-01-15T10:30:00"`, string(data))
	})
}
