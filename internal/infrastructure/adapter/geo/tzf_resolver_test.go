package geo

import (
	"testing"

	errs "github.com/amirhossein-jamali/transaction-manager/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	resolver, err := NewResolver()
	require.NoError(t, err)

	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		expected  string
	}{
		{name: "New York", latitude: 40.7128, longitude: -74.0060, expected: "America/New_York"},
		{name: "London", latitude: 51.5074, longitude: -0.1278, expected: "Europe/London"},
		{name: "Tehran", latitude: 35.6892, longitude: 51.3890, expected: "Asia/Tehran"},
		{name: "Tokyo", latitude: 35.6762, longitude: 139.6503, expected: "Asia/Tokyo"},
		{name: "Mid-Atlantic falls back to nautical zone", latitude: 0, longitude: -30, expected: "Etc/GMT+2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			zone, err := resolver.Resolve(tt.latitude, tt.longitude)

			require.NoError(t, err)
			assert.Equal(t, tt.expected, zone)
		})
	}
}

func TestResolveRejectsOutOfRangeCoordinates(t *testing.T) {
	resolver, err := NewResolver()
	require.NoError(t, err)

	tests := []struct {
		name      string
		latitude  float64
		longitude float64
	}{
		{name: "Latitude above range", latitude: 90.1, longitude: 0},
		{name: "Latitude below range", latitude: -90.1, longitude: 0},
		{name: "Longitude above range", latitude: 0, longitude: 180.1},
		{name: "Longitude below range", latitude: 0, longitude: -180.1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := resolver.Resolve(tt.latitude, tt.longitude)
			assert.ErrorIs(t, err, errs.ErrGeoResolution)
		})
	}
}

func TestIsValidIANA(t *testing.T) {
	resolver, err := NewResolver()
	require.NoError(t, err)

	tests := []struct {
		name     string
		timezone string
		expected bool
	}{
		{name: "Canonical zone", timezone: "America/New_York", expected: true},
		{name: "Nautical zone", timezone: "Etc/GMT+2", expected: true},
		{name: "Made up zone", timezone: "Mars/Olympus", expected: false},
		{name: "Empty string", timezone: "", expected: false},
		{name: "Lowercase spelling", timezone: "america/new_york", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, resolver.IsValidIANA(tt.timezone))
		})
	}
}
