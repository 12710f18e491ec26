// Package timeutil holds the pure date/time conversions the rest of the
// domain builds on: interpreting civil wall-clock values in a named IANA
// zone, converting absolute instants back to zone-local time, and calendar
// arithmetic for partial-date validation.
//
// DST edges follow the standard library's in-zone construction rules:
// ambiguous wall times during a fold resolve to the earlier occurrence and
// nonexistent wall times during a spring-forward gap normalize forward.
package timeutil

import (
	"fmt"
	"time"

	errs "github.com/amirhossein-jamali/transaction-manager/internal/domain/error"
)

// ToUTC interprets the wall-clock fields of local as civil time in the given
// IANA zone and returns the equivalent absolute instant in UTC. The location
// attached to local is ignored; only its calendar fields matter.
func ToUTC(local time.Time, timezoneID string) (time.Time, error) {
	loc, err := loadZone(timezoneID)
	if err != nil {
		return time.Time{}, err
	}
	year, month, day := local.Date()
	hour, minute, second := local.Clock()
	candidate := time.Date(year, month, day, hour, minute, second, local.Nanosecond(), loc)

	// For a wall time inside a spring-forward gap, time.Date lands before
	// the transition with adjusted wall fields. Shift by the wall-clock
	// shortfall so nonexistent times normalize forward instead.
	if diff := wallClock(local).Sub(wallClock(candidate)); diff != 0 {
		candidate = candidate.Add(diff)
	}
	return candidate.UTC(), nil
}

// wallClock rebuilds a time's calendar fields in UTC so two wall-clock
// readings can be compared independently of their zones.
func wallClock(t time.Time) time.Time {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	return time.Date(year, month, day, hour, minute, second, t.Nanosecond(), time.UTC)
}

// ToLocal converts a UTC instant into civil local time in the given IANA zone.
func ToLocal(utc time.Time, timezoneID string) (time.Time, error) {
	loc, err := loadZone(timezoneID)
	if err != nil {
		return time.Time{}, err
	}
	return utc.In(loc), nil
}

// DaysInMonth returns the number of days in the given month of the given year.
func DaysInMonth(year, month int) int {
	// Day zero of the next month is the last day of this one.
	return time.Date(year, time.Month(month+1), 0, 0, 0, 0, 0, time.UTC).Day()
}

func loadZone(timezoneID string) (*time.Location, error) {
	if timezoneID == "" || timezoneID == "Local" {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidTimezone, timezoneID)
	}
	loc, err := time.LoadLocation(timezoneID)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", errs.ErrInvalidTimezone, timezoneID)
	}
	return loc, nil
}
