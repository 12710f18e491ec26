package entity

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"
)

// DateTimeKind tags how a caller-supplied date/time value is anchored.
type DateTimeKind int

const (
	// KindUnspecified means the value carries no offset or zone annotation.
	// Its meaning depends on a timezone supplied separately (request header
	// or the row's own stored zone).
	KindUnspecified DateTimeKind = iota
	// KindUTC means the value was written with a trailing Z and denotes an
	// absolute instant.
	KindUTC
	// KindLocal means the value carried an explicit UTC offset. Requests
	// with this kind are rejected by validation.
	KindLocal
)

// String returns a human-readable name for the kind.
func (k DateTimeKind) String() string {
	switch k {
	case KindUTC:
		return "utc"
	case KindLocal:
		return "local"
	default:
		return "unspecified"
	}
}

// CivilDateTime is a calendar date and time-of-day together with the kind
// detected while parsing it. For KindUnspecified values the wall-clock
// fields are meaningful and the location placeholder is not.
type CivilDateTime struct {
	Time time.Time
	Kind DateTimeKind
}

// IsZero reports whether the value was never set.
func (d CivilDateTime) IsZero() bool {
	return d.Time.IsZero()
}

var offsetSuffix = regexp.MustCompile(`[+-]\d{2}:?\d{2}$`)

// Layouts accepted for values without any zone annotation.
var civilLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseCivilDateTime parses a date/time string and detects its kind: a
// trailing Z yields KindUTC, an explicit offset yields KindLocal and a bare
// calendar value yields KindUnspecified.
func ParseCivilDateTime(value string) (CivilDateTime, error) {
	s := strings.TrimSpace(value)
	if s == "" {
		return CivilDateTime{}, fmt.Errorf("empty date/time value")
	}

	if strings.HasSuffix(s, "Z") {
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return CivilDateTime{}, fmt.Errorf("invalid UTC date/time %q", value)
		}
		return CivilDateTime{Time: t.UTC(), Kind: KindUTC}, nil
	}

	if offsetSuffix.MatchString(s) {
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return CivilDateTime{}, fmt.Errorf("invalid offset date/time %q", value)
		}
		return CivilDateTime{Time: t, Kind: KindLocal}, nil
	}

	for _, layout := range civilLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return CivilDateTime{Time: t, Kind: KindUnspecified}, nil
		}
	}
	return CivilDateTime{}, fmt.Errorf("unrecognized date/time %q", value)
}

// UnmarshalJSON implements json.Unmarshaler so request bodies bind directly.
func (d *CivilDateTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*d = CivilDateTime{}
		return nil
	}
	parsed, err := ParseCivilDateTime(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalJSON renders the value back in the form matching its kind.
func (d CivilDateTime) MarshalJSON() ([]byte, error) {
	switch d.Kind {
	case KindUTC:
		return json.Marshal(d.Time.UTC().Format("2006-01-02T15:04:05Z"))
	case KindLocal:
		return json.Marshal(d.Time.Format(time.RFC3339))
	default:
		return json.Marshal(d.Time.Format("2006-01-02T15:04:05"))
	}
}
