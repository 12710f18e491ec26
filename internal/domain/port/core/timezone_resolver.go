package core

// TimezoneResolver maps geographic coordinates to IANA timezone identifiers
// and answers membership in the canonical IANA zone set. Implementations are
// pure functions of their inputs and safe for concurrent use.
type TimezoneResolver interface {
	// Resolve returns the IANA zone covering the coordinates. Ocean areas
	// resolve to the nautical Etc/GMT offset zones. Coordinates outside the
	// valid latitude/longitude range fail.
	Resolve(latitude, longitude float64) (string, error)
	// IsValidIANA reports whether the identifier is a member of the
	// canonical IANA zone set. It fails closed for anything else.
	IsValidIANA(timezoneID string) bool
}
