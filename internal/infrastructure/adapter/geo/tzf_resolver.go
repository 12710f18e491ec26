// Package geo resolves geographic coordinates to IANA timezone identifiers
// using tzf's embedded timezone-boundary dataset. The dataset includes the
// ocean zones, so open-water coordinates resolve to the nautical Etc/GMT
// offset convention.
package geo

import (
	"fmt"

	"github.com/ringsaturn/tzf"

	errs "github.com/amirhossein-jamali/transaction-manager/internal/domain/error"
	coreport "github.com/amirhossein-jamali/transaction-manager/internal/domain/port/core"
)

// Resolver implements the TimezoneResolver port. The polygon index and the
// canonical zone-name set are built once at startup and never mutated.
type Resolver struct {
	finder tzf.F
	names  map[string]struct{}
}

// NewResolver builds the polygon index from the embedded dataset.
func NewResolver() (coreport.TimezoneResolver, error) {
	finder, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("failed to build timezone finder: %w", err)
	}

	names := make(map[string]struct{})
	for _, name := range finder.TimezoneNames() {
		names[name] = struct{}{}
	}

	return &Resolver{
		finder: finder,
		names:  names,
	}, nil
}

// Resolve maps coordinates to the IANA zone covering them.
func (r *Resolver) Resolve(latitude, longitude float64) (string, error) {
	if latitude < -90 || latitude > 90 {
		return "", fmt.Errorf("%w: latitude %v out of range [-90, 90]", errs.ErrGeoResolution, latitude)
	}
	if longitude < -180 || longitude > 180 {
		return "", fmt.Errorf("%w: longitude %v out of range [-180, 180]", errs.ErrGeoResolution, longitude)
	}

	// tzf takes longitude first.
	name := r.finder.GetTimezoneName(longitude, latitude)
	if name == "" {
		return "", fmt.Errorf("%w: (%v, %v)", errs.ErrGeoResolution, latitude, longitude)
	}
	return name, nil
}

// IsValidIANA reports membership in the canonical zone-name set. Deprecated
// aliases that the dataset does not carry are rejected.
func (r *Resolver) IsValidIANA(timezoneID string) bool {
	_, ok := r.names[timezoneID]
	return ok
}
