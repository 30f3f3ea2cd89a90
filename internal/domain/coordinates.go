package domain

import (
	"fmt"
	"math"
)

// Immutable geographic coordinates in degrees (latitude, longitude).
// Build values with NewGeoCoordinate so the range invariant holds.
type GeoCoordinate struct {
	Lat float64
	Lon float64
}

// NewGeoCoordinate validates the ranges lat in [-90, 90] and lon in [-180, 180].
// Out-of-range values are rejected, never clamped.
func NewGeoCoordinate(lat, lon float64) (GeoCoordinate, error) {
	if math.IsNaN(lat) || lat < -90 || lat > 90 {
		return GeoCoordinate{}, fmt.Errorf("%w: latitude %v must be between -90 and 90", ErrInvalidCoordinate, lat)
	}
	if math.IsNaN(lon) || lon < -180 || lon > 180 {
		return GeoCoordinate{}, fmt.Errorf("%w: longitude %v must be between -180 and 180", ErrInvalidCoordinate, lon)
	}

	return GeoCoordinate{Lat: lat, Lon: lon}, nil
}

func (c GeoCoordinate) String() string {
	return fmt.Sprintf("(%.4f, %.4f)", c.Lat, c.Lon)
}
