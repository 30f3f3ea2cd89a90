package domain

import (
	"fmt"
	"math"
)

// Mean Earth radius used by the spherical model.
const EarthRadiusKm = 6371.0

// A distance magnitude paired with the unit it is expressed in.
type DistanceResult struct {
	Value float64
	Unit  DistanceUnit
}

func (d DistanceResult) String() string {
	return fmt.Sprintf("%.3f %s", d.Value, d.Unit)
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// HaversineKm returns the great-circle distance between two coordinates in kilometers.
func HaversineKm(from, to GeoCoordinate) float64 {
	lat1 := toRadians(from.Lat)
	lat2 := toRadians(to.Lat)
	dLat := lat2 - lat1
	dLon := toRadians(to.Lon) - toRadians(from.Lon)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)

	a := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	// Rounding can push a a hair above 1 for near-antipodal points.
	if a > 1 {
		a = 1
	}
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// ComputeDistance returns the shortest distance over the sphere between two
// coordinates, expressed in unit.
//
// It is pure and safe for concurrent use. The only failure is a unit with no
// conversion factor; coordinates are validated when they are constructed.
func ComputeDistance(from, to GeoCoordinate, unit DistanceUnit) (DistanceResult, error) {
	v, err := unit.FromKilometers(HaversineKm(from, to))
	if err != nil {
		return DistanceResult{}, fmt.Errorf("compute distance %s -> %s: %w", from, to, err)
	}

	return DistanceResult{Value: v, Unit: unit}, nil
}
