package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/jftuga/geodist"
	"github.com/umahmood/haversine"
)

func mustCoord(t *testing.T, lat, lon float64) GeoCoordinate {
	t.Helper()
	c, err := NewGeoCoordinate(lat, lon)
	if err != nil {
		t.Fatalf("NewGeoCoordinate(%v, %v): %v", lat, lon, err)
	}
	return c
}

func TestComputeDistanceSamePointIsZero(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{51.5074, -0.1278},
		{-33.9399, 151.1753},
		{90, 0},
		{-90, 180},
		{12.5, -180},
	}

	for _, p := range points {
		c := mustCoord(t, p[0], p[1])
		for _, u := range []DistanceUnit{Kilometers, Miles, NauticalMiles} {
			got, err := ComputeDistance(c, c, u)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.Value != 0 {
				t.Errorf("distance %s -> %s in %s = %v, want exactly 0", c, c, u, got.Value)
			}
			if got.Unit != u {
				t.Errorf("unit = %s, want %s", got.Unit, u)
			}
		}
	}
}

func TestComputeDistanceSymmetric(t *testing.T) {
	pairs := [][4]float64{
		{51.5074, -0.1278, 40.7128, -74.0060},
		{35.5494, 139.7798, -33.9399, 151.1753},
		{0, 0, 0, 180},
		{64.13, -21.94, -54.84, -68.31},
	}

	for _, p := range pairs {
		a := mustCoord(t, p[0], p[1])
		b := mustCoord(t, p[2], p[3])

		ab, err := ComputeDistance(a, b, Kilometers)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ba, err := ComputeDistance(b, a, Kilometers)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if math.Abs(ab.Value-ba.Value) > 1e-9 {
			t.Errorf("asymmetric distance: %s->%s = %v, reverse = %v", a, b, ab.Value, ba.Value)
		}
	}
}

func TestComputeDistanceUnitScaling(t *testing.T) {
	a := mustCoord(t, 51.5074, -0.1278)
	b := mustCoord(t, 40.7128, -74.0060)

	km, err := ComputeDistance(a, b, Kilometers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		unit   DistanceUnit
		factor float64
	}{
		{Miles, 0.621371},
		{NauticalMiles, 0.539957},
		{Kilometers, 1.0},
	}

	for _, tt := range tests {
		got, err := ComputeDistance(a, b, tt.unit)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := km.Value * tt.factor
		if rel := math.Abs(got.Value-want) / want; rel > 1e-6 {
			t.Errorf("%s distance = %v, want %v (rel err %v)", tt.unit, got.Value, want, rel)
		}
	}
}

func TestComputeDistanceAntipodal(t *testing.T) {
	got, err := ComputeDistance(mustCoord(t, 0, 0), mustCoord(t, 0, 180), Kilometers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := math.Pi * EarthRadiusKm
	if math.Abs(got.Value-want) > 1e-6 {
		t.Fatalf("antipodal distance = %v, want %v", got.Value, want)
	}
	if math.Abs(got.Value-20015.1) > 0.1 {
		t.Fatalf("antipodal distance = %v, want ~20015.1", got.Value)
	}
}

func TestComputeDistanceLondonNewYork(t *testing.T) {
	london := mustCoord(t, 51.5074, -0.1278)
	newYork := mustCoord(t, 40.7128, -74.0060)

	got, err := ComputeDistance(london, newYork, Kilometers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(got.Value-5570) > 5 {
		t.Fatalf("London -> New York = %v km, want 5570 +/- 5", got.Value)
	}
}

// Cross-check against independent implementations: an identical spherical
// model, and the ellipsoidal Vincenty solution within 0.5%.
func TestHaversineAgainstLibraries(t *testing.T) {
	pairs := [][4]float64{
		{51.5074, -0.1278, 40.7128, -74.0060},
		{52.3086, 4.7639, 55.9726, 37.4146},
		{35.5494, 139.7798, -33.9399, 151.1753},
		{33.9416, -118.4085, 21.3187, -157.9225},
	}

	for _, p := range pairs {
		a := mustCoord(t, p[0], p[1])
		b := mustCoord(t, p[2], p[3])
		got := HaversineKm(a, b)

		_, libKm := haversine.Distance(
			haversine.Coord{Lat: p[0], Lon: p[1]},
			haversine.Coord{Lat: p[2], Lon: p[3]},
		)
		if math.Abs(got-libKm) > 1e-6*libKm {
			t.Errorf("%s -> %s: haversine = %v, library = %v", a, b, got, libKm)
		}

		_, vincentyKm, err := geodist.VincentyDistance(
			geodist.Coord{Lat: p[0], Lon: p[1]},
			geodist.Coord{Lat: p[2], Lon: p[3]},
		)
		if err != nil {
			t.Fatalf("vincenty: %v", err)
		}
		if math.Abs(got-vincentyKm) > 0.005*vincentyKm {
			t.Errorf("%s -> %s: haversine = %v, vincenty = %v", a, b, got, vincentyKm)
		}
	}
}

func TestComputeDistanceUnsupportedUnit(t *testing.T) {
	a := mustCoord(t, 1, 1)
	b := mustCoord(t, 2, 2)

	got, err := ComputeDistance(a, b, DistanceUnit(42))
	if !errors.Is(err, ErrUnsupportedUnit) {
		t.Fatalf("err = %v, want ErrUnsupportedUnit", err)
	}
	if got != (DistanceResult{}) {
		t.Fatalf("result = %+v, want zero value", got)
	}
}
