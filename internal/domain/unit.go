package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// DistanceUnit is the closed set of units a distance can be expressed in.
type DistanceUnit int

const (
	Kilometers DistanceUnit = iota
	Miles
	NauticalMiles
)

// Multiplicative factors from kilometers.
var kmFactors = map[DistanceUnit]float64{
	Kilometers:    1.0,
	Miles:         0.621371,
	NauticalMiles: 0.539957,
}

var unitSymbols = map[DistanceUnit]string{
	Kilometers:    "km",
	Miles:         "mi",
	NauticalMiles: "nmi",
}

var unitAliases = map[string]DistanceUnit{
	"km":            Kilometers,
	"kilometer":     Kilometers,
	"kilometers":    Kilometers,
	"mi":            Miles,
	"mile":          Miles,
	"miles":         Miles,
	"nm":            NauticalMiles,
	"nmi":           NauticalMiles,
	"nauticalmile":  NauticalMiles,
	"nauticalmiles": NauticalMiles,
}

// Multi-word names may separate their words with "_", "-" or a space.
var multiWordUnits = map[string]DistanceUnit{
	"nautical mile":  NauticalMiles,
	"nautical miles": NauticalMiles,
}

// ParseDistanceUnit accepts a unit name or symbol (case-insensitive) or the
// ordinal 0, 1 or 2 written as plain digits.
func ParseDistanceUnit(s string) (DistanceUnit, error) {
	raw := strings.TrimSpace(s)

	if isDigits(raw) {
		if n, err := strconv.Atoi(raw); err == nil && DistanceUnit(n).Valid() {
			return DistanceUnit(n), nil
		}
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedUnit, s)
	}

	key := strings.ToLower(raw)
	if u, ok := unitAliases[key]; ok {
		return u, nil
	}

	spaced := strings.NewReplacer("_", " ", "-", " ").Replace(key)
	if u, ok := multiWordUnits[spaced]; ok {
		return u, nil
	}

	return 0, fmt.Errorf("%w: %q", ErrUnsupportedUnit, s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Valid reports whether the unit has a conversion factor.
func (u DistanceUnit) Valid() bool {
	_, ok := kmFactors[u]
	return ok
}

// FromKilometers converts a kilometer distance into u.
func (u DistanceUnit) FromKilometers(km float64) (float64, error) {
	f, ok := kmFactors[u]
	if !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedUnit, int(u))
	}
	return km * f, nil
}

func (u DistanceUnit) String() string {
	if s, ok := unitSymbols[u]; ok {
		return s
	}
	return "DistanceUnit(" + strconv.Itoa(int(u)) + ")"
}
