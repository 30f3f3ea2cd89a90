package domain

import (
	"fmt"
	"strings"
)

// Represents a single airport known to the system.
// Code is the lookup key (IATA where available); the remaining fields are
// descriptive metadata returned to clients as-is.
type Airport struct {
	Code     string
	Name     string
	City     string
	Country  string
	ICAO     string
	Timezone string
	Location GeoCoordinate
}

// NormalizeCode trims and upper-cases an airport code and checks it looks like
// a 3-character IATA or 4-character ICAO code.
func NormalizeCode(code string) (string, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	if len(c) != 3 && len(c) != 4 {
		return "", fmt.Errorf("%w: %q must be 3 or 4 characters", ErrInvalidIdentifier, code)
	}

	for _, r := range c {
		if (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return "", fmt.Errorf("%w: %q must be alphanumeric", ErrInvalidIdentifier, code)
		}
	}

	return c, nil
}
