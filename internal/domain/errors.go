package domain

import "errors"

var (
	// A latitude or longitude outside its valid range.
	ErrInvalidCoordinate = errors.New("invalid coordinate")
	// A distance unit without an entry in the conversion table.
	ErrUnsupportedUnit = errors.New("unsupported distance unit")
	// An airport code that is empty or not shaped like an IATA/ICAO code.
	ErrInvalidIdentifier = errors.New("invalid airport identifier")
	// No airport is known for the requested code.
	ErrNotFound = errors.New("airport not found")
	// The airport data source failed for a reason other than a missing airport.
	ErrUpstream = errors.New("airport data source unavailable")
)
