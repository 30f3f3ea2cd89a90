package ports

import (
	"context"
	"flight-info-service/internal/domain"
)

// Contract for turning an airport code into an airport with coordinates.
type AirportResolver interface {
	// Return the airport for a normalized code, or an error wrapping domain.ErrNotFound.
	Resolve(ctx context.Context, code string) (domain.Airport, error)
}
