package ports

import (
	"context"
	"flight-info-service/internal/domain"
)

// Short-lived lookup cache in front of slower resolvers.
type AirportCache interface {
	// Return the cached airport and whether it was present.
	Get(ctx context.Context, code string) (domain.Airport, bool, error)
	Set(ctx context.Context, airport domain.Airport) error
}
