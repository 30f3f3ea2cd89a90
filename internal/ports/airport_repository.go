package ports

import (
	"context"
	"flight-info-service/internal/domain"
)

// Port: a boundary for persisted airport records.
type AirportRepository interface {
	AirportResolver
	// Insert or replace airports keyed by code.
	PutMany(ctx context.Context, airports []domain.Airport) error
}
