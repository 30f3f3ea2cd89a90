package services

import (
	"context"
	"errors"
	"flight-info-service/internal/domain"
	"flight-info-service/internal/platform/obs"
	"flight-info-service/internal/ports"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// AirportDistance is the outcome of a distance request: both resolved
// airports and the great-circle distance between them.
type AirportDistance struct {
	From     domain.Airport
	To       domain.Airport
	Distance domain.DistanceResult
}

// AirportService answers airport info and airport-to-airport distance queries.
// It owns no I/O itself; lookups go through the injected resolver.
type AirportService struct {
	resolver ports.AirportResolver
}

func NewAirportService(resolver ports.AirportResolver) (*AirportService, error) {
	if resolver == nil {
		return nil, errors.New("airport service: resolver is nil")
	}
	return &AirportService{resolver: resolver}, nil
}

// GetAirportInfo returns the airport for code.
func (s *AirportService) GetAirportInfo(ctx context.Context, code string) (_ domain.Airport, err error) {
	defer obs.Time(ctx, "service.GetAirportInfo")(&err)

	norm, err := domain.NormalizeCode(code)
	if err != nil {
		return domain.Airport{}, fmt.Errorf("get airport info: %w", err)
	}

	a, err := s.resolver.Resolve(ctx, norm)
	if err != nil {
		return domain.Airport{}, fmt.Errorf("get airport info %q: %w", norm, err)
	}

	return a, nil
}

// GetAirportsDistance resolves both airports concurrently and computes the
// distance between them in unit. The unit is checked before any lookup.
func (s *AirportService) GetAirportsDistance(
	ctx context.Context,
	from string,
	to string,
	unit domain.DistanceUnit,
) (_ AirportDistance, err error) {
	defer obs.Time(ctx, "service.GetAirportsDistance")(&err)

	if !unit.Valid() {
		return AirportDistance{}, fmt.Errorf("get airports distance: %w: %s", domain.ErrUnsupportedUnit, unit)
	}

	normFrom, err := domain.NormalizeCode(from)
	if err != nil {
		return AirportDistance{}, fmt.Errorf("get airports distance: from: %w", err)
	}

	normTo, err := domain.NormalizeCode(to)
	if err != nil {
		return AirportDistance{}, fmt.Errorf("get airports distance: to: %w", err)
	}

	var fromAirport, toAirport domain.Airport

	if normFrom == normTo {
		fromAirport, err = s.resolver.Resolve(ctx, normFrom)
		if err != nil {
			return AirportDistance{}, fmt.Errorf("get airports distance: resolve %q: %w", normFrom, err)
		}
		toAirport = fromAirport
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			a, err := s.resolver.Resolve(gctx, normFrom)
			if err != nil {
				return fmt.Errorf("resolve %q: %w", normFrom, err)
			}
			fromAirport = a
			return nil
		})
		g.Go(func() error {
			a, err := s.resolver.Resolve(gctx, normTo)
			if err != nil {
				return fmt.Errorf("resolve %q: %w", normTo, err)
			}
			toAirport = a
			return nil
		})
		if err := g.Wait(); err != nil {
			return AirportDistance{}, fmt.Errorf("get airports distance: %w", err)
		}
	}

	d, err := domain.ComputeDistance(fromAirport.Location, toAirport.Location, unit)
	if err != nil {
		return AirportDistance{}, fmt.Errorf("get airports distance: %w", err)
	}

	return AirportDistance{From: fromAirport, To: toAirport, Distance: d}, nil
}
