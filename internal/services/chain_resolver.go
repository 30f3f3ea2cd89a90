package services

import (
	"context"
	"errors"
	"flight-info-service/internal/domain"
	"flight-info-service/internal/ports"
	"fmt"
	"log"
)

// ChainResolver resolves airports through up to three tiers:
//   - Cache (short-lived, e.g. Redis)
//   - Repository (persistent airports table)
//   - Remote directory (HTTP API)
//
// A hit in a lower tier is written back to the tiers above it. Write-back
// failures are logged and never fail the lookup. Any tier may be nil.
type ChainResolver struct {
	cache  ports.AirportCache
	repo   ports.AirportRepository
	remote ports.AirportResolver
}

func NewChainResolver(
	cache ports.AirportCache,
	repo ports.AirportRepository,
	remote ports.AirportResolver,
) (*ChainResolver, error) {
	if repo == nil && remote == nil {
		return nil, errors.New("chain resolver: a repository or remote resolver is required")
	}

	return &ChainResolver{cache: cache, repo: repo, remote: remote}, nil
}

func (c *ChainResolver) Resolve(ctx context.Context, code string) (domain.Airport, error) {
	code, err := domain.NormalizeCode(code)
	if err != nil {
		return domain.Airport{}, fmt.Errorf("chain resolve: %w", err)
	}

	if c.cache != nil {
		a, ok, err := c.cache.Get(ctx, code)
		if err != nil {
			log.Printf("airport cache read failed: code=%s err=%v", code, err)
		} else if ok {
			return a, nil
		}
	}

	if c.repo != nil {
		a, err := c.repo.Resolve(ctx, code)
		if err == nil {
			c.writeCache(ctx, a)
			return a, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return domain.Airport{}, fmt.Errorf("chain resolve %q: repository: %w", code, err)
		}
	}

	if c.remote != nil {
		a, err := c.remote.Resolve(ctx, code)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) ||
				errors.Is(err, domain.ErrInvalidCoordinate) ||
				errors.Is(err, domain.ErrUpstream) {
				return domain.Airport{}, fmt.Errorf("chain resolve %q: remote: %w", code, err)
			}
			return domain.Airport{}, fmt.Errorf("chain resolve %q: remote: %w: %w", code, domain.ErrUpstream, err)
		}

		if c.repo != nil {
			if err := c.repo.PutMany(ctx, []domain.Airport{a}); err != nil {
				log.Printf("airport repository write failed: code=%s err=%v", a.Code, err)
			}
		}
		c.writeCache(ctx, a)
		return a, nil
	}

	return domain.Airport{}, fmt.Errorf("chain resolve %q: %w", code, domain.ErrNotFound)
}

func (c *ChainResolver) writeCache(ctx context.Context, a domain.Airport) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Set(ctx, a); err != nil {
		log.Printf("airport cache write failed: code=%s err=%v", a.Code, err)
	}
}
