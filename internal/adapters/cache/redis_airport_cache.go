package cache

import (
	"context"
	"encoding/json"
	"errors"
	"flight-info-service/internal/domain"
	"flight-info-service/internal/platform/obs"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "airport:"

// cachedAirport is the JSON document stored per airport code.
type cachedAirport struct {
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	City     string  `json:"city"`
	Country  string  `json:"country"`
	ICAO     string  `json:"icao"`
	Timezone string  `json:"timezone"`
	Lat      float64 `json:"lat"`
	Lon      float64 `json:"lon"`
}

// RedisAirportCache keeps resolved airports in Redis with a fixed TTL.
// Keys are expected to be normalized codes.
type RedisAirportCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisAirportCache(client *redis.Client, ttl time.Duration) *RedisAirportCache {
	return &RedisAirportCache{client: client, ttl: ttl}
}

// Fetch a cached airport. A miss is (zero, false, nil).
func (c *RedisAirportCache) Get(ctx context.Context, code string) (_ domain.Airport, _ bool, err error) {
	defer obs.Time(ctx, "airport.cache.Get")(&err)

	if c.client == nil {
		return domain.Airport{}, false, errors.New("airport cache: client is nil")
	}

	code = strings.TrimSpace(code)
	if code == "" {
		return domain.Airport{}, false, errors.New("get airport cache: code must not be empty")
	}

	raw, err := c.client.Get(ctx, keyPrefix+code).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Airport{}, false, nil
	}
	if err != nil {
		return domain.Airport{}, false, fmt.Errorf("get airport cache %q: %w", code, err)
	}

	var doc cachedAirport
	if err := json.Unmarshal(raw, &doc); err != nil {
		return domain.Airport{}, false, fmt.Errorf("get airport cache %q: decode: %w", code, err)
	}

	loc, err := domain.NewGeoCoordinate(doc.Lat, doc.Lon)
	if err != nil {
		return domain.Airport{}, false, fmt.Errorf("get airport cache %q: %w", code, err)
	}

	return domain.Airport{
		Code:     doc.Code,
		Name:     doc.Name,
		City:     doc.City,
		Country:  doc.Country,
		ICAO:     doc.ICAO,
		Timezone: doc.Timezone,
		Location: loc,
	}, true, nil
}

// Store an airport under its code and its ICAO code.
func (c *RedisAirportCache) Set(ctx context.Context, a domain.Airport) error {
	if c.client == nil {
		return errors.New("airport cache: client is nil")
	}

	if strings.TrimSpace(a.Code) == "" {
		return errors.New("set airport cache: empty code")
	}

	payload, err := json.Marshal(cachedAirport{
		Code:     a.Code,
		Name:     a.Name,
		City:     a.City,
		Country:  a.Country,
		ICAO:     a.ICAO,
		Timezone: a.Timezone,
		Lat:      a.Location.Lat,
		Lon:      a.Location.Lon,
	})
	if err != nil {
		return fmt.Errorf("set airport cache %q: encode: %w", a.Code, err)
	}

	// Lookups arrive by IATA or ICAO code, so both keys hold the document.
	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, keyPrefix+a.Code, payload, c.ttl)
		if icao := strings.TrimSpace(a.ICAO); icao != "" && icao != a.Code {
			pipe.Set(ctx, keyPrefix+icao, payload, c.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("set airport cache %q: %w", a.Code, err)
	}

	return nil
}
