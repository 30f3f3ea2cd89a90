package airportapi

import (
	"context"
	"errors"
	"flight-info-service/internal/domain"
	"flight-info-service/internal/platform/obs"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type airportResponse struct {
	IATA     string `json:"iata"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
	ICAO     string `json:"icao"`
	Timezone string `json:"timezone_region_name"`
	Location *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"location"`
}

// Client implements AirportResolver against a remote airport directory
// (GET {baseURL}/airports/{code}).
//
// Transient failures (network errors, 429 and 5xx responses) are retried
// with exponential backoff. The client is safe for concurrent use.
type Client struct {
	session    *http.Client
	apiKey     string
	baseURL    string
	maxAttempts int
	backoff    time.Duration
}

func NewClient(baseURL, apiKey string, timeout time.Duration) (*Client, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errors.New("airport api base URL is empty")
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, fmt.Errorf("airport api base URL %q: %w", baseURL, err)
	}

	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		session:    &http.Client{Timeout: timeout},
		apiKey:     apiKey,
		baseURL:    baseURL,
		maxAttempts: 4,
		backoff:    200 * time.Millisecond,
	}, nil
}

// Resolve fetches a single airport by code.
func (c *Client) Resolve(ctx context.Context, code string) (_ domain.Airport, err error) {
	defer obs.Time(ctx, "airportapi.Resolve")(&err)

	if strings.TrimSpace(code) == "" {
		return domain.Airport{}, fmt.Errorf("resolve airport: %w: empty code", domain.ErrInvalidIdentifier)
	}

	var decoded airportResponse
	if err := c.getJSON(ctx, "/airports/"+url.PathEscape(code), &decoded); err != nil {
		return domain.Airport{}, fmt.Errorf("resolve airport %q: %w", code, err)
	}

	if decoded.Location == nil {
		return domain.Airport{}, fmt.Errorf("resolve airport %q: %w: response has no location", code, domain.ErrUpstream)
	}

	loc, err := domain.NewGeoCoordinate(decoded.Location.Lat, decoded.Location.Lon)
	if err != nil {
		return domain.Airport{}, fmt.Errorf("resolve airport %q: %w", code, err)
	}

	// The directory may omit the IATA code when looked up by ICAO.
	airportCode := strings.ToUpper(strings.TrimSpace(decoded.IATA))
	if airportCode == "" {
		airportCode = code
	}

	return domain.Airport{
		Code:     airportCode,
		Name:     decoded.Name,
		City:     decoded.City,
		Country:  decoded.Country,
		ICAO:     strings.ToUpper(strings.TrimSpace(decoded.ICAO)),
		Timezone: decoded.Timezone,
		Location: loc,
	}, nil
}
