package airportapi

import (
	"context"
	"encoding/json"
	"errors"
	"flight-info-service/internal/domain"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// httpStatusError is a non-2xx reply from the airport directory.
// It unwraps to ErrNotFound for 404 and to ErrUpstream for anything else.
type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("airport api status %d: %s", e.Code, e.Body)
}

func (e *httpStatusError) Unwrap() error {
	if e.Code == http.StatusNotFound {
		return domain.ErrNotFound
	}
	return domain.ErrUpstream
}

// transient reports whether the directory may answer differently on retry.
// Auth failures (401, 403) and other 4xx are final.
func (e *httpStatusError) transient() bool {
	return e.Code == http.StatusTooManyRequests || e.Code >= 500
}

// getJSON fetches path relative to the base URL and decodes the body into v.
func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
		if err != nil {
			return nil, err
		}
		if c.apiKey != "" {
			req.Header.Set("Authorization", c.apiKey)
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrUpstream, err)
	}
	return nil
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, &httpStatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}
	return resp, nil
}

// doWithRetry retries network errors and transient statuses with exponential
// backoff. Context cancellation is returned as is; every other failure
// carries ErrUpstream or ErrNotFound.
func (c *Client) doWithRetry(
	ctx context.Context,
	makeReq func() (*http.Request, error),
) (*http.Response, error) {
	backoff := c.backoff

	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := makeReq()
		if err != nil {
			return nil, fmt.Errorf("%w: build request: %v", domain.ErrUpstream, err)
		}

		resp, err := c.do(req)
		if err == nil {
			return resp, nil
		}

		var he *httpStatusError
		var netErr net.Error
		switch {
		case errors.As(err, &he):
			if !he.transient() || attempt >= c.maxAttempts {
				return nil, he
			}
		case ctx.Err() != nil:
			return nil, ctx.Err()
		case errors.As(err, &netErr):
			if attempt >= c.maxAttempts {
				return nil, fmt.Errorf("%w: %w", domain.ErrUpstream, err)
			}
		default:
			return nil, fmt.Errorf("%w: %w", domain.ErrUpstream, err)
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}

		backoff *= 2
	}
}
