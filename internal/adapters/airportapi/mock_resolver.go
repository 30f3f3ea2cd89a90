package airportapi

import (
	"context"
	"flight-info-service/internal/domain"
	"fmt"
	"sync"
)

// MockResolver serves airports from memory and counts lookups per code.
type MockResolver struct {
	mu      sync.Mutex
	m       map[string]domain.Airport
	calls   map[string]int
	failErr error
}

func NewMockResolver(airports []domain.Airport) *MockResolver {
	m := make(map[string]domain.Airport, len(airports))
	for _, a := range airports {
		m[a.Code] = a
	}
	return &MockResolver{m: m, calls: make(map[string]int)}
}

// FailWith makes every subsequent Resolve return err.
func (r *MockResolver) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failErr = err
}

func (r *MockResolver) Resolve(ctx context.Context, code string) (domain.Airport, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.calls[code]++
	if r.failErr != nil {
		return domain.Airport{}, r.failErr
	}

	a, ok := r.m[code]
	if !ok {
		return domain.Airport{}, fmt.Errorf("mock airport %q: %w", code, domain.ErrNotFound)
	}

	return a, nil
}

// Calls returns how many times code was resolved.
func (r *MockResolver) Calls(code string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.calls[code]
}
