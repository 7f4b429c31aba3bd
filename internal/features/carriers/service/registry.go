package service

import (
	"fmt"
	"sort"
	"sync"

	"carrier-hub/internal/features/carriers/domain"
	"carrier-hub/internal/features/carriers/ports"
)

// Registry holds the initialized carrier adapters keyed by carrier identifier.
// Safe for concurrent reads with occasional writes (hot credential rotation
// replaces an adapter in place).
type Registry struct {
	mu       sync.RWMutex
	adapters map[domain.CarrierID]ports.CarrierAdapter
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		adapters: make(map[domain.CarrierID]ports.CarrierAdapter),
	}
}

// Register adds or replaces the adapter for a carrier. Idempotent; replacing
// the adapter does not touch any other carrier or existing health state.
func (r *Registry) Register(carrier domain.CarrierID, adapter ports.CarrierAdapter) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.adapters[carrier] = adapter
}

// Deregister removes the adapter for a carrier, if present.
func (r *Registry) Deregister(carrier domain.CarrierID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.adapters, carrier)
}

// Get returns the adapter for a carrier.
func (r *Registry) Get(carrier domain.CarrierID) (ports.CarrierAdapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	adapter, ok := r.adapters[carrier]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCarrierNotRegistered, carrier)
	}

	return adapter, nil
}

// List returns the registered carrier identifiers in lexicographic order.
func (r *Registry) List() []domain.CarrierID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	carriers := make([]domain.CarrierID, 0, len(r.adapters))
	for c := range r.adapters {
		carriers = append(carriers, c)
	}

	sort.Slice(carriers, func(i, j int) bool { return carriers[i] < carriers[j] })

	return carriers
}
