package adapters

import (
	"context"
	"encoding/json"
	"fmt"

	"carrier-hub/internal/core/cache"
	"carrier-hub/internal/features/carriers/domain"
)

const priorityCacheKey = "fallback_priorities"

// CachePriorityRepository implements ports.PrioritySnapshotStore on top of the
// cache port. All route lists live under one key as a JSON map; operator
// configuration is low-frequency, so the read-modify-write on Save is fine.
type CachePriorityRepository struct {
	cache cache.Cache
}

// NewCachePriorityRepository creates a new CachePriorityRepository.
func NewCachePriorityRepository(c cache.Cache) *CachePriorityRepository {
	return &CachePriorityRepository{
		cache: c,
	}
}

// Save upserts the snapshot for one route.
func (r *CachePriorityRepository) Save(ctx context.Context, list domain.FallbackPriorityList) error {
	lists, err := r.load(ctx)
	if err != nil {
		return err
	}

	lists[list.Route] = list

	data, err := json.Marshal(lists)
	if err != nil {
		return fmt.Errorf("failed to marshal priority snapshots: %w", err)
	}

	if err := r.cache.Set(ctx, priorityCacheKey, data, 0); err != nil {
		return fmt.Errorf("failed to save priority snapshots: %w", err)
	}

	return nil
}

// LoadAll returns every stored priority list.
func (r *CachePriorityRepository) LoadAll(ctx context.Context) ([]domain.FallbackPriorityList, error) {
	lists, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]domain.FallbackPriorityList, 0, len(lists))
	for _, list := range lists {
		out = append(out, list)
	}

	return out, nil
}

func (r *CachePriorityRepository) load(ctx context.Context) (map[string]domain.FallbackPriorityList, error) {
	data, err := r.cache.Get(ctx, priorityCacheKey)
	if err != nil {
		// A missing key means nothing was configured yet.
		if err.Error() == fmt.Sprintf("key not found: %s", priorityCacheKey) {
			return make(map[string]domain.FallbackPriorityList), nil
		}
		return nil, fmt.Errorf("failed to load priority snapshots: %w", err)
	}

	lists := make(map[string]domain.FallbackPriorityList)
	if err := json.Unmarshal(data, &lists); err != nil {
		return nil, fmt.Errorf("failed to unmarshal priority snapshots: %w", err)
	}

	return lists, nil
}
