package ports

import (
	"context"

	"carrier-hub/internal/features/carriers/domain"
)

// FallbackEventSink is the secondary port for the append-only fallback audit log.
type FallbackEventSink interface {
	// Append records one fallback event.
	Append(ctx context.Context, event domain.FallbackEvent) error
	// Recent returns up to limit events for a route, newest first.
	Recent(ctx context.Context, route string, limit int) ([]domain.FallbackEvent, error)
}

// PrioritySnapshotStore is the secondary port for persisting operator-configured
// priority lists so they survive a restart.
type PrioritySnapshotStore interface {
	// Save upserts the snapshot for a route.
	Save(ctx context.Context, list domain.FallbackPriorityList) error
	// LoadAll returns every stored priority list.
	LoadAll(ctx context.Context) ([]domain.FallbackPriorityList, error)
}
