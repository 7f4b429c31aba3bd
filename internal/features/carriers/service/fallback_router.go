package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"carrier-hub/internal/core/logger"
	"carrier-hub/internal/features/carriers/domain"
	"carrier-hub/internal/features/carriers/ports"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FallbackRouter walks a route's ordered carrier priority list when a
// preferred carrier fails. Unlike the aggregator, the walk is sequential and
// short-circuits on the first success; carriers the router never reaches are
// never called.
type FallbackRouter struct {
	mu    sync.RWMutex
	lists map[string]domain.FallbackPriorityList

	dispatcher *Dispatcher
	events     ports.FallbackEventSink
	store      ports.PrioritySnapshotStore
	logger     *zap.Logger
}

// NewFallbackRouter creates a router. The event sink and snapshot store are
// optional; a nil sink skips audit logging and a nil store keeps priority
// configuration in memory only.
func NewFallbackRouter(dispatcher *Dispatcher, events ports.FallbackEventSink, store ports.PrioritySnapshotStore) *FallbackRouter {
	return &FallbackRouter{
		lists:      make(map[string]domain.FallbackPriorityList),
		dispatcher: dispatcher,
		events:     events,
		store:      store,
		logger:     logger.Get(),
	}
}

// LoadSnapshots restores persisted priority lists into memory. Called once at
// boot when a snapshot store is attached.
func (r *FallbackRouter) LoadSnapshots(ctx context.Context) error {
	if r.store == nil {
		return nil
	}

	lists, err := r.store.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to load priority snapshots: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, list := range lists {
		r.lists[list.Route] = list
	}

	r.logger.Info("Fallback priority snapshots loaded", zap.Int("routes", len(lists)))

	return nil
}

// ConfigurePriority replaces the priority list for a route. Rejects lists with
// duplicate carriers without touching the existing configuration.
func (r *FallbackRouter) ConfigurePriority(ctx context.Context, route string, carriers []domain.CarrierID) error {
	list, err := domain.NewFallbackPriorityList(route, carriers)
	if err != nil {
		return err
	}

	r.mu.Lock()
	r.lists[route] = list
	r.mu.Unlock()

	if r.store != nil {
		if err := r.store.Save(ctx, list); err != nil {
			return fmt.Errorf("priority list applied but snapshot failed: %w", err)
		}
	}

	r.logger.Info("Fallback priority configured",
		zap.String("route", route),
		zap.Int("carriers", len(carriers)),
	)

	return nil
}

// listFor resolves the active priority list for a route, falling back to the
// wildcard list when the route has no specific entry.
func (r *FallbackRouter) listFor(route string) (domain.FallbackPriorityList, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if list, ok := r.lists[route]; ok && list.Active && len(list.Carriers) > 0 {
		return list, true
	}

	if list, ok := r.lists[domain.RouteWildcard]; ok && list.Active && len(list.Carriers) > 0 {
		return list, true
	}

	return domain.FallbackPriorityList{}, false
}

// SelectPrimary returns the most preferred carrier for a route.
func (r *FallbackRouter) SelectPrimary(route string) (domain.CarrierID, error) {
	list, ok := r.listFor(route)
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrNoFallbackConfigured, route)
	}

	return list.Carriers[0], nil
}

// GetFallbackQuote walks the route's priority list in order, skipping excluded
// carriers, and returns the first successful quote. Each success records one
// FallbackEvent naming the carrier that was substituted for. Returns
// ErrAllCarriersExhausted when the whole list fails.
func (r *FallbackRouter) GetFallbackQuote(ctx context.Context, req domain.ShipmentRequest, exclude map[domain.CarrierID]bool, from domain.CarrierID, reason string) (*domain.Quote, error) {
	route := req.Route()

	list, ok := r.listFor(route)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoFallbackConfigured, route)
	}

	if from == "" {
		from = domain.FallbackFromPrimary
	}

	var attempted []domain.CarrierID

	for _, carrier := range list.Carriers {
		if exclude[carrier] {
			continue
		}

		quote, err := r.dispatcher.Quote(ctx, carrier, req)
		if err != nil {
			attempted = append(attempted, carrier)
			continue
		}

		r.recordEvent(ctx, domain.FallbackEvent{
			ID:         uuid.NewString(),
			Route:      route,
			Reference:  req.Reference,
			From:       from,
			To:         carrier,
			Reason:     reason,
			OccurredAt: time.Now(),
		})

		return quote, nil
	}

	if len(attempted) == 0 {
		return nil, fmt.Errorf("%w: every carrier for route %s was excluded", domain.ErrAllCarriersExhausted, route)
	}

	return nil, fmt.Errorf("%w: attempted %s", domain.ErrAllCarriersExhausted, joinCarriers(attempted))
}

// RecentEvents returns up to limit fallback events recorded for a route,
// newest first. Returns nil when no event sink is attached.
func (r *FallbackRouter) RecentEvents(ctx context.Context, route string, limit int) ([]domain.FallbackEvent, error) {
	if r.events == nil {
		return nil, nil
	}

	return r.events.Recent(ctx, route, limit)
}

func (r *FallbackRouter) recordEvent(ctx context.Context, event domain.FallbackEvent) {
	r.logger.Info("Fallback carrier selected",
		zap.String("route", event.Route),
		zap.String("from", string(event.From)),
		zap.String("to", string(event.To)),
		zap.String("reason", event.Reason),
	)

	if r.events == nil {
		return
	}

	if err := r.events.Append(ctx, event); err != nil {
		// The quote already succeeded; losing one audit entry must not fail it.
		r.logger.Error("Failed to record fallback event", zap.Error(err))
	}
}
