package service

import (
	"context"
	"errors"
	"fmt"

	"carrier-hub/internal/core/logger"
	"carrier-hub/internal/features/carriers/domain"

	"go.uber.org/zap"
)

// CarrierService is the single entry point composing the registry, health
// tracker, quote aggregator and fallback router. External callers (HTTP
// handlers, task workers) only ever talk to this facade.
type CarrierService struct {
	registry   *Registry
	health     *HealthTracker
	dispatcher *Dispatcher
	aggregator *QuoteAggregator
	router     *FallbackRouter
	logger     *zap.Logger
}

// NewCarrierService wires the orchestration components together.
func NewCarrierService(registry *Registry, health *HealthTracker, dispatcher *Dispatcher, aggregator *QuoteAggregator, router *FallbackRouter) *CarrierService {
	return &CarrierService{
		registry:   registry,
		health:     health,
		dispatcher: dispatcher,
		aggregator: aggregator,
		router:     router,
		logger:     logger.Get(),
	}
}

// GetQuote prices a shipment. When the request pins a carrier the call goes
// straight to it; if that fails, the fallback router tries the next carriers
// in the route's priority order, excluding the failed one. Requests without a
// pinned carrier go through best-quote aggregation instead.
func (s *CarrierService) GetQuote(ctx context.Context, req domain.ShipmentRequest) (*domain.Quote, error) {
	if req.Carrier == "" {
		return s.aggregator.GetBestQuote(ctx, req)
	}

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidRequest, err)
	}

	quote, err := s.dispatcher.Quote(ctx, req.Carrier, req)
	if err == nil {
		return quote, nil
	}

	s.logger.Warn("Pinned carrier failed, trying fallback",
		zap.String("carrier", string(req.Carrier)),
		zap.Error(err),
	)

	exclude := map[domain.CarrierID]bool{req.Carrier: true}

	fallbackQuote, fbErr := s.router.GetFallbackQuote(ctx, req, exclude, req.Carrier, err.Error())
	if fbErr != nil {
		// With no fallback configured the primary's error is the useful one.
		if errors.Is(fbErr, domain.ErrNoFallbackConfigured) {
			return nil, err
		}
		return nil, fbErr
	}

	return fallbackQuote, nil
}

// GenerateLabel books a shipment with the carrier named in the request. Label
// generation is carrier-specific and never falls back: the label must come
// from the carrier that produced the accepted quote.
func (s *CarrierService) GenerateLabel(ctx context.Context, req domain.ShipmentRequest) (*domain.LabelResult, error) {
	if req.Carrier == "" {
		return nil, fmt.Errorf("%w: carrier is required for label generation", domain.ErrInvalidRequest)
	}

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidRequest, err)
	}

	return s.dispatcher.Label(ctx, req.Carrier, req)
}

// TrackShipment retrieves tracking history from the carrier that owns the
// tracking number.
func (s *CarrierService) TrackShipment(ctx context.Context, carrier domain.CarrierID, trackingNumber string) (*domain.TrackingResult, error) {
	if carrier == "" || trackingNumber == "" {
		return nil, fmt.Errorf("%w: carrier and tracking number are required", domain.ErrInvalidRequest)
	}

	return s.dispatcher.Track(ctx, carrier, trackingNumber)
}

// SchedulePickup books a pickup with the carrier named in the request.
func (s *CarrierService) SchedulePickup(ctx context.Context, req domain.ShipmentRequest) (*domain.PickupResult, error) {
	if req.Carrier == "" {
		return nil, fmt.Errorf("%w: carrier is required for pickup scheduling", domain.ErrInvalidRequest)
	}

	if req.PickupDate == nil {
		return nil, fmt.Errorf("%w: pickup date is required", domain.ErrInvalidRequest)
	}

	return s.dispatcher.Pickup(ctx, req.Carrier, req)
}

// Carriers returns the registered carrier identifiers.
func (s *CarrierService) Carriers() []domain.CarrierID {
	return s.registry.List()
}

// Health returns the health snapshot for a carrier.
func (s *CarrierService) Health(carrier domain.CarrierID) domain.CarrierHealth {
	return s.health.Snapshot(carrier)
}
