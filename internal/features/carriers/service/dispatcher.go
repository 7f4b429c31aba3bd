package service

import (
	"context"
	"fmt"
	"time"

	"carrier-hub/internal/core/logger"
	"carrier-hub/internal/features/carriers/domain"

	"go.uber.org/zap"
)

// Dispatcher performs single-carrier, health-gated adapter calls. Every call
// follows the same path: registry lookup, eligibility gate, remote call with
// its own timeout, health update. When the gate is closed no remote call is
// attempted at all.
type Dispatcher struct {
	registry *Registry
	health   *HealthTracker

	// quoteTimeout bounds quote calls; callTimeout bounds label, tracking
	// and pickup calls, which carriers answer more slowly.
	quoteTimeout time.Duration
	callTimeout  time.Duration

	logger *zap.Logger
}

// NewDispatcher creates a Dispatcher with the given per-call timeouts.
func NewDispatcher(registry *Registry, health *HealthTracker, quoteTimeout, callTimeout time.Duration) *Dispatcher {
	return &Dispatcher{
		registry:     registry,
		health:       health,
		quoteTimeout: quoteTimeout,
		callTimeout:  callTimeout,
		logger:       logger.Get(),
	}
}

// Quote prices the shipment with one carrier.
func (d *Dispatcher) Quote(ctx context.Context, carrier domain.CarrierID, req domain.ShipmentRequest) (*domain.Quote, error) {
	adapter, err := d.registry.Get(carrier)
	if err != nil {
		return nil, err
	}

	if !d.health.IsEligible(carrier) {
		return nil, fmt.Errorf("%w: %s", domain.ErrCarrierDown, carrier)
	}

	callCtx, cancel := context.WithTimeout(ctx, d.quoteTimeout)
	defer cancel()

	quote, err := adapter.GetQuote(callCtx, req)
	d.observe(carrier, "quote", err)
	if err != nil {
		return nil, fmt.Errorf("carrier %s quote failed: %w", carrier, err)
	}

	return quote, nil
}

// Label generates a shipping label with one carrier.
func (d *Dispatcher) Label(ctx context.Context, carrier domain.CarrierID, req domain.ShipmentRequest) (*domain.LabelResult, error) {
	adapter, err := d.registry.Get(carrier)
	if err != nil {
		return nil, err
	}

	if !d.health.IsEligible(carrier) {
		return nil, fmt.Errorf("%w: %s", domain.ErrCarrierDown, carrier)
	}

	callCtx, cancel := context.WithTimeout(ctx, d.callTimeout)
	defer cancel()

	label, err := adapter.GenerateLabel(callCtx, req)
	d.observe(carrier, "label", err)
	if err != nil {
		return nil, fmt.Errorf("carrier %s label failed: %w", carrier, err)
	}

	return label, nil
}

// Track retrieves tracking history from one carrier.
func (d *Dispatcher) Track(ctx context.Context, carrier domain.CarrierID, trackingNumber string) (*domain.TrackingResult, error) {
	adapter, err := d.registry.Get(carrier)
	if err != nil {
		return nil, err
	}

	if !d.health.IsEligible(carrier) {
		return nil, fmt.Errorf("%w: %s", domain.ErrCarrierDown, carrier)
	}

	callCtx, cancel := context.WithTimeout(ctx, d.callTimeout)
	defer cancel()

	result, err := adapter.TrackShipment(callCtx, trackingNumber)
	d.observe(carrier, "track", err)
	if err != nil {
		return nil, fmt.Errorf("carrier %s tracking failed: %w", carrier, err)
	}

	return result, nil
}

// Pickup schedules a pickup with one carrier.
func (d *Dispatcher) Pickup(ctx context.Context, carrier domain.CarrierID, req domain.ShipmentRequest) (*domain.PickupResult, error) {
	adapter, err := d.registry.Get(carrier)
	if err != nil {
		return nil, err
	}

	if !d.health.IsEligible(carrier) {
		return nil, fmt.Errorf("%w: %s", domain.ErrCarrierDown, carrier)
	}

	callCtx, cancel := context.WithTimeout(ctx, d.callTimeout)
	defer cancel()

	result, err := adapter.SchedulePickup(callCtx, req)
	d.observe(carrier, "pickup", err)
	if err != nil {
		return nil, fmt.Errorf("carrier %s pickup failed: %w", carrier, err)
	}

	return result, nil
}

func (d *Dispatcher) observe(carrier domain.CarrierID, op string, err error) {
	d.health.Observe(carrier, err)

	if err != nil && !domain.Abstained(err) {
		d.logger.Warn("Carrier call failed",
			zap.String("carrier", string(carrier)),
			zap.String("operation", op),
			zap.Error(err),
		)
	}
}
