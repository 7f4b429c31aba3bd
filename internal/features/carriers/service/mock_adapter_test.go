package service

import (
	"context"
	"sync/atomic"

	"carrier-hub/internal/features/carriers/domain"
)

// mockAdapter is a configurable CarrierAdapter used across the service tests.
// Call counters are atomic because the aggregator invokes adapters from
// multiple goroutines.
type mockAdapter struct {
	id domain.CarrierID

	quote    *domain.Quote
	quoteErr error

	label    *domain.LabelResult
	labelErr error

	tracking    *domain.TrackingResult
	trackingErr error

	pickup    *domain.PickupResult
	pickupErr error

	quoteCalls  atomic.Int32
	labelCalls  atomic.Int32
	trackCalls  atomic.Int32
	pickupCalls atomic.Int32
}

func newMockAdapter(id domain.CarrierID) *mockAdapter {
	return &mockAdapter{id: id}
}

func (m *mockAdapter) withQuote(amount float64, days int) *mockAdapter {
	m.quote = &domain.Quote{
		Carrier:       m.id,
		Amount:        amount,
		Currency:      "USD",
		EstimatedDays: days,
	}
	return m
}

func (m *mockAdapter) withQuoteErr(err error) *mockAdapter {
	m.quoteErr = err
	return m
}

func (m *mockAdapter) Carrier() domain.CarrierID {
	return m.id
}

func (m *mockAdapter) GetQuote(ctx context.Context, req domain.ShipmentRequest) (*domain.Quote, error) {
	m.quoteCalls.Add(1)
	if m.quoteErr != nil {
		return nil, m.quoteErr
	}
	return m.quote, nil
}

func (m *mockAdapter) GenerateLabel(ctx context.Context, req domain.ShipmentRequest) (*domain.LabelResult, error) {
	m.labelCalls.Add(1)
	if m.labelErr != nil {
		return nil, m.labelErr
	}
	return m.label, nil
}

func (m *mockAdapter) TrackShipment(ctx context.Context, trackingNumber string) (*domain.TrackingResult, error) {
	m.trackCalls.Add(1)
	if m.trackingErr != nil {
		return nil, m.trackingErr
	}
	return m.tracking, nil
}

func (m *mockAdapter) SchedulePickup(ctx context.Context, req domain.ShipmentRequest) (*domain.PickupResult, error) {
	m.pickupCalls.Add(1)
	if m.pickupErr != nil {
		return nil, m.pickupErr
	}
	return m.pickup, nil
}

// mockEventSink records fallback events in memory.
type mockEventSink struct {
	events []domain.FallbackEvent
}

func (s *mockEventSink) Append(ctx context.Context, event domain.FallbackEvent) error {
	s.events = append(s.events, event)
	return nil
}

func (s *mockEventSink) Recent(ctx context.Context, route string, limit int) ([]domain.FallbackEvent, error) {
	var out []domain.FallbackEvent
	for i := len(s.events) - 1; i >= 0 && len(out) < limit; i-- {
		if s.events[i].Route == route {
			out = append(out, s.events[i])
		}
	}
	return out, nil
}

func testRequest() domain.ShipmentRequest {
	return domain.ShipmentRequest{
		Origin:      domain.Address{City: "Bogota", CountryCode: "CO"},
		Destination: domain.Address{City: "Miami", CountryCode: "US"},
		Packages: []domain.Package{
			{WeightKg: 1.5, LengthCm: 20, WidthCm: 15, HeightCm: 10, DeclaredValue: 50},
		},
		Service: domain.ServiceTypeStandard,
	}
}
