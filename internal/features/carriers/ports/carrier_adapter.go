package ports

import (
	"context"

	"carrier-hub/internal/features/carriers/domain"
)

// CarrierAdapter defines the uniform contract every carrier integration
// implements. Implementations map the generic request onto the vendor's wire
// format, perform the remote call, and translate failures onto the domain
// error taxonomy. Adapters must be safe for concurrent use: the quote
// aggregator fans out one request to many adapters in parallel.
type CarrierAdapter interface {
	// Carrier returns the identifier this adapter serves.
	Carrier() domain.CarrierID

	// GetQuote prices the shipment. Returns domain.ErrNoServiceAvailable when
	// the carrier has no product for the route (an abstention, not a fault).
	GetQuote(ctx context.Context, req domain.ShipmentRequest) (*domain.Quote, error)

	// GenerateLabel books the shipment and returns the label and tracking number.
	GenerateLabel(ctx context.Context, req domain.ShipmentRequest) (*domain.LabelResult, error)

	// TrackShipment retrieves the current status and history for a tracking number.
	TrackShipment(ctx context.Context, trackingNumber string) (*domain.TrackingResult, error)

	// SchedulePickup books a pickup at the request's origin for its pickup date.
	SchedulePickup(ctx context.Context, req domain.ShipmentRequest) (*domain.PickupResult, error)
}
