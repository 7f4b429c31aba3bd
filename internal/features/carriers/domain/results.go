package domain

import "time"

// Quote is a priced, time-bound offer from one carrier for a shipment.
// It is immutable once returned by an adapter.
type Quote struct {
	// Carrier is the carrier that produced the offer.
	Carrier CarrierID `json:"carrier"`
	// Amount is the total price. Always non-negative.
	Amount float64 `json:"amount"`
	// Currency is the ISO 4217 currency code of Amount.
	Currency string `json:"currency"`
	// EstimatedDays is the carrier's transit time estimate.
	EstimatedDays int `json:"estimated_days"`
	// ValidUntil is the deadline after which the offer expires.
	ValidUntil time.Time `json:"valid_until"`
	// Breakdown is an opaque per-carrier price breakdown.
	Breakdown map[string]float64 `json:"breakdown,omitempty"`
}

// Better reports whether q should be preferred over other when both quotes
// succeeded: lowest amount wins, ties broken by shortest transit estimate,
// then by lexicographically smallest carrier id so selection is deterministic.
func (q Quote) Better(other Quote) bool {
	if q.Amount != other.Amount {
		return q.Amount < other.Amount
	}

	if q.EstimatedDays != other.EstimatedDays {
		return q.EstimatedDays < other.EstimatedDays
	}

	return q.Carrier < other.Carrier
}

// LabelResult is the outcome of generating a shipping label.
type LabelResult struct {
	// Carrier is the carrier that produced the label.
	Carrier CarrierID `json:"carrier"`
	// TrackingNumber is the carrier-assigned tracking identifier.
	TrackingNumber string `json:"tracking_number"`
	// LabelURL points at the printable label document.
	LabelURL string `json:"label_url,omitempty"`
	// LabelData is the raw label payload when the carrier returns it inline.
	LabelData []byte `json:"label_data,omitempty"`
}

// TrackingEvent is a single checkpoint in a shipment's history.
type TrackingEvent struct {
	// Date is when the event occurred.
	Date time.Time `json:"date"`
	// Description is the carrier's event text.
	Description string `json:"description"`
	// City is where the event occurred.
	City string `json:"city,omitempty"`
	// Code is the carrier-specific status code.
	Code string `json:"code,omitempty"`
}

// TrackingResult is the outcome of a tracking lookup.
type TrackingResult struct {
	// Carrier is the carrier that answered the lookup.
	Carrier CarrierID `json:"carrier"`
	// TrackingNumber is the queried tracking identifier.
	TrackingNumber string `json:"tracking_number"`
	// Status is the carrier's current shipment status.
	Status string `json:"status"`
	// Events are the chronological checkpoints reported by the carrier.
	Events []TrackingEvent `json:"events"`
}

// PickupResult is the outcome of scheduling a pickup.
type PickupResult struct {
	// Carrier is the carrier that confirmed the pickup.
	Carrier CarrierID `json:"carrier"`
	// ConfirmationNumber is the carrier's pickup confirmation identifier.
	ConfirmationNumber string `json:"confirmation_number"`
	// ScheduledFor is the confirmed pickup date.
	ScheduledFor time.Time `json:"scheduled_for"`
}
