package domain

import "errors"

// Error taxonomy shared by adapters and the orchestration layer. Adapters map
// their vendor-specific failures onto these sentinels (wrapped with %w) so the
// aggregator and router can tell a broken carrier from one that merely has no
// offer for the route.
var (
	// ErrInvalidRequest indicates the input failed carrier-side validation. Caller error, not retryable.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrCarrierUnavailable indicates a transient network, timeout or auth failure at the carrier.
	ErrCarrierUnavailable = errors.New("carrier unavailable")
	// ErrNoServiceAvailable indicates the carrier has no product for this route or service.
	// The aggregator treats it as an abstention, not a carrier fault.
	ErrNoServiceAvailable = errors.New("no service available for route")
	// ErrCarrierDown indicates the carrier's circuit is open; no remote call was attempted.
	ErrCarrierDown = errors.New("carrier is down")
	// ErrCarrierNotRegistered indicates no adapter is registered for the carrier.
	ErrCarrierNotRegistered = errors.New("carrier not registered")
	// ErrNoCarriersAvailable indicates aggregation found zero eligible or successful carriers.
	ErrNoCarriersAvailable = errors.New("no carriers available")
	// ErrNoFallbackConfigured indicates the route has no priority list to walk.
	ErrNoFallbackConfigured = errors.New("no fallback priority configured for route")
	// ErrAllCarriersExhausted indicates every carrier in the priority list was tried and failed.
	ErrAllCarriersExhausted = errors.New("all fallback carriers exhausted")
	// ErrDuplicateCarrier indicates a priority list names the same carrier twice.
	ErrDuplicateCarrier = errors.New("duplicate carrier in priority list")
)

// Abstained reports whether err is a business-level "no offer" rather than a
// carrier fault. Abstentions never count against carrier health.
func Abstained(err error) bool {
	return errors.Is(err, ErrNoServiceAvailable) || errors.Is(err, ErrInvalidRequest)
}
