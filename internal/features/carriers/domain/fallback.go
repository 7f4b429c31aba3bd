package domain

import "time"

// RouteWildcard matches any route with no specific priority list.
const RouteWildcard = "*"

// FallbackFromPrimary is the from-carrier sentinel recorded when a fallback
// happened because the caller's pinned carrier failed.
const FallbackFromPrimary CarrierID = "PRIMARY"

// FallbackPriorityList is the ordered carrier preference for one route.
// Each carrier appears at most once.
type FallbackPriorityList struct {
	// Route is the origin-destination key ("CO-US") or RouteWildcard.
	Route string `json:"route"`
	// Carriers is the ordered preference list, most preferred first.
	Carriers []CarrierID `json:"carriers"`
	// Active disables the list without deleting it when false.
	Active bool `json:"active"`
}

// NewFallbackPriorityList builds a validated priority list for a route.
func NewFallbackPriorityList(route string, carriers []CarrierID) (FallbackPriorityList, error) {
	seen := make(map[CarrierID]bool, len(carriers))
	for _, c := range carriers {
		if seen[c] {
			return FallbackPriorityList{}, ErrDuplicateCarrier
		}
		seen[c] = true
	}

	return FallbackPriorityList{
		Route:    route,
		Carriers: append([]CarrierID(nil), carriers...),
		Active:   true,
	}, nil
}

// FallbackEvent records one carrier substitution. Append-only; never mutated
// after creation.
type FallbackEvent struct {
	// ID is a unique event identifier.
	ID string `json:"id"`
	// Route is the routing key the substitution happened on.
	Route string `json:"route"`
	// Reference is the caller's order or context identifier, if any.
	Reference string `json:"reference,omitempty"`
	// From is the carrier that failed or was excluded (FallbackFromPrimary for pinned requests).
	From CarrierID `json:"from"`
	// To is the carrier that ultimately served the request.
	To CarrierID `json:"to"`
	// Reason describes why the fallback happened.
	Reason string `json:"reason"`
	// OccurredAt is when the substitution was recorded.
	OccurredAt time.Time `json:"occurred_at"`
}
