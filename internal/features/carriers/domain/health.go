package domain

import "time"

// HealthStatus represents the derived reliability state of a carrier.
type HealthStatus string

const (
	// HealthOperational indicates the carrier is healthy and dispatchable.
	HealthOperational HealthStatus = "OPERATIONAL"
	// HealthDegraded indicates repeated recent failures; the carrier is still tried but flagged.
	HealthDegraded HealthStatus = "DEGRADED"
	// HealthDown indicates the circuit is open and dispatch is blocked.
	HealthDown HealthStatus = "DOWN"
)

// Failure thresholds for the health state machine. Status is always a pure
// function of the consecutive-failure counter.
const (
	// DegradedThreshold is the consecutive-failure count at which a carrier becomes Degraded.
	DegradedThreshold = 3
	// DownThreshold is the consecutive-failure count at which a carrier becomes Down.
	DownThreshold = 5
)

// StatusForFailures derives the health status from a consecutive-failure count.
func StatusForFailures(consecutiveFailures int) HealthStatus {
	switch {
	case consecutiveFailures >= DownThreshold:
		return HealthDown
	case consecutiveFailures >= DegradedThreshold:
		return HealthDegraded
	default:
		return HealthOperational
	}
}

// CarrierHealth is the per-carrier reliability record. Created lazily with
// default Operational state on the first update and overwritten on every
// adapter call outcome afterwards.
type CarrierHealth struct {
	// Carrier is the carrier this record describes.
	Carrier CarrierID `json:"carrier"`
	// Status is the derived state per StatusForFailures.
	Status HealthStatus `json:"status"`
	// ConsecutiveFailures counts failures since the last success.
	ConsecutiveFailures int `json:"consecutive_failures"`
	// LastCheck is when the record was last updated.
	LastCheck time.Time `json:"last_check"`
	// LastSuccess is when the carrier last answered successfully.
	LastSuccess time.Time `json:"last_success,omitempty"`
	// LastError is the most recent failure message, empty while healthy.
	LastError string `json:"last_error,omitempty"`
}
