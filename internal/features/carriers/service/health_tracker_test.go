package service

import (
	"errors"
	"testing"
	"time"

	"carrier-hub/internal/features/carriers/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestHealthTracker_StatusTransitions verifies the Operational/Degraded/Down
// thresholds at exactly 3 and 5 consecutive failures.
func TestHealthTracker_StatusTransitions(t *testing.T) {
	tracker := NewHealthTracker(0)
	carrier := domain.CarrierID("dhl")
	failure := errors.New("connection refused")

	assert.Equal(t, domain.HealthOperational, tracker.Snapshot(carrier).Status)

	tracker.RecordFailure(carrier, failure)
	tracker.RecordFailure(carrier, failure)
	assert.Equal(t, domain.HealthOperational, tracker.Snapshot(carrier).Status)

	tracker.RecordFailure(carrier, failure)
	assert.Equal(t, domain.HealthDegraded, tracker.Snapshot(carrier).Status)
	assert.Equal(t, 3, tracker.Snapshot(carrier).ConsecutiveFailures)

	tracker.RecordFailure(carrier, failure)
	assert.Equal(t, domain.HealthDegraded, tracker.Snapshot(carrier).Status)

	tracker.RecordFailure(carrier, failure)
	assert.Equal(t, domain.HealthDown, tracker.Snapshot(carrier).Status)
	assert.Equal(t, 5, tracker.Snapshot(carrier).ConsecutiveFailures)
}

// TestHealthTracker_SuccessResets verifies any success resets the counter and status.
func TestHealthTracker_SuccessResets(t *testing.T) {
	tracker := NewHealthTracker(0)
	carrier := domain.CarrierID("fedex")
	failure := errors.New("timeout")

	for i := 0; i < 5; i++ {
		tracker.RecordFailure(carrier, failure)
	}
	require.Equal(t, domain.HealthDown, tracker.Snapshot(carrier).Status)

	tracker.RecordSuccess(carrier)

	snap := tracker.Snapshot(carrier)
	assert.Equal(t, domain.HealthOperational, snap.Status)
	assert.Equal(t, 0, snap.ConsecutiveFailures)
	assert.Empty(t, snap.LastError)
	assert.False(t, snap.LastSuccess.IsZero())
}

// TestHealthTracker_IsEligible verifies Degraded carriers stay eligible and
// Down carriers are blocked.
func TestHealthTracker_IsEligible(t *testing.T) {
	tracker := NewHealthTracker(0)
	carrier := domain.CarrierID("ups")
	failure := errors.New("boom")

	assert.True(t, tracker.IsEligible(carrier))

	for i := 0; i < 4; i++ {
		tracker.RecordFailure(carrier, failure)
	}
	assert.True(t, tracker.IsEligible(carrier), "degraded carriers remain eligible")

	tracker.RecordFailure(carrier, failure)
	assert.False(t, tracker.IsEligible(carrier))
}

// TestHealthTracker_TrialAfterRetryWindow verifies a Down carrier gets exactly
// one trial call once the retry window elapses.
func TestHealthTracker_TrialAfterRetryWindow(t *testing.T) {
	tracker := NewHealthTracker(5 * time.Minute)
	carrier := domain.CarrierID("dhl")

	now := time.Now()
	tracker.now = func() time.Time { return now }

	for i := 0; i < 5; i++ {
		tracker.RecordFailure(carrier, errors.New("down"))
	}
	require.False(t, tracker.IsEligible(carrier))

	// Window not yet elapsed.
	now = now.Add(4 * time.Minute)
	assert.False(t, tracker.IsEligible(carrier))

	// Window elapsed: one trial granted, then blocked again until the next window.
	now = now.Add(2 * time.Minute)
	assert.True(t, tracker.IsEligible(carrier))
	assert.False(t, tracker.IsEligible(carrier))

	// A successful trial closes the circuit for good.
	tracker.RecordSuccess(carrier)
	assert.True(t, tracker.IsEligible(carrier))
	assert.True(t, tracker.IsEligible(carrier))
}

// TestHealthTracker_Observe verifies the outcome policy: abstentions never
// count against health.
func TestHealthTracker_Observe(t *testing.T) {
	tracker := NewHealthTracker(0)
	carrier := domain.CarrierID("servientrega")

	tracker.Observe(carrier, domain.ErrCarrierUnavailable)
	assert.Equal(t, 1, tracker.Snapshot(carrier).ConsecutiveFailures)

	// No offer for the route: carrier answered, counter resets.
	tracker.Observe(carrier, domain.ErrNoServiceAvailable)
	assert.Equal(t, 0, tracker.Snapshot(carrier).ConsecutiveFailures)

	tracker.Observe(carrier, domain.ErrCarrierUnavailable)

	// Caller input error: says nothing about the carrier, counter untouched.
	tracker.Observe(carrier, domain.ErrInvalidRequest)
	assert.Equal(t, 1, tracker.Snapshot(carrier).ConsecutiveFailures)

	tracker.Observe(carrier, nil)
	assert.Equal(t, 0, tracker.Snapshot(carrier).ConsecutiveFailures)
}

// TestHealthTracker_Snapshot_Copy verifies snapshots do not expose internal state.
func TestHealthTracker_Snapshot_Copy(t *testing.T) {
	tracker := NewHealthTracker(0)
	carrier := domain.CarrierID("dhl")

	tracker.RecordFailure(carrier, errors.New("x"))

	snap := tracker.Snapshot(carrier)
	snap.ConsecutiveFailures = 99

	assert.Equal(t, 1, tracker.Snapshot(carrier).ConsecutiveFailures)
}
