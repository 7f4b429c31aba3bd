package service

import (
	"errors"
	"sync"
	"time"

	"carrier-hub/internal/core/logger"
	"carrier-hub/internal/features/carriers/domain"

	"go.uber.org/zap"
)

// HealthTracker keeps per-carrier reliability state and gates dispatch.
// Records are created lazily on the first update, mutated on every adapter
// call outcome, and never deleted. All methods are safe for concurrent use;
// updates are applied atomically per carrier.
type HealthTracker struct {
	mu      sync.RWMutex
	records map[domain.CarrierID]*domain.CarrierHealth

	// retryAfter is how long a Down carrier stays blocked before it is
	// granted a single trial call. Zero disables trials entirely.
	retryAfter time.Duration

	now    func() time.Time
	logger *zap.Logger
}

// NewHealthTracker creates a tracker with the given Down retry window.
func NewHealthTracker(retryAfter time.Duration) *HealthTracker {
	return &HealthTracker{
		records:    make(map[domain.CarrierID]*domain.CarrierHealth),
		retryAfter: retryAfter,
		now:        time.Now,
		logger:     logger.Get(),
	}
}

func (t *HealthTracker) record(carrier domain.CarrierID) *domain.CarrierHealth {
	rec, ok := t.records[carrier]
	if !ok {
		rec = &domain.CarrierHealth{
			Carrier: carrier,
			Status:  domain.HealthOperational,
		}
		t.records[carrier] = rec
	}
	return rec
}

// RecordSuccess resets the failure counter and marks the carrier Operational.
func (t *HealthTracker) RecordSuccess(carrier domain.CarrierID) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec := t.record(carrier)
	rec.ConsecutiveFailures = 0
	rec.Status = domain.HealthOperational
	rec.LastCheck = t.now()
	rec.LastSuccess = rec.LastCheck
	rec.LastError = ""
}

// RecordFailure increments the failure counter and recomputes the status.
func (t *HealthTracker) RecordFailure(carrier domain.CarrierID, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec := t.record(carrier)
	rec.ConsecutiveFailures++
	rec.Status = domain.StatusForFailures(rec.ConsecutiveFailures)
	rec.LastCheck = t.now()
	if err != nil {
		rec.LastError = err.Error()
	}

	if rec.Status != domain.HealthOperational {
		t.logger.Warn("Carrier health degraded",
			zap.String("carrier", string(carrier)),
			zap.String("status", string(rec.Status)),
			zap.Int("consecutive_failures", rec.ConsecutiveFailures),
		)
	}
}

// Observe applies the health policy to one adapter call outcome. Successes
// and abstentions (the carrier answered, it just has no offer) reset the
// counter; caller-input errors leave health untouched; everything else counts
// as a failure.
func (t *HealthTracker) Observe(carrier domain.CarrierID, err error) {
	switch {
	case err == nil:
		t.RecordSuccess(carrier)
	case domain.Abstained(err):
		// Reachable carrier. Only reset when the remote actually answered;
		// invalid-request errors say nothing about the carrier either way.
		if errors.Is(err, domain.ErrNoServiceAvailable) {
			t.RecordSuccess(carrier)
		}
	default:
		t.RecordFailure(carrier, err)
	}
}

// IsEligible reports whether the carrier may be dispatched to. Operational and
// Degraded carriers are always eligible. A Down carrier becomes eligible for
// one trial call after the retry window elapses; granting the trial re-arms
// the window so concurrent callers cannot stampede a recovering carrier.
func (t *HealthTracker) IsEligible(carrier domain.CarrierID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	rec, ok := t.records[carrier]
	if !ok || rec.Status != domain.HealthDown {
		return true
	}

	if t.retryAfter > 0 && t.now().Sub(rec.LastCheck) >= t.retryAfter {
		rec.LastCheck = t.now()
		t.logger.Info("Granting trial call to down carrier",
			zap.String("carrier", string(carrier)),
		)
		return true
	}

	return false
}

// Snapshot returns a read-only copy of the carrier's health record. Carriers
// with no recorded outcome yet report as Operational.
func (t *HealthTracker) Snapshot(carrier domain.CarrierID) domain.CarrierHealth {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if rec, ok := t.records[carrier]; ok {
		return *rec
	}

	return domain.CarrierHealth{
		Carrier: carrier,
		Status:  domain.HealthOperational,
	}
}
