package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"carrier-hub/internal/core/logger"
	"carrier-hub/internal/features/carriers/domain"

	"go.uber.org/zap"
)

// QuoteAggregator fans one shipment request out to every healthy registered
// carrier concurrently, discards the failures, and returns the cheapest quote.
// All candidates are always attempted; a slow carrier only costs its own
// per-call timeout and never delays the others.
type QuoteAggregator struct {
	registry *Registry
	health   *HealthTracker
	timeout  time.Duration
	logger   *zap.Logger
}

// NewQuoteAggregator creates an aggregator with the given per-candidate timeout.
func NewQuoteAggregator(registry *Registry, health *HealthTracker, timeout time.Duration) *QuoteAggregator {
	return &QuoteAggregator{
		registry: registry,
		health:   health,
		timeout:  timeout,
		logger:   logger.Get(),
	}
}

type quoteOutcome struct {
	carrier domain.CarrierID
	quote   *domain.Quote
	err     error
}

// GetBestQuote returns the cheapest quote among all eligible carriers. Ties
// are broken by shortest transit estimate, then by smallest carrier id, so
// the winner is deterministic for any fixed set of outcomes. Individual
// carrier failures are absorbed into health state; the caller only sees an
// error when no candidate produced a quote.
func (a *QuoteAggregator) GetBestQuote(ctx context.Context, req domain.ShipmentRequest) (*domain.Quote, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidRequest, err)
	}

	var candidates []domain.CarrierID
	for _, carrier := range a.registry.List() {
		if a.health.IsEligible(carrier) {
			candidates = append(candidates, carrier)
		}
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no eligible carriers for route %s", domain.ErrNoCarriersAvailable, req.Route())
	}

	outcomes := make(chan quoteOutcome, len(candidates))
	for _, carrier := range candidates {
		go a.quoteOne(ctx, carrier, req, outcomes)
	}

	var best *domain.Quote
	successes := 0

	for range candidates {
		outcome := <-outcomes

		a.health.Observe(outcome.carrier, outcome.err)

		if outcome.err != nil {
			if !domain.Abstained(outcome.err) {
				a.logger.Warn("Quote candidate failed",
					zap.String("carrier", string(outcome.carrier)),
					zap.Error(outcome.err),
				)
			}
			continue
		}

		successes++
		if best == nil || outcome.quote.Better(*best) {
			best = outcome.quote
		}
	}

	if best == nil {
		return nil, fmt.Errorf("%w: all %d candidates failed (%s)",
			domain.ErrNoCarriersAvailable, len(candidates), joinCarriers(candidates))
	}

	a.logger.Info("Best quote selected",
		zap.String("carrier", string(best.Carrier)),
		zap.Float64("amount", best.Amount),
		zap.Int("candidates", len(candidates)),
		zap.Int("successes", successes),
	)

	return best, nil
}

func (a *QuoteAggregator) quoteOne(ctx context.Context, carrier domain.CarrierID, req domain.ShipmentRequest, out chan<- quoteOutcome) {
	adapter, err := a.registry.Get(carrier)
	if err != nil {
		out <- quoteOutcome{carrier: carrier, err: err}
		return
	}

	callCtx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	quote, err := adapter.GetQuote(callCtx, req)
	if err != nil {
		out <- quoteOutcome{carrier: carrier, err: err}
		return
	}

	out <- quoteOutcome{carrier: carrier, quote: quote}
}

func joinCarriers(carriers []domain.CarrierID) string {
	names := make([]string, len(carriers))
	for i, c := range carriers {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
