package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"carrier-hub/internal/core/logger"
	"carrier-hub/internal/features/carriers/domain"

	"go.uber.org/zap"
)

// RESTAdapter is a thin mapper between the generic shipment schema and a
// carrier gateway's JSON REST API. One instance serves one carrier; the
// vendor-specific payload shaping lives behind the gateway, so the adapter
// only translates requests, responses and HTTP status codes onto the domain
// contract. Stateless apart from the shared http.Client, so it is safe for
// the aggregator's concurrent fan-out.
type RESTAdapter struct {
	carrier domain.CarrierID
	baseURL string
	apiKey  string
	client  *http.Client
	logger  *zap.Logger
}

// NewRESTAdapter creates an adapter for one carrier gateway.
func NewRESTAdapter(carrier domain.CarrierID, baseURL, apiKey string, client *http.Client) *RESTAdapter {
	return &RESTAdapter{
		carrier: carrier,
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  client,
		logger:  logger.Get(),
	}
}

// Carrier returns the identifier this adapter serves.
func (a *RESTAdapter) Carrier() domain.CarrierID {
	return a.carrier
}

// quoteResponse is the gateway's quote payload.
type quoteResponse struct {
	Amount        float64            `json:"amount"`
	Currency      string             `json:"currency"`
	EstimatedDays int                `json:"estimated_days"`
	ValidUntil    time.Time          `json:"valid_until"`
	Breakdown     map[string]float64 `json:"breakdown"`
}

// GetQuote prices the shipment via POST /quotes.
func (a *RESTAdapter) GetQuote(ctx context.Context, req domain.ShipmentRequest) (*domain.Quote, error) {
	var resp quoteResponse
	if err := a.post(ctx, "/quotes", req, &resp); err != nil {
		return nil, err
	}

	if resp.Currency == "" {
		return nil, fmt.Errorf("%w: gateway returned quote without currency", domain.ErrCarrierUnavailable)
	}

	if resp.Amount < 0 {
		return nil, fmt.Errorf("%w: gateway returned negative amount", domain.ErrCarrierUnavailable)
	}

	return &domain.Quote{
		Carrier:       a.carrier,
		Amount:        resp.Amount,
		Currency:      resp.Currency,
		EstimatedDays: resp.EstimatedDays,
		ValidUntil:    resp.ValidUntil,
		Breakdown:     resp.Breakdown,
	}, nil
}

// labelResponse is the gateway's label payload.
type labelResponse struct {
	TrackingNumber string `json:"tracking_number"`
	LabelURL       string `json:"label_url"`
	LabelData      []byte `json:"label_data"`
}

// GenerateLabel books the shipment via POST /labels.
func (a *RESTAdapter) GenerateLabel(ctx context.Context, req domain.ShipmentRequest) (*domain.LabelResult, error) {
	var resp labelResponse
	if err := a.post(ctx, "/labels", req, &resp); err != nil {
		return nil, err
	}

	return &domain.LabelResult{
		Carrier:        a.carrier,
		TrackingNumber: resp.TrackingNumber,
		LabelURL:       resp.LabelURL,
		LabelData:      resp.LabelData,
	}, nil
}

// trackingResponse is the gateway's tracking payload.
type trackingResponse struct {
	Status string `json:"status"`
	Events []struct {
		Date        time.Time `json:"date"`
		Description string    `json:"description"`
		City        string    `json:"city"`
		Code        string    `json:"code"`
	} `json:"events"`
}

// TrackShipment retrieves history via GET /tracking/{number}.
func (a *RESTAdapter) TrackShipment(ctx context.Context, trackingNumber string) (*domain.TrackingResult, error) {
	var resp trackingResponse
	if err := a.get(ctx, "/tracking/"+url.PathEscape(trackingNumber), &resp); err != nil {
		return nil, err
	}

	result := &domain.TrackingResult{
		Carrier:        a.carrier,
		TrackingNumber: trackingNumber,
		Status:         resp.Status,
		Events:         make([]domain.TrackingEvent, 0, len(resp.Events)),
	}

	for _, ev := range resp.Events {
		result.Events = append(result.Events, domain.TrackingEvent{
			Date:        ev.Date,
			Description: ev.Description,
			City:        ev.City,
			Code:        ev.Code,
		})
	}

	return result, nil
}

// pickupResponse is the gateway's pickup payload.
type pickupResponse struct {
	ConfirmationNumber string    `json:"confirmation_number"`
	ScheduledFor       time.Time `json:"scheduled_for"`
}

// SchedulePickup books a pickup via POST /pickups.
func (a *RESTAdapter) SchedulePickup(ctx context.Context, req domain.ShipmentRequest) (*domain.PickupResult, error) {
	var resp pickupResponse
	if err := a.post(ctx, "/pickups", req, &resp); err != nil {
		return nil, err
	}

	return &domain.PickupResult{
		Carrier:            a.carrier,
		ConfirmationNumber: resp.ConfirmationNumber,
		ScheduledFor:       resp.ScheduledFor,
	}, nil
}

func (a *RESTAdapter) post(ctx context.Context, path string, body any, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal gateway request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build gateway request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return a.do(req, out)
}

func (a *RESTAdapter) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build gateway request: %w", err)
	}

	return a.do(req, out)
}

func (a *RESTAdapter) do(req *http.Request, out any) error {
	if a.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.apiKey)
	}

	resp, err := a.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s", domain.ErrCarrierUnavailable, err)
	}
	defer resp.Body.Close()

	if err := a.checkStatus(resp); err != nil {
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to parse gateway response: %s", domain.ErrCarrierUnavailable, err)
	}

	return nil
}

// checkStatus maps gateway HTTP statuses onto the domain error taxonomy.
// 404 and 422 mean the carrier has no product for the route, which the
// aggregator treats as an abstention rather than a fault.
func (a *RESTAdapter) checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusBadRequest:
		return fmt.Errorf("%w: gateway rejected request (status %d)", domain.ErrInvalidRequest, resp.StatusCode)
	case resp.StatusCode == http.StatusNotFound, resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: carrier %s has no offer (status %d)", domain.ErrNoServiceAvailable, a.carrier, resp.StatusCode)
	default:
		return fmt.Errorf("%w: gateway returned status %d", domain.ErrCarrierUnavailable, resp.StatusCode)
	}
}
