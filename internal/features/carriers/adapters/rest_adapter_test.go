package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carrier-hub/internal/features/carriers/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testShipment() domain.ShipmentRequest {
	return domain.ShipmentRequest{
		Origin:      domain.Address{CountryCode: "CO", City: "Bogota", PostalCode: "110111", Line: "Cra 7 # 71-21"},
		Destination: domain.Address{CountryCode: "US", City: "Miami", PostalCode: "33101", Line: "100 Biscayne Blvd"},
		Packages:    []domain.Package{{WeightKg: 2, LengthCm: 30, WidthCm: 20, HeightCm: 10}},
		Service:     domain.ServiceTypeStandard,
	}
}

func TestRESTAdapter_GetQuote(t *testing.T) {
	var gotAuth string
	var gotBody domain.ShipmentRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/quotes", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		json.NewEncoder(w).Encode(quoteResponse{
			Amount:        42.5,
			Currency:      "USD",
			EstimatedDays: 3,
			ValidUntil:    time.Now().Add(time.Hour),
			Breakdown:     map[string]float64{"base": 40, "fuel": 2.5},
		})
	}))
	defer server.Close()

	adapter := NewRESTAdapter("dhl", server.URL, "secret-key", server.Client())

	quote, err := adapter.GetQuote(context.Background(), testShipment())

	require.NoError(t, err)
	assert.Equal(t, "Bearer secret-key", gotAuth)
	assert.Equal(t, "CO", gotBody.Origin.CountryCode)
	assert.Equal(t, domain.CarrierID("dhl"), quote.Carrier)
	assert.Equal(t, 42.5, quote.Amount)
	assert.Equal(t, "USD", quote.Currency)
	assert.Equal(t, 3, quote.EstimatedDays)
	assert.Equal(t, 2.5, quote.Breakdown["fuel"])
}

func TestRESTAdapter_GetQuote_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"bad request", http.StatusBadRequest, domain.ErrInvalidRequest},
		{"no product for route", http.StatusNotFound, domain.ErrNoServiceAvailable},
		{"unprocessable route", http.StatusUnprocessableEntity, domain.ErrNoServiceAvailable},
		{"gateway error", http.StatusInternalServerError, domain.ErrCarrierUnavailable},
		{"rate limited", http.StatusTooManyRequests, domain.ErrCarrierUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			adapter := NewRESTAdapter("fedex", server.URL, "", server.Client())

			_, err := adapter.GetQuote(context.Background(), testShipment())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRESTAdapter_GetQuote_InvalidPayload(t *testing.T) {
	t.Run("missing currency", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(quoteResponse{Amount: 10})
		}))
		defer server.Close()

		adapter := NewRESTAdapter("ups", server.URL, "", server.Client())

		_, err := adapter.GetQuote(context.Background(), testShipment())
		assert.ErrorIs(t, err, domain.ErrCarrierUnavailable)
		assert.Contains(t, err.Error(), "without currency")
	})

	t.Run("negative amount", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(quoteResponse{Amount: -1, Currency: "USD"})
		}))
		defer server.Close()

		adapter := NewRESTAdapter("ups", server.URL, "", server.Client())

		_, err := adapter.GetQuote(context.Background(), testShipment())
		assert.ErrorIs(t, err, domain.ErrCarrierUnavailable)
	})

	t.Run("malformed json", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("not json"))
		}))
		defer server.Close()

		adapter := NewRESTAdapter("ups", server.URL, "", server.Client())

		_, err := adapter.GetQuote(context.Background(), testShipment())
		assert.ErrorIs(t, err, domain.ErrCarrierUnavailable)
	})
}

func TestRESTAdapter_GetQuote_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	adapter := NewRESTAdapter("dhl", server.URL, "", &http.Client{Timeout: time.Second})

	_, err := adapter.GetQuote(context.Background(), testShipment())
	assert.ErrorIs(t, err, domain.ErrCarrierUnavailable)
}

func TestRESTAdapter_GenerateLabel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/labels", r.URL.Path)
		json.NewEncoder(w).Encode(labelResponse{
			TrackingNumber: "DHL-998877",
			LabelURL:       "https://labels.example.com/DHL-998877.pdf",
		})
	}))
	defer server.Close()

	adapter := NewRESTAdapter("dhl", server.URL, "", server.Client())

	label, err := adapter.GenerateLabel(context.Background(), testShipment())

	require.NoError(t, err)
	assert.Equal(t, domain.CarrierID("dhl"), label.Carrier)
	assert.Equal(t, "DHL-998877", label.TrackingNumber)
	assert.Equal(t, "https://labels.example.com/DHL-998877.pdf", label.LabelURL)
}

func TestRESTAdapter_TrackShipment(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/tracking/SV%2F99", r.URL.EscapedPath())

		json.NewEncoder(w).Encode(map[string]any{
			"status": "DELIVERED",
			"events": []map[string]any{
				{"date": time.Now().Format(time.RFC3339), "description": "Delivered", "city": "Miami", "code": "DLV"},
				{"date": time.Now().Add(-time.Hour).Format(time.RFC3339), "description": "Out for delivery", "city": "Miami", "code": "OFD"},
			},
		})
	}))
	defer server.Close()

	adapter := NewRESTAdapter("servientrega", server.URL, "", server.Client())

	result, err := adapter.TrackShipment(context.Background(), "SV/99")

	require.NoError(t, err)
	assert.Equal(t, "SV/99", result.TrackingNumber)
	assert.Equal(t, "DELIVERED", result.Status)
	require.Len(t, result.Events, 2)
	assert.Equal(t, "DLV", result.Events[0].Code)
	assert.Equal(t, "Miami", result.Events[0].City)
}

func TestRESTAdapter_SchedulePickup(t *testing.T) {
	scheduled := time.Date(2026, 9, 2, 10, 0, 0, 0, time.UTC)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/pickups", r.URL.Path)
		json.NewEncoder(w).Encode(pickupResponse{
			ConfirmationNumber: "PK-555",
			ScheduledFor:       scheduled,
		})
	}))
	defer server.Close()

	adapter := NewRESTAdapter("coordinadora", server.URL, "", server.Client())

	req := testShipment()
	pickupDate := scheduled
	req.PickupDate = &pickupDate

	result, err := adapter.SchedulePickup(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, "PK-555", result.ConfirmationNumber)
	assert.True(t, result.ScheduledFor.Equal(scheduled))
}

func TestRESTAdapter_Carrier(t *testing.T) {
	adapter := NewRESTAdapter("fedex", "http://localhost", "", http.DefaultClient)
	assert.Equal(t, domain.CarrierID("fedex"), adapter.Carrier())
}
