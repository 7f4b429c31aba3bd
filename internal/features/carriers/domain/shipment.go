package domain

import (
	"errors"
	"time"
)

// CarrierID identifies a carrier (e.g. "dhl", "fedex", "servientrega").
// Identifiers are stable and never reused for a different carrier.
type CarrierID string

// ServiceType represents the requested shipping product class.
type ServiceType string

const (
	// ServiceTypeStandard is the default ground/standard product.
	ServiceTypeStandard ServiceType = "STANDARD"
	// ServiceTypeExpress is the priority/express product.
	ServiceTypeExpress ServiceType = "EXPRESS"
	// ServiceTypeInternational is the cross-border product.
	ServiceTypeInternational ServiceType = "INTERNATIONAL"
)

var (
	// ErrNoPackages is returned when a shipment request carries no packages.
	ErrNoPackages = errors.New("shipment request must contain at least one package")
	// ErrInvalidPackage is returned when a package has a non-positive weight or declared value below zero.
	ErrInvalidPackage = errors.New("package weight must be positive and declared value non-negative")
	// ErrMissingCountry is returned when an address has no country code.
	ErrMissingCountry = errors.New("address country code is required")
)

// Address is a shipment endpoint.
type Address struct {
	// Line is the street address.
	Line string `json:"line"`
	// City is the city name.
	City string `json:"city"`
	// State is the state, province or department.
	State string `json:"state"`
	// PostalCode is the postal or ZIP code.
	PostalCode string `json:"postal_code"`
	// CountryCode is the ISO 3166-1 alpha-2 country code (e.g. "CO", "US").
	CountryCode string `json:"country_code"`
}

// Package describes a single parcel within a shipment.
type Package struct {
	// WeightKg is the parcel weight in kilograms.
	WeightKg float64 `json:"weight_kg"`
	// LengthCm, WidthCm and HeightCm are the parcel dimensions in centimeters.
	LengthCm float64 `json:"length_cm"`
	WidthCm  float64 `json:"width_cm"`
	HeightCm float64 `json:"height_cm"`
	// DeclaredValue is the declared value of the contents, in the request currency.
	DeclaredValue float64 `json:"declared_value"`
}

// ShipmentRequest is the carrier-agnostic input for every carrier operation.
// It is constructed once by the caller and read-only afterwards; adapters must
// not mutate it since the aggregator shares one request across concurrent calls.
type ShipmentRequest struct {
	// Origin is the pickup address.
	Origin Address `json:"origin"`
	// Destination is the delivery address.
	Destination Address `json:"destination"`
	// Packages are the parcels to ship, in caller order.
	Packages []Package `json:"packages"`
	// Service is the requested product class.
	Service ServiceType `json:"service"`
	// Carrier optionally pins the request to a single carrier.
	Carrier CarrierID `json:"carrier,omitempty"`
	// Insured requests declared-value insurance when true.
	Insured bool `json:"insured,omitempty"`
	// PickupDate is the requested pickup date, when scheduling a pickup.
	PickupDate *time.Time `json:"pickup_date,omitempty"`
	// Reference is the caller's order or context identifier, carried into fallback events.
	Reference string `json:"reference,omitempty"`
}

// Route returns the fallback routing key for the request, an
// origin-destination country pairing such as "CO-US".
func (r ShipmentRequest) Route() string {
	return r.Origin.CountryCode + "-" + r.Destination.CountryCode
}

// Validate checks the request invariants shared by all carriers.
func (r ShipmentRequest) Validate() error {
	if r.Origin.CountryCode == "" || r.Destination.CountryCode == "" {
		return ErrMissingCountry
	}

	if len(r.Packages) == 0 {
		return ErrNoPackages
	}

	for _, p := range r.Packages {
		if p.WeightKg <= 0 || p.DeclaredValue < 0 {
			return ErrInvalidPackage
		}
	}

	return nil
}
