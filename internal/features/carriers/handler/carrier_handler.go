package handler

import (
	"errors"
	"strconv"

	"carrier-hub/internal/features/carriers/domain"
	"carrier-hub/internal/features/carriers/service"

	"github.com/gofiber/fiber/v2"
)

// CarrierHandler handles HTTP requests for carrier orchestration.
type CarrierHandler struct {
	carriers *service.CarrierService
	router   *service.FallbackRouter
}

// NewCarrierHandler creates a new CarrierHandler.
func NewCarrierHandler(carriers *service.CarrierService, router *service.FallbackRouter) *CarrierHandler {
	return &CarrierHandler{
		carriers: carriers,
		router:   router,
	}
}

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// PriorityRequest is the body for configuring a route's fallback priority.
type PriorityRequest struct {
	// Carriers is the ordered preference list, most preferred first.
	Carriers []domain.CarrierID `json:"carriers"`
}

// GetBestQuote godoc
// @Summary Get the best quote across all carriers
// @Description Fans the shipment out to every healthy carrier and returns the cheapest quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body domain.ShipmentRequest true "Shipment"
// @Success 200 {object} domain.Quote
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /quotes/best [post]
func (h *CarrierHandler) GetBestQuote(c *fiber.Ctx) error {
	var req domain.ShipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	// Best-quote aggregation ignores a pinned carrier.
	req.Carrier = ""

	quote, err := h.carriers.GetQuote(c.UserContext(), req)
	if err != nil {
		return h.failErr(c, err)
	}

	return c.JSON(quote)
}

// GetQuote godoc
// @Summary Get a quote, optionally pinned to one carrier
// @Description Quotes with the pinned carrier and falls back along the route priority list on failure; without a pinned carrier behaves like /quotes/best
// @Tags quotes
// @Accept json
// @Produce json
// @Param request body domain.ShipmentRequest true "Shipment"
// @Success 200 {object} domain.Quote
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /quotes [post]
func (h *CarrierHandler) GetQuote(c *fiber.Ctx) error {
	var req domain.ShipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	quote, err := h.carriers.GetQuote(c.UserContext(), req)
	if err != nil {
		return h.failErr(c, err)
	}

	return c.JSON(quote)
}

// GenerateLabel godoc
// @Summary Generate a shipping label
// @Tags labels
// @Accept json
// @Produce json
// @Param request body domain.ShipmentRequest true "Shipment with carrier"
// @Success 200 {object} domain.LabelResult
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /labels [post]
func (h *CarrierHandler) GenerateLabel(c *fiber.Ctx) error {
	var req domain.ShipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	label, err := h.carriers.GenerateLabel(c.UserContext(), req)
	if err != nil {
		return h.failErr(c, err)
	}

	return c.JSON(label)
}

// TrackShipment godoc
// @Summary Get tracking history for a shipment
// @Tags tracking
// @Produce json
// @Param number path string true "Tracking Number"
// @Param carrier query string true "Carrier identifier (e.g. dhl, servientrega)"
// @Success 200 {object} domain.TrackingResult
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tracking/{number} [get]
func (h *CarrierHandler) TrackShipment(c *fiber.Ctx) error {
	number := c.Params("number")
	carrier := domain.CarrierID(c.Query("carrier"))

	result, err := h.carriers.TrackShipment(c.UserContext(), carrier, number)
	if err != nil {
		return h.failErr(c, err)
	}

	return c.JSON(result)
}

// SchedulePickup godoc
// @Summary Schedule a pickup
// @Tags pickups
// @Accept json
// @Produce json
// @Param request body domain.ShipmentRequest true "Shipment with carrier and pickup date"
// @Success 200 {object} domain.PickupResult
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /pickups [post]
func (h *CarrierHandler) SchedulePickup(c *fiber.Ctx) error {
	var req domain.ShipmentRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.carriers.SchedulePickup(c.UserContext(), req)
	if err != nil {
		return h.failErr(c, err)
	}

	return c.JSON(result)
}

// ListCarriers godoc
// @Summary List registered carriers
// @Tags carriers
// @Produce json
// @Success 200 {array} string
// @Router /carriers [get]
func (h *CarrierHandler) ListCarriers(c *fiber.Ctx) error {
	return c.JSON(h.carriers.Carriers())
}

// GetCarrierHealth godoc
// @Summary Get the health snapshot for a carrier
// @Tags carriers
// @Produce json
// @Param carrier path string true "Carrier identifier"
// @Success 200 {object} domain.CarrierHealth
// @Router /carriers/{carrier}/health [get]
func (h *CarrierHandler) GetCarrierHealth(c *fiber.Ctx) error {
	carrier := domain.CarrierID(c.Params("carrier"))
	if carrier == "" {
		return h.fail(c, fiber.StatusBadRequest, "carrier is required")
	}

	return c.JSON(h.carriers.Health(carrier))
}

// ConfigurePriority godoc
// @Summary Configure the fallback priority list for a route
// @Tags fallback
// @Accept json
// @Produce json
// @Param route path string true "Route key (e.g. CO-US) or * for the wildcard"
// @Param request body PriorityRequest true "Ordered carriers"
// @Success 204
// @Failure 400 {object} ErrorResponse
// @Router /fallback/{route} [put]
func (h *CarrierHandler) ConfigurePriority(c *fiber.Ctx) error {
	route := c.Params("route")

	var req PriorityRequest
	if err := c.BodyParser(&req); err != nil {
		return h.fail(c, fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.router.ConfigurePriority(c.UserContext(), route, req.Carriers); err != nil {
		return h.failErr(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// GetFallbackEvents godoc
// @Summary List recent fallback events for a route
// @Tags fallback
// @Produce json
// @Param route path string true "Route key"
// @Param limit query int false "Max events to return"
// @Success 200 {array} domain.FallbackEvent
// @Router /fallback/{route}/events [get]
func (h *CarrierHandler) GetFallbackEvents(c *fiber.Ctx) error {
	route := c.Params("route")
	limit, _ := strconv.Atoi(c.Query("limit", "50"))

	events, err := h.router.RecentEvents(c.UserContext(), route, limit)
	if err != nil {
		return h.failErr(c, err)
	}

	if events == nil {
		events = []domain.FallbackEvent{}
	}

	return c.JSON(events)
}

// failErr maps domain errors onto HTTP statuses.
func (h *CarrierHandler) failErr(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, domain.ErrInvalidRequest), errors.Is(err, domain.ErrDuplicateCarrier):
		status = fiber.StatusBadRequest
	case errors.Is(err, domain.ErrCarrierNotRegistered), errors.Is(err, domain.ErrNoServiceAvailable):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrCarrierDown), errors.Is(err, domain.ErrCarrierUnavailable):
		status = fiber.StatusServiceUnavailable
	case errors.Is(err, domain.ErrNoCarriersAvailable), errors.Is(err, domain.ErrAllCarriersExhausted):
		status = fiber.StatusBadGateway
	case errors.Is(err, domain.ErrNoFallbackConfigured):
		status = fiber.StatusConflict
	}

	return h.fail(c, status, err.Error())
}

func (h *CarrierHandler) fail(c *fiber.Ctx, status int, message string) error {
	rayID, _ := c.Locals("requestid").(string)

	return c.Status(status).JSON(ErrorResponse{
		Message: message,
		RayID:   rayID,
	})
}
