package handler

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"logistics-rates/internal/core/logger"
	"logistics-rates/internal/features/rates/domain"
	"logistics-rates/internal/features/rates/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RateHandler handles HTTP requests for shipping-rate quotes.
type RateHandler struct {
	service *service.RateService
}

// NewRateHandler creates a new RateHandler.
func NewRateHandler(s *service.RateService) *RateHandler {
	return &RateHandler{
		service: s,
	}
}

// LenientWeight decodes a number-like JSON value. Numbers and numeric
// strings parse normally; anything else decodes to zero without error so
// the request still goes through with the default weight.
type LenientWeight float64

// UnmarshalJSON implements json.Unmarshaler.
func (w *LenientWeight) UnmarshalJSON(data []byte) error {
	s := string(data)
	if len(s) >= 2 && s[0] == '"' && s[len(s)-1] == '"' {
		s = s[1 : len(s)-1]
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		*w = 0
		return nil
	}

	*w = LenientWeight(v)
	return nil
}

// Resolve returns the weight in kilograms, defaulting to 1 kg when the
// field was absent or failed to parse.
func (w LenientWeight) Resolve() float64 {
	if w == 0 {
		return 1
	}
	return float64(w)
}

// RateRequest represents the request body for a rate quote.
type RateRequest struct {
	CollectionCountry  string        `json:"collection_country"`
	DeliveryCountry    string        `json:"delivery_country"`
	Weight             LenientWeight `json:"weight"`
	CollectionPostcode string        `json:"collection_postcode"`
	DeliveryPostcode   string        `json:"delivery_postcode"`
}

// RateResponse is the success envelope for a rate quote.
type RateResponse struct {
	Success   bool           `json:"success"`
	Rates     []domain.Quote `json:"rates"`
	Route     string         `json:"route"`
	Weight    float64        `json:"weight"`
	Timestamp time.Time      `json:"timestamp"`
}

// ErrorResponse is the failure envelope. Message is only set for
// unexpected failures and is not stable across versions.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// CalculateRates handles POST /api/shipping-rates.
// @Summary Calculate shipping rates
// @Description Returns one quote per carrier for the given route and weight, sorted by price.
// @Tags rates
// @Accept json
// @Produce json
// @Param request body RateRequest true "Route and weight"
// @Success 200 {object} RateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/shipping-rates [post]
func (h *RateHandler) CalculateRates(c *fiber.Ctx) error {
	var req RateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Error: "Invalid request body",
		})
	}

	weight := req.Weight.Resolve()

	logger.Get().Info("Rate request",
		zap.String("from", req.CollectionCountry+" ("+orNA(req.CollectionPostcode)+")"),
		zap.String("to", req.DeliveryCountry+" ("+orNA(req.DeliveryPostcode)+")"),
		zap.Float64("weight_kg", weight),
	)

	sheet, err := h.service.QuoteRates(service.Request{
		CollectionCountry:  req.CollectionCountry,
		DeliveryCountry:    req.DeliveryCountry,
		Weight:             weight,
		CollectionPostcode: req.CollectionPostcode,
		DeliveryPostcode:   req.DeliveryPostcode,
	})
	if err != nil {
		if errors.Is(err, service.ErrMissingCountry) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error: "Collection and delivery countries are required",
			})
		}
		if errors.Is(err, service.ErrInvalidWeight) {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Error: "Weight must be greater than 0",
			})
		}

		logger.Get().Error("Failed to calculate rates", zap.Error(err))
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Error:   "Failed to calculate shipping rates",
			Message: err.Error(),
		})
	}

	return c.Status(http.StatusOK).JSON(RateResponse{
		Success:   true,
		Rates:     sheet.Rates,
		Route:     sheet.Route,
		Weight:    sheet.Weight,
		Timestamp: sheet.GeneratedAt,
	})
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
