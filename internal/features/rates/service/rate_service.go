package service

import (
	"errors"
	"fmt"
	"time"

	"logistics-rates/internal/features/rates/domain"
	"logistics-rates/internal/features/rates/ports"
)

var (
	// ErrMissingCountry is returned when the collection or delivery country is empty.
	ErrMissingCountry = errors.New("collection and delivery countries are required")
	// ErrInvalidWeight is returned when the resolved weight is not positive.
	ErrInvalidWeight = errors.New("weight must be greater than 0")
)

// Request carries one rate request into the service. Weight is the already
// resolved value in kilograms; the transport layer applies the 1 kg default
// for weights that fail to parse.
type Request struct {
	CollectionCountry string
	DeliveryCountry   string
	Weight            float64
	// Postcodes are informational only and do not affect pricing.
	CollectionPostcode string
	DeliveryPostcode   string
}

// RateService validates rate requests and shapes quote sheets from the
// calculator's output. It holds no per-request state.
type RateService struct {
	calculator ports.RateCalculator
}

// NewRateService creates a new RateService backed by the given calculator.
func NewRateService(calculator ports.RateCalculator) *RateService {
	return &RateService{
		calculator: calculator,
	}
}

// QuoteRates validates the request and returns a quote sheet covering every
// configured carrier. Validation failures are reported before the
// calculator runs; a failed request performs no pricing work.
func (s *RateService) QuoteRates(req Request) (*domain.QuoteSheet, error) {
	if req.CollectionCountry == "" || req.DeliveryCountry == "" {
		return nil, ErrMissingCountry
	}

	if req.Weight <= 0 {
		return nil, ErrInvalidWeight
	}

	rates := s.calculator.Calculate(req.CollectionCountry, req.DeliveryCountry, req.Weight)

	return &domain.QuoteSheet{
		Rates:       rates,
		Route:       fmt.Sprintf("%s → %s", req.CollectionCountry, req.DeliveryCountry),
		Weight:      req.Weight,
		GeneratedAt: time.Now().UTC(),
	}, nil
}
