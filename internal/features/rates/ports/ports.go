package ports

import "logistics-rates/internal/features/rates/domain"

// JitterSource supplies the random price variation factor. Implementations
// must be safe for concurrent use; each call returns an independent draw.
type JitterSource interface {
	// Factor returns a multiplier in [0.9, 1.1].
	Factor() float64
}

// RateCalculator defines the interface for pricing a route across the
// configured carriers.
type RateCalculator interface {
	// Calculate returns one quote per carrier for the given route and
	// weight, sorted ascending by price. Weight must be positive; the
	// caller is responsible for validating it.
	Calculate(originCountry, destinationCountry string, weight float64) []domain.Quote
}
