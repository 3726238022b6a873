package engine

import (
	"math"
	"sort"

	"logistics-rates/internal/features/rates/domain"
	"logistics-rates/internal/features/rates/ports"
)

// freeWeightKg is the allowance included in every base price. Only the
// excess above it is charged per kilogram.
const freeWeightKg = 5.0

// Engine prices a route across a fixed carrier table. It performs no I/O
// and holds no mutable state; the only nondeterminism comes from the
// injected jitter source.
type Engine struct {
	carriers []domain.CarrierProfile
	jitter   ports.JitterSource
}

// New creates an Engine over the given carrier table and jitter source.
func New(carriers []domain.CarrierProfile, jitter ports.JitterSource) *Engine {
	return &Engine{
		carriers: carriers,
		jitter:   jitter,
	}
}

// Calculate implements ports.RateCalculator.
//
// Countries are compared by exact string equality: "uk" vs "UK" is an
// international route. The comparison is intentionally not normalized,
// matching how the dashboard frontend submits the fields.
func (e *Engine) Calculate(originCountry, destinationCountry string, weight float64) []domain.Quote {
	international := originCountry != destinationCountry

	quotes := make([]domain.Quote, 0, len(e.carriers))
	for _, carrier := range e.carriers {
		price := carrier.BasePrice
		if international {
			price *= carrier.InternationalMultiplier
		}
		if weight > freeWeightKg {
			price += (weight - freeWeightKg) * carrier.WeightMultiplier
		}
		price = roundPrice(price * e.jitter.Factor())

		service := domain.ServiceDomesticExpress
		days := carrier.TransitDays.Domestic
		if international {
			service = domain.ServiceInternationalExpress
			days = carrier.TransitDays.International
		}

		quotes = append(quotes, domain.Quote{
			Carrier:       carrier.Name,
			Service:       service,
			Price:         price,
			Transit:       domain.TransitLabel(international, days),
			EstimatedDays: days,
		})
	}

	// Stable so that equal rounded prices keep carrier-table order.
	sort.SliceStable(quotes, func(i, j int) bool {
		return quotes[i].Price < quotes[j].Price
	})

	return quotes
}

// roundPrice rounds to two decimal places, half away from zero.
func roundPrice(p float64) float64 {
	return math.Round(p*100) / 100
}
