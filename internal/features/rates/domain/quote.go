package domain

import (
	"fmt"
	"time"
)

// ServiceType labels the quoted service level.
type ServiceType string

const (
	// ServiceDomesticExpress is quoted when collection and delivery countries match.
	ServiceDomesticExpress ServiceType = "Domestic Express"
	// ServiceInternationalExpress is quoted when they differ.
	ServiceInternationalExpress ServiceType = "International Express"
)

// Quote is a single carrier's offer for a route and weight. Quotes are
// generated fresh per request and never cached, since pricing includes
// a random component.
type Quote struct {
	// Carrier is the carrier's display name.
	Carrier string `json:"carrier"`
	// Service is the quoted service level.
	Service ServiceType `json:"service"`
	// Price is the quoted price rounded to two decimals.
	Price float64 `json:"price"`
	// Transit is the human-readable delivery window.
	Transit string `json:"transit"`
	// EstimatedDays is the transit estimate in business days.
	EstimatedDays int `json:"estimatedDays"`
}

// QuoteSheet is the full result of one rate request: every carrier's quote
// plus the route description echoed back to the caller.
type QuoteSheet struct {
	// Rates holds one quote per carrier, sorted ascending by price.
	Rates []Quote `json:"rates"`
	// Route is the human-readable route, e.g. "UK → US".
	Route string `json:"route"`
	// Weight is the resolved shipment weight in kilograms.
	Weight float64 `json:"weight"`
	// GeneratedAt is when the sheet was produced.
	GeneratedAt time.Time `json:"timestamp"`
}

// TransitLabel renders the delivery window for a transit estimate.
// International quotes get a day range, domestic quotes a single figure.
func TransitLabel(international bool, days int) string {
	if international {
		return fmt.Sprintf("%d-%d business days", days, days+2)
	}
	if days > 1 {
		return fmt.Sprintf("%d business days", days)
	}
	return fmt.Sprintf("%d business day", days)
}
