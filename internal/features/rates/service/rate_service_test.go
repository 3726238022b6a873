package service

import (
	"testing"
	"time"

	"logistics-rates/internal/features/rates/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCalculator is a mock implementation of RateCalculator for testing.
type mockCalculator struct {
	returnQuotes []domain.Quote
	calls        int
	lastOrigin   string
	lastDest     string
	lastWeight   float64
}

// Calculate implements ports.RateCalculator.
func (m *mockCalculator) Calculate(originCountry, destinationCountry string, weight float64) []domain.Quote {
	m.calls++
	m.lastOrigin = originCountry
	m.lastDest = destinationCountry
	m.lastWeight = weight
	return m.returnQuotes
}

// TestRateService_QuoteRates_Success verifies the quote sheet shape.
func TestRateService_QuoteRates_Success(t *testing.T) {
	quotes := []domain.Quote{
		{Carrier: "Royal Mail", Service: domain.ServiceDomesticExpress, Price: 11.5, Transit: "1 business day", EstimatedDays: 1},
	}
	calc := &mockCalculator{returnQuotes: quotes}
	svc := NewRateService(calc)

	before := time.Now().UTC()
	sheet, err := svc.QuoteRates(Request{
		CollectionCountry: "UK",
		DeliveryCountry:   "US",
		Weight:            3,
	})

	require.NoError(t, err)
	require.NotNil(t, sheet)
	assert.Equal(t, quotes, sheet.Rates)
	assert.Equal(t, "UK → US", sheet.Route)
	assert.Equal(t, 3.0, sheet.Weight)
	assert.False(t, sheet.GeneratedAt.Before(before))

	assert.Equal(t, "UK", calc.lastOrigin)
	assert.Equal(t, "US", calc.lastDest)
	assert.Equal(t, 3.0, calc.lastWeight)
}

// TestRateService_QuoteRates_MissingCountry verifies that either empty
// country field is rejected before the calculator runs.
func TestRateService_QuoteRates_MissingCountry(t *testing.T) {
	calc := &mockCalculator{}
	svc := NewRateService(calc)

	tests := []struct {
		name string
		req  Request
	}{
		{"MissingCollection", Request{DeliveryCountry: "US", Weight: 1}},
		{"MissingDelivery", Request{CollectionCountry: "UK", Weight: 1}},
		{"MissingBoth", Request{Weight: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet, err := svc.QuoteRates(tt.req)

			assert.Nil(t, sheet)
			assert.ErrorIs(t, err, ErrMissingCountry)
		})
	}

	assert.Zero(t, calc.calls)
}

// TestRateService_QuoteRates_InvalidWeight verifies non-positive weights are
// rejected without pricing work.
func TestRateService_QuoteRates_InvalidWeight(t *testing.T) {
	calc := &mockCalculator{}
	svc := NewRateService(calc)

	for _, weight := range []float64{0, -5} {
		sheet, err := svc.QuoteRates(Request{
			CollectionCountry: "UK",
			DeliveryCountry:   "US",
			Weight:            weight,
		})

		assert.Nil(t, sheet)
		assert.ErrorIs(t, err, ErrInvalidWeight)
	}

	assert.Zero(t, calc.calls)
}

// TestRateService_QuoteRates_ValidationOrder verifies a missing country wins
// over an invalid weight.
func TestRateService_QuoteRates_ValidationOrder(t *testing.T) {
	svc := NewRateService(&mockCalculator{})

	_, err := svc.QuoteRates(Request{Weight: -1})

	assert.ErrorIs(t, err, ErrMissingCountry)
}
