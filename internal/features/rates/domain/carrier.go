package domain

// TransitDays holds the expected delivery time for a carrier, split by
// whether the shipment crosses a border.
type TransitDays struct {
	// Domestic is the transit time in days for same-country shipments.
	Domestic int
	// International is the transit time in days for cross-border shipments.
	International int
}

// CarrierProfile holds the static pricing and transit parameters for one
// simulated carrier. Profiles are built once at startup and never mutated,
// so they are safe to share across concurrent requests.
type CarrierProfile struct {
	// Name is the carrier's display name and unique key.
	Name string
	// BasePrice is the starting price in currency units.
	BasePrice float64
	// InternationalMultiplier is applied to the base price when the
	// collection and delivery countries differ. Always >= 1.
	InternationalMultiplier float64
	// WeightMultiplier is the per-kilogram charge above the free allowance.
	WeightMultiplier float64
	// TransitDays holds the domestic and international delivery estimates.
	TransitDays TransitDays
}

// DefaultCarriers returns the built-in carrier table. Slice order is the
// tie-break order when two quotes round to the same price.
func DefaultCarriers() []CarrierProfile {
	return []CarrierProfile{
		{
			Name:                    "DHL Express",
			BasePrice:               85,
			InternationalMultiplier: 1.2,
			WeightMultiplier:        0.5,
			TransitDays:             TransitDays{Domestic: 1, International: 3},
		},
		{
			Name:                    "FedEx",
			BasePrice:               75,
			InternationalMultiplier: 1.3,
			WeightMultiplier:        0.6,
			TransitDays:             TransitDays{Domestic: 2, International: 4},
		},
		{
			Name:                    "UPS",
			BasePrice:               80,
			InternationalMultiplier: 1.25,
			WeightMultiplier:        0.55,
			TransitDays:             TransitDays{Domestic: 2, International: 5},
		},
		{
			Name:                    "Royal Mail",
			BasePrice:               12,
			InternationalMultiplier: 1.5,
			WeightMultiplier:        0.3,
			TransitDays:             TransitDays{Domestic: 1, International: 7},
		},
		{
			Name:                    "DPD",
			BasePrice:               15,
			InternationalMultiplier: 1.4,
			WeightMultiplier:        0.4,
			TransitDays:             TransitDays{Domestic: 1, International: 5},
		},
		{
			Name:                    "ParcelForce",
			BasePrice:               20,
			InternationalMultiplier: 1.35,
			WeightMultiplier:        0.45,
			TransitDays:             TransitDays{Domestic: 1, International: 6},
		},
	}
}
