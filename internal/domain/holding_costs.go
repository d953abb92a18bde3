package domain

import (
	"github.com/shopspring/decimal"
)

// HoldingCosts itemizes the fixed annual costs of holding a property.
// The engine only consumes the total; the itemized form exists so callers
// (and presets) can assemble the total from the figures owners actually know.
type HoldingCosts struct {
	CouncilRates      decimal.Decimal
	WaterRates        decimal.Decimal
	StrataFees        decimal.Decimal // Body corporate / owners corporation levies
	LandlordInsurance decimal.Decimal
	LandTax           decimal.Decimal
}

// Validate ensures no component is negative.
func (h *HoldingCosts) Validate() error {
	components := []struct {
		name   string
		amount decimal.Decimal
	}{
		{"council rates", h.CouncilRates},
		{"water rates", h.WaterRates},
		{"strata fees", h.StrataFees},
		{"landlord insurance", h.LandlordInsurance},
		{"land tax", h.LandTax},
	}

	for _, c := range components {
		if c.amount.IsNegative() {
			return invalidAssumption(c.name, "must not be negative")
		}
	}

	return nil
}

// Total sums the components into the single figure the engine consumes.
func (h *HoldingCosts) Total() decimal.Decimal {
	return h.CouncilRates.
		Add(h.WaterRates).
		Add(h.StrataFees).
		Add(h.LandlordInsurance).
		Add(h.LandTax)
}
