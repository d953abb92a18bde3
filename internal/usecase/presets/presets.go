package presets

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ausungroup/propcast-backend/internal/domain"
)

// Fixed UUIDs so clients can reference presets stably across releases
var (
	PresetReferenceInterestOnly = uuid.MustParse("00000000-0000-0000-0000-000000000001")
	PresetReferenceAmortizing   = uuid.MustParse("00000000-0000-0000-0000-000000000002")
)

// MilestoneYears are the point-in-time years the UI offers for snapshot
// metrics.
var MilestoneYears = []int{5, 10, 15, 20, 30}

// MarginalTaxBands are the personal marginal rates offered as input choices.
var MarginalTaxBands = []decimal.Decimal{
	decimal.NewFromFloat(0.325),
	decimal.NewFromFloat(0.37),
	decimal.NewFromFloat(0.45),
}

// referenceHoldingCosts is the itemized default expense estimate, totalling
// 8000/yr.
func referenceHoldingCosts() domain.HoldingCosts {
	return domain.HoldingCosts{
		CouncilRates:      decimal.NewFromInt(1500),
		WaterRates:        decimal.NewFromInt(1000),
		StrataFees:        decimal.NewFromInt(2500),
		LandlordInsurance: decimal.NewFromInt(1800),
		LandTax:           decimal.NewFromInt(1200),
	}
}

// referenceAssumptions is the canonical metro-apartment scenario: 650k at
// 80% LVR and 6.1%, 650/week rent with 4% vacancy, 5% capital growth, 3.5%
// rent growth, 3% cost inflation, 37% marginal tax, 8000 first-year
// depreciation decaying 10%/yr, projected over 30 years.
func referenceAssumptions(mode domain.RepaymentMode) domain.Assumptions {
	holdingCosts := referenceHoldingCosts()
	return domain.Assumptions{
		PurchasePrice:         decimal.NewFromInt(650000),
		UpfrontCosts:          decimal.NewFromInt(35000),
		LoanToValueRatio:      decimal.NewFromFloat(0.8),
		AnnualInterestRate:    decimal.NewFromFloat(0.061),
		LoanTermYears:         30,
		RepaymentMode:         mode,
		WeeklyRent:            decimal.NewFromInt(650),
		VacancyRate:           decimal.NewFromFloat(0.04),
		CapitalGrowthRate:     decimal.NewFromFloat(0.05),
		RentalGrowthRate:      decimal.NewFromFloat(0.035),
		CostInflationRate:     decimal.NewFromFloat(0.03),
		FixedAnnualCosts:      holdingCosts.Total(),
		ManagementFeeRate:     decimal.NewFromFloat(0.066),
		MaintenanceRate:       decimal.NewFromFloat(0.01),
		MarginalTaxRate:       decimal.NewFromFloat(0.37),
		FirstYearDepreciation: decimal.NewFromInt(8000),
		DepreciationDecayRate: decimal.NewFromFloat(0.1),
		HorizonYears:          30,
	}
}

// Provider serves the canonical presets. Presets are assembled once at
// construction and never mutated.
type Provider struct {
	presets []domain.Preset
}

var _ domain.PresetProvider = (*Provider)(nil)

// NewProvider creates a new Provider instance
func NewProvider() *Provider {
	return &Provider{
		presets: []domain.Preset{
			{
				ID:          PresetReferenceInterestOnly,
				Name:        "Metro apartment, interest-only",
				Description: "650k apartment at 80% LVR, interest-only at 6.1%, rented at 650/week",
				Assumptions: referenceAssumptions(domain.RepaymentModeInterestOnly),
			},
			{
				ID:          PresetReferenceAmortizing,
				Name:        "Metro apartment, principal and interest",
				Description: "Same deal amortized over a 30-year term",
				Assumptions: referenceAssumptions(domain.RepaymentModePrincipalAndInterest),
			},
		},
	}
}

// List returns all presets in a stable order.
func (p *Provider) List() []domain.Preset {
	out := make([]domain.Preset, len(p.presets))
	copy(out, p.presets)
	return out
}

// GetByID retrieves a single preset
func (p *Provider) GetByID(id uuid.UUID) (*domain.Preset, error) {
	for i := range p.presets {
		if p.presets[i].ID == id {
			preset := p.presets[i]
			return &preset, nil
		}
	}
	return nil, fmt.Errorf("preset %s not found", id)
}
