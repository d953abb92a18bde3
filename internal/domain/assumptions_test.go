package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validAssumptions returns the reference scenario: 650k purchase at 80% LVR,
// interest-only at 6.1%, rented at 650/week.
func validAssumptions() Assumptions {
	return Assumptions{
		PurchasePrice:         decimal.NewFromInt(650000),
		UpfrontCosts:          decimal.NewFromInt(35000),
		LoanToValueRatio:      decimal.NewFromFloat(0.8),
		AnnualInterestRate:    decimal.NewFromFloat(0.061),
		LoanTermYears:         30,
		RepaymentMode:         RepaymentModeInterestOnly,
		WeeklyRent:            decimal.NewFromInt(650),
		VacancyRate:           decimal.NewFromFloat(0.04),
		CapitalGrowthRate:     decimal.NewFromFloat(0.05),
		RentalGrowthRate:      decimal.NewFromFloat(0.035),
		CostInflationRate:     decimal.NewFromFloat(0.03),
		FixedAnnualCosts:      decimal.NewFromInt(8000),
		ManagementFeeRate:     decimal.NewFromFloat(0.066),
		MaintenanceRate:       decimal.NewFromFloat(0.01),
		MarginalTaxRate:       decimal.NewFromFloat(0.37),
		FirstYearDepreciation: decimal.NewFromInt(8000),
		DepreciationDecayRate: decimal.NewFromFloat(0.1),
		HorizonYears:          10,
	}
}

func TestAssumptionsValidate_ValidScenario(t *testing.T) {
	a := validAssumptions()
	require.NoError(t, a.Validate())
}

func TestAssumptionsValidate_RejectsOutOfDomainInputs(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(a *Assumptions)
		expected string
	}{
		{
			name:     "Zero Purchase Price",
			mutate:   func(a *Assumptions) { a.PurchasePrice = decimal.Zero },
			expected: "purchase price must be positive",
		},
		{
			name:     "Negative Purchase Price",
			mutate:   func(a *Assumptions) { a.PurchasePrice = decimal.NewFromInt(-1) },
			expected: "purchase price must be positive",
		},
		{
			name:     "Negative Upfront Costs",
			mutate:   func(a *Assumptions) { a.UpfrontCosts = decimal.NewFromInt(-100) },
			expected: "upfront costs must not be negative",
		},
		{
			name:     "LVR Above One",
			mutate:   func(a *Assumptions) { a.LoanToValueRatio = decimal.NewFromFloat(1.05) },
			expected: "loan to value ratio must be between 0 and 1",
		},
		{
			name:     "Negative Interest Rate",
			mutate:   func(a *Assumptions) { a.AnnualInterestRate = decimal.NewFromFloat(-0.01) },
			expected: "annual interest rate must not be negative",
		},
		{
			name:     "Unknown Repayment Mode",
			mutate:   func(a *Assumptions) { a.RepaymentMode = "BALLOON" },
			expected: "repayment mode must be INTEREST_ONLY or PRINCIPAL_AND_INTEREST",
		},
		{
			name: "Zero Loan Term While Amortizing",
			mutate: func(a *Assumptions) {
				a.RepaymentMode = RepaymentModePrincipalAndInterest
				a.LoanTermYears = 0
			},
			expected: "loan term years must be positive when repaying principal and interest",
		},
		{
			name:     "Vacancy Rate Above One",
			mutate:   func(a *Assumptions) { a.VacancyRate = decimal.NewFromFloat(1.5) },
			expected: "vacancy rate must be between 0 and 1",
		},
		{
			name:     "Capital Growth Below Minus One Hundred Percent",
			mutate:   func(a *Assumptions) { a.CapitalGrowthRate = decimal.NewFromFloat(-1.01) },
			expected: "capital growth rate must not be below -100%",
		},
		{
			name:     "Rental Growth Below Minus One Hundred Percent",
			mutate:   func(a *Assumptions) { a.RentalGrowthRate = decimal.NewFromFloat(-2) },
			expected: "rental growth rate must not be below -100%",
		},
		{
			name:     "Negative Cost Inflation",
			mutate:   func(a *Assumptions) { a.CostInflationRate = decimal.NewFromFloat(-0.03) },
			expected: "cost inflation rate must not be negative",
		},
		{
			name:     "Marginal Tax Rate Above One",
			mutate:   func(a *Assumptions) { a.MarginalTaxRate = decimal.NewFromFloat(1.1) },
			expected: "marginal tax rate must be between 0 and 1",
		},
		{
			name:     "Depreciation Decay Above One",
			mutate:   func(a *Assumptions) { a.DepreciationDecayRate = decimal.NewFromFloat(1.2) },
			expected: "depreciation decay rate must be between 0 and 1",
		},
		{
			name:     "Zero Horizon",
			mutate:   func(a *Assumptions) { a.HorizonYears = 0 },
			expected: "horizon years must be positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validAssumptions()
			tt.mutate(&a)

			err := a.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.expected)

			var invalidErr *InvalidAssumptionsError
			assert.ErrorAs(t, err, &invalidErr)
		})
	}
}

func TestAssumptionsValidate_LoanTermIgnoredForInterestOnly(t *testing.T) {
	// Interest-only never amortizes, so the term is never read and a zero
	// term must not fail validation.
	a := validAssumptions()
	a.LoanTermYears = 0

	assert.NoError(t, a.Validate())
}

func TestAssumptionsValidate_GrowthRateOfExactlyMinusOneIsAllowed(t *testing.T) {
	// The domain is a fraction >= -1: a total wipeout is a valid (if grim)
	// steady state, only rates below -100% are rejected.
	a := validAssumptions()
	a.CapitalGrowthRate = decimal.NewFromInt(-1)

	assert.NoError(t, a.Validate())
}

func TestInitialCashInvested(t *testing.T) {
	// Deposit (20% of 650k = 130k) plus upfront costs (35k) = 165k
	a := validAssumptions()

	assert.True(t, a.InitialLoanPrincipal().Equal(decimal.NewFromInt(520000)),
		"initial loan should be 80%% of 650k")
	assert.True(t, a.InitialCashInvested().Equal(decimal.NewFromInt(165000)),
		"initial cash should be deposit plus upfront costs")
}
