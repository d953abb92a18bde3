package projection

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ausungroup/propcast-backend/internal/domain"
)

// baseAssumptions is the reference scenario from the original calculator:
// 650k purchase, 80% LVR interest-only at 6.1%, 650/week rent, 4% vacancy,
// 5% capital growth, 3.5% rent growth, 8000/yr fixed costs inflating at 3%,
// 6.6% management, 1% maintenance, 37% marginal tax, 8000 first-year
// depreciation decaying 10%/yr.
func baseAssumptions() domain.Assumptions {
	return domain.Assumptions{
		PurchasePrice:         decimal.NewFromInt(650000),
		UpfrontCosts:          decimal.NewFromInt(35000),
		LoanToValueRatio:      decimal.NewFromFloat(0.8),
		AnnualInterestRate:    decimal.NewFromFloat(0.061),
		LoanTermYears:         30,
		RepaymentMode:         domain.RepaymentModeInterestOnly,
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

// assertAmount compares a decimal against its exact expected representation.
func assertAmount(t *testing.T, expected string, actual decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, actual.Equal(decimal.RequireFromString(expected)),
		"%s: expected %s, got %s", field, expected, actual)
}

// assertWithinCents allows a one-cent tolerance for values that accumulate
// division rounding over many years.
func assertWithinCents(t *testing.T, expected string, actual decimal.Decimal, field string) {
	t.Helper()
	diff := actual.Sub(decimal.RequireFromString(expected)).Abs()
	assert.True(t, diff.LessThanOrEqual(decimal.NewFromFloat(0.01)),
		"%s: expected %s within 0.01, got %s", field, expected, actual)
}

func TestProject_ProducesContiguousYears(t *testing.T) {
	engine := NewEngine()

	schedule, err := engine.Project(baseAssumptions())
	require.NoError(t, err)
	require.Len(t, schedule, 10)

	for i, record := range schedule {
		assert.Equal(t, i+1, record.Year, "years must be numbered 1..N with no gaps")
	}
}

func TestProject_InvalidAssumptionsProduceNoRecords(t *testing.T) {
	engine := NewEngine()

	a := baseAssumptions()
	a.HorizonYears = 0

	schedule, err := engine.Project(a)
	require.Error(t, err)
	assert.Nil(t, schedule, "no partial results on validation failure")

	var invalidErr *domain.InvalidAssumptionsError
	assert.ErrorAs(t, err, &invalidErr)
}

func TestProject_InterestOnlyKeepsBalanceConstant(t *testing.T) {
	engine := NewEngine()

	schedule, err := engine.Project(baseAssumptions())
	require.NoError(t, err)

	for _, record := range schedule {
		assertAmount(t, "520000", record.LoanBalance, "loan balance")
		assertAmount(t, "0", record.PrincipalPaid, "principal paid")
	}
}

func TestProject_ReferenceScenarioYearOne(t *testing.T) {
	// Every intermediate figure below follows from the stated formulas:
	//   gross rent        650 * 52            = 33800
	//   effective rent    33800 * 0.96        = 32448
	//   interest          520000 * 0.061      = 31720
	//   management fee    32448 * 0.066       = 2141.568
	//   maintenance       32448 * 0.01        = 324.48
	//   pre-tax cashflow  32448 - 42186.048   = -9738.048
	//   taxable income    32448 - 50186.048   = -17738.048
	//   tax impact        -17738.048 * 0.37   = -6563.07776
	//   post-tax cashflow -9738.048 + 6563.07776 = -3174.97024
	//   market value      650000 * 1.05       = 682500
	//   net wealth        682500 - 520000 - 165000 - 3174.97024 = -5674.97024
	engine := NewEngine()

	schedule, err := engine.Project(baseAssumptions())
	require.NoError(t, err)

	year1 := schedule[0]
	assertAmount(t, "32448", year1.EffectiveAnnualRent, "effective rent")
	assertAmount(t, "31720", year1.InterestPaid, "interest")
	assertAmount(t, "520000", year1.LoanBalance, "loan balance")
	assertAmount(t, "682500", year1.MarketValue, "market value")
	assertAmount(t, "-9738.048", year1.PreTaxCashflow, "pre-tax cashflow")
	assertAmount(t, "-6563.07776", year1.TaxImpact, "tax impact")
	assertAmount(t, "-3174.97024", year1.PostTaxCashflow, "post-tax cashflow")
	assertAmount(t, "-3174.97024", year1.CumulativeCashflow, "cumulative cashflow")
	assertAmount(t, "-5674.97024", year1.NetWealth, "net wealth")
}

func TestProject_NegativeGearingRefund(t *testing.T) {
	// The reference scenario is negatively geared in year 1: deductions
	// exceed rent, so the tax impact is a refund and the post-tax position
	// is better than the pre-tax one.
	engine := NewEngine()

	schedule, err := engine.Project(baseAssumptions())
	require.NoError(t, err)

	year1 := schedule[0]
	assert.True(t, year1.TaxImpact.IsNegative(), "tax impact should be a refund")
	assert.True(t, year1.PostTaxCashflow.GreaterThan(year1.PreTaxCashflow),
		"refund should improve the post-tax cashflow")
}

func TestProject_PrincipalAndInterestAmortizesToZero(t *testing.T) {
	engine := NewEngine()

	a := baseAssumptions()
	a.RepaymentMode = domain.RepaymentModePrincipalAndInterest
	a.LoanTermYears = 10
	a.HorizonYears = 12

	schedule, err := engine.Project(a)
	require.NoError(t, err)
	require.Len(t, schedule, 12)

	// Balance declines monotonically over the amortizing years
	previous := a.InitialLoanPrincipal()
	for _, record := range schedule {
		assert.True(t, record.LoanBalance.LessThanOrEqual(previous),
			"year %d: balance must never increase", record.Year)
		previous = record.LoanBalance
	}

	// Fully repaid at the end of the term
	assertWithinCents(t, "0", schedule[9].LoanBalance, "balance at end of term")

	// Past the term the loan is exhausted: no interest, no principal
	for _, record := range schedule[10:] {
		assertAmount(t, "0", record.InterestPaid, "interest after term")
		assertAmount(t, "0", record.PrincipalPaid, "principal after term")
	}
}

func TestProject_ZeroRateAmortizationIsLinear(t *testing.T) {
	// With a 0% rate the annuity formula degenerates to balance/years:
	// 520000 over 10 years repays exactly 52000/yr with no interest.
	engine := NewEngine()

	a := baseAssumptions()
	a.RepaymentMode = domain.RepaymentModePrincipalAndInterest
	a.AnnualInterestRate = decimal.Zero
	a.LoanTermYears = 10
	a.HorizonYears = 10

	schedule, err := engine.Project(a)
	require.NoError(t, err)

	for _, record := range schedule {
		assertAmount(t, "0", record.InterestPaid, "interest")
		assertAmount(t, "52000", record.PrincipalPaid, "principal")
	}
	assertAmount(t, "0", schedule[9].LoanBalance, "final balance")
}

func TestProject_CumulativeCashflowIsRunningSum(t *testing.T) {
	engine := NewEngine()

	schedule, err := engine.Project(baseAssumptions())
	require.NoError(t, err)

	sum := decimal.Zero
	for _, record := range schedule {
		sum = sum.Add(record.PostTaxCashflow)
		assert.True(t, record.CumulativeCashflow.Equal(sum),
			"year %d: cumulative cashflow must equal the sum of post-tax cashflows so far", record.Year)
	}
}

func TestProject_ZeroGrowthKeepsMarketValueFlat(t *testing.T) {
	engine := NewEngine()

	a := baseAssumptions()
	a.CapitalGrowthRate = decimal.Zero

	schedule, err := engine.Project(a)
	require.NoError(t, err)

	for _, record := range schedule {
		assertAmount(t, "650000", record.MarketValue, "market value")
	}
}

func TestProject_NoOperatingCostsIdentity(t *testing.T) {
	// With no fixed costs, management fee or maintenance, the pre-tax
	// cashflow is exactly rent minus debt service.
	engine := NewEngine()

	a := baseAssumptions()
	a.FixedAnnualCosts = decimal.Zero
	a.ManagementFeeRate = decimal.Zero
	a.MaintenanceRate = decimal.Zero
	a.RepaymentMode = domain.RepaymentModePrincipalAndInterest

	schedule, err := engine.Project(a)
	require.NoError(t, err)

	for _, record := range schedule {
		expected := record.EffectiveAnnualRent.Sub(record.InterestPaid).Sub(record.PrincipalPaid)
		assert.True(t, record.PreTaxCashflow.Equal(expected),
			"year %d: pre-tax cashflow should be rent minus debt service", record.Year)
	}
}

func TestProject_NetWealthComposition(t *testing.T) {
	// Net wealth is derived from the current year's value, balance, the
	// initial cash invested and the cumulative cashflow; it is never
	// compounded separately.
	engine := NewEngine()

	a := baseAssumptions()
	schedule, err := engine.Project(a)
	require.NoError(t, err)

	initialCash := a.InitialCashInvested()
	for _, record := range schedule {
		expected := record.MarketValue.Sub(record.LoanBalance).
			Sub(initialCash).
			Add(record.CumulativeCashflow)
		assert.True(t, record.NetWealth.Equal(expected),
			"year %d: net wealth composition", record.Year)
	}
}

func TestProject_DepreciationDecaysWithoutFloor(t *testing.T) {
	// Over a horizon far past the loan term the depreciation base decays
	// toward zero multiplicatively but is never clamped, so the tax impact
	// keeps moving smoothly rather than jumping when a floor kicks in.
	engine := NewEngine()

	a := baseAssumptions()
	a.HorizonYears = 50

	schedule, err := engine.Project(a)
	require.NoError(t, err)
	require.Len(t, schedule, 50)

	// Reconstruct year-50 depreciation from the record: deductions beyond
	// interest and operating costs are exactly the depreciation base.
	year50 := schedule[49]
	taxableIncome := year50.TaxImpact.Div(a.MarginalTaxRate)
	operating := year50.EffectiveAnnualRent.Sub(year50.PreTaxCashflow).Sub(year50.InterestPaid)
	depreciation := year50.EffectiveAnnualRent.Sub(taxableIncome).Sub(year50.InterestPaid).Sub(operating)

	expected := decimal.NewFromInt(8000)
	retention := decimal.NewFromFloat(0.9)
	for i := 0; i < 49; i++ {
		expected = expected.Mul(retention)
	}
	assert.True(t, depreciation.Sub(expected).Abs().LessThan(decimal.NewFromFloat(0.0001)),
		"year 50 depreciation should be 8000 * 0.9^49, got %s", depreciation)
	assert.True(t, depreciation.IsPositive(), "depreciation approaches zero but is never zeroed")
}
