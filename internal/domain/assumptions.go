package domain

import (
	"github.com/shopspring/decimal"
)

// RepaymentMode represents the loan repayment structure
type RepaymentMode string

const (
	RepaymentModeInterestOnly         RepaymentMode = "INTEREST_ONLY"
	RepaymentModePrincipalAndInterest RepaymentMode = "PRINCIPAL_AND_INTEREST"
)

// Assumptions is the immutable input of a projection run.
// Money amounts are annual currency figures except WeeklyRent; rates are
// plain fractions (0.061 = 6.1%). Constructed once by the caller and never
// mutated by the engine.
type Assumptions struct {
	PurchasePrice    decimal.Decimal // Contract price of the property
	UpfrontCosts     decimal.Decimal // Transfer duty, conveyancing, misc fees
	LoanToValueRatio decimal.Decimal // Fraction of price financed [0,1]

	AnnualInterestRate decimal.Decimal // Nominal annual rate
	LoanTermYears      int             // Amortization horizon (P&I mode only)
	RepaymentMode      RepaymentMode

	WeeklyRent  decimal.Decimal // Gross weekly rent at year 1
	VacancyRate decimal.Decimal // Share of gross rent lost to vacancy [0,1]

	CapitalGrowthRate decimal.Decimal // Annual property value growth (>= -1)
	RentalGrowthRate  decimal.Decimal // Annual rent growth (>= -1)
	CostInflationRate decimal.Decimal // Annual inflation on fixed holding costs

	FixedAnnualCosts  decimal.Decimal // Rates/insurance/strata/land-tax total at year 1
	ManagementFeeRate decimal.Decimal // Applied to effective (post-vacancy) rent
	MaintenanceRate   decimal.Decimal // Applied to effective rent

	MarginalTaxRate       decimal.Decimal // Applied to taxable income [0,1]
	FirstYearDepreciation decimal.Decimal // Non-cash deduction at year 1
	DepreciationDecayRate decimal.Decimal // Per-year multiplicative decline [0,1]

	HorizonYears int // Number of yearly records to produce
}

var (
	one         = decimal.NewFromInt(1)
	negativeOne = decimal.NewFromInt(-1)
)

// Validate ensures every input sits inside its documented domain.
// Returns *InvalidAssumptionsError naming the first offending field.
// Validation happens once per projection run, before any record is computed.
func (a *Assumptions) Validate() error {
	if a.PurchasePrice.LessThanOrEqual(decimal.Zero) {
		return invalidAssumption("purchase price", "must be positive")
	}
	if a.UpfrontCosts.IsNegative() {
		return invalidAssumption("upfront costs", "must not be negative")
	}
	if a.LoanToValueRatio.IsNegative() || a.LoanToValueRatio.GreaterThan(one) {
		return invalidAssumption("loan to value ratio", "must be between 0 and 1")
	}
	if a.AnnualInterestRate.IsNegative() {
		return invalidAssumption("annual interest rate", "must not be negative")
	}
	if a.RepaymentMode != RepaymentModeInterestOnly && a.RepaymentMode != RepaymentModePrincipalAndInterest {
		return invalidAssumption("repayment mode", "must be INTEREST_ONLY or PRINCIPAL_AND_INTEREST")
	}
	// The interest-only path never reads the loan term, so the constraint
	// only binds while amortizing.
	if a.RepaymentMode == RepaymentModePrincipalAndInterest && a.LoanTermYears <= 0 {
		return invalidAssumption("loan term years", "must be positive when repaying principal and interest")
	}
	if a.WeeklyRent.IsNegative() {
		return invalidAssumption("weekly rent", "must not be negative")
	}
	if a.VacancyRate.IsNegative() || a.VacancyRate.GreaterThan(one) {
		return invalidAssumption("vacancy rate", "must be between 0 and 1")
	}
	if a.CapitalGrowthRate.LessThan(negativeOne) {
		return invalidAssumption("capital growth rate", "must not be below -100%")
	}
	if a.RentalGrowthRate.LessThan(negativeOne) {
		return invalidAssumption("rental growth rate", "must not be below -100%")
	}
	if a.CostInflationRate.IsNegative() {
		return invalidAssumption("cost inflation rate", "must not be negative")
	}
	if a.FixedAnnualCosts.IsNegative() {
		return invalidAssumption("fixed annual costs", "must not be negative")
	}
	if a.ManagementFeeRate.IsNegative() {
		return invalidAssumption("management fee rate", "must not be negative")
	}
	if a.MaintenanceRate.IsNegative() {
		return invalidAssumption("maintenance rate", "must not be negative")
	}
	if a.MarginalTaxRate.IsNegative() || a.MarginalTaxRate.GreaterThan(one) {
		return invalidAssumption("marginal tax rate", "must be between 0 and 1")
	}
	if a.FirstYearDepreciation.IsNegative() {
		return invalidAssumption("first year depreciation", "must not be negative")
	}
	if a.DepreciationDecayRate.IsNegative() || a.DepreciationDecayRate.GreaterThan(one) {
		return invalidAssumption("depreciation decay rate", "must be between 0 and 1")
	}
	if a.HorizonYears <= 0 {
		return invalidAssumption("horizon years", "must be positive")
	}

	return nil
}

// InitialLoanPrincipal is the amount borrowed at settlement.
func (a *Assumptions) InitialLoanPrincipal() decimal.Decimal {
	return a.PurchasePrice.Mul(a.LoanToValueRatio)
}

// InitialCashInvested is the deposit plus upfront costs, the cash the buyer
// actually parts with at settlement. Net wealth is measured against it.
func (a *Assumptions) InitialCashInvested() decimal.Decimal {
	return a.PurchasePrice.Sub(a.InitialLoanPrincipal()).Add(a.UpfrontCosts)
}
