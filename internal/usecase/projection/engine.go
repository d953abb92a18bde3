package projection

import (
	"github.com/shopspring/decimal"

	"github.com/ausungroup/propcast-backend/internal/domain"
)

// Engine is the projection core: a pure, stateless computation that turns a
// set of assumptions into a year-by-year financial schedule. It performs no
// I/O and holds no state between calls, so a single Engine is safe to share
// across goroutines.
type Engine struct{}

// NewEngine creates a new Engine instance
func NewEngine() *Engine {
	return &Engine{}
}

var _ domain.Projector = (*Engine)(nil)

var (
	one          = decimal.NewFromInt(1)
	weeksPerYear = decimal.NewFromInt(52)
)

// Project validates the assumptions once up front, then runs the yearly
// recurrence and returns exactly HorizonYears records numbered 1..N.
//
// Per-year logic:
//  1. Effective rent = weekly rent x 52, reduced by the vacancy rate
//  2. Split the year's repayment into interest and principal (see repaymentSplit)
//  3. Inflate fixed holding costs by (1+cpi)^(year-1); management fee and
//     maintenance are percentages of effective rent
//  4. Pre-tax cashflow deducts every cash outflow including principal
//  5. Taxable income deducts interest, operating costs and depreciation but
//     NOT principal; a negative result is a refund at the marginal rate
//     (negative gearing)
//  6. The emitted record carries end-of-year market value and loan balance,
//     while the cashflow figures are computed from the start-of-year balance
//
// Returns *domain.InvalidAssumptionsError before producing any record if an
// input is out of domain; there are no partial results.
func (e *Engine) Project(a domain.Assumptions) (domain.Schedule, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	// State carried across iterations
	currentValue := a.PurchasePrice
	loanBalance := a.InitialLoanPrincipal()
	currentWeeklyRent := a.WeeklyRent
	cumulativeCashflow := decimal.Zero
	currentDepreciation := a.FirstYearDepreciation
	initialCashInvested := a.InitialCashInvested()

	growthFactor := one.Add(a.CapitalGrowthRate)
	rentGrowthFactor := one.Add(a.RentalGrowthRate)
	inflationBase := one.Add(a.CostInflationRate)
	depreciationRetention := one.Sub(a.DepreciationDecayRate)

	// (1 + cpi)^(year-1), advanced multiplicatively each iteration
	inflationFactor := one

	schedule := make(domain.Schedule, 0, a.HorizonYears)

	for year := 1; year <= a.HorizonYears; year++ {
		grossRent := currentWeeklyRent.Mul(weeksPerYear)
		effectiveRent := grossRent.Mul(one.Sub(a.VacancyRate))

		interest, principal, err := repaymentSplit(&a, loanBalance, year)
		if err != nil {
			return nil, err
		}

		inflatedFixedCosts := a.FixedAnnualCosts.Mul(inflationFactor)
		managementFee := effectiveRent.Mul(a.ManagementFeeRate)
		maintenance := effectiveRent.Mul(a.MaintenanceRate)
		operatingCosts := inflatedFixedCosts.Add(managementFee).Add(maintenance)

		preTaxCashflow := effectiveRent.Sub(interest.Add(principal).Add(operatingCosts))

		// Principal repayments are not deductible; depreciation is
		// deductible without being a cash outflow
		taxDeductible := interest.Add(operatingCosts).Add(currentDepreciation)
		taxableIncome := effectiveRent.Sub(taxDeductible)
		taxImpact := taxableIncome.Mul(a.MarginalTaxRate)
		postTaxCashflow := preTaxCashflow.Sub(taxImpact)

		cumulativeCashflow = cumulativeCashflow.Add(postTaxCashflow)
		loanBalance = loanBalance.Sub(principal)
		currentValue = currentValue.Mul(growthFactor)

		netWealth := currentValue.Sub(loanBalance).
			Sub(initialCashInvested).
			Add(cumulativeCashflow)

		schedule = append(schedule, domain.YearlyRecord{
			Year:                year,
			MarketValue:         currentValue,
			EffectiveAnnualRent: effectiveRent,
			LoanBalance:         loanBalance,
			InterestPaid:        interest,
			PrincipalPaid:       principal,
			PreTaxCashflow:      preTaxCashflow,
			TaxImpact:           taxImpact,
			PostTaxCashflow:     postTaxCashflow,
			CumulativeCashflow:  cumulativeCashflow,
			NetWealth:           netWealth,
		})

		// Advance for the next iteration
		currentWeeklyRent = currentWeeklyRent.Mul(rentGrowthFactor)
		currentDepreciation = currentDepreciation.Mul(depreciationRetention)
		inflationFactor = inflationFactor.Mul(inflationBase)
	}

	return schedule, nil
}

// repaymentSplit splits the year's loan payment into interest and principal.
//
// Interest-only: interest on the full balance, no principal, forever.
//
// Principal-and-interest: the level annual payment is re-derived from the
// CURRENT balance and CURRENT remaining term every year, rather than cached
// from the original schedule. The two are identical on an undisturbed loan,
// and re-deriving means any balance perturbation self-corrects over the
// remaining term. Once the term is exhausted the loan is repaid and both
// components are zero.
func repaymentSplit(a *domain.Assumptions, balance decimal.Decimal, year int) (interest, principal decimal.Decimal, err error) {
	if a.RepaymentMode == domain.RepaymentModeInterestOnly {
		return balance.Mul(a.AnnualInterestRate), decimal.Zero, nil
	}

	yearsRemaining := a.LoanTermYears - (year - 1)
	if yearsRemaining <= 0 {
		return decimal.Zero, decimal.Zero, nil
	}

	payment, err := annuityPayment(a.AnnualInterestRate, yearsRemaining, balance)
	if err != nil {
		return decimal.Zero, decimal.Zero, err
	}

	interest = balance.Mul(a.AnnualInterestRate)
	principal = payment.Sub(interest)
	return interest, principal, nil
}

// annuityPayment is the standard level-payment annuity formula:
//
//	pmt = rate * pv / (1 - (1+rate)^-nper)
//
// with the zero-rate degenerate case pmt = pv / nper.
func annuityPayment(rate decimal.Decimal, nper int, pv decimal.Decimal) (decimal.Decimal, error) {
	if rate.IsZero() {
		return pv.Div(decimal.NewFromInt(int64(nper))), nil
	}

	discount, err := one.Add(rate).PowInt32(int32(-nper))
	if err != nil {
		return decimal.Zero, err
	}

	return rate.Mul(pv).Div(one.Sub(discount)), nil
}
