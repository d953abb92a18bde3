package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// YearlyRecord is one row of the projection schedule.
// MarketValue and LoanBalance are end-of-year figures (after growth and the
// year's principal repayment); the cashflow and tax figures are computed from
// the start-of-year balance.
type YearlyRecord struct {
	Year                int
	MarketValue         decimal.Decimal
	EffectiveAnnualRent decimal.Decimal // Gross rent minus vacancy loss
	LoanBalance         decimal.Decimal
	InterestPaid        decimal.Decimal
	PrincipalPaid       decimal.Decimal
	PreTaxCashflow      decimal.Decimal
	TaxImpact           decimal.Decimal // Negative = refund (negative gearing)
	PostTaxCashflow     decimal.Decimal
	CumulativeCashflow  decimal.Decimal // Running sum of PostTaxCashflow
	NetWealth           decimal.Decimal // Equity minus initial cash plus cumulative cashflow
}

// Schedule is the full projection output, ordered by year ascending,
// years numbered 1..HorizonYears with no gaps.
type Schedule []YearlyRecord

// RecordForYear returns the record for the given 1-based year.
// Consumers use this for point-in-time display of a single year.
func (s Schedule) RecordForYear(year int) (*YearlyRecord, error) {
	if year < 1 || year > len(s) {
		return nil, fmt.Errorf("year %d is outside the projected horizon of %d years", year, len(s))
	}
	return &s[year-1], nil
}

// FinalRecord returns the last projected year.
func (s Schedule) FinalRecord() (*YearlyRecord, error) {
	if len(s) == 0 {
		return nil, errors.New("schedule is empty")
	}
	return &s[len(s)-1], nil
}
