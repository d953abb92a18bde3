package summary

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/ausungroup/propcast-backend/internal/domain"
)

var weeksPerYear = decimal.NewFromInt(52)

// Overview aggregates the headline figures shown above the detailed schedule:
// the gross rental yield of the deal and the break-even points of the two
// curves the projection produces (cash position and real total return).
type Overview struct {
	GrossRentalYield decimal.Decimal

	// First year the cumulative cashflow turns non-negative; 0 if it never
	// does within the horizon.
	CashflowBreakEvenYear int

	// First year the net wealth (real total return) turns non-negative;
	// 0 if it never does within the horizon.
	WealthBreakEvenYear int

	// Point-in-time records at the requested milestone years, clipped to
	// the horizon.
	Milestones []domain.YearlyRecord
}

// Build derives the overview for a finished projection.
func Build(a domain.Assumptions, schedule domain.Schedule, milestoneYears []int) (*Overview, error) {
	if len(schedule) == 0 {
		return nil, errors.New("schedule is empty")
	}

	yield, err := GrossYield(a)
	if err != nil {
		return nil, err
	}

	return &Overview{
		GrossRentalYield:      yield,
		CashflowBreakEvenYear: CashflowBreakEvenYear(schedule),
		WealthBreakEvenYear:   WealthBreakEvenYear(schedule),
		Milestones:            MilestoneSnapshots(schedule, milestoneYears),
	}, nil
}

// GrossYield is the year-1 gross rent as a fraction of the purchase price.
func GrossYield(a domain.Assumptions) (decimal.Decimal, error) {
	if a.PurchasePrice.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, errors.New("purchase price must be positive")
	}
	return a.WeeklyRent.Mul(weeksPerYear).Div(a.PurchasePrice), nil
}

// CashflowBreakEvenYear returns the first year the cumulative post-tax
// cashflow is non-negative, or 0 if the position stays negative for the
// whole horizon.
func CashflowBreakEvenYear(schedule domain.Schedule) int {
	for _, record := range schedule {
		if !record.CumulativeCashflow.IsNegative() {
			return record.Year
		}
	}
	return 0
}

// WealthBreakEvenYear returns the first year the net wealth is non-negative,
// i.e. the year the investment has truly paid back the cash put in, or 0 if
// that never happens within the horizon.
func WealthBreakEvenYear(schedule domain.Schedule) int {
	for _, record := range schedule {
		if !record.NetWealth.IsNegative() {
			return record.Year
		}
	}
	return 0
}

// MilestoneSnapshots picks the records at the given years, skipping any year
// outside the projected horizon. Order follows the input years.
func MilestoneSnapshots(schedule domain.Schedule, years []int) []domain.YearlyRecord {
	milestones := make([]domain.YearlyRecord, 0, len(years))
	for _, year := range years {
		record, err := schedule.RecordForYear(year)
		if err != nil {
			continue
		}
		milestones = append(milestones, *record)
	}
	return milestones
}
