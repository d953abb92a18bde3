package summary

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ausungroup/propcast-backend/internal/domain"
)

// scheduleWithCashflows builds a minimal schedule where only the running
// totals matter.
func scheduleWithCashflows(cumulative, wealth []int64) domain.Schedule {
	schedule := make(domain.Schedule, len(cumulative))
	for i := range cumulative {
		schedule[i] = domain.YearlyRecord{
			Year:               i + 1,
			CumulativeCashflow: decimal.NewFromInt(cumulative[i]),
			NetWealth:          decimal.NewFromInt(wealth[i]),
		}
	}
	return schedule
}

func TestGrossYield(t *testing.T) {
	// 650/week on a 650k purchase: 33800 / 650000 = 5.2%
	a := domain.Assumptions{
		PurchasePrice: decimal.NewFromInt(650000),
		WeeklyRent:    decimal.NewFromInt(650),
	}

	yield, err := GrossYield(a)
	require.NoError(t, err)
	assert.True(t, yield.Equal(decimal.NewFromFloat(0.052)), "expected 0.052, got %s", yield)
}

func TestGrossYield_RequiresPositivePrice(t *testing.T) {
	a := domain.Assumptions{
		PurchasePrice: decimal.Zero,
		WeeklyRent:    decimal.NewFromInt(650),
	}

	_, err := GrossYield(a)
	assert.Error(t, err)
}

func TestCashflowBreakEvenYear(t *testing.T) {
	schedule := scheduleWithCashflows(
		[]int64{-3000, -1500, 200, 2100},
		[]int64{-5000, -4000, -2500, -500},
	)

	assert.Equal(t, 3, CashflowBreakEvenYear(schedule))
	assert.Equal(t, 0, WealthBreakEvenYear(schedule), "wealth stays negative for the whole horizon")
}

func TestWealthBreakEvenYear(t *testing.T) {
	schedule := scheduleWithCashflows(
		[]int64{-3000, -2000, -1000, -500},
		[]int64{-5000, -1000, 2500, 8000},
	)

	assert.Equal(t, 3, WealthBreakEvenYear(schedule))
	assert.Equal(t, 0, CashflowBreakEvenYear(schedule))
}

func TestMilestoneSnapshots_ClipsToHorizon(t *testing.T) {
	schedule := scheduleWithCashflows(
		make([]int64, 12),
		make([]int64, 12),
	)

	// The UI's milestone buttons: 5/10/15/20/30 years. Only 5 and 10 fall
	// inside a 12-year horizon.
	milestones := MilestoneSnapshots(schedule, []int{5, 10, 15, 20, 30})
	require.Len(t, milestones, 2)
	assert.Equal(t, 5, milestones[0].Year)
	assert.Equal(t, 10, milestones[1].Year)
}

func TestBuild(t *testing.T) {
	a := domain.Assumptions{
		PurchasePrice: decimal.NewFromInt(650000),
		WeeklyRent:    decimal.NewFromInt(650),
	}
	schedule := scheduleWithCashflows(
		[]int64{-3000, -1500, 200, 2100, 4000, 6000},
		[]int64{-5000, -1000, 2500, 8000, 15000, 23000},
	)

	overview, err := Build(a, schedule, []int{5, 10})
	require.NoError(t, err)

	assert.True(t, overview.GrossRentalYield.Equal(decimal.NewFromFloat(0.052)))
	assert.Equal(t, 3, overview.CashflowBreakEvenYear)
	assert.Equal(t, 3, overview.WealthBreakEvenYear)
	require.Len(t, overview.Milestones, 1)
	assert.Equal(t, 5, overview.Milestones[0].Year)
}

func TestBuild_EmptySchedule(t *testing.T) {
	_, err := Build(domain.Assumptions{}, domain.Schedule{}, nil)
	assert.Error(t, err)
}
