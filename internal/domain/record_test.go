package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleRecordForYear(t *testing.T) {
	schedule := Schedule{
		{Year: 1, MarketValue: decimal.NewFromInt(682500)},
		{Year: 2, MarketValue: decimal.NewFromInt(716625)},
		{Year: 3, MarketValue: decimal.NewFromInt(752456)},
	}

	record, err := schedule.RecordForYear(2)
	require.NoError(t, err)
	assert.Equal(t, 2, record.Year)
	assert.True(t, record.MarketValue.Equal(decimal.NewFromInt(716625)))

	// Year numbering is 1-based; 0 and anything past the horizon are out of range
	_, err = schedule.RecordForYear(0)
	assert.Error(t, err)

	_, err = schedule.RecordForYear(4)
	assert.Error(t, err)
}

func TestScheduleFinalRecord(t *testing.T) {
	schedule := Schedule{
		{Year: 1},
		{Year: 2},
	}

	record, err := schedule.FinalRecord()
	require.NoError(t, err)
	assert.Equal(t, 2, record.Year)

	_, err = Schedule{}.FinalRecord()
	assert.Error(t, err)
}

func TestHoldingCostsTotal(t *testing.T) {
	// The original calculator's default expense breakdown sums to 8000/yr
	costs := HoldingCosts{
		CouncilRates:      decimal.NewFromInt(1500),
		WaterRates:        decimal.NewFromInt(1000),
		StrataFees:        decimal.NewFromInt(2500),
		LandlordInsurance: decimal.NewFromInt(1800),
		LandTax:           decimal.NewFromInt(1200),
	}

	require.NoError(t, costs.Validate())
	assert.True(t, costs.Total().Equal(decimal.NewFromInt(8000)))
}

func TestHoldingCostsValidate_RejectsNegativeComponent(t *testing.T) {
	costs := HoldingCosts{
		CouncilRates: decimal.NewFromInt(-1),
	}

	err := costs.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "council rates must not be negative")
}
