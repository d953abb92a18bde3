package presets

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ausungroup/propcast-backend/internal/domain"
	"github.com/ausungroup/propcast-backend/internal/usecase/projection"
)

func TestProviderList_AllPresetsAreValidAndProjectable(t *testing.T) {
	provider := NewProvider()
	engine := projection.NewEngine()

	presets := provider.List()
	require.Len(t, presets, 2)

	for _, preset := range presets {
		require.NoError(t, preset.Assumptions.Validate(), "preset %q must validate", preset.Name)

		schedule, err := engine.Project(preset.Assumptions)
		require.NoError(t, err, "preset %q must project", preset.Name)
		assert.Len(t, schedule, 30)
	}
}

func TestProviderGetByID(t *testing.T) {
	provider := NewProvider()

	preset, err := provider.GetByID(PresetReferenceInterestOnly)
	require.NoError(t, err)
	assert.Equal(t, domain.RepaymentModeInterestOnly, preset.Assumptions.RepaymentMode)

	preset, err = provider.GetByID(PresetReferenceAmortizing)
	require.NoError(t, err)
	assert.Equal(t, domain.RepaymentModePrincipalAndInterest, preset.Assumptions.RepaymentMode)

	_, err = provider.GetByID(uuid.New())
	assert.Error(t, err)
}

func TestReferenceFixedCostsMatchItemizedBreakdown(t *testing.T) {
	provider := NewProvider()

	preset, err := provider.GetByID(PresetReferenceInterestOnly)
	require.NoError(t, err)
	assert.True(t, preset.Assumptions.FixedAnnualCosts.Equal(decimal.NewFromInt(8000)),
		"itemized holding costs should total 8000, got %s", preset.Assumptions.FixedAnnualCosts)
}

func TestMarginalTaxBandsAreValidRates(t *testing.T) {
	for _, band := range MarginalTaxBands {
		assert.True(t, band.IsPositive() && band.LessThan(decimal.NewFromInt(1)),
			"band %s must be a fraction in (0,1)", band)
	}
}
