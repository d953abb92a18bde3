package comparison

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ausungroup/propcast-backend/internal/domain"
	"github.com/ausungroup/propcast-backend/internal/usecase/projection"
)

// MockProjector is a mock implementation of domain.Projector for testing
type MockProjector struct {
	mock.Mock
}

func (m *MockProjector) Project(a domain.Assumptions) (domain.Schedule, error) {
	args := m.Called(a)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(domain.Schedule), args.Error(1)
}

func modeMatcher(mode domain.RepaymentMode) interface{} {
	return mock.MatchedBy(func(a domain.Assumptions) bool {
		return a.RepaymentMode == mode
	})
}

func TestCompareRepaymentModes_RunsBothModes(t *testing.T) {
	mockProjector := new(MockProjector)
	service := NewService(mockProjector)

	interestOnlySchedule := domain.Schedule{
		{
			Year:               1,
			InterestPaid:       decimal.NewFromInt(31720),
			NetWealth:          decimal.NewFromInt(-5000),
			CumulativeCashflow: decimal.NewFromInt(-3000),
			LoanBalance:        decimal.NewFromInt(520000),
		},
	}
	amortizingSchedule := domain.Schedule{
		{
			Year:               1,
			InterestPaid:       decimal.NewFromInt(31720),
			PrincipalPaid:      decimal.NewFromInt(9000),
			NetWealth:          decimal.NewFromInt(-4000),
			CumulativeCashflow: decimal.NewFromInt(-12000),
			LoanBalance:        decimal.NewFromInt(511000),
		},
	}

	mockProjector.On("Project", modeMatcher(domain.RepaymentModeInterestOnly)).
		Return(interestOnlySchedule, nil).Once()
	mockProjector.On("Project", modeMatcher(domain.RepaymentModePrincipalAndInterest)).
		Return(amortizingSchedule, nil).Once()

	result, err := service.CompareRepaymentModes(domain.Assumptions{})
	require.NoError(t, err)

	assert.Equal(t, domain.RepaymentModeInterestOnly, result.InterestOnly.Mode)
	assert.Equal(t, domain.RepaymentModePrincipalAndInterest, result.PrincipalAndInterest.Mode)
	assert.True(t, result.NetWealthAdvantage.Equal(decimal.NewFromInt(1000)),
		"expected P&I to end 1000 ahead, got %s", result.NetWealthAdvantage)
	assert.True(t, result.PrincipalAndInterest.TotalPrincipalPaid.Equal(decimal.NewFromInt(9000)))

	mockProjector.AssertExpectations(t)
}

func TestCompareRepaymentModes_PropagatesProjectionError(t *testing.T) {
	mockProjector := new(MockProjector)
	service := NewService(mockProjector)

	projectionErr := errors.New("invalid assumptions: horizon years must be positive")
	mockProjector.On("Project", mock.Anything).Return(nil, projectionErr)

	result, err := service.CompareRepaymentModes(domain.Assumptions{})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, projectionErr)
}

func TestCompareRepaymentModes_WithRealEngine(t *testing.T) {
	// Amortizing a 520k loan over a 10-year horizon versus holding it
	// interest-only: the P&I leg pays the principal down to zero, pays less
	// total interest, and the after-tax interest saving shows up as a net
	// wealth advantage.
	service := NewService(projection.NewEngine())

	a := domain.Assumptions{
		PurchasePrice:         decimal.NewFromInt(650000),
		UpfrontCosts:          decimal.NewFromInt(35000),
		LoanToValueRatio:      decimal.NewFromFloat(0.8),
		AnnualInterestRate:    decimal.NewFromFloat(0.061),
		LoanTermYears:         10,
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

	result, err := service.CompareRepaymentModes(a)
	require.NoError(t, err)

	cent := decimal.NewFromFloat(0.01)

	assert.True(t, result.InterestOnly.FinalLoanBalance.Equal(decimal.NewFromInt(520000)),
		"interest-only never touches the principal")
	assert.True(t, result.PrincipalAndInterest.FinalLoanBalance.Abs().LessThanOrEqual(cent),
		"P&I over the full term repays the loan, got %s", result.PrincipalAndInterest.FinalLoanBalance)
	assert.True(t, result.PrincipalAndInterest.TotalPrincipalPaid.Sub(decimal.NewFromInt(520000)).Abs().LessThanOrEqual(cent),
		"total principal should equal the amount borrowed")
	assert.True(t, result.InterestSaved.IsPositive(),
		"amortizing must pay less total interest")
	assert.True(t, result.NetWealthAdvantage.IsPositive(),
		"after-tax interest saving should leave the amortizing leg wealthier")
}
