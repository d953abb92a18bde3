package comparison

import (
	"github.com/shopspring/decimal"

	"github.com/ausungroup/propcast-backend/internal/domain"
)

// ModeOutcome condenses a full schedule into the figures that matter when
// choosing a repayment structure.
type ModeOutcome struct {
	Mode                    domain.RepaymentMode
	FinalNetWealth          decimal.Decimal
	FinalCumulativeCashflow decimal.Decimal
	FinalLoanBalance        decimal.Decimal
	TotalInterestPaid       decimal.Decimal
	TotalPrincipalPaid      decimal.Decimal
}

// Result holds both outcomes over the same horizon plus the headline deltas,
// measured as principal-and-interest relative to interest-only.
type Result struct {
	InterestOnly         ModeOutcome
	PrincipalAndInterest ModeOutcome

	// NetWealthAdvantage > 0 means amortizing ends the horizon wealthier.
	NetWealthAdvantage decimal.Decimal

	// InterestSaved is the interest avoided by amortizing instead of
	// holding the full balance for the whole horizon.
	InterestSaved decimal.Decimal
}

// Service runs the same assumptions through both repayment modes.
type Service struct {
	projector domain.Projector
}

// NewService creates a new comparison Service instance
func NewService(projector domain.Projector) *Service {
	return &Service{projector: projector}
}

// CompareRepaymentModes projects the deal twice, once per mode, holding every
// other assumption fixed. The assumptions must carry a positive loan term
// since the principal-and-interest leg amortizes over it.
func (s *Service) CompareRepaymentModes(a domain.Assumptions) (*Result, error) {
	interestOnly, err := s.runMode(a, domain.RepaymentModeInterestOnly)
	if err != nil {
		return nil, err
	}

	amortizing, err := s.runMode(a, domain.RepaymentModePrincipalAndInterest)
	if err != nil {
		return nil, err
	}

	return &Result{
		InterestOnly:         *interestOnly,
		PrincipalAndInterest: *amortizing,
		NetWealthAdvantage:   amortizing.FinalNetWealth.Sub(interestOnly.FinalNetWealth),
		InterestSaved:        interestOnly.TotalInterestPaid.Sub(amortizing.TotalInterestPaid),
	}, nil
}

func (s *Service) runMode(a domain.Assumptions, mode domain.RepaymentMode) (*ModeOutcome, error) {
	a.RepaymentMode = mode

	schedule, err := s.projector.Project(a)
	if err != nil {
		return nil, err
	}

	final, err := schedule.FinalRecord()
	if err != nil {
		return nil, err
	}

	totalInterest := decimal.Zero
	totalPrincipal := decimal.Zero
	for _, record := range schedule {
		totalInterest = totalInterest.Add(record.InterestPaid)
		totalPrincipal = totalPrincipal.Add(record.PrincipalPaid)
	}

	return &ModeOutcome{
		Mode:                    mode,
		FinalNetWealth:          final.NetWealth,
		FinalCumulativeCashflow: final.CumulativeCashflow,
		FinalLoanBalance:        final.LoanBalance,
		TotalInterestPaid:       totalInterest,
		TotalPrincipalPaid:      totalPrincipal,
	}, nil
}
