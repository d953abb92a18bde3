package grpc

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	propcastv1 "github.com/ausungroup/propcast-backend/internal/adapter/grpc/propcast/v1"
	"github.com/ausungroup/propcast-backend/internal/domain"
	"github.com/ausungroup/propcast-backend/internal/usecase/comparison"
	"github.com/ausungroup/propcast-backend/internal/usecase/presets"
	"github.com/ausungroup/propcast-backend/internal/usecase/summary"
)

// Server implements the PropCastService gRPC server
type Server struct {
	propcastv1.UnimplementedPropCastServiceServer

	Projector         domain.Projector
	ComparisonService *comparison.Service
	PresetProvider    domain.PresetProvider
}

// NewServer creates a new gRPC server instance
func NewServer(
	projector domain.Projector,
	comparisonService *comparison.Service,
	presetProvider domain.PresetProvider,
) *Server {
	return &Server{
		Projector:         projector,
		ComparisonService: comparisonService,
		PresetProvider:    presetProvider,
	}
}

// RunProjection handles the RunProjection RPC
func (s *Server) RunProjection(ctx context.Context, req *propcastv1.RunProjectionRequest) (*propcastv1.RunProjectionResponse, error) {
	assumptions, err := protoAssumptionsToDomain(req.Assumptions)
	if err != nil {
		return nil, err
	}

	schedule, err := s.Projector.Project(assumptions)
	if err != nil {
		return nil, mapError(err)
	}

	overview, err := summary.Build(assumptions, schedule, presets.MilestoneYears)
	if err != nil {
		return nil, mapError(err)
	}

	records := make([]*propcastv1.YearlyRecord, 0, len(schedule))
	for i := range schedule {
		records = append(records, domainRecordToProto(&schedule[i]))
	}

	milestones := make([]*propcastv1.YearlyRecord, 0, len(overview.Milestones))
	for i := range overview.Milestones {
		milestones = append(milestones, domainRecordToProto(&overview.Milestones[i]))
	}

	return &propcastv1.RunProjectionResponse{
		ProjectionId: uuid.New().String(),
		GeneratedAt:  timestamppb.New(time.Now()),
		Records:      records,
		Summary: &propcastv1.Summary{
			GrossRentalYield:      overview.GrossRentalYield.String(),
			CashflowBreakEvenYear: int32(overview.CashflowBreakEvenYear),
			WealthBreakEvenYear:   int32(overview.WealthBreakEvenYear),
			Milestones:            milestones,
		},
	}, nil
}

// CompareRepaymentModes handles the CompareRepaymentModes RPC
func (s *Server) CompareRepaymentModes(ctx context.Context, req *propcastv1.CompareRepaymentModesRequest) (*propcastv1.CompareRepaymentModesResponse, error) {
	assumptions, err := protoAssumptionsToDomain(req.Assumptions)
	if err != nil {
		return nil, err
	}

	result, err := s.ComparisonService.CompareRepaymentModes(assumptions)
	if err != nil {
		return nil, mapError(err)
	}

	return &propcastv1.CompareRepaymentModesResponse{
		InterestOnly:         modeOutcomeToProto(&result.InterestOnly),
		PrincipalAndInterest: modeOutcomeToProto(&result.PrincipalAndInterest),
		NetWealthAdvantage:   result.NetWealthAdvantage.String(),
		InterestSaved:        result.InterestSaved.String(),
	}, nil
}

// ListPresets handles the ListPresets RPC
func (s *Server) ListPresets(ctx context.Context, req *propcastv1.ListPresetsRequest) (*propcastv1.ListPresetsResponse, error) {
	domainPresets := s.PresetProvider.List()

	protoPresets := make([]*propcastv1.Preset, 0, len(domainPresets))
	for i := range domainPresets {
		preset := &domainPresets[i]
		protoPresets = append(protoPresets, &propcastv1.Preset{
			Id:          preset.ID.String(),
			Name:        preset.Name,
			Description: preset.Description,
			Assumptions: domainAssumptionsToProto(&preset.Assumptions),
		})
	}

	milestoneYears := make([]int32, 0, len(presets.MilestoneYears))
	for _, year := range presets.MilestoneYears {
		milestoneYears = append(milestoneYears, int32(year))
	}

	taxBands := make([]string, 0, len(presets.MarginalTaxBands))
	for _, band := range presets.MarginalTaxBands {
		taxBands = append(taxBands, band.String())
	}

	return &propcastv1.ListPresetsResponse{
		Presets:          protoPresets,
		MilestoneYears:   milestoneYears,
		MarginalTaxBands: taxBands,
	}, nil
}

// protoAssumptionsToDomain parses the wire representation into the domain
// struct. Empty amount strings parse as zero; full domain validation happens
// in the engine.
func protoAssumptionsToDomain(proto *propcastv1.Assumptions) (domain.Assumptions, error) {
	var a domain.Assumptions

	if proto == nil {
		return a, status.Error(codes.InvalidArgument, "assumptions are required")
	}

	fields := []struct {
		dst   *decimal.Decimal
		value string
		name  string
	}{
		{&a.PurchasePrice, proto.PurchasePrice, "purchase_price"},
		{&a.UpfrontCosts, proto.UpfrontCosts, "upfront_costs"},
		{&a.LoanToValueRatio, proto.LoanToValueRatio, "loan_to_value_ratio"},
		{&a.AnnualInterestRate, proto.AnnualInterestRate, "annual_interest_rate"},
		{&a.WeeklyRent, proto.WeeklyRent, "weekly_rent"},
		{&a.VacancyRate, proto.VacancyRate, "vacancy_rate"},
		{&a.CapitalGrowthRate, proto.CapitalGrowthRate, "capital_growth_rate"},
		{&a.RentalGrowthRate, proto.RentalGrowthRate, "rental_growth_rate"},
		{&a.CostInflationRate, proto.CostInflationRate, "cost_inflation_rate"},
		{&a.FixedAnnualCosts, proto.FixedAnnualCosts, "fixed_annual_costs"},
		{&a.ManagementFeeRate, proto.ManagementFeeRate, "management_fee_rate"},
		{&a.MaintenanceRate, proto.MaintenanceRate, "maintenance_rate"},
		{&a.MarginalTaxRate, proto.MarginalTaxRate, "marginal_tax_rate"},
		{&a.FirstYearDepreciation, proto.FirstYearDepreciation, "first_year_depreciation"},
		{&a.DepreciationDecayRate, proto.DepreciationDecayRate, "depreciation_decay_rate"},
	}

	for _, f := range fields {
		if f.value == "" {
			continue
		}
		parsed, err := decimal.NewFromString(f.value)
		if err != nil {
			return a, status.Errorf(codes.InvalidArgument, "invalid %s format: %v", f.name, err)
		}
		*f.dst = parsed
	}

	a.LoanTermYears = int(proto.LoanTermYears)
	a.HorizonYears = int(proto.HorizonYears)
	a.RepaymentMode = protoRepaymentModeToDomain(proto.RepaymentMode)

	return a, nil
}

// domainAssumptionsToProto converts domain assumptions to their wire form
func domainAssumptionsToProto(a *domain.Assumptions) *propcastv1.Assumptions {
	return &propcastv1.Assumptions{
		PurchasePrice:         a.PurchasePrice.String(),
		UpfrontCosts:          a.UpfrontCosts.String(),
		LoanToValueRatio:      a.LoanToValueRatio.String(),
		AnnualInterestRate:    a.AnnualInterestRate.String(),
		LoanTermYears:         int32(a.LoanTermYears),
		RepaymentMode:         domainRepaymentModeToProto(a.RepaymentMode),
		WeeklyRent:            a.WeeklyRent.String(),
		VacancyRate:           a.VacancyRate.String(),
		CapitalGrowthRate:     a.CapitalGrowthRate.String(),
		RentalGrowthRate:      a.RentalGrowthRate.String(),
		CostInflationRate:     a.CostInflationRate.String(),
		FixedAnnualCosts:      a.FixedAnnualCosts.String(),
		ManagementFeeRate:     a.ManagementFeeRate.String(),
		MaintenanceRate:       a.MaintenanceRate.String(),
		MarginalTaxRate:       a.MarginalTaxRate.String(),
		FirstYearDepreciation: a.FirstYearDepreciation.String(),
		DepreciationDecayRate: a.DepreciationDecayRate.String(),
		HorizonYears:          int32(a.HorizonYears),
	}
}

// domainRecordToProto converts a schedule row to its wire form
func domainRecordToProto(record *domain.YearlyRecord) *propcastv1.YearlyRecord {
	return &propcastv1.YearlyRecord{
		Year:                int32(record.Year),
		MarketValue:         record.MarketValue.String(),
		EffectiveAnnualRent: record.EffectiveAnnualRent.String(),
		LoanBalance:         record.LoanBalance.String(),
		InterestPaid:        record.InterestPaid.String(),
		PrincipalPaid:       record.PrincipalPaid.String(),
		PreTaxCashflow:      record.PreTaxCashflow.String(),
		TaxImpact:           record.TaxImpact.String(),
		PostTaxCashflow:     record.PostTaxCashflow.String(),
		CumulativeCashflow:  record.CumulativeCashflow.String(),
		NetWealth:           record.NetWealth.String(),
	}
}

func modeOutcomeToProto(outcome *comparison.ModeOutcome) *propcastv1.ModeOutcome {
	return &propcastv1.ModeOutcome{
		Mode:                    domainRepaymentModeToProto(outcome.Mode),
		FinalNetWealth:          outcome.FinalNetWealth.String(),
		FinalCumulativeCashflow: outcome.FinalCumulativeCashflow.String(),
		FinalLoanBalance:        outcome.FinalLoanBalance.String(),
		TotalInterestPaid:       outcome.TotalInterestPaid.String(),
		TotalPrincipalPaid:      outcome.TotalPrincipalPaid.String(),
	}
}

// domainRepaymentModeToProto converts a domain RepaymentMode to the proto enum
func domainRepaymentModeToProto(mode domain.RepaymentMode) propcastv1.RepaymentMode {
	switch mode {
	case domain.RepaymentModeInterestOnly:
		return propcastv1.RepaymentMode_REPAYMENT_MODE_INTEREST_ONLY
	case domain.RepaymentModePrincipalAndInterest:
		return propcastv1.RepaymentMode_REPAYMENT_MODE_PRINCIPAL_AND_INTEREST
	default:
		return propcastv1.RepaymentMode_REPAYMENT_MODE_UNSPECIFIED
	}
}

// protoRepaymentModeToDomain converts the proto enum to a domain RepaymentMode.
// Unspecified maps to the empty string so domain validation rejects it with a
// field-level message.
func protoRepaymentModeToDomain(mode propcastv1.RepaymentMode) domain.RepaymentMode {
	switch mode {
	case propcastv1.RepaymentMode_REPAYMENT_MODE_INTEREST_ONLY:
		return domain.RepaymentModeInterestOnly
	case propcastv1.RepaymentMode_REPAYMENT_MODE_PRINCIPAL_AND_INTEREST:
		return domain.RepaymentModePrincipalAndInterest
	default:
		return ""
	}
}

// mapError converts domain errors to gRPC status errors
func mapError(err error) error {
	if err == nil {
		return nil
	}

	var invalidErr *domain.InvalidAssumptionsError
	if errors.As(err, &invalidErr) {
		return status.Errorf(codes.InvalidArgument, "%s", invalidErr.Error())
	}

	if strings.Contains(err.Error(), "not found") {
		return status.Errorf(codes.NotFound, "%s", err.Error())
	}

	return status.Errorf(codes.Internal, "%s", err.Error())
}
