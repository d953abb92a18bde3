// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.34.2
// 	protoc        (unknown)
// source: internal/adapter/grpc/propcast/v1/propcast.proto

package propcastv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	timestamppb "google.golang.org/protobuf/types/known/timestamppb"
	reflect "reflect"
	sync "sync"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

type RepaymentMode int32

const (
	RepaymentMode_REPAYMENT_MODE_UNSPECIFIED            RepaymentMode = 0
	RepaymentMode_REPAYMENT_MODE_INTEREST_ONLY          RepaymentMode = 1
	RepaymentMode_REPAYMENT_MODE_PRINCIPAL_AND_INTEREST RepaymentMode = 2
)

// Enum value maps for RepaymentMode.
var (
	RepaymentMode_name = map[int32]string{
		0: "REPAYMENT_MODE_UNSPECIFIED",
		1: "REPAYMENT_MODE_INTEREST_ONLY",
		2: "REPAYMENT_MODE_PRINCIPAL_AND_INTEREST",
	}
	RepaymentMode_value = map[string]int32{
		"REPAYMENT_MODE_UNSPECIFIED":            0,
		"REPAYMENT_MODE_INTEREST_ONLY":          1,
		"REPAYMENT_MODE_PRINCIPAL_AND_INTEREST": 2,
	}
)

func (x RepaymentMode) Enum() *RepaymentMode {
	p := new(RepaymentMode)
	*p = x
	return p
}

func (x RepaymentMode) String() string {
	return protoimpl.X.EnumStringOf(x.Descriptor(), protoreflect.EnumNumber(x))
}

func (RepaymentMode) Descriptor() protoreflect.EnumDescriptor {
	return file_internal_adapter_grpc_propcast_v1_propcast_proto_enumTypes[0].Descriptor()
}

func (RepaymentMode) Type() protoreflect.EnumType {
	return &file_internal_adapter_grpc_propcast_v1_propcast_proto_enumTypes[0]
}

func (x RepaymentMode) Number() protoreflect.EnumNumber {
	return protoreflect.EnumNumber(x)
}

// Deprecated: Use RepaymentMode.Descriptor instead.
func (RepaymentMode) EnumDescriptor() ([]byte, []int) {
	return file_internal_adapter_grpc_propcast_v1_propcast_proto_rawDescGZIP(), []int{0}
}

type Assumptions struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	PurchasePrice         string        `protobuf:"bytes,1,opt,name=purchase_price,json=purchasePrice,proto3" json:"purchase_price,omitempty"`
	UpfrontCosts          string        `protobuf:"bytes,2,opt,name=upfront_costs,json=upfrontCosts,proto3" json:"upfront_costs,omitempty"`
	LoanToValueRatio      string        `protobuf:"bytes,3,opt,name=loan_to_value_ratio,json=loanToValueRatio,proto3" json:"loan_to_value_ratio,omitempty"`
	AnnualInterestRate    string        `protobuf:"bytes,4,opt,name=annual_interest_rate,json=annualInterestRate,proto3" json:"annual_interest_rate,omitempty"`
	LoanTermYears         int32         `protobuf:"varint,5,opt,name=loan_term_years,json=loanTermYears,proto3" json:"loan_term_years,omitempty"`
	RepaymentMode         RepaymentMode `protobuf:"varint,6,opt,name=repayment_mode,json=repaymentMode,proto3,enum=propcast.v1.RepaymentMode" json:"repayment_mode,omitempty"`
	WeeklyRent            string        `protobuf:"bytes,7,opt,name=weekly_rent,json=weeklyRent,proto3" json:"weekly_rent,omitempty"`
	VacancyRate           string        `protobuf:"bytes,8,opt,name=vacancy_rate,json=vacancyRate,proto3" json:"vacancy_rate,omitempty"`
	CapitalGrowthRate     string        `protobuf:"bytes,9,opt,name=capital_growth_rate,json=capitalGrowthRate,proto3" json:"capital_growth_rate,omitempty"`
	RentalGrowthRate      string        `protobuf:"bytes,10,opt,name=rental_growth_rate,json=rentalGrowthRate,proto3" json:"rental_growth_rate,omitempty"`
	CostInflationRate     string        `protobuf:"bytes,11,opt,name=cost_inflation_rate,json=costInflationRate,proto3" json:"cost_inflation_rate,omitempty"`
	FixedAnnualCosts      string        `protobuf:"bytes,12,opt,name=fixed_annual_costs,json=fixedAnnualCosts,proto3" json:"fixed_annual_costs,omitempty"`
	ManagementFeeRate     string        `protobuf:"bytes,13,opt,name=management_fee_rate,json=managementFeeRate,proto3" json:"management_fee_rate,omitempty"`
	MaintenanceRate       string        `protobuf:"bytes,14,opt,name=maintenance_rate,json=maintenanceRate,proto3" json:"maintenance_rate,omitempty"`
	MarginalTaxRate       string        `protobuf:"bytes,15,opt,name=marginal_tax_rate,json=marginalTaxRate,proto3" json:"marginal_tax_rate,omitempty"`
	FirstYearDepreciation string        `protobuf:"bytes,16,opt,name=first_year_depreciation,json=firstYearDepreciation,proto3" json:"first_year_depreciation,omitempty"`
	DepreciationDecayRate string        `protobuf:"bytes,17,opt,name=depreciation_decay_rate,json=depreciationDecayRate,proto3" json:"depreciation_decay_rate,omitempty"`
	HorizonYears          int32         `protobuf:"varint,18,opt,name=horizon_years,json=horizonYears,proto3" json:"horizon_years,omitempty"`
}

func (x *Assumptions) Reset() {
	*x = Assumptions{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[0]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *Assumptions) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Assumptions) ProtoMessage() {}

func (x *Assumptions) ProtoReflect() protoreflect.Message {
	mi := &file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[0]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Assumptions.ProtoReflect.Descriptor instead.
func (*Assumptions) Descriptor() ([]byte, []int) {
	return file_internal_adapter_grpc_propcast_v1_propcast_proto_rawDescGZIP(), []int{0}
}

func (x *Assumptions) GetPurchasePrice() string {
	if x != nil {
		return x.PurchasePrice
	}
	return ""
}

func (x *Assumptions) GetUpfrontCosts() string {
	if x != nil {
		return x.UpfrontCosts
	}
	return ""
}

func (x *Assumptions) GetLoanToValueRatio() string {
	if x != nil {
		return x.LoanToValueRatio
	}
	return ""
}

func (x *Assumptions) GetAnnualInterestRate() string {
	if x != nil {
		return x.AnnualInterestRate
	}
	return ""
}

func (x *Assumptions) GetLoanTermYears() int32 {
	if x != nil {
		return x.LoanTermYears
	}
	return 0
}

func (x *Assumptions) GetRepaymentMode() RepaymentMode {
	if x != nil {
		return x.RepaymentMode
	}
	return RepaymentMode_REPAYMENT_MODE_UNSPECIFIED
}

func (x *Assumptions) GetWeeklyRent() string {
	if x != nil {
		return x.WeeklyRent
	}
	return ""
}

func (x *Assumptions) GetVacancyRate() string {
	if x != nil {
		return x.VacancyRate
	}
	return ""
}

func (x *Assumptions) GetCapitalGrowthRate() string {
	if x != nil {
		return x.CapitalGrowthRate
	}
	return ""
}

func (x *Assumptions) GetRentalGrowthRate() string {
	if x != nil {
		return x.RentalGrowthRate
	}
	return ""
}

func (x *Assumptions) GetCostInflationRate() string {
	if x != nil {
		return x.CostInflationRate
	}
	return ""
}

func (x *Assumptions) GetFixedAnnualCosts() string {
	if x != nil {
		return x.FixedAnnualCosts
	}
	return ""
}

func (x *Assumptions) GetManagementFeeRate() string {
	if x != nil {
		return x.ManagementFeeRate
	}
	return ""
}

func (x *Assumptions) GetMaintenanceRate() string {
	if x != nil {
		return x.MaintenanceRate
	}
	return ""
}

func (x *Assumptions) GetMarginalTaxRate() string {
	if x != nil {
		return x.MarginalTaxRate
	}
	return ""
}

func (x *Assumptions) GetFirstYearDepreciation() string {
	if x != nil {
		return x.FirstYearDepreciation
	}
	return ""
}

func (x *Assumptions) GetDepreciationDecayRate() string {
	if x != nil {
		return x.DepreciationDecayRate
	}
	return ""
}

func (x *Assumptions) GetHorizonYears() int32 {
	if x != nil {
		return x.HorizonYears
	}
	return 0
}

// One row of the projection schedule. Market value and loan balance are
// end-of-year figures; cashflow and tax figures are computed from the
// start-of-year balance.
type YearlyRecord struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Year                int32  `protobuf:"varint,1,opt,name=year,proto3" json:"year,omitempty"`
	MarketValue         string `protobuf:"bytes,2,opt,name=market_value,json=marketValue,proto3" json:"market_value,omitempty"`
	EffectiveAnnualRent string `protobuf:"bytes,3,opt,name=effective_annual_rent,json=effectiveAnnualRent,proto3" json:"effective_annual_rent,omitempty"`
	LoanBalance         string `protobuf:"bytes,4,opt,name=loan_balance,json=loanBalance,proto3" json:"loan_balance,omitempty"`
	InterestPaid        string `protobuf:"bytes,5,opt,name=interest_paid,json=interestPaid,proto3" json:"interest_paid,omitempty"`
	PrincipalPaid       string `protobuf:"bytes,6,opt,name=principal_paid,json=principalPaid,proto3" json:"principal_paid,omitempty"`
	PreTaxCashflow      string `protobuf:"bytes,7,opt,name=pre_tax_cashflow,json=preTaxCashflow,proto3" json:"pre_tax_cashflow,omitempty"`
	TaxImpact           string `protobuf:"bytes,8,opt,name=tax_impact,json=taxImpact,proto3" json:"tax_impact,omitempty"`
	PostTaxCashflow     string `protobuf:"bytes,9,opt,name=post_tax_cashflow,json=postTaxCashflow,proto3" json:"post_tax_cashflow,omitempty"`
	CumulativeCashflow  string `protobuf:"bytes,10,opt,name=cumulative_cashflow,json=cumulativeCashflow,proto3" json:"cumulative_cashflow,omitempty"`
	NetWealth           string `protobuf:"bytes,11,opt,name=net_wealth,json=netWealth,proto3" json:"net_wealth,omitempty"`
}

func (x *YearlyRecord) Reset() {
	*x = YearlyRecord{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[1]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *YearlyRecord) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*YearlyRecord) ProtoMessage() {}

func (x *YearlyRecord) ProtoReflect() protoreflect.Message {
	mi := &file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[1]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use YearlyRecord.ProtoReflect.Descriptor instead.
func (*YearlyRecord) Descriptor() ([]byte, []int) {
	return file_internal_adapter_grpc_propcast_v1_propcast_proto_rawDescGZIP(), []int{1}
}

func (x *YearlyRecord) GetYear() int32 {
	if x != nil {
		return x.Year
	}
	return 0
}

func (x *YearlyRecord) GetMarketValue() string {
	if x != nil {
		return x.MarketValue
	}
	return ""
}

func (x *YearlyRecord) GetEffectiveAnnualRent() string {
	if x != nil {
		return x.EffectiveAnnualRent
	}
	return ""
}

func (x *YearlyRecord) GetLoanBalance() string {
	if x != nil {
		return x.LoanBalance
	}
	return ""
}

func (x *YearlyRecord) GetInterestPaid() string {
	if x != nil {
		return x.InterestPaid
	}
	return ""
}

func (x *YearlyRecord) GetPrincipalPaid() string {
	if x != nil {
		return x.PrincipalPaid
	}
	return ""
}

func (x *YearlyRecord) GetPreTaxCashflow() string {
	if x != nil {
		return x.PreTaxCashflow
	}
	return ""
}

func (x *YearlyRecord) GetTaxImpact() string {
	if x != nil {
		return x.TaxImpact
	}
	return ""
}

func (x *YearlyRecord) GetPostTaxCashflow() string {
	if x != nil {
		return x.PostTaxCashflow
	}
	return ""
}

func (x *YearlyRecord) GetCumulativeCashflow() string {
	if x != nil {
		return x.CumulativeCashflow
	}
	return ""
}

func (x *YearlyRecord) GetNetWealth() string {
	if x != nil {
		return x.NetWealth
	}
	return ""
}

type Summary struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	GrossRentalYield string `protobuf:"bytes,1,opt,name=gross_rental_yield,json=grossRentalYield,proto3" json:"gross_rental_yield,omitempty"`
	// 0 = the curve never turns non-negative within the horizon
	CashflowBreakEvenYear int32           `protobuf:"varint,2,opt,name=cashflow_break_even_year,json=cashflowBreakEvenYear,proto3" json:"cashflow_break_even_year,omitempty"`
	WealthBreakEvenYear   int32           `protobuf:"varint,3,opt,name=wealth_break_even_year,json=wealthBreakEvenYear,proto3" json:"wealth_break_even_year,omitempty"`
	Milestones            []*YearlyRecord `protobuf:"bytes,4,rep,name=milestones,proto3" json:"milestones,omitempty"`
}

func (x *Summary) Reset() {
	*x = Summary{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[2]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *Summary) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Summary) ProtoMessage() {}

func (x *Summary) ProtoReflect() protoreflect.Message {
	mi := &file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[2]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Summary.ProtoReflect.Descriptor instead.
func (*Summary) Descriptor() ([]byte, []int) {
	return file_internal_adapter_grpc_propcast_v1_propcast_proto_rawDescGZIP(), []int{2}
}

func (x *Summary) GetGrossRentalYield() string {
	if x != nil {
		return x.GrossRentalYield
	}
	return ""
}

func (x *Summary) GetCashflowBreakEvenYear() int32 {
	if x != nil {
		return x.CashflowBreakEvenYear
	}
	return 0
}

func (x *Summary) GetWealthBreakEvenYear() int32 {
	if x != nil {
		return x.WealthBreakEvenYear
	}
	return 0
}

func (x *Summary) GetMilestones() []*YearlyRecord {
	if x != nil {
		return x.Milestones
	}
	return nil
}

type RunProjectionRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Assumptions *Assumptions `protobuf:"bytes,1,opt,name=assumptions,proto3" json:"assumptions,omitempty"`
}

func (x *RunProjectionRequest) Reset() {
	*x = RunProjectionRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[3]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *RunProjectionRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunProjectionRequest) ProtoMessage() {}

func (x *RunProjectionRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[3]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunProjectionRequest.ProtoReflect.Descriptor instead.
func (*RunProjectionRequest) Descriptor() ([]byte, []int) {
	return file_internal_adapter_grpc_propcast_v1_propcast_proto_rawDescGZIP(), []int{3}
}

func (x *RunProjectionRequest) GetAssumptions() *Assumptions {
	if x != nil {
		return x.Assumptions
	}
	return nil
}

type RunProjectionResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	ProjectionId string                 `protobuf:"bytes,1,opt,name=projection_id,json=projectionId,proto3" json:"projection_id,omitempty"`
	GeneratedAt  *timestamppb.Timestamp `protobuf:"bytes,2,opt,name=generated_at,json=generatedAt,proto3" json:"generated_at,omitempty"`
	Records      []*YearlyRecord        `protobuf:"bytes,3,rep,name=records,proto3" json:"records,omitempty"`
	Summary      *Summary               `protobuf:"bytes,4,opt,name=summary,proto3" json:"summary,omitempty"`
}

func (x *RunProjectionResponse) Reset() {
	*x = RunProjectionResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[4]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *RunProjectionResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*RunProjectionResponse) ProtoMessage() {}

func (x *RunProjectionResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[4]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use RunProjectionResponse.ProtoReflect.Descriptor instead.
func (*RunProjectionResponse) Descriptor() ([]byte, []int) {
	return file_internal_adapter_grpc_propcast_v1_propcast_proto_rawDescGZIP(), []int{4}
}

func (x *RunProjectionResponse) GetProjectionId() string {
	if x != nil {
		return x.ProjectionId
	}
	return ""
}

func (x *RunProjectionResponse) GetGeneratedAt() *timestamppb.Timestamp {
	if x != nil {
		return x.GeneratedAt
	}
	return nil
}

func (x *RunProjectionResponse) GetRecords() []*YearlyRecord {
	if x != nil {
		return x.Records
	}
	return nil
}

func (x *RunProjectionResponse) GetSummary() *Summary {
	if x != nil {
		return x.Summary
	}
	return nil
}

type ModeOutcome struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Mode                    RepaymentMode `protobuf:"varint,1,opt,name=mode,proto3,enum=propcast.v1.RepaymentMode" json:"mode,omitempty"`
	FinalNetWealth          string        `protobuf:"bytes,2,opt,name=final_net_wealth,json=finalNetWealth,proto3" json:"final_net_wealth,omitempty"`
	FinalCumulativeCashflow string        `protobuf:"bytes,3,opt,name=final_cumulative_cashflow,json=finalCumulativeCashflow,proto3" json:"final_cumulative_cashflow,omitempty"`
	FinalLoanBalance        string        `protobuf:"bytes,4,opt,name=final_loan_balance,json=finalLoanBalance,proto3" json:"final_loan_balance,omitempty"`
	TotalInterestPaid       string        `protobuf:"bytes,5,opt,name=total_interest_paid,json=totalInterestPaid,proto3" json:"total_interest_paid,omitempty"`
	TotalPrincipalPaid      string        `protobuf:"bytes,6,opt,name=total_principal_paid,json=totalPrincipalPaid,proto3" json:"total_principal_paid,omitempty"`
}

func (x *ModeOutcome) Reset() {
	*x = ModeOutcome{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[5]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ModeOutcome) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ModeOutcome) ProtoMessage() {}

func (x *ModeOutcome) ProtoReflect() protoreflect.Message {
	mi := &file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[5]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ModeOutcome.ProtoReflect.Descriptor instead.
func (*ModeOutcome) Descriptor() ([]byte, []int) {
	return file_internal_adapter_grpc_propcast_v1_propcast_proto_rawDescGZIP(), []int{5}
}

func (x *ModeOutcome) GetMode() RepaymentMode {
	if x != nil {
		return x.Mode
	}
	return RepaymentMode_REPAYMENT_MODE_UNSPECIFIED
}

func (x *ModeOutcome) GetFinalNetWealth() string {
	if x != nil {
		return x.FinalNetWealth
	}
	return ""
}

func (x *ModeOutcome) GetFinalCumulativeCashflow() string {
	if x != nil {
		return x.FinalCumulativeCashflow
	}
	return ""
}

func (x *ModeOutcome) GetFinalLoanBalance() string {
	if x != nil {
		return x.FinalLoanBalance
	}
	return ""
}

func (x *ModeOutcome) GetTotalInterestPaid() string {
	if x != nil {
		return x.TotalInterestPaid
	}
	return ""
}

func (x *ModeOutcome) GetTotalPrincipalPaid() string {
	if x != nil {
		return x.TotalPrincipalPaid
	}
	return ""
}

type CompareRepaymentModesRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Assumptions *Assumptions `protobuf:"bytes,1,opt,name=assumptions,proto3" json:"assumptions,omitempty"`
}

func (x *CompareRepaymentModesRequest) Reset() {
	*x = CompareRepaymentModesRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[6]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CompareRepaymentModesRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompareRepaymentModesRequest) ProtoMessage() {}

func (x *CompareRepaymentModesRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[6]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompareRepaymentModesRequest.ProtoReflect.Descriptor instead.
func (*CompareRepaymentModesRequest) Descriptor() ([]byte, []int) {
	return file_internal_adapter_grpc_propcast_v1_propcast_proto_rawDescGZIP(), []int{6}
}

func (x *CompareRepaymentModesRequest) GetAssumptions() *Assumptions {
	if x != nil {
		return x.Assumptions
	}
	return nil
}

type CompareRepaymentModesResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	InterestOnly         *ModeOutcome `protobuf:"bytes,1,opt,name=interest_only,json=interestOnly,proto3" json:"interest_only,omitempty"`
	PrincipalAndInterest *ModeOutcome `protobuf:"bytes,2,opt,name=principal_and_interest,json=principalAndInterest,proto3" json:"principal_and_interest,omitempty"`
	NetWealthAdvantage   string       `protobuf:"bytes,3,opt,name=net_wealth_advantage,json=netWealthAdvantage,proto3" json:"net_wealth_advantage,omitempty"`
	InterestSaved        string       `protobuf:"bytes,4,opt,name=interest_saved,json=interestSaved,proto3" json:"interest_saved,omitempty"`
}

func (x *CompareRepaymentModesResponse) Reset() {
	*x = CompareRepaymentModesResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[7]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *CompareRepaymentModesResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*CompareRepaymentModesResponse) ProtoMessage() {}

func (x *CompareRepaymentModesResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[7]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use CompareRepaymentModesResponse.ProtoReflect.Descriptor instead.
func (*CompareRepaymentModesResponse) Descriptor() ([]byte, []int) {
	return file_internal_adapter_grpc_propcast_v1_propcast_proto_rawDescGZIP(), []int{7}
}

func (x *CompareRepaymentModesResponse) GetInterestOnly() *ModeOutcome {
	if x != nil {
		return x.InterestOnly
	}
	return nil
}

func (x *CompareRepaymentModesResponse) GetPrincipalAndInterest() *ModeOutcome {
	if x != nil {
		return x.PrincipalAndInterest
	}
	return nil
}

func (x *CompareRepaymentModesResponse) GetNetWealthAdvantage() string {
	if x != nil {
		return x.NetWealthAdvantage
	}
	return ""
}

func (x *CompareRepaymentModesResponse) GetInterestSaved() string {
	if x != nil {
		return x.InterestSaved
	}
	return ""
}

type ListPresetsRequest struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields
}

func (x *ListPresetsRequest) Reset() {
	*x = ListPresetsRequest{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[8]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ListPresetsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPresetsRequest) ProtoMessage() {}

func (x *ListPresetsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[8]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPresetsRequest.ProtoReflect.Descriptor instead.
func (*ListPresetsRequest) Descriptor() ([]byte, []int) {
	return file_internal_adapter_grpc_propcast_v1_propcast_proto_rawDescGZIP(), []int{8}
}

type Preset struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Id          string       `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name        string       `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Description string       `protobuf:"bytes,3,opt,name=description,proto3" json:"description,omitempty"`
	Assumptions *Assumptions `protobuf:"bytes,4,opt,name=assumptions,proto3" json:"assumptions,omitempty"`
}

func (x *Preset) Reset() {
	*x = Preset{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[9]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *Preset) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Preset) ProtoMessage() {}

func (x *Preset) ProtoReflect() protoreflect.Message {
	mi := &file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[9]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Preset.ProtoReflect.Descriptor instead.
func (*Preset) Descriptor() ([]byte, []int) {
	return file_internal_adapter_grpc_propcast_v1_propcast_proto_rawDescGZIP(), []int{9}
}

func (x *Preset) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Preset) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Preset) GetDescription() string {
	if x != nil {
		return x.Description
	}
	return ""
}

func (x *Preset) GetAssumptions() *Assumptions {
	if x != nil {
		return x.Assumptions
	}
	return nil
}

type ListPresetsResponse struct {
	state         protoimpl.MessageState
	sizeCache     protoimpl.SizeCache
	unknownFields protoimpl.UnknownFields

	Presets          []*Preset `protobuf:"bytes,1,rep,name=presets,proto3" json:"presets,omitempty"`
	MilestoneYears   []int32   `protobuf:"varint,2,rep,packed,name=milestone_years,json=milestoneYears,proto3" json:"milestone_years,omitempty"`
	MarginalTaxBands []string  `protobuf:"bytes,3,rep,name=marginal_tax_bands,json=marginalTaxBands,proto3" json:"marginal_tax_bands,omitempty"`
}

func (x *ListPresetsResponse) Reset() {
	*x = ListPresetsResponse{}
	if protoimpl.UnsafeEnabled {
		mi := &file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[10]
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		ms.StoreMessageInfo(mi)
	}
}

func (x *ListPresetsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPresetsResponse) ProtoMessage() {}

func (x *ListPresetsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[10]
	if protoimpl.UnsafeEnabled && x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPresetsResponse.ProtoReflect.Descriptor instead.
func (*ListPresetsResponse) Descriptor() ([]byte, []int) {
	return file_internal_adapter_grpc_propcast_v1_propcast_proto_rawDescGZIP(), []int{10}
}

func (x *ListPresetsResponse) GetPresets() []*Preset {
	if x != nil {
		return x.Presets
	}
	return nil
}

func (x *ListPresetsResponse) GetMilestoneYears() []int32 {
	if x != nil {
		return x.MilestoneYears
	}
	return nil
}

func (x *ListPresetsResponse) GetMarginalTaxBands() []string {
	if x != nil {
		return x.MarginalTaxBands
	}
	return nil
}

var File_internal_adapter_grpc_propcast_v1_propcast_proto protoreflect.FileDescriptor

var file_internal_adapter_grpc_propcast_v1_propcast_proto_rawDesc = []byte{
	0x0a, 0x30, 0x69, 0x6e, 0x74, 0x65, 0x72, 0x6e, 0x61, 0x6c, 0x2f, 0x61, 0x64, 0x61, 0x70, 0x74,
	0x65, 0x72, 0x2f, 0x67, 0x72, 0x70, 0x63, 0x2f, 0x70, 0x72, 0x6f, 0x70, 0x63, 0x61, 0x73, 0x74,
	0x2f, 0x76, 0x31, 0x2f, 0x70, 0x72, 0x6f, 0x70, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x70, 0x72, 0x6f,
	0x74, 0x6f, 0x12, 0x0b, 0x70, 0x72, 0x6f, 0x70, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x1a,
	0x1f, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2f, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62, 0x75, 0x66,
	0x2f, 0x74, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f,
	0x22, 0xc1, 0x06, 0x0a, 0x0b, 0x41, 0x73, 0x73, 0x75, 0x6d, 0x70, 0x74, 0x69, 0x6f, 0x6e, 0x73,
	0x12, 0x25, 0x0a, 0x0e, 0x70, 0x75, 0x72, 0x63, 0x68, 0x61, 0x73, 0x65, 0x5f, 0x70, 0x72, 0x69,
	0x63, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0d, 0x70, 0x75, 0x72, 0x63, 0x68, 0x61,
	0x73, 0x65, 0x50, 0x72, 0x69, 0x63, 0x65, 0x12, 0x23, 0x0a, 0x0d, 0x75, 0x70, 0x66, 0x72, 0x6f,
	0x6e, 0x74, 0x5f, 0x63, 0x6f, 0x73, 0x74, 0x73, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0c,
	0x75, 0x70, 0x66, 0x72, 0x6f, 0x6e, 0x74, 0x43, 0x6f, 0x73, 0x74, 0x73, 0x12, 0x2d, 0x0a, 0x13,
	0x6c, 0x6f, 0x61, 0x6e, 0x5f, 0x74, 0x6f, 0x5f, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x5f, 0x72, 0x61,
	0x74, 0x69, 0x6f, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x10, 0x6c, 0x6f, 0x61, 0x6e, 0x54,
	0x6f, 0x56, 0x61, 0x6c, 0x75, 0x65, 0x52, 0x61, 0x74, 0x69, 0x6f, 0x12, 0x30, 0x0a, 0x14, 0x61,
	0x6e, 0x6e, 0x75, 0x61, 0x6c, 0x5f, 0x69, 0x6e, 0x74, 0x65, 0x72, 0x65, 0x73, 0x74, 0x5f, 0x72,
	0x61, 0x74, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x12, 0x61, 0x6e, 0x6e, 0x75, 0x61,
	0x6c, 0x49, 0x6e, 0x74, 0x65, 0x72, 0x65, 0x73, 0x74, 0x52, 0x61, 0x74, 0x65, 0x12, 0x26, 0x0a,
	0x0f, 0x6c, 0x6f, 0x61, 0x6e, 0x5f, 0x74, 0x65, 0x72, 0x6d, 0x5f, 0x79, 0x65, 0x61, 0x72, 0x73,
	0x18, 0x05, 0x20, 0x01, 0x28, 0x05, 0x52, 0x0d, 0x6c, 0x6f, 0x61, 0x6e, 0x54, 0x65, 0x72, 0x6d,
	0x59, 0x65, 0x61, 0x72, 0x73, 0x12, 0x41, 0x0a, 0x0e, 0x72, 0x65, 0x70, 0x61, 0x79, 0x6d, 0x65,
	0x6e, 0x74, 0x5f, 0x6d, 0x6f, 0x64, 0x65, 0x18, 0x06, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x1a, 0x2e,
	0x70, 0x72, 0x6f, 0x70, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x65, 0x70, 0x61,
	0x79, 0x6d, 0x65, 0x6e, 0x74, 0x4d, 0x6f, 0x64, 0x65, 0x52, 0x0d, 0x72, 0x65, 0x70, 0x61, 0x79,
	0x6d, 0x65, 0x6e, 0x74, 0x4d, 0x6f, 0x64, 0x65, 0x12, 0x1f, 0x0a, 0x0b, 0x77, 0x65, 0x65, 0x6b,
	0x6c, 0x79, 0x5f, 0x72, 0x65, 0x6e, 0x74, 0x18, 0x07, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0a, 0x77,
	0x65, 0x65, 0x6b, 0x6c, 0x79, 0x52, 0x65, 0x6e, 0x74, 0x12, 0x21, 0x0a, 0x0c, 0x76, 0x61, 0x63,
	0x61, 0x6e, 0x63, 0x79, 0x5f, 0x72, 0x61, 0x74, 0x65, 0x18, 0x08, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x0b, 0x76, 0x61, 0x63, 0x61, 0x6e, 0x63, 0x79, 0x52, 0x61, 0x74, 0x65, 0x12, 0x2e, 0x0a, 0x13,
	0x63, 0x61, 0x70, 0x69, 0x74, 0x61, 0x6c, 0x5f, 0x67, 0x72, 0x6f, 0x77, 0x74, 0x68, 0x5f, 0x72,
	0x61, 0x74, 0x65, 0x18, 0x09, 0x20, 0x01, 0x28, 0x09, 0x52, 0x11, 0x63, 0x61, 0x70, 0x69, 0x74,
	0x61, 0x6c, 0x47, 0x72, 0x6f, 0x77, 0x74, 0x68, 0x52, 0x61, 0x74, 0x65, 0x12, 0x2c, 0x0a, 0x12,
	0x72, 0x65, 0x6e, 0x74, 0x61, 0x6c, 0x5f, 0x67, 0x72, 0x6f, 0x77, 0x74, 0x68, 0x5f, 0x72, 0x61,
	0x74, 0x65, 0x18, 0x0a, 0x20, 0x01, 0x28, 0x09, 0x52, 0x10, 0x72, 0x65, 0x6e, 0x74, 0x61, 0x6c,
	0x47, 0x72, 0x6f, 0x77, 0x74, 0x68, 0x52, 0x61, 0x74, 0x65, 0x12, 0x2e, 0x0a, 0x13, 0x63, 0x6f,
	0x73, 0x74, 0x5f, 0x69, 0x6e, 0x66, 0x6c, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x5f, 0x72, 0x61, 0x74,
	0x65, 0x18, 0x0b, 0x20, 0x01, 0x28, 0x09, 0x52, 0x11, 0x63, 0x6f, 0x73, 0x74, 0x49, 0x6e, 0x66,
	0x6c, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x61, 0x74, 0x65, 0x12, 0x2c, 0x0a, 0x12, 0x66, 0x69,
	0x78, 0x65, 0x64, 0x5f, 0x61, 0x6e, 0x6e, 0x75, 0x61, 0x6c, 0x5f, 0x63, 0x6f, 0x73, 0x74, 0x73,
	0x18, 0x0c, 0x20, 0x01, 0x28, 0x09, 0x52, 0x10, 0x66, 0x69, 0x78, 0x65, 0x64, 0x41, 0x6e, 0x6e,
	0x75, 0x61, 0x6c, 0x43, 0x6f, 0x73, 0x74, 0x73, 0x12, 0x2e, 0x0a, 0x13, 0x6d, 0x61, 0x6e, 0x61,
	0x67, 0x65, 0x6d, 0x65, 0x6e, 0x74, 0x5f, 0x66, 0x65, 0x65, 0x5f, 0x72, 0x61, 0x74, 0x65, 0x18,
	0x0d, 0x20, 0x01, 0x28, 0x09, 0x52, 0x11, 0x6d, 0x61, 0x6e, 0x61, 0x67, 0x65, 0x6d, 0x65, 0x6e,
	0x74, 0x46, 0x65, 0x65, 0x52, 0x61, 0x74, 0x65, 0x12, 0x29, 0x0a, 0x10, 0x6d, 0x61, 0x69, 0x6e,
	0x74, 0x65, 0x6e, 0x61, 0x6e, 0x63, 0x65, 0x5f, 0x72, 0x61, 0x74, 0x65, 0x18, 0x0e, 0x20, 0x01,
	0x28, 0x09, 0x52, 0x0f, 0x6d, 0x61, 0x69, 0x6e, 0x74, 0x65, 0x6e, 0x61, 0x6e, 0x63, 0x65, 0x52,
	0x61, 0x74, 0x65, 0x12, 0x2a, 0x0a, 0x11, 0x6d, 0x61, 0x72, 0x67, 0x69, 0x6e, 0x61, 0x6c, 0x5f,
	0x74, 0x61, 0x78, 0x5f, 0x72, 0x61, 0x74, 0x65, 0x18, 0x0f, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0f,
	0x6d, 0x61, 0x72, 0x67, 0x69, 0x6e, 0x61, 0x6c, 0x54, 0x61, 0x78, 0x52, 0x61, 0x74, 0x65, 0x12,
	0x36, 0x0a, 0x17, 0x66, 0x69, 0x72, 0x73, 0x74, 0x5f, 0x79, 0x65, 0x61, 0x72, 0x5f, 0x64, 0x65,
	0x70, 0x72, 0x65, 0x63, 0x69, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x10, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x15, 0x66, 0x69, 0x72, 0x73, 0x74, 0x59, 0x65, 0x61, 0x72, 0x44, 0x65, 0x70, 0x72, 0x65,
	0x63, 0x69, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x36, 0x0a, 0x17, 0x64, 0x65, 0x70, 0x72, 0x65,
	0x63, 0x69, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x5f, 0x64, 0x65, 0x63, 0x61, 0x79, 0x5f, 0x72, 0x61,
	0x74, 0x65, 0x18, 0x11, 0x20, 0x01, 0x28, 0x09, 0x52, 0x15, 0x64, 0x65, 0x70, 0x72, 0x65, 0x63,
	0x69, 0x61, 0x74, 0x69, 0x6f, 0x6e, 0x44, 0x65, 0x63, 0x61, 0x79, 0x52, 0x61, 0x74, 0x65, 0x12,
	0x23, 0x0a, 0x0d, 0x68, 0x6f, 0x72, 0x69, 0x7a, 0x6f, 0x6e, 0x5f, 0x79, 0x65, 0x61, 0x72, 0x73,
	0x18, 0x12, 0x20, 0x01, 0x28, 0x05, 0x52, 0x0c, 0x68, 0x6f, 0x72, 0x69, 0x7a, 0x6f, 0x6e, 0x59,
	0x65, 0x61, 0x72, 0x73, 0x22, 0xad, 0x03, 0x0a, 0x0c, 0x59, 0x65, 0x61, 0x72, 0x6c, 0x79, 0x52,
	0x65, 0x63, 0x6f, 0x72, 0x64, 0x12, 0x12, 0x0a, 0x04, 0x79, 0x65, 0x61, 0x72, 0x18, 0x01, 0x20,
	0x01, 0x28, 0x05, 0x52, 0x04, 0x79, 0x65, 0x61, 0x72, 0x12, 0x21, 0x0a, 0x0c, 0x6d, 0x61, 0x72,
	0x6b, 0x65, 0x74, 0x5f, 0x76, 0x61, 0x6c, 0x75, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x0b, 0x6d, 0x61, 0x72, 0x6b, 0x65, 0x74, 0x56, 0x61, 0x6c, 0x75, 0x65, 0x12, 0x32, 0x0a, 0x15,
	0x65, 0x66, 0x66, 0x65, 0x63, 0x74, 0x69, 0x76, 0x65, 0x5f, 0x61, 0x6e, 0x6e, 0x75, 0x61, 0x6c,
	0x5f, 0x72, 0x65, 0x6e, 0x74, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x13, 0x65, 0x66, 0x66,
	0x65, 0x63, 0x74, 0x69, 0x76, 0x65, 0x41, 0x6e, 0x6e, 0x75, 0x61, 0x6c, 0x52, 0x65, 0x6e, 0x74,
	0x12, 0x21, 0x0a, 0x0c, 0x6c, 0x6f, 0x61, 0x6e, 0x5f, 0x62, 0x61, 0x6c, 0x61, 0x6e, 0x63, 0x65,
	0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0b, 0x6c, 0x6f, 0x61, 0x6e, 0x42, 0x61, 0x6c, 0x61,
	0x6e, 0x63, 0x65, 0x12, 0x23, 0x0a, 0x0d, 0x69, 0x6e, 0x74, 0x65, 0x72, 0x65, 0x73, 0x74, 0x5f,
	0x70, 0x61, 0x69, 0x64, 0x18, 0x05, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0c, 0x69, 0x6e, 0x74, 0x65,
	0x72, 0x65, 0x73, 0x74, 0x50, 0x61, 0x69, 0x64, 0x12, 0x25, 0x0a, 0x0e, 0x70, 0x72, 0x69, 0x6e,
	0x63, 0x69, 0x70, 0x61, 0x6c, 0x5f, 0x70, 0x61, 0x69, 0x64, 0x18, 0x06, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x0d, 0x70, 0x72, 0x69, 0x6e, 0x63, 0x69, 0x70, 0x61, 0x6c, 0x50, 0x61, 0x69, 0x64, 0x12,
	0x28, 0x0a, 0x10, 0x70, 0x72, 0x65, 0x5f, 0x74, 0x61, 0x78, 0x5f, 0x63, 0x61, 0x73, 0x68, 0x66,
	0x6c, 0x6f, 0x77, 0x18, 0x07, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0e, 0x70, 0x72, 0x65, 0x54, 0x61,
	0x78, 0x43, 0x61, 0x73, 0x68, 0x66, 0x6c, 0x6f, 0x77, 0x12, 0x1d, 0x0a, 0x0a, 0x74, 0x61, 0x78,
	0x5f, 0x69, 0x6d, 0x70, 0x61, 0x63, 0x74, 0x18, 0x08, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x74,
	0x61, 0x78, 0x49, 0x6d, 0x70, 0x61, 0x63, 0x74, 0x12, 0x2a, 0x0a, 0x11, 0x70, 0x6f, 0x73, 0x74,
	0x5f, 0x74, 0x61, 0x78, 0x5f, 0x63, 0x61, 0x73, 0x68, 0x66, 0x6c, 0x6f, 0x77, 0x18, 0x09, 0x20,
	0x01, 0x28, 0x09, 0x52, 0x0f, 0x70, 0x6f, 0x73, 0x74, 0x54, 0x61, 0x78, 0x43, 0x61, 0x73, 0x68,
	0x66, 0x6c, 0x6f, 0x77, 0x12, 0x2f, 0x0a, 0x13, 0x63, 0x75, 0x6d, 0x75, 0x6c, 0x61, 0x74, 0x69,
	0x76, 0x65, 0x5f, 0x63, 0x61, 0x73, 0x68, 0x66, 0x6c, 0x6f, 0x77, 0x18, 0x0a, 0x20, 0x01, 0x28,
	0x09, 0x52, 0x12, 0x63, 0x75, 0x6d, 0x75, 0x6c, 0x61, 0x74, 0x69, 0x76, 0x65, 0x43, 0x61, 0x73,
	0x68, 0x66, 0x6c, 0x6f, 0x77, 0x12, 0x1d, 0x0a, 0x0a, 0x6e, 0x65, 0x74, 0x5f, 0x77, 0x65, 0x61,
	0x6c, 0x74, 0x68, 0x18, 0x0b, 0x20, 0x01, 0x28, 0x09, 0x52, 0x09, 0x6e, 0x65, 0x74, 0x57, 0x65,
	0x61, 0x6c, 0x74, 0x68, 0x22, 0xe0, 0x01, 0x0a, 0x07, 0x53, 0x75, 0x6d, 0x6d, 0x61, 0x72, 0x79,
	0x12, 0x2c, 0x0a, 0x12, 0x67, 0x72, 0x6f, 0x73, 0x73, 0x5f, 0x72, 0x65, 0x6e, 0x74, 0x61, 0x6c,
	0x5f, 0x79, 0x69, 0x65, 0x6c, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x10, 0x67, 0x72,
	0x6f, 0x73, 0x73, 0x52, 0x65, 0x6e, 0x74, 0x61, 0x6c, 0x59, 0x69, 0x65, 0x6c, 0x64, 0x12, 0x37,
	0x0a, 0x18, 0x63, 0x61, 0x73, 0x68, 0x66, 0x6c, 0x6f, 0x77, 0x5f, 0x62, 0x72, 0x65, 0x61, 0x6b,
	0x5f, 0x65, 0x76, 0x65, 0x6e, 0x5f, 0x79, 0x65, 0x61, 0x72, 0x18, 0x02, 0x20, 0x01, 0x28, 0x05,
	0x52, 0x15, 0x63, 0x61, 0x73, 0x68, 0x66, 0x6c, 0x6f, 0x77, 0x42, 0x72, 0x65, 0x61, 0x6b, 0x45,
	0x76, 0x65, 0x6e, 0x59, 0x65, 0x61, 0x72, 0x12, 0x33, 0x0a, 0x16, 0x77, 0x65, 0x61, 0x6c, 0x74,
	0x68, 0x5f, 0x62, 0x72, 0x65, 0x61, 0x6b, 0x5f, 0x65, 0x76, 0x65, 0x6e, 0x5f, 0x79, 0x65, 0x61,
	0x72, 0x18, 0x03, 0x20, 0x01, 0x28, 0x05, 0x52, 0x13, 0x77, 0x65, 0x61, 0x6c, 0x74, 0x68, 0x42,
	0x72, 0x65, 0x61, 0x6b, 0x45, 0x76, 0x65, 0x6e, 0x59, 0x65, 0x61, 0x72, 0x12, 0x39, 0x0a, 0x0a,
	0x6d, 0x69, 0x6c, 0x65, 0x73, 0x74, 0x6f, 0x6e, 0x65, 0x73, 0x18, 0x04, 0x20, 0x03, 0x28, 0x0b,
	0x32, 0x19, 0x2e, 0x70, 0x72, 0x6f, 0x70, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x59,
	0x65, 0x61, 0x72, 0x6c, 0x79, 0x52, 0x65, 0x63, 0x6f, 0x72, 0x64, 0x52, 0x0a, 0x6d, 0x69, 0x6c,
	0x65, 0x73, 0x74, 0x6f, 0x6e, 0x65, 0x73, 0x22, 0x52, 0x0a, 0x14, 0x52, 0x75, 0x6e, 0x50, 0x72,
	0x6f, 0x6a, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x12,
	0x3a, 0x0a, 0x0b, 0x61, 0x73, 0x73, 0x75, 0x6d, 0x70, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x18, 0x01,
	0x20, 0x01, 0x28, 0x0b, 0x32, 0x18, 0x2e, 0x70, 0x72, 0x6f, 0x70, 0x63, 0x61, 0x73, 0x74, 0x2e,
	0x76, 0x31, 0x2e, 0x41, 0x73, 0x73, 0x75, 0x6d, 0x70, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x52, 0x0b,
	0x61, 0x73, 0x73, 0x75, 0x6d, 0x70, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x22, 0xe0, 0x01, 0x0a, 0x15,
	0x52, 0x75, 0x6e, 0x50, 0x72, 0x6f, 0x6a, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x23, 0x0a, 0x0d, 0x70, 0x72, 0x6f, 0x6a, 0x65, 0x63, 0x74,
	0x69, 0x6f, 0x6e, 0x5f, 0x69, 0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0c, 0x70, 0x72,
	0x6f, 0x6a, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x49, 0x64, 0x12, 0x3d, 0x0a, 0x0c, 0x67, 0x65,
	0x6e, 0x65, 0x72, 0x61, 0x74, 0x65, 0x64, 0x5f, 0x61, 0x74, 0x18, 0x02, 0x20, 0x01, 0x28, 0x0b,
	0x32, 0x1a, 0x2e, 0x67, 0x6f, 0x6f, 0x67, 0x6c, 0x65, 0x2e, 0x70, 0x72, 0x6f, 0x74, 0x6f, 0x62,
	0x75, 0x66, 0x2e, 0x54, 0x69, 0x6d, 0x65, 0x73, 0x74, 0x61, 0x6d, 0x70, 0x52, 0x0b, 0x67, 0x65,
	0x6e, 0x65, 0x72, 0x61, 0x74, 0x65, 0x64, 0x41, 0x74, 0x12, 0x33, 0x0a, 0x07, 0x72, 0x65, 0x63,
	0x6f, 0x72, 0x64, 0x73, 0x18, 0x03, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x19, 0x2e, 0x70, 0x72, 0x6f,
	0x70, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x59, 0x65, 0x61, 0x72, 0x6c, 0x79, 0x52,
	0x65, 0x63, 0x6f, 0x72, 0x64, 0x52, 0x07, 0x72, 0x65, 0x63, 0x6f, 0x72, 0x64, 0x73, 0x12, 0x2e,
	0x0a, 0x07, 0x73, 0x75, 0x6d, 0x6d, 0x61, 0x72, 0x79, 0x18, 0x04, 0x20, 0x01, 0x28, 0x0b, 0x32,
	0x14, 0x2e, 0x70, 0x72, 0x6f, 0x70, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x53, 0x75,
	0x6d, 0x6d, 0x61, 0x72, 0x79, 0x52, 0x07, 0x73, 0x75, 0x6d, 0x6d, 0x61, 0x72, 0x79, 0x22, 0xb3,
	0x02, 0x0a, 0x0b, 0x4d, 0x6f, 0x64, 0x65, 0x4f, 0x75, 0x74, 0x63, 0x6f, 0x6d, 0x65, 0x12, 0x2e,
	0x0a, 0x04, 0x6d, 0x6f, 0x64, 0x65, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0e, 0x32, 0x1a, 0x2e, 0x70,
	0x72, 0x6f, 0x70, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x65, 0x70, 0x61, 0x79,
	0x6d, 0x65, 0x6e, 0x74, 0x4d, 0x6f, 0x64, 0x65, 0x52, 0x04, 0x6d, 0x6f, 0x64, 0x65, 0x12, 0x28,
	0x0a, 0x10, 0x66, 0x69, 0x6e, 0x61, 0x6c, 0x5f, 0x6e, 0x65, 0x74, 0x5f, 0x77, 0x65, 0x61, 0x6c,
	0x74, 0x68, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0e, 0x66, 0x69, 0x6e, 0x61, 0x6c, 0x4e,
	0x65, 0x74, 0x57, 0x65, 0x61, 0x6c, 0x74, 0x68, 0x12, 0x3a, 0x0a, 0x19, 0x66, 0x69, 0x6e, 0x61,
	0x6c, 0x5f, 0x63, 0x75, 0x6d, 0x75, 0x6c, 0x61, 0x74, 0x69, 0x76, 0x65, 0x5f, 0x63, 0x61, 0x73,
	0x68, 0x66, 0x6c, 0x6f, 0x77, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52, 0x17, 0x66, 0x69, 0x6e,
	0x61, 0x6c, 0x43, 0x75, 0x6d, 0x75, 0x6c, 0x61, 0x74, 0x69, 0x76, 0x65, 0x43, 0x61, 0x73, 0x68,
	0x66, 0x6c, 0x6f, 0x77, 0x12, 0x2c, 0x0a, 0x12, 0x66, 0x69, 0x6e, 0x61, 0x6c, 0x5f, 0x6c, 0x6f,
	0x61, 0x6e, 0x5f, 0x62, 0x61, 0x6c, 0x61, 0x6e, 0x63, 0x65, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x10, 0x66, 0x69, 0x6e, 0x61, 0x6c, 0x4c, 0x6f, 0x61, 0x6e, 0x42, 0x61, 0x6c, 0x61, 0x6e,
	0x63, 0x65, 0x12, 0x2e, 0x0a, 0x13, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x5f, 0x69, 0x6e, 0x74, 0x65,
	0x72, 0x65, 0x73, 0x74, 0x5f, 0x70, 0x61, 0x69, 0x64, 0x18, 0x05, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x11, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x49, 0x6e, 0x74, 0x65, 0x72, 0x65, 0x73, 0x74, 0x50, 0x61,
	0x69, 0x64, 0x12, 0x30, 0x0a, 0x14, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x5f, 0x70, 0x72, 0x69, 0x6e,
	0x63, 0x69, 0x70, 0x61, 0x6c, 0x5f, 0x70, 0x61, 0x69, 0x64, 0x18, 0x06, 0x20, 0x01, 0x28, 0x09,
	0x52, 0x12, 0x74, 0x6f, 0x74, 0x61, 0x6c, 0x50, 0x72, 0x69, 0x6e, 0x63, 0x69, 0x70, 0x61, 0x6c,
	0x50, 0x61, 0x69, 0x64, 0x22, 0x5a, 0x0a, 0x1c, 0x43, 0x6f, 0x6d, 0x70, 0x61, 0x72, 0x65, 0x52,
	0x65, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x4d, 0x6f, 0x64, 0x65, 0x73, 0x52, 0x65, 0x71,
	0x75, 0x65, 0x73, 0x74, 0x12, 0x3a, 0x0a, 0x0b, 0x61, 0x73, 0x73, 0x75, 0x6d, 0x70, 0x74, 0x69,
	0x6f, 0x6e, 0x73, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x18, 0x2e, 0x70, 0x72, 0x6f, 0x70,
	0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x73, 0x73, 0x75, 0x6d, 0x70, 0x74, 0x69,
	0x6f, 0x6e, 0x73, 0x52, 0x0b, 0x61, 0x73, 0x73, 0x75, 0x6d, 0x70, 0x74, 0x69, 0x6f, 0x6e, 0x73,
	0x22, 0x87, 0x02, 0x0a, 0x1d, 0x43, 0x6f, 0x6d, 0x70, 0x61, 0x72, 0x65, 0x52, 0x65, 0x70, 0x61,
	0x79, 0x6d, 0x65, 0x6e, 0x74, 0x4d, 0x6f, 0x64, 0x65, 0x73, 0x52, 0x65, 0x73, 0x70, 0x6f, 0x6e,
	0x73, 0x65, 0x12, 0x3d, 0x0a, 0x0d, 0x69, 0x6e, 0x74, 0x65, 0x72, 0x65, 0x73, 0x74, 0x5f, 0x6f,
	0x6e, 0x6c, 0x79, 0x18, 0x01, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x18, 0x2e, 0x70, 0x72, 0x6f, 0x70,
	0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x4d, 0x6f, 0x64, 0x65, 0x4f, 0x75, 0x74, 0x63,
	0x6f, 0x6d, 0x65, 0x52, 0x0c, 0x69, 0x6e, 0x74, 0x65, 0x72, 0x65, 0x73, 0x74, 0x4f, 0x6e, 0x6c,
	0x79, 0x12, 0x4e, 0x0a, 0x16, 0x70, 0x72, 0x69, 0x6e, 0x63, 0x69, 0x70, 0x61, 0x6c, 0x5f, 0x61,
	0x6e, 0x64, 0x5f, 0x69, 0x6e, 0x74, 0x65, 0x72, 0x65, 0x73, 0x74, 0x18, 0x02, 0x20, 0x01, 0x28,
	0x0b, 0x32, 0x18, 0x2e, 0x70, 0x72, 0x6f, 0x70, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e,
	0x4d, 0x6f, 0x64, 0x65, 0x4f, 0x75, 0x74, 0x63, 0x6f, 0x6d, 0x65, 0x52, 0x14, 0x70, 0x72, 0x69,
	0x6e, 0x63, 0x69, 0x70, 0x61, 0x6c, 0x41, 0x6e, 0x64, 0x49, 0x6e, 0x74, 0x65, 0x72, 0x65, 0x73,
	0x74, 0x12, 0x30, 0x0a, 0x14, 0x6e, 0x65, 0x74, 0x5f, 0x77, 0x65, 0x61, 0x6c, 0x74, 0x68, 0x5f,
	0x61, 0x64, 0x76, 0x61, 0x6e, 0x74, 0x61, 0x67, 0x65, 0x18, 0x03, 0x20, 0x01, 0x28, 0x09, 0x52,
	0x12, 0x6e, 0x65, 0x74, 0x57, 0x65, 0x61, 0x6c, 0x74, 0x68, 0x41, 0x64, 0x76, 0x61, 0x6e, 0x74,
	0x61, 0x67, 0x65, 0x12, 0x25, 0x0a, 0x0e, 0x69, 0x6e, 0x74, 0x65, 0x72, 0x65, 0x73, 0x74, 0x5f,
	0x73, 0x61, 0x76, 0x65, 0x64, 0x18, 0x04, 0x20, 0x01, 0x28, 0x09, 0x52, 0x0d, 0x69, 0x6e, 0x74,
	0x65, 0x72, 0x65, 0x73, 0x74, 0x53, 0x61, 0x76, 0x65, 0x64, 0x22, 0x14, 0x0a, 0x12, 0x4c, 0x69,
	0x73, 0x74, 0x50, 0x72, 0x65, 0x73, 0x65, 0x74, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74,
	0x22, 0x8a, 0x01, 0x0a, 0x06, 0x50, 0x72, 0x65, 0x73, 0x65, 0x74, 0x12, 0x0e, 0x0a, 0x02, 0x69,
	0x64, 0x18, 0x01, 0x20, 0x01, 0x28, 0x09, 0x52, 0x02, 0x69, 0x64, 0x12, 0x12, 0x0a, 0x04, 0x6e,
	0x61, 0x6d, 0x65, 0x18, 0x02, 0x20, 0x01, 0x28, 0x09, 0x52, 0x04, 0x6e, 0x61, 0x6d, 0x65, 0x12,
	0x20, 0x0a, 0x0b, 0x64, 0x65, 0x73, 0x63, 0x72, 0x69, 0x70, 0x74, 0x69, 0x6f, 0x6e, 0x18, 0x03,
	0x20, 0x01, 0x28, 0x09, 0x52, 0x0b, 0x64, 0x65, 0x73, 0x63, 0x72, 0x69, 0x70, 0x74, 0x69, 0x6f,
	0x6e, 0x12, 0x3a, 0x0a, 0x0b, 0x61, 0x73, 0x73, 0x75, 0x6d, 0x70, 0x74, 0x69, 0x6f, 0x6e, 0x73,
	0x18, 0x04, 0x20, 0x01, 0x28, 0x0b, 0x32, 0x18, 0x2e, 0x70, 0x72, 0x6f, 0x70, 0x63, 0x61, 0x73,
	0x74, 0x2e, 0x76, 0x31, 0x2e, 0x41, 0x73, 0x73, 0x75, 0x6d, 0x70, 0x74, 0x69, 0x6f, 0x6e, 0x73,
	0x52, 0x0b, 0x61, 0x73, 0x73, 0x75, 0x6d, 0x70, 0x74, 0x69, 0x6f, 0x6e, 0x73, 0x22, 0x9b, 0x01,
	0x0a, 0x13, 0x4c, 0x69, 0x73, 0x74, 0x50, 0x72, 0x65, 0x73, 0x65, 0x74, 0x73, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x2d, 0x0a, 0x07, 0x70, 0x72, 0x65, 0x73, 0x65, 0x74, 0x73,
	0x18, 0x01, 0x20, 0x03, 0x28, 0x0b, 0x32, 0x13, 0x2e, 0x70, 0x72, 0x6f, 0x70, 0x63, 0x61, 0x73,
	0x74, 0x2e, 0x76, 0x31, 0x2e, 0x50, 0x72, 0x65, 0x73, 0x65, 0x74, 0x52, 0x07, 0x70, 0x72, 0x65,
	0x73, 0x65, 0x74, 0x73, 0x12, 0x27, 0x0a, 0x0f, 0x6d, 0x69, 0x6c, 0x65, 0x73, 0x74, 0x6f, 0x6e,
	0x65, 0x5f, 0x79, 0x65, 0x61, 0x72, 0x73, 0x18, 0x02, 0x20, 0x03, 0x28, 0x05, 0x52, 0x0e, 0x6d,
	0x69, 0x6c, 0x65, 0x73, 0x74, 0x6f, 0x6e, 0x65, 0x59, 0x65, 0x61, 0x72, 0x73, 0x12, 0x2c, 0x0a,
	0x12, 0x6d, 0x61, 0x72, 0x67, 0x69, 0x6e, 0x61, 0x6c, 0x5f, 0x74, 0x61, 0x78, 0x5f, 0x62, 0x61,
	0x6e, 0x64, 0x73, 0x18, 0x03, 0x20, 0x03, 0x28, 0x09, 0x52, 0x10, 0x6d, 0x61, 0x72, 0x67, 0x69,
	0x6e, 0x61, 0x6c, 0x54, 0x61, 0x78, 0x42, 0x61, 0x6e, 0x64, 0x73, 0x2a, 0x7c, 0x0a, 0x0d, 0x52,
	0x65, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x4d, 0x6f, 0x64, 0x65, 0x12, 0x1e, 0x0a, 0x1a,
	0x52, 0x45, 0x50, 0x41, 0x59, 0x4d, 0x45, 0x4e, 0x54, 0x5f, 0x4d, 0x4f, 0x44, 0x45, 0x5f, 0x55,
	0x4e, 0x53, 0x50, 0x45, 0x43, 0x49, 0x46, 0x49, 0x45, 0x44, 0x10, 0x00, 0x12, 0x20, 0x0a, 0x1c,
	0x52, 0x45, 0x50, 0x41, 0x59, 0x4d, 0x45, 0x4e, 0x54, 0x5f, 0x4d, 0x4f, 0x44, 0x45, 0x5f, 0x49,
	0x4e, 0x54, 0x45, 0x52, 0x45, 0x53, 0x54, 0x5f, 0x4f, 0x4e, 0x4c, 0x59, 0x10, 0x01, 0x12, 0x29,
	0x0a, 0x25, 0x52, 0x45, 0x50, 0x41, 0x59, 0x4d, 0x45, 0x4e, 0x54, 0x5f, 0x4d, 0x4f, 0x44, 0x45,
	0x5f, 0x50, 0x52, 0x49, 0x4e, 0x43, 0x49, 0x50, 0x41, 0x4c, 0x5f, 0x41, 0x4e, 0x44, 0x5f, 0x49,
	0x4e, 0x54, 0x45, 0x52, 0x45, 0x53, 0x54, 0x10, 0x02, 0x32, 0xab, 0x02, 0x0a, 0x0f, 0x50, 0x72,
	0x6f, 0x70, 0x43, 0x61, 0x73, 0x74, 0x53, 0x65, 0x72, 0x76, 0x69, 0x63, 0x65, 0x12, 0x56, 0x0a,
	0x0d, 0x52, 0x75, 0x6e, 0x50, 0x72, 0x6f, 0x6a, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x12, 0x21,
	0x2e, 0x70, 0x72, 0x6f, 0x70, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x52, 0x75, 0x6e,
	0x50, 0x72, 0x6f, 0x6a, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73,
	0x74, 0x1a, 0x22, 0x2e, 0x70, 0x72, 0x6f, 0x70, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e,
	0x52, 0x75, 0x6e, 0x50, 0x72, 0x6f, 0x6a, 0x65, 0x63, 0x74, 0x69, 0x6f, 0x6e, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x6e, 0x0a, 0x15, 0x43, 0x6f, 0x6d, 0x70, 0x61, 0x72, 0x65,
	0x52, 0x65, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x4d, 0x6f, 0x64, 0x65, 0x73, 0x12, 0x29,
	0x2e, 0x70, 0x72, 0x6f, 0x70, 0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x6f, 0x6d,
	0x70, 0x61, 0x72, 0x65, 0x52, 0x65, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x4d, 0x6f, 0x64,
	0x65, 0x73, 0x52, 0x65, 0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x2a, 0x2e, 0x70, 0x72, 0x6f, 0x70,
	0x63, 0x61, 0x73, 0x74, 0x2e, 0x76, 0x31, 0x2e, 0x43, 0x6f, 0x6d, 0x70, 0x61, 0x72, 0x65, 0x52,
	0x65, 0x70, 0x61, 0x79, 0x6d, 0x65, 0x6e, 0x74, 0x4d, 0x6f, 0x64, 0x65, 0x73, 0x52, 0x65, 0x73,
	0x70, 0x6f, 0x6e, 0x73, 0x65, 0x12, 0x50, 0x0a, 0x0b, 0x4c, 0x69, 0x73, 0x74, 0x50, 0x72, 0x65,
	0x73, 0x65, 0x74, 0x73, 0x12, 0x1f, 0x2e, 0x70, 0x72, 0x6f, 0x70, 0x63, 0x61, 0x73, 0x74, 0x2e,
	0x76, 0x31, 0x2e, 0x4c, 0x69, 0x73, 0x74, 0x50, 0x72, 0x65, 0x73, 0x65, 0x74, 0x73, 0x52, 0x65,
	0x71, 0x75, 0x65, 0x73, 0x74, 0x1a, 0x20, 0x2e, 0x70, 0x72, 0x6f, 0x70, 0x63, 0x61, 0x73, 0x74,
	0x2e, 0x76, 0x31, 0x2e, 0x4c, 0x69, 0x73, 0x74, 0x50, 0x72, 0x65, 0x73, 0x65, 0x74, 0x73, 0x52,
	0x65, 0x73, 0x70, 0x6f, 0x6e, 0x73, 0x65, 0x42, 0x55, 0x5a, 0x53, 0x67, 0x69, 0x74, 0x68, 0x75,
	0x62, 0x2e, 0x63, 0x6f, 0x6d, 0x2f, 0x61, 0x75, 0x73, 0x75, 0x6e, 0x67, 0x72, 0x6f, 0x75, 0x70,
	0x2f, 0x70, 0x72, 0x6f, 0x70, 0x63, 0x61, 0x73, 0x74, 0x2d, 0x62, 0x61, 0x63, 0x6b, 0x65, 0x6e,
	0x64, 0x2f, 0x69, 0x6e, 0x74, 0x65, 0x72, 0x6e, 0x61, 0x6c, 0x2f, 0x61, 0x64, 0x61, 0x70, 0x74,
	0x65, 0x72, 0x2f, 0x67, 0x72, 0x70, 0x63, 0x2f, 0x70, 0x72, 0x6f, 0x70, 0x63, 0x61, 0x73, 0x74,
	0x2f, 0x76, 0x31, 0x3b, 0x70, 0x72, 0x6f, 0x70, 0x63, 0x61, 0x73, 0x74, 0x76, 0x31, 0x62, 0x06,
	0x70, 0x72, 0x6f, 0x74, 0x6f, 0x33,
}

var (
	file_internal_adapter_grpc_propcast_v1_propcast_proto_rawDescOnce sync.Once
	file_internal_adapter_grpc_propcast_v1_propcast_proto_rawDescData = file_internal_adapter_grpc_propcast_v1_propcast_proto_rawDesc
)

func file_internal_adapter_grpc_propcast_v1_propcast_proto_rawDescGZIP() []byte {
	file_internal_adapter_grpc_propcast_v1_propcast_proto_rawDescOnce.Do(func() {
		file_internal_adapter_grpc_propcast_v1_propcast_proto_rawDescData = protoimpl.X.CompressGZIP(file_internal_adapter_grpc_propcast_v1_propcast_proto_rawDescData)
	})
	return file_internal_adapter_grpc_propcast_v1_propcast_proto_rawDescData
}

var file_internal_adapter_grpc_propcast_v1_propcast_proto_enumTypes = make([]protoimpl.EnumInfo, 1)
var file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes = make([]protoimpl.MessageInfo, 11)
var file_internal_adapter_grpc_propcast_v1_propcast_proto_goTypes = []any{
	(RepaymentMode)(0),                    // 0: propcast.v1.RepaymentMode
	(*Assumptions)(nil),                   // 1: propcast.v1.Assumptions
	(*YearlyRecord)(nil),                  // 2: propcast.v1.YearlyRecord
	(*Summary)(nil),                       // 3: propcast.v1.Summary
	(*RunProjectionRequest)(nil),          // 4: propcast.v1.RunProjectionRequest
	(*RunProjectionResponse)(nil),         // 5: propcast.v1.RunProjectionResponse
	(*ModeOutcome)(nil),                   // 6: propcast.v1.ModeOutcome
	(*CompareRepaymentModesRequest)(nil),  // 7: propcast.v1.CompareRepaymentModesRequest
	(*CompareRepaymentModesResponse)(nil), // 8: propcast.v1.CompareRepaymentModesResponse
	(*ListPresetsRequest)(nil),            // 9: propcast.v1.ListPresetsRequest
	(*Preset)(nil),                        // 10: propcast.v1.Preset
	(*ListPresetsResponse)(nil),           // 11: propcast.v1.ListPresetsResponse
	(*timestamppb.Timestamp)(nil),         // 12: google.protobuf.Timestamp
}
var file_internal_adapter_grpc_propcast_v1_propcast_proto_depIdxs = []int32{
	0,  // 0: propcast.v1.Assumptions.repayment_mode:type_name -> propcast.v1.RepaymentMode
	2,  // 1: propcast.v1.Summary.milestones:type_name -> propcast.v1.YearlyRecord
	1,  // 2: propcast.v1.RunProjectionRequest.assumptions:type_name -> propcast.v1.Assumptions
	12, // 3: propcast.v1.RunProjectionResponse.generated_at:type_name -> google.protobuf.Timestamp
	2,  // 4: propcast.v1.RunProjectionResponse.records:type_name -> propcast.v1.YearlyRecord
	3,  // 5: propcast.v1.RunProjectionResponse.summary:type_name -> propcast.v1.Summary
	0,  // 6: propcast.v1.ModeOutcome.mode:type_name -> propcast.v1.RepaymentMode
	1,  // 7: propcast.v1.CompareRepaymentModesRequest.assumptions:type_name -> propcast.v1.Assumptions
	6,  // 8: propcast.v1.CompareRepaymentModesResponse.interest_only:type_name -> propcast.v1.ModeOutcome
	6,  // 9: propcast.v1.CompareRepaymentModesResponse.principal_and_interest:type_name -> propcast.v1.ModeOutcome
	1,  // 10: propcast.v1.Preset.assumptions:type_name -> propcast.v1.Assumptions
	10, // 11: propcast.v1.ListPresetsResponse.presets:type_name -> propcast.v1.Preset
	4,  // 12: propcast.v1.PropCastService.RunProjection:input_type -> propcast.v1.RunProjectionRequest
	7,  // 13: propcast.v1.PropCastService.CompareRepaymentModes:input_type -> propcast.v1.CompareRepaymentModesRequest
	9,  // 14: propcast.v1.PropCastService.ListPresets:input_type -> propcast.v1.ListPresetsRequest
	5,  // 15: propcast.v1.PropCastService.RunProjection:output_type -> propcast.v1.RunProjectionResponse
	8,  // 16: propcast.v1.PropCastService.CompareRepaymentModes:output_type -> propcast.v1.CompareRepaymentModesResponse
	11, // 17: propcast.v1.PropCastService.ListPresets:output_type -> propcast.v1.ListPresetsResponse
	15, // [15:18] is the sub-list for method output_type
	12, // [12:15] is the sub-list for method input_type
	12, // [12:12] is the sub-list for extension type_name
	12, // [12:12] is the sub-list for extension extendee
	0,  // [0:12] is the sub-list for field type_name
}

func init() { file_internal_adapter_grpc_propcast_v1_propcast_proto_init() }
func file_internal_adapter_grpc_propcast_v1_propcast_proto_init() {
	if File_internal_adapter_grpc_propcast_v1_propcast_proto != nil {
		return
	}
	if !protoimpl.UnsafeEnabled {
		file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[0].Exporter = func(v any, i int) any {
			switch v := v.(*Assumptions); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[1].Exporter = func(v any, i int) any {
			switch v := v.(*YearlyRecord); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[2].Exporter = func(v any, i int) any {
			switch v := v.(*Summary); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[3].Exporter = func(v any, i int) any {
			switch v := v.(*RunProjectionRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[4].Exporter = func(v any, i int) any {
			switch v := v.(*RunProjectionResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[5].Exporter = func(v any, i int) any {
			switch v := v.(*ModeOutcome); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[6].Exporter = func(v any, i int) any {
			switch v := v.(*CompareRepaymentModesRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[7].Exporter = func(v any, i int) any {
			switch v := v.(*CompareRepaymentModesResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[8].Exporter = func(v any, i int) any {
			switch v := v.(*ListPresetsRequest); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[9].Exporter = func(v any, i int) any {
			switch v := v.(*Preset); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
		file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes[10].Exporter = func(v any, i int) any {
			switch v := v.(*ListPresetsResponse); i {
			case 0:
				return &v.state
			case 1:
				return &v.sizeCache
			case 2:
				return &v.unknownFields
			default:
				return nil
			}
		}
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: file_internal_adapter_grpc_propcast_v1_propcast_proto_rawDesc,
			NumEnums:      1,
			NumMessages:   11,
			NumExtensions: 0,
			NumServices:   1,
		},
		GoTypes:           file_internal_adapter_grpc_propcast_v1_propcast_proto_goTypes,
		DependencyIndexes: file_internal_adapter_grpc_propcast_v1_propcast_proto_depIdxs,
		EnumInfos:         file_internal_adapter_grpc_propcast_v1_propcast_proto_enumTypes,
		MessageInfos:      file_internal_adapter_grpc_propcast_v1_propcast_proto_msgTypes,
	}.Build()
	File_internal_adapter_grpc_propcast_v1_propcast_proto = out.File
	file_internal_adapter_grpc_propcast_v1_propcast_proto_rawDesc = nil
	file_internal_adapter_grpc_propcast_v1_propcast_proto_goTypes = nil
	file_internal_adapter_grpc_propcast_v1_propcast_proto_depIdxs = nil
}
