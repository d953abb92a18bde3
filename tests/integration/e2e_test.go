//go:build integration

package integration

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	propcastv1 "github.com/ausungroup/propcast-backend/internal/adapter/grpc/propcast/v1"
)

var (
	grpcClient propcastv1.PropCastServiceClient
	grpcConn   *grpc.ClientConn
)

// TestMain sets up the test environment: a server must already be running at
// GRPC_ADDR (default localhost:8080) with API_TOKEN (default dev-token).
func TestMain(m *testing.M) {
	grpcAddr := os.Getenv("GRPC_ADDR")
	if grpcAddr == "" {
		grpcAddr = "localhost:8080"
	}

	var err error
	grpcConn, err = grpc.NewClient(grpcAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to gRPC server: %v", err))
	}
	defer grpcConn.Close()

	grpcClient = propcastv1.NewPropCastServiceClient(grpcConn)

	os.Exit(m.Run())
}

// authContext attaches the API token the server expects.
func authContext(ctx context.Context) context.Context {
	token := os.Getenv("API_TOKEN")
	if token == "" {
		token = "dev-token"
	}
	return metadata.AppendToOutgoingContext(ctx, "authorization", token)
}

func requireAmount(t *testing.T, expected string, actual string, field string) {
	t.Helper()
	actualDec, err := decimal.NewFromString(actual)
	require.NoError(t, err, "%s should be a decimal string", field)
	assert.True(t, actualDec.Equal(decimal.RequireFromString(expected)),
		"%s: expected %s, got %s", field, expected, actual)
}

func TestE2E_ListPresets(t *testing.T) {
	ctx := authContext(context.Background())

	resp, err := grpcClient.ListPresets(ctx, &propcastv1.ListPresetsRequest{})
	require.NoError(t, err)

	require.Len(t, resp.Presets, 2)
	assert.Equal(t, []int32{5, 10, 15, 20, 30}, resp.MilestoneYears)
	assert.Len(t, resp.MarginalTaxBands, 3)

	for _, preset := range resp.Presets {
		assert.NotEmpty(t, preset.Id)
		assert.NotEmpty(t, preset.Name)
		requireAmount(t, "650000", preset.Assumptions.PurchasePrice, "purchase_price")
	}
}

func TestE2E_RunProjectionFromPreset(t *testing.T) {
	ctx := authContext(context.Background())

	presetsResp, err := grpcClient.ListPresets(ctx, &propcastv1.ListPresetsRequest{})
	require.NoError(t, err)
	require.NotEmpty(t, presetsResp.Presets)

	resp, err := grpcClient.RunProjection(ctx, &propcastv1.RunProjectionRequest{
		Assumptions: presetsResp.Presets[0].Assumptions,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ProjectionId)
	require.NotNil(t, resp.GeneratedAt)
	require.Len(t, resp.Records, 30)

	// Year-1 figures of the reference interest-only scenario
	year1 := resp.Records[0]
	assert.Equal(t, int32(1), year1.Year)
	requireAmount(t, "32448", year1.EffectiveAnnualRent, "effective_annual_rent")
	requireAmount(t, "31720", year1.InterestPaid, "interest_paid")
	requireAmount(t, "520000", year1.LoanBalance, "loan_balance")
	requireAmount(t, "682500", year1.MarketValue, "market_value")

	require.NotNil(t, resp.Summary)
	requireAmount(t, "0.052", resp.Summary.GrossRentalYield, "gross_rental_yield")
	assert.Len(t, resp.Summary.Milestones, 5, "all milestone years fit a 30-year horizon")
}

func TestE2E_RunProjectionRejectsInvalidAssumptions(t *testing.T) {
	ctx := authContext(context.Background())

	_, err := grpcClient.RunProjection(ctx, &propcastv1.RunProjectionRequest{
		Assumptions: &propcastv1.Assumptions{
			PurchasePrice: "-1",
			RepaymentMode: propcastv1.RepaymentMode_REPAYMENT_MODE_INTEREST_ONLY,
			HorizonYears:  10,
		},
	})
	require.Error(t, err)

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Contains(t, st.Message(), "purchase price")
}

func TestE2E_CompareRepaymentModes(t *testing.T) {
	ctx := authContext(context.Background())

	presetsResp, err := grpcClient.ListPresets(ctx, &propcastv1.ListPresetsRequest{})
	require.NoError(t, err)
	require.NotEmpty(t, presetsResp.Presets)

	resp, err := grpcClient.CompareRepaymentModes(ctx, &propcastv1.CompareRepaymentModesRequest{
		Assumptions: presetsResp.Presets[0].Assumptions,
	})
	require.NoError(t, err)

	require.NotNil(t, resp.InterestOnly)
	require.NotNil(t, resp.PrincipalAndInterest)

	interestSaved, err := decimal.NewFromString(resp.InterestSaved)
	require.NoError(t, err)
	assert.True(t, interestSaved.IsPositive(), "amortizing should pay less total interest")
}

func TestE2E_RejectsMissingToken(t *testing.T) {
	_, err := grpcClient.ListPresets(context.Background(), &propcastv1.ListPresetsRequest{})
	require.Error(t, err)

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Unauthenticated, st.Code())
}
