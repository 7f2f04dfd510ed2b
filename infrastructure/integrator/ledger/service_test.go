package ledger

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ledgerdomain "github.com/vfg2006/booker-targets-api/infrastructure/integrator/ledger/domain"
	"github.com/vfg2006/booker-targets-api/infrastructure/integrator/ledger/ledgerclient"
)

type fakeClient struct {
	params ledgerclient.OrdersConsultationParams
	orders ledgerclient.OrdersConsultationResponse
	err    error
}

func (f *fakeClient) GetOrders(_ context.Context, params ledgerclient.OrdersConsultationParams) (ledgerclient.OrdersConsultationResponse, error) {
	f.params = params
	return f.orders, f.err
}

func TestLedgerService_GetAchievedAmounts(t *testing.T) {
	client := &fakeClient{orders: ledgerclient.OrdersConsultationResponse{
		{OrderBookerID: "OB1", Status: ledgerdomain.OrderStatusConfirmed, NetAmount: decimal.NewFromInt(700)},
		{OrderBookerID: "OB2", Status: ledgerdomain.OrderStatusConfirmed, NetAmount: decimal.NewFromInt(300)},
	}}

	achieved, err := New(client).GetAchievedAmounts(context.Background(), ledgerdomain.GetOrdersParams{Year: 2024, Month: 2})
	require.NoError(t, err)

	assert.Equal(t, "2024-02-01", client.params.StartDate)
	assert.Equal(t, "2024-02-29", client.params.EndDate)
	assert.True(t, achieved["OB1"].Equal(decimal.NewFromInt(700)))
	assert.True(t, achieved["OB2"].Equal(decimal.NewFromInt(300)))
}

func TestLedgerService_Errors(t *testing.T) {
	service := New(&fakeClient{err: errors.New("connection refused")})

	_, err := service.GetAchievedAmounts(context.Background(), ledgerdomain.GetOrdersParams{Year: 2024, Month: 6})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2024-06")
	assert.Contains(t, err.Error(), "connection refused")

	_, err = service.GetAchievedAmounts(context.Background(), ledgerdomain.GetOrdersParams{Year: 2024, Month: 0})
	assert.Error(t, err)
}
