package ledgerclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	ledgerdomain "github.com/vfg2006/booker-targets-api/infrastructure/integrator/ledger/domain"
	"github.com/vfg2006/booker-targets-api/internal/config"
)

func newTestClient(url string) Client {
	return NewClient(&config.Config{
		Ledger: config.Ledger{URL: url, AccessToken: "secret-token", Timeout: 2 * time.Second},
	})
}

func TestGetOrders(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/orders", r.URL.Path)
		assert.Equal(t, "2024-06-01", r.URL.Query().Get("start_date"))
		assert.Equal(t, "2024-06-30", r.URL.Query().Get("end_date"))
		assert.Equal(t, "Bearer secret-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id":"O1","order_booker_id":"OB1","date":"2024-06-03","status":"confirmed","net_amount":"1500.50"},
			{"id":"O2","order_booker_id":"OB2","date":"2024-06-04","status":"cancelled","net_amount":200}
		]`))
	}))
	defer server.Close()

	orders, err := newTestClient(server.URL+"/api/v1").GetOrders(context.Background(), OrdersConsultationParams{
		StartDate: "2024-06-01",
		EndDate:   "2024-06-30",
	})
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "OB1", orders[0].OrderBookerID)
	assert.Equal(t, "1500.5", orders[0].NetAmount.String())
	assert.Equal(t, ledgerdomain.OrderStatusCancelled, orders[1].Status)
}

func TestGetOrders_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetOrders(context.Background(), OrdersConsultationParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestGetOrders_InvalidBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"a list"`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).GetOrders(context.Background(), OrdersConsultationParams{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decodificar")
}
