package ledgerclient

import (
	"context"
	"net/http"
	"time"

	"github.com/vfg2006/booker-targets-api/internal/config"
)

const defaultTimeout = 30 * time.Second

type Client interface {
	GetOrders(ctx context.Context, params OrdersConsultationParams) (OrdersConsultationResponse, error)
}

type LedgerClient struct {
	httpClient *http.Client
	config     *config.Ledger
}

// NewClient cria o cliente HTTP do ledger de vendas
func NewClient(cfg *config.Config) Client {
	timeout := cfg.Ledger.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &LedgerClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: &cfg.Ledger,
	}
}
