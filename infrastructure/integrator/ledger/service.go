package ledger

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	ledgerdomain "github.com/vfg2006/booker-targets-api/infrastructure/integrator/ledger/domain"
	"github.com/vfg2006/booker-targets-api/infrastructure/integrator/ledger/ledgerclient"
	"github.com/vfg2006/booker-targets-api/pkg/period"
)

type LedgerIntegrator interface {
	GetAchievedAmounts(ctx context.Context, params ledgerdomain.GetOrdersParams) (map[string]decimal.Decimal, error)
}

type LedgerService struct {
	Client ledgerclient.Client
}

func New(client ledgerclient.Client) LedgerIntegrator {
	return &LedgerService{
		Client: client,
	}
}

// GetAchievedAmounts retorna o realizado do período por order booker
func (s *LedgerService) GetAchievedAmounts(ctx context.Context, params ledgerdomain.GetOrdersParams) (map[string]decimal.Decimal, error) {
	if err := period.Validate(params.Year, params.Month); err != nil {
		return nil, err
	}

	first, last := period.Bounds(params.Year, params.Month, time.UTC)
	orders, err := s.Client.GetOrders(ctx, ledgerclient.OrdersConsultationParams{
		StartDate: first.Format(time.DateOnly),
		EndDate:   last.Format(time.DateOnly),
	})
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao consultar pedidos de %s", period.Label(params.Year, params.Month))
	}

	return ledgerdomain.AchievedByOrderBooker(orders), nil
}
