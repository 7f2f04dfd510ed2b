package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/booker-targets-api/internal/domain"
	achievementMocks "github.com/vfg2006/booker-targets-api/internal/usecases/achievement/mocks"
	"go.uber.org/mock/gomock"
)

func TestResolve_EveryKindHasRenderer(t *testing.T) {
	for _, kind := range domain.WidgetKinds {
		renderer, err := Resolve(kind)
		require.NoError(t, err, kind)
		assert.NotNil(t, renderer, kind)
	}
	assert.Len(t, Widgets, len(domain.WidgetKinds))

	_, err := Resolve(domain.WidgetKind("sales-trend"))
	assert.ErrorIs(t, err, ErrUnknownWidget)
}

func TestService_RenderWidget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	achievements := achievementMocks.NewMockAchievementService(ctrl)
	service := NewService(nil, achievements)
	asOf := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)
	request := domain.WidgetDataRequest{Year: 2024, Month: 6, AsOf: asOf}

	t.Run("progresso arredonda valores", func(t *testing.T) {
		achievements.EXPECT().GetTargetProgress(gomock.Any(), 2024, 6, gomock.Any(), asOf).Return([]*domain.TargetProgress{
			{
				TargetID:              "T1",
				TargetAmount:          decimal.RequireFromString("1000"),
				AchievementPercentage: decimal.RequireFromString("33.33333"),
				CurrentDailyAverage:   decimal.RequireFromString("16.66666"),
				Status:                domain.PaceBehind,
			},
		}, nil)

		data, err := service.RenderWidget(context.Background(), domain.WidgetTargetProgress, request)
		require.NoError(t, err)
		assert.Equal(t, domain.WidgetTargetProgress, data.Kind)

		rows, ok := data.Data.([]TargetProgressRow)
		require.True(t, ok)
		require.Len(t, rows, 1)
		assert.Equal(t, "33.33", rows[0].AchievementPercentage.String())
		assert.Equal(t, "16.67", rows[0].CurrentDailyAverage.String())
	})

	t.Run("status soma a distribuição", func(t *testing.T) {
		achievements.EXPECT().GetBandDistribution(gomock.Any(), 2024, 6, gomock.Any()).Return(domain.BandDistribution{
			domain.BandNotStarted: 2,
			domain.BandAchieved:   3,
		}, nil)

		data, err := service.RenderWidget(context.Background(), domain.WidgetTargetStatus, request)
		require.NoError(t, err)
		status, ok := data.Data.(TargetStatusData)
		require.True(t, ok)
		assert.Equal(t, 5, status.Total)
	})

	t.Run("resumo usa o período pedido", func(t *testing.T) {
		achievements.EXPECT().GetSummary(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, filters domain.MonthlyTargetFilters) (*domain.TargetRollup, error) {
				require.NotNil(t, filters.Year)
				require.NotNil(t, filters.Month)
				assert.Equal(t, 2024, *filters.Year)
				assert.Equal(t, 6, *filters.Month)
				return &domain.TargetRollup{TotalTargets: 4, AchievementPercentage: decimal.RequireFromString("75.555")}, nil
			})

		data, err := service.RenderWidget(context.Background(), domain.WidgetTargetSummary, request)
		require.NoError(t, err)
		rollup, ok := data.Data.(*domain.TargetRollup)
		require.True(t, ok)
		assert.Equal(t, "75.56", rollup.AchievementPercentage.String())
	})

	t.Run("erro do serviço é repassado", func(t *testing.T) {
		achievements.EXPECT().GetBandDistribution(gomock.Any(), 2024, 6, gomock.Any()).Return(nil, errors.New("timeout"))

		_, err := service.RenderWidget(context.Background(), domain.WidgetTargetStatus, request)
		assert.Error(t, err)
	})

	t.Run("tipo desconhecido", func(t *testing.T) {
		_, err := service.RenderWidget(context.Background(), domain.WidgetKind("alert-center"), request)
		assert.ErrorIs(t, err, ErrUnknownWidget)
	})
}
