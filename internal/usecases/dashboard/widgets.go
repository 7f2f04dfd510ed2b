package dashboard

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/booker-targets-api/internal/domain"
	"github.com/vfg2006/booker-targets-api/internal/usecases/achievement"
	"github.com/vfg2006/booker-targets-api/pkg/apiErrors"
	"github.com/vfg2006/booker-targets-api/pkg/utils"
)

// Renderer produz os dados de um tipo de widget
type Renderer func(ctx context.Context, achievements achievement.AchievementService, request domain.WidgetDataRequest) (any, error)

// Widgets associa cada tipo de widget ao seu renderer
var Widgets = map[domain.WidgetKind]Renderer{
	domain.WidgetTargetProgress: renderTargetProgress,
	domain.WidgetTargetSummary:  renderTargetSummary,
	domain.WidgetTargetStatus:   renderTargetStatus,
}

// Resolve é o único ponto de despacho de widgets
func Resolve(kind domain.WidgetKind) (Renderer, error) {
	renderer, ok := Widgets[kind]
	if !ok {
		return nil, NewDashboardError(ErrUnknownWidget, apiErrors.ErrUnknownWidget, string(kind))
	}
	return renderer, nil
}

type TargetProgressRow struct {
	TargetID              string            `json:"target_id"`
	OrderBookerID         string            `json:"order_booker_id"`
	TargetAmount          decimal.Decimal   `json:"target_amount"`
	AchievedAmount        decimal.Decimal   `json:"achieved_amount"`
	AchievementPercentage decimal.Decimal   `json:"achievement_percentage"`
	CurrentDailyAverage   decimal.Decimal   `json:"current_daily_average"`
	RequiredDailyAverage  decimal.Decimal   `json:"required_daily_average"`
	ProjectedAchievement  decimal.Decimal   `json:"projected_achievement"`
	DaysRemaining         int               `json:"days_remaining"`
	Status                domain.PaceStatus `json:"status"`
	Trend                 domain.Trend      `json:"trend"`
}

func renderTargetProgress(ctx context.Context, achievements achievement.AchievementService, request domain.WidgetDataRequest) (any, error) {
	progress, err := achievements.GetTargetProgress(ctx, request.Year, request.Month, request.OrderBookerIDs, request.AsOf)
	if err != nil {
		return nil, err
	}

	rows := make([]TargetProgressRow, 0, len(progress))
	for _, p := range progress {
		rows = append(rows, TargetProgressRow{
			TargetID:              p.TargetID,
			OrderBookerID:         p.OrderBookerID,
			TargetAmount:          utils.RoundWithTwoDecimalPlace(p.TargetAmount),
			AchievedAmount:        utils.RoundWithTwoDecimalPlace(p.AchievedAmount),
			AchievementPercentage: utils.RoundWithTwoDecimalPlace(p.AchievementPercentage),
			CurrentDailyAverage:   utils.RoundWithTwoDecimalPlace(p.CurrentDailyAverage),
			RequiredDailyAverage:  utils.RoundWithTwoDecimalPlace(p.RequiredDailyAverage),
			ProjectedAchievement:  utils.RoundWithTwoDecimalPlace(p.ProjectedAchievement),
			DaysRemaining:         p.DaysRemaining,
			Status:                p.Status,
			Trend:                 p.Trend,
		})
	}

	return rows, nil
}

func renderTargetSummary(ctx context.Context, achievements achievement.AchievementService, request domain.WidgetDataRequest) (any, error) {
	year, month := request.Year, request.Month
	rollup, err := achievements.GetSummary(ctx, domain.MonthlyTargetFilters{
		Year:           &year,
		Month:          &month,
		OrderBookerIDs: request.OrderBookerIDs,
	})
	if err != nil {
		return nil, err
	}

	rollup.AchievementPercentage = utils.RoundWithTwoDecimalPlace(rollup.AchievementPercentage)
	rollup.AverageAchievement = utils.RoundWithTwoDecimalPlace(rollup.AverageAchievement)
	return rollup, nil
}

type TargetStatusData struct {
	Total        int                     `json:"total"`
	Distribution domain.BandDistribution `json:"distribution"`
}

func renderTargetStatus(ctx context.Context, achievements achievement.AchievementService, request domain.WidgetDataRequest) (any, error) {
	distribution, err := achievements.GetBandDistribution(ctx, request.Year, request.Month, request.OrderBookerIDs)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, count := range distribution {
		total += count
	}

	return TargetStatusData{Total: total, Distribution: distribution}, nil
}
