package achievement

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/booker-targets-api/internal/domain"
	"github.com/vfg2006/booker-targets-api/pkg/period"
)

var (
	aheadFactor   = decimal.RequireFromString("1.1")
	onTrackFactor = decimal.RequireFromString("0.9")
	atRiskFactor  = decimal.RequireFromString("0.7")
)

type PaceInput struct {
	TargetAmount   decimal.Decimal
	AchievedAmount decimal.Decimal
	DaysInMonth    int
	DaysElapsed    int
	DaysRemaining  int
}

type PaceProjection struct {
	AchievementPercentage decimal.Decimal
	CurrentDailyAverage   decimal.Decimal
	RequiredDailyAverage  decimal.Decimal
	ProjectedAchievement  decimal.Decimal
	Status                domain.PaceStatus
	Trend                 domain.Trend
}

// NewPaceInput monta a entrada do projetor para uma meta gravada na data asOf
func NewPaceInput(target *domain.MonthlyTarget, asOf time.Time) PaceInput {
	elapsed, remaining := period.ElapsedDays(target.Year, target.Month, asOf)
	daysInMonth := target.DaysInMonth
	if daysInMonth == 0 {
		daysInMonth = period.DaysInMonth(target.Year, target.Month)
	}

	return PaceInput{
		TargetAmount:   target.TargetAmount,
		AchievedAmount: target.AchievedAmount,
		DaysInMonth:    daysInMonth,
		DaysElapsed:    elapsed,
		DaysRemaining:  remaining,
	}
}

// ProjectPace compara o ritmo diário atual com o ritmo necessário para fechar a meta
func ProjectPace(in PaceInput) PaceProjection {
	pct := decimal.Zero
	if !in.TargetAmount.IsZero() {
		pct = in.AchievedAmount.Div(in.TargetAmount).Mul(hundred)
	}

	current := decimal.Zero
	if in.DaysElapsed > 0 {
		current = in.AchievedAmount.Div(decimal.NewFromInt(int64(in.DaysElapsed)))
	}

	required := decimal.Zero
	if in.DaysRemaining > 0 {
		required = in.TargetAmount.Sub(in.AchievedAmount).Div(decimal.NewFromInt(int64(in.DaysRemaining)))
	}

	projected := pct
	if current.IsPositive() && !in.TargetAmount.IsZero() {
		projected = current.Mul(decimal.NewFromInt(int64(in.DaysInMonth))).Div(in.TargetAmount).Mul(hundred)
	}

	return PaceProjection{
		AchievementPercentage: pct,
		CurrentDailyAverage:   current,
		RequiredDailyAverage:  required,
		ProjectedAchievement:  projected,
		Status:                paceStatus(pct, current, required),
		Trend:                 trend(current, required),
	}
}

func paceStatus(pct, current, required decimal.Decimal) domain.PaceStatus {
	switch {
	case pct.GreaterThanOrEqual(hundred):
		return domain.PaceAhead
	case current.GreaterThanOrEqual(required.Mul(aheadFactor)):
		return domain.PaceAhead
	case current.GreaterThanOrEqual(required.Mul(onTrackFactor)):
		return domain.PaceOnTrack
	case current.GreaterThanOrEqual(required.Mul(atRiskFactor)):
		return domain.PaceAtRisk
	default:
		return domain.PaceBehind
	}
}

func trend(current, required decimal.Decimal) domain.Trend {
	switch {
	case current.GreaterThan(required.Mul(aheadFactor)):
		return domain.TrendPositive
	case current.LessThan(required.Mul(onTrackFactor)):
		return domain.TrendNegative
	default:
		return domain.TrendNeutral
	}
}

// Progress aplica o projetor a uma meta gravada
func Progress(target *domain.MonthlyTarget, asOf time.Time) *domain.TargetProgress {
	in := NewPaceInput(target, asOf)
	projection := ProjectPace(in)

	return &domain.TargetProgress{
		TargetID:              target.ID,
		OrderBookerID:         target.OrderBookerID,
		TargetAmount:          target.TargetAmount,
		AchievedAmount:        target.AchievedAmount,
		AchievementPercentage: projection.AchievementPercentage,
		DaysInMonth:           in.DaysInMonth,
		DaysElapsed:           in.DaysElapsed,
		DaysRemaining:         in.DaysRemaining,
		CurrentDailyAverage:   projection.CurrentDailyAverage,
		RequiredDailyAverage:  projection.RequiredDailyAverage,
		ProjectedAchievement:  projection.ProjectedAchievement,
		Status:                projection.Status,
		Trend:                 projection.Trend,
		Band:                  ClassifyBand(projection.AchievementPercentage),
	}
}
