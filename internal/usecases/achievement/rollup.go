package achievement

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/booker-targets-api/internal/domain"
)

// Summarize agrega totais e contagens de um conjunto de metas
func Summarize(targets []*domain.MonthlyTarget) domain.TargetRollup {
	rollup := domain.TargetRollup{
		TotalTargets:          len(targets),
		TotalTargetAmount:     decimal.Zero,
		TotalAchievedAmount:   decimal.Zero,
		AchievementPercentage: decimal.Zero,
		AverageAchievement:    decimal.Zero,
	}
	if len(targets) == 0 {
		return rollup
	}

	sumPct := decimal.Zero
	for _, target := range targets {
		rollup.TotalTargetAmount = rollup.TotalTargetAmount.Add(target.TargetAmount)
		rollup.TotalAchievedAmount = rollup.TotalAchievedAmount.Add(target.AchievedAmount)

		pct := target.AchievementPercentage
		sumPct = sumPct.Add(pct)

		switch {
		case pct.GreaterThanOrEqual(hundred):
			rollup.ExceededCount++
			rollup.OnTrackCount++
		case pct.GreaterThanOrEqual(bandBehindMax):
			rollup.OnTrackCount++
		default:
			rollup.BehindCount++
		}
	}

	if !rollup.TotalTargetAmount.IsZero() {
		rollup.AchievementPercentage = rollup.TotalAchievedAmount.Div(rollup.TotalTargetAmount).Mul(hundred)
	}
	rollup.AverageAchievement = sumPct.Div(decimal.NewFromInt(int64(len(targets))))

	return rollup
}
