package achievement

import (
	"github.com/shopspring/decimal"
	"github.com/vfg2006/booker-targets-api/internal/domain"
)

var (
	hundred       = decimal.NewFromInt(100)
	bandAtRiskMax = decimal.NewFromInt(50)
	bandBehindMax = decimal.NewFromInt(80)
)

// ClassifyBand classifica uma meta pelo percentual atingido:
// 0 não iniciada, abaixo de 50 em risco, abaixo de 80 atrasada, abaixo de 100 no caminho, 100 ou mais atingida.
func ClassifyBand(pct decimal.Decimal) domain.BandStatus {
	switch {
	case !pct.IsPositive():
		return domain.BandNotStarted
	case pct.LessThan(bandAtRiskMax):
		return domain.BandAtRisk
	case pct.LessThan(bandBehindMax):
		return domain.BandBehind
	case pct.LessThan(hundred):
		return domain.BandOnTrack
	default:
		return domain.BandAchieved
	}
}

// Distribution conta as metas por faixa; todas as faixas aparecem no resultado
func Distribution(targets []*domain.MonthlyTarget) domain.BandDistribution {
	distribution := domain.BandDistribution{
		domain.BandNotStarted: 0,
		domain.BandAtRisk:     0,
		domain.BandBehind:     0,
		domain.BandOnTrack:    0,
		domain.BandAchieved:   0,
	}
	for _, target := range targets {
		distribution[ClassifyBand(target.AchievementPercentage)]++
	}
	return distribution
}
