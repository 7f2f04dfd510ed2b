package domain

import "github.com/shopspring/decimal"

// BandStatus é a classificação estática de uma meta pelo percentual atingido
type BandStatus string

const (
	BandNotStarted BandStatus = "not_started"
	BandAtRisk     BandStatus = "at_risk"
	BandBehind     BandStatus = "behind"
	BandOnTrack    BandStatus = "on_track"
	BandAchieved   BandStatus = "achieved"
)

// PaceStatus é a classificação dinâmica baseada no ritmo diário de vendas
type PaceStatus string

const (
	PaceAhead   PaceStatus = "ahead"
	PaceOnTrack PaceStatus = "on-track"
	PaceAtRisk  PaceStatus = "at-risk"
	PaceBehind  PaceStatus = "behind"
)

type Trend string

const (
	TrendPositive Trend = "positive"
	TrendNeutral  Trend = "neutral"
	TrendNegative Trend = "negative"
)

// TargetProgress é a projeção de ritmo de uma meta numa data de referência
type TargetProgress struct {
	TargetID              string          `json:"target_id,omitempty"`
	OrderBookerID         string          `json:"order_booker_id,omitempty"`
	TargetAmount          decimal.Decimal `json:"target_amount"`
	AchievedAmount        decimal.Decimal `json:"achieved_amount"`
	AchievementPercentage decimal.Decimal `json:"achievement_percentage"`
	DaysInMonth           int             `json:"days_in_month"`
	DaysElapsed           int             `json:"days_elapsed"`
	DaysRemaining         int             `json:"days_remaining"`
	CurrentDailyAverage   decimal.Decimal `json:"current_daily_average"`
	RequiredDailyAverage  decimal.Decimal `json:"required_daily_average"`
	ProjectedAchievement  decimal.Decimal `json:"projected_achievement"`
	Status                PaceStatus      `json:"status"`
	Trend                 Trend           `json:"trend"`
	Band                  BandStatus      `json:"band"`
}

// TargetRollup agrega um conjunto de metas
type TargetRollup struct {
	TotalTargets          int             `json:"total_targets"`
	TotalTargetAmount     decimal.Decimal `json:"total_target_amount"`
	TotalAchievedAmount   decimal.Decimal `json:"total_achieved_amount"`
	AchievementPercentage decimal.Decimal `json:"achievement_percentage"`
	AverageAchievement    decimal.Decimal `json:"average_achievement"`
	OnTrackCount          int             `json:"on_track_count"`
	ExceededCount         int             `json:"exceeded_count"`
	BehindCount           int             `json:"behind_count"`
}

// BandDistribution conta quantas metas caem em cada faixa
type BandDistribution map[BandStatus]int
