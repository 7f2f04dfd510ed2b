package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// MonthlyTarget representa a meta de vendas de um order booker para um mês
type MonthlyTarget struct {
	ID                    string          `json:"id"`
	OrderBookerID         string          `json:"order_booker_id"`
	Year                  int             `json:"year"`
	Month                 int             `json:"month"`
	TargetAmount          decimal.Decimal `json:"target_amount"`
	AchievedAmount        decimal.Decimal `json:"achieved_amount"`
	RemainingAmount       decimal.Decimal `json:"remaining_amount"`
	AchievementPercentage decimal.Decimal `json:"achievement_percentage"`
	DaysInMonth           int             `json:"days_in_month"`
	WorkingDaysInMonth    int             `json:"working_days_in_month"`
	DailyTargetAmount     decimal.Decimal `json:"daily_target_amount"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// CreateMonthlyTargetRequest contém os dados de criação de uma meta
type CreateMonthlyTargetRequest struct {
	OrderBookerID string          `json:"order_booker_id"`
	Year          int             `json:"year"`
	Month         int             `json:"month"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
}

// UpdateMonthlyTargetRequest contém os campos alteráveis de uma meta.
// Order booker e período são imutáveis.
type UpdateMonthlyTargetRequest struct {
	TargetAmount *decimal.Decimal `json:"target_amount"`
}

// ReconcileAchievedRequest carrega o valor realizado vindo do ledger de vendas
type ReconcileAchievedRequest struct {
	AchievedAmount decimal.Decimal `json:"achieved_amount"`
}

// CopyTargetsRequest copia as metas de um período para outro
type CopyTargetsRequest struct {
	FromYear       int      `json:"from_year"`
	FromMonth      int      `json:"from_month"`
	ToYear         int      `json:"to_year"`
	ToMonth        int      `json:"to_month"`
	OrderBookerIDs []string `json:"order_booker_ids,omitempty"`
}

type MonthlyTargetFilters struct {
	Year           *int
	Month          *int
	OrderBookerIDs []string
}

// BatchResult resume o resultado de uma operação em lote
type BatchResult struct {
	Targets []*MonthlyTarget `json:"targets"`
	Created int              `json:"created"`
	Updated int              `json:"updated"`
}
