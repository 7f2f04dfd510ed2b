package domain

import "time"

// WidgetKind identifica os tipos de widget do painel. O conjunto é fechado.
type WidgetKind string

const (
	WidgetTargetProgress WidgetKind = "target-progress"
	WidgetTargetSummary  WidgetKind = "target-summary"
	WidgetTargetStatus   WidgetKind = "target-status"
)

// WidgetKinds lista todos os tipos conhecidos na ordem padrão do painel
var WidgetKinds = []WidgetKind{
	WidgetTargetProgress,
	WidgetTargetSummary,
	WidgetTargetStatus,
}

func (k WidgetKind) IsValid() bool {
	for _, kind := range WidgetKinds {
		if kind == k {
			return true
		}
	}
	return false
}

type WidgetPriority string

const (
	PriorityHigh   WidgetPriority = "high"
	PriorityMedium WidgetPriority = "medium"
	PriorityLow    WidgetPriority = "low"
)

type WidgetPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type DashboardWidget struct {
	Kind                   WidgetKind     `json:"kind"`
	Title                  string         `json:"title"`
	Visible                bool           `json:"visible"`
	Position               WidgetPosition `json:"position"`
	RefreshIntervalSeconds int            `json:"refreshIntervalSeconds"`
	Priority               WidgetPriority `json:"priority"`
}

// DashboardConfig é a configuração persistida do painel de um usuário
type DashboardConfig struct {
	UserKey       string            `json:"user_key"`
	SchemaVersion int               `json:"schema_version"`
	Widgets       []DashboardWidget `json:"widgets"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

// Widget retorna o widget do tipo informado, se existir
func (c *DashboardConfig) Widget(kind WidgetKind) (*DashboardWidget, bool) {
	for i := range c.Widgets {
		if c.Widgets[i].Kind == kind {
			return &c.Widgets[i], true
		}
	}
	return nil, false
}

// StoredDashboardConfig é a linha crua guardada no banco, antes da migração de versão
type StoredDashboardConfig struct {
	UserKey       string
	SchemaVersion int
	Payload       []byte
	UpdatedAt     time.Time
}

// WidgetDataRequest são os parâmetros de renderização de um widget
type WidgetDataRequest struct {
	Year           int
	Month          int
	AsOf           time.Time
	OrderBookerIDs []string
}

type WidgetData struct {
	Kind WidgetKind `json:"kind"`
	Data any        `json:"data"`
}
