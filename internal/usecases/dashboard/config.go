package dashboard

import (
	"slices"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/booker-targets-api/internal/domain"
	"github.com/vfg2006/booker-targets-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// CurrentSchemaVersion é a versão gravada em toda configuração salva
const CurrentSchemaVersion = 2

var defaultWidgets = []domain.DashboardWidget{
	{
		Kind:                   domain.WidgetTargetProgress,
		Title:                  "Target Progress",
		Visible:                true,
		Position:               domain.WidgetPosition{X: 0, Y: 0, W: 6, H: 3},
		RefreshIntervalSeconds: 900,
		Priority:               domain.PriorityHigh,
	},
	{
		Kind:                   domain.WidgetTargetSummary,
		Title:                  "Target Summary",
		Visible:                true,
		Position:               domain.WidgetPosition{X: 6, Y: 0, W: 6, H: 2},
		RefreshIntervalSeconds: 1800,
		Priority:               domain.PriorityMedium,
	},
	{
		Kind:                   domain.WidgetTargetStatus,
		Title:                  "Target Status",
		Visible:                true,
		Position:               domain.WidgetPosition{X: 6, Y: 2, W: 6, H: 2},
		RefreshIntervalSeconds: 1800,
		Priority:               domain.PriorityMedium,
	},
}

// DefaultConfig retorna a configuração padrão para o usuário
func DefaultConfig(userKey string) domain.DashboardConfig {
	return domain.DashboardConfig{
		UserKey:       userKey,
		SchemaVersion: CurrentSchemaVersion,
		Widgets:       slices.Clone(defaultWidgets),
	}
}

func defaultWidget(kind domain.WidgetKind) domain.DashboardWidget {
	for _, w := range defaultWidgets {
		if w.Kind == kind {
			return w
		}
	}
	return domain.DashboardWidget{Kind: kind, Title: string(kind), Priority: domain.PriorityLow}
}

// v1 guardava o tipo em "id" e o intervalo em milissegundos
type widgetV1 struct {
	ID              string                `json:"id"`
	Title           string                `json:"title"`
	Visible         bool                  `json:"visible"`
	Position        domain.WidgetPosition `json:"position"`
	RefreshInterval int                   `json:"refreshInterval"`
	Priority        domain.WidgetPriority `json:"priority"`
}

type payloadV1 struct {
	Widgets []widgetV1 `json:"widgets"`
}

type payloadV2 struct {
	Widgets []domain.DashboardWidget `json:"widgets"`
}

// Decode converte a linha gravada para a versão atual.
// v0 volta ao padrão; v1 passa o intervalo para segundos; toda versão passa por normalize.
func Decode(stored *domain.StoredDashboardConfig) (domain.DashboardConfig, error) {
	config := DefaultConfig(stored.UserKey)
	config.UpdatedAt = stored.UpdatedAt

	switch {
	case stored.SchemaVersion < 1:
		return config, nil
	case stored.SchemaVersion == 1:
		var legacy payloadV1
		if err := json.Unmarshal(stored.Payload, &legacy); err != nil {
			return config, NewDashboardError(ErrCorruptConfig, apiErrors.ErrInternalServer, err.Error())
		}
		config.Widgets = migrateV1(legacy.Widgets)
	case stored.SchemaVersion == CurrentSchemaVersion:
		var current payloadV2
		if err := json.Unmarshal(stored.Payload, &current); err != nil {
			return config, NewDashboardError(ErrCorruptConfig, apiErrors.ErrInternalServer, err.Error())
		}
		config.Widgets = current.Widgets
	default:
		return config, nil
	}

	config.Widgets = normalize(config.Widgets)
	return config, nil
}

// Encode gera o payload gravado para a configuração atual
func Encode(config domain.DashboardConfig) (*domain.StoredDashboardConfig, error) {
	payload, err := json.Marshal(payloadV2{Widgets: config.Widgets})
	if err != nil {
		return nil, err
	}

	return &domain.StoredDashboardConfig{
		UserKey:       config.UserKey,
		SchemaVersion: CurrentSchemaVersion,
		Payload:       payload,
		UpdatedAt:     config.UpdatedAt,
	}, nil
}

func migrateV1(legacy []widgetV1) []domain.DashboardWidget {
	widgets := make([]domain.DashboardWidget, 0, len(legacy))
	for _, w := range legacy {
		widgets = append(widgets, domain.DashboardWidget{
			Kind:                   domain.WidgetKind(w.ID),
			Title:                  w.Title,
			Visible:                w.Visible,
			Position:               w.Position,
			RefreshIntervalSeconds: w.RefreshInterval / 1000,
			Priority:               w.Priority,
		})
	}
	return widgets
}

// normalize remove tipos desconhecidos ou repetidos e acrescenta, ocultos, os tipos que faltam
func normalize(widgets []domain.DashboardWidget) []domain.DashboardWidget {
	result := make([]domain.DashboardWidget, 0, len(domain.WidgetKinds))
	seen := make(map[domain.WidgetKind]bool, len(domain.WidgetKinds))

	for _, w := range widgets {
		if !w.Kind.IsValid() || seen[w.Kind] {
			continue
		}
		seen[w.Kind] = true
		if w.RefreshIntervalSeconds <= 0 {
			w.RefreshIntervalSeconds = defaultWidget(w.Kind).RefreshIntervalSeconds
		}
		result = append(result, w)
	}

	for _, kind := range domain.WidgetKinds {
		if seen[kind] {
			continue
		}
		w := defaultWidget(kind)
		w.Visible = false
		result = append(result, w)
	}

	return result
}

// SetWidgetVisibility mostra ou oculta um widget
func SetWidgetVisibility(config domain.DashboardConfig, kind domain.WidgetKind, visible bool) (domain.DashboardConfig, bool, error) {
	next, widget, err := withWidget(config, kind)
	if err != nil {
		return config, false, err
	}
	if widget.Visible == visible {
		return config, false, nil
	}

	widget.Visible = visible
	return next, true, nil
}

// UpdateWidgetPosition move um widget; a mesma posição não conta como mudança
func UpdateWidgetPosition(config domain.DashboardConfig, kind domain.WidgetKind, position domain.WidgetPosition) (domain.DashboardConfig, bool, error) {
	if position.X < 0 || position.Y < 0 || position.W <= 0 || position.H <= 0 {
		return config, false, NewDashboardError(ErrInvalidPosition, apiErrors.ErrInvalidRequest, "")
	}

	next, widget, err := withWidget(config, kind)
	if err != nil {
		return config, false, err
	}
	if widget.Position == position {
		return config, false, nil
	}

	widget.Position = position
	return next, true, nil
}

// ResetToDefault volta ao padrão mantendo o dono da configuração
func ResetToDefault(config domain.DashboardConfig) (domain.DashboardConfig, bool, error) {
	next := DefaultConfig(config.UserKey)
	next.UpdatedAt = config.UpdatedAt
	if slices.Equal(next.Widgets, config.Widgets) {
		return config, false, nil
	}
	return next, true, nil
}

func withWidget(config domain.DashboardConfig, kind domain.WidgetKind) (domain.DashboardConfig, *domain.DashboardWidget, error) {
	if !kind.IsValid() {
		return config, nil, NewDashboardError(ErrUnknownWidget, apiErrors.ErrUnknownWidget, string(kind))
	}

	next := config
	next.Widgets = slices.Clone(config.Widgets)
	widget, ok := next.Widget(kind)
	if !ok {
		return config, nil, NewDashboardError(ErrUnknownWidget, apiErrors.ErrUnknownWidget, string(kind))
	}
	return next, widget, nil
}
