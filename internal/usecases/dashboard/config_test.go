package dashboard

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/booker-targets-api/internal/domain"
)

func TestDecode_MissingVersionResetsToDefault(t *testing.T) {
	config, err := Decode(&domain.StoredDashboardConfig{
		UserKey:       "42",
		SchemaVersion: 0,
		Payload:       []byte(`{"anything":true}`),
	})
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig("42"), config)
}

func TestDecode_V1(t *testing.T) {
	payload := `{"widgets":[
		{"id":"target-progress","title":"Metas","visible":false,"position":{"x":1,"y":2,"w":3,"h":4},"refreshInterval":600000,"priority":"low"},
		{"id":"sales-trend","title":"Vendas","visible":true,"position":{"x":0,"y":0,"w":3,"h":2},"refreshInterval":300000,"priority":"high"}
	]}`

	config, err := Decode(&domain.StoredDashboardConfig{UserKey: "42", SchemaVersion: 1, Payload: []byte(payload)})
	require.NoError(t, err)

	assert.Equal(t, CurrentSchemaVersion, config.SchemaVersion)
	require.Len(t, config.Widgets, len(domain.WidgetKinds))

	progress, ok := config.Widget(domain.WidgetTargetProgress)
	require.True(t, ok)
	assert.Equal(t, "Metas", progress.Title)
	assert.False(t, progress.Visible)
	assert.Equal(t, domain.WidgetPosition{X: 1, Y: 2, W: 3, H: 4}, progress.Position)
	assert.Equal(t, 600, progress.RefreshIntervalSeconds)
	assert.Equal(t, domain.PriorityLow, progress.Priority)

	_, ok = config.Widget(domain.WidgetKind("sales-trend"))
	assert.False(t, ok)

	summary, ok := config.Widget(domain.WidgetTargetSummary)
	require.True(t, ok)
	assert.False(t, summary.Visible)
	assert.Equal(t, 1800, summary.RefreshIntervalSeconds)
}

func TestDecode_CurrentVersion(t *testing.T) {
	original := DefaultConfig("42")
	original.Widgets[0].Visible = false
	original.UpdatedAt = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	stored, err := Encode(original)
	require.NoError(t, err)
	assert.Equal(t, CurrentSchemaVersion, stored.SchemaVersion)

	decoded, err := Decode(stored)
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestDecode_Corrupt(t *testing.T) {
	_, err := Decode(&domain.StoredDashboardConfig{UserKey: "42", SchemaVersion: 2, Payload: []byte(`{"widgets":`)})
	assert.True(t, errors.Is(err, ErrCorruptConfig))
}

func TestDecode_FutureVersionFallsBackToDefault(t *testing.T) {
	config, err := Decode(&domain.StoredDashboardConfig{UserKey: "42", SchemaVersion: 99, Payload: []byte(`{}`)})
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig("42").Widgets, config.Widgets)
}

func TestSetWidgetVisibility(t *testing.T) {
	config := DefaultConfig("42")

	next, changed, err := SetWidgetVisibility(config, domain.WidgetTargetStatus, false)
	require.NoError(t, err)
	assert.True(t, changed)

	widget, _ := next.Widget(domain.WidgetTargetStatus)
	assert.False(t, widget.Visible)

	original, _ := config.Widget(domain.WidgetTargetStatus)
	assert.True(t, original.Visible, "o reducer não deve alterar a configuração recebida")

	_, changed, err = SetWidgetVisibility(next, domain.WidgetTargetStatus, false)
	require.NoError(t, err)
	assert.False(t, changed)

	_, _, err = SetWidgetVisibility(config, domain.WidgetKind("alert-center"), true)
	assert.ErrorIs(t, err, ErrUnknownWidget)
}

func TestUpdateWidgetPosition(t *testing.T) {
	config := DefaultConfig("42")
	position := domain.WidgetPosition{X: 2, Y: 4, W: 4, H: 2}

	next, changed, err := UpdateWidgetPosition(config, domain.WidgetTargetSummary, position)
	require.NoError(t, err)
	assert.True(t, changed)
	widget, _ := next.Widget(domain.WidgetTargetSummary)
	assert.Equal(t, position, widget.Position)

	_, changed, err = UpdateWidgetPosition(next, domain.WidgetTargetSummary, position)
	require.NoError(t, err)
	assert.False(t, changed)

	_, _, err = UpdateWidgetPosition(config, domain.WidgetTargetSummary, domain.WidgetPosition{X: 0, Y: 0, W: 0, H: 2})
	assert.ErrorIs(t, err, ErrInvalidPosition)
}

func TestResetToDefault(t *testing.T) {
	config := DefaultConfig("42")

	_, changed, err := ResetToDefault(config)
	require.NoError(t, err)
	assert.False(t, changed)

	modified, _, err := SetWidgetVisibility(config, domain.WidgetTargetProgress, false)
	require.NoError(t, err)

	reset, changed, err := ResetToDefault(modified)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, "42", reset.UserKey)
	assert.Equal(t, config.Widgets, reset.Widgets)
}
