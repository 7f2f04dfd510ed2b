package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/booker-targets-api/infrastructure/repository/mocks"
	"github.com/vfg2006/booker-targets-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newTestStore(repo *mocks.MockDashboardConfigRepository) *ConfigStore {
	store := NewConfigStore(repo)
	store.now = func() time.Time { return time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC) }
	return store
}

func TestConfigStore_LoadDefault(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockDashboardConfigRepository(ctrl)
	repo.EXPECT().Get(gomock.Any(), "42").Return(nil, nil)

	config, err := newTestStore(repo).Load(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig("42"), *config)
}

func TestConfigStore_LoadCorruptFallsBack(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockDashboardConfigRepository(ctrl)
	repo.EXPECT().Get(gomock.Any(), "42").Return(&domain.StoredDashboardConfig{UserKey: "42", SchemaVersion: 2, Payload: []byte("not json")}, nil)

	config, err := newTestStore(repo).Load(context.Background(), "42")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig("42").Widgets, config.Widgets)
}

func TestConfigStore_ApplyPersistsOnChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockDashboardConfigRepository(ctrl)
	repo.EXPECT().Get(gomock.Any(), "42").Return(nil, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, stored *domain.StoredDashboardConfig) error {
		assert.Equal(t, "42", stored.UserKey)
		assert.Equal(t, CurrentSchemaVersion, stored.SchemaVersion)
		assert.Contains(t, string(stored.Payload), `"visible":false`)
		return nil
	})

	config, changed, err := newTestStore(repo).Apply(context.Background(), "42", func(c domain.DashboardConfig) (domain.DashboardConfig, bool, error) {
		return SetWidgetVisibility(c, domain.WidgetTargetProgress, false)
	})
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC), config.UpdatedAt)
}

func TestConfigStore_ApplySkipsSaveWhenUnchanged(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockDashboardConfigRepository(ctrl)
	repo.EXPECT().Get(gomock.Any(), "42").Return(nil, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Times(0)

	_, changed, err := newTestStore(repo).Apply(context.Background(), "42", ResetToDefault)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestConfigStore_Errors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockDashboardConfigRepository(ctrl)
	store := newTestStore(repo)

	_, err := store.Load(context.Background(), "")
	assert.ErrorIs(t, err, ErrUserKeyRequired)

	repo.EXPECT().Get(gomock.Any(), "42").Return(nil, errors.New("timeout"))
	_, err = store.Load(context.Background(), "42")
	assert.ErrorIs(t, err, ErrDatabaseOperation)

	repo.EXPECT().Get(gomock.Any(), "42").Return(nil, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(errors.New("timeout"))
	_, _, err = store.Apply(context.Background(), "42", func(c domain.DashboardConfig) (domain.DashboardConfig, bool, error) {
		return SetWidgetVisibility(c, domain.WidgetTargetSummary, false)
	})
	assert.ErrorIs(t, err, ErrDatabaseOperation)
}
