package dashboard

import (
	"context"

	"github.com/vfg2006/booker-targets-api/internal/domain"
	"github.com/vfg2006/booker-targets-api/internal/usecases/achievement"
	"github.com/vfg2006/booker-targets-api/pkg/metrics"
)

type DashboardService interface {
	GetConfig(ctx context.Context, userKey string) (*domain.DashboardConfig, error)
	SetWidgetVisibility(ctx context.Context, userKey string, kind domain.WidgetKind, visible bool) (*domain.DashboardConfig, error)
	UpdateWidgetPosition(ctx context.Context, userKey string, kind domain.WidgetKind, position domain.WidgetPosition) (*domain.DashboardConfig, error)
	ResetToDefault(ctx context.Context, userKey string) (*domain.DashboardConfig, error)
	RenderWidget(ctx context.Context, kind domain.WidgetKind, request domain.WidgetDataRequest) (*domain.WidgetData, error)
}

type Service struct {
	store        *ConfigStore
	achievements achievement.AchievementService
}

func NewService(store *ConfigStore, achievements achievement.AchievementService) DashboardService {
	return &Service{
		store:        store,
		achievements: achievements,
	}
}

func (s *Service) GetConfig(ctx context.Context, userKey string) (*domain.DashboardConfig, error) {
	return s.store.Load(ctx, userKey)
}

func (s *Service) SetWidgetVisibility(ctx context.Context, userKey string, kind domain.WidgetKind, visible bool) (*domain.DashboardConfig, error) {
	config, _, err := s.store.Apply(ctx, userKey, func(config domain.DashboardConfig) (domain.DashboardConfig, bool, error) {
		return SetWidgetVisibility(config, kind, visible)
	})
	return config, err
}

func (s *Service) UpdateWidgetPosition(ctx context.Context, userKey string, kind domain.WidgetKind, position domain.WidgetPosition) (*domain.DashboardConfig, error) {
	config, _, err := s.store.Apply(ctx, userKey, func(config domain.DashboardConfig) (domain.DashboardConfig, bool, error) {
		return UpdateWidgetPosition(config, kind, position)
	})
	return config, err
}

func (s *Service) ResetToDefault(ctx context.Context, userKey string) (*domain.DashboardConfig, error) {
	config, _, err := s.store.Apply(ctx, userKey, ResetToDefault)
	return config, err
}

func (s *Service) RenderWidget(ctx context.Context, kind domain.WidgetKind, request domain.WidgetDataRequest) (data *domain.WidgetData, err error) {
	defer func() { metrics.ObserveWidgetRender(string(kind), err) }()

	renderer, err := Resolve(kind)
	if err != nil {
		return nil, err
	}

	payload, err := renderer(ctx, s.achievements, request)
	if err != nil {
		return nil, err
	}

	return &domain.WidgetData{Kind: kind, Data: payload}, nil
}
