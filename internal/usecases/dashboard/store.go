package dashboard

import (
	"context"
	"time"

	"github.com/vfg2006/booker-targets-api/infrastructure/repository"
	"github.com/vfg2006/booker-targets-api/internal/domain"
	"github.com/vfg2006/booker-targets-api/pkg/apiErrors"
	"github.com/vfg2006/booker-targets-api/pkg/log"
)

// Reducer transforma uma configuração e informa se algo mudou
type Reducer func(config domain.DashboardConfig) (domain.DashboardConfig, bool, error)

// ConfigStore guarda a configuração do painel por usuário e só grava quando há mudança
type ConfigStore struct {
	repo repository.DashboardConfigRepository
	now  func() time.Time
}

func NewConfigStore(repo repository.DashboardConfigRepository) *ConfigStore {
	return &ConfigStore{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
	}
}

func (s *ConfigStore) Load(ctx context.Context, userKey string) (*domain.DashboardConfig, error) {
	if userKey == "" {
		return nil, NewDashboardError(ErrUserKeyRequired, apiErrors.ErrMissingRequiredData, "")
	}

	stored, err := s.repo.Get(ctx, userKey)
	if err != nil {
		return nil, NewDashboardError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	if stored == nil {
		config := DefaultConfig(userKey)
		return &config, nil
	}

	config, err := Decode(stored)
	if err != nil {
		log.ForContext(ctx).WithError(err).WithField("user_key", userKey).
			Warn("dashboard: configuração gravada inválida, usando o padrão")
		config = DefaultConfig(userKey)
	}

	if stored.SchemaVersion != CurrentSchemaVersion {
		log.ForContext(ctx).WithFields(log.Fields{
			"user_key":     userKey,
			"from_version": stored.SchemaVersion,
			"to_version":   CurrentSchemaVersion,
		}).Info("dashboard: configuração migrada")
	}

	return &config, nil
}

// Apply carrega, aplica o reducer e grava somente quando a configuração mudou
func (s *ConfigStore) Apply(ctx context.Context, userKey string, reducer Reducer) (*domain.DashboardConfig, bool, error) {
	current, err := s.Load(ctx, userKey)
	if err != nil {
		return nil, false, err
	}

	next, changed, err := reducer(*current)
	if err != nil {
		return nil, false, err
	}
	if !changed {
		return current, false, nil
	}

	next.UpdatedAt = s.now()
	stored, err := Encode(next)
	if err != nil {
		return nil, false, NewDashboardError(ErrCorruptConfig, apiErrors.ErrInternalServer, err.Error())
	}

	if err := s.repo.Save(ctx, stored); err != nil {
		return nil, false, NewDashboardError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return &next, true, nil
}
