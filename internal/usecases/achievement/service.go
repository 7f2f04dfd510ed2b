package achievement

import (
	"context"
	"sort"
	"time"

	"github.com/vfg2006/booker-targets-api/infrastructure/repository"
	"github.com/vfg2006/booker-targets-api/internal/domain"
	"github.com/vfg2006/booker-targets-api/internal/usecases/targeting"
	"github.com/vfg2006/booker-targets-api/pkg/apiErrors"
	"github.com/vfg2006/booker-targets-api/pkg/log"
	"github.com/vfg2006/booker-targets-api/pkg/period"
)

type AchievementService interface {
	GetTargetProgress(ctx context.Context, year, month int, orderBookerIDs []string, asOf time.Time) ([]*domain.TargetProgress, error)
	GetSummary(ctx context.Context, filters domain.MonthlyTargetFilters) (*domain.TargetRollup, error)
	GetBandDistribution(ctx context.Context, year, month int, orderBookerIDs []string) (domain.BandDistribution, error)
}

type Service struct {
	repo repository.MonthlyTargetRepository
}

func NewService(repo repository.MonthlyTargetRepository) AchievementService {
	return &Service{repo: repo}
}

// GetTargetProgress projeta o ritmo das metas do período, da maior para a menor realização
func (s *Service) GetTargetProgress(ctx context.Context, year, month int, orderBookerIDs []string, asOf time.Time) ([]*domain.TargetProgress, error) {
	targets, err := s.listPeriod(ctx, year, month, orderBookerIDs)
	if err != nil {
		return nil, err
	}

	progress := make([]*domain.TargetProgress, 0, len(targets))
	for _, target := range targets {
		progress = append(progress, Progress(target, asOf))
	}

	sort.SliceStable(progress, func(i, j int) bool {
		return progress[i].AchievementPercentage.GreaterThan(progress[j].AchievementPercentage)
	})

	log.ForContext(ctx).WithFields(log.Fields{
		"period":  period.Label(year, month),
		"targets": len(progress),
		"as_of":   asOf.Format(time.DateOnly),
	}).Debug("achievement: progresso calculado")

	return progress, nil
}

func (s *Service) GetSummary(ctx context.Context, filters domain.MonthlyTargetFilters) (*domain.TargetRollup, error) {
	if filters.Year != nil && filters.Month != nil {
		if err := period.Validate(*filters.Year, *filters.Month); err != nil {
			return nil, targeting.NewTargetError(targeting.ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, err.Error())
		}
	}

	targets, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, targeting.NewTargetError(targeting.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	rollup := Summarize(targets)
	return &rollup, nil
}

func (s *Service) GetBandDistribution(ctx context.Context, year, month int, orderBookerIDs []string) (domain.BandDistribution, error) {
	targets, err := s.listPeriod(ctx, year, month, orderBookerIDs)
	if err != nil {
		return nil, err
	}

	return Distribution(targets), nil
}

func (s *Service) listPeriod(ctx context.Context, year, month int, orderBookerIDs []string) ([]*domain.MonthlyTarget, error) {
	if err := period.Validate(year, month); err != nil {
		return nil, targeting.NewTargetError(targeting.ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, err.Error())
	}

	targets, err := s.repo.ListByPeriod(ctx, year, month, orderBookerIDs)
	if err != nil {
		return nil, targeting.NewTargetError(targeting.ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return targets, nil
}
