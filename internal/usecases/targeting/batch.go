package targeting

import (
	"context"
	"errors"
	"time"

	"github.com/vfg2006/booker-targets-api/infrastructure/repository"
	"github.com/vfg2006/booker-targets-api/internal/domain"
	"github.com/vfg2006/booker-targets-api/pkg/apiErrors"
	"github.com/vfg2006/booker-targets-api/pkg/log"
	"github.com/vfg2006/booker-targets-api/pkg/metrics"
	"github.com/vfg2006/booker-targets-api/pkg/period"
)

type batchItem func(ctx context.Context, repo repository.MonthlyTargetRepository, index int) (target *domain.MonthlyTarget, created bool, err error)

// BatchCreate cria as metas na ordem recebida
func (s *Service) BatchCreate(ctx context.Context, requests []domain.CreateMonthlyTargetRequest) (result *domain.BatchResult, err error) {
	defer func(start time.Time) { metrics.ObserveOperation("batch_create", start, err) }(time.Now())

	return s.runBatch(ctx, "create", len(requests), func(ctx context.Context, repo repository.MonthlyTargetRepository, i int) (*domain.MonthlyTarget, bool, error) {
		target, err := s.create(ctx, repo, requests[i])
		return target, true, err
	})
}

// BatchUpsert atualiza a meta existente do período ou cria uma nova.
// Repetir a mesma entrada deixa uma única meta por order booker e período.
func (s *Service) BatchUpsert(ctx context.Context, requests []domain.CreateMonthlyTargetRequest) (result *domain.BatchResult, err error) {
	defer func(start time.Time) { metrics.ObserveOperation("batch_upsert", start, err) }(time.Now())

	return s.runBatch(ctx, "upsert", len(requests), func(ctx context.Context, repo repository.MonthlyTargetRepository, i int) (*domain.MonthlyTarget, bool, error) {
		request := requests[i]
		if request.OrderBookerID == "" {
			return nil, false, NewTargetError(ErrOrderBookerRequired, apiErrors.ErrMissingRequiredData, "")
		}
		if err := period.Validate(request.Year, request.Month); err != nil {
			return nil, false, NewTargetError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, err.Error())
		}

		existing, err := repo.GetByNaturalKey(ctx, request.OrderBookerID, request.Year, request.Month)
		if err != nil {
			return nil, false, NewTargetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}

		if existing != nil {
			target, err := s.updateTargetAmount(ctx, repo, existing.ID, request.TargetAmount)
			return target, false, err
		}

		target, err := s.create(ctx, repo, request)
		return target, true, err
	})
}

// CopyFromPreviousPeriod replica os valores de meta de um período em outro; o realizado começa em zero
func (s *Service) CopyFromPreviousPeriod(ctx context.Context, request domain.CopyTargetsRequest) (result *domain.BatchResult, err error) {
	defer func(start time.Time) { metrics.ObserveOperation("copy", start, err) }(time.Now())

	if err := period.Validate(request.FromYear, request.FromMonth); err != nil {
		return nil, NewTargetError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, "source: "+err.Error())
	}
	if err := period.Validate(request.ToYear, request.ToMonth); err != nil {
		return nil, NewTargetError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, "destination: "+err.Error())
	}

	source, err := s.repo.ListByPeriod(ctx, request.FromYear, request.FromMonth, request.OrderBookerIDs)
	if err != nil {
		return nil, NewTargetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"from_period": period.Label(request.FromYear, request.FromMonth),
		"to_period":   period.Label(request.ToYear, request.ToMonth),
	})

	if len(source) == 0 {
		logger.Warn("targeting: nenhuma meta encontrada no período de origem")
	}

	requests := make([]domain.CreateMonthlyTargetRequest, 0, len(source))
	for _, target := range source {
		requests = append(requests, domain.CreateMonthlyTargetRequest{
			OrderBookerID: target.OrderBookerID,
			Year:          request.ToYear,
			Month:         request.ToMonth,
			TargetAmount:  target.TargetAmount,
		})
	}

	result, err = s.runBatch(ctx, "copy", len(requests), func(ctx context.Context, repo repository.MonthlyTargetRepository, i int) (*domain.MonthlyTarget, bool, error) {
		target, err := s.create(ctx, repo, requests[i])
		return target, true, err
	})
	if err != nil {
		return result, err
	}

	logger.Infof("targeting: %d metas copiadas", result.Created)
	return result, nil
}

// runBatch aplica item a cada posição. Em modo atômico tudo roda numa transação
// e uma falha desfaz o lote; em modo sequencial os itens anteriores à falha permanecem.
func (s *Service) runBatch(ctx context.Context, operation string, size int, item batchItem) (*domain.BatchResult, error) {
	result := &domain.BatchResult{Targets: make([]*domain.MonthlyTarget, 0, size)}
	if size == 0 {
		return result, nil
	}

	process := func(repo repository.MonthlyTargetRepository) error {
		for i := 0; i < size; i++ {
			target, created, err := item(ctx, repo, i)
			if err != nil {
				return &BatchError{
					Operation: operation,
					Index:     i,
					Committed: len(result.Targets),
					Atomic:    s.batchAtomic,
					Err:       err,
				}
			}

			result.Targets = append(result.Targets, target)
			if created {
				result.Created++
			} else {
				result.Updated++
			}
		}
		return nil
	}

	var err error
	if s.batchAtomic {
		err = s.repo.RunInTransaction(ctx, process)
	} else {
		err = process(s.repo)
	}

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"operation": operation,
		"items":     size,
		"atomic":    s.batchAtomic,
	})

	if err != nil {
		if s.batchAtomic {
			result = &domain.BatchResult{Targets: []*domain.MonthlyTarget{}}
		}

		var batchErr *BatchError
		if errors.As(err, &batchErr) && batchErr.Atomic {
			batchErr.Committed = 0
		}

		metrics.ObserveBatchItems(operation, len(result.Targets), size-len(result.Targets))
		logger.WithError(err).Error("targeting: lote interrompido")

		if batchErr == nil {
			return result, NewTargetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}
		return result, batchErr
	}

	metrics.ObserveBatchItems(operation, len(result.Targets), 0)
	logger.WithFields(log.Fields{
		"created": result.Created,
		"updated": result.Updated,
	}).Info("targeting: lote concluído")

	return result, nil
}
