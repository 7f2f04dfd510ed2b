package targeting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/booker-targets-api/infrastructure/repository"
	"github.com/vfg2006/booker-targets-api/internal/config"
	"github.com/vfg2006/booker-targets-api/internal/domain"
	"github.com/vfg2006/booker-targets-api/pkg/apiErrors"
	"github.com/vfg2006/booker-targets-api/pkg/log"
	"github.com/vfg2006/booker-targets-api/pkg/metrics"
	"github.com/vfg2006/booker-targets-api/pkg/period"
	"github.com/vfg2006/booker-targets-api/pkg/utils"
)

var hundred = decimal.NewFromInt(100)

type TargetService interface {
	GetAll(ctx context.Context, filters domain.MonthlyTargetFilters) ([]*domain.MonthlyTarget, error)
	GetByID(ctx context.Context, id string) (*domain.MonthlyTarget, error)
	GetByPeriod(ctx context.Context, year, month int) ([]*domain.MonthlyTarget, error)
	GetByOrderBooker(ctx context.Context, orderBookerID string) ([]*domain.MonthlyTarget, error)
	Create(ctx context.Context, request domain.CreateMonthlyTargetRequest) (*domain.MonthlyTarget, error)
	Update(ctx context.Context, id string, request domain.UpdateMonthlyTargetRequest) (*domain.MonthlyTarget, error)
	Delete(ctx context.Context, id string) error
	ReconcileAchieved(ctx context.Context, id string, achieved decimal.Decimal) (*domain.MonthlyTarget, error)
	BatchCreate(ctx context.Context, requests []domain.CreateMonthlyTargetRequest) (*domain.BatchResult, error)
	BatchUpsert(ctx context.Context, requests []domain.CreateMonthlyTargetRequest) (*domain.BatchResult, error)
	CopyFromPreviousPeriod(ctx context.Context, request domain.CopyTargetsRequest) (*domain.BatchResult, error)
}

type Service struct {
	repo        repository.MonthlyTargetRepository
	batchAtomic bool
	now         func() time.Time
	newID       func() (string, error)
}

func NewService(repo repository.MonthlyTargetRepository, cfg *config.Config) TargetService {
	return &Service{
		repo:        repo,
		batchAtomic: cfg.Targets.BatchAtomic,
		now:         func() time.Time { return time.Now().UTC() },
		newID:       utils.GenerateID,
	}
}

func (s *Service) GetAll(ctx context.Context, filters domain.MonthlyTargetFilters) ([]*domain.MonthlyTarget, error) {
	if filters.Month != nil && (*filters.Month < 1 || *filters.Month > 12) {
		return nil, NewTargetError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, period.ErrInvalidMonth.Error())
	}

	targets, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, NewTargetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return targets, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.MonthlyTarget, error) {
	if id == "" {
		return nil, NewTargetError(ErrTargetIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	target, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, NewTargetErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}
	if target == nil {
		return nil, NewTargetErrorWithID(ErrNotFound, apiErrors.ErrTargetNotFound, id, "")
	}

	return target, nil
}

func (s *Service) GetByPeriod(ctx context.Context, year, month int) ([]*domain.MonthlyTarget, error) {
	if err := period.Validate(year, month); err != nil {
		return nil, NewTargetError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, err.Error())
	}

	targets, err := s.repo.ListByPeriod(ctx, year, month, nil)
	if err != nil {
		return nil, NewTargetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return targets, nil
}

func (s *Service) GetByOrderBooker(ctx context.Context, orderBookerID string) ([]*domain.MonthlyTarget, error) {
	if orderBookerID == "" {
		return nil, NewTargetError(ErrOrderBookerRequired, apiErrors.ErrMissingRequiredData, "")
	}

	targets, err := s.repo.ListByOrderBooker(ctx, orderBookerID)
	if err != nil {
		return nil, NewTargetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return targets, nil
}

func (s *Service) Create(ctx context.Context, request domain.CreateMonthlyTargetRequest) (target *domain.MonthlyTarget, err error) {
	defer func(start time.Time) { metrics.ObserveOperation("create", start, err) }(time.Now())

	target, err = s.create(ctx, s.repo, request)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"target_id":       target.ID,
		"order_booker_id": target.OrderBookerID,
		"period":          period.Label(target.Year, target.Month),
	}).Info("targeting: meta mensal criada")

	return target, nil
}

func (s *Service) Update(ctx context.Context, id string, request domain.UpdateMonthlyTargetRequest) (target *domain.MonthlyTarget, err error) {
	defer func(start time.Time) { metrics.ObserveOperation("update", start, err) }(time.Now())

	if request.TargetAmount == nil {
		return nil, NewTargetErrorWithID(ErrNoFieldsToUpdate, apiErrors.ErrMissingRequiredData, id, "")
	}

	target, err = s.updateTargetAmount(ctx, s.repo, id, *request.TargetAmount)
	if err != nil {
		return nil, err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"target_id":     target.ID,
		"target_amount": target.TargetAmount.String(),
	}).Info("targeting: meta mensal atualizada")

	return target, nil
}

func (s *Service) Delete(ctx context.Context, id string) (err error) {
	defer func(start time.Time) { metrics.ObserveOperation("delete", start, err) }(time.Now())

	if id == "" {
		return NewTargetError(ErrTargetIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	rows, err := s.repo.Delete(ctx, id)
	if err != nil {
		return NewTargetErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}
	if rows == 0 {
		return NewTargetErrorWithID(ErrNotFound, apiErrors.ErrTargetNotFound, id, "")
	}

	log.ForContext(ctx).WithField("target_id", id).Info("targeting: meta mensal removida")
	return nil
}

// ReconcileAchieved grava o valor realizado informado pelo ledger de vendas
func (s *Service) ReconcileAchieved(ctx context.Context, id string, achieved decimal.Decimal) (target *domain.MonthlyTarget, err error) {
	defer func(start time.Time) { metrics.ObserveOperation("reconcile", start, err) }(time.Now())

	if achieved.IsNegative() {
		return nil, NewTargetErrorWithID(ErrInvalidAmount, apiErrors.ErrInvalidAmount, id, "achieved amount must not be negative")
	}

	err = s.repo.RunInTransaction(ctx, func(repo repository.MonthlyTargetRepository) error {
		current, err := s.lockTarget(ctx, repo, id)
		if err != nil {
			return err
		}

		current.AchievedAmount = achieved
		applyAmounts(current)
		current.UpdatedAt = s.now()

		if err := s.save(ctx, repo, current); err != nil {
			return err
		}

		target = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return target, nil
}

// create valida a requisição, calcula os campos derivados e grava a meta
func (s *Service) create(ctx context.Context, repo repository.MonthlyTargetRepository, request domain.CreateMonthlyTargetRequest) (*domain.MonthlyTarget, error) {
	if request.OrderBookerID == "" {
		return nil, NewTargetError(ErrOrderBookerRequired, apiErrors.ErrMissingRequiredData, "")
	}
	if err := period.Validate(request.Year, request.Month); err != nil {
		return nil, NewTargetError(ErrInvalidPeriod, apiErrors.ErrInvalidPeriod, err.Error())
	}
	if !request.TargetAmount.IsPositive() {
		return nil, NewTargetError(ErrInvalidAmount, apiErrors.ErrInvalidAmount, "target amount must be greater than zero")
	}

	daysInMonth := period.DaysInMonth(request.Year, request.Month)
	workingDays := period.WorkingDays(daysInMonth)
	daily, err := period.DailyTarget(request.TargetAmount, workingDays)
	if err != nil {
		return nil, NewTargetError(ErrDivisionByZero, apiErrors.ErrDivisionByZero, period.Label(request.Year, request.Month))
	}

	id, err := s.newID()
	if err != nil {
		return nil, NewTargetError(ErrGenerateID, apiErrors.ErrInternalServer, err.Error())
	}

	now := s.now()
	target := &domain.MonthlyTarget{
		ID:                 id,
		OrderBookerID:      request.OrderBookerID,
		Year:               request.Year,
		Month:              request.Month,
		TargetAmount:       request.TargetAmount,
		AchievedAmount:     decimal.Zero,
		DaysInMonth:        daysInMonth,
		WorkingDaysInMonth: workingDays,
		DailyTargetAmount:  daily,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	applyAmounts(target)

	if err := repo.Create(ctx, target); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, NewTargetError(ErrDuplicatePeriod, apiErrors.ErrDuplicatePeriod,
				fmt.Sprintf("order booker %s in %s", request.OrderBookerID, period.Label(request.Year, request.Month)))
		}
		return nil, NewTargetError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return target, nil
}

// updateTargetAmount troca o valor da meta e recalcula os derivados a partir do realizado gravado
func (s *Service) updateTargetAmount(ctx context.Context, repo repository.MonthlyTargetRepository, id string, amount decimal.Decimal) (*domain.MonthlyTarget, error) {
	if !amount.IsPositive() {
		return nil, NewTargetErrorWithID(ErrInvalidAmount, apiErrors.ErrInvalidAmount, id, "target amount must be greater than zero")
	}

	var updated *domain.MonthlyTarget
	err := repo.RunInTransaction(ctx, func(tx repository.MonthlyTargetRepository) error {
		current, err := s.lockTarget(ctx, tx, id)
		if err != nil {
			return err
		}

		daily, err := period.DailyTarget(amount, current.WorkingDaysInMonth)
		if err != nil {
			return NewTargetErrorWithID(ErrDivisionByZero, apiErrors.ErrDivisionByZero, id, period.Label(current.Year, current.Month))
		}

		current.TargetAmount = amount
		current.DailyTargetAmount = daily
		applyAmounts(current)
		current.UpdatedAt = s.now()

		if err := s.save(ctx, tx, current); err != nil {
			return err
		}

		updated = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

func (s *Service) lockTarget(ctx context.Context, repo repository.MonthlyTargetRepository, id string) (*domain.MonthlyTarget, error) {
	if id == "" {
		return nil, NewTargetError(ErrTargetIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	current, err := repo.GetByIDForUpdate(ctx, id)
	if err != nil {
		return nil, NewTargetErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, id, err.Error())
	}
	if current == nil {
		return nil, NewTargetErrorWithID(ErrNotFound, apiErrors.ErrTargetNotFound, id, "")
	}

	return current, nil
}

func (s *Service) save(ctx context.Context, repo repository.MonthlyTargetRepository, target *domain.MonthlyTarget) error {
	rows, err := repo.Update(ctx, target)
	if err != nil {
		return NewTargetErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, target.ID, err.Error())
	}
	if rows == 0 {
		return NewTargetErrorWithID(ErrNotFound, apiErrors.ErrTargetNotFound, target.ID, "")
	}
	return nil
}

// applyAmounts mantém remaining + achieved == target e o percentual coerente
func applyAmounts(target *domain.MonthlyTarget) {
	target.RemainingAmount = target.TargetAmount.Sub(target.AchievedAmount)
	target.AchievementPercentage = AchievementPercentage(target.AchievedAmount, target.TargetAmount)
}

// AchievementPercentage retorna achieved / target * 100, ou zero quando a meta é zero
func AchievementPercentage(achieved, target decimal.Decimal) decimal.Decimal {
	if target.IsZero() {
		return decimal.Zero
	}
	return achieved.Div(target).Mul(hundred)
}
