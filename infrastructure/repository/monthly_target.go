package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/booker-targets-api/infrastructure/database/postgres"
	"github.com/vfg2006/booker-targets-api/internal/domain"
)

const (
	monthlyTargetsTable = "monthly_targets mt"
)

var monthlyTargetColumns = []string{
	"mt.id",
	"mt.order_booker_id",
	"mt.year",
	"mt.month",
	"mt.target_amount",
	"mt.achieved_amount",
	"mt.remaining_amount",
	"mt.achievement_percentage",
	"mt.days_in_month",
	"mt.working_days_in_month",
	"mt.daily_target_amount",
	"mt.created_at",
	"mt.updated_at",
}

type MonthlyTargetRepository interface {
	Create(ctx context.Context, target *domain.MonthlyTarget) error
	Update(ctx context.Context, target *domain.MonthlyTarget) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	GetByID(ctx context.Context, id string) (*domain.MonthlyTarget, error)
	GetByIDForUpdate(ctx context.Context, id string) (*domain.MonthlyTarget, error)
	GetByNaturalKey(ctx context.Context, orderBookerID string, year, month int) (*domain.MonthlyTarget, error)
	List(ctx context.Context, filters domain.MonthlyTargetFilters) ([]*domain.MonthlyTarget, error)
	ListByPeriod(ctx context.Context, year, month int, orderBookerIDs []string) ([]*domain.MonthlyTarget, error)
	ListByOrderBooker(ctx context.Context, orderBookerID string) ([]*domain.MonthlyTarget, error)
	RunInTransaction(ctx context.Context, fn func(repo MonthlyTargetRepository) error) error
}

type monthlyTargetRepository struct {
	db   postgres.Queryer
	conn postgres.Conn // nil quando o repositório já está dentro de uma transação
}

func NewMonthlyTargetRepository(conn postgres.Conn) MonthlyTargetRepository {
	return &monthlyTargetRepository{
		db:   conn,
		conn: conn,
	}
}

// RunInTransaction executa fn com um repositório ligado a uma transação.
// Chamadas aninhadas reutilizam a transação corrente.
func (r *monthlyTargetRepository) RunInTransaction(ctx context.Context, fn func(repo MonthlyTargetRepository) error) error {
	if r.conn == nil {
		return fn(r)
	}

	return r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		return fn(&monthlyTargetRepository{db: q})
	})
}

func (r *monthlyTargetRepository) Create(ctx context.Context, target *domain.MonthlyTarget) error {
	query, args, err := squirrel.
		Insert("monthly_targets").
		Columns(
			"id",
			"order_booker_id",
			"year",
			"month",
			"target_amount",
			"achieved_amount",
			"remaining_amount",
			"achievement_percentage",
			"days_in_month",
			"working_days_in_month",
			"daily_target_amount",
			"created_at",
			"updated_at",
		).
		Values(
			target.ID,
			target.OrderBookerID,
			target.Year,
			target.Month,
			target.TargetAmount,
			target.AchievedAmount,
			target.RemainingAmount,
			target.AchievementPercentage,
			target.DaysInMonth,
			target.WorkingDaysInMonth,
			target.DailyTargetAmount,
			target.CreatedAt,
			target.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("meta já existe para o período: %w", ErrDuplicateKey)
		}
		return fmt.Errorf("erro ao inserir meta mensal: %w", err)
	}

	return nil
}

// Update grava os valores e campos derivados; order booker e período não mudam
func (r *monthlyTargetRepository) Update(ctx context.Context, target *domain.MonthlyTarget) (int64, error) {
	query, args, err := squirrel.
		Update("monthly_targets").
		Set("target_amount", target.TargetAmount).
		Set("achieved_amount", target.AchievedAmount).
		Set("remaining_amount", target.RemainingAmount).
		Set("achievement_percentage", target.AchievementPercentage).
		Set("daily_target_amount", target.DailyTargetAmount).
		Set("updated_at", target.UpdatedAt).
		Where(squirrel.Eq{"id": target.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao atualizar meta mensal: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *monthlyTargetRepository) Delete(ctx context.Context, id string) (int64, error) {
	query, args, err := squirrel.
		Delete("monthly_targets").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover meta mensal: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *monthlyTargetRepository) GetByID(ctx context.Context, id string) (*domain.MonthlyTarget, error) {
	return r.getOne(ctx, squirrel.Eq{"mt.id": id}, false)
}

// GetByIDForUpdate bloqueia a linha até o fim da transação corrente
func (r *monthlyTargetRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.MonthlyTarget, error) {
	return r.getOne(ctx, squirrel.Eq{"mt.id": id}, true)
}

func (r *monthlyTargetRepository) GetByNaturalKey(ctx context.Context, orderBookerID string, year, month int) (*domain.MonthlyTarget, error) {
	return r.getOne(ctx, squirrel.Eq{
		"mt.order_booker_id": orderBookerID,
		"mt.year":            year,
		"mt.month":           month,
	}, false)
}

func (r *monthlyTargetRepository) List(ctx context.Context, filters domain.MonthlyTargetFilters) ([]*domain.MonthlyTarget, error) {
	builder := squirrel.
		Select(monthlyTargetColumns...).
		From(monthlyTargetsTable)

	if filters.Year != nil {
		builder = builder.Where(squirrel.Eq{"mt.year": *filters.Year})
	}
	if filters.Month != nil {
		builder = builder.Where(squirrel.Eq{"mt.month": *filters.Month})
	}
	if len(filters.OrderBookerIDs) > 0 {
		builder = builder.Where(squirrel.Eq{"mt.order_booker_id": filters.OrderBookerIDs})
	}

	builder = builder.
		OrderBy("mt.year DESC", "mt.month DESC", "mt.target_amount DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.list(ctx, builder)
}

// ListByPeriod retorna as metas do período da maior para a menor
func (r *monthlyTargetRepository) ListByPeriod(ctx context.Context, year, month int, orderBookerIDs []string) ([]*domain.MonthlyTarget, error) {
	builder := squirrel.
		Select(monthlyTargetColumns...).
		From(monthlyTargetsTable).
		Where(squirrel.Eq{"mt.year": year, "mt.month": month})

	if len(orderBookerIDs) > 0 {
		builder = builder.Where(squirrel.Eq{"mt.order_booker_id": orderBookerIDs})
	}

	builder = builder.
		OrderBy("mt.target_amount DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.list(ctx, builder)
}

func (r *monthlyTargetRepository) ListByOrderBooker(ctx context.Context, orderBookerID string) ([]*domain.MonthlyTarget, error) {
	builder := squirrel.
		Select(monthlyTargetColumns...).
		From(monthlyTargetsTable).
		Where(squirrel.Eq{"mt.order_booker_id": orderBookerID}).
		OrderBy("mt.year DESC", "mt.month DESC").
		PlaceholderFormat(squirrel.Dollar)

	return r.list(ctx, builder)
}

func (r *monthlyTargetRepository) getOne(ctx context.Context, where squirrel.Eq, forUpdate bool) (*domain.MonthlyTarget, error) {
	builder := squirrel.
		Select(monthlyTargetColumns...).
		From(monthlyTargetsTable).
		Where(where).
		PlaceholderFormat(squirrel.Dollar)

	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	target, err := scanMonthlyTarget(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear meta mensal: %w", err)
	}

	return target, nil
}

func (r *monthlyTargetRepository) list(ctx context.Context, builder squirrel.SelectBuilder) ([]*domain.MonthlyTarget, error) {
	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	targets := make([]*domain.MonthlyTarget, 0)
	for rows.Next() {
		target, err := scanMonthlyTarget(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear metas mensais: %w", err)
		}
		targets = append(targets, target)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return targets, nil
}

func scanMonthlyTarget(row rowScanner) (*domain.MonthlyTarget, error) {
	target := &domain.MonthlyTarget{}

	err := row.Scan(
		&target.ID,
		&target.OrderBookerID,
		&target.Year,
		&target.Month,
		&target.TargetAmount,
		&target.AchievedAmount,
		&target.RemainingAmount,
		&target.AchievementPercentage,
		&target.DaysInMonth,
		&target.WorkingDaysInMonth,
		&target.DailyTargetAmount,
		&target.CreatedAt,
		&target.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return target, nil
}
