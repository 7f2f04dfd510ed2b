package testutil

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync"

	"github.com/vfg2006/booker-targets-api/infrastructure/repository"
	"github.com/vfg2006/booker-targets-api/internal/domain"
)

// MockMonthlyTargetRepository é uma implementação em memória de repository.MonthlyTargetRepository.
// Garante a unicidade de (order booker, ano, mês) e desfaz transações que falham.
type MockMonthlyTargetRepository struct {
	mu      sync.Mutex
	Targets map[string]*domain.MonthlyTarget

	// CreateFn, se definido, roda antes de cada inserção; um erro cancela a inserção
	CreateFn func(target *domain.MonthlyTarget) error
	// UpdateFn, se definido, roda antes de cada atualização; um erro cancela a atualização
	UpdateFn func(target *domain.MonthlyTarget) error

	Transactions int
	inTx         bool
}

// NewMockMonthlyTargetRepository cria um repositório vazio
func NewMockMonthlyTargetRepository() *MockMonthlyTargetRepository {
	return &MockMonthlyTargetRepository{
		Targets: make(map[string]*domain.MonthlyTarget),
	}
}

// Seed grava metas diretamente, sem passar pelos hooks
func (m *MockMonthlyTargetRepository) Seed(targets ...*domain.MonthlyTarget) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, t := range targets {
		c := *t
		m.Targets[t.ID] = &c
	}
}

// Count retorna a quantidade de metas gravadas
func (m *MockMonthlyTargetRepository) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Targets)
}

func (m *MockMonthlyTargetRepository) Create(_ context.Context, target *domain.MonthlyTarget) error {
	if m.CreateFn != nil {
		if err := m.CreateFn(target); err != nil {
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.Targets {
		if existing.OrderBookerID == target.OrderBookerID && existing.Year == target.Year && existing.Month == target.Month {
			return fmt.Errorf("meta já existe para o período: %w", repository.ErrDuplicateKey)
		}
	}
	if _, ok := m.Targets[target.ID]; ok {
		return fmt.Errorf("id já existe: %w", repository.ErrDuplicateKey)
	}

	c := *target
	m.Targets[target.ID] = &c
	return nil
}

func (m *MockMonthlyTargetRepository) Update(_ context.Context, target *domain.MonthlyTarget) (int64, error) {
	if m.UpdateFn != nil {
		if err := m.UpdateFn(target); err != nil {
			return 0, err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing, ok := m.Targets[target.ID]
	if !ok {
		return 0, nil
	}

	existing.TargetAmount = target.TargetAmount
	existing.AchievedAmount = target.AchievedAmount
	existing.RemainingAmount = target.RemainingAmount
	existing.AchievementPercentage = target.AchievementPercentage
	existing.DailyTargetAmount = target.DailyTargetAmount
	existing.UpdatedAt = target.UpdatedAt
	return 1, nil
}

func (m *MockMonthlyTargetRepository) Delete(_ context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.Targets[id]; !ok {
		return 0, nil
	}
	delete(m.Targets, id)
	return 1, nil
}

func (m *MockMonthlyTargetRepository) GetByID(_ context.Context, id string) (*domain.MonthlyTarget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if t, ok := m.Targets[id]; ok {
		c := *t
		return &c, nil
	}
	return nil, nil
}

func (m *MockMonthlyTargetRepository) GetByIDForUpdate(ctx context.Context, id string) (*domain.MonthlyTarget, error) {
	return m.GetByID(ctx, id)
}

func (m *MockMonthlyTargetRepository) GetByNaturalKey(_ context.Context, orderBookerID string, year, month int) (*domain.MonthlyTarget, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, t := range m.Targets {
		if t.OrderBookerID == orderBookerID && t.Year == year && t.Month == month {
			c := *t
			return &c, nil
		}
	}
	return nil, nil
}

func (m *MockMonthlyTargetRepository) List(_ context.Context, filters domain.MonthlyTargetFilters) ([]*domain.MonthlyTarget, error) {
	result := m.filter(func(t *domain.MonthlyTarget) bool {
		if filters.Year != nil && t.Year != *filters.Year {
			return false
		}
		if filters.Month != nil && t.Month != *filters.Month {
			return false
		}
		return len(filters.OrderBookerIDs) == 0 || slices.Contains(filters.OrderBookerIDs, t.OrderBookerID)
	})

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Year != result[j].Year {
			return result[i].Year > result[j].Year
		}
		if result[i].Month != result[j].Month {
			return result[i].Month > result[j].Month
		}
		return result[i].TargetAmount.GreaterThan(result[j].TargetAmount)
	})
	return result, nil
}

func (m *MockMonthlyTargetRepository) ListByPeriod(_ context.Context, year, month int, orderBookerIDs []string) ([]*domain.MonthlyTarget, error) {
	result := m.filter(func(t *domain.MonthlyTarget) bool {
		if t.Year != year || t.Month != month {
			return false
		}
		return len(orderBookerIDs) == 0 || slices.Contains(orderBookerIDs, t.OrderBookerID)
	})

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].TargetAmount.GreaterThan(result[j].TargetAmount)
	})
	return result, nil
}

func (m *MockMonthlyTargetRepository) ListByOrderBooker(_ context.Context, orderBookerID string) ([]*domain.MonthlyTarget, error) {
	result := m.filter(func(t *domain.MonthlyTarget) bool {
		return t.OrderBookerID == orderBookerID
	})

	sort.SliceStable(result, func(i, j int) bool {
		if result[i].Year != result[j].Year {
			return result[i].Year > result[j].Year
		}
		return result[i].Month > result[j].Month
	})
	return result, nil
}

// RunInTransaction guarda uma cópia do estado e a restaura quando fn falha
func (m *MockMonthlyTargetRepository) RunInTransaction(_ context.Context, fn func(repo repository.MonthlyTargetRepository) error) error {
	m.mu.Lock()
	if m.inTx {
		m.mu.Unlock()
		return fn(m)
	}
	m.inTx = true
	m.Transactions++
	snapshot := make(map[string]*domain.MonthlyTarget, len(m.Targets))
	for id, t := range m.Targets {
		c := *t
		snapshot[id] = &c
	}
	m.mu.Unlock()

	err := fn(m)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.inTx = false
	if err != nil {
		m.Targets = snapshot
	}
	return err
}

func (m *MockMonthlyTargetRepository) filter(keep func(t *domain.MonthlyTarget) bool) []*domain.MonthlyTarget {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]*domain.MonthlyTarget, 0)
	for _, t := range m.Targets {
		if keep(t) {
			c := *t
			result = append(result, &c)
		}
	}
	// ordem estável para empates
	sort.SliceStable(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
