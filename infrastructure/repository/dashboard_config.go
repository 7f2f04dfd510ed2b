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

type DashboardConfigRepository interface {
	Get(ctx context.Context, userKey string) (*domain.StoredDashboardConfig, error)
	Save(ctx context.Context, config *domain.StoredDashboardConfig) error
}

type dashboardConfigRepository struct {
	db postgres.Queryer
}

func NewDashboardConfigRepository(db postgres.Queryer) DashboardConfigRepository {
	return &dashboardConfigRepository{
		db: db,
	}
}

// Get retorna nil quando o usuário ainda não personalizou o painel
func (r *dashboardConfigRepository) Get(ctx context.Context, userKey string) (*domain.StoredDashboardConfig, error) {
	query, args, err := squirrel.
		Select("dc.user_key, dc.schema_version, dc.payload, dc.updated_at").
		From("dashboard_configs dc").
		Where(squirrel.Eq{"dc.user_key": userKey}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	stored := &domain.StoredDashboardConfig{}
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&stored.UserKey,
		&stored.SchemaVersion,
		&stored.Payload,
		&stored.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear configuração do painel: %w", err)
	}

	return stored, nil
}

func (r *dashboardConfigRepository) Save(ctx context.Context, config *domain.StoredDashboardConfig) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("dashboard_configs").
		Columns("user_key", "schema_version", "payload", "updated_at").
		Values(config.UserKey, config.SchemaVersion, string(config.Payload), config.UpdatedAt).
		Suffix(`
			ON CONFLICT (user_key) DO UPDATE SET
				schema_version = EXCLUDED.schema_version,
				payload = EXCLUDED.payload,
				updated_at = EXCLUDED.updated_at
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar configuração do painel: %w", err)
	}

	return nil
}
