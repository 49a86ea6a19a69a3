package rates

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
	"github.com/m04kA/SMC-StudioBooking/pkg/dbmetrics"
	"github.com/m04kA/SMC-StudioBooking/pkg/psqlbuilder"
)

const (
	table = "studio_rates"
	// rowID таблица хранит одну строку
	rowID = 1
)

// Repository репозиторий тарифов студии
type Repository struct {
	db dbmetrics.DBExecutor
}

func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// Get возвращает сохранённые тарифы или ErrRatesNotFound
func (r *Repository) Get(ctx context.Context) (*domain.Rates, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("currency", "hourly", "mix", "master", "updated_at").
		From(table).
		Where(squirrel.Eq{"id": rowID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var rates domain.Rates
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&rates.Currency,
		&rates.Hourly,
		&rates.Mix,
		&rates.Master,
		&rates.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRatesNotFound
		}
		return nil, fmt.Errorf("%w: Get - scan: %v", ErrExecQuery, err)
	}
	return &rates, nil
}

// Upsert сохраняет тарифы целиком
func (r *Repository) Upsert(ctx context.Context, rates *domain.Rates) (*domain.Rates, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(table).
		Columns("id", "currency", "hourly", "mix", "master").
		Values(rowID, rates.Currency, rates.Hourly, rates.Mix, rates.Master).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			currency = EXCLUDED.currency,
			hourly = EXCLUDED.hourly,
			mix = EXCLUDED.mix,
			master = EXCLUDED.master,
			updated_at = NOW()
		RETURNING updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&rates.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute: %v", ErrExecQuery, err)
	}
	return rates, nil
}
