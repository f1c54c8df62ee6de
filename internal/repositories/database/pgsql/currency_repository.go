package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_engine/internal/models"
	"github.com/SscSPs/ledger_engine/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxCurrencyRepository struct {
	BaseRepository
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

const selectCurrencyFields = `code, decimals, version, created_at, updated_at`

func scanCurrency(row pgx.Row) (models.Currency, error) {
	var m models.Currency
	err := row.Scan(&m.Code, &m.Decimals, &m.Version, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (r *PgxCurrencyRepository) findCurrency(ctx context.Context, code string, lock bool) (*domain.Currency, error) {
	query := `SELECT ` + selectCurrencyFields + ` FROM ledger_currencies WHERE code = $1`
	if lock {
		query += " FOR UPDATE"
	}
	m, err := scanCurrency(r.queryRow(ctx, query, code))
	if err != nil {
		return nil, notFound(err, "currency "+code)
	}
	c := mapping.ToDomainCurrency(m)
	return &c, nil
}

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	return r.findCurrency(ctx, code, false)
}

func (r *PgxCurrencyRepository) FindCurrencyByCodeForUpdate(ctx context.Context, code string) (*domain.Currency, error) {
	return r.findCurrency(ctx, code, true)
}

// ListCurrencies retrieves all ledger currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	rows, err := r.query(ctx, `SELECT `+selectCurrencyFields+` FROM ledger_currencies ORDER BY code`)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		return scanCurrency(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}
	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}

func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	m := mapping.ToModelCurrency(currency)
	_, err := r.exec(ctx, `
		INSERT INTO ledger_currencies (code, decimals, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`,
		m.Code, m.Decimals, m.Version, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "currency "+m.Code)
	}
	return nil
}

func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency, prevVersion int64) error {
	m := mapping.ToModelCurrency(currency)
	return r.execVersioned(ctx, "currency "+m.Code, `
		UPDATE ledger_currencies SET decimals = $2, version = $3, updated_at = $4
		WHERE code = $1 AND version = $5`,
		m.Code, m.Decimals, m.Version, m.UpdatedAt, prevVersion,
	)
}

func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, code string, version int64) error {
	return r.execVersioned(ctx, "currency "+code,
		`DELETE FROM ledger_currencies WHERE code = $1 AND version = $2`, code, version)
}
