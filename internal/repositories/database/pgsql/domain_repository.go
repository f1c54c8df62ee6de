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

type PgxDomainRepository struct {
	BaseRepository
}

var _ portsrepo.DomainRepositoryFacade = (*PgxDomainRepository)(nil)

const selectDomainQuery = `SELECT uuid, code, currency, extra, version, created_at, updated_at FROM ledger_domains`

func scanDomain(row pgx.Row) (models.Domain, error) {
	var m models.Domain
	err := row.Scan(&m.UUID, &m.Code, &m.Currency, &m.Extra, &m.Version, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (r *PgxDomainRepository) findDomain(ctx context.Context, what, query string, args ...any) (*domain.LedgerDomain, error) {
	m, err := scanDomain(r.queryRow(ctx, query, args...))
	if err != nil {
		return nil, notFound(err, what)
	}
	d := mapping.ToDomainLedgerDomain(m)
	return &d, nil
}

func (r *PgxDomainRepository) FindDomainByCode(ctx context.Context, code string) (*domain.LedgerDomain, error) {
	return r.findDomain(ctx, "domain "+code, selectDomainQuery+` WHERE code = $1`, code)
}

func (r *PgxDomainRepository) FindDomainByCodeForUpdate(ctx context.Context, code string) (*domain.LedgerDomain, error) {
	return r.findDomain(ctx, "domain "+code, selectDomainQuery+` WHERE code = $1 FOR UPDATE`, code)
}

func (r *PgxDomainRepository) FindDomainByUUID(ctx context.Context, uuid string) (*domain.LedgerDomain, error) {
	return r.findDomain(ctx, "domain "+uuid, selectDomainQuery+` WHERE uuid = $1`, uuid)
}

// QueryDomains lists domains in bytewise code order.
func (r *PgxDomainRepository) QueryDomains(ctx context.Context, filter portsrepo.CodeFilter, page portsrepo.PageQuery) ([]domain.LedgerDomain, error) {
	var w whereBuilder
	w.codeFilter("code", filter, page)
	rows, err := r.query(ctx, selectDomainQuery+w.sql("code", page), w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query domains: %w", err)
	}
	defer rows.Close()

	modelDomains, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Domain, error) {
		return scanDomain(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan domains: %w", err)
	}
	return mapping.ToDomainLedgerDomainSlice(modelDomains), nil
}

func (r *PgxDomainRepository) CountDomainsByCurrency(ctx context.Context, currency string) (int, error) {
	var count int
	if err := r.queryRow(ctx, `SELECT COUNT(*) FROM ledger_domains WHERE currency = $1`, currency).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count domains in %s: %w", currency, err)
	}
	return count, nil
}

func (r *PgxDomainRepository) SaveDomain(ctx context.Context, d domain.LedgerDomain) error {
	m := mapping.ToModelDomain(d)
	_, err := r.exec(ctx, `
		INSERT INTO ledger_domains (uuid, code, currency, extra, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.UUID, m.Code, m.Currency, m.Extra, m.Version, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "domain "+m.Code)
	}
	return nil
}

func (r *PgxDomainRepository) UpdateDomain(ctx context.Context, d domain.LedgerDomain, prevVersion int64) error {
	m := mapping.ToModelDomain(d)
	return r.execVersioned(ctx, "domain "+m.Code, `
		UPDATE ledger_domains SET code = $2, currency = $3, extra = $4, version = $5, updated_at = $6
		WHERE uuid = $1 AND version = $7`,
		m.UUID, m.Code, m.Currency, m.Extra, m.Version, m.UpdatedAt, prevVersion,
	)
}

// DeleteDomain removes the domain and its names. The ledger's default
// pointer must have moved off it first.
func (r *PgxDomainRepository) DeleteDomain(ctx context.Context, uuid string, version int64) error {
	if err := r.execVersioned(ctx, "domain "+uuid,
		`DELETE FROM ledger_domains WHERE uuid = $1 AND version = $2`, uuid, version); err != nil {
		return err
	}
	if _, err := r.exec(ctx, `DELETE FROM ledger_names WHERE owner_uuid = $1`, uuid); err != nil {
		return fmt.Errorf("failed to delete names of domain %s: %w", uuid, err)
	}
	return nil
}
