package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_engine/internal/models"
	"github.com/SscSPs/ledger_engine/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxAccountRepository struct {
	BaseRepository
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const selectAccountQuery = `
	SELECT a.uuid, a.code, a.parent_uuid, p.code, a.category, a.normal_balance, a.closed, a.extra,
	       a.version, a.created_at, a.updated_at
	FROM ledger_accounts a
	LEFT JOIN ledger_accounts p ON p.uuid = a.parent_uuid`

func scanAccount(row pgx.Row) (models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.UUID,
		&m.Code,
		&m.ParentUUID,
		&m.ParentCode,
		&m.Category,
		&m.NormalBalance,
		&m.Closed,
		&m.Extra,
		&m.Version,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *PgxAccountRepository) collect(ctx context.Context, sql string, args ...any) ([]domain.Account, error) {
	rows, err := r.query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	modelAccounts, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Account, error) {
		return scanAccount(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan accounts: %w", err)
	}
	return mapping.ToDomainAccountSlice(modelAccounts), nil
}

func (r *PgxAccountRepository) findAccount(ctx context.Context, code string, lock bool) (*domain.Account, error) {
	query := selectAccountQuery + ` WHERE a.code = $1`
	if lock {
		query += " FOR UPDATE OF a"
	}
	m, err := scanAccount(r.queryRow(ctx, query, code))
	if err != nil {
		return nil, notFound(err, "account "+code)
	}
	a := mapping.ToDomainAccount(m)
	return &a, nil
}

// FindAccountByCode retrieves an account by its normalized code.
func (r *PgxAccountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	return r.findAccount(ctx, code, false)
}

// FindAccountByCodeForUpdate retrieves and row-locks an account.
func (r *PgxAccountRepository) FindAccountByCodeForUpdate(ctx context.Context, code string) (*domain.Account, error) {
	return r.findAccount(ctx, code, true)
}

func (r *PgxAccountRepository) AccountCodeExists(ctx context.Context, code string) (bool, error) {
	var exists bool
	err := r.queryRow(ctx, `SELECT EXISTS (SELECT 1 FROM ledger_accounts WHERE code = $1)`, code).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check account code %s: %w", code, err)
	}
	return exists, nil
}

// QueryAccounts lists accounts in bytewise code order. The name filter
// matches a substring of the normalized text in any language unless one is
// given.
func (r *PgxAccountRepository) QueryAccounts(ctx context.Context, filter portsrepo.AccountFilter, page portsrepo.PageQuery) ([]domain.Account, error) {
	var w whereBuilder
	w.codeFilter("a.code", filter.CodeFilter, page)

	if filter.ParentCode != nil {
		if *filter.ParentCode == "" {
			w.where("a.parent_uuid IS NULL")
		} else {
			w.where("p.code = " + w.arg(*filter.ParentCode))
		}
	}
	if filter.Category != nil {
		w.where("a.category = " + w.arg(*filter.Category))
	}
	if filter.Closed != nil {
		w.where("a.closed = " + w.arg(*filter.Closed))
	}
	if filter.NameContains != "" {
		clause := "EXISTS (SELECT 1 FROM ledger_names n WHERE n.owner_uuid = a.uuid AND strpos(n.normalized, " +
			w.arg(filter.NameContains) + ") > 0"
		if filter.NameLanguage != "" {
			clause += " AND lower(n.language) = lower(" + w.arg(filter.NameLanguage) + ")"
		}
		w.where(clause + ")")
	}

	query := selectAccountQuery + w.sql("a.code", page)
	return r.collect(ctx, query, w.args...)
}

func (r *PgxAccountRepository) HasChildAccounts(ctx context.Context, uuid string) (bool, error) {
	var exists bool
	err := r.queryRow(ctx, `SELECT EXISTS (SELECT 1 FROM ledger_accounts WHERE parent_uuid = $1)`, uuid).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check sub-accounts of %s: %w", uuid, err)
	}
	return exists, nil
}

// FindDescendantsForUpdate locks every account whose code starts with
// code followed by the delimiter.
func (r *PgxAccountRepository) FindDescendantsForUpdate(ctx context.Context, code, delimiter string) ([]domain.Account, error) {
	query := selectAccountQuery + ` WHERE starts_with(a.code, $1) ORDER BY a.code COLLATE "C" FOR UPDATE OF a`
	return r.collect(ctx, query, code+delimiter)
}

func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	_, err := r.exec(ctx, `
		INSERT INTO ledger_accounts (uuid, code, parent_uuid, category, normal_balance, closed, extra, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		m.UUID, m.Code, m.ParentUUID, m.Category, m.NormalBalance, m.Closed, m.Extra,
		m.Version, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "account "+m.Code)
	}
	return nil
}

func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account, prevVersion int64) error {
	m := mapping.ToModelAccount(account)
	return r.execVersioned(ctx, "account "+m.Code, `
		UPDATE ledger_accounts
		SET code = $2, parent_uuid = $3, category = $4, normal_balance = $5, closed = $6, extra = $7,
		    version = $8, updated_at = $9
		WHERE uuid = $1 AND version = $10`,
		m.UUID, m.Code, m.ParentUUID, m.Category, m.NormalBalance, m.Closed, m.Extra,
		m.Version, m.UpdatedAt, prevVersion,
	)
}

// RewriteAccountCodes renames descendants in one round trip, advancing
// their versions so tokens issued before the move go stale.
func (r *PgxAccountRepository) RewriteAccountCodes(ctx context.Context, accounts []domain.Account) error {
	if len(accounts) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, a := range accounts {
		batch.Queue(`
			UPDATE ledger_accounts SET code = $2, version = $3, updated_at = $4
			WHERE uuid = $1 AND version = $5`,
			a.UUID, a.Code, a.Version, a.UpdatedAt, a.Version-1)
	}
	results := r.db.SendBatch(ctx, batch)
	for _, a := range accounts {
		tag, err := results.Exec()
		if err != nil {
			_ = results.Close()
			return mapWriteError(err, "account "+a.Code)
		}
		if tag.RowsAffected() == 0 {
			_ = results.Close()
			return fmt.Errorf("%w: account %s", apperrors.ErrRevisionMismatch, a.Code)
		}
	}
	if err := results.Close(); err != nil {
		return mapWriteError(err, "account codes")
	}
	return nil
}

// DeleteAccount removes the account and its names. Sub-accounts and
// postings block the delete through their foreign keys.
func (r *PgxAccountRepository) DeleteAccount(ctx context.Context, uuid string, version int64) error {
	if err := r.execVersioned(ctx, "account "+uuid,
		`DELETE FROM ledger_accounts WHERE uuid = $1 AND version = $2`, uuid, version); err != nil {
		return err
	}
	if _, err := r.exec(ctx, `DELETE FROM ledger_names WHERE owner_uuid = $1`, uuid); err != nil {
		return fmt.Errorf("failed to delete names of account %s: %w", uuid, err)
	}
	return nil
}
