package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error codes the repositories translate.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// dbtx is satisfied by both the pool and a transaction, so every repository
// runs unchanged inside or outside InTx.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults
}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	db dbtx
}

// queryRow is a helper method to execute a query that returns a single row
func (r *BaseRepository) queryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return r.db.QueryRow(ctx, sql, args...)
}

// query is a helper method to execute a query that returns multiple rows
func (r *BaseRepository) query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return r.db.Query(ctx, sql, args...)
}

// exec is a helper method to execute a query that doesn't return rows
func (r *BaseRepository) exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	return r.db.Exec(ctx, sql, args...)
}

// execVersioned runs a conditional update or delete. No affected row means
// the stored version moved on.
func (r *BaseRepository) execVersioned(ctx context.Context, what string, sql string, args ...any) error {
	tag, err := r.exec(ctx, sql, args...)
	if err != nil {
		return mapWriteError(err, what)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", apperrors.ErrRevisionMismatch, what)
	}
	return nil
}

// constraintErrors maps named constraints to the taxonomy.
var constraintErrors = map[string]error{
	"ledger_singleton_key":            apperrors.ErrLedgerExists,
	"ledger_currencies_pkey":          apperrors.ErrDuplicateCode,
	"ledger_domains_code_key":         apperrors.ErrDuplicateCode,
	"ledger_accounts_code_key":        apperrors.ErrDuplicateCode,
	"ledger_sub_journals_code_key":    apperrors.ErrDuplicateCode,
	"ledger_names_scope_key":          apperrors.ErrDuplicateName,
	"ledger_names_owner_language_key": apperrors.ErrValidation,
}

// mapWriteError translates constraint violations into domain errors.
func mapWriteError(err error, what string) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("failed to write %s: %w", what, err)
	}
	switch pgErr.Code {
	case pgUniqueViolation:
		if target, ok := constraintErrors[pgErr.ConstraintName]; ok {
			return fmt.Errorf("%w: %s", target, what)
		}
		return fmt.Errorf("%w: %s", apperrors.ErrDuplicateCode, what)
	case pgForeignKeyViolation:
		// the referencing side failed, so the referenced row is missing
		if strings.HasPrefix(pgErr.Message, "insert or update") {
			if pgErr.ConstraintName == "ledger_accounts_parent_fkey" {
				return fmt.Errorf("%w: %s", apperrors.ErrOrphanAccount, what)
			}
			return fmt.Errorf("%w: %s references a missing row", apperrors.ErrValidation, what)
		}
		return fmt.Errorf("%w: %s", apperrors.ErrHasDependents, what)
	}
	return fmt.Errorf("failed to write %s: %w", what, err)
}

// notFound converts pgx.ErrNoRows into apperrors.ErrNotFound.
func notFound(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%w: %s", apperrors.ErrNotFound, what)
	}
	return fmt.Errorf("failed to find %s: %w", what, err)
}

// whereBuilder accumulates AND-ed predicates with numbered placeholders.
type whereBuilder struct {
	clauses []string
	args    []any
}

// arg binds v and returns its placeholder.
func (w *whereBuilder) arg(v any) string {
	w.args = append(w.args, v)
	return fmt.Sprintf("$%d", len(w.args))
}

func (w *whereBuilder) where(clause string) {
	w.clauses = append(w.clauses, clause)
}

// codeFilter adds the shared code predicates and the keyset cursor. Codes
// compare bytewise so ordering matches the cursor.
func (w *whereBuilder) codeFilter(column string, f portsrepo.CodeFilter, page portsrepo.PageQuery) {
	if len(f.Codes) > 0 {
		w.where(column + " = ANY(" + w.arg(f.Codes) + ")")
	}
	if f.RangeFrom != "" {
		w.where(column + ` COLLATE "C" >= ` + w.arg(f.RangeFrom))
	}
	if f.RangeTo != "" {
		w.where(column + ` COLLATE "C" <= ` + w.arg(f.RangeTo))
	}
	if page.After != "" {
		w.where(column + ` COLLATE "C" > ` + w.arg(page.After))
	}
}

// sql renders the WHERE clause, ordering and limit.
func (w *whereBuilder) sql(orderColumn string, page portsrepo.PageQuery) string {
	var b strings.Builder
	if len(w.clauses) > 0 {
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(w.clauses, " AND "))
	}
	b.WriteString(" ORDER BY " + orderColumn + ` COLLATE "C"`)
	if page.Limit > 0 {
		b.WriteString(" LIMIT " + w.arg(page.Limit))
	}
	return b.String()
}
