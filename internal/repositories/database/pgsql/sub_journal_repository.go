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

type PgxSubJournalRepository struct {
	BaseRepository
}

var _ portsrepo.SubJournalRepositoryFacade = (*PgxSubJournalRepository)(nil)

const selectSubJournalQuery = `SELECT uuid, code, extra, version, created_at, updated_at FROM ledger_sub_journals`

func scanSubJournal(row pgx.Row) (models.SubJournal, error) {
	var m models.SubJournal
	err := row.Scan(&m.UUID, &m.Code, &m.Extra, &m.Version, &m.CreatedAt, &m.UpdatedAt)
	return m, err
}

func (r *PgxSubJournalRepository) findSubJournal(ctx context.Context, code string, lock bool) (*domain.SubJournal, error) {
	query := selectSubJournalQuery + ` WHERE code = $1`
	if lock {
		query += " FOR UPDATE"
	}
	m, err := scanSubJournal(r.queryRow(ctx, query, code))
	if err != nil {
		return nil, notFound(err, "journal "+code)
	}
	j := mapping.ToDomainSubJournal(m)
	return &j, nil
}

func (r *PgxSubJournalRepository) FindSubJournalByCode(ctx context.Context, code string) (*domain.SubJournal, error) {
	return r.findSubJournal(ctx, code, false)
}

func (r *PgxSubJournalRepository) FindSubJournalByCodeForUpdate(ctx context.Context, code string) (*domain.SubJournal, error) {
	return r.findSubJournal(ctx, code, true)
}

func (r *PgxSubJournalRepository) QuerySubJournals(ctx context.Context, filter portsrepo.CodeFilter, page portsrepo.PageQuery) ([]domain.SubJournal, error) {
	var w whereBuilder
	w.codeFilter("code", filter, page)
	rows, err := r.query(ctx, selectSubJournalQuery+w.sql("code", page), w.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query journals: %w", err)
	}
	defer rows.Close()

	modelJournals, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.SubJournal, error) {
		return scanSubJournal(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan journals: %w", err)
	}
	return mapping.ToDomainSubJournalSlice(modelJournals), nil
}

func (r *PgxSubJournalRepository) SaveSubJournal(ctx context.Context, j domain.SubJournal) error {
	m := mapping.ToModelSubJournal(j)
	_, err := r.exec(ctx, `
		INSERT INTO ledger_sub_journals (uuid, code, extra, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		m.UUID, m.Code, m.Extra, m.Version, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "journal "+m.Code)
	}
	return nil
}

func (r *PgxSubJournalRepository) UpdateSubJournal(ctx context.Context, j domain.SubJournal, prevVersion int64) error {
	m := mapping.ToModelSubJournal(j)
	return r.execVersioned(ctx, "journal "+m.Code, `
		UPDATE ledger_sub_journals SET code = $2, extra = $3, version = $4, updated_at = $5
		WHERE uuid = $1 AND version = $6`,
		m.UUID, m.Code, m.Extra, m.Version, m.UpdatedAt, prevVersion,
	)
}

func (r *PgxSubJournalRepository) DeleteSubJournal(ctx context.Context, uuid string, version int64) error {
	if err := r.execVersioned(ctx, "journal "+uuid,
		`DELETE FROM ledger_sub_journals WHERE uuid = $1 AND version = $2`, uuid, version); err != nil {
		return err
	}
	if _, err := r.exec(ctx, `DELETE FROM ledger_names WHERE owner_uuid = $1`, uuid); err != nil {
		return fmt.Errorf("failed to delete names of journal %s: %w", uuid, err)
	}
	return nil
}
