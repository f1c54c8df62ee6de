package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_engine/internal/models"
	"github.com/SscSPs/ledger_engine/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

type PgxLedgerRepository struct {
	BaseRepository
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const (
	selectLedgerQuery = `
		SELECT l.uuid, l.template, l.default_domain_uuid, d.code, l.rules, l.version, l.created_at, l.updated_at
		FROM ledger l
		LEFT JOIN ledger_domains d ON d.uuid = l.default_domain_uuid`

	insertLedgerQuery = `
		INSERT INTO ledger (uuid, template, default_domain_uuid, rules, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	updateLedgerQuery = `
		UPDATE ledger
		SET template = $2, default_domain_uuid = $3, rules = $4, version = $5, updated_at = $6
		WHERE uuid = $1 AND version = $7`
)

func (r *PgxLedgerRepository) findLedger(ctx context.Context, query string) (*domain.Ledger, error) {
	var m models.Ledger
	err := r.queryRow(ctx, query).Scan(
		&m.UUID,
		&m.Template,
		&m.DefaultDomainUUID,
		&m.DefaultDomainCode,
		&m.Rules,
		&m.Version,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoLedger
		}
		return nil, fmt.Errorf("failed to find ledger: %w", err)
	}
	ledger, err := mapping.ToDomainLedger(m)
	if err != nil {
		return nil, err
	}
	return &ledger, nil
}

// FindLedger retrieves the ledger row.
func (r *PgxLedgerRepository) FindLedger(ctx context.Context) (*domain.Ledger, error) {
	return r.findLedger(ctx, selectLedgerQuery)
}

// FindLedgerForUpdate retrieves and row-locks the ledger. Mutations that
// touch the default domain pointer serialize on this lock.
func (r *PgxLedgerRepository) FindLedgerForUpdate(ctx context.Context) (*domain.Ledger, error) {
	return r.findLedger(ctx, selectLedgerQuery+" FOR UPDATE OF l")
}

// SaveLedger inserts the singleton row. A second ledger violates the
// singleton constraint.
func (r *PgxLedgerRepository) SaveLedger(ctx context.Context, ledger domain.Ledger) error {
	m, err := mapping.ToModelLedger(ledger)
	if err != nil {
		return err
	}
	_, err = r.exec(ctx, insertLedgerQuery,
		m.UUID,
		m.Template,
		m.DefaultDomainUUID,
		m.Rules,
		m.Version,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return mapWriteError(err, "ledger")
	}
	return nil
}

// UpdateLedger stores ledger if the stored version is still prevVersion.
func (r *PgxLedgerRepository) UpdateLedger(ctx context.Context, ledger domain.Ledger, prevVersion int64) error {
	m, err := mapping.ToModelLedger(ledger)
	if err != nil {
		return err
	}
	return r.execVersioned(ctx, "ledger", updateLedgerQuery,
		m.UUID,
		m.Template,
		m.DefaultDomainUUID,
		m.Rules,
		m.Version,
		m.UpdatedAt,
		prevVersion,
	)
}
