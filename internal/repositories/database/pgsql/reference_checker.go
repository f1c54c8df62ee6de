package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
)

// PgxReferenceChecker looks for postings that use an entity.
type PgxReferenceChecker struct {
	BaseRepository
}

var _ portsrepo.ReferenceChecker = (*PgxReferenceChecker)(nil)

var referenceQueries = map[domain.ReferenceKind]string{
	domain.RefDomain:     `SELECT EXISTS (SELECT 1 FROM ledger_journal_entries WHERE domain_uuid = $1)`,
	domain.RefSubJournal: `SELECT EXISTS (SELECT 1 FROM ledger_journal_entries WHERE sub_journal_uuid = $1)`,
	domain.RefAccount:    `SELECT EXISTS (SELECT 1 FROM ledger_journal_details WHERE account_uuid = $1)`,
}

func (r *PgxReferenceChecker) HasReferences(ctx context.Context, kind domain.ReferenceKind, uuid string) (bool, error) {
	query, ok := referenceQueries[kind]
	if !ok {
		return false, fmt.Errorf("unknown reference kind %q", kind)
	}
	var exists bool
	if err := r.queryRow(ctx, query, uuid).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check %s references: %w", kind, err)
	}
	return exists, nil
}
