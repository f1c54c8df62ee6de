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

type PgxNameRepository struct {
	BaseRepository
}

var _ portsrepo.NameRepositoryFacade = (*PgxNameRepository)(nil)

const selectNameQuery = `SELECT owner_uuid, owner_kind, scope, language, name, normalized FROM ledger_names`

func scanName(row pgx.CollectableRow) (models.Name, error) {
	var m models.Name
	err := row.Scan(&m.OwnerUUID, &m.OwnerKind, &m.Scope, &m.Language, &m.Name, &m.Normalized)
	return m, err
}

func (r *PgxNameRepository) collect(ctx context.Context, query string, args ...any) ([]models.Name, error) {
	rows, err := r.query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query names: %w", err)
	}
	defer rows.Close()

	names, err := pgx.CollectRows(rows, scanName)
	if err != nil {
		return nil, fmt.Errorf("failed to scan names: %w", err)
	}
	return names, nil
}

// FindNames returns an owner's names ordered by language.
func (r *PgxNameRepository) FindNames(ctx context.Context, ownerUUID string) ([]domain.Name, error) {
	rows, err := r.collect(ctx, selectNameQuery+` WHERE owner_uuid = $1 ORDER BY language COLLATE "C"`, ownerUUID)
	if err != nil {
		return nil, err
	}
	names := make([]domain.Name, len(rows))
	for i, m := range rows {
		names[i] = mapping.ToDomainName(m)
	}
	return names, nil
}

// FindNamesByOwners loads the names of a page of owners in one query. Every
// requested owner has an entry, empty when it has no names.
func (r *PgxNameRepository) FindNamesByOwners(ctx context.Context, ownerUUIDs []string) (map[string][]domain.Name, error) {
	out := make(map[string][]domain.Name, len(ownerUUIDs))
	if len(ownerUUIDs) == 0 {
		return out, nil
	}
	for _, owner := range ownerUUIDs {
		out[owner] = []domain.Name{}
	}
	rows, err := r.collect(ctx,
		selectNameQuery+` WHERE owner_uuid = ANY($1::uuid[]) ORDER BY owner_uuid, language COLLATE "C"`, ownerUUIDs)
	if err != nil {
		return nil, err
	}
	for _, m := range rows {
		out[m.OwnerUUID] = append(out[m.OwnerUUID], mapping.ToDomainName(m))
	}
	return out, nil
}

func (r *PgxNameRepository) NameTaken(ctx context.Context, kind domain.OwnerKind, scope, language, normalized, excludeOwner string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM ledger_names
			WHERE owner_kind = $1 AND scope = $2 AND lower(language) = lower($3) AND normalized = $4`
	args := []any{string(kind), scope, language, normalized}
	if excludeOwner != "" {
		query += ` AND owner_uuid <> $5`
		args = append(args, excludeOwner)
	}
	query += `)`

	var taken bool
	if err := r.queryRow(ctx, query, args...).Scan(&taken); err != nil {
		return false, fmt.Errorf("failed to check name %q: %w", normalized, err)
	}
	return taken, nil
}

// ReplaceNames swaps the owner's name set. The unique indexes reject a name
// another owner in the scope already holds.
func (r *PgxNameRepository) ReplaceNames(ctx context.Context, ownerUUID string, records []domain.NameRecord) error {
	batch := &pgx.Batch{}
	batch.Queue(`DELETE FROM ledger_names WHERE owner_uuid = $1`, ownerUUID)
	for _, rec := range records {
		m := mapping.ToModelName(rec)
		batch.Queue(`
			INSERT INTO ledger_names (owner_uuid, owner_kind, scope, language, name, normalized)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			ownerUUID, m.OwnerKind, m.Scope, m.Language, m.Name, m.Normalized,
		)
	}

	results := r.db.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()
			return mapWriteError(err, "names")
		}
	}
	if err := results.Close(); err != nil {
		return mapWriteError(err, "names")
	}
	return nil
}

func (r *PgxNameRepository) DeleteNames(ctx context.Context, ownerUUID string) error {
	if _, err := r.exec(ctx, `DELETE FROM ledger_names WHERE owner_uuid = $1`, ownerUUID); err != nil {
		return fmt.Errorf("failed to delete names of %s: %w", ownerUUID, err)
	}
	return nil
}
