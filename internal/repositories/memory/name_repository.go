package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
)

type nameRepository struct {
	*base
}

var _ repositories.NameRepositoryFacade = (*nameRepository)(nil)

func (r *nameRepository) FindNames(ctx context.Context, ownerUUID string) ([]domain.Name, error) {
	return r.st.namesOf(ownerUUID), nil
}

func (r *nameRepository) FindNamesByOwners(ctx context.Context, ownerUUIDs []string) (map[string][]domain.Name, error) {
	out := make(map[string][]domain.Name, len(ownerUUIDs))
	for _, owner := range ownerUUIDs {
		out[owner] = r.st.namesOf(owner)
	}
	return out, nil
}

func (r *nameRepository) NameTaken(ctx context.Context, kind domain.OwnerKind, scope, language, normalized, excludeOwner string) (bool, error) {
	for owner, records := range r.st.names {
		if owner == excludeOwner {
			continue
		}
		for _, rec := range records {
			if rec.OwnerKind == kind && rec.Scope == scope &&
				strings.EqualFold(rec.Language, language) && rec.Normalized == normalized {
				return true, nil
			}
		}
	}
	return false, nil
}

func (r *nameRepository) ReplaceNames(ctx context.Context, ownerUUID string, records []domain.NameRecord) error {
	if err := r.checkWritable(); err != nil {
		return err
	}
	for _, rec := range records {
		taken, err := r.NameTaken(ctx, rec.OwnerKind, rec.Scope, rec.Language, rec.Normalized, ownerUUID)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: %q (%s)", apperrors.ErrDuplicateName, rec.Name, rec.Language)
		}
	}
	r.st.names[ownerUUID] = append([]domain.NameRecord(nil), records...)
	return nil
}

func (r *nameRepository) DeleteNames(ctx context.Context, ownerUUID string) error {
	if err := r.checkWritable(); err != nil {
		return err
	}
	delete(r.st.names, ownerUUID)
	return nil
}
