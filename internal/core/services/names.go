package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	"github.com/SscSPs/ledger_engine/internal/utils/localization"
)

// nameOwner identifies the entity a name set belongs to and the scope its
// names must be unique in.
type nameOwner struct {
	uuid  string
	kind  domain.OwnerKind
	scope string
}

// applyNames merges edits into current, rejects names already held by a
// sibling in the owner's scope and stores the result. Nothing is written
// when any check fails.
func applyNames(ctx context.Context, repo portsrepo.NameRepositoryFacade, owner nameOwner, current []domain.Name, edits []domain.NameEdit, defaultLanguage string) ([]domain.Name, error) {
	merged, err := localization.Merge(current, edits, defaultLanguage)
	if err != nil {
		return nil, err
	}

	for _, n := range merged {
		taken, err := repo.NameTaken(ctx, owner.kind, owner.scope, n.Language, localization.NormalizeText(n.Name), owner.uuid)
		if err != nil {
			return nil, fmt.Errorf("failed to check name %q: %w", n.Name, err)
		}
		if taken {
			return nil, fmt.Errorf("%w: %q (%s) is already used by another %s", apperrors.ErrDuplicateName, n.Name, n.Language, owner.kind)
		}
	}

	if err := repo.ReplaceNames(ctx, owner.uuid, localization.Records(owner.uuid, owner.kind, owner.scope, merged)); err != nil {
		return nil, err
	}
	sortNames(merged)
	return merged, nil
}

func sortNames(names []domain.Name) {
	sort.Slice(names, func(i, j int) bool { return names[i].Language < names[j].Language })
}

// attachNames loads the names of several owners in one call.
func attachNames(ctx context.Context, repo portsrepo.NameReader, owners []string, set func(i int, names []domain.Name)) error {
	if len(owners) == 0 {
		return nil
	}
	byOwner, err := repo.FindNamesByOwners(ctx, owners)
	if err != nil {
		return fmt.Errorf("failed to load names: %w", err)
	}
	for i, owner := range owners {
		names := byOwner[owner]
		if names == nil {
			names = []domain.Name{}
		}
		set(i, names)
	}
	return nil
}
