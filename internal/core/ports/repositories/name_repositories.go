package repositories

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
)

// NameReader defines read operations for localized names
type NameReader interface {
	// FindNames returns an owner's names ordered by language.
	FindNames(ctx context.Context, ownerUUID string) ([]domain.Name, error)

	// FindNamesByOwners returns the names of several owners, keyed by owner.
	FindNamesByOwners(ctx context.Context, ownerUUIDs []string) (map[string][]domain.Name, error)

	// NameTaken reports whether an owner other than excludeOwner of the same
	// kind and scope holds normalized text in language.
	NameTaken(ctx context.Context, kind domain.OwnerKind, scope, language, normalized, excludeOwner string) (bool, error)
}

// NameWriter defines write operations for localized names
type NameWriter interface {
	// ReplaceNames swaps an owner's whole name set for records.
	ReplaceNames(ctx context.Context, ownerUUID string, records []domain.NameRecord) error

	// DeleteNames removes every name of an owner.
	DeleteNames(ctx context.Context, ownerUUID string) error
}

// NameRepositoryFacade combines all name-related repository interfaces
type NameRepositoryFacade interface {
	NameReader
	NameWriter
}

// ReferenceChecker reports whether journal entries reference an entity.
type ReferenceChecker interface {
	HasReferences(ctx context.Context, kind domain.ReferenceKind, uuid string) (bool, error)
}
