package repositories

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
)

// DomainReader defines read operations for ledger domains
type DomainReader interface {
	// FindDomainByCode retrieves a domain by its normalized code.
	FindDomainByCode(ctx context.Context, code string) (*domain.LedgerDomain, error)

	// FindDomainByUUID retrieves a domain by id.
	FindDomainByUUID(ctx context.Context, uuid string) (*domain.LedgerDomain, error)

	// QueryDomains lists domains in ascending code order.
	QueryDomains(ctx context.Context, filter CodeFilter, page PageQuery) ([]domain.LedgerDomain, error)

	// CountDomainsByCurrency counts the domains keeping books in currency.
	CountDomainsByCurrency(ctx context.Context, currency string) (int, error)
}

// DomainWriter defines write operations for ledger domains
type DomainWriter interface {
	SaveDomain(ctx context.Context, d domain.LedgerDomain) error
	UpdateDomain(ctx context.Context, d domain.LedgerDomain, prevVersion int64) error
	DeleteDomain(ctx context.Context, uuid string, version int64) error
}

// DomainRepositoryFacade combines all domain-related repository interfaces
type DomainRepositoryFacade interface {
	DomainReader
	DomainWriter

	// FindDomainByCodeForUpdate retrieves and row-locks a domain.
	FindDomainByCodeForUpdate(ctx context.Context, code string) (*domain.LedgerDomain, error)
}
