package services

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/dto"
)

// DomainReaderSvc defines read operations for ledger domains
type DomainReaderSvc interface {
	GetDomain(ctx context.Context, req dto.GetDomainRequest) (*domain.LedgerDomain, error)
	QueryDomains(ctx context.Context, req dto.DomainQueryRequest) (*domain.Page[domain.LedgerDomain], error)
}

// DomainWriterSvc defines write operations for ledger domains
type DomainWriterSvc interface {
	AddDomain(ctx context.Context, req dto.AddDomainRequest) (*domain.LedgerDomain, error)

	// UpdateDomain edits a domain. Renaming the default domain keeps it default.
	UpdateDomain(ctx context.Context, req dto.UpdateDomainRequest) (*domain.LedgerDomain, error)

	DeleteDomain(ctx context.Context, req dto.DeleteDomainRequest) error
}

// DomainSvcFacade combines all domain-related service interfaces
type DomainSvcFacade interface {
	DomainReaderSvc
	DomainWriterSvc
}
