package mapping

import (
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/models"
)

// ToModelDomain converts a domain LedgerDomain to a model Domain
func ToModelDomain(d domain.LedgerDomain) models.Domain {
	return models.Domain{
		UUID:        d.UUID,
		Code:        d.Code,
		Currency:    d.Currency,
		Extra:       d.Extra,
		AuditFields: ToModelAuditFields(d.Revisioned),
	}
}

// ToDomainLedgerDomain converts a model Domain to a domain LedgerDomain
func ToDomainLedgerDomain(m models.Domain) domain.LedgerDomain {
	return domain.LedgerDomain{
		UUID:       m.UUID,
		Code:       m.Code,
		Currency:   m.Currency,
		Extra:      m.Extra,
		Revisioned: ToDomainRevisioned(m.AuditFields),
	}
}

// ToDomainLedgerDomainSlice converts a slice of model Domains
func ToDomainLedgerDomainSlice(ms []models.Domain) []domain.LedgerDomain {
	ds := make([]domain.LedgerDomain, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLedgerDomain(m)
	}
	return ds
}
