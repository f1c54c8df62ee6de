package mapping

import (
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/models"
)

// ToModelAuditFields converts domain revision bookkeeping to model AuditFields
func ToModelAuditFields(d domain.Revisioned) models.AuditFields {
	return models.AuditFields{
		Version:   d.Version,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ToDomainRevisioned converts model AuditFields to domain revision bookkeeping.
// The revision token is attached by the services.
func ToDomainRevisioned(m models.AuditFields) domain.Revisioned {
	return domain.Revisioned{
		Version: m.Version,
		AuditFields: domain.AuditFields{
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		},
	}
}
