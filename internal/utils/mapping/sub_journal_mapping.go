package mapping

import (
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/models"
)

// ToModelSubJournal converts a domain SubJournal to a model SubJournal
func ToModelSubJournal(d domain.SubJournal) models.SubJournal {
	return models.SubJournal{
		UUID:        d.UUID,
		Code:        d.Code,
		Extra:       d.Extra,
		AuditFields: ToModelAuditFields(d.Revisioned),
	}
}

// ToDomainSubJournal converts a model SubJournal to a domain SubJournal
func ToDomainSubJournal(m models.SubJournal) domain.SubJournal {
	return domain.SubJournal{
		UUID:       m.UUID,
		Code:       m.Code,
		Extra:      m.Extra,
		Revisioned: ToDomainRevisioned(m.AuditFields),
	}
}

// ToDomainSubJournalSlice converts a slice of model SubJournals
func ToDomainSubJournalSlice(ms []models.SubJournal) []domain.SubJournal {
	ds := make([]domain.SubJournal, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSubJournal(m)
	}
	return ds
}
