package mapping

import (
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		UUID:          d.UUID,
		Code:          d.Code,
		ParentUUID:    d.ParentUUID,
		Category:      d.Category,
		NormalBalance: string(d.NormalBalance),
		Closed:        d.Closed,
		Extra:         d.Extra,
		AuditFields:   ToModelAuditFields(d.Revisioned),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	d := domain.Account{
		UUID:          m.UUID,
		Code:          m.Code,
		ParentUUID:    m.ParentUUID,
		Category:      m.Category,
		NormalBalance: domain.NormalBalance(m.NormalBalance),
		Closed:        m.Closed,
		Extra:         m.Extra,
		Revisioned:    ToDomainRevisioned(m.AuditFields),
	}
	if m.ParentCode != nil {
		d.ParentCode = *m.ParentCode
	}
	return d
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
