package mapping

import (
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/models"
)

// ToModelName converts a domain NameRecord to a model Name
func ToModelName(d domain.NameRecord) models.Name {
	return models.Name{
		OwnerUUID:  d.OwnerUUID,
		OwnerKind:  string(d.OwnerKind),
		Scope:      d.Scope,
		Language:   d.Language,
		Name:       d.Name,
		Normalized: d.Normalized,
	}
}

// ToDomainName converts a model Name to a domain Name
func ToDomainName(m models.Name) domain.Name {
	return domain.Name{Language: m.Language, Name: m.Name}
}
