package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/models"
)

// ToModelLedger converts a domain Ledger to a model Ledger
func ToModelLedger(d domain.Ledger) (models.Ledger, error) {
	rules, err := json.Marshal(d.Rules)
	if err != nil {
		return models.Ledger{}, fmt.Errorf("failed to encode ledger rules: %w", err)
	}
	m := models.Ledger{
		UUID:        d.UUID,
		Template:    d.Template,
		Rules:       rules,
		AuditFields: ToModelAuditFields(d.Revisioned),
	}
	if d.DefaultDomainUUID != "" {
		m.DefaultDomainUUID = &d.DefaultDomainUUID
	}
	return m, nil
}

// ToDomainLedger converts a model Ledger to a domain Ledger. The default
// domain code in the rules follows the joined default pointer.
func ToDomainLedger(m models.Ledger) (domain.Ledger, error) {
	d := domain.Ledger{
		UUID:       m.UUID,
		Template:   m.Template,
		Revisioned: ToDomainRevisioned(m.AuditFields),
	}
	if err := json.Unmarshal(m.Rules, &d.Rules); err != nil {
		return domain.Ledger{}, fmt.Errorf("failed to decode ledger rules: %w", err)
	}
	if m.DefaultDomainUUID != nil {
		d.DefaultDomainUUID = *m.DefaultDomainUUID
	}
	if m.DefaultDomainCode != nil {
		d.Rules.Domain.Default = *m.DefaultDomainCode
	}
	return d, nil
}
