package models

// Ledger is the singleton row of the ledger table. Rules is stored as JSONB.
type Ledger struct {
	UUID              string  `db:"uuid"`
	Template          string  `db:"template"`
	DefaultDomainUUID *string `db:"default_domain_uuid"` // Nullable until the first domain exists
	DefaultDomainCode *string `db:"default_domain_code"` // Joined from ledger_domains
	Rules             []byte  `db:"rules"`
	AuditFields
}
