package models

// Domain is a row of ledger_domains.
type Domain struct {
	UUID     string `db:"uuid"`
	Code     string `db:"code"`
	Currency string `db:"currency"`
	Extra    string `db:"extra"`
	AuditFields
}
