package models

// Currency is a row of ledger_currencies.
type Currency struct {
	Code     string `db:"code"` // Primary Key (e.g., "CAD")
	Decimals int    `db:"decimals"`
	AuditFields
}
