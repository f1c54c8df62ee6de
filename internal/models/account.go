package models

// Account is a row of ledger_accounts joined with its parent's code.
type Account struct {
	UUID          string  `db:"uuid"`
	Code          string  `db:"code"`
	ParentUUID    *string `db:"parent_uuid"` // Nullable for top level accounts
	ParentCode    *string `db:"parent_code"`
	Category      bool    `db:"category"`
	NormalBalance string  `db:"normal_balance"`
	Closed        bool    `db:"closed"`
	Extra         string  `db:"extra"`
	AuditFields
}
