package models

// SubJournal is a row of ledger_sub_journals.
type SubJournal struct {
	UUID  string `db:"uuid"`
	Code  string `db:"code"`
	Extra string `db:"extra"`
	AuditFields
}
