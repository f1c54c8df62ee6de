package models

import "time"

// AuditFields holds the bookkeeping columns every mutable ledger table carries.
type AuditFields struct {
	Version   int64     `db:"version"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}
