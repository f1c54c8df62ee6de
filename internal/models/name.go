package models

// Name is a row of ledger_names. Normalized holds the case-folded text the
// uniqueness index is built on.
type Name struct {
	OwnerUUID  string `db:"owner_uuid"`
	OwnerKind  string `db:"owner_kind"`
	Scope      string `db:"scope"`
	Language   string `db:"language"`
	Name       string `db:"name"`
	Normalized string `db:"normalized"`
}
