package domain

// OwnerKind identifies which kind of entity owns a localized name.
type OwnerKind string

const (
	OwnerDomain     OwnerKind = "domain"
	OwnerAccount    OwnerKind = "account"
	OwnerSubJournal OwnerKind = "journal"
)

// LedgerScope is the uniqueness scope shared by all domains and all sub-journals.
const LedgerScope = "ledger"

// RootScope is the uniqueness scope of top level accounts.
const RootScope = "root"

// Name is one language-tagged display name.
type Name struct {
	Language string `json:"language"`
	Name     string `json:"name"`
}

// NameEdit is a single change to a name set. A nil Name removes the language.
type NameEdit struct {
	Language string
	Name     *string
}

// NameRecord is the stored form of a name, including the owner and the
// case-folded text used for duplicate detection.
type NameRecord struct {
	OwnerUUID  string
	OwnerKind  OwnerKind
	Scope      string
	Language   string
	Name       string
	Normalized string
}
