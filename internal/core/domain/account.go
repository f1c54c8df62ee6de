package domain

// NormalBalance is the side on which an account's balance normally sits.
type NormalBalance string

const (
	Debit  NormalBalance = "DEBIT"
	Credit NormalBalance = "CREDIT"
)

// Valid reports whether b is one of the known balance sides.
func (b NormalBalance) Valid() bool {
	return b == Debit || b == Credit
}

// Account is a node in the ledger's chart of accounts.
type Account struct {
	UUID          string        `json:"uuid"`
	Code          string        `json:"code"`
	ParentUUID    *string       `json:"parentUuid,omitempty"`
	ParentCode    string        `json:"parentCode,omitempty"` // Resolved on read
	Category      bool          `json:"category"`             // Category accounts group children and take no postings
	NormalBalance NormalBalance `json:"normalBalance"`
	Closed        bool          `json:"closed"`
	Extra         string        `json:"extra,omitempty"`
	Names         []Name        `json:"names"`
	Revisioned
}

// NameScope returns the scope sibling accounts share for name uniqueness.
func (a Account) NameScope() string {
	if a.ParentUUID == nil {
		return RootScope
	}
	return *a.ParentUUID
}
