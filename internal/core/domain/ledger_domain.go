package domain

// LedgerDomain is an independent book of accounts sharing the ledger's chart.
type LedgerDomain struct {
	UUID      string `json:"uuid"`
	Code      string `json:"code"`     // Uppercased
	Currency  string `json:"currency"` // FK -> ledger currencies
	Extra     string `json:"extra,omitempty"`
	IsDefault bool   `json:"isDefault"` // Resolved from the ledger's default pointer
	Names     []Name `json:"names"`
	Revisioned
}
