package domain

// Currency is a currency the ledger accepts.
type Currency struct {
	Code     string `json:"code"`     // ISO 4217, e.g. "CAD"
	Decimals int    `json:"decimals"` // Minor unit digits
	Revisioned
}
