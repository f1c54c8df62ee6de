package domain

// SubJournal is a code for categorizing journal entries, independent of the account tree.
type SubJournal struct {
	UUID  string `json:"uuid"`
	Code  string `json:"code"`
	Extra string `json:"extra,omitempty"`
	Names []Name `json:"names"`
	Revisioned
}
