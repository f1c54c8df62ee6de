package domain

// ReferenceKind identifies which journal column may reference an entity.
type ReferenceKind string

const (
	RefDomain     ReferenceKind = "domain"
	RefAccount    ReferenceKind = "account"
	RefSubJournal ReferenceKind = "journal"
)
