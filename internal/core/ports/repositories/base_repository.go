package repositories

import (
	"context"
)

// TxFunc is the unit of work run by Store.InTx. Every repository in repos
// is bound to the same transaction.
type TxFunc func(repos RepositoryProvider) error

// Store hands out repositories and runs units of work atomically.
type Store interface {
	// Repositories returns repositories outside any transaction, for reads.
	Repositories() RepositoryProvider

	// InTx runs fn in one transaction. It commits when fn returns nil and
	// rolls back otherwise, returning fn's error.
	InTx(ctx context.Context, fn TxFunc) error

	// Close releases the store's resources.
	Close()
}

// CodeFilter restricts a code-ordered listing. Empty fields do not filter.
type CodeFilter struct {
	Codes     []string
	RangeFrom string
	RangeTo   string
}

// PageQuery selects the rows strictly after After, at most Limit of them.
type PageQuery struct {
	After string
	Limit int
}
