package repositories

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
)

// AccountFilter restricts an account query. All set fields must match.
type AccountFilter struct {
	CodeFilter
	ParentCode   *string // Direct children; "" selects top level accounts
	Category     *bool
	Closed       *bool
	NameLanguage string
	NameContains string // Normalized text
}

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByCode retrieves an account by its normalized code.
	FindAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// AccountCodeExists reports whether code is in use.
	AccountCodeExists(ctx context.Context, code string) (bool, error)

	// QueryAccounts lists accounts in ascending code order.
	QueryAccounts(ctx context.Context, filter AccountFilter, page PageQuery) ([]domain.Account, error)

	// HasChildAccounts reports whether any account has uuid as its parent.
	HasChildAccounts(ctx context.Context, uuid string) (bool, error)
}

// AccountWriter defines write operations for account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateAccount stores account if its stored version is still prevVersion.
	UpdateAccount(ctx context.Context, account domain.Account, prevVersion int64) error

	// DeleteAccount removes the account if its stored version is still version.
	DeleteAccount(ctx context.Context, uuid string, version int64) error
}

// AccountLocker defines locking reads used by mutations
type AccountLocker interface {
	// FindAccountByCodeForUpdate retrieves and row-locks an account.
	FindAccountByCodeForUpdate(ctx context.Context, code string) (*domain.Account, error)

	// FindDescendantsForUpdate retrieves and row-locks every account below
	// code, in code order.
	FindDescendantsForUpdate(ctx context.Context, code, delimiter string) ([]domain.Account, error)

	// RewriteAccountCodes stores the new code and revision of each moved
	// account. The stored version of each must be one below the given one.
	RewriteAccountCodes(ctx context.Context, accounts []domain.Account) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
	AccountLocker
}
