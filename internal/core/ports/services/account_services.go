package services

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccount retrieves an account by code, case-insensitively.
	GetAccount(ctx context.Context, req dto.GetAccountRequest) (*domain.Account, error)

	// QueryAccounts retrieves one page of accounts in code order.
	QueryAccounts(ctx context.Context, req dto.AccountQueryRequest) (*domain.Page[domain.Account], error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	AddAccount(ctx context.Context, req dto.AddAccountRequest) (*domain.Account, error)

	// UpdateAccount renames, moves or edits an account. Descendant codes are
	// rewritten in the same transaction.
	UpdateAccount(ctx context.Context, req dto.UpdateAccountRequest) (*domain.Account, error)

	// DeleteAccount removes an account with no children and no journal references.
	DeleteAccount(ctx context.Context, req dto.DeleteAccountRequest) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
