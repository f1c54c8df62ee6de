package services

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/dto"
)

// LedgerSvcFacade manages the ledger root.
type LedgerSvcFacade interface {
	// CreateLedger builds the ledger, its currencies, domains, accounts and
	// sub-journals in one transaction.
	CreateLedger(ctx context.Context, req dto.CreateLedgerRequest) (*domain.Ledger, error)

	// GetLedger returns the ledger with its currencies.
	GetLedger(ctx context.Context) (*domain.Ledger, []domain.Currency, error)
}

// RulesProvider supplies the active rule set to the entity services.
type RulesProvider interface {
	// Rules returns the cached rules, loading them from the ledger on a miss.
	Rules(ctx context.Context) (domain.Rules, error)

	// Invalidate drops cached rules after a committed change.
	Invalidate(ctx context.Context) error

	// Reset reloads rules from the store. Intended for test harnesses.
	Reset(ctx context.Context) error
}
