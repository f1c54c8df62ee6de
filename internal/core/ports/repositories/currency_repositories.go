package repositories

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves all ledger currencies in code order.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	SaveCurrency(ctx context.Context, currency domain.Currency) error
	UpdateCurrency(ctx context.Context, currency domain.Currency, prevVersion int64) error
	DeleteCurrency(ctx context.Context, code string, version int64) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
	FindCurrencyByCodeForUpdate(ctx context.Context, code string) (*domain.Currency, error)
}
