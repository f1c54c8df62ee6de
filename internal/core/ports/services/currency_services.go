package services

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/dto"
)

// CurrencyReaderSvc defines read operations for ledger currencies
type CurrencyReaderSvc interface {
	GetCurrency(ctx context.Context, req dto.GetCurrencyRequest) (*domain.Currency, error)
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for ledger currencies
type CurrencyWriterSvc interface {
	AddCurrency(ctx context.Context, req dto.AddCurrencyRequest) (*domain.Currency, error)
	UpdateCurrency(ctx context.Context, req dto.UpdateCurrencyRequest) (*domain.Currency, error)

	// DeleteCurrency fails with apperrors.ErrHasDependents while a domain uses the currency.
	DeleteCurrency(ctx context.Context, req dto.DeleteCurrencyRequest) error
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
