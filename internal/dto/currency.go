package dto

import (
	"time"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
)

// AddCurrencyRequest defines data for adding a ledger currency.
type AddCurrencyRequest struct {
	Code     string `json:"code" binding:"required,iso4217"`
	Decimals int    `json:"decimals" binding:"min=0,max=8"`
}

// GetCurrencyRequest identifies the currency to fetch.
type GetCurrencyRequest struct {
	Code string `json:"code" binding:"required"`
}

// UpdateCurrencyRequest changes a currency's precision.
type UpdateCurrencyRequest struct {
	Code     string `json:"code" binding:"required"`
	Revision string `json:"revision"`
	Decimals *int   `json:"decimals" binding:"omitempty,min=0,max=8"`
}

// DeleteCurrencyRequest identifies the currency to delete.
type DeleteCurrencyRequest struct {
	Code     string `json:"code" binding:"required"`
	Revision string `json:"revision"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	Code      string    `json:"code"`
	Decimals  int       `json:"decimals"`
	Revision  string    `json:"revision"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CurrencyEnvelope wraps a single currency.
type CurrencyEnvelope struct {
	Currency CurrencyResponse `json:"currency"`
}

// ToCurrencyResponse converts a domain.Currency to DTO.
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		Code:      c.Code,
		Decimals:  c.Decimals,
		Revision:  c.Revision,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
