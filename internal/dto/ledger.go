package dto

import (
	"time"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
)

// CreateLedgerRequest bootstraps the ledger. Template accounts are created
// before Accounts; when Domains is empty a default domain named with Names
// is created in the first currency.
type CreateLedgerRequest struct {
	Template   string                 `json:"template"`
	Language   string                 `json:"language" binding:"omitempty,langtag"`
	Rules      *domain.Rules          `json:"rules"`
	Names      []NameRequest          `json:"names" binding:"omitempty,dive"`
	Currencies []AddCurrencyRequest   `json:"currencies" binding:"required,min=1,dive"`
	Domains    []AddDomainRequest     `json:"domains" binding:"omitempty,dive"`
	Accounts   []AddAccountRequest    `json:"accounts" binding:"omitempty,dive"`
	Journals   []AddSubJournalRequest `json:"journals" binding:"omitempty,dive"`
}

// LedgerResponse summarizes the ledger root.
type LedgerResponse struct {
	UUID          string             `json:"uuid"`
	Template      string             `json:"template,omitempty"`
	Language      string             `json:"language"`
	DefaultDomain string             `json:"defaultDomain"`
	Rules         domain.Rules       `json:"rules"`
	Currencies    []CurrencyResponse `json:"currencies"`
	Revision      string             `json:"revision"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// LedgerEnvelope wraps the ledger summary.
type LedgerEnvelope struct {
	Ledger LedgerResponse `json:"ledger"`
}

// ToLedgerResponse converts the ledger and its currencies to DTO.
func ToLedgerResponse(l *domain.Ledger, currencies []domain.Currency) LedgerResponse {
	res := LedgerResponse{
		UUID:          l.UUID,
		Template:      l.Template,
		Language:      l.Rules.Language.Default,
		DefaultDomain: l.Rules.Domain.Default,
		Rules:         l.Rules,
		Currencies:    make([]CurrencyResponse, len(currencies)),
		Revision:      l.Revision,
		CreatedAt:     l.CreatedAt,
		UpdatedAt:     l.UpdatedAt,
	}
	for i := range currencies {
		res.Currencies[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
