package dto

import (
	"time"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
)

// AddAccountRequest defines the data needed to create a new account.
type AddAccountRequest struct {
	Code          string        `json:"code" binding:"required,max=128"`
	Parent        *ParentRef    `json:"parent"` // Optional, must match the code's structural parent
	Names         []NameRequest `json:"names" binding:"required,min=1,dive"`
	Category      bool          `json:"category"`
	NormalBalance string        `json:"normalBalance" binding:"omitempty,oneof=DEBIT CREDIT debit credit"` // Inherited from the parent when omitted
	Closed        bool          `json:"closed"`
	Extra         string        `json:"extra"`
}

// GetAccountRequest identifies the account to fetch.
type GetAccountRequest struct {
	Code string `json:"code" binding:"required"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Code          string        `json:"code" binding:"required"`
	Revision      string        `json:"revision"`
	ToCode        string        `json:"toCode"`
	Parent        *ParentRef    `json:"parent"` // Moves the account, keeping its last segment unless toCode is set
	Names         []NameRequest `json:"names" binding:"omitempty,dive"`
	Category      *bool         `json:"category"`
	NormalBalance *string       `json:"normalBalance" binding:"omitempty,oneof=DEBIT CREDIT debit credit"`
	Closed        *bool         `json:"closed"`
	Extra         *string       `json:"extra"`
}

// DeleteAccountRequest identifies the account to delete.
type DeleteAccountRequest struct {
	Code     string `json:"code" binding:"required"`
	Revision string `json:"revision"`
}

// NameFilter matches names containing Text in Language.
type NameFilter struct {
	Language string `json:"language"`
	Text     string `json:"text" binding:"required"`
}

// AccountQueryRequest lists accounts in code order. Filters are conjunctive.
type AccountQueryRequest struct {
	PageRequest
	Codes    []string    `json:"codes"`
	Range    *CodeRange  `json:"range"`
	Parent   *ParentRef  `json:"parent"`
	Category *bool       `json:"category"`
	Closed   *bool       `json:"closed"`
	Name     *NameFilter `json:"name"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	UUID          string         `json:"uuid"`
	Code          string         `json:"code"`
	ParentCode    string         `json:"parentCode,omitempty"`
	Category      bool           `json:"category"`
	NormalBalance string         `json:"normalBalance"`
	Closed        bool           `json:"closed"`
	Extra         string         `json:"extra,omitempty"`
	Names         []NameResponse `json:"names"`
	Revision      string         `json:"revision"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
}

// AccountEnvelope wraps a single account.
type AccountEnvelope struct {
	Account AccountResponse `json:"account"`
}

// AccountQueryResponse wraps one page of accounts.
type AccountQueryResponse struct {
	Accounts  []AccountResponse `json:"accounts"`
	More      bool              `json:"more"`
	NextToken string            `json:"nextToken,omitempty"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		UUID:          acc.UUID,
		Code:          acc.Code,
		ParentCode:    acc.ParentCode,
		Category:      acc.Category,
		NormalBalance: string(acc.NormalBalance),
		Closed:        acc.Closed,
		Extra:         acc.Extra,
		Names:         ToNameResponses(acc.Names),
		Revision:      acc.Revision,
		CreatedAt:     acc.CreatedAt,
		UpdatedAt:     acc.UpdatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
