package dto

import (
	"time"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
)

// --- Domain DTOs ---

// AddDomainRequest defines data for creating a new ledger domain.
type AddDomainRequest struct {
	Code     string        `json:"code" binding:"required,ledgercode"`
	Names    []NameRequest `json:"names" binding:"required,min=1,dive"`
	Currency string        `json:"currency" binding:"required,iso4217"`
	Default  bool          `json:"default"` // Make this the ledger's default domain
	Extra    string        `json:"extra"`
}

// GetDomainRequest identifies the domain to fetch.
type GetDomainRequest struct {
	Code string `json:"code" binding:"required"`
}

// UpdateDomainRequest defines the changes allowed on a domain.
type UpdateDomainRequest struct {
	Code     string        `json:"code" binding:"required"`
	Revision string        `json:"revision"`
	ToCode   string        `json:"toCode" binding:"omitempty,ledgercode"`
	Names    []NameRequest `json:"names" binding:"omitempty,dive"`
	Currency *string       `json:"currency" binding:"omitempty,iso4217"`
	Default  bool          `json:"default"`
	Extra    *string       `json:"extra"`
}

// DeleteDomainRequest identifies the domain to delete. Deleting the default
// domain requires naming its replacement in NewDefault.
type DeleteDomainRequest struct {
	Code       string `json:"code" binding:"required"`
	Revision   string `json:"revision"`
	NewDefault string `json:"newDefault"`
}

// DomainQueryRequest lists domains in code order.
type DomainQueryRequest struct {
	PageRequest
	Codes []string   `json:"codes"`
	Range *CodeRange `json:"range"`
}

// DomainResponse defines data returned for a domain.
type DomainResponse struct {
	UUID      string         `json:"uuid"`
	Code      string         `json:"code"`
	Currency  string         `json:"currency"`
	Default   bool           `json:"default"`
	Extra     string         `json:"extra,omitempty"`
	Names     []NameResponse `json:"names"`
	Revision  string         `json:"revision"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// DomainEnvelope wraps a single domain.
type DomainEnvelope struct {
	Domain DomainResponse `json:"domain"`
}

// DomainQueryResponse wraps one page of domains.
type DomainQueryResponse struct {
	Domains   []DomainResponse `json:"domains"`
	More      bool             `json:"more"`
	NextToken string           `json:"nextToken,omitempty"`
}

// ToDomainResponse converts domain.LedgerDomain to DTO.
func ToDomainResponse(d *domain.LedgerDomain) DomainResponse {
	return DomainResponse{
		UUID:      d.UUID,
		Code:      d.Code,
		Currency:  d.Currency,
		Default:   d.IsDefault,
		Extra:     d.Extra,
		Names:     ToNameResponses(d.Names),
		Revision:  d.Revision,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// ToListDomainResponse converts a slice of domains to DTOs.
func ToListDomainResponse(ds []domain.LedgerDomain) []DomainResponse {
	res := make([]DomainResponse, len(ds))
	for i := range ds {
		res[i] = ToDomainResponse(&ds[i])
	}
	return res
}
