package dto

import (
	"time"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
)

// AddSubJournalRequest defines data for creating a sub-journal.
type AddSubJournalRequest struct {
	Code  string        `json:"code" binding:"required,ledgercode"`
	Names []NameRequest `json:"names" binding:"required,min=1,dive"`
	Extra string        `json:"extra"`
}

// GetSubJournalRequest identifies the sub-journal to fetch.
type GetSubJournalRequest struct {
	Code string `json:"code" binding:"required"`
}

// UpdateSubJournalRequest defines the changes allowed on a sub-journal.
type UpdateSubJournalRequest struct {
	Code     string        `json:"code" binding:"required"`
	Revision string        `json:"revision"`
	ToCode   string        `json:"toCode" binding:"omitempty,ledgercode"`
	Names    []NameRequest `json:"names" binding:"omitempty,dive"`
	Extra    *string       `json:"extra"`
}

// DeleteSubJournalRequest identifies the sub-journal to delete.
type DeleteSubJournalRequest struct {
	Code     string `json:"code" binding:"required"`
	Revision string `json:"revision"`
}

// SubJournalQueryRequest lists sub-journals in code order.
type SubJournalQueryRequest struct {
	PageRequest
	Codes []string   `json:"codes"`
	Range *CodeRange `json:"range"`
}

// SubJournalResponse defines data returned for a sub-journal.
type SubJournalResponse struct {
	UUID      string         `json:"uuid"`
	Code      string         `json:"code"`
	Extra     string         `json:"extra,omitempty"`
	Names     []NameResponse `json:"names"`
	Revision  string         `json:"revision"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// SubJournalEnvelope wraps a single sub-journal.
type SubJournalEnvelope struct {
	Journal SubJournalResponse `json:"journal"`
}

// SubJournalQueryResponse wraps one page of sub-journals.
type SubJournalQueryResponse struct {
	Journals  []SubJournalResponse `json:"journals"`
	More      bool                 `json:"more"`
	NextToken string               `json:"nextToken,omitempty"`
}

// ToSubJournalResponse converts a domain.SubJournal to DTO.
func ToSubJournalResponse(j *domain.SubJournal) SubJournalResponse {
	return SubJournalResponse{
		UUID:      j.UUID,
		Code:      j.Code,
		Extra:     j.Extra,
		Names:     ToNameResponses(j.Names),
		Revision:  j.Revision,
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
}

// ToListSubJournalResponse converts sub-journals to DTOs.
func ToListSubJournalResponse(js []domain.SubJournal) []SubJournalResponse {
	res := make([]SubJournalResponse, len(js))
	for i := range js {
		res[i] = ToSubJournalResponse(&js[i])
	}
	return res
}
