package dto

import (
	"github.com/SscSPs/ledger_engine/internal/core/domain"
)

// NameRequest is one entry of a names list. Omitting name in an update
// removes that language.
type NameRequest struct {
	Name     *string `json:"name"`
	Language string  `json:"language" binding:"required,langtag"`
}

// NameResponse is one localized name.
type NameResponse struct {
	Name     string `json:"name"`
	Language string `json:"language"`
}

// EntityRef identifies an entity by code.
type EntityRef struct {
	Code string `json:"code" binding:"required"`
}

// ParentRef points at a parent account. An empty code means top level.
type ParentRef struct {
	Code string `json:"code"`
}

// CodeRange selects codes between From and To inclusive.
type CodeRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// PageRequest carries the keyset pagination fields shared by query requests.
// After and NextToken are alternatives; NextToken wins when both are set.
type PageRequest struct {
	Limit     int        `json:"limit" binding:"omitempty,min=1"`
	After     *EntityRef `json:"after"`
	NextToken string     `json:"nextToken"`
}

// SuccessResponse answers delete operations.
type SuccessResponse struct {
	Success bool `json:"success"`
}

// ErrorResponse is the failure envelope.
type ErrorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// ToNameEdits converts requested names into edits applied in order.
func ToNameEdits(names []NameRequest) []domain.NameEdit {
	edits := make([]domain.NameEdit, 0, len(names))
	for _, n := range names {
		edits = append(edits, domain.NameEdit{Language: n.Language, Name: n.Name})
	}
	return edits
}

// ToNameResponses converts a name set.
func ToNameResponses(names []domain.Name) []NameResponse {
	res := make([]NameResponse, len(names))
	for i, n := range names {
		res[i] = NameResponse{Name: n.Name, Language: n.Language}
	}
	return res
}
