package memory

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
)

type referenceChecker struct {
	*base
}

var _ repositories.ReferenceChecker = (*referenceChecker)(nil)

func refKey(kind domain.ReferenceKind, uuid string) string {
	return string(kind) + ":" + uuid
}

func (r *referenceChecker) HasReferences(ctx context.Context, kind domain.ReferenceKind, uuid string) (bool, error) {
	_, ok := r.st.references[refKey(kind, uuid)]
	return ok, nil
}
