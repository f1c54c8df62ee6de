package repositories

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
)

// RulesCache stores the resolved rule set between requests. Get reports a
// miss with ok=false and a nil error.
type RulesCache interface {
	Get(ctx context.Context) (rules domain.Rules, ok bool, err error)
	Set(ctx context.Context, rules domain.Rules) error
	Delete(ctx context.Context) error
}
