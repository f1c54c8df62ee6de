package repositories

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
)

// LedgerRepositoryFacade persists the ledger root record. Finders return
// apperrors.ErrNoLedger before the ledger is created.
type LedgerRepositoryFacade interface {
	FindLedger(ctx context.Context) (*domain.Ledger, error)
	FindLedgerForUpdate(ctx context.Context) (*domain.Ledger, error)
	SaveLedger(ctx context.Context, ledger domain.Ledger) error
	UpdateLedger(ctx context.Context, ledger domain.Ledger, prevVersion int64) error
}
