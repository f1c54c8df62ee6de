package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
)

type ledgerRepository struct {
	*base
}

var _ repositories.LedgerRepositoryFacade = (*ledgerRepository)(nil)

func (r *ledgerRepository) FindLedger(ctx context.Context) (*domain.Ledger, error) {
	if r.st.ledger == nil {
		return nil, apperrors.ErrNoLedger
	}
	l := *r.st.ledger
	return &l, nil
}

func (r *ledgerRepository) FindLedgerForUpdate(ctx context.Context) (*domain.Ledger, error) {
	return r.FindLedger(ctx)
}

func (r *ledgerRepository) SaveLedger(ctx context.Context, ledger domain.Ledger) error {
	if err := r.checkWritable(); err != nil {
		return err
	}
	if r.st.ledger != nil {
		return apperrors.ErrLedgerExists
	}
	r.st.ledger = &ledger
	return nil
}

func (r *ledgerRepository) UpdateLedger(ctx context.Context, ledger domain.Ledger, prevVersion int64) error {
	if err := r.checkWritable(); err != nil {
		return err
	}
	if r.st.ledger == nil {
		return apperrors.ErrNoLedger
	}
	if r.st.ledger.Version != prevVersion {
		return fmt.Errorf("%w: ledger", apperrors.ErrRevisionMismatch)
	}
	r.st.ledger = &ledger
	return nil
}
