package services

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/dto"
)

// SubJournalSvcFacade manages sub-journals.
type SubJournalSvcFacade interface {
	GetSubJournal(ctx context.Context, req dto.GetSubJournalRequest) (*domain.SubJournal, error)
	QuerySubJournals(ctx context.Context, req dto.SubJournalQueryRequest) (*domain.Page[domain.SubJournal], error)
	AddSubJournal(ctx context.Context, req dto.AddSubJournalRequest) (*domain.SubJournal, error)
	UpdateSubJournal(ctx context.Context, req dto.UpdateSubJournalRequest) (*domain.SubJournal, error)
	DeleteSubJournal(ctx context.Context, req dto.DeleteSubJournalRequest) error
}
