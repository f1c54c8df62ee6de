package repositories

import (
	"context"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
)

// SubJournalReader defines read operations for sub-journals
type SubJournalReader interface {
	FindSubJournalByCode(ctx context.Context, code string) (*domain.SubJournal, error)
	QuerySubJournals(ctx context.Context, filter CodeFilter, page PageQuery) ([]domain.SubJournal, error)
}

// SubJournalWriter defines write operations for sub-journals
type SubJournalWriter interface {
	SaveSubJournal(ctx context.Context, j domain.SubJournal) error
	UpdateSubJournal(ctx context.Context, j domain.SubJournal, prevVersion int64) error
	DeleteSubJournal(ctx context.Context, uuid string, version int64) error
}

// SubJournalRepositoryFacade combines all sub-journal repository interfaces
type SubJournalRepositoryFacade interface {
	SubJournalReader
	SubJournalWriter
	FindSubJournalByCodeForUpdate(ctx context.Context, code string) (*domain.SubJournal, error)
}
