package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
)

type subJournalRepository struct {
	*base
}

var _ repositories.SubJournalRepositoryFacade = (*subJournalRepository)(nil)

func (r *subJournalRepository) byCode(code string) (domain.SubJournal, bool) {
	for _, j := range r.st.journals {
		if j.Code == code {
			return j, true
		}
	}
	return domain.SubJournal{}, false
}

func (r *subJournalRepository) FindSubJournalByCode(ctx context.Context, code string) (*domain.SubJournal, error) {
	j, ok := r.byCode(code)
	if !ok {
		return nil, fmt.Errorf("%w: sub-journal %s", apperrors.ErrNotFound, code)
	}
	return &j, nil
}

func (r *subJournalRepository) FindSubJournalByCodeForUpdate(ctx context.Context, code string) (*domain.SubJournal, error) {
	return r.FindSubJournalByCode(ctx, code)
}

func (r *subJournalRepository) QuerySubJournals(ctx context.Context, filter repositories.CodeFilter, q repositories.PageQuery) ([]domain.SubJournal, error) {
	matches := make([]domain.SubJournal, 0)
	for _, j := range r.st.journals {
		if inCodeFilter(j.Code, filter) {
			matches = append(matches, j)
		}
	}
	return page(matches, func(j domain.SubJournal) string { return j.Code }, q), nil
}

func (r *subJournalRepository) SaveSubJournal(ctx context.Context, j domain.SubJournal) error {
	if err := r.checkWritable(); err != nil {
		return err
	}
	if _, ok := r.byCode(j.Code); ok {
		return fmt.Errorf("%w: sub-journal %s", apperrors.ErrDuplicateCode, j.Code)
	}
	j.Names = nil
	r.st.journals[j.UUID] = j
	return nil
}

func (r *subJournalRepository) UpdateSubJournal(ctx context.Context, j domain.SubJournal, prevVersion int64) error {
	if err := r.checkWritable(); err != nil {
		return err
	}
	stored, ok := r.st.journals[j.UUID]
	if !ok {
		return fmt.Errorf("%w: sub-journal %s", apperrors.ErrNotFound, j.UUID)
	}
	if stored.Version != prevVersion {
		return fmt.Errorf("%w: sub-journal %s", apperrors.ErrRevisionMismatch, stored.Code)
	}
	if other, ok := r.byCode(j.Code); ok && other.UUID != j.UUID {
		return fmt.Errorf("%w: sub-journal %s", apperrors.ErrDuplicateCode, j.Code)
	}
	j.Names = nil
	r.st.journals[j.UUID] = j
	return nil
}

func (r *subJournalRepository) DeleteSubJournal(ctx context.Context, uuid string, version int64) error {
	if err := r.checkWritable(); err != nil {
		return err
	}
	stored, ok := r.st.journals[uuid]
	if !ok {
		return fmt.Errorf("%w: sub-journal %s", apperrors.ErrNotFound, uuid)
	}
	if stored.Version != version {
		return fmt.Errorf("%w: sub-journal %s", apperrors.ErrRevisionMismatch, stored.Code)
	}
	delete(r.st.journals, uuid)
	delete(r.st.names, uuid)
	return nil
}
