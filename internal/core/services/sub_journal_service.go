package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/SscSPs/ledger_engine/internal/utils/accounting"
	"github.com/SscSPs/ledger_engine/internal/utils/pagination"
	"github.com/SscSPs/ledger_engine/internal/utils/revision"
	"github.com/google/uuid"
)

const journalsCursor = "journals"

type subJournalService struct {
	BaseService
}

// NewSubJournalService creates the sub-journal manager.
func NewSubJournalService(store portsrepo.Store, rules portssvc.RulesProvider, options ...ServiceOption) portssvc.SubJournalSvcFacade {
	return &subJournalService{BaseService: newBaseService(store, rules, options...)}
}

var _ portssvc.SubJournalSvcFacade = (*subJournalService)(nil)

func createSubJournal(ctx context.Context, repos portsrepo.RepositoryProvider, language string, req dto.AddSubJournalRequest, now time.Time) (*domain.SubJournal, error) {
	code, err := accounting.NormalizeFlatCode(req.Code)
	if err != nil {
		return nil, err
	}
	if _, err := repos.SubJournals.FindSubJournalByCode(ctx, code); err == nil {
		return nil, fmt.Errorf("%w: sub-journal %s", apperrors.ErrDuplicateCode, code)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	j := domain.SubJournal{UUID: uuid.NewString(), Code: code, Extra: req.Extra}
	revision.Stamp(&j.Revisioned, j.UUID, now)
	if err := repos.SubJournals.SaveSubJournal(ctx, j); err != nil {
		return nil, err
	}

	owner := nameOwner{uuid: j.UUID, kind: domain.OwnerSubJournal, scope: domain.LedgerScope}
	if j.Names, err = applyNames(ctx, repos.Names, owner, nil, dto.ToNameEdits(req.Names), language); err != nil {
		return nil, err
	}
	return &j, nil
}

func (s *subJournalService) AddSubJournal(ctx context.Context, req dto.AddSubJournalRequest) (*domain.SubJournal, error) {
	rules, err := s.rules.Rules(ctx)
	if err != nil {
		return nil, err
	}

	var j *domain.SubJournal
	err = s.store.InTx(ctx, func(repos portsrepo.RepositoryProvider) error {
		j, err = createSubJournal(ctx, repos, rules.Language.Default, req, s.now())
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add sub-journal", slog.String("code", req.Code))
		return nil, err
	}

	s.LogInfo(ctx, "Sub-journal added", slog.String("journal_uuid", j.UUID), slog.String("code", j.Code))
	return j, nil
}

func (s *subJournalService) GetSubJournal(ctx context.Context, req dto.GetSubJournalRequest) (*domain.SubJournal, error) {
	if _, err := s.rules.Rules(ctx); err != nil {
		return nil, err
	}
	code, err := accounting.NormalizeFlatCode(req.Code)
	if err != nil {
		return nil, err
	}
	repos := s.store.Repositories()

	j, err := repos.SubJournals.FindSubJournalByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if j.Names, err = repos.Names.FindNames(ctx, j.UUID); err != nil {
		return nil, fmt.Errorf("failed to load names of sub-journal %s: %w", j.Code, err)
	}
	revision.Attach(&j.Revisioned, j.UUID)
	return j, nil
}

func (s *subJournalService) UpdateSubJournal(ctx context.Context, req dto.UpdateSubJournalRequest) (*domain.SubJournal, error) {
	rules, err := s.rules.Rules(ctx)
	if err != nil {
		return nil, err
	}
	code, err := accounting.NormalizeFlatCode(req.Code)
	if err != nil {
		return nil, err
	}

	var j *domain.SubJournal
	err = s.store.InTx(ctx, func(repos portsrepo.RepositoryProvider) error {
		if j, err = repos.SubJournals.FindSubJournalByCodeForUpdate(ctx, code); err != nil {
			return err
		}
		if err := revision.Check(j.Revisioned, j.UUID, req.Revision); err != nil {
			return err
		}
		prevVersion := j.Version

		names, err := repos.Names.FindNames(ctx, j.UUID)
		if err != nil {
			return fmt.Errorf("failed to load names of sub-journal %s: %w", j.Code, err)
		}

		if req.ToCode != "" {
			newCode, err := accounting.NormalizeFlatCode(req.ToCode)
			if err != nil {
				return err
			}
			if newCode != j.Code {
				if _, err := repos.SubJournals.FindSubJournalByCode(ctx, newCode); err == nil {
					return fmt.Errorf("%w: sub-journal %s", apperrors.ErrDuplicateCode, newCode)
				} else if !errors.Is(err, apperrors.ErrNotFound) {
					return err
				}
				j.Code = newCode
			}
		}
		if req.Extra != nil {
			j.Extra = *req.Extra
		}
		if len(req.Names) > 0 {
			owner := nameOwner{uuid: j.UUID, kind: domain.OwnerSubJournal, scope: domain.LedgerScope}
			if names, err = applyNames(ctx, repos.Names, owner, names, dto.ToNameEdits(req.Names), rules.Language.Default); err != nil {
				return err
			}
		}
		j.Names = names

		revision.Stamp(&j.Revisioned, j.UUID, s.now())
		return repos.SubJournals.UpdateSubJournal(ctx, *j, prevVersion)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update sub-journal", slog.String("code", req.Code))
		return nil, err
	}

	s.LogInfo(ctx, "Sub-journal updated", slog.String("journal_uuid", j.UUID), slog.String("code", j.Code))
	return j, nil
}

func (s *subJournalService) DeleteSubJournal(ctx context.Context, req dto.DeleteSubJournalRequest) error {
	if _, err := s.rules.Rules(ctx); err != nil {
		return err
	}
	code, err := accounting.NormalizeFlatCode(req.Code)
	if err != nil {
		return err
	}

	err = s.store.InTx(ctx, func(repos portsrepo.RepositoryProvider) error {
		j, err := repos.SubJournals.FindSubJournalByCodeForUpdate(ctx, code)
		if err != nil {
			return err
		}
		if err := revision.Check(j.Revisioned, j.UUID, req.Revision); err != nil {
			return err
		}
		referenced, err := repos.References.HasReferences(ctx, domain.RefSubJournal, j.UUID)
		if err != nil {
			return err
		}
		if referenced {
			return fmt.Errorf("%w: sub-journal %s has journal entries", apperrors.ErrHasDependents, j.Code)
		}
		if err := repos.Names.DeleteNames(ctx, j.UUID); err != nil {
			return err
		}
		return repos.SubJournals.DeleteSubJournal(ctx, j.UUID, j.Version)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete sub-journal", slog.String("code", req.Code))
		return err
	}

	s.LogInfo(ctx, "Sub-journal deleted", slog.String("code", code))
	return nil
}

func (s *subJournalService) QuerySubJournals(ctx context.Context, req dto.SubJournalQueryRequest) (*domain.Page[domain.SubJournal], error) {
	if _, err := s.rules.Rules(ctx); err != nil {
		return nil, err
	}
	limit := s.limit(req.Limit)

	after := ""
	if req.NextToken != "" {
		var err error
		if after, err = pagination.DecodeCodeToken(journalsCursor, req.NextToken); err != nil {
			return nil, err
		}
	} else if req.After != nil {
		after = normalizeFlat(req.After.Code)
	}

	repos := s.store.Repositories()
	journals, err := repos.SubJournals.QuerySubJournals(ctx, codeFilter(normalizeFlat, req.Codes, req.Range), portsrepo.PageQuery{After: after, Limit: limit + 1})
	if err != nil {
		s.LogError(ctx, err, "Failed to query sub-journals")
		return nil, err
	}

	page := &domain.Page[domain.SubJournal]{Items: journals}
	if len(journals) > limit {
		page.Items = journals[:limit]
		page.More = true
		page.NextToken = pagination.EncodeCodeToken(journalsCursor, page.Items[limit-1].Code)
	}

	owners := make([]string, len(page.Items))
	for i := range page.Items {
		owners[i] = page.Items[i].UUID
		revision.Attach(&page.Items[i].Revisioned, page.Items[i].UUID)
	}
	err = attachNames(ctx, repos.Names, owners, func(i int, names []domain.Name) { page.Items[i].Names = names })
	if err != nil {
		return nil, err
	}
	return page, nil
}
