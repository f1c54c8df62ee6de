package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
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

const domainsCursor = "domains"

type domainService struct {
	BaseService
}

// NewDomainService creates the ledger domain manager.
func NewDomainService(store portsrepo.Store, rules portssvc.RulesProvider, options ...ServiceOption) portssvc.DomainSvcFacade {
	return &domainService{BaseService: newBaseService(store, rules, options...)}
}

var _ portssvc.DomainSvcFacade = (*domainService)(nil)

// ledgerCurrency normalizes code and requires it to be a ledger currency.
func ledgerCurrency(ctx context.Context, repo portsrepo.CurrencyReader, code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if _, err := repo.FindCurrencyByCode(ctx, code); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", fmt.Errorf("%w: currency %q is not a ledger currency", apperrors.ErrValidation, code)
		}
		return "", err
	}
	return code, nil
}

// createDomain adds one domain inside an open transaction. It does not
// touch the ledger's default pointer.
func createDomain(ctx context.Context, repos portsrepo.RepositoryProvider, language string, req dto.AddDomainRequest, now time.Time) (*domain.LedgerDomain, error) {
	code, err := accounting.NormalizeFlatCode(req.Code)
	if err != nil {
		return nil, err
	}
	currency, err := ledgerCurrency(ctx, repos.Currencies, req.Currency)
	if err != nil {
		return nil, err
	}
	if _, err := repos.Domains.FindDomainByCode(ctx, code); err == nil {
		return nil, fmt.Errorf("%w: domain %s", apperrors.ErrDuplicateCode, code)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	d := domain.LedgerDomain{
		UUID:     uuid.NewString(),
		Code:     code,
		Currency: currency,
		Extra:    req.Extra,
	}
	revision.Stamp(&d.Revisioned, d.UUID, now)
	if err := repos.Domains.SaveDomain(ctx, d); err != nil {
		return nil, err
	}

	owner := nameOwner{uuid: d.UUID, kind: domain.OwnerDomain, scope: domain.LedgerScope}
	if d.Names, err = applyNames(ctx, repos.Names, owner, nil, dto.ToNameEdits(req.Names), language); err != nil {
		return nil, err
	}
	return &d, nil
}

// pointDefault makes d the ledger's default domain.
func pointDefault(ledger *domain.Ledger, d *domain.LedgerDomain) {
	ledger.DefaultDomainUUID = d.UUID
	ledger.Rules.Domain.Default = d.Code
	d.IsDefault = true
}

// saveLedger stamps and conditionally stores a changed ledger record.
func saveLedger(ctx context.Context, repo portsrepo.LedgerRepositoryFacade, ledger *domain.Ledger, now time.Time) error {
	prev := ledger.Version
	revision.Stamp(&ledger.Revisioned, ledger.UUID, now)
	return repo.UpdateLedger(ctx, *ledger, prev)
}

func (s *domainService) AddDomain(ctx context.Context, req dto.AddDomainRequest) (*domain.LedgerDomain, error) {
	var d *domain.LedgerDomain
	ledgerChanged := false

	err := s.store.InTx(ctx, func(repos portsrepo.RepositoryProvider) error {
		ledger, err := repos.Ledger.FindLedgerForUpdate(ctx)
		if err != nil {
			return err
		}
		if d, err = createDomain(ctx, repos, ledger.Rules.Language.Default, req, s.now()); err != nil {
			return err
		}
		if req.Default || ledger.DefaultDomainUUID == "" {
			pointDefault(ledger, d)
			ledgerChanged = true
			return saveLedger(ctx, repos.Ledger, ledger, s.now())
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add domain", slog.String("code", req.Code))
		return nil, err
	}
	if ledgerChanged {
		s.invalidateRules(ctx)
	}

	s.LogInfo(ctx, "Domain added", slog.String("domain_uuid", d.UUID), slog.String("code", d.Code))
	return d, nil
}

func (s *domainService) GetDomain(ctx context.Context, req dto.GetDomainRequest) (*domain.LedgerDomain, error) {
	repos := s.store.Repositories()
	ledger, err := repos.Ledger.FindLedger(ctx)
	if err != nil {
		return nil, err
	}
	code, err := accounting.NormalizeFlatCode(req.Code)
	if err != nil {
		return nil, err
	}

	d, err := repos.Domains.FindDomainByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get domain", slog.String("code", code))
		}
		return nil, err
	}
	if d.Names, err = repos.Names.FindNames(ctx, d.UUID); err != nil {
		return nil, fmt.Errorf("failed to load names of domain %s: %w", d.Code, err)
	}
	d.IsDefault = d.UUID == ledger.DefaultDomainUUID
	revision.Attach(&d.Revisioned, d.UUID)
	return d, nil
}

func (s *domainService) UpdateDomain(ctx context.Context, req dto.UpdateDomainRequest) (*domain.LedgerDomain, error) {
	var d *domain.LedgerDomain
	ledgerChanged := false

	err := s.store.InTx(ctx, func(repos portsrepo.RepositoryProvider) error {
		ledger, err := repos.Ledger.FindLedgerForUpdate(ctx)
		if err != nil {
			return err
		}
		code, err := accounting.NormalizeFlatCode(req.Code)
		if err != nil {
			return err
		}
		if d, err = repos.Domains.FindDomainByCodeForUpdate(ctx, code); err != nil {
			return err
		}
		if err := revision.Check(d.Revisioned, d.UUID, req.Revision); err != nil {
			return err
		}
		prevVersion := d.Version
		d.IsDefault = d.UUID == ledger.DefaultDomainUUID

		names, err := repos.Names.FindNames(ctx, d.UUID)
		if err != nil {
			return fmt.Errorf("failed to load names of domain %s: %w", d.Code, err)
		}

		if req.ToCode != "" {
			newCode, err := accounting.NormalizeFlatCode(req.ToCode)
			if err != nil {
				return err
			}
			if newCode != d.Code {
				if _, err := repos.Domains.FindDomainByCode(ctx, newCode); err == nil {
					return fmt.Errorf("%w: domain %s", apperrors.ErrDuplicateCode, newCode)
				} else if !errors.Is(err, apperrors.ErrNotFound) {
					return err
				}
				d.Code = newCode
				// the default domain keeps its role under the new code
				if d.IsDefault {
					pointDefault(ledger, d)
					ledgerChanged = true
				}
			}
		}

		if req.Currency != nil {
			currency, err := ledgerCurrency(ctx, repos.Currencies, *req.Currency)
			if err != nil {
				return err
			}
			if currency != d.Currency {
				referenced, err := repos.References.HasReferences(ctx, domain.RefDomain, d.UUID)
				if err != nil {
					return err
				}
				if referenced {
					return fmt.Errorf("%w: domain %s has journal entries in %s", apperrors.ErrHasDependents, d.Code, d.Currency)
				}
				d.Currency = currency
			}
		}

		if req.Default && !d.IsDefault {
			pointDefault(ledger, d)
			ledgerChanged = true
		}
		if req.Extra != nil {
			d.Extra = *req.Extra
		}

		if len(req.Names) > 0 {
			owner := nameOwner{uuid: d.UUID, kind: domain.OwnerDomain, scope: domain.LedgerScope}
			if names, err = applyNames(ctx, repos.Names, owner, names, dto.ToNameEdits(req.Names), ledger.Rules.Language.Default); err != nil {
				return err
			}
		}
		d.Names = names

		revision.Stamp(&d.Revisioned, d.UUID, s.now())
		if err := repos.Domains.UpdateDomain(ctx, *d, prevVersion); err != nil {
			return err
		}
		if ledgerChanged {
			return saveLedger(ctx, repos.Ledger, ledger, s.now())
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update domain", slog.String("code", req.Code))
		return nil, err
	}
	if ledgerChanged {
		s.invalidateRules(ctx)
	}

	s.LogInfo(ctx, "Domain updated", slog.String("domain_uuid", d.UUID), slog.String("code", d.Code))
	return d, nil
}

func (s *domainService) DeleteDomain(ctx context.Context, req dto.DeleteDomainRequest) error {
	ledgerChanged := false

	err := s.store.InTx(ctx, func(repos portsrepo.RepositoryProvider) error {
		ledger, err := repos.Ledger.FindLedgerForUpdate(ctx)
		if err != nil {
			return err
		}
		code, err := accounting.NormalizeFlatCode(req.Code)
		if err != nil {
			return err
		}
		d, err := repos.Domains.FindDomainByCodeForUpdate(ctx, code)
		if err != nil {
			return err
		}
		if err := revision.Check(d.Revisioned, d.UUID, req.Revision); err != nil {
			return err
		}
		referenced, err := repos.References.HasReferences(ctx, domain.RefDomain, d.UUID)
		if err != nil {
			return err
		}
		if referenced {
			return fmt.Errorf("%w: domain %s has journal entries", apperrors.ErrHasDependents, d.Code)
		}

		if d.UUID == ledger.DefaultDomainUUID {
			if strings.TrimSpace(req.NewDefault) == "" {
				return fmt.Errorf("%w: %s is the default domain, name its replacement in newDefault", apperrors.ErrValidation, d.Code)
			}
			replacementCode, err := accounting.NormalizeFlatCode(req.NewDefault)
			if err != nil {
				return err
			}
			if replacementCode == d.Code {
				return fmt.Errorf("%w: a domain cannot replace itself as default", apperrors.ErrValidation)
			}
			replacement, err := repos.Domains.FindDomainByCodeForUpdate(ctx, replacementCode)
			if err != nil {
				return err
			}
			pointDefault(ledger, replacement)
			ledgerChanged = true
			// repoint before the delete so the ledger never references a missing domain
			if err := saveLedger(ctx, repos.Ledger, ledger, s.now()); err != nil {
				return err
			}
		}

		if err := repos.Names.DeleteNames(ctx, d.UUID); err != nil {
			return err
		}
		return repos.Domains.DeleteDomain(ctx, d.UUID, d.Version)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete domain", slog.String("code", req.Code))
		return err
	}
	if ledgerChanged {
		s.invalidateRules(ctx)
	}

	s.LogInfo(ctx, "Domain deleted", slog.String("code", req.Code))
	return nil
}

func (s *domainService) QueryDomains(ctx context.Context, req dto.DomainQueryRequest) (*domain.Page[domain.LedgerDomain], error) {
	repos := s.store.Repositories()
	ledger, err := repos.Ledger.FindLedger(ctx)
	if err != nil {
		return nil, err
	}
	limit := s.limit(req.Limit)

	after := ""
	if req.NextToken != "" {
		if after, err = pagination.DecodeCodeToken(domainsCursor, req.NextToken); err != nil {
			return nil, err
		}
	} else if req.After != nil {
		after = normalizeFlat(req.After.Code)
	}

	domains, err := repos.Domains.QueryDomains(ctx, codeFilter(normalizeFlat, req.Codes, req.Range), portsrepo.PageQuery{After: after, Limit: limit + 1})
	if err != nil {
		s.LogError(ctx, err, "Failed to query domains")
		return nil, err
	}

	page := &domain.Page[domain.LedgerDomain]{Items: domains}
	if len(domains) > limit {
		page.Items = domains[:limit]
		page.More = true
		page.NextToken = pagination.EncodeCodeToken(domainsCursor, page.Items[limit-1].Code)
	}

	owners := make([]string, len(page.Items))
	for i := range page.Items {
		d := &page.Items[i]
		owners[i] = d.UUID
		d.IsDefault = d.UUID == ledger.DefaultDomainUUID
		revision.Attach(&d.Revisioned, d.UUID)
	}
	err = attachNames(ctx, repos.Names, owners, func(i int, names []domain.Name) { page.Items[i].Names = names })
	if err != nil {
		return nil, err
	}
	return page, nil
}

// normalizeFlat applies the domain and sub-journal case policy without validating.
func normalizeFlat(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
