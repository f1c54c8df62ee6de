package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/SscSPs/ledger_engine/internal/templates"
	"github.com/SscSPs/ledger_engine/internal/utils/accounting"
	"github.com/SscSPs/ledger_engine/internal/utils/localization"
	"github.com/SscSPs/ledger_engine/internal/utils/revision"
	"github.com/google/uuid"
)

// defaultDomainName names the domain created when a ledger has none and no
// ledger names were given.
const defaultDomainName = "General"

type ledgerService struct {
	BaseService
}

// NewLedgerService creates the ledger root manager.
func NewLedgerService(store portsrepo.Store, rules portssvc.RulesProvider, options ...ServiceOption) portssvc.LedgerSvcFacade {
	return &ledgerService{BaseService: newBaseService(store, rules, options...)}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// resolveRules merges template and request rules over the defaults and
// settles the ledger language.
func resolveRules(req dto.CreateLedgerRequest, tpl *templates.Template) (domain.Rules, error) {
	rules := domain.DefaultRules()
	if tpl != nil {
		if tpl.Rules != nil {
			rules = rules.Merge(*tpl.Rules)
		}
		if tpl.Language != "" {
			rules.Language.Default = tpl.Language
		}
	}
	if req.Rules != nil {
		rules = rules.Merge(*req.Rules)
	}
	if req.Language != "" {
		rules.Language.Default = req.Language
	}

	language, err := localization.NormalizeLanguage(rules.Language.Default)
	if err != nil {
		return domain.Rules{}, err
	}
	rules.Language.Default = language

	if rules.Domain.Default, err = accounting.NormalizeFlatCode(rules.Domain.Default); err != nil {
		return domain.Rules{}, err
	}
	return rules, nil
}

// parentsFirst orders account requests so every parent precedes its children.
func parentsFirst(v *accounting.CodeValidator, delimiter string, reqs []dto.AddAccountRequest) []dto.AddAccountRequest {
	sorted := make([]dto.AddAccountRequest, len(reqs))
	copy(sorted, reqs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return strings.Count(v.Normalize(sorted[i].Code), delimiter) < strings.Count(v.Normalize(sorted[j].Code), delimiter)
	})
	return sorted
}

func (s *ledgerService) CreateLedger(ctx context.Context, req dto.CreateLedgerRequest) (*domain.Ledger, error) {
	var tpl *templates.Template
	if req.Template != "" {
		var err error
		if tpl, err = templates.Get(req.Template); err != nil {
			return nil, err
		}
	}
	rules, err := resolveRules(req, tpl)
	if err != nil {
		return nil, err
	}
	v, err := accounting.NewCodeValidator(rules.Account.Codes)
	if err != nil {
		return nil, err
	}
	if len(req.Currencies) == 0 {
		return nil, fmt.Errorf("%w: a ledger needs at least one currency", apperrors.ErrValidation)
	}
	language := rules.Language.Default

	ledger := &domain.Ledger{
		UUID:     uuid.NewString(),
		Template: req.Template,
		Rules:    rules,
	}

	err = s.store.InTx(ctx, func(repos portsrepo.RepositoryProvider) error {
		if _, err := repos.Ledger.FindLedgerForUpdate(ctx); err == nil {
			return apperrors.ErrLedgerExists
		} else if !errors.Is(err, apperrors.ErrNoLedger) {
			return err
		}
		now := s.now()

		for _, c := range req.Currencies {
			if _, err := createCurrency(ctx, repos, c, now); err != nil {
				return err
			}
		}

		domainReqs := req.Domains
		if len(domainReqs) == 0 {
			names := req.Names
			if len(names) == 0 {
				name := defaultDomainName
				names = []dto.NameRequest{{Language: language, Name: &name}}
			}
			domainReqs = []dto.AddDomainRequest{{
				Code:     rules.Domain.Default,
				Currency: req.Currencies[0].Code,
				Names:    names,
			}}
		}

		var chosen, byRule *domain.LedgerDomain
		for i, dr := range domainReqs {
			d, err := createDomain(ctx, repos, language, dr, now)
			if err != nil {
				return err
			}
			if dr.Default && chosen == nil {
				chosen = d
			}
			if d.Code == rules.Domain.Default || (i == 0 && byRule == nil) {
				byRule = d
			}
		}
		if chosen == nil {
			chosen = byRule
		}
		pointDefault(ledger, chosen)

		var accountReqs []dto.AddAccountRequest
		if tpl != nil {
			accountReqs = tpl.AccountRequests()
		}
		accountReqs = append(accountReqs, parentsFirst(v, rules.Account.Codes.Delimiter, req.Accounts)...)
		for _, ar := range accountReqs {
			if _, err := createAccount(ctx, repos, v, language, ar, now); err != nil {
				return fmt.Errorf("account %s: %w", ar.Code, err)
			}
		}

		for _, jr := range req.Journals {
			if _, err := createSubJournal(ctx, repos, language, jr, now); err != nil {
				return err
			}
		}

		revision.Stamp(&ledger.Revisioned, ledger.UUID, now)
		return repos.Ledger.SaveLedger(ctx, *ledger)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create ledger", slog.String("template", req.Template))
		return nil, err
	}
	s.invalidateRules(ctx)

	s.LogInfo(ctx, "Ledger created",
		slog.String("ledger_uuid", ledger.UUID),
		slog.String("template", ledger.Template),
		slog.String("default_domain", ledger.Rules.Domain.Default))
	return ledger, nil
}

func (s *ledgerService) GetLedger(ctx context.Context) (*domain.Ledger, []domain.Currency, error) {
	repos := s.store.Repositories()
	ledger, err := repos.Ledger.FindLedger(ctx)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNoLedger) {
			s.LogError(ctx, err, "Failed to get ledger")
		}
		return nil, nil, err
	}
	revision.Attach(&ledger.Revisioned, ledger.UUID)

	currencies, err := repos.Currencies.ListCurrencies(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list ledger currencies: %w", err)
	}
	for i := range currencies {
		revision.Attach(&currencies[i].Revisioned, currencies[i].Code)
	}
	return ledger, currencies, nil
}
