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
	"github.com/SscSPs/ledger_engine/internal/utils/localization"
	"github.com/SscSPs/ledger_engine/internal/utils/pagination"
	"github.com/SscSPs/ledger_engine/internal/utils/revision"
	"github.com/google/uuid"
)

const accountsCursor = "accounts"

type accountService struct {
	BaseService
}

// NewAccountService creates the chart of accounts manager.
func NewAccountService(store portsrepo.Store, rules portssvc.RulesProvider, options ...ServiceOption) portssvc.AccountSvcFacade {
	return &accountService{BaseService: newBaseService(store, rules, options...)}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// validator returns the active rules and a code validator built from them.
func (s *accountService) validator(ctx context.Context) (domain.Rules, *accounting.CodeValidator, error) {
	rules, err := s.rules.Rules(ctx)
	if err != nil {
		return domain.Rules{}, nil, err
	}
	v, err := accounting.NewCodeValidator(rules.Account.Codes)
	if err != nil {
		return domain.Rules{}, nil, err
	}
	return rules, v, nil
}

func accountExists(ctx context.Context, repo portsrepo.AccountReader) accounting.ExistsFunc {
	return func(code string) (bool, error) {
		return repo.AccountCodeExists(ctx, code)
	}
}

func parseNormalBalance(raw string) (domain.NormalBalance, error) {
	b := domain.NormalBalance(strings.ToUpper(strings.TrimSpace(raw)))
	if !b.Valid() {
		return "", fmt.Errorf("%w: normal balance must be DEBIT or CREDIT, got %q", apperrors.ErrValidation, raw)
	}
	return b, nil
}

// createAccount adds one account inside an open transaction. The ledger
// service reuses it to import template charts.
func createAccount(ctx context.Context, repos portsrepo.RepositoryProvider, v *accounting.CodeValidator, language string, req dto.AddAccountRequest, now time.Time) (*domain.Account, error) {
	code, err := v.ValidateFormat(req.Code)
	if err != nil {
		return nil, err
	}
	parentCode := ""
	if req.Parent != nil {
		parentCode = req.Parent.Code
	}
	if err := v.ValidateParentage(code, parentCode, accountExists(ctx, repos.Accounts)); err != nil {
		return nil, err
	}

	account := domain.Account{
		UUID:          uuid.NewString(),
		Code:          code,
		Category:      req.Category,
		NormalBalance: domain.Debit,
		Closed:        req.Closed,
		Extra:         req.Extra,
	}

	if p := v.ParentOf(code); p != "" {
		// lock the parent so it cannot be deleted or moved underneath us
		parent, err := repos.Accounts.FindAccountByCodeForUpdate(ctx, p)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: %s", apperrors.ErrOrphanAccount, p)
			}
			return nil, err
		}
		account.ParentUUID = &parent.UUID
		account.ParentCode = parent.Code
		account.NormalBalance = parent.NormalBalance
	}
	if req.NormalBalance != "" {
		if account.NormalBalance, err = parseNormalBalance(req.NormalBalance); err != nil {
			return nil, err
		}
	}

	revision.Stamp(&account.Revisioned, account.UUID, now)
	if err := repos.Accounts.SaveAccount(ctx, account); err != nil {
		return nil, err
	}

	owner := nameOwner{uuid: account.UUID, kind: domain.OwnerAccount, scope: account.NameScope()}
	account.Names, err = applyNames(ctx, repos.Names, owner, nil, dto.ToNameEdits(req.Names), language)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (s *accountService) AddAccount(ctx context.Context, req dto.AddAccountRequest) (*domain.Account, error) {
	rules, v, err := s.validator(ctx)
	if err != nil {
		return nil, err
	}

	var account *domain.Account
	err = s.store.InTx(ctx, func(repos portsrepo.RepositoryProvider) error {
		account, err = createAccount(ctx, repos, v, rules.Language.Default, req, s.now())
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add account", slog.String("code", req.Code))
		return nil, err
	}

	s.LogInfo(ctx, "Account added", slog.String("account_uuid", account.UUID), slog.String("code", account.Code))
	return account, nil
}

func (s *accountService) GetAccount(ctx context.Context, req dto.GetAccountRequest) (*domain.Account, error) {
	_, v, err := s.validator(ctx)
	if err != nil {
		return nil, err
	}
	repos := s.store.Repositories()

	account, err := repos.Accounts.FindAccountByCode(ctx, v.Normalize(req.Code))
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to get account", slog.String("code", req.Code))
		}
		return nil, err
	}
	if account.Names, err = repos.Names.FindNames(ctx, account.UUID); err != nil {
		return nil, fmt.Errorf("failed to load names of account %s: %w", account.Code, err)
	}
	revision.Attach(&account.Revisioned, account.UUID)
	return account, nil
}

// targetCode works out where an update moves an account. toCode wins; a
// parent on its own keeps the account's last segment.
func targetCode(v *accounting.CodeValidator, current string, req dto.UpdateAccountRequest) (string, error) {
	if req.ToCode != "" {
		code, err := v.ValidateFormat(req.ToCode)
		if err != nil {
			return "", err
		}
		if req.Parent != nil && v.Normalize(req.Parent.Code) != v.ParentOf(code) {
			return "", fmt.Errorf("%w: account code %q does not start with parent code %q", apperrors.ErrValidation, code, v.Normalize(req.Parent.Code))
		}
		return code, nil
	}
	if req.Parent != nil {
		return v.ValidateFormat(v.Join(v.Normalize(req.Parent.Code), v.LastSegment(current)))
	}
	return current, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, req dto.UpdateAccountRequest) (*domain.Account, error) {
	rules, v, err := s.validator(ctx)
	if err != nil {
		return nil, err
	}

	var account *domain.Account
	err = s.store.InTx(ctx, func(repos portsrepo.RepositoryProvider) error {
		a, err := repos.Accounts.FindAccountByCodeForUpdate(ctx, v.Normalize(req.Code))
		if err != nil {
			return err
		}
		if err := revision.Check(a.Revisioned, a.UUID, req.Revision); err != nil {
			return err
		}
		prevVersion := a.Version

		names, err := repos.Names.FindNames(ctx, a.UUID)
		if err != nil {
			return fmt.Errorf("failed to load names of account %s: %w", a.Code, err)
		}

		newCode, err := targetCode(v, a.Code, req)
		if err != nil {
			return err
		}
		now := s.now()
		scopeChanged := false
		var moved []domain.Account
		if newCode != a.Code {
			if err := v.ValidateReparent(a.Code, newCode, accountExists(ctx, repos.Accounts)); err != nil {
				return err
			}
			descendants, err := repos.Accounts.FindDescendantsForUpdate(ctx, a.Code, rules.Account.Codes.Delimiter)
			if err != nil {
				return err
			}
			for _, d := range descendants {
				if d.Code, err = v.ValidateFormat(v.Rebase(d.Code, a.Code, newCode)); err != nil {
					return err
				}
				revision.Stamp(&d.Revisioned, d.UUID, now)
				moved = append(moved, d)
			}

			if newParent := v.ParentOf(newCode); newParent != a.ParentCode {
				scopeChanged = true
				a.ParentUUID, a.ParentCode = nil, ""
				if newParent != "" {
					p, err := repos.Accounts.FindAccountByCodeForUpdate(ctx, newParent)
					if err != nil {
						return err
					}
					a.ParentUUID, a.ParentCode = &p.UUID, p.Code
				}
			}
			a.Code = newCode
		}

		if req.Category != nil {
			a.Category = *req.Category
		}
		if req.NormalBalance != nil {
			if a.NormalBalance, err = parseNormalBalance(*req.NormalBalance); err != nil {
				return err
			}
		}
		if req.Closed != nil {
			a.Closed = *req.Closed
		}
		if req.Extra != nil {
			a.Extra = *req.Extra
		}

		if len(req.Names) > 0 || scopeChanged {
			owner := nameOwner{uuid: a.UUID, kind: domain.OwnerAccount, scope: a.NameScope()}
			if names, err = applyNames(ctx, repos.Names, owner, names, dto.ToNameEdits(req.Names), rules.Language.Default); err != nil {
				return err
			}
		}

		revision.Stamp(&a.Revisioned, a.UUID, now)
		if err := repos.Accounts.UpdateAccount(ctx, *a, prevVersion); err != nil {
			return err
		}
		if err := repos.Accounts.RewriteAccountCodes(ctx, moved); err != nil {
			return err
		}
		a.Names = names
		account = a
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("code", req.Code))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_uuid", account.UUID), slog.String("code", account.Code))
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, req dto.DeleteAccountRequest) error {
	_, v, err := s.validator(ctx)
	if err != nil {
		return err
	}

	err = s.store.InTx(ctx, func(repos portsrepo.RepositoryProvider) error {
		a, err := repos.Accounts.FindAccountByCodeForUpdate(ctx, v.Normalize(req.Code))
		if err != nil {
			return err
		}
		if err := revision.Check(a.Revisioned, a.UUID, req.Revision); err != nil {
			return err
		}
		hasChildren, err := repos.Accounts.HasChildAccounts(ctx, a.UUID)
		if err != nil {
			return err
		}
		if hasChildren {
			return fmt.Errorf("%w: account %s has sub-accounts", apperrors.ErrHasDependents, a.Code)
		}
		referenced, err := repos.References.HasReferences(ctx, domain.RefAccount, a.UUID)
		if err != nil {
			return err
		}
		if referenced {
			return fmt.Errorf("%w: account %s has journal entries", apperrors.ErrHasDependents, a.Code)
		}
		if err := repos.Names.DeleteNames(ctx, a.UUID); err != nil {
			return err
		}
		return repos.Accounts.DeleteAccount(ctx, a.UUID, a.Version)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("code", req.Code))
		return err
	}

	s.LogInfo(ctx, "Account deleted", slog.String("code", req.Code))
	return nil
}

func (s *accountService) QueryAccounts(ctx context.Context, req dto.AccountQueryRequest) (*domain.Page[domain.Account], error) {
	_, v, err := s.validator(ctx)
	if err != nil {
		return nil, err
	}
	limit := s.limit(req.Limit)

	after := ""
	if req.NextToken != "" {
		if after, err = pagination.DecodeCodeToken(accountsCursor, req.NextToken); err != nil {
			return nil, err
		}
	} else if req.After != nil {
		after = v.Normalize(req.After.Code)
	}

	filter := portsrepo.AccountFilter{
		CodeFilter: codeFilter(v.Normalize, req.Codes, req.Range),
		Category:   req.Category,
		Closed:     req.Closed,
	}
	if req.Parent != nil {
		parent := v.Normalize(req.Parent.Code)
		filter.ParentCode = &parent
	}
	if req.Name != nil {
		filter.NameContains = localization.NormalizeText(req.Name.Text)
		filter.NameLanguage = strings.TrimSpace(req.Name.Language)
	}

	repos := s.store.Repositories()
	accounts, err := repos.Accounts.QueryAccounts(ctx, filter, portsrepo.PageQuery{After: after, Limit: limit + 1})
	if err != nil {
		s.LogError(ctx, err, "Failed to query accounts")
		return nil, err
	}

	page := &domain.Page[domain.Account]{Items: accounts}
	if len(accounts) > limit {
		page.Items = accounts[:limit]
		page.More = true
		page.NextToken = pagination.EncodeCodeToken(accountsCursor, page.Items[limit-1].Code)
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

// codeFilter normalizes the shared code predicates of a query request.
func codeFilter(normalize func(string) string, codes []string, rng *dto.CodeRange) portsrepo.CodeFilter {
	f := portsrepo.CodeFilter{}
	for _, c := range codes {
		f.Codes = append(f.Codes, normalize(c))
	}
	if rng != nil {
		f.RangeFrom = normalize(rng.From)
		f.RangeTo = normalize(rng.To)
	}
	return f
}
