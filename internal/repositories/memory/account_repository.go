package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
)

type accountRepository struct {
	*base
}

var _ repositories.AccountRepositoryFacade = (*accountRepository)(nil)

// resolve fills in the parent code the way the SQL join does.
func (r *accountRepository) resolve(a domain.Account) domain.Account {
	a.ParentCode = ""
	if a.ParentUUID != nil {
		if p, ok := r.st.accounts[*a.ParentUUID]; ok {
			a.ParentCode = p.Code
		}
	}
	a.Names = nil
	return a
}

func (r *accountRepository) byCode(code string) (domain.Account, bool) {
	for _, a := range r.st.accounts {
		if a.Code == code {
			return a, true
		}
	}
	return domain.Account{}, false
}

func (r *accountRepository) FindAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	a, ok := r.byCode(code)
	if !ok {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, code)
	}
	a = r.resolve(a)
	return &a, nil
}

func (r *accountRepository) FindAccountByCodeForUpdate(ctx context.Context, code string) (*domain.Account, error) {
	return r.FindAccountByCode(ctx, code)
}

func (r *accountRepository) AccountCodeExists(ctx context.Context, code string) (bool, error) {
	_, ok := r.byCode(code)
	return ok, nil
}

func (r *accountRepository) QueryAccounts(ctx context.Context, filter repositories.AccountFilter, q repositories.PageQuery) ([]domain.Account, error) {
	var parentUUID *string
	if filter.ParentCode != nil && *filter.ParentCode != "" {
		p, ok := r.byCode(*filter.ParentCode)
		if !ok {
			return []domain.Account{}, nil
		}
		parentUUID = &p.UUID
	}

	matches := make([]domain.Account, 0)
	for _, a := range r.st.accounts {
		if !inCodeFilter(a.Code, filter.CodeFilter) {
			continue
		}
		if filter.ParentCode != nil {
			if parentUUID == nil && a.ParentUUID != nil {
				continue
			}
			if parentUUID != nil && (a.ParentUUID == nil || *a.ParentUUID != *parentUUID) {
				continue
			}
		}
		if filter.Category != nil && a.Category != *filter.Category {
			continue
		}
		if filter.Closed != nil && a.Closed != *filter.Closed {
			continue
		}
		if filter.NameContains != "" && !r.st.nameMatches(a.UUID, filter.NameLanguage, filter.NameContains) {
			continue
		}
		matches = append(matches, r.resolve(a))
	}
	return page(matches, func(a domain.Account) string { return a.Code }, q), nil
}

func (r *accountRepository) HasChildAccounts(ctx context.Context, uuid string) (bool, error) {
	for _, a := range r.st.accounts {
		if a.ParentUUID != nil && *a.ParentUUID == uuid {
			return true, nil
		}
	}
	return false, nil
}

func (r *accountRepository) FindDescendantsForUpdate(ctx context.Context, code, delimiter string) ([]domain.Account, error) {
	prefix := code + delimiter
	found := make([]domain.Account, 0)
	for _, a := range r.st.accounts {
		if strings.HasPrefix(a.Code, prefix) {
			found = append(found, r.resolve(a))
		}
	}
	return page(found, func(a domain.Account) string { return a.Code }, repositories.PageQuery{}), nil
}

func (r *accountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	if err := r.checkWritable(); err != nil {
		return err
	}
	if _, ok := r.byCode(account.Code); ok {
		return fmt.Errorf("%w: account %s", apperrors.ErrDuplicateCode, account.Code)
	}
	if account.ParentUUID != nil {
		if _, ok := r.st.accounts[*account.ParentUUID]; !ok {
			return fmt.Errorf("%w: %s", apperrors.ErrOrphanAccount, *account.ParentUUID)
		}
	}
	account.Names = nil
	account.ParentCode = ""
	r.st.accounts[account.UUID] = account
	return nil
}

func (r *accountRepository) UpdateAccount(ctx context.Context, account domain.Account, prevVersion int64) error {
	if err := r.checkWritable(); err != nil {
		return err
	}
	stored, ok := r.st.accounts[account.UUID]
	if !ok {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, account.UUID)
	}
	if stored.Version != prevVersion {
		return fmt.Errorf("%w: account %s", apperrors.ErrRevisionMismatch, account.Code)
	}
	if other, ok := r.byCode(account.Code); ok && other.UUID != account.UUID {
		return fmt.Errorf("%w: account %s", apperrors.ErrDuplicateCode, account.Code)
	}
	account.Names = nil
	account.ParentCode = ""
	r.st.accounts[account.UUID] = account
	return nil
}

func (r *accountRepository) RewriteAccountCodes(ctx context.Context, accounts []domain.Account) error {
	if err := r.checkWritable(); err != nil {
		return err
	}
	for _, moved := range accounts {
		a, ok := r.st.accounts[moved.UUID]
		if !ok {
			return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, moved.UUID)
		}
		if a.Version != moved.Version-1 {
			return fmt.Errorf("%w: account %s", apperrors.ErrRevisionMismatch, a.Code)
		}
		a.Code = moved.Code
		a.Revisioned = moved.Revisioned
		r.st.accounts[moved.UUID] = a
	}
	return nil
}

func (r *accountRepository) DeleteAccount(ctx context.Context, uuid string, version int64) error {
	if err := r.checkWritable(); err != nil {
		return err
	}
	stored, ok := r.st.accounts[uuid]
	if !ok {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, uuid)
	}
	if stored.Version != version {
		return fmt.Errorf("%w: account %s", apperrors.ErrRevisionMismatch, stored.Code)
	}
	for _, a := range r.st.accounts {
		if a.ParentUUID != nil && *a.ParentUUID == uuid {
			return fmt.Errorf("%w: account %s has sub-accounts", apperrors.ErrHasDependents, stored.Code)
		}
	}
	delete(r.st.accounts, uuid)
	delete(r.st.names, uuid)
	return nil
}
