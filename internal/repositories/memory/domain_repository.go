package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
)

type domainRepository struct {
	*base
}

var _ repositories.DomainRepositoryFacade = (*domainRepository)(nil)

func (r *domainRepository) byCode(code string) (domain.LedgerDomain, bool) {
	for _, d := range r.st.domains {
		if d.Code == code {
			return d, true
		}
	}
	return domain.LedgerDomain{}, false
}

func (r *domainRepository) FindDomainByCode(ctx context.Context, code string) (*domain.LedgerDomain, error) {
	d, ok := r.byCode(code)
	if !ok {
		return nil, fmt.Errorf("%w: domain %s", apperrors.ErrNotFound, code)
	}
	return &d, nil
}

func (r *domainRepository) FindDomainByCodeForUpdate(ctx context.Context, code string) (*domain.LedgerDomain, error) {
	return r.FindDomainByCode(ctx, code)
}

func (r *domainRepository) FindDomainByUUID(ctx context.Context, uuid string) (*domain.LedgerDomain, error) {
	d, ok := r.st.domains[uuid]
	if !ok {
		return nil, fmt.Errorf("%w: domain %s", apperrors.ErrNotFound, uuid)
	}
	return &d, nil
}

func (r *domainRepository) QueryDomains(ctx context.Context, filter repositories.CodeFilter, q repositories.PageQuery) ([]domain.LedgerDomain, error) {
	matches := make([]domain.LedgerDomain, 0)
	for _, d := range r.st.domains {
		if inCodeFilter(d.Code, filter) {
			matches = append(matches, d)
		}
	}
	return page(matches, func(d domain.LedgerDomain) string { return d.Code }, q), nil
}

func (r *domainRepository) CountDomainsByCurrency(ctx context.Context, currency string) (int, error) {
	n := 0
	for _, d := range r.st.domains {
		if d.Currency == currency {
			n++
		}
	}
	return n, nil
}

func (r *domainRepository) SaveDomain(ctx context.Context, d domain.LedgerDomain) error {
	if err := r.checkWritable(); err != nil {
		return err
	}
	if _, ok := r.byCode(d.Code); ok {
		return fmt.Errorf("%w: domain %s", apperrors.ErrDuplicateCode, d.Code)
	}
	if _, ok := r.st.currencies[d.Currency]; !ok {
		return fmt.Errorf("%w: currency %s is not a ledger currency", apperrors.ErrValidation, d.Currency)
	}
	d.Names, d.IsDefault = nil, false
	r.st.domains[d.UUID] = d
	return nil
}

func (r *domainRepository) UpdateDomain(ctx context.Context, d domain.LedgerDomain, prevVersion int64) error {
	if err := r.checkWritable(); err != nil {
		return err
	}
	stored, ok := r.st.domains[d.UUID]
	if !ok {
		return fmt.Errorf("%w: domain %s", apperrors.ErrNotFound, d.UUID)
	}
	if stored.Version != prevVersion {
		return fmt.Errorf("%w: domain %s", apperrors.ErrRevisionMismatch, stored.Code)
	}
	if other, ok := r.byCode(d.Code); ok && other.UUID != d.UUID {
		return fmt.Errorf("%w: domain %s", apperrors.ErrDuplicateCode, d.Code)
	}
	if _, ok := r.st.currencies[d.Currency]; !ok {
		return fmt.Errorf("%w: currency %s is not a ledger currency", apperrors.ErrValidation, d.Currency)
	}
	d.Names, d.IsDefault = nil, false
	r.st.domains[d.UUID] = d
	return nil
}

func (r *domainRepository) DeleteDomain(ctx context.Context, uuid string, version int64) error {
	if err := r.checkWritable(); err != nil {
		return err
	}
	stored, ok := r.st.domains[uuid]
	if !ok {
		return fmt.Errorf("%w: domain %s", apperrors.ErrNotFound, uuid)
	}
	if stored.Version != version {
		return fmt.Errorf("%w: domain %s", apperrors.ErrRevisionMismatch, stored.Code)
	}
	delete(r.st.domains, uuid)
	delete(r.st.names, uuid)
	return nil
}
