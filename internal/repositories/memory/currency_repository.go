package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
)

type currencyRepository struct {
	*base
}

var _ repositories.CurrencyRepositoryFacade = (*currencyRepository)(nil)

func (r *currencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	c, ok := r.st.currencies[code]
	if !ok {
		return nil, fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, code)
	}
	return &c, nil
}

func (r *currencyRepository) FindCurrencyByCodeForUpdate(ctx context.Context, code string) (*domain.Currency, error) {
	return r.FindCurrencyByCode(ctx, code)
}

func (r *currencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	list := make([]domain.Currency, 0, len(r.st.currencies))
	for _, c := range r.st.currencies {
		list = append(list, c)
	}
	return page(list, func(c domain.Currency) string { return c.Code }, repositories.PageQuery{}), nil
}

func (r *currencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	if err := r.checkWritable(); err != nil {
		return err
	}
	if _, ok := r.st.currencies[currency.Code]; ok {
		return fmt.Errorf("%w: currency %s", apperrors.ErrDuplicateCode, currency.Code)
	}
	r.st.currencies[currency.Code] = currency
	return nil
}

func (r *currencyRepository) UpdateCurrency(ctx context.Context, currency domain.Currency, prevVersion int64) error {
	if err := r.checkWritable(); err != nil {
		return err
	}
	stored, ok := r.st.currencies[currency.Code]
	if !ok {
		return fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, currency.Code)
	}
	if stored.Version != prevVersion {
		return fmt.Errorf("%w: currency %s", apperrors.ErrRevisionMismatch, currency.Code)
	}
	r.st.currencies[currency.Code] = currency
	return nil
}

func (r *currencyRepository) DeleteCurrency(ctx context.Context, code string, version int64) error {
	if err := r.checkWritable(); err != nil {
		return err
	}
	stored, ok := r.st.currencies[code]
	if !ok {
		return fmt.Errorf("%w: currency %s", apperrors.ErrNotFound, code)
	}
	if stored.Version != version {
		return fmt.Errorf("%w: currency %s", apperrors.ErrRevisionMismatch, code)
	}
	for _, d := range r.st.domains {
		if d.Currency == code {
			return fmt.Errorf("%w: currency %s is used by domain %s", apperrors.ErrHasDependents, code, d.Code)
		}
	}
	delete(r.st.currencies, code)
	return nil
}
