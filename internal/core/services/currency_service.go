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
	"github.com/SscSPs/ledger_engine/internal/utils/revision"
)

type currencyService struct {
	BaseService
}

// NewCurrencyService creates the ledger currency manager.
func NewCurrencyService(store portsrepo.Store, rules portssvc.RulesProvider, options ...ServiceOption) portssvc.CurrencySvcFacade {
	return &currencyService{BaseService: newBaseService(store, rules, options...)}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func normalizeCurrency(code string) (string, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) != 3 {
		return "", fmt.Errorf("%w: currency code %q must have 3 letters", apperrors.ErrValidation, code)
	}
	return code, nil
}

func createCurrency(ctx context.Context, repos portsrepo.RepositoryProvider, req dto.AddCurrencyRequest, now time.Time) (*domain.Currency, error) {
	code, err := normalizeCurrency(req.Code)
	if err != nil {
		return nil, err
	}
	if req.Decimals < 0 || req.Decimals > 8 {
		return nil, fmt.Errorf("%w: decimals must be between 0 and 8", apperrors.ErrValidation)
	}
	if _, err := repos.Currencies.FindCurrencyByCode(ctx, code); err == nil {
		return nil, fmt.Errorf("%w: currency %s", apperrors.ErrDuplicateCode, code)
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	c := domain.Currency{Code: code, Decimals: req.Decimals}
	revision.Stamp(&c.Revisioned, c.Code, now)
	if err := repos.Currencies.SaveCurrency(ctx, c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *currencyService) AddCurrency(ctx context.Context, req dto.AddCurrencyRequest) (*domain.Currency, error) {
	var c *domain.Currency
	err := s.store.InTx(ctx, func(repos portsrepo.RepositoryProvider) error {
		if _, err := repos.Ledger.FindLedger(ctx); err != nil {
			return err
		}
		var err error
		c, err = createCurrency(ctx, repos, req, s.now())
		return err
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add currency", slog.String("code", req.Code))
		return nil, err
	}
	s.LogInfo(ctx, "Currency added", slog.String("code", c.Code))
	return c, nil
}

func (s *currencyService) GetCurrency(ctx context.Context, req dto.GetCurrencyRequest) (*domain.Currency, error) {
	repos := s.store.Repositories()
	if _, err := repos.Ledger.FindLedger(ctx); err != nil {
		return nil, err
	}
	c, err := repos.Currencies.FindCurrencyByCode(ctx, strings.ToUpper(strings.TrimSpace(req.Code)))
	if err != nil {
		return nil, err
	}
	revision.Attach(&c.Revisioned, c.Code)
	return c, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.store.Repositories().Currencies.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, err
	}
	for i := range currencies {
		revision.Attach(&currencies[i].Revisioned, currencies[i].Code)
	}
	return currencies, nil
}

func (s *currencyService) UpdateCurrency(ctx context.Context, req dto.UpdateCurrencyRequest) (*domain.Currency, error) {
	var c *domain.Currency
	err := s.store.InTx(ctx, func(repos portsrepo.RepositoryProvider) error {
		var err error
		if c, err = repos.Currencies.FindCurrencyByCodeForUpdate(ctx, strings.ToUpper(strings.TrimSpace(req.Code))); err != nil {
			return err
		}
		if err := revision.Check(c.Revisioned, c.Code, req.Revision); err != nil {
			return err
		}
		prevVersion := c.Version
		if req.Decimals != nil {
			if *req.Decimals < 0 || *req.Decimals > 8 {
				return fmt.Errorf("%w: decimals must be between 0 and 8", apperrors.ErrValidation)
			}
			c.Decimals = *req.Decimals
		}
		revision.Stamp(&c.Revisioned, c.Code, s.now())
		return repos.Currencies.UpdateCurrency(ctx, *c, prevVersion)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update currency", slog.String("code", req.Code))
		return nil, err
	}
	return c, nil
}

func (s *currencyService) DeleteCurrency(ctx context.Context, req dto.DeleteCurrencyRequest) error {
	err := s.store.InTx(ctx, func(repos portsrepo.RepositoryProvider) error {
		c, err := repos.Currencies.FindCurrencyByCodeForUpdate(ctx, strings.ToUpper(strings.TrimSpace(req.Code)))
		if err != nil {
			return err
		}
		if err := revision.Check(c.Revisioned, c.Code, req.Revision); err != nil {
			return err
		}
		inUse, err := repos.Domains.CountDomainsByCurrency(ctx, c.Code)
		if err != nil {
			return err
		}
		if inUse > 0 {
			return fmt.Errorf("%w: currency %s is used by %d domain(s)", apperrors.ErrHasDependents, c.Code, inUse)
		}
		return repos.Currencies.DeleteCurrency(ctx, c.Code, c.Version)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete currency", slog.String("code", req.Code))
		return err
	}
	s.LogInfo(ctx, "Currency deleted", slog.String("code", req.Code))
	return nil
}
