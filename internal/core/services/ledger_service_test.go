package services_test

import (
	"testing"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/stretchr/testify/suite"
)

type LedgerServiceTestSuite struct {
	ledgerSuite
}

func TestLedgerService(t *testing.T) {
	suite.Run(t, new(LedgerServiceTestSuite))
}

func (s *LedgerServiceTestSuite) TestGetNoLedger() {
	_, _, err := s.svc.Ledger.GetLedger(s.ctx)
	s.ErrorIs(err, apperrors.ErrNoLedger)

	_, err = s.svc.Rules.Rules(s.ctx)
	s.ErrorIs(err, apperrors.ErrNoLedger)
}

func (s *LedgerServiceTestSuite) TestCreate() {
	created := s.createLedger("")
	s.NotEmpty(created.UUID)
	s.NotEmpty(created.Revision)
	s.Equal("CORP", created.Rules.Domain.Default)

	ledger, currencies, err := s.svc.Ledger.GetLedger(s.ctx)
	s.Require().NoError(err)
	s.Equal(created.UUID, ledger.UUID)
	s.Equal(created.Revision, ledger.Revision)
	s.Equal("en", ledger.Rules.Language.Default)
	s.Require().Len(currencies, 1)
	s.Equal("CAD", currencies[0].Code)
	s.Equal(2, currencies[0].Decimals)

	rules, err := s.svc.Rules.Rules(s.ctx)
	s.Require().NoError(err)
	s.Equal("CORP", rules.Domain.Default)

	corp, err := s.svc.Domain.GetDomain(s.ctx, dto.GetDomainRequest{Code: "corp"})
	s.Require().NoError(err)
	s.True(corp.IsDefault)

	journal, err := s.svc.SubJournal.GetSubJournal(s.ctx, dto.GetSubJournalRequest{Code: "GJ"})
	s.Require().NoError(err)
	s.Equal("General Journal", nameOf(journal.Names, "en"))
}

func (s *LedgerServiceTestSuite) TestCreateTwice() {
	s.createLedger("")

	_, err := s.svc.Ledger.CreateLedger(s.ctx, dto.CreateLedgerRequest{
		Currencies: []dto.AddCurrencyRequest{{Code: "USD", Decimals: 2}},
	})
	s.ErrorIs(err, apperrors.ErrLedgerExists)
}

func (s *LedgerServiceTestSuite) TestCreateDefaultDomain() {
	ledger, err := s.svc.Ledger.CreateLedger(s.ctx, dto.CreateLedgerRequest{
		Names:      names("en", "Acme Widgets"),
		Currencies: []dto.AddCurrencyRequest{{Code: "usd", Decimals: 2}},
	})
	s.Require().NoError(err)
	s.Equal(domain.DefaultDomainCode, ledger.Rules.Domain.Default)

	main, err := s.svc.Domain.GetDomain(s.ctx, dto.GetDomainRequest{Code: "MAIN"})
	s.Require().NoError(err)
	s.True(main.IsDefault)
	s.Equal("USD", main.Currency)
	s.Equal("Acme Widgets", nameOf(main.Names, "en"))
}

func (s *LedgerServiceTestSuite) TestCreateFlaggedDefault() {
	_, err := s.svc.Ledger.CreateLedger(s.ctx, dto.CreateLedgerRequest{
		Currencies: []dto.AddCurrencyRequest{{Code: "CAD", Decimals: 2}},
		Domains: []dto.AddDomainRequest{
			{Code: "Corp", Currency: "CAD", Names: names("en", "Corporate")},
			{Code: "ENG", Currency: "CAD", Names: names("en", "Engineering"), Default: true},
		},
	})
	s.Require().NoError(err)

	rules, err := s.svc.Rules.Rules(s.ctx)
	s.Require().NoError(err)
	s.Equal("ENG", rules.Domain.Default)
}

func (s *LedgerServiceTestSuite) TestCreateAccountsParentsFirst() {
	_, err := s.svc.Ledger.CreateLedger(s.ctx, dto.CreateLedgerRequest{
		Currencies: []dto.AddCurrencyRequest{{Code: "CAD", Decimals: 2}},
		Accounts: []dto.AddAccountRequest{
			{Code: "1.10.100", Names: names("en", "Float")},
			{Code: "1.10", Names: names("en", "Cash")},
			{Code: "1", Names: names("en", "Assets")},
		},
	})
	s.Require().NoError(err)

	leaf, err := s.svc.Account.GetAccount(s.ctx, dto.GetAccountRequest{Code: "1.10.100"})
	s.Require().NoError(err)
	s.Equal("1.10", leaf.ParentCode)
}

func (s *LedgerServiceTestSuite) TestCreateRollsBack() {
	_, err := s.svc.Ledger.CreateLedger(s.ctx, dto.CreateLedgerRequest{
		Currencies: []dto.AddCurrencyRequest{{Code: "CAD", Decimals: 2}},
		Accounts: []dto.AddAccountRequest{
			{Code: "1", Names: names("en", "Assets")},
			{Code: "9.10", Names: names("en", "Nowhere")},
		},
	})
	s.ErrorIs(err, apperrors.ErrOrphanAccount)

	_, _, err = s.svc.Ledger.GetLedger(s.ctx)
	s.ErrorIs(err, apperrors.ErrNoLedger)
	_, err = s.store.Repositories().Currencies.FindCurrencyByCode(s.ctx, "CAD")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerServiceTestSuite) TestCreateValidation() {
	tests := []struct {
		name string
		req  dto.CreateLedgerRequest
		err  error
	}{
		{
			name: "no currencies",
			req:  dto.CreateLedgerRequest{},
			err:  apperrors.ErrValidation,
		},
		{
			name: "unknown template",
			req:  dto.CreateLedgerRequest{Template: "bakery", Currencies: []dto.AddCurrencyRequest{{Code: "CAD"}}},
			err:  apperrors.ErrValidation,
		},
		{
			name: "bad language",
			req:  dto.CreateLedgerRequest{Language: "not a tag!", Currencies: []dto.AddCurrencyRequest{{Code: "CAD"}}},
			err:  apperrors.ErrValidation,
		},
		{
			name: "domain currency outside the ledger",
			req: dto.CreateLedgerRequest{
				Currencies: []dto.AddCurrencyRequest{{Code: "CAD"}},
				Domains:    []dto.AddDomainRequest{{Code: "US", Currency: "USD", Names: names("en", "States")}},
			},
			err: apperrors.ErrValidation,
		},
		{
			name: "domain without a default language name",
			req: dto.CreateLedgerRequest{
				Currencies: []dto.AddCurrencyRequest{{Code: "CAD"}},
				Domains:    []dto.AddDomainRequest{{Code: "FR", Currency: "CAD", Names: names("fr", "France")}},
			},
			err: apperrors.ErrMissingDefaultLanguage,
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.svc.Ledger.CreateLedger(s.ctx, tt.req)
			s.ErrorIs(err, tt.err)
		})
	}
}

func (s *LedgerServiceTestSuite) TestCreateWithRuleOverrides() {
	_, err := s.svc.Ledger.CreateLedger(s.ctx, dto.CreateLedgerRequest{
		Language: "fr",
		Rules: &domain.Rules{Account: domain.AccountRules{Codes: domain.CodeFormat{
			Delimiter: "-",
			Segment:   "^[0-9]{1,4}$",
		}}},
		Names:      names("fr", "Principal"),
		Currencies: []dto.AddCurrencyRequest{{Code: "EUR", Decimals: 2}},
		Accounts: []dto.AddAccountRequest{
			{Code: "1000", Names: names("fr", "Actifs")},
			{Code: "1000-1100", Names: names("fr", "Encaisse")},
		},
	})
	s.Require().NoError(err)

	rules, err := s.svc.Rules.Rules(s.ctx)
	s.Require().NoError(err)
	s.Equal("fr", rules.Language.Default)
	s.Equal("-", rules.Account.Codes.Delimiter)
	s.Equal(8, rules.Account.Codes.MaxDepth)

	cash, err := s.svc.Account.GetAccount(s.ctx, dto.GetAccountRequest{Code: "1000-1100"})
	s.Require().NoError(err)
	s.Equal("1000", cash.ParentCode)
}
