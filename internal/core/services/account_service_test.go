package services_test

import (
	"testing"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	ledgerSuite
}

func TestAccountService(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) get(code string) *domain.Account {
	a, err := s.svc.Account.GetAccount(s.ctx, dto.GetAccountRequest{Code: code})
	s.Require().NoError(err)
	return a
}

func (s *AccountServiceTestSuite) TestNoLedger() {
	_, err := s.svc.Account.AddAccount(s.ctx, dto.AddAccountRequest{Code: "1", Names: names("en", "Assets")})
	s.ErrorIs(err, apperrors.ErrNoLedger)

	_, err = s.svc.Account.GetAccount(s.ctx, dto.GetAccountRequest{Code: "1"})
	s.ErrorIs(err, apperrors.ErrNoLedger)

	_, err = s.svc.Account.QueryAccounts(s.ctx, dto.AccountQueryRequest{})
	s.ErrorIs(err, apperrors.ErrNoLedger)
}

func (s *AccountServiceTestSuite) TestAdd() {
	s.createLedger("")

	added, err := s.svc.Account.AddAccount(s.ctx, dto.AddAccountRequest{
		Code:  "1.30",
		Names: names("en", "Inventory", "fr", "Stocks"),
		Extra: `{"tax":"none"}`,
	})
	s.Require().NoError(err)
	s.Equal("1.30", added.Code)
	s.Equal("1", added.ParentCode)
	s.Equal(domain.Debit, added.NormalBalance)
	s.NotEmpty(added.Revision)
	s.Len(added.Names, 2)

	fetched := s.get("1.30")
	s.Equal(added.UUID, fetched.UUID)
	s.Equal(added.Revision, fetched.Revision)
	s.Equal(`{"tax":"none"}`, fetched.Extra)
	s.Equal("Stocks", nameOf(fetched.Names, "fr"))
}

func (s *AccountServiceTestSuite) TestAddInheritsNormalBalance() {
	s.createLedger("")

	added, err := s.svc.Account.AddAccount(s.ctx, dto.AddAccountRequest{Code: "2.20", Names: names("en", "Accrued Wages")})
	s.Require().NoError(err)
	s.Equal(domain.Credit, added.NormalBalance)

	added, err = s.svc.Account.AddAccount(s.ctx, dto.AddAccountRequest{Code: "2.30", NormalBalance: "debit", Names: names("en", "Contra")})
	s.Require().NoError(err)
	s.Equal(domain.Debit, added.NormalBalance)
}

func (s *AccountServiceTestSuite) TestAddFailures() {
	s.createLedger("")

	tests := []struct {
		name string
		req  dto.AddAccountRequest
		err  error
	}{
		{"orphan", dto.AddAccountRequest{Code: "9.10", Names: names("en", "Lost")}, apperrors.ErrOrphanAccount},
		{"duplicate code", dto.AddAccountRequest{Code: "1.10", Names: names("en", "Cash again")}, apperrors.ErrDuplicateCode},
		{"parent mismatch", dto.AddAccountRequest{Code: "1.40", Parent: &dto.ParentRef{Code: "2"}, Names: names("en", "Wrong")}, apperrors.ErrValidation},
		{"bad segment", dto.AddAccountRequest{Code: "1.a b", Names: names("en", "Spaces")}, apperrors.ErrValidation},
		{"no default name", dto.AddAccountRequest{Code: "1.40", Names: names("fr", "Seulement")}, apperrors.ErrMissingDefaultLanguage},
		{"sibling name", dto.AddAccountRequest{Code: "1.40", Names: names("en", "  CASH ")}, apperrors.ErrDuplicateName},
		{"bad normal balance", dto.AddAccountRequest{Code: "1.40", NormalBalance: "sideways", Names: names("en", "Odd")}, apperrors.ErrValidation},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.svc.Account.AddAccount(s.ctx, tt.req)
			s.ErrorIs(err, tt.err)
		})
	}

	// the same name is fine under another parent
	_, err := s.svc.Account.AddAccount(s.ctx, dto.AddAccountRequest{Code: "2.20", Names: names("en", "Cash")})
	s.NoError(err)
}

func (s *AccountServiceTestSuite) TestGetUnknown() {
	s.createLedger("")

	_, err := s.svc.Account.GetAccount(s.ctx, dto.GetAccountRequest{Code: "bob"})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *AccountServiceTestSuite) TestUpdateRevision() {
	s.createLedger("")

	_, err := s.svc.Account.UpdateAccount(s.ctx, dto.UpdateAccountRequest{Code: "1.10", Revision: "bogus", Closed: boolPtr(true)})
	s.ErrorIs(err, apperrors.ErrRevisionMismatch)

	current := s.get("1.10")
	updated, err := s.svc.Account.UpdateAccount(s.ctx, dto.UpdateAccountRequest{
		Code:     "1.10",
		Revision: current.Revision,
		Closed:   boolPtr(true),
		Names:    names("fr", "Encaisse"),
	})
	s.Require().NoError(err)
	s.True(updated.Closed)
	s.NotEqual(current.Revision, updated.Revision)
	s.Equal("Encaisse", nameOf(updated.Names, "fr"))
	s.Equal("Cash", nameOf(updated.Names, "en"))

	_, err = s.svc.Account.UpdateAccount(s.ctx, dto.UpdateAccountRequest{Code: "1.10", Revision: current.Revision, Closed: boolPtr(false)})
	s.ErrorIs(err, apperrors.ErrRevisionMismatch)
	s.True(s.get("1.10").Closed)
}

func (s *AccountServiceTestSuite) TestUpdateRemoveDefaultName() {
	s.createLedger("")
	current := s.get("1.20")

	_, err := s.svc.Account.UpdateAccount(s.ctx, dto.UpdateAccountRequest{Code: "1.20", Revision: current.Revision, Names: dropName("en")})
	s.ErrorIs(err, apperrors.ErrMissingDefaultLanguage)

	updated, err := s.svc.Account.UpdateAccount(s.ctx, dto.UpdateAccountRequest{Code: "1.20", Revision: current.Revision, Names: dropName("fr")})
	s.Require().NoError(err)
	s.Len(updated.Names, 1)
}

func (s *AccountServiceTestSuite) TestMoveCascades() {
	s.createLedger("")
	current := s.get("1.20")

	moved, err := s.svc.Account.UpdateAccount(s.ctx, dto.UpdateAccountRequest{
		Code:     "1.20",
		Revision: current.Revision,
		Parent:   &dto.ParentRef{Code: "2"},
	})
	s.Require().NoError(err)
	s.Equal("2.20", moved.Code)
	s.Equal("2", moved.ParentCode)
	s.Equal(current.UUID, moved.UUID)

	child := s.get("2.20.100")
	s.Equal("2.20", child.ParentCode)
	s.Equal(moved.UUID, *child.ParentUUID)

	_, err = s.svc.Account.GetAccount(s.ctx, dto.GetAccountRequest{Code: "1.20.100"})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *AccountServiceTestSuite) TestRename() {
	s.createLedger("")
	current := s.get("1.20")
	before := s.get("1.20.100")

	renamed, err := s.svc.Account.UpdateAccount(s.ctx, dto.UpdateAccountRequest{Code: "1.20", Revision: current.Revision, ToCode: "1.25"})
	s.Require().NoError(err)
	s.Equal("1.25", renamed.Code)

	child := s.get("1.25.100")
	s.Equal("1.25", child.ParentCode)
	s.NotEqual(before.Revision, child.Revision)
	s.True(child.UpdatedAt.After(before.UpdatedAt))

	_, err = s.svc.Account.UpdateAccount(s.ctx, dto.UpdateAccountRequest{Code: "1.25.100", Revision: before.Revision, Closed: boolPtr(true)})
	s.ErrorIs(err, apperrors.ErrRevisionMismatch)

	_, err = s.svc.Account.UpdateAccount(s.ctx, dto.UpdateAccountRequest{Code: "1.25.100", Revision: child.Revision, Closed: boolPtr(true)})
	s.NoError(err)
}

func (s *AccountServiceTestSuite) TestMoveFailures() {
	s.createLedger("")
	assets := s.get("1")
	receivables := s.get("1.20")

	tests := []struct {
		name string
		req  dto.UpdateAccountRequest
		err  error
	}{
		{"into own subtree", dto.UpdateAccountRequest{Code: "1", Revision: assets.Revision, ToCode: "1.20.100.1"}, apperrors.ErrCycleDetected},
		{"under itself", dto.UpdateAccountRequest{Code: "1.20", Revision: receivables.Revision, Parent: &dto.ParentRef{Code: "1.20"}}, apperrors.ErrCycleDetected},
		{"missing parent", dto.UpdateAccountRequest{Code: "1.20", Revision: receivables.Revision, ToCode: "7.20"}, apperrors.ErrOrphanAccount},
		{"taken code", dto.UpdateAccountRequest{Code: "1.20", Revision: receivables.Revision, ToCode: "2.10"}, apperrors.ErrDuplicateCode},
		{"parent disagrees with code", dto.UpdateAccountRequest{Code: "1.20", Revision: receivables.Revision, ToCode: "2.20", Parent: &dto.ParentRef{Code: "1"}}, apperrors.ErrValidation},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.svc.Account.UpdateAccount(s.ctx, tt.req)
			s.ErrorIs(err, tt.err)
		})
	}

	s.Equal(receivables.Revision, s.get("1.20").Revision)
	s.get("1.20.100")
}

func (s *AccountServiceTestSuite) TestMoveNameClash() {
	s.createLedger("")
	_, err := s.svc.Account.AddAccount(s.ctx, dto.AddAccountRequest{Code: "2.20", Names: names("en", "Cash")})
	s.Require().NoError(err)
	current := s.get("1.10")

	_, err = s.svc.Account.UpdateAccount(s.ctx, dto.UpdateAccountRequest{Code: "1.10", Revision: current.Revision, ToCode: "2.30"})
	s.ErrorIs(err, apperrors.ErrDuplicateName)
	s.get("1.10")
}

func (s *AccountServiceTestSuite) TestDelete() {
	s.createLedger("")

	parent := s.get("1.20")
	err := s.svc.Account.DeleteAccount(s.ctx, dto.DeleteAccountRequest{Code: "1.20", Revision: parent.Revision})
	s.ErrorIs(err, apperrors.ErrHasDependents)

	leaf := s.get("1.20.100")
	err = s.svc.Account.DeleteAccount(s.ctx, dto.DeleteAccountRequest{Code: "1.20.100", Revision: "bogus"})
	s.ErrorIs(err, apperrors.ErrRevisionMismatch)

	s.Require().NoError(s.svc.Account.DeleteAccount(s.ctx, dto.DeleteAccountRequest{Code: "1.20.100", Revision: leaf.Revision}))
	_, err = s.svc.Account.GetAccount(s.ctx, dto.GetAccountRequest{Code: "1.20.100"})
	s.ErrorIs(err, apperrors.ErrNotFound)

	// the freed name can be reused
	_, err = s.svc.Account.AddAccount(s.ctx, dto.AddAccountRequest{Code: "1.20.200", Names: names("en", "Trade Receivables")})
	s.NoError(err)
}

func (s *AccountServiceTestSuite) TestDeleteReferenced() {
	s.createLedger("")
	cash := s.get("1.10")
	s.store.AddReference(domain.RefAccount, cash.UUID)

	err := s.svc.Account.DeleteAccount(s.ctx, dto.DeleteAccountRequest{Code: "1.10", Revision: cash.Revision})
	s.ErrorIs(err, apperrors.ErrHasDependents)
}

func (s *AccountServiceTestSuite) TestQueryTemplatePages() {
	s.createLedger("manufacturer_1.0")

	pages, total := 0, 0
	req := dto.AccountQueryRequest{PageRequest: dto.PageRequest{Limit: 20}}
	last := ""
	for {
		page, err := s.svc.Account.QueryAccounts(s.ctx, req)
		s.Require().NoError(err)
		pages++
		total += len(page.Items)
		for _, a := range page.Items {
			s.Greater(a.Code, last)
			last = a.Code
		}
		if len(page.Items) != 20 {
			s.False(page.More)
			break
		}
		req.After = &dto.EntityRef{Code: page.Items[len(page.Items)-1].Code}
	}
	s.Equal(7, pages)
	s.Equal(139, total)
}

func (s *AccountServiceTestSuite) TestQueryNextToken() {
	s.createLedger("manufacturer_1.0")

	pages, total := 0, 0
	req := dto.AccountQueryRequest{PageRequest: dto.PageRequest{Limit: 20}}
	for {
		page, err := s.svc.Account.QueryAccounts(s.ctx, req)
		s.Require().NoError(err)
		pages++
		total += len(page.Items)
		if !page.More {
			s.Empty(page.NextToken)
			break
		}
		req.NextToken = page.NextToken
	}
	s.Equal(7, pages)
	s.Equal(139, total)

	_, err := s.svc.Account.QueryAccounts(s.ctx, dto.AccountQueryRequest{PageRequest: dto.PageRequest{NextToken: "%%%"}})
	s.ErrorIs(err, apperrors.ErrValidation)
}

func (s *AccountServiceTestSuite) TestQueryFilters() {
	s.createLedger("")

	codesOf := func(page *domain.Page[domain.Account]) []string {
		out := make([]string, len(page.Items))
		for i, a := range page.Items {
			out[i] = a.Code
		}
		return out
	}

	tests := []struct {
		name  string
		req   dto.AccountQueryRequest
		codes []string
	}{
		{"all", dto.AccountQueryRequest{}, []string{"1", "1.10", "1.20", "1.20.100", "2", "2.10"}},
		{"codes", dto.AccountQueryRequest{Codes: []string{"2.10", "1"}}, []string{"1", "2.10"}},
		{"range", dto.AccountQueryRequest{Range: &dto.CodeRange{From: "1.10", To: "1.20.100"}}, []string{"1.10", "1.20", "1.20.100"}},
		{"children", dto.AccountQueryRequest{Parent: &dto.ParentRef{Code: "1"}}, []string{"1.10", "1.20"}},
		{"top level", dto.AccountQueryRequest{Parent: &dto.ParentRef{}}, []string{"1", "2"}},
		{"category", dto.AccountQueryRequest{Category: boolPtr(true)}, []string{"1", "2"}},
		{"name", dto.AccountQueryRequest{Name: &dto.NameFilter{Text: "RECEIV"}}, []string{"1.20", "1.20.100"}},
		{"name in language", dto.AccountQueryRequest{Name: &dto.NameFilter{Language: "fr", Text: "clients"}}, []string{"1.20"}},
		{"conjunctive", dto.AccountQueryRequest{Parent: &dto.ParentRef{Code: "1"}, Name: &dto.NameFilter{Text: "cash"}}, []string{"1.10"}},
		{"after", dto.AccountQueryRequest{PageRequest: dto.PageRequest{After: &dto.EntityRef{Code: "1.20.100"}}}, []string{"2", "2.10"}},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			page, err := s.svc.Account.QueryAccounts(s.ctx, tt.req)
			s.Require().NoError(err)
			s.Equal(tt.codes, codesOf(page))
			s.False(page.More)
			for _, a := range page.Items {
				s.NotEmpty(a.Revision)
				s.NotEmpty(a.Names)
			}
		})
	}
}
