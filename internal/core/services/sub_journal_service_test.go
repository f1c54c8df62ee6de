package services_test

import (
	"testing"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/stretchr/testify/suite"
)

type SubJournalServiceTestSuite struct {
	ledgerSuite
}

func TestSubJournalService(t *testing.T) {
	suite.Run(t, new(SubJournalServiceTestSuite))
}

func salesJournal() dto.AddSubJournalRequest {
	return dto.AddSubJournalRequest{Code: "SJ", Names: names("en", "Sales Journal", "fr", "Journal des ventes")}
}

func (s *SubJournalServiceTestSuite) TestAddNoLedger() {
	_, err := s.svc.SubJournal.AddSubJournal(s.ctx, salesJournal())
	s.ErrorIs(err, apperrors.ErrNoLedger)
}

func (s *SubJournalServiceTestSuite) TestAdd() {
	s.createLedger("")

	j, err := s.svc.SubJournal.AddSubJournal(s.ctx, salesJournal())
	s.Require().NoError(err)
	s.Equal("SJ", j.Code)
	s.Len(j.Names, 2)
	s.NotEmpty(j.Revision)

	_, err = s.svc.SubJournal.AddSubJournal(s.ctx, dto.AddSubJournalRequest{Code: "sj", Names: names("en", "Another")})
	s.ErrorIs(err, apperrors.ErrDuplicateCode)

	_, err = s.svc.SubJournal.AddSubJournal(s.ctx, dto.AddSubJournalRequest{Code: "PJ", Names: names("en", "sales journal")})
	s.ErrorIs(err, apperrors.ErrDuplicateName)

	// domains and sub-journals do not share a name scope
	_, err = s.svc.SubJournal.AddSubJournal(s.ctx, dto.AddSubJournalRequest{Code: "CJ", Names: names("en", "General Corporate")})
	s.NoError(err)
}

func (s *SubJournalServiceTestSuite) TestGet() {
	s.createLedger("")
	_, err := s.svc.SubJournal.AddSubJournal(s.ctx, salesJournal())
	s.Require().NoError(err)

	j, err := s.svc.SubJournal.GetSubJournal(s.ctx, dto.GetSubJournalRequest{Code: "sj"})
	s.Require().NoError(err)
	s.Equal("SJ", j.Code)
	s.Equal("Journal des ventes", nameOf(j.Names, "fr"))

	_, err = s.svc.SubJournal.GetSubJournal(s.ctx, dto.GetSubJournalRequest{Code: "bob"})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *SubJournalServiceTestSuite) TestUpdate() {
	s.createLedger("")
	added, err := s.svc.SubJournal.AddSubJournal(s.ctx, salesJournal())
	s.Require().NoError(err)

	_, err = s.svc.SubJournal.UpdateSubJournal(s.ctx, dto.UpdateSubJournalRequest{Code: "SJ", Revision: "bogus", ToCode: "EJ"})
	s.ErrorIs(err, apperrors.ErrRevisionMismatch)

	updated, err := s.svc.SubJournal.UpdateSubJournal(s.ctx, dto.UpdateSubJournalRequest{
		Code:     "SJ",
		Revision: added.Revision,
		ToCode:   "ej",
		Names:    names("en", "Expense Journal"),
	})
	s.Require().NoError(err)
	s.Equal("EJ", updated.Code)
	s.Equal("Expense Journal", nameOf(updated.Names, "en"))

	_, err = s.svc.SubJournal.UpdateSubJournal(s.ctx, dto.UpdateSubJournalRequest{Code: "EJ", Revision: added.Revision, Extra: strPtr("x")})
	s.ErrorIs(err, apperrors.ErrRevisionMismatch)

	_, err = s.svc.SubJournal.UpdateSubJournal(s.ctx, dto.UpdateSubJournalRequest{Code: "EJ", Revision: updated.Revision, ToCode: "GJ"})
	s.ErrorIs(err, apperrors.ErrDuplicateCode)

	_, err = s.svc.SubJournal.GetSubJournal(s.ctx, dto.GetSubJournalRequest{Code: "SJ"})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *SubJournalServiceTestSuite) TestDelete() {
	s.createLedger("")
	added, err := s.svc.SubJournal.AddSubJournal(s.ctx, salesJournal())
	s.Require().NoError(err)

	s.Require().NoError(s.svc.SubJournal.DeleteSubJournal(s.ctx, dto.DeleteSubJournalRequest{Code: "SJ", Revision: added.Revision}))
	_, err = s.svc.SubJournal.GetSubJournal(s.ctx, dto.GetSubJournalRequest{Code: "SJ"})
	s.ErrorIs(err, apperrors.ErrNotFound)

	err = s.svc.SubJournal.DeleteSubJournal(s.ctx, dto.DeleteSubJournalRequest{Code: "SJ", Revision: added.Revision})
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *SubJournalServiceTestSuite) TestDeleteReferenced() {
	s.createLedger("")
	gj, err := s.svc.SubJournal.GetSubJournal(s.ctx, dto.GetSubJournalRequest{Code: "GJ"})
	s.Require().NoError(err)
	s.store.AddReference(domain.RefSubJournal, gj.UUID)

	err = s.svc.SubJournal.DeleteSubJournal(s.ctx, dto.DeleteSubJournalRequest{Code: "GJ", Revision: gj.Revision})
	s.ErrorIs(err, apperrors.ErrHasDependents)
}

func (s *SubJournalServiceTestSuite) TestQuery() {
	s.createLedger("")
	_, err := s.svc.SubJournal.AddSubJournal(s.ctx, salesJournal())
	s.Require().NoError(err)

	page, err := s.svc.SubJournal.QuerySubJournals(s.ctx, dto.SubJournalQueryRequest{})
	s.Require().NoError(err)
	s.Require().Len(page.Items, 2)
	s.Equal("GJ", page.Items[0].Code)
	s.Equal("SJ", page.Items[1].Code)
	s.False(page.More)

	page, err = s.svc.SubJournal.QuerySubJournals(s.ctx, dto.SubJournalQueryRequest{Codes: []string{"sj"}})
	s.Require().NoError(err)
	s.Require().Len(page.Items, 1)
	s.Equal("Sales Journal", nameOf(page.Items[0].Names, "en"))

	page, err = s.svc.SubJournal.QuerySubJournals(s.ctx, dto.SubJournalQueryRequest{PageRequest: dto.PageRequest{After: &dto.EntityRef{Code: "GJ"}}})
	s.Require().NoError(err)
	s.Len(page.Items, 1)
}
