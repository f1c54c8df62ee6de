package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/ledger_engine/internal/cache"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/core/services"
	"github.com/SscSPs/ledger_engine/internal/dto"
	"github.com/SscSPs/ledger_engine/internal/repositories/memory"
	"github.com/stretchr/testify/suite"
)

// ledgerSuite runs the services against the in-memory store.
type ledgerSuite struct {
	suite.Suite
	ctx   context.Context
	store *memory.Store
	svc   *portssvc.ServiceContainer
	clock time.Time
}

func (s *ledgerSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.NewStore()
	s.clock = time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	s.svc = services.NewServiceContainer(nil, s.store, cache.NewMemoryRulesCache(0), services.WithClock(s.tick))
}

func (s *ledgerSuite) tick() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func strPtr(v string) *string { return &v }
func boolPtr(v bool) *bool    { return &v }

// names builds a names list from language, name pairs.
func names(pairs ...string) []dto.NameRequest {
	out := make([]dto.NameRequest, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, dto.NameRequest{Language: pairs[i], Name: strPtr(pairs[i+1])})
	}
	return out
}

// dropName removes language from a name set.
func dropName(language string) []dto.NameRequest {
	return []dto.NameRequest{{Language: language}}
}

func nameOf(list []domain.Name, language string) string {
	for _, n := range list {
		if n.Language == language {
			return n.Name
		}
	}
	return ""
}

// createLedger bootstraps the ledger used by most tests: currency CAD, the
// default domain Corp and a small chart unless a template is given.
func (s *ledgerSuite) createLedger(template string) *domain.Ledger {
	req := dto.CreateLedgerRequest{
		Template:   template,
		Currencies: []dto.AddCurrencyRequest{{Code: "CAD", Decimals: 2}},
		Domains: []dto.AddDomainRequest{{
			Code:     "Corp",
			Currency: "CAD",
			Names:    names("en", "General Corporate", "en-JOCK", "Head Office", "fr", "Siège social"),
		}},
		Journals: []dto.AddSubJournalRequest{{Code: "GJ", Names: names("en", "General Journal")}},
	}
	if template == "" {
		req.Language = "en"
		req.Accounts = []dto.AddAccountRequest{
			{Code: "1", Category: true, NormalBalance: "DEBIT", Names: names("en", "Assets")},
			{Code: "1.10", Names: names("en", "Cash")},
			{Code: "1.20", Names: names("en", "Receivables", "fr", "Comptes clients")},
			{Code: "1.20.100", Names: names("en", "Trade Receivables")},
			{Code: "2", Category: true, NormalBalance: "CREDIT", Names: names("en", "Liabilities")},
			{Code: "2.10", Names: names("en", "Payables")},
		}
	}

	ledger, err := s.svc.Ledger.CreateLedger(s.ctx, req)
	s.Require().NoError(err)
	return ledger
}
