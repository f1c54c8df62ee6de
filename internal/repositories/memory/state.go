package memory

import (
	"sort"
	"strings"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
)

// state is one immutable-once-published version of the whole ledger.
type state struct {
	ledger     *domain.Ledger
	currencies map[string]domain.Currency     // by code
	domains    map[string]domain.LedgerDomain // by uuid
	accounts   map[string]domain.Account      // by uuid
	journals   map[string]domain.SubJournal   // by uuid
	names      map[string][]domain.NameRecord // by owner uuid
	references map[string]struct{}            // kind:uuid
}

func newState() *state {
	return &state{
		currencies: map[string]domain.Currency{},
		domains:    map[string]domain.LedgerDomain{},
		accounts:   map[string]domain.Account{},
		journals:   map[string]domain.SubJournal{},
		names:      map[string][]domain.NameRecord{},
		references: map[string]struct{}{},
	}
}

func (s *state) clone() *state {
	c := newState()
	if s.ledger != nil {
		l := *s.ledger
		c.ledger = &l
	}
	for k, v := range s.currencies {
		c.currencies[k] = v
	}
	for k, v := range s.domains {
		c.domains[k] = v
	}
	for k, v := range s.accounts {
		c.accounts[k] = v
	}
	for k, v := range s.journals {
		c.journals[k] = v
	}
	for k, v := range s.names {
		c.names[k] = append([]domain.NameRecord(nil), v...)
	}
	for k := range s.references {
		c.references[k] = struct{}{}
	}
	return c
}

func (s *state) namesOf(owner string) []domain.Name {
	records := s.names[owner]
	names := make([]domain.Name, 0, len(records))
	for _, r := range records {
		names = append(names, domain.Name{Language: r.Language, Name: r.Name})
	}
	sort.Slice(names, func(i, j int) bool { return names[i].Language < names[j].Language })
	return names
}

func (s *state) nameMatches(owner, language, contains string) bool {
	for _, r := range s.names[owner] {
		if language != "" && !strings.EqualFold(r.Language, language) {
			continue
		}
		if strings.Contains(r.Normalized, contains) {
			return true
		}
	}
	return false
}

// inCodeFilter applies the shared code predicates.
func inCodeFilter(code string, f repositories.CodeFilter) bool {
	if len(f.Codes) > 0 {
		found := false
		for _, c := range f.Codes {
			if c == code {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if f.RangeFrom != "" && code < f.RangeFrom {
		return false
	}
	if f.RangeTo != "" && code > f.RangeTo {
		return false
	}
	return true
}

// page sorts items by code and applies the keyset window.
func page[T any](items []T, code func(T) string, q repositories.PageQuery) []T {
	sort.Slice(items, func(i, j int) bool { return code(items[i]) < code(items[j]) })
	out := make([]T, 0, q.Limit)
	for _, it := range items {
		if q.After != "" && code(it) <= q.After {
			continue
		}
		if q.Limit > 0 && len(out) == q.Limit {
			break
		}
		out = append(out, it)
	}
	return out
}
