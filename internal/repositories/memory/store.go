// Package memory is an in-process implementation of the ledger store. A
// transaction works on a private copy of the state which replaces the
// published state on commit, so readers never observe partial changes.
package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	"github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
)

var errReadOnly = errors.New("memory store: write outside a transaction")

// Store keeps the whole ledger in memory.
type Store struct {
	writeMu sync.Mutex // serializes transactions
	mu      sync.RWMutex
	cur     *state
}

var _ repositories.Store = (*Store)(nil)

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{cur: newState()}
}

func (s *Store) snapshot() *state {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Repositories returns read-only repositories over the published state.
func (s *Store) Repositories() repositories.RepositoryProvider {
	return provider(&base{st: s.snapshot()})
}

// InTx runs fn against a private copy of the state and publishes it when fn succeeds.
func (s *Store) InTx(ctx context.Context, fn repositories.TxFunc) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	work := s.snapshot().clone()
	if err := fn(provider(&base{st: work, writable: true})); err != nil {
		return err
	}

	s.mu.Lock()
	s.cur = work
	s.mu.Unlock()
	return nil
}

// Close is a no-op.
func (s *Store) Close() {}

// Reset drops all data.
func (s *Store) Reset() {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	s.mu.Lock()
	s.cur = newState()
	s.mu.Unlock()
}

// AddReference records a journal reference to an entity, standing in for
// posted journal entries.
func (s *Store) AddReference(kind domain.ReferenceKind, uuid string) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()
	work := s.snapshot().clone()
	work.references[refKey(kind, uuid)] = struct{}{}
	s.mu.Lock()
	s.cur = work
	s.mu.Unlock()
}

type base struct {
	st       *state
	writable bool
}

func (b *base) checkWritable() error {
	if !b.writable {
		return errReadOnly
	}
	return nil
}

func provider(b *base) repositories.RepositoryProvider {
	return repositories.RepositoryProvider{
		Ledger:      &ledgerRepository{base: b},
		Currencies:  &currencyRepository{base: b},
		Domains:     &domainRepository{base: b},
		Accounts:    &accountRepository{base: b},
		SubJournals: &subJournalRepository{base: b},
		Names:       &nameRepository{base: b},
		References:  &referenceChecker{base: b},
	}
}
