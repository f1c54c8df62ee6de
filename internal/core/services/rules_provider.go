package services

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/SscSPs/ledger_engine/internal/apperrors"
	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
)

type rulesProvider struct {
	store portsrepo.Store
	cache portsrepo.RulesCache

	// gen counts invalidations; a load that overlaps one does not write
	// back the rules it read.
	mu  sync.Mutex
	gen uint64
}

// NewRulesProvider serves ledger rules through cache, loading them from the
// ledger record on a miss.
func NewRulesProvider(store portsrepo.Store, cache portsrepo.RulesCache) portssvc.RulesProvider {
	return &rulesProvider{store: store, cache: cache}
}

var _ portssvc.RulesProvider = (*rulesProvider)(nil)

func (p *rulesProvider) Rules(ctx context.Context) (domain.Rules, error) {
	gen := p.generation()
	rules, ok, err := p.cache.Get(ctx)
	if err != nil {
		// a broken cache degrades to reading the ledger
		slog.WarnContext(ctx, "Rules cache read failed", slog.String("error", err.Error()))
	} else if ok {
		return rules, nil
	}
	return p.load(ctx, gen)
}

func (p *rulesProvider) generation() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.gen
}

func (p *rulesProvider) load(ctx context.Context, gen uint64) (domain.Rules, error) {
	ledger, err := p.store.Repositories().Ledger.FindLedger(ctx)
	if err != nil {
		return domain.Rules{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.gen != gen {
		return ledger.Rules, nil
	}
	if err := p.cache.Set(ctx, ledger.Rules); err != nil {
		slog.WarnContext(ctx, "Rules cache write failed", slog.String("error", err.Error()))
	}
	return ledger.Rules, nil
}

func (p *rulesProvider) Invalidate(ctx context.Context) error {
	p.mu.Lock()
	p.gen++
	p.mu.Unlock()
	return p.cache.Delete(ctx)
}

func (p *rulesProvider) Reset(ctx context.Context) error {
	if err := p.Invalidate(ctx); err != nil {
		return err
	}
	if _, err := p.load(ctx, p.generation()); err != nil && !errors.Is(err, apperrors.ErrNoLedger) {
		return err
	}
	return nil
}
