package services

import (
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/ledger_engine/internal/core/ports/services"
	"github.com/SscSPs/ledger_engine/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, store portsrepo.Store, cache portsrepo.RulesCache, options ...ServiceOption) *portssvc.ServiceContainer {
	if cfg != nil {
		options = append([]ServiceOption{WithQueryLimits(cfg.QueryDefaultLimit, cfg.QueryMaxLimit)}, options...)
	}

	// Rules are shared by every manager, so they are built first
	rules := NewRulesProvider(store, cache)

	return &portssvc.ServiceContainer{
		Ledger:     NewLedgerService(store, rules, options...),
		Rules:      rules,
		Currency:   NewCurrencyService(store, rules, options...),
		Domain:     NewDomainService(store, rules, options...),
		Account:    NewAccountService(store, rules, options...),
		SubJournal: NewSubJournalService(store, rules, options...),
	}
}
