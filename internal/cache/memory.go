// Package cache implements the rules cache used by the rules provider.
package cache

import (
	"context"
	"sync"
	"time"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
)

// MemoryRulesCache keeps the rules in process. A zero ttl never expires.
type MemoryRulesCache struct {
	mu      sync.RWMutex
	rules   domain.Rules
	set     bool
	expires time.Time
	ttl     time.Duration
	now     func() time.Time
}

// NewMemoryRulesCache creates an in-process rules cache.
func NewMemoryRulesCache(ttl time.Duration) *MemoryRulesCache {
	return &MemoryRulesCache{ttl: ttl, now: time.Now}
}

var _ portsrepo.RulesCache = (*MemoryRulesCache)(nil)

func (c *MemoryRulesCache) Get(_ context.Context) (domain.Rules, bool, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.set || (c.ttl > 0 && !c.now().Before(c.expires)) {
		return domain.Rules{}, false, nil
	}
	return c.rules, true, nil
}

func (c *MemoryRulesCache) Set(_ context.Context, rules domain.Rules) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rules = rules
	c.set = true
	c.expires = c.now().Add(c.ttl)
	return nil
}

func (c *MemoryRulesCache) Delete(_ context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rules = domain.Rules{}
	c.set = false
	return nil
}
