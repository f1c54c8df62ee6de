package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/ledger_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/ledger_engine/internal/core/ports/repositories"
	"github.com/redis/go-redis/v9"
)

// DefaultRulesKey is the redis key holding the serialized rules.
const DefaultRulesKey = "ledger:rules"

// RedisRulesCache shares the rules between service instances.
type RedisRulesCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisClient parses a redis:// URL and checks the connection.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("pinging redis: %w", err)
	}
	return client, nil
}

// NewRedisRulesCache stores the rules under key with the given ttl.
func NewRedisRulesCache(client *redis.Client, key string, ttl time.Duration) *RedisRulesCache {
	if key == "" {
		key = DefaultRulesKey
	}
	return &RedisRulesCache{client: client, key: key, ttl: ttl}
}

var _ portsrepo.RulesCache = (*RedisRulesCache)(nil)

func (c *RedisRulesCache) Get(ctx context.Context) (domain.Rules, bool, error) {
	raw, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Rules{}, false, nil
	}
	if err != nil {
		return domain.Rules{}, false, fmt.Errorf("reading cached rules: %w", err)
	}
	var rules domain.Rules
	if err := json.Unmarshal(raw, &rules); err != nil {
		return domain.Rules{}, false, fmt.Errorf("decoding cached rules: %w", err)
	}
	return rules, true, nil
}

func (c *RedisRulesCache) Set(ctx context.Context, rules domain.Rules) error {
	raw, err := json.Marshal(rules)
	if err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	if err := c.client.Set(ctx, c.key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("caching rules: %w", err)
	}
	return nil
}

func (c *RedisRulesCache) Delete(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("dropping cached rules: %w", err)
	}
	return nil
}
