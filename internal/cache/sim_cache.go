// backend-go/internal/cache/sim_cache.go
package cache

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/andresuchdata/inventory-sim/backend-go/internal/config"
	"github.com/andresuchdata/inventory-sim/backend-go/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	simResultKeyPrefix = "sim:result"
	scanBatchSize      = 100
	defaultResultTTL   = 5 * time.Minute
)

// SimResultCache memoizes simulation results by (asin, parameter set)
// identity. The engine itself never caches; this sits in front of it.
type SimResultCache interface {
	Get(ctx context.Context, asin string, params domain.SimParams) (*domain.SimResult, bool, error)
	Set(ctx context.Context, asin string, params domain.SimParams, result *domain.SimResult) error
	InvalidateAll(ctx context.Context) error
}

type redisSimCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopSimCache struct{}

// NewSimResultCache returns a redis-backed cache, or the noop cache when
// caching is disabled.
func NewSimResultCache(cfg config.CacheConfig) (SimResultCache, error) {
	if !cfg.Enabled {
		return &noopSimCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisSimCache{client: client, ttl: ttl}, nil
}

func NewNoopSimResultCache() SimResultCache {
	return &noopSimCache{}
}

func (c *redisSimCache) Get(ctx context.Context, asin string, params domain.SimParams) (*domain.SimResult, bool, error) {
	key := buildSimResultKey(asin, params)

	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get failed: %w", err)
	}

	var result domain.SimResult
	if err := json.Unmarshal(payload, &result); err != nil {
		return nil, false, fmt.Errorf("decode sim result cache: %w", err)
	}

	return &result, true, nil
}

func (c *redisSimCache) Set(ctx context.Context, asin string, params domain.SimParams, result *domain.SimResult) error {
	key := buildSimResultKey(asin, params)
	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("encode sim result cache: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}

	return nil
}

func (c *redisSimCache) InvalidateAll(ctx context.Context) error {
	return deleteKeysWithPrefix(ctx, c.client, simResultKeyPrefix, scanBatchSize)
}

func (n *noopSimCache) Get(ctx context.Context, asin string, params domain.SimParams) (*domain.SimResult, bool, error) {
	return nil, false, nil
}

func (n *noopSimCache) Set(ctx context.Context, asin string, params domain.SimParams, result *domain.SimResult) error {
	return nil
}

func (n *noopSimCache) InvalidateAll(ctx context.Context) error {
	return nil
}

// buildSimResultKey hashes the ASIN plus the full parameter set so any knob
// change produces a distinct cache entry.
func buildSimResultKey(asin string, params domain.SimParams) string {
	raw := fmt.Sprintf("asin=%s|h=%d|lt=%d|rp=%d|sl=%.6f|sf=%.6f|n=%d|seed=%d",
		asin,
		params.HorizonWeeks,
		params.LeadTimeWeeks,
		params.ReviewPeriodWeeks,
		params.ServiceLevel,
		params.SafetyFactor,
		params.NumSimulations,
		params.EffectiveSeed(),
	)
	hash := sha1.Sum([]byte(raw))
	return fmt.Sprintf("%s:%s", simResultKeyPrefix, hex.EncodeToString(hash[:]))
}
