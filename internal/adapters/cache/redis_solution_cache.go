package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"route-optimizer-service/internal/domain"
	"route-optimizer-service/internal/platform/obs"
)

// RedisSolutionCache caches computed solutions keyed by input fingerprint.
// The solver is deterministic, so a cached entry stays valid until the
// underlying fleet or location data changes; the TTL bounds staleness after
// such changes.
type RedisSolutionCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisSolutionCache(rdb *redis.Client, ttl time.Duration) *RedisSolutionCache {
	return &RedisSolutionCache{rdb: rdb, ttl: ttl}
}

func (c *RedisSolutionCache) key(fingerprint string) string {
	return "solution:" + fingerprint
}

// Return the cached solution for a fingerprint; ok is false on a miss.
func (c *RedisSolutionCache) Get(ctx context.Context, fingerprint string) (_ *domain.Solution, _ bool, err error) {
	defer obs.Time(ctx, "solution.cache.Get")(&err)

	if c.rdb == nil {
		return nil, false, errors.New("solution cache: redis client is nil")
	}

	if fingerprint == "" {
		return nil, false, errors.New("get solution cache: fingerprint must not be empty")
	}

	payload, err := c.rdb.Get(ctx, c.key(fingerprint)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get solution cache: redis get: %w", err)
	}

	var sol domain.Solution
	if err := json.Unmarshal(payload, &sol); err != nil {
		return nil, false, fmt.Errorf("get solution cache: decode payload: %w", err)
	}

	return &sol, true, nil
}

// Store a solution under a fingerprint with the configured TTL.
func (c *RedisSolutionCache) Put(ctx context.Context, fingerprint string, sol domain.Solution) (err error) {
	defer obs.Time(ctx, "solution.cache.Put")(&err)

	if c.rdb == nil {
		return errors.New("solution cache: redis client is nil")
	}

	if fingerprint == "" {
		return errors.New("put solution cache: fingerprint must not be empty")
	}

	payload, err := json.Marshal(sol)
	if err != nil {
		return fmt.Errorf("put solution cache: encode payload: %w", err)
	}

	if err := c.rdb.Set(ctx, c.key(fingerprint), payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("put solution cache: redis set: %w", err)
	}

	return nil
}
