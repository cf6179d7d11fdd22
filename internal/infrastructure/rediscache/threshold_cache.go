package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sachingiri58/Sachin-Giri-backend-case-study/internal/application/usecase"
)

const thresholdKey = "inventory:stock_thresholds"

var _ usecase.ThresholdCache = (*ThresholdCache)(nil)

// ThresholdCache caches the stock-threshold table in Redis as one JSON blob.
// The table is small and changes rarely; a short TTL keeps manual edits
// visible without a purge hook.
type ThresholdCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewThresholdCache builds the cache. ttl <= 0 defaults to 5 minutes.
func NewThresholdCache(rdb *redis.Client, ttl time.Duration) *ThresholdCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &ThresholdCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached threshold map, or (nil, nil) on a miss.
func (c *ThresholdCache) Get(ctx context.Context) (map[string]int64, error) {
	raw, err := c.rdb.Get(ctx, thresholdKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis get thresholds: %w", err)
	}
	var thresholds map[string]int64
	if err := json.Unmarshal(raw, &thresholds); err != nil {
		// Corrupt entry: treat as a miss so the DB read repopulates it.
		return nil, nil
	}
	return thresholds, nil
}

// Set stores the threshold map with the configured TTL.
func (c *ThresholdCache) Set(ctx context.Context, thresholds map[string]int64) error {
	raw, err := json.Marshal(thresholds)
	if err != nil {
		return fmt.Errorf("marshal thresholds: %w", err)
	}
	if err := c.rdb.Set(ctx, thresholdKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set thresholds: %w", err)
	}
	return nil
}
