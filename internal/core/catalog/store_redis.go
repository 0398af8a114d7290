// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/bookshelf/internal/platform/constants"
)

// RedisSummaryCache implements [SummaryCache] using Redis.
//
// Totals live under one key and a counter under another. Invalidate bumps the
// counter, and Set only writes while the counter still holds the value its
// caller read, so totals computed before a mutation are never stored after it.
type RedisSummaryCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSummaryCache creates a Redis-backed summary cache whose entries
// expire after ttl even when no mutation invalidates them.
func NewRedisSummaryCache(client *redis.Client, ttl time.Duration) *RedisSummaryCache {
	return &RedisSummaryCache{client: client, ttl: ttl}
}

/*
Get returns the cached totals and the current generation.

Returns:
  - *Summary: The cached totals, or nil on a miss
  - int64: The generation to hand back to [RedisSummaryCache.Set]
  - error: Connectivity or decoding errors
*/
func (cache *RedisSummaryCache) Get(context context.Context) (*Summary, int64, error) {
	values, err := cache.client.MGet(context, constants.RedisKeyCatalogSummary, constants.RedisKeyCatalogSummaryGeneration).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("redis_summary_get_failed: %w", err)
	}

	generation, err := parseGeneration(values[1])
	if err != nil {
		return nil, 0, err
	}

	payload, ok := values[0].(string)
	if !ok {
		return nil, generation, nil
	}

	var summary Summary
	if err := json.Unmarshal([]byte(payload), &summary); err != nil {
		return nil, generation, fmt.Errorf("redis_summary_decode_failed: %w", err)
	}
	return &summary, generation, nil
}

// Set stores summary unless the generation moved since it was read. A skipped
// write is not an error.
func (cache *RedisSummaryCache) Set(context context.Context, summary Summary, generation int64) error {
	payload, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("redis_summary_encode_failed: %w", err)
	}

	err = cache.client.Watch(context, func(tx *redis.Tx) error {
		raw, err := tx.Get(context, constants.RedisKeyCatalogSummaryGeneration).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		current, err := parseGeneration(raw)
		if err != nil {
			return err
		}
		if current != generation {
			return nil
		}

		_, err = tx.TxPipelined(context, func(pipe redis.Pipeliner) error {
			pipe.Set(context, constants.RedisKeyCatalogSummary, payload, cache.ttl)
			return nil
		})
		return err
	}, constants.RedisKeyCatalogSummaryGeneration)

	// The watched counter changed between the read and the write.
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("redis_summary_set_failed: %w", err)
	}
	return nil
}

// Invalidate drops the totals and advances the generation in one transaction.
func (cache *RedisSummaryCache) Invalidate(context context.Context) error {
	_, err := cache.client.TxPipelined(context, func(pipe redis.Pipeliner) error {
		pipe.Incr(context, constants.RedisKeyCatalogSummaryGeneration)
		pipe.Del(context, constants.RedisKeyCatalogSummary)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis_summary_invalidate_failed: %w", err)
	}
	return nil
}

// parseGeneration reads the counter as MGET or GET returns it. A missing
// counter is generation zero.
func parseGeneration(raw any) (int64, error) {
	text, ok := raw.(string)
	if !ok || text == "" {
		return 0, nil
	}
	generation, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("redis_summary_generation_invalid: %w", err)
	}
	return generation, nil
}
