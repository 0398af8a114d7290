// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookshelf/internal/core/catalog"
	redisstore "github.com/taibuivan/bookshelf/internal/platform/redis"
)

/*
TestRedisSummaryCache_UnreachableServerIsAnError makes sure a dead cache is
reported, not mistaken for a miss; the service then falls back to the store.
*/
func TestRedisSummaryCache_UnreachableServerIsAnError(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })
	cache := catalog.NewRedisSummaryCache(client, time.Minute)

	summary, _, err := cache.Get(context.Background())

	assert.Error(t, err)
	assert.Nil(t, summary)
}

func TestRedisSummaryCache_RoundTrip(t *testing.T) {
	redisURL := os.Getenv("TEST_REDIS_URL")
	if redisURL == "" {
		t.Skip("TEST_REDIS_URL not set")
	}

	ctx := context.Background()
	client, err := redisstore.NewClient(ctx, redisURL, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	cache := catalog.NewRedisSummaryCache(client, time.Minute)
	require.NoError(t, cache.Invalidate(ctx))

	miss, generation, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, miss)

	totals := catalog.Summary{TotalBooks: 10, TotalAuthors: 7}
	require.NoError(t, cache.Set(ctx, totals, generation))

	hit, _, err := cache.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, hit)
	assert.Equal(t, totals, *hit)

	require.NoError(t, cache.Invalidate(ctx))
	miss, _, err = cache.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, miss)
}

func TestRedisSummaryCache_SetAfterInvalidateIsDropped(t *testing.T) {
	redisURL := os.Getenv("TEST_REDIS_URL")
	if redisURL == "" {
		t.Skip("TEST_REDIS_URL not set")
	}

	ctx := context.Background()
	client, err := redisstore.NewClient(ctx, redisURL, discardLogger())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	cache := catalog.NewRedisSummaryCache(client, time.Minute)
	require.NoError(t, cache.Invalidate(ctx))

	_, before, err := cache.Get(ctx)
	require.NoError(t, err)

	require.NoError(t, cache.Invalidate(ctx))
	require.NoError(t, cache.Set(ctx, catalog.Summary{TotalBooks: 1}, before))

	miss, after, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, miss)
	assert.Greater(t, after, before)
}
