// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/bookshelf/internal/platform/redis"
)

func TestNewClient_RejectsInvalidURL(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	client, err := redis.NewClient(context.Background(), "http://not-redis", logger)

	assert.Nil(t, client)
	assert.ErrorContains(t, err, "invalid URL")
}
