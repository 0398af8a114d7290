// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ctxutil_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/bookshelf/internal/platform/ctxutil"
)

func TestRequestID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, ctxutil.GetRequestID(ctx))

	ctx = ctxutil.WithRequestID(ctx, "0190b7c4-request")
	assert.Equal(t, "0190b7c4-request", ctxutil.GetRequestID(ctx))
}

/*
TestLogger covers both lookups: GetLogger falls back to the process default,
LoggerOr to the caller's own logger.
*/
func TestLogger(t *testing.T) {
	requestLogger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	serviceLogger := slog.New(slog.NewTextHandler(io.Discard, nil))

	empty := context.Background()
	assert.Same(t, slog.Default(), ctxutil.GetLogger(empty))
	assert.Same(t, serviceLogger, ctxutil.LoggerOr(empty, serviceLogger))

	scoped := ctxutil.WithLogger(empty, requestLogger)
	assert.Same(t, requestLogger, ctxutil.GetLogger(scoped))
	assert.Same(t, requestLogger, ctxutil.LoggerOr(scoped, serviceLogger))

	assert.Same(t, serviceLogger, ctxutil.LoggerOr(ctxutil.WithLogger(empty, nil), serviceLogger))
}
