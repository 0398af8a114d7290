// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"log/slog"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestVisitors_SweepForgetsIdleClients(t *testing.T) {
	clients := &visitors{rps: rate.Limit(1), burst: 1, clients: make(map[string]*visitor)}
	start := time.Now()

	assert.True(t, clients.allow("10.0.0.1", start))
	assert.False(t, clients.allow("10.0.0.1", start), "burst of one is spent")
	assert.True(t, clients.allow("10.0.0.2", start.Add(2*time.Minute)))

	clients.sweep(start.Add(3*time.Minute), time.Minute+30*time.Second)

	assert.NotContains(t, clients.clients, "10.0.0.1")
	assert.Contains(t, clients.clients, "10.0.0.2")
}

func TestAccessLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, accessLevel("/static/style.css", http.StatusOK))
	assert.Equal(t, slog.LevelDebug, accessLevel("/health", http.StatusOK))
	assert.Equal(t, slog.LevelInfo, accessLevel("/", http.StatusOK))
	assert.Equal(t, slog.LevelInfo, accessLevel("/book/1/delete", http.StatusSeeOther))
	assert.Equal(t, slog.LevelWarn, accessLevel("/book/abc", http.StatusNotFound))
	assert.Equal(t, slog.LevelError, accessLevel("/ready", http.StatusServiceUnavailable))
}
