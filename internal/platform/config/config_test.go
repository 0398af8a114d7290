// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookshelf/internal/platform/config"
	"github.com/taibuivan/bookshelf/internal/platform/postgres"
)

/*
TestLoad_Defaults verifies default values when only required variables are set.
*/
func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/bookshelf")

	cfg, err := config.LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "5002", cfg.ServerPort)
	assert.Empty(t, cfg.MigrationPath)
	assert.Equal(t, postgres.Options{MaxConns: 10, MinConns: 1, StatementTimeout: 30 * time.Second}, cfg.PoolOptions())
	assert.Equal(t, 5*time.Minute, cfg.SummaryCacheTTL)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.CacheEnabled())
}

/*
TestLoad_MissingDatabaseURL ensures the required variable is enforced.
*/
func TestLoad_MissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	require.NoError(t, os.Unsetenv("DATABASE_URL"))

	_, err := config.LoadFrom(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

/*
TestLoad_DotEnv reads variables from a dotenv file without overriding the environment.
*/
func TestLoad_DotEnv(t *testing.T) {
	dotenv := filepath.Join(t.TempDir(), ".env")
	content := "DATABASE_URL=postgres://file/bookshelf\nSERVER_PORT=9000\nREDIS_URL=redis://localhost:6379/0\n"
	require.NoError(t, os.WriteFile(dotenv, []byte(content), 0o600))

	t.Setenv("SERVER_PORT", "7000")
	t.Setenv("DATABASE_URL", "")
	require.NoError(t, os.Unsetenv("DATABASE_URL"))
	t.Setenv("REDIS_URL", "")
	require.NoError(t, os.Unsetenv("REDIS_URL"))

	cfg, err := config.LoadFrom(dotenv)
	require.NoError(t, err)

	assert.Equal(t, "postgres://file/bookshelf", cfg.DatabaseURL)
	assert.Equal(t, "7000", cfg.ServerPort)
	assert.True(t, cfg.CacheEnabled())
}
