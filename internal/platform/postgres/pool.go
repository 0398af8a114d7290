// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package postgres owns the catalog's PostgreSQL connection pool and the
// transaction helper the store uses for multi-statement writes.
package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// # Pool Options

// Options sizes the pool. Zero values fall back to [DefaultOptions].
type Options struct {
	MaxConns         int32
	MinConns         int32
	StatementTimeout time.Duration
}

// DefaultOptions suits a single reader browsing their own shelf.
var DefaultOptions = Options{
	MaxConns:         10,
	MinConns:         1,
	StatementTimeout: 30 * time.Second,
}

const (
	connLifetime   = time.Hour
	connIdleTime   = 10 * time.Minute
	healthPeriod   = time.Minute
	connectTimeout = 5 * time.Second
	pingTimeout    = 2 * time.Second
)

func (options Options) withDefaults() Options {
	if options.MaxConns <= 0 {
		options.MaxConns = DefaultOptions.MaxConns
	}
	if options.MinConns < 0 {
		options.MinConns = 0
	}
	if options.MinConns > options.MaxConns {
		options.MinConns = options.MaxConns
	}
	if options.StatementTimeout <= 0 {
		options.StatementTimeout = DefaultOptions.StatementTimeout
	}
	return options
}

// statementTimeoutSQL is run on every new physical connection.
func (options Options) statementTimeoutSQL() string {
	return fmt.Sprintf("SET statement_timeout = %d", options.StatementTimeout.Milliseconds())
}

// # Connection

/*
NewPool connects to the catalog database and pings it once.

Parameters:
  - ctx: bounds the initial connection attempt
  - dsn: libpq key/value string or postgres:// URL
  - options: pool sizing, zero fields use [DefaultOptions]

Returns:
  - *pgxpool.Pool: a pool with at least one live connection
  - error: the DSN did not parse or the server is unreachable
*/
func NewPool(ctx context.Context, dsn string, options Options, logger *slog.Logger) (*pgxpool.Pool, error) {
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("postgres: invalid DSN: %w", err)
	}

	options = options.withDefaults()
	poolConfig.MaxConns = options.MaxConns
	poolConfig.MinConns = options.MinConns
	poolConfig.MaxConnLifetime = connLifetime
	poolConfig.MaxConnIdleTime = connIdleTime
	poolConfig.HealthCheckPeriod = healthPeriod
	poolConfig.ConnConfig.ConnectTimeout = connectTimeout

	timeoutSQL := options.statementTimeoutSQL()
	poolConfig.AfterConnect = func(ctx context.Context, connection *pgx.Conn) error {
		_, err := connection.Exec(ctx, timeoutSQL)
		return err
	}

	connectCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := pgxpool.NewWithConfig(connectCtx, poolConfig)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to create pool: %w", err)
	}

	if err := Ping(ctx, pool); err != nil {
		pool.Close()
		return nil, err
	}

	logger.Info("postgres_pool_connected",
		slog.String("database", poolConfig.ConnConfig.Database),
		slog.Int("max_conns", int(options.MaxConns)),
		slog.Int("min_conns", int(options.MinConns)),
		slog.Duration("statement_timeout", options.StatementTimeout),
	)

	return pool, nil
}

// Ping backs the readiness probe.
func Ping(ctx context.Context, pool *pgxpool.Pool) error {
	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		return fmt.Errorf("postgres: ping failed: %w", err)
	}
	return nil
}

// # Transactions

// TxBeginner is satisfied by [*pgxpool.Pool] and [pgx.Tx].
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// InTx commits when fn returns nil and rolls back otherwise.
func InTx(ctx context.Context, db TxBeginner, fn func(tx pgx.Tx) error) error {
	transaction, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: begin: %w", err)
	}
	// Rollback after Commit is a no-op returning pgx.ErrTxClosed.
	defer func() { _ = transaction.Rollback(ctx) }()

	if err := fn(transaction); err != nil {
		return err
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: commit: %w", err)
	}
	return nil
}
