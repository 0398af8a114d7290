// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package migration brings the author and book tables up to date before the
// server starts taking requests.
package migration

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	// Registers the "pgx5" database scheme.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/taibuivan/bookshelf/data"
)

// Source picks the migration files. An empty dir means the copy embedded in
// the binary; anything else is read from disk.
func Source(dir string) fs.FS {
	if dir == "" {
		return data.Migrations()
	}
	return os.DirFS(dir)
}

/*
RunUp applies every pending UP migration from files.

A database left dirty by a failed migration is reported and never touched.

Parameters:
  - dsn: libpq key/value string or postgres:// URL
  - files: directory of NNNNNN_name.up.sql / .down.sql pairs

Returns:
  - error: the source or database could not be opened, or a migration failed
*/
func RunUp(dsn string, files fs.FS, logger *slog.Logger) error {
	source, err := iofs.New(files, ".")
	if err != nil {
		return fmt.Errorf("migration: failed to read migrations: %w", err)
	}

	migrator, err := migrate.NewWithSourceInstance("iofs", source, toPgx5DSN(dsn))
	if err != nil {
		return fmt.Errorf("migration: failed to initialize: %w", err)
	}
	defer closeMigrator(migrator, logger)

	migrator.Log = &migrateLogger{logger: logger}

	from, dirty, err := migrator.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		from = 0
	case err != nil:
		return fmt.Errorf("migration: failed to read schema version: %w", err)
	case dirty:
		return fmt.Errorf("migration: schema is dirty at version %d, fix it by hand and force the version", from)
	}

	err = migrator.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("migration_up_to_date", slog.Uint64("version", uint64(from)))
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration: up failed: %w", err)
	}

	to, _, _ := migrator.Version()
	logger.Info("migration_applied",
		slog.Uint64("from_version", uint64(from)),
		slog.Uint64("to_version", uint64(to)),
	)
	return nil
}

func closeMigrator(migrator *migrate.Migrate, logger *slog.Logger) {
	sourceErr, databaseErr := migrator.Close()
	if sourceErr != nil {
		logger.Warn("migration_source_close_failed", slog.Any("error", sourceErr))
	}
	if databaseErr != nil {
		logger.Warn("migration_database_close_failed", slog.Any("error", databaseErr))
	}
}

// toPgx5DSN rewrites postgres:// and postgresql:// URLs to the pgx5:// scheme.
// Key/value DSNs are returned unchanged.
func toPgx5DSN(dsn string) string {
	for _, prefix := range []string{"postgresql://", "postgres://"} {
		if rest, ok := strings.CutPrefix(dsn, prefix); ok {
			return "pgx5://" + rest
		}
	}
	return dsn
}

// migrateLogger sends golang-migrate's progress lines to slog at debug level.
type migrateLogger struct {
	logger *slog.Logger
}

func (l *migrateLogger) Printf(format string, args ...any) {
	l.logger.Debug("migration_progress", slog.String("detail", strings.TrimSpace(fmt.Sprintf(format, args...))))
}

func (l *migrateLogger) Verbose() bool {
	return l.logger.Enabled(context.Background(), slog.LevelDebug)
}
