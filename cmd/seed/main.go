// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command seed loads a small sample catalog into the database.
//
// It reads the same configuration as cmd/api, applies pending migrations and
// inserts the samples through the catalog service, so every validation rule
// applies. Running it again only reports what already exists.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/taibuivan/bookshelf/internal/core/catalog"
	"github.com/taibuivan/bookshelf/internal/platform/config"
	"github.com/taibuivan/bookshelf/internal/platform/constants"
	"github.com/taibuivan/bookshelf/internal/platform/migration"
	pgstore "github.com/taibuivan/bookshelf/internal/platform/postgres"
	redisstore "github.com/taibuivan/bookshelf/internal/platform/redis"
	"github.com/taibuivan/bookshelf/pkg/convert"
	"github.com/taibuivan/bookshelf/pkg/pointer"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil)).With(slog.String(constants.FieldApp, constants.AppName+"-seed"))

	cfg, err := config.Load()
	must(log, err, "load configuration")

	ctx, cancel := context.WithTimeout(context.Background(), constants.StartupTimeout)
	defer cancel()

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, cfg.PoolOptions(), log)
	must(log, err, "connect to postgres")
	defer pool.Close()

	must(log, migration.RunUp(cfg.DatabaseURL, migration.Source(cfg.MigrationPath), log), "run migrations")

	// With Redis configured, every insert invalidates the totals the web server caches.
	var cache catalog.SummaryCache
	if cfg.CacheEnabled() {
		rdb, err := redisstore.NewClient(ctx, cfg.RedisURL, log)
		must(log, err, "connect to redis")
		defer func() { _ = rdb.Close() }()
		cache = catalog.NewRedisSummaryCache(rdb, cfg.SummaryCacheTTL)
	}

	service := catalog.NewService(catalog.NewPostgresRepository(pool), cache, log)

	report, err := service.Seed(ctx, sampleCatalog())
	must(log, err, "seed catalog")

	log.Info("seed_completed",
		slog.Int("authors_added", report.AuthorsAdded),
		slog.Int("authors_skipped", report.AuthorsSkipped),
		slog.Int("books_added", report.BooksAdded),
		slog.Int("books_skipped", report.BooksSkipped),
	)
}

// sampleCatalog is ten classic authors with one well-known book each.
func sampleCatalog() []catalog.SeedAuthor {
	return []catalog.SeedAuthor{
		sample("Jane Austen", "1775-12-16", "1817-07-18", "9780141439518", "Pride and Prejudice", 1813),
		sample("Charles Dickens", "1812-02-07", "1870-06-09", "9780141439563", "Great Expectations", 1861),
		sample("Mark Twain", "1835-11-30", "1910-04-21", "9780141439648", "Adventures of Huckleberry Finn", 1884),
		sample("Virginia Woolf", "1882-01-25", "1941-03-28", "9780156907392", "Mrs Dalloway", 1925),
		sample("George Orwell", "1903-06-25", "1950-01-21", "9780451524935", "1984", 1949),
		sample("Harper Lee", "1926-04-28", "2016-02-19", "9780061120084", "To Kill a Mockingbird", 1960),
		sample("J.K. Rowling", "1965-07-31", "", "9780747532743", "Harry Potter and the Philosopher's Stone", 1997),
		sample("Toni Morrison", "1931-02-18", "2019-08-05", "9780307277671", "Beloved", 1987),
		sample("Gabriel Garcia Marquez", "1927-03-06", "2014-04-17", "9780307389732", "One Hundred Years of Solitude", 1967),
		sample("Fyodor Dostoevsky", "1821-11-11", "1881-02-09", "9780140449136", "Crime and Punishment", 1866),
	}
}

func sample(name, born, died, isbn, title string, year int) catalog.SeedAuthor {
	return catalog.SeedAuthor{
		Name:        name,
		BirthDate:   date(born),
		DateOfDeath: date(died),
		Books: []catalog.SeedBook{
			{ISBN: isbn, Title: title, PublicationYear: pointer.To(year)},
		},
	}
}

// date parses a literal from sampleCatalog; an empty string means unknown.
func date(value string) *time.Time {
	parsed, err := convert.OptionalDate(value)
	if err != nil {
		panic(err)
	}
	return parsed
}

func must(log *slog.Logger, err error, step string) {
	if err != nil {
		log.Error("seed_failure", slog.String("step", step), slog.Any("error", err))
		os.Exit(1)
	}
}
