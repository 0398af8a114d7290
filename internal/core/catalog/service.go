// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"

	"github.com/taibuivan/bookshelf/internal/platform/ctxutil"
	"github.com/taibuivan/bookshelf/pkg/textnorm"
)

// # Service Layer

// Service orchestrates the business rules of the catalog. Handlers and the
// seeder talk to it, never to the [Repository] directly.
type Service struct {
	repo   Repository
	cache  SummaryCache
	logger *slog.Logger
}

// NewService constructs a new [Service]. cache may be nil, in which case the
// summary is read from the store on every request.
func NewService(repo Repository, cache SummaryCache, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// # Catalog Summary

/*
Summary returns the catalog totals.

Description: Served from the summary cache when one is configured. A miss
falls through to the store and the fresh value is written back, unless a
mutation invalidated the cache in between. A cache read failure also falls
through but skips the write.

Parameters:
  - context: context.Context

Returns:
  - Summary: Book and author totals
  - error: Store errors only; cache errors are logged
*/
func (service *Service) Summary(context context.Context) (Summary, error) {
	var (
		generation int64
		cacheable  bool
	)
	if service.cache != nil {
		cached, current, err := service.cache.Get(context)
		switch {
		case err != nil:
			service.log(context).Warn("summary_cache_read_failed", slog.Any("error", err))
		case cached != nil:
			return *cached, nil
		default:
			generation, cacheable = current, true
		}
	}

	summary, err := service.repo.Summary(context)
	if err != nil {
		return Summary{}, err
	}

	if cacheable {
		if err := service.cache.Set(context, summary, generation); err != nil {
			service.log(context).Warn("summary_cache_write_failed", slog.Any("error", err))
		}
	}

	return summary, nil
}

// invalidateSummary drops the cached totals after a successful mutation.
func (service *Service) invalidateSummary(context context.Context) {
	if service.cache == nil {
		return
	}
	if err := service.cache.Invalidate(context); err != nil {
		service.log(context).Warn("summary_cache_invalidate_failed", slog.Any("error", err))
	}
}

// log prefers the request-scoped logger so service events carry the request id.
func (service *Service) log(context context.Context) *slog.Logger {
	return ctxutil.LoggerOr(context, service.logger)
}

// normalizeText trims and NFC-composes user input before it is stored or
// searched for.
func normalizeText(value string) string {
	return textnorm.Text(value)
}
