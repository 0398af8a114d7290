// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"
	"strings"

	"github.com/taibuivan/bookshelf/internal/platform/database/schema"
	"github.com/taibuivan/bookshelf/internal/platform/dberr"
)

// likeEscaper neutralises LIKE wildcards so a keyword matches literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching query anywhere in a value.
func containsPattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}

// direction renders a [SortOrder] as SQL.
func direction(order SortOrder) string {
	if order == OrderDesc {
		return "DESC"
	}
	return "ASC"
}

/*
bookOrderClause renders the ORDER BY list for book searches.

Unrated books sort lowest in both directions: first when ascending, last when
descending. Ties fall back to the book id so equal keys keep a deterministic
order.
*/
func bookOrderClause(key SortKey, order SortOrder) string {
	dir := direction(order)
	tieBreak := fmt.Sprintf("b.%s ASC", schema.CoreBook.ID)

	switch key {
	case SortAuthor:
		return fmt.Sprintf("a.%s %s, %s", schema.CoreAuthor.Name, dir, tieBreak)
	case SortRating:
		nulls := "NULLS FIRST"
		if order == OrderDesc {
			nulls = "NULLS LAST"
		}
		return fmt.Sprintf("b.%s %s %s, %s", schema.CoreBook.Rating, dir, nulls, tieBreak)
	default:
		return fmt.Sprintf("b.%s %s, %s", schema.CoreBook.Title, dir, tieBreak)
	}
}

/*
SearchBooks returns the books matching params in the requested order.

Description: A non-empty keyword matches title, ISBN or the author's name,
case-insensitively and as a literal substring. Without a keyword every book
is returned.

Parameters:
  - context: context.Context
  - params: SearchParams (already normalised by [ParseSearch])

Returns:
  - []*Book: Matching books, joined with their author's name
  - error: Database execution errors
*/
func (repository *PostgresRepository) SearchBooks(context context.Context, params SearchParams) ([]*Book, error) {
	var queryBuilder strings.Builder
	var args []any

	queryBuilder.WriteString(bookSelect)

	if params.HasQuery() {
		queryBuilder.WriteString(fmt.Sprintf(` WHERE (b.%s ILIKE $1 OR b.%s ILIKE $1 OR a.%s ILIKE $1)`,
			schema.CoreBook.Title, schema.CoreBook.ISBN, schema.CoreAuthor.Name,
		))
		args = append(args, containsPattern(params.Query))
	}

	queryBuilder.WriteString(" ORDER BY ")
	queryBuilder.WriteString(bookOrderClause(params.Sort, params.Order))

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "search_books")
	}
	return collectBooks(rows, "search_books")
}

func (repository *PostgresRepository) SearchAuthors(context context.Context, query string, order SortOrder) ([]*Author, error) {
	var queryBuilder strings.Builder
	var args []any

	queryBuilder.WriteString(fmt.Sprintf(`SELECT %s FROM %s`, authorColumns, schema.CoreAuthor.Table))

	if query != "" {
		queryBuilder.WriteString(fmt.Sprintf(` WHERE %s ILIKE $1`, schema.CoreAuthor.Name))
		args = append(args, containsPattern(query))
	}

	queryBuilder.WriteString(fmt.Sprintf(` ORDER BY %s %s, %s ASC`,
		schema.CoreAuthor.Name, direction(order), schema.CoreAuthor.ID,
	))

	rows, err := repository.pool.Query(context, queryBuilder.String(), args...)
	if err != nil {
		return nil, dberr.Wrap(err, "search_authors")
	}
	return collectAuthors(rows, "search_authors")
}

// Summary counts both tables in one round-trip.
func (repository *PostgresRepository) Summary(context context.Context) (Summary, error) {
	query := fmt.Sprintf(`SELECT (SELECT count(*) FROM %s), (SELECT count(*) FROM %s)`,
		schema.CoreBook.Table, schema.CoreAuthor.Table,
	)

	var summary Summary
	if err := repository.pool.QueryRow(context, query).Scan(&summary.TotalBooks, &summary.TotalAuthors); err != nil {
		return Summary{}, dberr.Wrap(err, "catalog_summary")
	}
	return summary, nil
}
