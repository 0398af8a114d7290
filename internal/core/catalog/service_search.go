// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "context"

// # Search

/*
Search runs the search and sort pipeline.

Description: With [ScopeAuthors] only authors are returned, ordered by name.
Otherwise books are filtered on title, ISBN and author name and ordered by
params.Sort. NoResults is set only when a keyword produced no books.

Parameters:
  - context: context.Context
  - params: SearchParams (from [ParseSearch])

Returns:
  - *SearchResult: Matches, the no-results flag and catalog totals
  - error: Store errors
*/
func (service *Service) Search(context context.Context, params SearchParams) (*SearchResult, error) {
	result := &SearchResult{Params: params}

	if params.Scope == ScopeAuthors {
		authors, err := service.repo.SearchAuthors(context, params.Query, params.Order)
		if err != nil {
			return nil, err
		}
		result.Authors = authors
	} else {
		books, err := service.repo.SearchBooks(context, params)
		if err != nil {
			return nil, err
		}
		result.Books = books
	}

	result.NoResults = len(result.Books) == 0 && params.HasQuery()

	summary, err := service.Summary(context)
	if err != nil {
		return nil, err
	}
	result.Summary = summary

	return result, nil
}
