// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/bookshelf/pkg/convert"
)

// # Ratings

/*
RateBook sets a book's rating from raw form input.

Description: The book must exist. raw must be a base-10 integer within
[MinRating, MaxRating]. Any rejection happens before the store is touched, so
the previous rating survives unchanged.

Parameters:
  - context: context.Context
  - id: int (book primary key)
  - raw: string (untrimmed form value)

Returns:
  - int: The stored rating
  - error: NOT_FOUND or VALIDATION_ERROR
*/
func (service *Service) RateBook(context context.Context, id int, raw string) (int, error) {
	if _, err := service.repo.GetBook(context, id); err != nil {
		return 0, err
	}

	rating, err := convert.RequiredInt(raw)
	if errors.Is(err, convert.ErrOutOfRange) {
		return 0, ErrRatingOutOfRange
	}
	if err != nil {
		return 0, ErrRatingNotNumber
	}

	if rating < MinRating || rating > MaxRating {
		return 0, ErrRatingOutOfRange
	}

	if err := service.repo.UpdateRating(context, id, rating); err != nil {
		return 0, err
	}

	service.invalidateSummary(context)
	service.log(context).Info("book_rated", slog.Int("book_id", id), slog.Int("rating", rating))
	return rating, nil
}
