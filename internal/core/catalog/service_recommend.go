// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"

	"github.com/taibuivan/bookshelf/pkg/slice"
	"github.com/taibuivan/bookshelf/pkg/textnorm"
)

// # Cached Recommendations

// Recommendations lists every book by title with the number of books that
// already carry a cached recommendation.
func (service *Service) Recommendations(context context.Context) (*Recommendations, error) {
	books, err := service.repo.ListBooks(context)
	if err != nil {
		return nil, err
	}

	cached := slice.Count(books, func(book *Book) bool { return book.HasRecommendation() })
	return &Recommendations{Books: books, Cached: cached}, nil
}

// EditRecommendation replaces the cached recommendation text of a book.
// Nothing is fetched from a remote service.
func (service *Service) EditRecommendation(context context.Context, id int, text string) error {
	if _, err := service.repo.GetBook(context, id); err != nil {
		return err
	}

	text = textnorm.Multiline(text)
	if text == "" {
		return ErrEmptyReview
	}

	if err := service.repo.UpdateRecommendation(context, id, text); err != nil {
		return err
	}

	service.log(context).Info("book_recommendation_edited", slog.Int("book_id", id))
	return nil
}
