// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"
)

// # Maintenance

// Inventory is every author and every book, each ordered by name or title.
type Inventory struct {
	Authors []*Author
	Books   []*Book
}

// Inventory lists the whole catalog for the maintenance page.
func (service *Service) Inventory(context context.Context) (*Inventory, error) {
	authors, err := service.repo.ListAuthors(context)
	if err != nil {
		return nil, err
	}

	books, err := service.repo.ListBooks(context)
	if err != nil {
		return nil, err
	}

	return &Inventory{Authors: authors, Books: books}, nil
}

// RemoveBook deletes a book without the last-book confirmation. The author
// stays even when this was their only book.
func (service *Service) RemoveBook(context context.Context, id int) error {
	if err := service.repo.DeleteBook(context, id); err != nil {
		return err
	}

	service.invalidateSummary(context)
	service.log(context).Warn("book_deleted", slog.Int("book_id", id), slog.String("source", "maintenance"))
	return nil
}
