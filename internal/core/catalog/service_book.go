// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"

	"github.com/taibuivan/bookshelf/internal/platform/apperr"
	"github.com/taibuivan/bookshelf/internal/platform/validate"
)

// # Book Lookups

func (service *Service) GetBook(context context.Context, id int) (*Book, error) {
	return service.repo.GetBook(context, id)
}

// # Book Management

/*
CreateBook validates and persists a new book.

Description: Field rules are checked first. Only a book whose fields are all
valid is checked against the author table, so a form with several mistakes
reports them together.

Parameters:
  - context: context.Context
  - book: *Book (ID and timestamps are filled in on success)

Returns:
  - error: VALIDATION_ERROR, [ErrUnknownAuthor], [ErrDuplicateISBN] or store errors
*/
func (service *Service) CreateBook(context context.Context, book *Book) error {
	normalizeBook(book)

	if err := service.validateBook(context, book); err != nil {
		return err
	}

	if err := service.repo.CreateBook(context, book); err != nil {
		return err
	}

	service.invalidateSummary(context)
	service.log(context).Info("book_created",
		slog.Int("book_id", book.ID),
		slog.String("isbn", book.ISBN),
		slog.Int("author_id", book.AuthorID),
	)
	return nil
}

// UpdateBook replaces the editable fields of an existing book. The cached
// recommendation is preserved.
func (service *Service) UpdateBook(context context.Context, book *Book) error {
	if _, err := service.repo.GetBook(context, book.ID); err != nil {
		return err
	}

	normalizeBook(book)

	if err := service.validateBook(context, book); err != nil {
		return err
	}

	if err := service.repo.UpdateBook(context, book); err != nil {
		return err
	}

	service.invalidateSummary(context)
	service.log(context).Info("book_updated", slog.Int("book_id", book.ID))
	return nil
}

func normalizeBook(book *Book) {
	book.ISBN = normalizeText(book.ISBN)
	book.Title = normalizeText(book.Title)
	if book.CoverURL != nil {
		cover := normalizeText(*book.CoverURL)
		book.CoverURL = &cover
		if cover == "" {
			book.CoverURL = nil
		}
	}
}

func (service *Service) validateBook(context context.Context, book *Book) error {
	validator := &validate.Validator{}

	validator.Required(FieldISBN, book.ISBN).MaxLen(FieldISBN, book.ISBN, maxISBNLen)
	validator.Required(FieldTitle, book.Title).MaxLen(FieldTitle, book.Title, maxTitleLen)
	validator.Custom(FieldAuthorID, book.AuthorID <= 0, msgSelectAuthor)
	validator.OptionalRange(FieldRating, book.Rating, MinRating, MaxRating)
	validator.OptionalURL(FieldCoverURL, book.CoverURL, maxCoverURLLen)

	if err := validator.Err(); err != nil {
		return err
	}

	// Referential check
	if _, err := service.repo.GetAuthor(context, book.AuthorID); err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			return ErrUnknownAuthor
		}
		return err
	}
	return nil
}
