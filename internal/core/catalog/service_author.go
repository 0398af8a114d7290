// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"

	"github.com/taibuivan/bookshelf/internal/platform/validate"
)

// # Author Lookups

func (service *Service) GetAuthor(context context.Context, id int) (*Author, error) {
	return service.repo.GetAuthor(context, id)
}

// ListAuthors returns every author by name, for the book form's author picker.
func (service *Service) ListAuthors(context context.Context) ([]*Author, error) {
	return service.repo.ListAuthors(context)
}

// AuthorWithBooks returns an author and its books ordered by title.
func (service *Service) AuthorWithBooks(context context.Context, id int) (*Author, []*Book, error) {
	author, err := service.repo.GetAuthor(context, id)
	if err != nil {
		return nil, nil, err
	}

	books, err := service.repo.ListBooksByAuthor(context, id)
	if err != nil {
		return nil, nil, err
	}
	return author, books, nil
}

// # Author Management

/*
CreateAuthor validates and persists a new author.

Parameters:
  - context: context.Context
  - author: *Author (ID and timestamps are filled in on success)

Returns:
  - error: VALIDATION_ERROR for a blank or overlong name, or store errors
*/
func (service *Service) CreateAuthor(context context.Context, author *Author) error {
	author.Name = normalizeText(author.Name)

	if err := validateAuthor(author); err != nil {
		return err
	}

	if err := service.repo.CreateAuthor(context, author); err != nil {
		return err
	}

	service.invalidateSummary(context)
	service.log(context).Info("author_created", slog.Int("author_id", author.ID), slog.String("name", author.Name))
	return nil
}

// UpdateAuthor replaces the author's fields. An unknown id is NOT_FOUND
// before any validation runs; it never falls through to an insert.
func (service *Service) UpdateAuthor(context context.Context, author *Author) error {
	if _, err := service.repo.GetAuthor(context, author.ID); err != nil {
		return err
	}

	author.Name = normalizeText(author.Name)

	if err := validateAuthor(author); err != nil {
		return err
	}

	if err := service.repo.UpdateAuthor(context, author); err != nil {
		return err
	}

	service.invalidateSummary(context)
	service.log(context).Info("author_updated", slog.Int("author_id", author.ID))
	return nil
}

// DeleteAuthor removes the author and all of its books without asking for
// confirmation. It returns the number of books removed.
func (service *Service) DeleteAuthor(context context.Context, id int) (int, error) {
	removed, err := service.repo.DeleteAuthor(context, id)
	if err != nil {
		return 0, err
	}

	service.invalidateSummary(context)
	service.log(context).Warn("author_deleted", slog.Int("author_id", id), slog.Int("books_removed", removed))
	return removed, nil
}

func validateAuthor(author *Author) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, author.Name).MaxLen(FieldName, author.Name, maxNameLen)
	return validator.Err()
}
