// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"
)

// # Delete Workflow

/*
DeleteBook starts the delete workflow for a book.

Description: When the book's author has other books the book is removed
immediately and the outcome is [DeleteDirect]. When it is the author's only
book nothing is removed: the outcome is [DeletePendingConfirmation] carrying
the book id, and the caller must come back through [Service.ConfirmDelete].

Parameters:
  - context: context.Context
  - id: int (book primary key)

Returns:
  - DeleteOutcome: Which branch was taken
  - error: NOT_FOUND for an unknown book, or store errors
*/
func (service *Service) DeleteBook(context context.Context, id int) (DeleteOutcome, error) {
	book, err := service.repo.GetBook(context, id)
	if err != nil {
		return DeleteOutcome{}, err
	}

	remaining, err := service.repo.CountBooksByAuthor(context, book.AuthorID)
	if err != nil {
		return DeleteOutcome{}, err
	}

	// Last book: ask before leaving the author empty
	if remaining <= 1 {
		service.log(context).Info("book_delete_confirmation_required",
			slog.Int("book_id", id),
			slog.Int("author_id", book.AuthorID),
		)
		return DeleteOutcome{State: DeletePendingConfirmation, BookID: id}, nil
	}

	if err := service.repo.DeleteBook(context, id); err != nil {
		return DeleteOutcome{}, err
	}

	service.invalidateSummary(context)
	service.log(context).Warn("book_deleted", slog.Int("book_id", id), slog.Int("author_id", book.AuthorID))
	return DeleteOutcome{State: DeleteDirect, BookID: id}, nil
}

/*
ConfirmDelete applies the follow-up decision of a pending confirmation.

Parameters:
  - context: context.Context
  - id: int (book primary key carried by the pending state)
  - decision: Decision

Returns:
  - error: NOT_FOUND for an unknown book, VALIDATION_ERROR for an unknown
    decision, or store errors
*/
func (service *Service) ConfirmDelete(context context.Context, id int, decision Decision) error {
	switch decision {
	case DecisionKeepAuthor:
		if err := service.repo.DeleteBook(context, id); err != nil {
			return err
		}
		service.log(context).Warn("book_deleted", slog.Int("book_id", id), slog.String("decision", string(decision)))

	case DecisionDeleteBoth:
		authorID, err := service.repo.DeleteBookAndAuthor(context, id)
		if err != nil {
			return err
		}
		service.log(context).Warn("book_and_author_deleted", slog.Int("book_id", id), slog.Int("author_id", authorID))

	default:
		return ErrMissingDecision
	}

	service.invalidateSummary(context)
	return nil
}
