// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import "context"

// # Catalog Data Access

// Repository defines the data access contract for the catalog.
//
// Every method is atomic. Methods that touch more than one row
// ([Repository.DeleteAuthor], [Repository.DeleteBookAndAuthor]) run in a
// single transaction and leave the store untouched when any step fails.
type Repository interface {
	AuthorRepository
	BookRepository

	// Summary returns the current book and author totals.
	Summary(context context.Context) (Summary, error)
}

// AuthorRepository covers Author persistence.
type AuthorRepository interface {
	CreateAuthor(context context.Context, author *Author) error

	// GetAuthor returns apperr NOT_FOUND when id is unknown.
	GetAuthor(context context.Context, id int) (*Author, error)

	// UpdateAuthor replaces every editable field of the author with author.ID.
	UpdateAuthor(context context.Context, author *Author) error

	/*
		DeleteAuthor removes the author and every book referencing it.

		Returns:
		  - int: Number of books removed with the author
		  - error: NOT_FOUND when id is unknown; nothing is removed on failure
	*/
	DeleteAuthor(context context.Context, id int) (int, error)

	// ListAuthors returns all authors ordered by name.
	ListAuthors(context context.Context) ([]*Author, error)

	// SearchAuthors filters by case-insensitive substring on name. An empty
	// query returns every author.
	SearchAuthors(context context.Context, query string, order SortOrder) ([]*Author, error)
}

// BookRepository covers Book persistence.
type BookRepository interface {
	// CreateBook fails with [ErrDuplicateISBN] or [ErrUnknownAuthor].
	CreateBook(context context.Context, book *Book) error

	GetBook(context context.Context, id int) (*Book, error)

	// UpdateBook replaces the editable fields of book.ID. The cached
	// recommendation is left untouched.
	UpdateBook(context context.Context, book *Book) error

	DeleteBook(context context.Context, id int) error

	/*
		DeleteBookAndAuthor removes a book together with its author.

		The book row is locked first so a concurrent edit cannot move it to a
		different author in between. Remaining books of that author, if any
		appeared since the confirmation was offered, go with it.

		Returns:
		  - int: ID of the removed author
		  - error: NOT_FOUND when the book is unknown
	*/
	DeleteBookAndAuthor(context context.Context, bookID int) (int, error)

	UpdateRating(context context.Context, id, rating int) error
	UpdateRecommendation(context context.Context, id int, text string) error

	CountBooksByAuthor(context context.Context, authorID int) (int, error)

	// ListBooksByAuthor returns the author's books ordered by title.
	ListBooksByAuthor(context context.Context, authorID int) ([]*Book, error)

	// ListBooks returns every book ordered by title.
	ListBooks(context context.Context) ([]*Book, error)

	// SearchBooks applies the keyword filter and ordering of params.
	SearchBooks(context context.Context, params SearchParams) ([]*Book, error)
}

// # Summary Cache

// SummaryCache stores the home page totals between mutations.
//
// Get returns a nil summary on a miss, together with the cache generation.
// Set must drop the write when Invalidate has run since that generation was
// read, so totals computed before a mutation never outlive it.
type SummaryCache interface {
	Get(context context.Context) (*Summary, int64, error)
	Set(context context.Context, summary Summary, generation int64) error
	Invalidate(context context.Context) error
}
