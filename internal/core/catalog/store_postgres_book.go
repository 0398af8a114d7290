// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/taibuivan/bookshelf/internal/platform/apperr"
	"github.com/taibuivan/bookshelf/internal/platform/database/schema"
	"github.com/taibuivan/bookshelf/internal/platform/dberr"
	"github.com/taibuivan/bookshelf/internal/platform/postgres"
)

// bookSelect reads books joined with their author's name. Callers append
// WHERE and ORDER BY clauses using the "b" and "a" aliases.
var bookSelect = fmt.Sprintf(`
	SELECT
		b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s, b.%s,
		a.%s,
		b.%s, b.%s
	FROM %s b
	JOIN %s a ON a.%s = b.%s
`,
	schema.CoreBook.ID,
	schema.CoreBook.ISBN,
	schema.CoreBook.Title,
	schema.CoreBook.PublicationYear,
	schema.CoreBook.CoverURL,
	schema.CoreBook.Rating,
	schema.CoreBook.AIRecommendation,
	schema.CoreBook.AuthorID,
	schema.CoreAuthor.Name,
	schema.CoreBook.CreatedAt,
	schema.CoreBook.UpdatedAt,
	schema.CoreBook.Table,
	schema.CoreAuthor.Table, schema.CoreAuthor.ID, schema.CoreBook.AuthorID,
)

func scanBook(row pgx.Row) (*Book, error) {
	book := &Book{}
	err := row.Scan(
		&book.ID,
		&book.ISBN,
		&book.Title,
		&book.PublicationYear,
		&book.CoverURL,
		&book.Rating,
		&book.AIRecommendation,
		&book.AuthorID,
		&book.AuthorName,
		&book.CreatedAt,
		&book.UpdatedAt,
	)
	return book, err
}

func collectBooks(rows pgx.Rows, action string) ([]*Book, error) {
	defer rows.Close()

	var books []*Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, dberr.Wrap(err, action)
		}
		books = append(books, book)
	}
	return books, dberr.Wrap(rows.Err(), action)
}

// wrapBookWrite maps constraint violations of book inserts and updates onto
// catalog errors. ISBN uniqueness and the author reference are the two
// constraints a well-formed request can still hit.
func wrapBookWrite(err error, action string) error {
	if err == nil {
		return nil
	}

	switch dberr.ConstraintName(err) {
	case schema.CoreBook.ISBNKey:
		return ErrDuplicateISBN
	case schema.CoreBook.AuthorFKey:
		return ErrUnknownAuthor
	}
	return dberr.WrapEntity(err, action, "Book")
}

// # Book Repository Implementation

func (repository *PostgresRepository) CreateBook(context context.Context, book *Book) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.CoreBook.Table,
		schema.CoreBook.ISBN, schema.CoreBook.Title, schema.CoreBook.PublicationYear, schema.CoreBook.CoverURL,
		schema.CoreBook.Rating, schema.CoreBook.AIRecommendation, schema.CoreBook.AuthorID,
		schema.CoreBook.CreatedAt, schema.CoreBook.UpdatedAt,
		schema.CoreBook.ID, schema.CoreBook.CreatedAt, schema.CoreBook.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		book.ISBN, book.Title, book.PublicationYear, book.CoverURL,
		book.Rating, book.AIRecommendation, book.AuthorID,
	).Scan(&book.ID, &book.CreatedAt, &book.UpdatedAt)
	return wrapBookWrite(err, "create_book")
}

func (repository *PostgresRepository) GetBook(context context.Context, id int) (*Book, error) {
	query := bookSelect + fmt.Sprintf(` WHERE b.%s = $1`, schema.CoreBook.ID)

	book, err := scanBook(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.WrapEntity(err, "get_book", "Book")
	}
	return book, nil
}

func (repository *PostgresRepository) UpdateBook(context context.Context, book *Book) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`,
		schema.CoreBook.Table,
		schema.CoreBook.ISBN, schema.CoreBook.Title, schema.CoreBook.PublicationYear,
		schema.CoreBook.CoverURL, schema.CoreBook.Rating, schema.CoreBook.AuthorID, schema.CoreBook.UpdatedAt,
		schema.CoreBook.ID,
		schema.CoreBook.CreatedAt, schema.CoreBook.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query,
		book.ID, book.ISBN, book.Title, book.PublicationYear, book.CoverURL, book.Rating, book.AuthorID,
	).Scan(&book.CreatedAt, &book.UpdatedAt)
	return wrapBookWrite(err, "update_book")
}

func (repository *PostgresRepository) DeleteBook(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreBook.Table, schema.CoreBook.ID)

	tag, err := repository.pool.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_book")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Book")
	}
	return nil
}

/*
DeleteBookAndAuthor removes a book and its author as one unit.

Description: Locks the book row to read a stable author id, then reuses the
author cascade (books first, author last) inside the same transaction.

Parameters:
  - context: context.Context
  - bookID: int

Returns:
  - int: The removed author's id
  - error: apperr.NotFound if the book does not exist
*/
func (repository *PostgresRepository) DeleteBookAndAuthor(context context.Context, bookID int) (int, error) {
	var authorID int

	err := postgres.InTx(context, repository.pool, func(transaction pgx.Tx) error {
		lockQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 FOR UPDATE`,
			schema.CoreBook.AuthorID, schema.CoreBook.Table, schema.CoreBook.ID,
		)
		if err := transaction.QueryRow(context, lockQuery, bookID).Scan(&authorID); err != nil {
			return dberr.WrapEntity(err, "lock_book", "Book")
		}

		if _, err := deleteBooksOfAuthor(context, transaction, authorID); err != nil {
			return err
		}
		return deleteAuthorRow(context, transaction, authorID)
	})
	if err != nil {
		return 0, err
	}

	return authorID, nil
}

func (repository *PostgresRepository) UpdateRating(context context.Context, id, rating int) error {
	return repository.updateColumn(context, id, schema.CoreBook.Rating, rating, "update_rating")
}

func (repository *PostgresRepository) UpdateRecommendation(context context.Context, id int, text string) error {
	return repository.updateColumn(context, id, schema.CoreBook.AIRecommendation, text, "update_recommendation")
}

// updateColumn sets a single book column and bumps updated_at.
func (repository *PostgresRepository) updateColumn(context context.Context, id int, column string, value any, action string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = NOW() WHERE %s = $1`,
		schema.CoreBook.Table, column, schema.CoreBook.UpdatedAt, schema.CoreBook.ID,
	)

	tag, err := repository.pool.Exec(context, query, id, value)
	if err != nil {
		return dberr.Wrap(err, action)
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Book")
	}
	return nil
}

func (repository *PostgresRepository) CountBooksByAuthor(context context.Context, authorID int) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM %s WHERE %s = $1`, schema.CoreBook.Table, schema.CoreBook.AuthorID)

	var total int
	if err := repository.pool.QueryRow(context, query, authorID).Scan(&total); err != nil {
		return 0, dberr.Wrap(err, "count_books_by_author")
	}
	return total, nil
}

func (repository *PostgresRepository) ListBooksByAuthor(context context.Context, authorID int) ([]*Book, error) {
	query := bookSelect + fmt.Sprintf(` WHERE b.%s = $1 ORDER BY b.%s ASC, b.%s ASC`,
		schema.CoreBook.AuthorID, schema.CoreBook.Title, schema.CoreBook.ID,
	)

	rows, err := repository.pool.Query(context, query, authorID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_books_by_author")
	}
	return collectBooks(rows, "list_books_by_author")
}

func (repository *PostgresRepository) ListBooks(context context.Context) ([]*Book, error) {
	query := bookSelect + fmt.Sprintf(` ORDER BY b.%s ASC, b.%s ASC`, schema.CoreBook.Title, schema.CoreBook.ID)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_books")
	}
	return collectBooks(rows, "list_books")
}
