// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog provides the PostgreSQL implementation for the catalog's data access.

Multi-row writes go through [postgres.InTx] so the cascade from an author to
its books is explicit and atomic. The foreign key on book.author_id carries no
ON DELETE CASCADE: the store deletes children, then the parent.
*/
package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/bookshelf/internal/platform/apperr"
	"github.com/taibuivan/bookshelf/internal/platform/database/schema"
	"github.com/taibuivan/bookshelf/internal/platform/dberr"
	"github.com/taibuivan/bookshelf/internal/platform/postgres"
)

// # PostgreSQL Repository

// PostgresRepository implements [Repository] using pgx.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository constructs a PostgreSQL backed catalog store.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// authorColumns is the projection shared by every author read.
var authorColumns = fmt.Sprintf("%s, %s, %s, %s, %s, %s",
	schema.CoreAuthor.ID,
	schema.CoreAuthor.Name,
	schema.CoreAuthor.BirthDate,
	schema.CoreAuthor.DateOfDeath,
	schema.CoreAuthor.CreatedAt,
	schema.CoreAuthor.UpdatedAt,
)

func scanAuthor(row pgx.Row) (*Author, error) {
	author := &Author{}
	err := row.Scan(
		&author.ID,
		&author.Name,
		&author.BirthDate,
		&author.DateOfDeath,
		&author.CreatedAt,
		&author.UpdatedAt,
	)
	return author, err
}

func collectAuthors(rows pgx.Rows, action string) ([]*Author, error) {
	defer rows.Close()

	var authors []*Author
	for rows.Next() {
		author, err := scanAuthor(rows)
		if err != nil {
			return nil, dberr.Wrap(err, action)
		}
		authors = append(authors, author)
	}
	return authors, dberr.Wrap(rows.Err(), action)
}

// # Author Repository Implementation

func (repository *PostgresRepository) CreateAuthor(context context.Context, author *Author) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.CoreAuthor.Table, schema.CoreAuthor.Name, schema.CoreAuthor.BirthDate,
		schema.CoreAuthor.DateOfDeath, schema.CoreAuthor.CreatedAt, schema.CoreAuthor.UpdatedAt,
		schema.CoreAuthor.ID, schema.CoreAuthor.CreatedAt, schema.CoreAuthor.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query, author.Name, author.BirthDate, author.DateOfDeath).
		Scan(&author.ID, &author.CreatedAt, &author.UpdatedAt)
	return dberr.Wrap(err, "create_author")
}

func (repository *PostgresRepository) GetAuthor(context context.Context, id int) (*Author, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		authorColumns, schema.CoreAuthor.Table, schema.CoreAuthor.ID,
	)

	author, err := scanAuthor(repository.pool.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.WrapEntity(err, "get_author", "Author")
	}
	return author, nil
}

func (repository *PostgresRepository) UpdateAuthor(context context.Context, author *Author) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = NOW()
		WHERE %s = $1
		RETURNING %s, %s
	`,
		schema.CoreAuthor.Table,
		schema.CoreAuthor.Name, schema.CoreAuthor.BirthDate, schema.CoreAuthor.DateOfDeath, schema.CoreAuthor.UpdatedAt,
		schema.CoreAuthor.ID,
		schema.CoreAuthor.CreatedAt, schema.CoreAuthor.UpdatedAt,
	)

	err := repository.pool.QueryRow(context, query, author.ID, author.Name, author.BirthDate, author.DateOfDeath).
		Scan(&author.CreatedAt, &author.UpdatedAt)
	return dberr.WrapEntity(err, "update_author", "Author")
}

/*
DeleteAuthor removes an author and cascades to its books.

Description: Runs three statements in one transaction: lock the author row,
delete every book that references it, delete the author. A failure at any
step rolls the whole unit back.

Parameters:
  - context: context.Context
  - id: int (author primary key)

Returns:
  - int: Number of books removed
  - error: apperr.NotFound if the author does not exist
*/
func (repository *PostgresRepository) DeleteAuthor(context context.Context, id int) (int, error) {
	var removedBooks int

	err := postgres.InTx(context, repository.pool, func(transaction pgx.Tx) error {

		// Lock the parent so no book can be attached to it mid-cascade
		lockQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 FOR UPDATE`,
			schema.CoreAuthor.ID, schema.CoreAuthor.Table, schema.CoreAuthor.ID,
		)
		var lockedID int
		if err := transaction.QueryRow(context, lockQuery, id).Scan(&lockedID); err != nil {
			return dberr.WrapEntity(err, "lock_author", "Author")
		}

		// Children first
		removed, err := deleteBooksOfAuthor(context, transaction, id)
		if err != nil {
			return err
		}
		removedBooks = removed

		// Then the parent
		return deleteAuthorRow(context, transaction, id)
	})
	if err != nil {
		return 0, err
	}

	return removedBooks, nil
}

func (repository *PostgresRepository) ListAuthors(context context.Context) ([]*Author, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC, %s ASC`,
		authorColumns, schema.CoreAuthor.Table, schema.CoreAuthor.Name, schema.CoreAuthor.ID,
	)

	rows, err := repository.pool.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_authors")
	}
	return collectAuthors(rows, "list_authors")
}

// # Transaction Steps

func deleteBooksOfAuthor(context context.Context, transaction pgx.Tx, authorID int) (int, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreBook.Table, schema.CoreBook.AuthorID)

	tag, err := transaction.Exec(context, query, authorID)
	if err != nil {
		return 0, dberr.Wrap(err, "delete_author_books")
	}
	return int(tag.RowsAffected()), nil
}

func deleteAuthorRow(context context.Context, transaction pgx.Tx, authorID int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.CoreAuthor.Table, schema.CoreAuthor.ID)

	tag, err := transaction.Exec(context, query, authorID)
	if err != nil {
		return dberr.Wrap(err, "delete_author")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound("Author")
	}
	return nil
}
