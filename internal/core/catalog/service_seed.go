// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"context"
	"log/slog"
	"time"

	"github.com/taibuivan/bookshelf/pkg/slice"
	"github.com/taibuivan/bookshelf/pkg/textnorm"
)

// # Sample Catalog

// SeedAuthor is one author of a sample catalog together with their books.
type SeedAuthor struct {
	Name        string
	BirthDate   *time.Time
	DateOfDeath *time.Time
	Books       []SeedBook
}

// SeedBook is one sample book. It belongs to the enclosing [SeedAuthor].
type SeedBook struct {
	ISBN            string
	Title           string
	PublicationYear *int
}

// SeedReport counts what [Service.Seed] added and skipped.
type SeedReport struct {
	AuthorsAdded   int
	AuthorsSkipped int
	BooksAdded     int
	BooksSkipped   int
}

/*
Seed loads a sample catalog through the regular create operations.

Description: Running it twice is harmless. An author already present under
the same name (ignoring case and accents) is reused, and a book whose ISBN
already exists is skipped.

Returns:
  - SeedReport: Added/skipped counters
  - error: The first validation or store error; earlier inserts are kept
*/
func (service *Service) Seed(context context.Context, samples []SeedAuthor) (SeedReport, error) {
	var report SeedReport

	authors, err := service.repo.ListAuthors(context)
	if err != nil {
		return report, err
	}
	books, err := service.repo.ListBooks(context)
	if err != nil {
		return report, err
	}

	authorsByName := slice.IndexBy(authors, func(author *Author) string { return textnorm.Fold(author.Name) })
	booksByISBN := slice.IndexBy(books, func(book *Book) string { return book.ISBN })

	for _, sample := range samples {
		author, found := authorsByName[textnorm.Fold(sample.Name)]
		if found {
			report.AuthorsSkipped++
			service.log(context).Info("seed_author_exists", slog.String("name", author.Name))
		} else {
			author = &Author{Name: sample.Name, BirthDate: sample.BirthDate, DateOfDeath: sample.DateOfDeath}
			if err := service.CreateAuthor(context, author); err != nil {
				return report, err
			}
			authorsByName[textnorm.Fold(author.Name)] = author
			report.AuthorsAdded++
		}

		for _, sampleBook := range sample.Books {
			if _, exists := booksByISBN[sampleBook.ISBN]; exists {
				report.BooksSkipped++
				service.log(context).Info("seed_book_exists", slog.String("isbn", sampleBook.ISBN))
				continue
			}

			book := &Book{
				ISBN:            sampleBook.ISBN,
				Title:           sampleBook.Title,
				PublicationYear: sampleBook.PublicationYear,
				AuthorID:        author.ID,
			}
			if err := service.CreateBook(context, book); err != nil {
				return report, err
			}
			booksByISBN[book.ISBN] = book
			report.BooksAdded++
		}
	}

	return report, nil
}
