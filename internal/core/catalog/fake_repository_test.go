// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"cmp"
	"context"
	"errors"
	"slices"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/taibuivan/bookshelf/internal/core/catalog"
	"github.com/taibuivan/bookshelf/internal/platform/apperr"
)

// memoryRepository is an in-memory [catalog.Repository] for service and
// handler tests. failDeleteAuthorRow simulates a failure in the middle of a
// cascade; the whole unit must then be left untouched.
type memoryRepository struct {
	mu      sync.Mutex
	nextID  int
	authors map[int]*catalog.Author
	books   map[int]*catalog.Book

	failDeleteAuthorRow bool
	writes              int
	afterSummary        func()
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{
		authors: map[int]*catalog.Author{},
		books:   map[int]*catalog.Book{},
	}
}

var errInjected = errors.New("injected failure")

func (repo *memoryRepository) id() int {
	repo.nextID++
	return repo.nextID
}

func (repo *memoryRepository) CreateAuthor(_ context.Context, author *catalog.Author) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	author.ID = repo.id()
	author.CreatedAt, author.UpdatedAt = time.Now(), time.Now()
	stored := *author
	repo.authors[author.ID] = &stored
	repo.writes++
	return nil
}

func (repo *memoryRepository) GetAuthor(_ context.Context, id int) (*catalog.Author, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	author, ok := repo.authors[id]
	if !ok {
		return nil, apperr.NotFound("Author")
	}
	copied := *author
	return &copied, nil
}

func (repo *memoryRepository) UpdateAuthor(_ context.Context, author *catalog.Author) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.authors[author.ID]; !ok {
		return apperr.NotFound("Author")
	}
	stored := *author
	repo.authors[author.ID] = &stored
	repo.writes++
	return nil
}

func (repo *memoryRepository) DeleteAuthor(_ context.Context, id int) (int, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	return repo.cascade(id)
}

// cascade mirrors the transactional store: either every row goes or none.
func (repo *memoryRepository) cascade(authorID int) (int, error) {
	if _, ok := repo.authors[authorID]; !ok {
		return 0, apperr.NotFound("Author")
	}
	if repo.failDeleteAuthorRow {
		return 0, apperr.Internal(errInjected)
	}

	removed := 0
	for id, book := range repo.books {
		if book.AuthorID == authorID {
			delete(repo.books, id)
			removed++
		}
	}
	delete(repo.authors, authorID)
	repo.writes++
	return removed, nil
}

func (repo *memoryRepository) ListAuthors(ctx context.Context) ([]*catalog.Author, error) {
	return repo.SearchAuthors(ctx, "", catalog.OrderAsc)
}

func (repo *memoryRepository) SearchAuthors(_ context.Context, query string, order catalog.SortOrder) ([]*catalog.Author, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	var authors []*catalog.Author
	for _, author := range repo.authors {
		if containsFold(author.Name, query) {
			copied := *author
			authors = append(authors, &copied)
		}
	}
	sort.Slice(authors, func(i, j int) bool {
		if order == catalog.OrderDesc {
			return authors[i].Name > authors[j].Name
		}
		return authors[i].Name < authors[j].Name
	})
	return authors, nil
}

func (repo *memoryRepository) CreateBook(_ context.Context, book *catalog.Book) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.authors[book.AuthorID]; !ok {
		return catalog.ErrUnknownAuthor
	}
	for _, existing := range repo.books {
		if existing.ISBN == book.ISBN {
			return catalog.ErrDuplicateISBN
		}
	}

	book.ID = repo.id()
	stored := *book
	repo.books[book.ID] = &stored
	repo.writes++
	return nil
}

func (repo *memoryRepository) GetBook(_ context.Context, id int) (*catalog.Book, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	book, ok := repo.books[id]
	if !ok {
		return nil, apperr.NotFound("Book")
	}
	return repo.hydrate(book), nil
}

func (repo *memoryRepository) hydrate(book *catalog.Book) *catalog.Book {
	copied := *book
	if author, ok := repo.authors[book.AuthorID]; ok {
		copied.AuthorName = author.Name
	}
	return &copied
}

func (repo *memoryRepository) UpdateBook(_ context.Context, book *catalog.Book) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	existing, ok := repo.books[book.ID]
	if !ok {
		return apperr.NotFound("Book")
	}
	for id, other := range repo.books {
		if id != book.ID && other.ISBN == book.ISBN {
			return catalog.ErrDuplicateISBN
		}
	}

	stored := *book
	stored.AIRecommendation = existing.AIRecommendation
	repo.books[book.ID] = &stored
	repo.writes++
	return nil
}

func (repo *memoryRepository) DeleteBook(_ context.Context, id int) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.books[id]; !ok {
		return apperr.NotFound("Book")
	}
	delete(repo.books, id)
	repo.writes++
	return nil
}

func (repo *memoryRepository) DeleteBookAndAuthor(_ context.Context, bookID int) (int, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	book, ok := repo.books[bookID]
	if !ok {
		return 0, apperr.NotFound("Book")
	}
	if _, err := repo.cascade(book.AuthorID); err != nil {
		return 0, err
	}
	return book.AuthorID, nil
}

func (repo *memoryRepository) UpdateRating(_ context.Context, id, rating int) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	book, ok := repo.books[id]
	if !ok {
		return apperr.NotFound("Book")
	}
	book.Rating = &rating
	repo.writes++
	return nil
}

func (repo *memoryRepository) UpdateRecommendation(_ context.Context, id int, text string) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	book, ok := repo.books[id]
	if !ok {
		return apperr.NotFound("Book")
	}
	book.AIRecommendation = &text
	repo.writes++
	return nil
}

func (repo *memoryRepository) CountBooksByAuthor(_ context.Context, authorID int) (int, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	total := 0
	for _, book := range repo.books {
		if book.AuthorID == authorID {
			total++
		}
	}
	return total, nil
}

func (repo *memoryRepository) ListBooksByAuthor(ctx context.Context, authorID int) ([]*catalog.Book, error) {
	books, err := repo.ListBooks(ctx)
	if err != nil {
		return nil, err
	}

	var owned []*catalog.Book
	for _, book := range books {
		if book.AuthorID == authorID {
			owned = append(owned, book)
		}
	}
	return owned, nil
}

func (repo *memoryRepository) ListBooks(ctx context.Context) ([]*catalog.Book, error) {
	return repo.SearchBooks(ctx, catalog.ParseSearch("", "", "", ""))
}

// SearchBooks filters and orders like the SQL store: unrated books sort
// lowest in both directions and ties fall back to id ascending.
func (repo *memoryRepository) SearchBooks(_ context.Context, params catalog.SearchParams) ([]*catalog.Book, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	var books []*catalog.Book
	for _, stored := range repo.books {
		book := repo.hydrate(stored)
		if !params.HasQuery() ||
			containsFold(book.Title, params.Query) ||
			containsFold(book.ISBN, params.Query) ||
			containsFold(book.AuthorName, params.Query) {
			books = append(books, book)
		}
	}
	slices.SortFunc(books, func(a, b *catalog.Book) int {
		if order := compareBooks(a, b, params); order != 0 {
			return order
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return books, nil
}

func compareBooks(a, b *catalog.Book, params catalog.SearchParams) int {
	descending := params.Order == catalog.OrderDesc
	directed := func(order int) int {
		if descending {
			return -order
		}
		return order
	}

	switch params.Sort {
	case catalog.SortAuthor:
		return directed(strings.Compare(a.AuthorName, b.AuthorName))
	case catalog.SortRating:
		switch {
		case a.Rating == nil && b.Rating == nil:
			return 0
		case a.Rating == nil:
			// NULLS FIRST ascending, NULLS LAST descending.
			return directed(-1)
		case b.Rating == nil:
			return directed(1)
		}
		return directed(cmp.Compare(*a.Rating, *b.Rating))
	default:
		return directed(strings.Compare(a.Title, b.Title))
	}
}

// Summary counts rows, then runs afterSummary outside the lock so a test can
// commit a mutation between the read and the cache write.
func (repo *memoryRepository) Summary(_ context.Context) (catalog.Summary, error) {
	repo.mu.Lock()
	summary := catalog.Summary{TotalBooks: len(repo.books), TotalAuthors: len(repo.authors)}
	hook := repo.afterSummary
	repo.mu.Unlock()

	if hook != nil {
		hook()
	}
	return summary, nil
}

func containsFold(value, query string) bool {
	return strings.Contains(strings.ToLower(value), strings.ToLower(query))
}

// memoryCache is a [catalog.SummaryCache] that records how it was used.
type memoryCache struct {
	summary       *catalog.Summary
	generation    int64
	gets          int
	invalidations int
	failGet       bool
}

func (cache *memoryCache) Get(context.Context) (*catalog.Summary, int64, error) {
	cache.gets++
	if cache.failGet {
		return nil, 0, errInjected
	}
	return cache.summary, cache.generation, nil
}

func (cache *memoryCache) Set(_ context.Context, summary catalog.Summary, generation int64) error {
	if generation == cache.generation {
		cache.summary = &summary
	}
	return nil
}

func (cache *memoryCache) Invalidate(context.Context) error {
	cache.summary = nil
	cache.generation++
	cache.invalidations++
	return nil
}
