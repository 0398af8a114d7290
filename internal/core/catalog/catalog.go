// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package catalog defines the core domain of the Bookshelf personal library.

It manages two entities, Authors and the Books they wrote, and the rules that
bind them together.

Core Responsibility:

  - Records: Create, edit and remove Authors and Books.
  - Discovery: Keyword search across books or authors with sortable results.
  - Integrity: No Book ever references a missing Author. Removing an Author
    removes its Books in the same transaction.
  - Curation: Per-book ratings and a cached recommendation text.

This package acts as the source of truth for all catalog data models.
*/
package catalog

import (
	"fmt"
	"strings"
	"time"

	"github.com/taibuivan/bookshelf/internal/platform/apperr"
	"github.com/taibuivan/bookshelf/internal/platform/validate"
)

// # Domain Entities

// Author is a writer tracked by the catalog. It owns zero or more Books.
type Author struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	BirthDate   *time.Time `json:"birth_date"`
	DateOfDeath *time.Time `json:"date_of_death"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Book is a single title in the library. AuthorName is populated by the
// store through a join and is ignored on writes.
type Book struct {
	ID               int       `json:"id"`
	ISBN             string    `json:"isbn"`
	Title            string    `json:"title"`
	PublicationYear  *int      `json:"publication_year"`
	CoverURL         *string   `json:"cover_url"`
	Rating           *int      `json:"rating"`
	AIRecommendation *string   `json:"ai_recommendation"`
	AuthorID         int       `json:"author_id"`
	AuthorName       string    `json:"author_name"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// HasRecommendation reports whether a non-empty recommendation is cached.
func (book *Book) HasRecommendation() bool {
	return book.AIRecommendation != nil && strings.TrimSpace(*book.AIRecommendation) != ""
}

// Summary holds the catalog totals shown on the home page.
type Summary struct {
	TotalBooks   int `json:"total_books"`
	TotalAuthors int `json:"total_authors"`
}

// Recommendations is the payload of the cached recommendations page.
type Recommendations struct {
	Books  []*Book
	Cached int
}

// # Search Enums

// Scope selects which entity a search targets.
type Scope string

const (
	ScopeBooks   Scope = "books"
	ScopeAuthors Scope = "authors"
)

// SortKey selects the column book results are ordered by.
type SortKey string

const (
	SortTitle  SortKey = "title"
	SortAuthor SortKey = "author"
	SortRating SortKey = "rating"
)

// SortOrder is the direction of a sort.
type SortOrder string

const (
	OrderAsc  SortOrder = "asc"
	OrderDesc SortOrder = "desc"
)

// SearchParams is the normalised input of the search pipeline.
type SearchParams struct {
	Query string
	Scope Scope
	Sort  SortKey
	Order SortOrder
}

// HasQuery reports whether a keyword filter is active.
func (params SearchParams) HasQuery() bool {
	return params.Query != ""
}

// ParseSearch turns raw query-string values into [SearchParams].
// Unknown scope, sort or order values fall back to their defaults.
func ParseSearch(query, scope, sort, order string) SearchParams {
	params := SearchParams{
		Query: normalizeText(query),
		Scope: ScopeBooks,
		Sort:  SortTitle,
		Order: OrderAsc,
	}

	switch Scope(strings.ToLower(strings.TrimSpace(scope))) {
	case ScopeAuthors:
		params.Scope = ScopeAuthors
	}

	switch key := SortKey(strings.ToLower(strings.TrimSpace(sort))); key {
	case SortAuthor, SortRating:
		params.Sort = key
	}

	if SortOrder(strings.ToLower(strings.TrimSpace(order))) == OrderDesc {
		params.Order = OrderDesc
	}

	return params
}

// SearchResult is the output of the search pipeline.
//
// NoResults is true only when a keyword was given and no book matched, so an
// intentionally empty catalog never shows the empty-search message.
type SearchResult struct {
	Params    SearchParams
	Books     []*Book
	Authors   []*Author
	NoResults bool
	Summary   Summary
}

// # Delete Workflow

// DeleteState is the outcome of a book delete request.
type DeleteState int

const (
	// DeleteDirect means the book was removed immediately.
	DeleteDirect DeleteState = iota

	// DeletePendingConfirmation means the book is its author's last one and
	// nothing was removed yet.
	DeletePendingConfirmation
)

// DeleteOutcome carries the state of a delete request. For a pending
// confirmation BookID is the only state the follow-up request needs.
type DeleteOutcome struct {
	State  DeleteState
	BookID int
}

// Decision is the follow-up answer to a pending confirmation.
type Decision string

const (
	// DecisionKeepAuthor removes the book and keeps the author with no books.
	DecisionKeepAuthor Decision = "keep_author"

	// DecisionDeleteBoth removes the book and its author together.
	DecisionDeleteBoth Decision = "delete_both"
)

// ParseDecision accepts the confirmation form value ("yes"/"no") as well as
// the decision names themselves.
func ParseDecision(raw string) (Decision, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "yes", string(DecisionDeleteBoth):
		return DecisionDeleteBoth, nil
	case "no", string(DecisionKeepAuthor):
		return DecisionKeepAuthor, nil
	}
	return "", ErrMissingDecision
}

// # Field Names & Limits

const (
	FieldName         = "name"
	FieldBirthDate    = "birth_date"
	FieldDateOfDeath  = "date_of_death"
	FieldISBN         = "isbn"
	FieldTitle        = "title"
	FieldYear         = "publication_year"
	FieldCoverURL     = "cover_url"
	FieldRating       = "rating"
	FieldAuthorID     = "author_id"
	FieldReview       = "ai_recommendation"
	FieldDeleteAuthor = "delete_author"
)

const (
	MinRating = 1
	MaxRating = 10

	maxNameLen     = 128
	maxISBNLen     = 20
	maxTitleLen    = 200
	maxCoverURLLen = 512
)

const msgSelectAuthor = "Select an author"

// # Domain Errors

var (
	ErrDuplicateISBN    = apperr.Conflict("A book with this ISBN already exists")
	ErrUnknownAuthor    = validate.FieldErr(FieldAuthorID, "Selected author does not exist")
	ErrRatingNotNumber  = validate.FieldErr(FieldRating, "Rating must be a whole number")
	ErrRatingOutOfRange = validate.FieldErr(FieldRating, fmt.Sprintf("Rating must be between %d and %d", MinRating, MaxRating))
	ErrEmptyReview      = validate.FieldErr(FieldReview, "Recommendation text cannot be empty")
	ErrMissingDecision  = validate.FieldErr(FieldDeleteAuthor, "Choose whether to delete the author as well")
)
