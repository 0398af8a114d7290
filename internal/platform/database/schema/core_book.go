// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package schema

// CoreBookTable represents the 'book' table
type CoreBookTable struct {
	Table            string
	ID               string
	ISBN             string
	Title            string
	PublicationYear  string
	CoverURL         string
	Rating           string
	AIRecommendation string
	AuthorID         string
	CreatedAt        string
	UpdatedAt        string

	// ISBNKey is the unique constraint guarding ISBN.
	ISBNKey string
	// AuthorFKey is the foreign key from author_id to author.id.
	AuthorFKey string
}

// CoreBook is the schema definition for book
var CoreBook = CoreBookTable{
	Table:            "book",
	ID:               "id",
	ISBN:             "isbn",
	Title:            "title",
	PublicationYear:  "publication_year",
	CoverURL:         "cover_url",
	Rating:           "rating",
	AIRecommendation: "ai_recommendation",
	AuthorID:         "author_id",
	CreatedAt:        "created_at",
	UpdatedAt:        "updated_at",
	ISBNKey:          "book_isbn_key",
	AuthorFKey:       "book_author_id_fkey",
}

func (t CoreBookTable) Columns() []string {
	return []string{
		t.ID, t.ISBN, t.Title, t.PublicationYear, t.CoverURL, t.Rating,
		t.AIRecommendation, t.AuthorID, t.CreatedAt, t.UpdatedAt,
	}
}
