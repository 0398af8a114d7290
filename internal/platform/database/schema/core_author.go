// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package schema holds the table and column names of the catalog schema so
// that SQL in the store layer never repeats string literals.
package schema

// CoreAuthorTable represents the 'author' table
type CoreAuthorTable struct {
	Table       string
	ID          string
	Name        string
	BirthDate   string
	DateOfDeath string
	CreatedAt   string
	UpdatedAt   string
}

// CoreAuthor is the schema definition for author
var CoreAuthor = CoreAuthorTable{
	Table:       "author",
	ID:          "id",
	Name:        "name",
	BirthDate:   "birth_date",
	DateOfDeath: "date_of_death",
	CreatedAt:   "created_at",
	UpdatedAt:   "updated_at",
}

func (t CoreAuthorTable) Columns() []string {
	return []string{t.ID, t.Name, t.BirthDate, t.DateOfDeath, t.CreatedAt, t.UpdatedAt}
}
