// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"html/template"
	"regexp"
	"strings"
)

const (
	markOpen  = `<mark class="match">`
	markClose = `</mark>`
)

/*
Highlight wraps every case-insensitive occurrence of query in text with a
<mark class="match"> element.

Matches are located on the raw text. Each segment, matched or not, is escaped
before the marker is placed around it, so the marker is never escaped itself
and markup in the text is never interpreted. An empty query only escapes.
*/
func Highlight(text, query string) template.HTML {
	if query == "" {
		return template.HTML(template.HTMLEscapeString(text))
	}

	pattern := regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))

	var builder strings.Builder
	last := 0
	for _, match := range pattern.FindAllStringIndex(text, -1) {
		builder.WriteString(template.HTMLEscapeString(text[last:match[0]]))
		builder.WriteString(markOpen)
		builder.WriteString(template.HTMLEscapeString(text[match[0]:match[1]]))
		builder.WriteString(markClose)
		last = match[1]
	}
	builder.WriteString(template.HTMLEscapeString(text[last:]))

	return template.HTML(builder.String())
}

// TemplateFuncs returns the catalog's template helpers.
func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"highlight": Highlight,
	}
}

// Notices maps redirect notice codes to the messages shown to the user.
var Notices = map[string]string{
	"author_added":         "Author added successfully.",
	"author_updated":       "Author updated successfully.",
	"author_deleted":       "Author and all their books have been deleted.",
	"book_added":           "Book added successfully.",
	"book_updated":         "Book updated successfully.",
	"book_deleted":         "Book deleted successfully.",
	"book_and_author":      "Book and author deleted successfully.",
	"book_kept_author":     "Book deleted. The author was kept in your library.",
	"book_rated":           "Rating saved.",
	"rating_invalid":       "Rating must be a whole number.",
	"rating_out_of_range":  "Rating must be between 1 and 10.",
	"review_updated":       "Recommendation updated successfully.",
	"review_empty":         "Recommendation text cannot be empty.",
	"library_empty":        "Add some books to your library first to see recommendations.",
	"no_cached_reviews":    "No recommendations saved yet. Write one for any book below.",
	"decision_missing":     "Choose whether to delete the author as well.",
	"admin_author_deleted": "Author deleted.",
	"admin_book_deleted":   "Book deleted.",
}
