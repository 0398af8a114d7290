// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package textnorm canonicalises user-entered text before it is stored or
// used as a search term.
//
// # Why NFC
//
// The same visible name ("Émile") can arrive precomposed or as "E" followed
// by a combining accent. PostgreSQL compares bytes, so both forms are folded
// to NFC before they reach the store.
package textnorm

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Text trims surrounding whitespace, composes to NFC and collapses internal
// runs of whitespace into a single space.
func Text(s string) string {
	composed := norm.NFC.String(s)
	return strings.Join(strings.FieldsFunc(composed, unicode.IsSpace), " ")
}

// Multiline is [Text] for free-form bodies: it composes to NFC and trims the
// ends but keeps line breaks intact.
func Multiline(s string) string {
	return strings.TrimSpace(norm.NFC.String(s))
}

// Fold strips accents and lowercases s. It is used for comparisons that
// must ignore diacritics (e.g. sorting seed data), never for storage.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn), norm.NFC)
	result, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(result)
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
