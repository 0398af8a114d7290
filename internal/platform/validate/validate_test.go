// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/bookshelf/internal/platform/apperr"
	"github.com/taibuivan/bookshelf/internal/platform/validate"
)

/*
TestValidator_Required tests the mandatory field validation logic.
*/
func TestValidator_Required(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		value    string
		hasError bool
	}{
		{"valid_string", "name", "Jane Austen", false},
		{"empty_string", "name", "", true},
		{"whitespace_only", "name", "   ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.Required(tt.field, tt.value)

			if tt.hasError {
				assert.True(t, v.HasErrors())
				err := v.Err()
				require.NotNil(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, apperr.CodeValidation, ae.Code)
				assert.Equal(t, tt.field, ae.Details[0].Field)
			} else {
				assert.False(t, v.HasErrors())
				assert.Nil(t, v.Err())
			}
		})
	}
}

/*
TestValidator_Range checks inclusive bounds.
*/
func TestValidator_Range(t *testing.T) {
	tests := []struct {
		value   int
		isValid bool
	}{
		{0, false},
		{1, true},
		{10, true},
		{11, false},
	}

	for _, tt := range tests {
		v := &validate.Validator{}
		v.Range("rating", tt.value, 1, 10)
		assert.Equal(t, !tt.isValid, v.HasErrors(), "value %d", tt.value)
	}
}

/*
TestValidator_URL checks the cover URL rule.
*/
func TestValidator_URL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		isValid bool
	}{
		{"https", "https://covers.example.org/emma.jpg", true},
		{"http", "http://example.org/a.png", true},
		{"missing_scheme", "example.org/a.png", false},
		{"ftp_scheme", "ftp://example.org/a.png", false},
		{"garbage", "::not a url", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &validate.Validator{}
			v.URL("cover_url", tt.url)
			assert.Equal(t, !tt.isValid, v.HasErrors())
		})
	}
}

/*
TestValidator_KeepsFirstProblemPerField checks accumulation across fields and
that a field never collects two messages.
*/
func TestValidator_KeepsFirstProblemPerField(t *testing.T) {
	v := &validate.Validator{}

	err := v.
		Required("isbn", "").
		MaxLen("isbn", "", 20).
		Required("title", "   ").
		MaxLen("title", "   ", 1).
		URL("cover_url", "not a url").
		Err()

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, validate.Summary, ae.Message)

	require.Len(t, ae.Details, 3)
	assert.Equal(t, apperr.FieldError{Field: "isbn", Message: validate.MsgRequired}, ae.Details[0])
	assert.Equal(t, apperr.FieldError{Field: "title", Message: validate.MsgRequired}, ae.Details[1])
	assert.Equal(t, apperr.FieldError{Field: "cover_url", Message: validate.MsgURL}, ae.Details[2])
}

func TestValidator_OptionalRules(t *testing.T) {
	rating, cover := 11, "ftp://example.org/a.png"

	v := &validate.Validator{}
	v.OptionalRange("rating", nil, 1, 10).OptionalURL("cover_url", nil, 512)
	assert.False(t, v.HasErrors(), "unset values are not checked")

	v.OptionalRange("rating", &rating, 1, 10).OptionalURL("cover_url", &cover, 512)
	ae := apperr.As(v.Err())
	require.NotNil(t, ae)
	assert.Len(t, ae.Details, 2)
}

/*
TestValidator_Parsing covers the form helpers: empty optional input is nil,
malformed input is recorded instead of coerced.
*/
func TestValidator_Parsing(t *testing.T) {
	v := &validate.Validator{}

	assert.Nil(t, v.Int("publication_year", ""))
	assert.Equal(t, 1815, *v.Int("publication_year", "1815"))
	assert.Nil(t, v.Date("birth_date", ""))
	assert.Equal(t, 1775, v.Date("birth_date", "1775-12-16").Year())
	assert.Equal(t, 3, v.RequiredInt("author_id", "3", "Select an author"))
	require.False(t, v.HasErrors())

	assert.Nil(t, v.Int("rating", "7.5"))
	assert.Nil(t, v.Date("date_of_death", "16/12/1775"))
	assert.Zero(t, v.RequiredInt("author_id", "", "Select an author"))

	ae := apperr.As(v.Err())
	require.NotNil(t, ae)
	assert.Equal(t, []apperr.FieldError{
		{Field: "rating", Message: validate.MsgWholeNumber},
		{Field: "date_of_death", Message: validate.MsgDate},
		{Field: "author_id", Message: "Select an author"},
	}, ae.Details)
}

func TestValidator_IntOutsideIntegerColumn(t *testing.T) {
	v := &validate.Validator{}

	assert.Nil(t, v.Int("publication_year", "3000000000"))
	assert.Zero(t, v.RequiredInt("author_id", "3000000000", "Select an author"))

	ae := apperr.As(v.Err())
	require.NotNil(t, ae)
	assert.Equal(t, []apperr.FieldError{
		{Field: "publication_year", Message: validate.MsgTooLarge},
		{Field: "author_id", Message: "Select an author"},
	}, ae.Details)
}

/*
TestFieldErr builds a single-field validation error.
*/
func TestFieldErr(t *testing.T) {
	err := validate.FieldErr("rating", "Rating must be a whole number")

	assert.Equal(t, apperr.CodeValidation, err.Code)
	require.Len(t, err.Details, 1)
	assert.Equal(t, "rating", err.Details[0].Field)
	assert.Equal(t, "Rating must be a whole number", err.Error())
}
