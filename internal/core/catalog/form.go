// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/taibuivan/bookshelf/internal/platform/apperr"
	requestutil "github.com/taibuivan/bookshelf/internal/platform/request"
	"github.com/taibuivan/bookshelf/internal/platform/validate"
	"github.com/taibuivan/bookshelf/pkg/convert"
	"github.com/taibuivan/bookshelf/pkg/pointer"
)

// # Form Decoding

// Decoding turns form strings into typed fields. Malformed values are
// reported per field; nothing is coerced to empty.

func decodeAuthorForm(request *http.Request) (*Author, error) {
	if err := request.ParseForm(); err != nil {
		return nil, apperr.ValidationError("Malformed form submission")
	}

	validator := &validate.Validator{}
	author := &Author{
		Name:        requestutil.Form(request, FieldName),
		BirthDate:   validator.Date(FieldBirthDate, requestutil.Form(request, FieldBirthDate)),
		DateOfDeath: validator.Date(FieldDateOfDeath, requestutil.Form(request, FieldDateOfDeath)),
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}
	return author, nil
}

func decodeBookForm(request *http.Request) (*Book, error) {
	if err := request.ParseForm(); err != nil {
		return nil, apperr.ValidationError("Malformed form submission")
	}

	validator := &validate.Validator{}
	book := &Book{
		ISBN:            requestutil.Form(request, FieldISBN),
		Title:           requestutil.Form(request, FieldTitle),
		PublicationYear: validator.Int(FieldYear, requestutil.Form(request, FieldYear)),
		CoverURL:        convert.OptionalString(requestutil.Form(request, FieldCoverURL)),
		Rating:          validator.Int(FieldRating, requestutil.Form(request, FieldRating)),
		AuthorID:        validator.RequiredInt(FieldAuthorID, requestutil.Form(request, FieldAuthorID), msgSelectAuthor),
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}
	return book, nil
}

// # Form Prefill

func authorValues(author *Author) url.Values {
	values := url.Values{}
	values.Set(FieldName, author.Name)
	if author.BirthDate != nil {
		values.Set(FieldBirthDate, author.BirthDate.Format(convert.DateLayout))
	}
	if author.DateOfDeath != nil {
		values.Set(FieldDateOfDeath, author.DateOfDeath.Format(convert.DateLayout))
	}
	return values
}

func bookValues(book *Book) url.Values {
	values := url.Values{}
	values.Set(FieldISBN, book.ISBN)
	values.Set(FieldTitle, book.Title)
	values.Set(FieldCoverURL, pointer.Val(book.CoverURL))
	values.Set(FieldAuthorID, strconv.Itoa(book.AuthorID))
	if book.PublicationYear != nil {
		values.Set(FieldYear, strconv.Itoa(*book.PublicationYear))
	}
	if book.Rating != nil {
		values.Set(FieldRating, strconv.Itoa(*book.Rating))
	}
	return values
}
