// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package validate collects field-level problems and reports them as one
[apperr.AppError].

A single [Validator] is used in two places:

  - Form decoding: [Validator.Int], [Validator.Date] and [Validator.RequiredInt]
    parse raw form strings and record a problem instead of coercing bad input.
  - The service layer: [Validator.Required], [Validator.MaxLen] and friends
    check the decoded values against the catalog rules.

Field names are the HTML form field names, so a page can show each message
next to the input that caused it.
*/
package validate

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/taibuivan/bookshelf/internal/platform/apperr"
	"github.com/taibuivan/bookshelf/pkg/convert"
)

// Summary is the top-level message of every multi-field validation error.
const Summary = "Please correct the highlighted fields"

// Messages recorded by the parsing helpers.
const (
	MsgRequired    = "This field is required"
	MsgWholeNumber = "Must be a whole number"
	MsgTooLarge    = "Number is too large"
	MsgDate        = "Use the YYYY-MM-DD format"
	MsgURL         = "Must be a valid http(s) URL"
)

// Validator accumulates [apperr.FieldError] values. Only the first problem per
// field is kept, so chained rules never stack messages on one input.
//
// The zero value is ready to use. A Validator is not safe for concurrent use.
type Validator struct {
	errs []apperr.FieldError
}

// # Parsing

// Int parses an optional whole number. Empty input yields nil.
func (v *Validator) Int(field, raw string) *int {
	value, err := convert.OptionalInt(raw)
	if errors.Is(err, convert.ErrOutOfRange) {
		v.Custom(field, true, MsgTooLarge)
		return nil
	}
	v.Custom(field, err != nil, MsgWholeNumber)
	return value
}

// RequiredInt parses a mandatory whole number, recording message when the
// input is empty or malformed.
func (v *Validator) RequiredInt(field, raw, message string) int {
	value, err := convert.RequiredInt(raw)
	v.Custom(field, err != nil, message)
	return value
}

// Date parses an optional YYYY-MM-DD date. Empty input yields nil.
func (v *Validator) Date(field, raw string) *time.Time {
	value, err := convert.OptionalDate(raw)
	v.Custom(field, err != nil, MsgDate)
	return value
}

// # Rules

// Required fails if the trimmed value is empty.
func (v *Validator) Required(field, value string) *Validator {
	return v.Custom(field, strings.TrimSpace(value) == "", MsgRequired)
}

// MaxLen fails if value has more than max characters (runes, not bytes).
func (v *Validator) MaxLen(field, value string, max int) *Validator {
	return v.Custom(field, utf8.RuneCountInString(value) > max, fmt.Sprintf("Maximum %d characters", max))
}

// Range fails if value is outside [min, max].
func (v *Validator) Range(field string, value, min, max int) *Validator {
	return v.Custom(field, value < min || value > max, fmt.Sprintf("Must be between %d and %d", min, max))
}

// OptionalRange applies [Validator.Range] when value is set.
func (v *Validator) OptionalRange(field string, value *int, min, max int) *Validator {
	if value == nil {
		return v
	}
	return v.Range(field, *value, min, max)
}

// URL fails if value is not an absolute http or https URL.
func (v *Validator) URL(field, value string) *Validator {
	parsed, err := url.Parse(value)
	invalid := err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https")
	return v.Custom(field, invalid, MsgURL)
}

// OptionalURL applies [Validator.URL] and [Validator.MaxLen] when value is set.
func (v *Validator) OptionalURL(field string, value *string, max int) *Validator {
	if value == nil {
		return v
	}
	return v.URL(field, *value).MaxLen(field, *value, max)
}

// Custom records message for field when failed is true.
//
//	v.Custom("author_id", id <= 0, "Select an author")
func (v *Validator) Custom(field string, failed bool, message string) *Validator {
	if failed && !v.has(field) {
		v.errs = append(v.errs, apperr.FieldError{Field: field, Message: message})
	}
	return v
}

// # Results

// Err returns a VALIDATION_ERROR carrying every recorded problem, or nil.
func (v *Validator) Err() error {
	if len(v.errs) == 0 {
		return nil
	}
	return apperr.ValidationError(Summary, v.errs...)
}

// HasErrors reports whether any rule has failed so far.
func (v *Validator) HasErrors() bool {
	return len(v.errs) > 0
}

func (v *Validator) has(field string) bool {
	for _, existing := range v.errs {
		if existing.Field == field {
			return true
		}
	}
	return false
}

// FieldErr builds a single-field validation error whose message doubles as
// the page-level message.
func FieldErr(field, message string) *apperr.AppError {
	return apperr.ValidationError(message, apperr.FieldError{Field: field, Message: message})
}
