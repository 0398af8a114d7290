// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package convert parses optional form values into typed pointers.

Every helper distinguishes three outcomes: an empty input (nil, nil), a
well-formed input (value, nil) and a malformed input (nil, error). Callers
turn the error into a field-level validation failure; nothing is silently
coerced to a zero value.
*/
package convert

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DateLayout is the HTML date input format.
const DateLayout = "2006-01-02"

// ErrOutOfRange marks a well-formed number that does not fit an INTEGER column.
var ErrOutOfRange = errors.New("convert: number out of range")

// OptionalInt parses a base-10 integer that fits in 32 bits. Empty input yields nil.
func OptionalInt(s string) (*int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	v, err := strconv.ParseInt(s, 10, 32)
	if errors.Is(err, strconv.ErrRange) {
		return nil, fmt.Errorf("%w: %q", ErrOutOfRange, s)
	}
	if err != nil {
		return nil, fmt.Errorf("convert: %q is not a whole number", s)
	}
	value := int(v)
	return &value, nil
}

// RequiredInt parses a base-10 integer and rejects empty input.
func RequiredInt(s string) (int, error) {
	v, err := OptionalInt(s)
	if err != nil {
		return 0, err
	}
	if v == nil {
		return 0, fmt.Errorf("convert: value is required")
	}
	return *v, nil
}

// OptionalDate parses a YYYY-MM-DD calendar date. Empty input yields nil.
func OptionalDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	v, err := time.Parse(DateLayout, s)
	if err != nil {
		return nil, fmt.Errorf("convert: %q is not a YYYY-MM-DD date", s)
	}
	return &v, nil
}

// OptionalString returns nil for blank input and a pointer to the trimmed value otherwise.
func OptionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
