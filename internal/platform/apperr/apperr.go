// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the error type shared by the store, the service and
the page layer.

An [AppError] answers three questions for a handler: which status to send,
what the user may read, and which form fields need attention. The underlying
cause travels along for logging and is never rendered.

Kinds:

  - NOT_FOUND (404): an id that does not exist.
  - VALIDATION_ERROR (400): input the user can correct on the same form.
  - CONFLICT (409): a uniqueness rule, such as a duplicate ISBN.
  - RATE_LIMITED (429): the per-client request budget is spent.
  - INTERNAL_ERROR (500): everything else.
*/
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// # Error Codes

const (
	CodeNotFound    = "NOT_FOUND"
	CodeConflict    = "CONFLICT"
	CodeValidation  = "VALIDATION_ERROR"
	CodeRateLimited = "RATE_LIMITED"
	CodeInternal    = "INTERNAL_ERROR"
)

// AppError is the canonical error of the application.
//
// Package-level sentinels built from these constructors are shared; callers
// compare them with [errors.Is] and must not modify them.
type AppError struct {
	Code       string       `json:"code"`
	Message    string       `json:"error"`
	HTTPStatus int          `json:"-"`
	Cause      error        `json:"-"`
	Details    []FieldError `json:"details,omitempty"`
}

// FieldError is a problem attached to one form field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error returns the client-safe message.
func (e *AppError) Error() string { return e.Message }

// Unwrap exposes the cause to [errors.Is] and [errors.As].
func (e *AppError) Unwrap() error { return e.Cause }

// FieldMessage returns the message recorded for field, or "".
func (e *AppError) FieldMessage(field string) string {
	for _, detail := range e.Details {
		if detail.Field == field {
			return detail.Message
		}
	}
	return ""
}

// Correctable reports whether the user can fix the problem by editing the
// submitted form: validation failures and conflicts.
func (e *AppError) Correctable() bool {
	return e.Code == CodeValidation || e.Code == CodeConflict
}

// # Constructors

// NotFound creates a 404 error for a named resource.
//
//	apperr.NotFound("Book") // "Book not found"
func NotFound(resource string) *AppError {
	return &AppError{Code: CodeNotFound, Message: resource + " not found", HTTPStatus: http.StatusNotFound}
}

// Conflict creates a 409 error for unique-constraint violations.
func Conflict(msg string) *AppError {
	return &AppError{Code: CodeConflict, Message: msg, HTTPStatus: http.StatusConflict}
}

// ValidationError creates a 400 error with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{Code: CodeValidation, Message: msg, HTTPStatus: http.StatusBadRequest, Details: details}
}

// RateLimited creates a 429 error.
func RateLimited(retryAfterSeconds int) *AppError {
	return &AppError{
		Code:       CodeRateLimited,
		Message:    fmt.Sprintf("Too many requests. Try again in %ds.", retryAfterSeconds),
		HTTPStatus: http.StatusTooManyRequests,
	}
}

// Internal creates a 500 error. The cause is kept for logging only.
func Internal(cause error) *AppError {
	return &AppError{
		Code:       CodeInternal,
		Message:    "An unexpected error occurred",
		HTTPStatus: http.StatusInternalServerError,
		Cause:      cause,
	}
}

// # Helpers

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// From is [As] with a fallback: anything that is not an [*AppError] becomes
// an [Internal] error wrapping err.
func From(err error) *AppError {
	if ae := As(err); ae != nil {
		return ae
	}
	return Internal(err)
}

// HasCode reports whether err carries an [*AppError] with the given code.
func HasCode(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}
