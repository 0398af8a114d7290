// Copyright (c) 2026 Bookshelf. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package dberr turns pgx and PostgreSQL errors into [apperr.AppError] values
// so store methods never leak driver details to a page.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/taibuivan/bookshelf/internal/platform/apperr"
)

// Messages shown when a constraint fires without a more specific mapping in
// the calling store.
const (
	msgDuplicate  = "A record with the same value already exists"
	msgMissingRef = "Referenced record does not exist"
	msgInvalid    = "Value violates a data constraint"
)

// Wrap classifies err. action names the store step and ends up in the cause
// chain for logs.
func Wrap(err error, action string) error {
	return WrapEntity(err, action, "Record")
}

// WrapEntity is [Wrap] with the entity named in the NOT_FOUND message,
// e.g. "Book not found".
func WrapEntity(err error, action, entity string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(entity)
	}

	cause := fmt.Errorf("%s: %w", action, err)

	var classified *apperr.AppError
	switch code(err) {
	case pgerrcode.UniqueViolation:
		classified = apperr.Conflict(msgDuplicate)
	case pgerrcode.ForeignKeyViolation:
		classified = apperr.ValidationError(msgMissingRef)
	case pgerrcode.CheckViolation, pgerrcode.NotNullViolation, pgerrcode.StringDataRightTruncationDataException:
		classified = apperr.ValidationError(msgInvalid)
	default:
		return apperr.Internal(cause)
	}
	classified.Cause = cause
	return classified
}

// ConstraintName returns the violated constraint, or "" for non-Postgres errors.
func ConstraintName(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.ConstraintName
	}
	return ""
}

func code(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
