// Copyright (c) 2026 Reelist. All rights reserved.

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Why a dedicated bridge?
//
// Storage-constraint violations must never leak to clients as raw driver
// errors. The watchlist's (user_id, catalog_id) unique index is the sole
// concurrency guard against double-adds, so its SQLSTATE must be translated
// to a client-facing Conflict deterministically.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ngophan/reelist/internal/platform/apperr"
)

// IsUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation (SQLSTATE 23505).
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
//
// # Mapping
//   - pgx.ErrNoRows        → 404 NotFound for the named resource
//   - SQLSTATE 23505       → 409 Conflict with the given message
//   - anything else        → 500 Internal (cause kept server-side)
func Wrap(err error, resource, conflictMessage string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	if IsUniqueViolation(err) {
		return apperr.Conflict(conflictMessage)
	}

	return apperr.Internal(err)
}
