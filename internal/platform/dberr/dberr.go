// Copyright (c) 2026 Courseforge. All rights reserved.
// Author: dev@courseforge.app

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// Repositories use it to classify pgx failures without leaking SQLSTATE
// codes or query text into the transport layer. Uniqueness races that pass
// an application-level pre-check but lose at commit surface here as the
// same Conflict the pre-check would have produced.
package dberr

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/courseforge/courseforge/internal/platform/apperr"
)

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, resource string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return apperr.NotFound(resource)
	}

	// 2. Unique constraint violations become client-correctable conflicts
	if IsUniqueViolation(err) {
		return apperr.Conflict(resource + " already exists")
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(err)
}

// IsUniqueViolation reports whether err is a PostgreSQL unique-constraint
// violation (SQLSTATE 23505) anywhere in its chain.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}
	return false
}

// ViolatedConstraint returns the name of the violated constraint when err is
// a unique violation, or an empty string otherwise. Repositories use it to
// translate a commit-time race into the field-specific conflict the caller's
// pre-check would have reported.
func ViolatedConstraint(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return pgErr.ConstraintName
	}
	return ""
}
