// Copyright (c) 2026 Courseforge. All rights reserved.
// Author: dev@courseforge.app

package dberr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courseforge/courseforge/internal/platform/apperr"
	"github.com/courseforge/courseforge/internal/platform/dberr"
)

/*
TestWrap_NoRows maps pgx.ErrNoRows to a 404 for the named resource.
*/
func TestWrap_NoRows(t *testing.T) {
	err := dberr.Wrap(pgx.ErrNoRows, "Course")

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusNotFound, ae.HTTPStatus)
	assert.Equal(t, "Course not found", ae.Message)
}

/*
TestWrap_UniqueViolation maps SQLSTATE 23505 to a 409 conflict.
*/
func TestWrap_UniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "course_slug_key"}

	err := dberr.Wrap(fmt.Errorf("exec failed: %w", pgErr), "Slug")

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusConflict, ae.HTTPStatus)
}

/*
TestWrap_Unknown maps everything else to an opaque 500 with the cause retained.
*/
func TestWrap_Unknown(t *testing.T) {
	cause := errors.New("connection reset")
	err := dberr.Wrap(cause, "Course")

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusInternalServerError, ae.HTTPStatus)
	assert.ErrorIs(t, err, cause)

	// The client-facing message must not leak the cause.
	assert.NotContains(t, ae.Message, "connection reset")
}

/*
TestViolatedConstraint extracts the constraint name from wrapped pg errors.
*/
func TestViolatedConstraint(t *testing.T) {
	pgErr := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "course_slug_key"}

	assert.Equal(t, "course_slug_key", dberr.ViolatedConstraint(fmt.Errorf("wrapped: %w", pgErr)))
	assert.Equal(t, "", dberr.ViolatedConstraint(errors.New("not a pg error")))
	assert.True(t, dberr.IsUniqueViolation(pgErr))
	assert.False(t, dberr.IsUniqueViolation(pgx.ErrNoRows))
}
