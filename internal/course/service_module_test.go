// Copyright (c) 2026 Courseforge. All rights reserved.
// Author: dev@courseforge.app

package course_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courseforge/courseforge/internal/course"
	"github.com/courseforge/courseforge/internal/platform/apperr"
	"github.com/courseforge/courseforge/pkg/pointer"
)

// # Module Creation

func TestService_CreateModule(t *testing.T) {
	ctx := context.Background()

	t.Run("order_defaults_to_zero", func(t *testing.T) {
		f := newFixture()
		created, err := f.service.CreateCourse(ctx, identity("alice"), course.CreateCourseInput{Title: "C", Slug: "c"})
		require.NoError(t, err)

		module, err := f.service.CreateModule(ctx, identity("alice"), created.ID, course.CreateModuleInput{
			Title: "  Intro  ",
		})
		require.NoError(t, err)

		assert.Equal(t, "Intro", module.Title)
		assert.Equal(t, 0, module.Order)
		assert.Equal(t, created.ID, module.CourseID)
	})

	t.Run("negative_order_rejected", func(t *testing.T) {
		f := newFixture()
		created, err := f.service.CreateCourse(ctx, identity("alice"), course.CreateCourseInput{Title: "C", Slug: "c"})
		require.NoError(t, err)

		_, err = f.service.CreateModule(ctx, identity("alice"), created.ID, course.CreateModuleInput{
			Title: "Intro",
			Order: pointer.To(-1),
		})
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
		require.Len(t, ae.Details, 1)
		assert.Equal(t, course.FieldOrder, ae.Details[0].Field)
	})

	t.Run("guard_runs_before_validation", func(t *testing.T) {
		f := newFixture()
		created, err := f.service.CreateCourse(ctx, identity("bob"), course.CreateCourseInput{Title: "B", Slug: "b"})
		require.NoError(t, err)

		// Even with an invalid payload, a non-owner learns nothing beyond 403.
		_, err = f.service.CreateModule(ctx, identity("alice"), created.ID, course.CreateModuleInput{Title: ""})
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, apperr.As(err).HTTPStatus)
	})

	t.Run("unknown_course_is_not_found", func(t *testing.T) {
		f := newFixture()
		_, err := f.service.CreateModule(ctx, identity("alice"), "018f0000-0000-7000-8000-000000000000", course.CreateModuleInput{Title: "M"})
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)
	})
}

// # Module Updates

func TestService_UpdateModule(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_, moduleID, _ := seedHierarchy(t, f, "alice")

	t.Run("title_only_keeps_order", func(t *testing.T) {
		updated, err := f.service.UpdateModule(ctx, identity("alice"), moduleID, course.ModulePatch{
			Title: pointer.To("Renamed"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, 0, updated.Order)
	})

	t.Run("order_only_keeps_title", func(t *testing.T) {
		updated, err := f.service.UpdateModule(ctx, identity("alice"), moduleID, course.ModulePatch{
			Order: pointer.To(7),
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, 7, updated.Order)
	})

	t.Run("negative_order_rejected", func(t *testing.T) {
		_, err := f.service.UpdateModule(ctx, identity("alice"), moduleID, course.ModulePatch{
			Order: pointer.To(-3),
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperr.As(err).HTTPStatus)
	})

	t.Run("non_owner_forbidden", func(t *testing.T) {
		_, err := f.service.UpdateModule(ctx, identity("mallory"), moduleID, course.ModulePatch{
			Title: pointer.To("Hijacked"),
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, apperr.As(err).HTTPStatus)
	})
}

// # Module Deletion

/*
TestService_DeleteModule verifies the cascade to lessons and that sibling
modules survive.
*/
func TestService_DeleteModule(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	courseID, moduleID, lessonID := seedHierarchy(t, f, "alice")

	sibling, err := f.service.CreateModule(ctx, identity("alice"), courseID, course.CreateModuleInput{Title: "Sibling"})
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteModule(ctx, identity("alice"), moduleID))

	_, err = f.service.GetModule(ctx, identity("alice"), moduleID)
	assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)

	_, err = f.service.GetLesson(ctx, identity("alice"), lessonID)
	assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)

	// The course and the sibling module are untouched.
	tree, err := f.service.GetCourse(ctx, identity("alice"), courseID)
	require.NoError(t, err)
	require.Len(t, tree.Modules, 1)
	assert.Equal(t, sibling.ID, tree.Modules[0].ID)
}
