// Copyright (c) 2026 Courseforge. All rights reserved.
// Author: dev@courseforge.app

package course_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courseforge/courseforge/internal/course"
	"github.com/courseforge/courseforge/internal/platform/apperr"
	"github.com/courseforge/courseforge/pkg/pointer"
)

// # Lesson Creation

func TestService_CreateLesson(t *testing.T) {
	ctx := context.Background()

	t.Run("content_optional_order_defaults", func(t *testing.T) {
		f := newFixture()
		_, moduleID, _ := seedHierarchy(t, f, "alice")

		lesson, err := f.service.CreateLesson(ctx, identity("alice"), moduleID, course.CreateLessonInput{
			Title: "  Hello <World>  ",
		})
		require.NoError(t, err)

		assert.Equal(t, "Hello World", lesson.Title)
		assert.Empty(t, lesson.Content)
		assert.Equal(t, 0, lesson.Order)
		assert.Equal(t, moduleID, lesson.ModuleID)
	})

	t.Run("content_too_long", func(t *testing.T) {
		f := newFixture()
		_, moduleID, _ := seedHierarchy(t, f, "alice")

		_, err := f.service.CreateLesson(ctx, identity("alice"), moduleID, course.CreateLessonInput{
			Title:   "L",
			Content: strings.Repeat("a", course.ContentMaxLen+1),
		})
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)
		require.Len(t, ae.Details, 1)
		assert.Equal(t, course.FieldContent, ae.Details[0].Field)
	})

	t.Run("non_owner_module_forbidden", func(t *testing.T) {
		f := newFixture()
		_, moduleID, _ := seedHierarchy(t, f, "bob")

		_, err := f.service.CreateLesson(ctx, identity("alice"), moduleID, course.CreateLessonInput{Title: "L"})
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, apperr.As(err).HTTPStatus)
	})

	t.Run("unknown_module_is_not_found", func(t *testing.T) {
		f := newFixture()
		_, err := f.service.CreateLesson(ctx, identity("alice"), "018f0000-0000-7000-8000-000000000000", course.CreateLessonInput{Title: "L"})
		require.Error(t, err)
		assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)
	})
}

// # Lesson Updates

func TestService_UpdateLesson(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_, moduleID, _ := seedHierarchy(t, f, "alice")

	created, err := f.service.CreateLesson(ctx, identity("alice"), moduleID, course.CreateLessonInput{
		Title:   "Original",
		Content: "Body",
		Order:   pointer.To(2),
	})
	require.NoError(t, err)

	t.Run("title_only", func(t *testing.T) {
		updated, err := f.service.UpdateLesson(ctx, identity("alice"), created.ID, course.LessonPatch{
			Title: pointer.To("Renamed"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, "Body", updated.Content)
		assert.Equal(t, 2, updated.Order)
	})

	t.Run("clearing_content", func(t *testing.T) {
		updated, err := f.service.UpdateLesson(ctx, identity("alice"), created.ID, course.LessonPatch{
			Content: pointer.To(""),
		})
		require.NoError(t, err)
		assert.Empty(t, updated.Content)
		assert.Equal(t, "Renamed", updated.Title)
	})

	t.Run("negative_order_rejected", func(t *testing.T) {
		_, err := f.service.UpdateLesson(ctx, identity("alice"), created.ID, course.LessonPatch{
			Order: pointer.To(-1),
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperr.As(err).HTTPStatus)
	})

	t.Run("empty_title_rejected", func(t *testing.T) {
		_, err := f.service.UpdateLesson(ctx, identity("alice"), created.ID, course.LessonPatch{
			Title: pointer.To("  "),
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperr.As(err).HTTPStatus)
	})

	t.Run("non_owner_forbidden", func(t *testing.T) {
		_, err := f.service.UpdateLesson(ctx, identity("mallory"), created.ID, course.LessonPatch{
			Title: pointer.To("Hijacked"),
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusForbidden, apperr.As(err).HTTPStatus)
	})
}

// # Lesson Deletion

func TestService_DeleteLesson(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	_, moduleID, lessonID := seedHierarchy(t, f, "alice")

	require.NoError(t, f.service.DeleteLesson(ctx, identity("alice"), lessonID))

	_, err := f.service.GetLesson(ctx, identity("alice"), lessonID)
	assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)

	// The parent module is untouched.
	module, err := f.service.GetModule(ctx, identity("alice"), moduleID)
	require.NoError(t, err)
	assert.NotNil(t, module)

	// Deleting again is a 404, not an error swallow.
	err = f.service.DeleteLesson(ctx, identity("alice"), lessonID)
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)
}
