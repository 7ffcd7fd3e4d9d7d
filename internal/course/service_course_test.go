// Copyright (c) 2026 Courseforge. All rights reserved.
// Author: dev@courseforge.app

package course_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courseforge/courseforge/internal/course"
	"github.com/courseforge/courseforge/internal/platform/apperr"
	"github.com/courseforge/courseforge/pkg/pointer"
)

// # Course Creation

/*
TestService_CreateCourse verifies sanitization, validation, and defaults.
*/
func TestService_CreateCourse(t *testing.T) {
	ctx := context.Background()

	t.Run("success_with_sanitization", func(t *testing.T) {
		f := newFixture()
		created, err := f.service.CreateCourse(ctx, identity("alice"), course.CreateCourseInput{
			Title:       "  JS <b>Basics</b>  ",
			Slug:        "js-basics",
			Description: "",
		})
		require.NoError(t, err)

		// Angle brackets stripped, whitespace trimmed.
		assert.Equal(t, "JS bBasics/b", created.Title)
		assert.Equal(t, "alice", created.UserID)
		assert.False(t, created.Published)
		assert.Empty(t, created.Description)
		assert.NotEmpty(t, created.ID)
	})

	t.Run("validation_failures", func(t *testing.T) {
		tests := []struct {
			name  string
			input course.CreateCourseInput
			field string
		}{
			{"empty_title", course.CreateCourseInput{Title: "   ", Slug: "ok-slug"}, course.FieldTitle},
			{"uppercase_slug", course.CreateCourseInput{Title: "T", Slug: "Not-Lower"}, course.FieldSlug},
			{"underscore_slug", course.CreateCourseInput{Title: "T", Slug: "has_underscore"}, course.FieldSlug},
			{"missing_slug", course.CreateCourseInput{Title: "T", Slug: ""}, course.FieldSlug},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newFixture()
				_, err := f.service.CreateCourse(ctx, identity("alice"), tt.input)
				require.Error(t, err)

				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, http.StatusBadRequest, ae.HTTPStatus)

				found := false
				for _, detail := range ae.Details {
					if detail.Field == tt.field {
						found = true
					}
				}
				assert.True(t, found, "expected a detail on field %q", tt.field)
			})
		}
	})

	t.Run("unauthenticated", func(t *testing.T) {
		f := newFixture()
		_, err := f.service.CreateCourse(ctx, nil, course.CreateCourseInput{Title: "T", Slug: "t"})
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, apperr.As(err).HTTPStatus)
	})
}

/*
TestService_CreateCourse_SlugTaken verifies the uniqueness pre-check and
that the conflict carries a field-level detail on "slug". Slug uniqueness is
global, not per user.
*/
func TestService_CreateCourse_SlugTaken(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	_, err := f.service.CreateCourse(ctx, identity("alice"), course.CreateCourseInput{Title: "A", Slug: "shared"})
	require.NoError(t, err)

	// A different user colliding on the same slug still conflicts.
	_, err = f.service.CreateCourse(ctx, identity("bob"), course.CreateCourseInput{Title: "B", Slug: "shared"})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusConflict, ae.HTTPStatus)
	require.Len(t, ae.Details, 1)
	assert.Equal(t, course.FieldSlug, ae.Details[0].Field)
}

/*
TestService_CreateCourse_SlugRaceAtCommit verifies that losing the unique
constraint race after a passing pre-check surfaces as the same slug
conflict, never a 500.
*/
func TestService_CreateCourse_SlugRaceAtCommit(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	f.store.failCreateWithSlugConflict = true

	_, err := f.service.CreateCourse(ctx, identity("alice"), course.CreateCourseInput{Title: "A", Slug: "raced"})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusConflict, ae.HTTPStatus)
	require.Len(t, ae.Details, 1)
	assert.Equal(t, course.FieldSlug, ae.Details[0].Field)
}

// # Course Updates

/*
TestService_UpdateCourse verifies partial-update semantics: absent fields
stay untouched, and writing the unchanged slug back is not a conflict.
*/
func TestService_UpdateCourse(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	created, err := f.service.CreateCourse(ctx, identity("alice"), course.CreateCourseInput{
		Title: "Original", Slug: "original", Description: "Desc",
	})
	require.NoError(t, err)

	t.Run("title_only", func(t *testing.T) {
		updated, err := f.service.UpdateCourse(ctx, identity("alice"), created.ID, course.CoursePatch{
			Title: pointer.To("Renamed"),
		})
		require.NoError(t, err)

		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, "original", updated.Slug)
		assert.Equal(t, "Desc", updated.Description)
		assert.False(t, updated.Published)
	})

	t.Run("same_slug_is_not_a_conflict", func(t *testing.T) {
		updated, err := f.service.UpdateCourse(ctx, identity("alice"), created.ID, course.CoursePatch{
			Slug: pointer.To("original"),
		})
		require.NoError(t, err)
		assert.Equal(t, "original", updated.Slug)
	})

	t.Run("slug_collision_with_other_course", func(t *testing.T) {
		_, err := f.service.CreateCourse(ctx, identity("alice"), course.CreateCourseInput{Title: "B", Slug: "held"})
		require.NoError(t, err)

		_, err = f.service.UpdateCourse(ctx, identity("alice"), created.ID, course.CoursePatch{
			Slug: pointer.To("held"),
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusConflict, apperr.As(err).HTTPStatus)
	})

	t.Run("clearing_description", func(t *testing.T) {
		updated, err := f.service.UpdateCourse(ctx, identity("alice"), created.ID, course.CoursePatch{
			Description: pointer.To(""),
		})
		require.NoError(t, err)
		assert.Empty(t, updated.Description)
	})

	t.Run("invalid_patch_field", func(t *testing.T) {
		_, err := f.service.UpdateCourse(ctx, identity("alice"), created.ID, course.CoursePatch{
			Title: pointer.To("   "),
		})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperr.As(err).HTTPStatus)
	})
}

// # Listing & Tree

/*
TestService_ListCourses verifies owner filtering, module counts, and
updatedat-descending order.
*/
func TestService_ListCourses(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	first, err := f.service.CreateCourse(ctx, identity("alice"), course.CreateCourseInput{Title: "First", Slug: "first"})
	require.NoError(t, err)
	second, err := f.service.CreateCourse(ctx, identity("alice"), course.CreateCourseInput{Title: "Second", Slug: "second"})
	require.NoError(t, err)
	_, err = f.service.CreateCourse(ctx, identity("bob"), course.CreateCourseInput{Title: "Bobs", Slug: "bobs"})
	require.NoError(t, err)

	_, err = f.service.CreateModule(ctx, identity("alice"), first.ID, course.CreateModuleInput{Title: "M1"})
	require.NoError(t, err)
	_, err = f.service.CreateModule(ctx, identity("alice"), first.ID, course.CreateModuleInput{Title: "M2"})
	require.NoError(t, err)

	// Force a deterministic recency order: first was updated most recently.
	f.store.courses[second.ID].UpdatedAt = time.Now().Add(-time.Hour)
	f.store.courses[first.ID].UpdatedAt = time.Now()

	courses, err := f.service.ListCourses(ctx, identity("alice"))
	require.NoError(t, err)
	require.Len(t, courses, 2)

	// Bob's course is invisible, not forbidden.
	assert.Equal(t, "First", courses[0].Title)
	assert.Equal(t, 2, courses[0].ModuleCount)
	assert.Equal(t, "Second", courses[1].Title)
	assert.Equal(t, 0, courses[1].ModuleCount)

	_, err = f.service.ListCourses(ctx, nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, apperr.As(err).HTTPStatus)
}

/*
TestService_GetCourse_Tree verifies the tree ordering: modules ascending by
(order, id), lessons likewise within each module.
*/
func TestService_GetCourse_Tree(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	created, err := f.service.CreateCourse(ctx, identity("alice"), course.CreateCourseInput{Title: "Tree", Slug: "tree"})
	require.NoError(t, err)

	// Created out of order on purpose.
	late, err := f.service.CreateModule(ctx, identity("alice"), created.ID, course.CreateModuleInput{Title: "Late", Order: pointer.To(5)})
	require.NoError(t, err)
	early, err := f.service.CreateModule(ctx, identity("alice"), created.ID, course.CreateModuleInput{Title: "Early", Order: pointer.To(1)})
	require.NoError(t, err)

	// Duplicate orders are allowed; UUIDv7 ids break the tie in insertion order.
	tieA, err := f.service.CreateModule(ctx, identity("alice"), created.ID, course.CreateModuleInput{Title: "TieA", Order: pointer.To(3)})
	require.NoError(t, err)
	tieB, err := f.service.CreateModule(ctx, identity("alice"), created.ID, course.CreateModuleInput{Title: "TieB", Order: pointer.To(3)})
	require.NoError(t, err)

	_, err = f.service.CreateLesson(ctx, identity("alice"), early.ID, course.CreateLessonInput{Title: "L2", Order: pointer.To(2)})
	require.NoError(t, err)
	_, err = f.service.CreateLesson(ctx, identity("alice"), early.ID, course.CreateLessonInput{Title: "L1", Order: pointer.To(1)})
	require.NoError(t, err)

	tree, err := f.service.GetCourse(ctx, identity("alice"), created.ID)
	require.NoError(t, err)
	require.Len(t, tree.Modules, 4)
	assert.Equal(t, 4, tree.ModuleCount)

	assert.Equal(t, early.ID, tree.Modules[0].ID)
	assert.Equal(t, tieA.ID, tree.Modules[1].ID)
	assert.Equal(t, tieB.ID, tree.Modules[2].ID)
	assert.Equal(t, late.ID, tree.Modules[3].ID)

	require.Len(t, tree.Modules[0].Lessons, 2)
	assert.Equal(t, "L1", tree.Modules[0].Lessons[0].Title)
	assert.Equal(t, "L2", tree.Modules[0].Lessons[1].Title)
}

// # Cascade Delete

/*
TestService_DeleteCourse verifies the cascade: after deletion, every former
child id resolves to NotFound.
*/
func TestService_DeleteCourse(t *testing.T) {
	ctx := context.Background()
	f := newFixture()
	courseID, moduleID, lessonID := seedHierarchy(t, f, "alice")

	require.NoError(t, f.service.DeleteCourse(ctx, identity("alice"), courseID))

	_, err := f.service.GetCourse(ctx, identity("alice"), courseID)
	assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)

	_, err = f.service.GetModule(ctx, identity("alice"), moduleID)
	assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)

	_, err = f.service.GetLesson(ctx, identity("alice"), lessonID)
	assert.Equal(t, http.StatusNotFound, apperr.As(err).HTTPStatus)
}

// # Slug Suggestion

/*
TestService_SuggestSlug verifies normalization and suffix probing.
*/
func TestService_SuggestSlug(t *testing.T) {
	ctx := context.Background()
	f := newFixture()

	t.Run("normalizes_title", func(t *testing.T) {
		suggestion, err := f.service.SuggestSlug(ctx, identity("alice"), "Débuter en Go!")
		require.NoError(t, err)
		assert.Equal(t, "debuter-en-go", suggestion)
	})

	t.Run("probes_suffixes_until_free", func(t *testing.T) {
		_, err := f.service.CreateCourse(ctx, identity("alice"), course.CreateCourseInput{Title: "Go", Slug: "go-course"})
		require.NoError(t, err)
		_, err = f.service.CreateCourse(ctx, identity("alice"), course.CreateCourseInput{Title: "Go", Slug: "go-course-2"})
		require.NoError(t, err)

		suggestion, err := f.service.SuggestSlug(ctx, identity("alice"), "Go Course")
		require.NoError(t, err)
		assert.Equal(t, "go-course-3", suggestion)
	})

	t.Run("unusable_title", func(t *testing.T) {
		_, err := f.service.SuggestSlug(ctx, identity("alice"), "!!!")
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, apperr.As(err).HTTPStatus)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		_, err := f.service.SuggestSlug(ctx, nil, "Anything")
		require.Error(t, err)
		assert.Equal(t, http.StatusUnauthorized, apperr.As(err).HTTPStatus)
	})
}
