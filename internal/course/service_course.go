// Copyright (c) 2026 Courseforge. All rights reserved.
// Author: dev@courseforge.app

package course

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/courseforge/courseforge/internal/platform/apperr"
	"github.com/courseforge/courseforge/internal/platform/sec"
	"github.com/courseforge/courseforge/internal/platform/validate"
	"github.com/courseforge/courseforge/pkg/pointer"
	"github.com/courseforge/courseforge/pkg/slug"
	"github.com/courseforge/courseforge/pkg/uuid"
)

// # Course Inputs

// CreateCourseInput holds the fields accepted when creating a course.
type CreateCourseInput struct {
	Title       string
	Slug        string
	Description string
	Published   bool
}

// CoursePatch holds the fields of a partial course update. A nil field was
// absent from the request and is neither validated nor written.
type CoursePatch struct {
	Title       *string
	Slug        *string
	Description *string
	Published   *bool
}

// # Course Operations

/*
ListCourses returns every course owned by the caller, annotated with module
counts and ordered by last-updated descending.

Description: Listing never resolves individual resources; ownership is a
query-level filter, so other users' courses are invisible rather than
forbidden.

Parameters:
  - context: context.Context
  - identity: *sec.AuthClaims (nil means unauthenticated)

Returns:
  - []*Course: Owned courses
  - error: apperr.Unauthorized or retrieval failures
*/
func (service *Service) ListCourses(context context.Context, identity *sec.AuthClaims) ([]*Course, error) {
	if identity == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	return service.courses.ListForUser(context, identity.UserID)
}

/*
CreateCourse validates and persists a new course for the caller.

Description: Titles and descriptions are trimmed and stripped of angle
brackets before validation. The slug is pre-checked for uniqueness, but the
database unique constraint is the final arbiter: a race that passes the
pre-check and loses at commit surfaces as the same slug conflict, never a
generic 500.

Parameters:
  - context: context.Context
  - identity: *sec.AuthClaims
  - input: CreateCourseInput

Returns:
  - *Course: Created entity
  - error: Unauthorized, validation, conflict, or storage failures
*/
func (service *Service) CreateCourse(context context.Context, identity *sec.AuthClaims, input CreateCourseInput) (*Course, error) {
	if identity == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	title := validate.Sanitize(input.Title)
	description := validate.Sanitize(input.Description)

	validator := &validate.Validator{}
	validator.Required(FieldTitle, title).
		MaxLen(FieldTitle, title, TitleMaxLen).
		MaxLen(FieldDescription, description, DescriptionMaxLen).
		Required(FieldSlug, input.Slug).
		Slug(FieldSlug, input.Slug).
		MaxLen(FieldSlug, input.Slug, SlugMaxLen)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Application-level uniqueness pre-check for a friendly early failure.
	if err := service.ensureSlugFree(context, input.Slug, ""); err != nil {
		return nil, err
	}

	course := &Course{
		ID:          uuid.New(),
		UserID:      identity.UserID,
		Title:       title,
		Description: description,
		Slug:        input.Slug,
		Published:   input.Published,
	}

	if err := service.courses.Create(context, course); err != nil {
		return nil, err
	}

	service.logger.Info("course_created",
		slog.String("course_id", course.ID),
		slog.String("user_id", identity.UserID),
		slog.String("slug", course.Slug),
	)

	return course, nil
}

/*
GetCourse returns the caller's course with its full subtree.

Description: Modules are sorted ascending by (order, id) and each module's
lessons likewise; ids are UUIDv7, so ties resolve in insertion order.

Parameters:
  - context: context.Context
  - identity: *sec.AuthClaims
  - id: string

Returns:
  - *Course: Hydrated tree
  - error: Unauthorized, NotFound, Forbidden, or retrieval failures
*/
func (service *Service) GetCourse(context context.Context, identity *sec.AuthClaims, id string) (*Course, error) {
	if _, err := service.guard.Course(context, identity, id); err != nil {
		return nil, err
	}

	return service.courses.FindWithTree(context, id)
}

/*
UpdateCourse applies a partial update to the caller's course.

Description: Only non-nil patch fields are validated and written. A slug
change re-checks uniqueness excluding the course itself, so writing the
unchanged slug back is never a conflict.

Parameters:
  - context: context.Context
  - identity: *sec.AuthClaims
  - id: string
  - patch: CoursePatch

Returns:
  - *Course: Updated entity
  - error: Guard denials, validation, conflict, or storage failures
*/
func (service *Service) UpdateCourse(context context.Context, identity *sec.AuthClaims, id string, patch CoursePatch) (*Course, error) {
	course, err := service.guard.Course(context, identity, id)
	if err != nil {
		return nil, err
	}

	validator := &validate.Validator{}

	if patch.Title != nil {
		title := validate.Sanitize(*patch.Title)
		validator.Required(FieldTitle, title).MaxLen(FieldTitle, title, TitleMaxLen)
		course.Title = title
	}

	if patch.Description != nil {
		description := validate.Sanitize(*patch.Description)
		validator.MaxLen(FieldDescription, description, DescriptionMaxLen)
		course.Description = description
	}

	if patch.Slug != nil {
		validator.Required(FieldSlug, *patch.Slug).
			Slug(FieldSlug, *patch.Slug).
			MaxLen(FieldSlug, *patch.Slug, SlugMaxLen)
		course.Slug = *patch.Slug
	}

	if patch.Published != nil {
		course.Published = *patch.Published
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if patch.Slug != nil {
		if err := service.ensureSlugFree(context, course.Slug, course.ID); err != nil {
			return nil, err
		}
	}

	if err := service.courses.Update(context, course); err != nil {
		return nil, err
	}

	return course, nil
}

/*
DeleteCourse removes the caller's course and its entire subtree.

Description: The repository deletes lessons, then modules, then the course
inside one transaction; afterwards every former child id resolves to 404.

Parameters:
  - context: context.Context
  - identity: *sec.AuthClaims
  - id: string

Returns:
  - error: Guard denials or storage failures
*/
func (service *Service) DeleteCourse(context context.Context, identity *sec.AuthClaims, id string) error {
	if _, err := service.guard.Course(context, identity, id); err != nil {
		return err
	}

	if err := service.courses.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("course_deleted",
		slog.String("course_id", id),
		slog.String("user_id", identity.UserID),
	)

	return nil
}

// # Slug Suggestion

// maxSlugAttempts bounds the -2, -3, … probe loop.
const maxSlugAttempts = 100

/*
SuggestSlug derives an unused slug from a course title.

Description: Normalizes the title (unicode folding, lowercase, hyphens) and
probes -2, -3, … suffixes until an unused slug is found. Purely advisory;
creation still requires an explicit slug.

Parameters:
  - context: context.Context
  - identity: *sec.AuthClaims
  - title: string

Returns:
  - string: An unused slug candidate
  - error: Unauthorized, validation, or retrieval failures
*/
func (service *Service) SuggestSlug(context context.Context, identity *sec.AuthClaims, title string) (string, error) {
	if identity == nil {
		return "", apperr.Unauthorized("Authentication required")
	}

	base := slug.From(validate.Sanitize(title))
	if base == "" {
		return "", apperr.ValidationError("Title does not yield a usable slug", apperr.FieldError{
			Field:   FieldTitle,
			Message: "must contain letters or digits",
		})
	}

	// Leave room for a numeric suffix.
	if len(base) > SlugMaxLen-4 {
		base = base[:SlugMaxLen-4]
	}

	candidate := base
	for attempt := 2; attempt <= maxSlugAttempts; attempt++ {
		taken, err := service.courses.SlugExists(context, candidate, "")
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, attempt)
	}

	return "", apperr.Conflict("Could not derive an unused slug from this title")
}

// ensureSlugFree returns the field-level slug conflict when the slug is held
// by any course other than excludeID.
func (service *Service) ensureSlugFree(context context.Context, slugValue, excludeID string) error {
	taken, err := service.courses.SlugExists(context, slugValue, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return slugTakenConflict()
	}
	return nil
}

// slugTakenConflict is the single conflict shape for slug collisions,
// whether caught by the pre-check or by the DB constraint at commit.
func slugTakenConflict() *apperr.AppError {
	return apperr.Conflict("Slug is already in use", apperr.FieldError{
		Field:   FieldSlug,
		Message: "is already in use",
	})
}

// applyOrder resolves an optional order value: absent defaults to zero.
func applyOrder(order *int) int {
	return pointer.Fallback(order, 0)
}
