// Copyright (c) 2026 Courseforge. All rights reserved.
// Author: dev@courseforge.app

package course

import (
	"context"
	"log/slog"

	"github.com/courseforge/courseforge/internal/platform/sec"
	"github.com/courseforge/courseforge/internal/platform/validate"
	"github.com/courseforge/courseforge/pkg/uuid"
)

// # Lesson Inputs

// CreateLessonInput holds the fields accepted when creating a lesson.
// A nil Order defaults to zero; empty content is stored as absent.
type CreateLessonInput struct {
	Title   string
	Content string
	Order   *int
}

// LessonPatch holds the fields of a partial lesson update.
type LessonPatch struct {
	Title   *string
	Content *string
	Order   *int
}

// # Lesson Operations

/*
CreateLesson validates and persists a new lesson under the caller's module.

Parameters:
  - context: context.Context
  - identity: *sec.AuthClaims
  - moduleID: string
  - input: CreateLessonInput

Returns:
  - *Lesson: Created entity
  - error: Guard denials, validation, or storage failures
*/
func (service *Service) CreateLesson(context context.Context, identity *sec.AuthClaims, moduleID string, input CreateLessonInput) (*Lesson, error) {
	if _, err := service.guard.Module(context, identity, moduleID); err != nil {
		return nil, err
	}

	title := validate.Sanitize(input.Title)
	content := validate.Sanitize(input.Content)
	order := applyOrder(input.Order)

	validator := &validate.Validator{}
	validator.Required(FieldTitle, title).
		MaxLen(FieldTitle, title, TitleMaxLen).
		MaxLen(FieldContent, content, ContentMaxLen).
		Min(FieldOrder, order, 0)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	lesson := &Lesson{
		ID:       uuid.New(),
		ModuleID: moduleID,
		Title:    title,
		Content:  content,
		Order:    order,
	}

	if err := service.lessons.Create(context, lesson); err != nil {
		return nil, err
	}

	service.logger.Info("lesson_created",
		slog.String("lesson_id", lesson.ID),
		slog.String("module_id", moduleID),
	)

	return lesson, nil
}

/*
GetLesson returns a single lesson owned (via module→course) by the caller.

Parameters:
  - context: context.Context
  - identity: *sec.AuthClaims
  - id: string

Returns:
  - *Lesson: Hydrated entity
  - error: Guard denials or retrieval failures
*/
func (service *Service) GetLesson(context context.Context, identity *sec.AuthClaims, id string) (*Lesson, error) {
	return service.guard.Lesson(context, identity, id)
}

/*
UpdateLesson applies a partial update to a lesson.

Description: Only non-nil patch fields are validated and written. Setting
content to the empty string clears it (stored as absent).

Parameters:
  - context: context.Context
  - identity: *sec.AuthClaims
  - id: string
  - patch: LessonPatch

Returns:
  - *Lesson: Updated entity
  - error: Guard denials, validation, or storage failures
*/
func (service *Service) UpdateLesson(context context.Context, identity *sec.AuthClaims, id string, patch LessonPatch) (*Lesson, error) {
	lesson, err := service.guard.Lesson(context, identity, id)
	if err != nil {
		return nil, err
	}

	validator := &validate.Validator{}

	if patch.Title != nil {
		title := validate.Sanitize(*patch.Title)
		validator.Required(FieldTitle, title).MaxLen(FieldTitle, title, TitleMaxLen)
		lesson.Title = title
	}

	if patch.Content != nil {
		content := validate.Sanitize(*patch.Content)
		validator.MaxLen(FieldContent, content, ContentMaxLen)
		lesson.Content = content
	}

	if patch.Order != nil {
		validator.Min(FieldOrder, *patch.Order, 0)
		lesson.Order = *patch.Order
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.lessons.Update(context, lesson); err != nil {
		return nil, err
	}

	return lesson, nil
}

/*
DeleteLesson removes a lesson.

Parameters:
  - context: context.Context
  - identity: *sec.AuthClaims
  - id: string

Returns:
  - error: Guard denials or storage failures
*/
func (service *Service) DeleteLesson(context context.Context, identity *sec.AuthClaims, id string) error {
	if _, err := service.guard.Lesson(context, identity, id); err != nil {
		return err
	}

	if err := service.lessons.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("lesson_deleted", slog.String("lesson_id", id))

	return nil
}
