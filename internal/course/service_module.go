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

// # Module Inputs

// CreateModuleInput holds the fields accepted when creating a module.
// A nil Order defaults to zero.
type CreateModuleInput struct {
	Title string
	Order *int
}

// ModulePatch holds the fields of a partial module update.
type ModulePatch struct {
	Title *string
	Order *int
}

// # Module Operations

/*
CreateModule validates and persists a new module under the caller's course.

Parameters:
  - context: context.Context
  - identity: *sec.AuthClaims
  - courseID: string
  - input: CreateModuleInput

Returns:
  - *Module: Created entity
  - error: Guard denials, validation, or storage failures
*/
func (service *Service) CreateModule(context context.Context, identity *sec.AuthClaims, courseID string, input CreateModuleInput) (*Module, error) {
	if _, err := service.guard.Course(context, identity, courseID); err != nil {
		return nil, err
	}

	title := validate.Sanitize(input.Title)
	order := applyOrder(input.Order)

	validator := &validate.Validator{}
	validator.Required(FieldTitle, title).
		MaxLen(FieldTitle, title, TitleMaxLen).
		Min(FieldOrder, order, 0)

	if err := validator.Err(); err != nil {
		return nil, err
	}

	module := &Module{
		ID:       uuid.New(),
		CourseID: courseID,
		Title:    title,
		Order:    order,
	}

	if err := service.modules.Create(context, module); err != nil {
		return nil, err
	}

	service.logger.Info("module_created",
		slog.String("module_id", module.ID),
		slog.String("course_id", courseID),
	)

	return module, nil
}

/*
GetModule returns a single module owned (via its course) by the caller.

Parameters:
  - context: context.Context
  - identity: *sec.AuthClaims
  - id: string

Returns:
  - *Module: Hydrated entity
  - error: Guard denials or retrieval failures
*/
func (service *Service) GetModule(context context.Context, identity *sec.AuthClaims, id string) (*Module, error) {
	return service.guard.Module(context, identity, id)
}

/*
UpdateModule applies a partial update to a module.

Description: Only non-nil patch fields are validated and written. The owning
course is immutable; there is no way to re-parent a module.

Parameters:
  - context: context.Context
  - identity: *sec.AuthClaims
  - id: string
  - patch: ModulePatch

Returns:
  - *Module: Updated entity
  - error: Guard denials, validation, or storage failures
*/
func (service *Service) UpdateModule(context context.Context, identity *sec.AuthClaims, id string, patch ModulePatch) (*Module, error) {
	module, err := service.guard.Module(context, identity, id)
	if err != nil {
		return nil, err
	}

	validator := &validate.Validator{}

	if patch.Title != nil {
		title := validate.Sanitize(*patch.Title)
		validator.Required(FieldTitle, title).MaxLen(FieldTitle, title, TitleMaxLen)
		module.Title = title
	}

	if patch.Order != nil {
		validator.Min(FieldOrder, *patch.Order, 0)
		module.Order = *patch.Order
	}

	if err := validator.Err(); err != nil {
		return nil, err
	}

	if err := service.modules.Update(context, module); err != nil {
		return nil, err
	}

	return module, nil
}

/*
DeleteModule removes a module and all its lessons.

Parameters:
  - context: context.Context
  - identity: *sec.AuthClaims
  - id: string

Returns:
  - error: Guard denials or storage failures
*/
func (service *Service) DeleteModule(context context.Context, identity *sec.AuthClaims, id string) error {
	if _, err := service.guard.Module(context, identity, id); err != nil {
		return err
	}

	if err := service.modules.Delete(context, id); err != nil {
		return err
	}

	service.logger.Info("module_deleted", slog.String("module_id", id))

	return nil
}
