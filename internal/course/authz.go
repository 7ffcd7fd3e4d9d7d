// Copyright (c) 2026 Courseforge. All rights reserved.
// Author: dev@courseforge.app

package course

import (
	"context"

	"github.com/courseforge/courseforge/internal/platform/apperr"
	"github.com/courseforge/courseforge/internal/platform/sec"
)

// # Ownership Guard

// Guard performs the ownership check shared by every single-resource
// operation in the hierarchy: resolve the resource, walk up to its owning
// course, and compare the course's user to the presented identity.
//
// # Outcomes
//
// The three denial outcomes are distinct and ordered:
//  1. nil identity            → 401 Unauthorized
//  2. resource does not exist → 404 NotFound
//  3. owner mismatch          → 403 Forbidden
//
// Forbidden is only reachable when the resource exists, so a non-owner
// probing random ids learns nothing beyond "not found".
type Guard struct {
	courses CourseRepository
	modules ModuleRepository
	lessons LessonRepository
}

// NewGuard constructs a [Guard] over the three hierarchy repositories.
func NewGuard(courses CourseRepository, modules ModuleRepository, lessons LessonRepository) *Guard {
	return &Guard{courses: courses, modules: modules, lessons: lessons}
}

/*
Course authorizes access to a course by id.

Parameters:
  - context: context.Context
  - identity: *sec.AuthClaims (nil means unauthenticated)
  - id: string

Returns:
  - *Course: The resolved course on full success
  - error: apperr.Unauthorized, apperr.NotFound, or apperr.Forbidden
*/
func (guard *Guard) Course(context context.Context, identity *sec.AuthClaims, id string) (*Course, error) {
	course, err := guard.authorize(context, identity, func() (owned, error) {
		return guard.courses.FindByID(context, id)
	})
	if err != nil {
		return nil, err
	}
	return course.(*Course), nil
}

/*
Module authorizes access to a module by id, walking module→course.

Parameters:
  - context: context.Context
  - identity: *sec.AuthClaims (nil means unauthenticated)
  - id: string

Returns:
  - *Module: The resolved module on full success
  - error: apperr.Unauthorized, apperr.NotFound, or apperr.Forbidden
*/
func (guard *Guard) Module(context context.Context, identity *sec.AuthClaims, id string) (*Module, error) {
	module, err := guard.authorize(context, identity, func() (owned, error) {
		module, err := guard.modules.FindByID(context, id)
		if err != nil {
			return nil, err
		}
		return guard.ownedModule(context, module)
	})
	if err != nil {
		return nil, err
	}
	return module.(*ownedModuleResource).module, nil
}

/*
Lesson authorizes access to a lesson by id, walking lesson→module→course.

Parameters:
  - context: context.Context
  - identity: *sec.AuthClaims (nil means unauthenticated)
  - id: string

Returns:
  - *Lesson: The resolved lesson on full success
  - error: apperr.Unauthorized, apperr.NotFound, or apperr.Forbidden
*/
func (guard *Guard) Lesson(context context.Context, identity *sec.AuthClaims, id string) (*Lesson, error) {
	lesson, err := guard.authorize(context, identity, func() (owned, error) {
		lesson, err := guard.lessons.FindByID(context, id)
		if err != nil {
			return nil, err
		}
		module, err := guard.modules.FindByID(context, lesson.ModuleID)
		if err != nil {
			return nil, err
		}
		withOwner, err := guard.ownedModule(context, module)
		if err != nil {
			return nil, err
		}
		return &ownedLessonResource{lesson: lesson, ownerID: withOwner.OwnerID()}, nil
	})
	if err != nil {
		return nil, err
	}
	return lesson.(*ownedLessonResource).lesson, nil
}

// # Internals

// owned is any resolved resource that knows its owning user.
// Each resource kind supplies its own walk to the owning course; the
// identity and ownership comparison lives in one place.
type owned interface {
	OwnerID() string
}

// OwnerID implements [owned] for courses directly.
func (course *Course) OwnerID() string { return course.UserID }

type ownedModuleResource struct {
	module  *Module
	ownerID string
}

func (resource *ownedModuleResource) OwnerID() string { return resource.ownerID }

type ownedLessonResource struct {
	lesson  *Lesson
	ownerID string
}

func (resource *ownedLessonResource) OwnerID() string { return resource.ownerID }

// ownedModule walks a module up to its owning course.
func (guard *Guard) ownedModule(context context.Context, module *Module) (*ownedModuleResource, error) {
	parent, err := guard.courses.FindByID(context, module.CourseID)
	if err != nil {
		return nil, err
	}
	return &ownedModuleResource{module: module, ownerID: parent.UserID}, nil
}

// authorize runs the shared identity → resolve → compare sequence.
func (guard *Guard) authorize(_ context.Context, identity *sec.AuthClaims, resolve func() (owned, error)) (owned, error) {

	// 1. Identity must be present before anything is resolved.
	if identity == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}

	// 2. Resolve the resource and its ownership chain. A missing resource
	//    (or a broken chain) surfaces as NotFound.
	resource, err := resolve()
	if err != nil {
		return nil, err
	}

	// 3. Only the owner of the enclosing course may proceed.
	if resource.OwnerID() != identity.UserID {
		return nil, apperr.Forbidden("You do not own this resource")
	}

	return resource, nil
}
