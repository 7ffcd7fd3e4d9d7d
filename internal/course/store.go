// Copyright (c) 2026 Courseforge. All rights reserved.
// Author: dev@courseforge.app

package course

import (
	"context"
)

// # Course Data Access

// CourseRepository defines the data access contract for courses.
type CourseRepository interface {

	/*
		Create persists a new course.

		Parameters:
		  - context: context.Context
		  - course: *Course

		Returns:
		  - error: apperr.Conflict when the slug is taken, or persistence failures
	*/
	Create(context context.Context, course *Course) error

	/*
		FindByID returns the bare course row (no children).

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Course: Hydrated entity
		  - error: apperr.NotFound or retrieval failures
	*/
	FindByID(context context.Context, id string) (*Course, error)

	/*
		FindWithTree returns the course with its full subtree: modules sorted
		by (position, id) ascending, each with lessons sorted the same way.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Course: Hydrated tree
		  - error: apperr.NotFound or retrieval failures
	*/
	FindWithTree(context context.Context, id string) (*Course, error)

	/*
		ListForUser returns every course owned by userID, each annotated with
		its module count, ordered by last-updated descending.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - []*Course: Owned courses (no children hydrated)
		  - error: Retrieval failures
	*/
	ListForUser(context context.Context, userID string) ([]*Course, error)

	/*
		Update persists the mutable fields of a course (title, description,
		slug, published) and refreshes updatedat.

		Parameters:
		  - context: context.Context
		  - course: *Course

		Returns:
		  - error: apperr.Conflict when the slug is taken, or persistence failures
	*/
	Update(context context.Context, course *Course) error

	/*
		Delete removes the course and its entire subtree in one transaction:
		lessons first, then modules, then the course row.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Persistence failures
	*/
	Delete(context context.Context, id string) error

	/*
		SlugExists reports whether any course other than excludeID holds the
		given slug. Pass an empty excludeID for create-time checks.

		Parameters:
		  - context: context.Context
		  - slug: string
		  - excludeID: string

		Returns:
		  - bool: true when taken
		  - error: Retrieval failures
	*/
	SlugExists(context context.Context, slug, excludeID string) (bool, error)
}

// # Module Data Access

// ModuleRepository defines the data access contract for modules.
type ModuleRepository interface {

	/*
		Create persists a new module under its course.

		Parameters:
		  - context: context.Context
		  - module: *Module

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, module *Module) error

	/*
		FindByID returns the bare module row (no lessons).

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Module: Hydrated entity
		  - error: apperr.NotFound or retrieval failures
	*/
	FindByID(context context.Context, id string) (*Module, error)

	/*
		Update persists the mutable fields of a module (title, position).

		Parameters:
		  - context: context.Context
		  - module: *Module

		Returns:
		  - error: Persistence failures
	*/
	Update(context context.Context, module *Module) error

	/*
		Delete removes the module and its lessons in one transaction.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Persistence failures
	*/
	Delete(context context.Context, id string) error
}

// # Lesson Data Access

// LessonRepository defines the data access contract for lessons.
type LessonRepository interface {

	/*
		Create persists a new lesson under its module.

		Parameters:
		  - context: context.Context
		  - lesson: *Lesson

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, lesson *Lesson) error

	/*
		FindByID returns the lesson row.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *Lesson: Hydrated entity
		  - error: apperr.NotFound or retrieval failures
	*/
	FindByID(context context.Context, id string) (*Lesson, error)

	/*
		Update persists the mutable fields of a lesson (title, content, position).

		Parameters:
		  - context: context.Context
		  - lesson: *Lesson

		Returns:
		  - error: Persistence failures
	*/
	Update(context context.Context, lesson *Lesson) error

	/*
		Delete removes the lesson.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - error: Persistence failures
	*/
	Delete(context context.Context, id string) error
}
