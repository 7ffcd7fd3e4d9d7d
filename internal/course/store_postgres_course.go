// Copyright (c) 2026 Courseforge. All rights reserved.
// Author: dev@courseforge.app

// PostgreSQL storage layer for the course hierarchy.
//
// # Architecture
//
// Repositories here implement the domain-defined interfaces using
// [pgxpool.Pool]. Storage errors are mapped into [apperr.AppError]: a
// missing row becomes NotFound and a unique-constraint violation on the
// slug becomes the same conflict the application pre-check produces, so a
// lost race never surfaces as a 500.
package course

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/courseforge/courseforge/internal/platform/apperr"
	"github.com/courseforge/courseforge/internal/platform/database/schema"
	"github.com/courseforge/courseforge/internal/platform/dberr"
)

// Column lists are derived from the schema registry so the SQL below and
// the migrations share one source of truth for names.
var (
	courseColumns = strings.Join(schema.CoreCourse.Columns(), ", ")
	moduleColumns = strings.Join(schema.CoreModule.Columns(), ", ")
	lessonColumns = strings.Join(schema.CoreLesson.Columns(), ", ")
)

// # Course Repository

type courseRepository struct {
	pool *pgxpool.Pool
}

// NewCourseRepository creates the PostgreSQL implementation of [CourseRepository].
func NewCourseRepository(pool *pgxpool.Pool) CourseRepository {
	return &courseRepository{pool: pool}
}

/*
Create persists a new course row.

Description: The unique index on slug is the final arbiter of slug
uniqueness; a violation maps to the standard slug conflict.

Parameters:
  - context: context.Context
  - course: *Course

Returns:
  - error: apperr.Conflict on a slug collision, or execution errors
*/
func (repository *courseRepository) Create(context context.Context, course *Course) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		schema.CoreCourse.Table, courseColumns)

	now := time.Now()
	if course.CreatedAt.IsZero() {
		course.CreatedAt = now
	}
	course.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		course.ID,
		course.UserID,
		course.Title,
		course.Description,
		course.Slug,
		course.Published,
		course.CreatedAt,
		course.UpdatedAt,
	)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return slugTakenConflict()
		}
		return fmt.Errorf("postgres_course_repo_create_failed: %w", err)
	}

	return nil
}

/*
FindByID retrieves a bare course row (no children).

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Course: Hydrated entity
  - error: apperr.NotFound or execution errors
*/
func (repository *courseRepository) FindByID(context context.Context, id string) (*Course, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1`,
		courseColumns, schema.CoreCourse.Table, schema.CoreCourse.ID)

	course := &Course{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&course.ID,
		&course.UserID,
		&course.Title,
		&course.Description,
		&course.Slug,
		&course.Published,
		&course.CreatedAt,
		&course.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Course")
		}
		return nil, fmt.Errorf("postgres_course_repo_find_by_id_failed: %w", err)
	}

	return course, nil
}

/*
FindWithTree retrieves a course with all modules and lessons hydrated.

Description: Three ordered queries stitched in memory: the course row, its
modules sorted by (position, id), and all lessons of those modules sorted
the same way. UUIDv7 ids make the id tiebreaker insertion-ordered.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Course: Hydrated tree
  - error: apperr.NotFound or execution errors
*/
func (repository *courseRepository) FindWithTree(context context.Context, id string) (*Course, error) {
	course, err := repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	moduleQuery := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1
		ORDER BY %s ASC, %s ASC`,
		moduleColumns, schema.CoreModule.Table, schema.CoreModule.CourseID,
		schema.CoreModule.Position, schema.CoreModule.ID)

	moduleRows, err := repository.pool.Query(context, moduleQuery, id)
	if err != nil {
		return nil, fmt.Errorf("postgres_course_repo_tree_modules_failed: %w", err)
	}
	defer moduleRows.Close()

	moduleByID := map[string]*Module{}
	moduleIDs := []string{}

	for moduleRows.Next() {
		module := &Module{Lessons: []*Lesson{}}
		if err := moduleRows.Scan(
			&module.ID,
			&module.CourseID,
			&module.Title,
			&module.Order,
			&module.CreatedAt,
			&module.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres_course_repo_tree_module_scan_failed: %w", err)
		}
		course.Modules = append(course.Modules, module)
		moduleByID[module.ID] = module
		moduleIDs = append(moduleIDs, module.ID)
	}
	if err := moduleRows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_course_repo_tree_modules_failed: %w", err)
	}

	course.ModuleCount = len(course.Modules)

	if len(moduleIDs) == 0 {
		return course, nil
	}

	lessonQuery := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = ANY($1)
		ORDER BY %s ASC, %s ASC`,
		lessonColumns, schema.CoreLesson.Table, schema.CoreLesson.ModuleID,
		schema.CoreLesson.Position, schema.CoreLesson.ID)

	lessonRows, err := repository.pool.Query(context, lessonQuery, moduleIDs)
	if err != nil {
		return nil, fmt.Errorf("postgres_course_repo_tree_lessons_failed: %w", err)
	}
	defer lessonRows.Close()

	for lessonRows.Next() {
		lesson := &Lesson{}
		if err := lessonRows.Scan(
			&lesson.ID,
			&lesson.ModuleID,
			&lesson.Title,
			&lesson.Content,
			&lesson.Order,
			&lesson.CreatedAt,
			&lesson.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("postgres_course_repo_tree_lesson_scan_failed: %w", err)
		}
		if parent, ok := moduleByID[lesson.ModuleID]; ok {
			parent.Lessons = append(parent.Lessons, lesson)
		}
	}
	if err := lessonRows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_course_repo_tree_lessons_failed: %w", err)
	}

	return course, nil
}

/*
ListForUser retrieves all courses owned by a user with module counts.

Description: Ownership filtering happens in SQL; other users' courses never
leave the database. Ordered by updatedat descending.

Parameters:
  - context: context.Context
  - userID: string

Returns:
  - []*Course: Owned courses
  - error: Execution errors
*/
func (repository *courseRepository) ListForUser(context context.Context, userID string) ([]*Course, error) {
	query := fmt.Sprintf(`
		SELECT c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s, c.%s,
		       COUNT(m.%s) AS module_count
		FROM %s c
		LEFT JOIN %s m ON m.%s = c.%s
		WHERE c.%s = $1
		GROUP BY c.%s
		ORDER BY c.%s DESC`,
		schema.CoreCourse.ID, schema.CoreCourse.UserID, schema.CoreCourse.Title,
		schema.CoreCourse.Description, schema.CoreCourse.Slug, schema.CoreCourse.IsPublished,
		schema.CoreCourse.CreatedAt, schema.CoreCourse.UpdatedAt,
		schema.CoreModule.ID,
		schema.CoreCourse.Table,
		schema.CoreModule.Table, schema.CoreModule.CourseID, schema.CoreCourse.ID,
		schema.CoreCourse.UserID,
		schema.CoreCourse.ID,
		schema.CoreCourse.UpdatedAt)

	rows, err := repository.pool.Query(context, query, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres_course_repo_list_failed: %w", err)
	}
	defer rows.Close()

	courses := []*Course{}
	for rows.Next() {
		course := &Course{}
		if err := rows.Scan(
			&course.ID,
			&course.UserID,
			&course.Title,
			&course.Description,
			&course.Slug,
			&course.Published,
			&course.CreatedAt,
			&course.UpdatedAt,
			&course.ModuleCount,
		); err != nil {
			return nil, fmt.Errorf("postgres_course_repo_list_scan_failed: %w", err)
		}
		courses = append(courses, course)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("postgres_course_repo_list_failed: %w", err)
	}

	return courses, nil
}

/*
Update persists the mutable fields of a course.

Parameters:
  - context: context.Context
  - course: *Course

Returns:
  - error: apperr.Conflict on a slug collision, or execution errors
*/
func (repository *courseRepository) Update(context context.Context, course *Course) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6
		WHERE %s = $1`,
		schema.CoreCourse.Table,
		schema.CoreCourse.Title, schema.CoreCourse.Description, schema.CoreCourse.Slug,
		schema.CoreCourse.IsPublished, schema.CoreCourse.UpdatedAt,
		schema.CoreCourse.ID)

	course.UpdatedAt = time.Now()
	_, err := repository.pool.Exec(context, query,
		course.ID,
		course.Title,
		course.Description,
		course.Slug,
		course.Published,
		course.UpdatedAt,
	)

	if err != nil {
		if dberr.IsUniqueViolation(err) {
			return slugTakenConflict()
		}
		return fmt.Errorf("postgres_course_repo_update_failed: %w", err)
	}

	return nil
}

/*
Delete removes a course and its entire subtree in one transaction.

Description: Lessons first, then modules, then the course row. The FK
ON DELETE CASCADE rules would reach the same end state; the explicit
ordered deletes keep the invariant visible and the row counts loggable.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: Execution or commit errors
*/
func (repository *courseRepository) Delete(context context.Context, id string) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres_course_repo_delete_begin_failed: %w", err)
	}
	defer transaction.Rollback(context)

	deleteLessons := fmt.Sprintf(`
		DELETE FROM %s
		WHERE %s IN (SELECT %s FROM %s WHERE %s = $1)`,
		schema.CoreLesson.Table, schema.CoreLesson.ModuleID,
		schema.CoreModule.ID, schema.CoreModule.Table, schema.CoreModule.CourseID)
	if _, err := transaction.Exec(context, deleteLessons, id); err != nil {
		return fmt.Errorf("postgres_course_repo_delete_lessons_failed: %w", err)
	}

	deleteModules := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CoreModule.Table, schema.CoreModule.CourseID)
	if _, err := transaction.Exec(context, deleteModules, id); err != nil {
		return fmt.Errorf("postgres_course_repo_delete_modules_failed: %w", err)
	}

	deleteCourse := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CoreCourse.Table, schema.CoreCourse.ID)
	if _, err := transaction.Exec(context, deleteCourse, id); err != nil {
		return fmt.Errorf("postgres_course_repo_delete_course_failed: %w", err)
	}

	if err := transaction.Commit(context); err != nil {
		return fmt.Errorf("postgres_course_repo_delete_commit_failed: %w", err)
	}

	return nil
}

/*
SlugExists reports whether the slug is held by any course except excludeID.

Parameters:
  - context: context.Context
  - slug: string
  - excludeID: string (empty for create-time checks)

Returns:
  - bool: true when taken
  - error: Execution errors
*/
func (repository *courseRepository) SlugExists(context context.Context, slug, excludeID string) (bool, error) {
	query := fmt.Sprintf(`
		SELECT EXISTS (
			SELECT 1 FROM %s
			WHERE %s = $1 AND ($2 = '' OR %s != $2::uuid)
		)`,
		schema.CoreCourse.Table, schema.CoreCourse.Slug, schema.CoreCourse.ID)

	var exists bool
	if err := repository.pool.QueryRow(context, query, slug, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("postgres_course_repo_slug_exists_failed: %w", err)
	}

	return exists, nil
}
