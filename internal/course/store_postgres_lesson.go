// Copyright (c) 2026 Courseforge. All rights reserved.
// Author: dev@courseforge.app

package course

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/courseforge/courseforge/internal/platform/apperr"
	"github.com/courseforge/courseforge/internal/platform/database/schema"
)

// # Lesson Repository

type lessonRepository struct {
	pool *pgxpool.Pool
}

// NewLessonRepository creates the PostgreSQL implementation of [LessonRepository].
func NewLessonRepository(pool *pgxpool.Pool) LessonRepository {
	return &lessonRepository{pool: pool}
}

/*
Create persists a new lesson row.

Parameters:
  - context: context.Context
  - lesson: *Lesson

Returns:
  - error: Execution errors
*/
func (repository *lessonRepository) Create(context context.Context, lesson *Lesson) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		schema.CoreLesson.Table, lessonColumns)

	now := time.Now()
	if lesson.CreatedAt.IsZero() {
		lesson.CreatedAt = now
	}
	lesson.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		lesson.ID,
		lesson.ModuleID,
		lesson.Title,
		lesson.Content,
		lesson.Order,
		lesson.CreatedAt,
		lesson.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_lesson_repo_create_failed: %w", err)
	}

	return nil
}

/*
FindByID retrieves a lesson row.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Lesson: Hydrated entity
  - error: apperr.NotFound or execution errors
*/
func (repository *lessonRepository) FindByID(context context.Context, id string) (*Lesson, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1`,
		lessonColumns, schema.CoreLesson.Table, schema.CoreLesson.ID)

	lesson := &Lesson{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&lesson.ID,
		&lesson.ModuleID,
		&lesson.Title,
		&lesson.Content,
		&lesson.Order,
		&lesson.CreatedAt,
		&lesson.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Lesson")
		}
		return nil, fmt.Errorf("postgres_lesson_repo_find_by_id_failed: %w", err)
	}

	return lesson, nil
}

/*
Update persists the mutable fields of a lesson.

Parameters:
  - context: context.Context
  - lesson: *Lesson

Returns:
  - error: Execution errors
*/
func (repository *lessonRepository) Update(context context.Context, lesson *Lesson) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5
		WHERE %s = $1`,
		schema.CoreLesson.Table,
		schema.CoreLesson.Title, schema.CoreLesson.Content, schema.CoreLesson.Position,
		schema.CoreLesson.UpdatedAt,
		schema.CoreLesson.ID)

	lesson.UpdatedAt = time.Now()
	_, err := repository.pool.Exec(context, query,
		lesson.ID,
		lesson.Title,
		lesson.Content,
		lesson.Order,
		lesson.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_lesson_repo_update_failed: %w", err)
	}

	return nil
}

/*
Delete removes a lesson row.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: Execution errors
*/
func (repository *lessonRepository) Delete(context context.Context, id string) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CoreLesson.Table, schema.CoreLesson.ID)

	if _, err := repository.pool.Exec(context, query, id); err != nil {
		return fmt.Errorf("postgres_lesson_repo_delete_failed: %w", err)
	}

	return nil
}
