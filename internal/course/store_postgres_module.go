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

// # Module Repository

type moduleRepository struct {
	pool *pgxpool.Pool
}

// NewModuleRepository creates the PostgreSQL implementation of [ModuleRepository].
func NewModuleRepository(pool *pgxpool.Pool) ModuleRepository {
	return &moduleRepository{pool: pool}
}

/*
Create persists a new module row.

Parameters:
  - context: context.Context
  - module: *Module

Returns:
  - error: Execution errors
*/
func (repository *moduleRepository) Create(context context.Context, module *Module) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		schema.CoreModule.Table, moduleColumns)

	now := time.Now()
	if module.CreatedAt.IsZero() {
		module.CreatedAt = now
	}
	module.UpdatedAt = now

	_, err := repository.pool.Exec(context, query,
		module.ID,
		module.CourseID,
		module.Title,
		module.Order,
		module.CreatedAt,
		module.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_module_repo_create_failed: %w", err)
	}

	return nil
}

/*
FindByID retrieves a bare module row (no lessons).

Parameters:
  - context: context.Context
  - id: string

Returns:
  - *Module: Hydrated entity
  - error: apperr.NotFound or execution errors
*/
func (repository *moduleRepository) FindByID(context context.Context, id string) (*Module, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = $1`,
		moduleColumns, schema.CoreModule.Table, schema.CoreModule.ID)

	module := &Module{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&module.ID,
		&module.CourseID,
		&module.Title,
		&module.Order,
		&module.CreatedAt,
		&module.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Module")
		}
		return nil, fmt.Errorf("postgres_module_repo_find_by_id_failed: %w", err)
	}

	return module, nil
}

/*
Update persists the mutable fields of a module.

Parameters:
  - context: context.Context
  - module: *Module

Returns:
  - error: Execution errors
*/
func (repository *moduleRepository) Update(context context.Context, module *Module) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4
		WHERE %s = $1`,
		schema.CoreModule.Table,
		schema.CoreModule.Title, schema.CoreModule.Position, schema.CoreModule.UpdatedAt,
		schema.CoreModule.ID)

	module.UpdatedAt = time.Now()
	_, err := repository.pool.Exec(context, query,
		module.ID,
		module.Title,
		module.Order,
		module.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_module_repo_update_failed: %w", err)
	}

	return nil
}

/*
Delete removes a module and its lessons in one transaction.

Parameters:
  - context: context.Context
  - id: string

Returns:
  - error: Execution or commit errors
*/
func (repository *moduleRepository) Delete(context context.Context, id string) error {
	transaction, err := repository.pool.Begin(context)
	if err != nil {
		return fmt.Errorf("postgres_module_repo_delete_begin_failed: %w", err)
	}
	defer transaction.Rollback(context)

	deleteLessons := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CoreLesson.Table, schema.CoreLesson.ModuleID)
	if _, err := transaction.Exec(context, deleteLessons, id); err != nil {
		return fmt.Errorf("postgres_module_repo_delete_lessons_failed: %w", err)
	}

	deleteModule := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.CoreModule.Table, schema.CoreModule.ID)
	if _, err := transaction.Exec(context, deleteModule, id); err != nil {
		return fmt.Errorf("postgres_module_repo_delete_failed: %w", err)
	}

	if err := transaction.Commit(context); err != nil {
		return fmt.Errorf("postgres_module_repo_delete_commit_failed: %w", err)
	}

	return nil
}
