// Copyright (c) 2026 Courseforge. All rights reserved.
// Author: dev@courseforge.app

package course

import (
	"log/slog"
)

// # Service Layer

// Service orchestrates the business logic for the course hierarchy.
//
// Every operation takes the caller's identity explicitly and applies the
// same sequence: authenticate, resolve and authorize the target, validate
// the input, then execute. No operation reads ambient session state.
type Service struct {
	courses CourseRepository
	modules ModuleRepository
	lessons LessonRepository
	guard   *Guard
	logger  *slog.Logger
}

// NewService constructs a new [Service] with its repositories and guard.
func NewService(
	courses CourseRepository,
	modules ModuleRepository,
	lessons LessonRepository,
	guard *Guard,
	logger *slog.Logger,
) *Service {
	return &Service{
		courses: courses,
		modules: modules,
		lessons: lessons,
		guard:   guard,
		logger:  logger,
	}
}
