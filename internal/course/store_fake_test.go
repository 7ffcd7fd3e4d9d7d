// Copyright (c) 2026 Courseforge. All rights reserved.
// Author: dev@courseforge.app

package course_test

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/courseforge/courseforge/internal/course"
	"github.com/courseforge/courseforge/internal/platform/apperr"
	"github.com/courseforge/courseforge/internal/platform/sec"
)

// # In-Memory Fakes
//
// The fakes mirror the repository contracts closely enough to exercise the
// service and guard logic: slug uniqueness, NotFound mapping, cascade
// deletes, and list ordering all behave as the PostgreSQL layer does.

type fakeStore struct {
	courses map[string]*course.Course
	modules map[string]*course.Module
	lessons map[string]*course.Lesson

	// failCreateWithSlugConflict simulates losing a slug race at commit:
	// the pre-check passed, but the unique constraint fires on insert.
	failCreateWithSlugConflict bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		courses: map[string]*course.Course{},
		modules: map[string]*course.Module{},
		lessons: map[string]*course.Lesson{},
	}
}

// # CourseRepository

type fakeCourseRepo struct{ store *fakeStore }

func (r *fakeCourseRepo) Create(_ context.Context, c *course.Course) error {
	if r.store.failCreateWithSlugConflict {
		return apperr.Conflict("Slug is already in use", apperr.FieldError{Field: course.FieldSlug, Message: "is already in use"})
	}
	for _, existing := range r.store.courses {
		if existing.Slug == c.Slug {
			return apperr.Conflict("Slug is already in use", apperr.FieldError{Field: course.FieldSlug, Message: "is already in use"})
		}
	}
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	r.store.courses[c.ID] = c
	return nil
}

func (r *fakeCourseRepo) FindByID(_ context.Context, id string) (*course.Course, error) {
	if c, ok := r.store.courses[id]; ok {
		bare := *c
		bare.Modules = nil
		return &bare, nil
	}
	return nil, apperr.NotFound("Course")
}

func (r *fakeCourseRepo) FindWithTree(_ context.Context, id string) (*course.Course, error) {
	stored, ok := r.store.courses[id]
	if !ok {
		return nil, apperr.NotFound("Course")
	}

	tree := *stored
	tree.Modules = []*course.Module{}
	for _, m := range r.store.modules {
		if m.CourseID != id {
			continue
		}
		node := *m
		node.Lessons = []*course.Lesson{}
		for _, l := range r.store.lessons {
			if l.ModuleID == m.ID {
				lesson := *l
				node.Lessons = append(node.Lessons, &lesson)
			}
		}
		sortLessons(node.Lessons)
		tree.Modules = append(tree.Modules, &node)
	}
	sortModules(tree.Modules)
	tree.ModuleCount = len(tree.Modules)
	return &tree, nil
}

func (r *fakeCourseRepo) ListForUser(_ context.Context, userID string) ([]*course.Course, error) {
	owned := []*course.Course{}
	for _, c := range r.store.courses {
		if c.UserID != userID {
			continue
		}
		summary := *c
		summary.Modules = nil
		summary.ModuleCount = 0
		for _, m := range r.store.modules {
			if m.CourseID == c.ID {
				summary.ModuleCount++
			}
		}
		owned = append(owned, &summary)
	}
	sort.Slice(owned, func(i, j int) bool {
		return owned[i].UpdatedAt.After(owned[j].UpdatedAt)
	})
	return owned, nil
}

func (r *fakeCourseRepo) Update(_ context.Context, c *course.Course) error {
	stored, ok := r.store.courses[c.ID]
	if !ok {
		return apperr.NotFound("Course")
	}
	c.UpdatedAt = time.Now()
	*stored = *c
	return nil
}

func (r *fakeCourseRepo) Delete(_ context.Context, id string) error {
	for moduleID, m := range r.store.modules {
		if m.CourseID != id {
			continue
		}
		for lessonID, l := range r.store.lessons {
			if l.ModuleID == moduleID {
				delete(r.store.lessons, lessonID)
			}
		}
		delete(r.store.modules, moduleID)
	}
	delete(r.store.courses, id)
	return nil
}

func (r *fakeCourseRepo) SlugExists(_ context.Context, slug, excludeID string) (bool, error) {
	for _, c := range r.store.courses {
		if c.Slug == slug && c.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

// # ModuleRepository

type fakeModuleRepo struct{ store *fakeStore }

func (r *fakeModuleRepo) Create(_ context.Context, m *course.Module) error {
	m.CreatedAt = time.Now()
	m.UpdatedAt = m.CreatedAt
	r.store.modules[m.ID] = m
	return nil
}

func (r *fakeModuleRepo) FindByID(_ context.Context, id string) (*course.Module, error) {
	if m, ok := r.store.modules[id]; ok {
		bare := *m
		bare.Lessons = nil
		return &bare, nil
	}
	return nil, apperr.NotFound("Module")
}

func (r *fakeModuleRepo) Update(_ context.Context, m *course.Module) error {
	stored, ok := r.store.modules[m.ID]
	if !ok {
		return apperr.NotFound("Module")
	}
	m.UpdatedAt = time.Now()
	*stored = *m
	return nil
}

func (r *fakeModuleRepo) Delete(_ context.Context, id string) error {
	for lessonID, l := range r.store.lessons {
		if l.ModuleID == id {
			delete(r.store.lessons, lessonID)
		}
	}
	delete(r.store.modules, id)
	return nil
}

// # LessonRepository

type fakeLessonRepo struct{ store *fakeStore }

func (r *fakeLessonRepo) Create(_ context.Context, l *course.Lesson) error {
	l.CreatedAt = time.Now()
	l.UpdatedAt = l.CreatedAt
	r.store.lessons[l.ID] = l
	return nil
}

func (r *fakeLessonRepo) FindByID(_ context.Context, id string) (*course.Lesson, error) {
	if l, ok := r.store.lessons[id]; ok {
		found := *l
		return &found, nil
	}
	return nil, apperr.NotFound("Lesson")
}

func (r *fakeLessonRepo) Update(_ context.Context, l *course.Lesson) error {
	stored, ok := r.store.lessons[l.ID]
	if !ok {
		return apperr.NotFound("Lesson")
	}
	l.UpdatedAt = time.Now()
	*stored = *l
	return nil
}

func (r *fakeLessonRepo) Delete(_ context.Context, id string) error {
	delete(r.store.lessons, id)
	return nil
}

// # Helpers

func sortModules(modules []*course.Module) {
	sort.Slice(modules, func(i, j int) bool {
		if modules[i].Order != modules[j].Order {
			return modules[i].Order < modules[j].Order
		}
		return modules[i].ID < modules[j].ID
	})
}

func sortLessons(lessons []*course.Lesson) {
	sort.Slice(lessons, func(i, j int) bool {
		if lessons[i].Order != lessons[j].Order {
			return lessons[i].Order < lessons[j].Order
		}
		return lessons[i].ID < lessons[j].ID
	})
}

type fixture struct {
	store   *fakeStore
	service *course.Service
	guard   *course.Guard
}

func newFixture() *fixture {
	store := newFakeStore()
	courses := &fakeCourseRepo{store: store}
	modules := &fakeModuleRepo{store: store}
	lessons := &fakeLessonRepo{store: store}
	guard := course.NewGuard(courses, modules, lessons)
	service := course.NewService(courses, modules, lessons, guard, slog.Default())
	return &fixture{store: store, service: service, guard: guard}
}

func identity(userID string) *sec.AuthClaims {
	return &sec.AuthClaims{UserID: userID, Email: userID + "@example.com"}
}
