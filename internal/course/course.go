// Copyright (c) 2026 Courseforge. All rights reserved.
// Author: dev@courseforge.app

/*
Package course defines the core content hierarchy of Courseforge.

It manages the lifecycle of the three-level aggregate: a Course owned by a
single user, containing ordered Modules, each containing ordered Lessons.

Core Responsibility:

  - Ownership: Every entity resolves to exactly one owning user via the
    Lesson→Module→Course→User chain, which is immutable once created.
  - Identity: Courses carry a globally unique URL slug.
  - Cascade: Deleting a parent removes the entire subtree; orphans never exist.

This package acts as the source of truth for all authoring data models.
*/
package course

import "time"

// # Core Entities

// Course is the central aggregate of the Courseforge domain.
// It represents a single authored course owned by one user.
type Course struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"` // Owning user, immutable after creation
	Title       string `json:"title"`
	Description string `json:"description,omitempty"` // Empty means absent
	Slug        string `json:"slug"`                  // URL-safe identifier, globally unique
	Published   bool   `json:"published"`

	// ModuleCount annotates list responses; on a hydrated tree it equals
	// len(Modules).
	ModuleCount int       `json:"module_count"`
	Modules     []*Module `json:"modules,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Module is an ordered section within a [Course].
type Module struct {
	ID       string `json:"id"`
	CourseID string `json:"course_id"` // Owning course, immutable
	Title    string `json:"title"`

	// Order is caller-assigned and never auto-compacted; duplicates are
	// allowed and siblings sort by (order, id).
	Order   int       `json:"order"`
	Lessons []*Lesson `json:"lessons,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Lesson is an ordered unit of content within a [Module].
type Lesson struct {
	ID       string `json:"id"`
	ModuleID string `json:"module_id"` // Owning module, immutable
	Title    string `json:"title"`
	Content  string `json:"content,omitempty"` // Empty means absent
	Order    int    `json:"order"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// # Field Identifiers

// Global field names for validation and JSON mapping in the course domain.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldSlug        = "slug"
	FieldPublished   = "published"
	FieldOrder       = "order"
	FieldContent     = "content"
)

// # Validation Constraints

const (
	// TitleMaxLen bounds course, module, and lesson titles.
	TitleMaxLen = 200

	// DescriptionMaxLen bounds the optional course description.
	DescriptionMaxLen = 2000

	// ContentMaxLen bounds the optional lesson content body.
	ContentMaxLen = 10000

	// SlugMaxLen bounds the course slug.
	SlugMaxLen = 100
)
