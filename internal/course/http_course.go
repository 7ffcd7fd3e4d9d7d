// Copyright (c) 2026 Courseforge. All rights reserved.
// Author: dev@courseforge.app

/*
HTTP delivery layer for the course hierarchy.

# Routing Strategy

Every route requires an authenticated caller; there is no public surface.
The handler enforces the request ordering contract — authenticate, resolve
and authorize, validate, execute — by delegating to [Service], which owns
steps two through four. Responses distinguish 401 (no identity), 404
(unknown resource), and 403 (someone else's resource).

The handler translates between the web/JSON layer and the internal domain [Service].
*/
package course

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/courseforge/courseforge/internal/platform/middleware"
	requestutil "github.com/courseforge/courseforge/internal/platform/request"
	"github.com/courseforge/courseforge/internal/platform/respond"
	"github.com/courseforge/courseforge/internal/platform/validate"
)

// # Handler Implementation

// Handler implements the HTTP layer for course authoring.
// It translates web requests into domain service calls.
type Handler struct {
	service *Service
}

// NewHandler constructs a new course [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// CourseRoutes returns the router mounted at /courses.
//
// # Endpoints
//   - GET    /             : List the caller's courses with module counts.
//   - POST   /             : Create a course.
//   - GET    /slug/suggest : Derive an unused slug from ?title=.
//   - GET    /{id}         : Full course tree.
//   - PATCH  /{id}         : Partial update.
//   - DELETE /{id}         : Cascade delete.
//   - POST   /{id}/modules : Create a module under the course.
func (handler *Handler) CourseRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/", handler.listCourses)
	router.Post("/", handler.createCourse)
	router.Get("/slug/suggest", handler.suggestSlug)
	router.Get("/{id}", handler.getCourse)
	router.Patch("/{id}", handler.updateCourse)
	router.Delete("/{id}", handler.deleteCourse)
	router.Post("/{id}/modules", handler.createModule)

	return router
}

// # Request Payloads

type createCourseRequest struct {
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Published   bool   `json:"published"`
}

type updateCourseRequest struct {
	Title       *string `json:"title"`
	Slug        *string `json:"slug"`
	Description *string `json:"description"`
	Published   *bool   `json:"published"`
}

// # Course Endpoints

/*
GET /api/v1/courses.

Description: Lists the caller's courses, newest update first, each with its
module count. Never includes other users' courses.

Response:
  - 200: []Course
  - 401: ErrUnauthorized
*/
func (handler *Handler) listCourses(writer http.ResponseWriter, request *http.Request) {
	courses, err := handler.service.ListCourses(request.Context(), requestutil.Identity(request))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, courses)
}

/*
POST /api/v1/courses.

Description: Creates a course owned by the caller. The slug must match
^[a-z0-9-]+$ and be globally unique.

Request:
  - Body: createCourseRequest (Title, Slug, Description?, Published?)

Response:
  - 201: Course
  - 400: ErrInvalidJSON or validation failure
  - 409: Conflict with a field-level detail on "slug"
*/
func (handler *Handler) createCourse(writer http.ResponseWriter, request *http.Request) {
	var input createCourseRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	course, err := handler.service.CreateCourse(request.Context(), requestutil.Identity(request), CreateCourseInput{
		Title:       input.Title,
		Slug:        input.Slug,
		Description: input.Description,
		Published:   input.Published,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, course)
}

/*
GET /api/v1/courses/{id}.

Description: Returns the caller's course with modules and lessons fully
hydrated, both levels ascending by order.

Response:
  - 200: Course with tree
  - 401, 403, 404 per the guard
*/
func (handler *Handler) getCourse(writer http.ResponseWriter, request *http.Request) {
	course, err := handler.service.GetCourse(request.Context(), requestutil.Identity(request), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, course)
}

/*
PATCH /api/v1/courses/{id}.

Description: Partial update; absent fields stay untouched. Changing the
slug re-checks uniqueness excluding this course.

Request:
  - Body: updateCourseRequest (any subset)

Response:
  - 200: Updated course
  - 400, 401, 403, 404, 409
*/
func (handler *Handler) updateCourse(writer http.ResponseWriter, request *http.Request) {
	var input updateCourseRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	course, err := handler.service.UpdateCourse(request.Context(), requestutil.Identity(request), requestutil.ID(request, "id"), CoursePatch{
		Title:       input.Title,
		Slug:        input.Slug,
		Description: input.Description,
		Published:   input.Published,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, course)
}

/*
DELETE /api/v1/courses/{id}.

Description: Removes the course with all modules and lessons. Former child
ids resolve to 404 afterwards.

Response:
  - 204: No Content
  - 401, 403, 404 per the guard
*/
func (handler *Handler) deleteCourse(writer http.ResponseWriter, request *http.Request) {
	err := handler.service.DeleteCourse(request.Context(), requestutil.Identity(request), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

/*
GET /api/v1/courses/slug/suggest?title=...

Description: Returns an unused slug derived from the given title. Advisory
only; a concurrent create can still take it first.

Response:
  - 200: {"slug": "..."}
  - 400: Title yields no usable slug
  - 401: ErrUnauthorized
*/
func (handler *Handler) suggestSlug(writer http.ResponseWriter, request *http.Request) {
	title := request.URL.Query().Get(FieldTitle)

	suggestion, err := handler.service.SuggestSlug(request.Context(), requestutil.Identity(request), title)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, map[string]string{FieldSlug: suggestion})
}
