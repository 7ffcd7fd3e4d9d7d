// Copyright (c) 2026 Courseforge. All rights reserved.
// Author: dev@courseforge.app

package course

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/courseforge/courseforge/internal/platform/middleware"
	requestutil "github.com/courseforge/courseforge/internal/platform/request"
	"github.com/courseforge/courseforge/internal/platform/respond"
	"github.com/courseforge/courseforge/internal/platform/validate"
)

// LessonRoutes returns the router mounted at /lessons.
//
// # Endpoints
//   - GET    /{id} : Read a lesson (owner only, via module→course).
//   - PATCH  /{id} : Partial update.
//   - DELETE /{id} : Delete the lesson.
func (handler *Handler) LessonRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/{id}", handler.getLesson)
	router.Patch("/{id}", handler.updateLesson)
	router.Delete("/{id}", handler.deleteLesson)

	return router
}

// # Request Payloads

type createLessonRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Order   *int   `json:"order"`
}

type updateLessonRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
	Order   *int    `json:"order"`
}

// # Lesson Endpoints

/*
POST /api/v1/modules/{id}/lessons.

Description: Creates a lesson under the caller's module. Empty content is
stored as absent; order defaults to zero.

Request:
  - Body: createLessonRequest (Title, Content?, Order?)

Response:
  - 201: Lesson
  - 400, 401, 403, 404
*/
func (handler *Handler) createLesson(writer http.ResponseWriter, request *http.Request) {
	var input createLessonRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	lesson, err := handler.service.CreateLesson(request.Context(), requestutil.Identity(request), requestutil.ID(request, "id"), CreateLessonInput{
		Title:   input.Title,
		Content: input.Content,
		Order:   input.Order,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, lesson)
}

/*
GET /api/v1/lessons/{id}.

Response:
  - 200: Lesson
  - 401, 403, 404 per the guard
*/
func (handler *Handler) getLesson(writer http.ResponseWriter, request *http.Request) {
	lesson, err := handler.service.GetLesson(request.Context(), requestutil.Identity(request), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, lesson)
}

/*
PATCH /api/v1/lessons/{id}.

Description: Partial update of title, content, and order. Supplying an
empty content string clears the body.

Request:
  - Body: updateLessonRequest (any subset)

Response:
  - 200: Updated lesson
  - 400, 401, 403, 404
*/
func (handler *Handler) updateLesson(writer http.ResponseWriter, request *http.Request) {
	var input updateLessonRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	lesson, err := handler.service.UpdateLesson(request.Context(), requestutil.Identity(request), requestutil.ID(request, "id"), LessonPatch{
		Title:   input.Title,
		Content: input.Content,
		Order:   input.Order,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, lesson)
}

/*
DELETE /api/v1/lessons/{id}.

Response:
  - 204: No Content
  - 401, 403, 404 per the guard
*/
func (handler *Handler) deleteLesson(writer http.ResponseWriter, request *http.Request) {
	err := handler.service.DeleteLesson(request.Context(), requestutil.Identity(request), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
