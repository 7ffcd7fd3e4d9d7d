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

// ModuleRoutes returns the router mounted at /modules.
//
// # Endpoints
//   - GET    /{id}         : Read a module (owner only, via its course).
//   - PATCH  /{id}         : Partial update.
//   - DELETE /{id}         : Delete the module and its lessons.
//   - POST   /{id}/lessons : Create a lesson under the module.
func (handler *Handler) ModuleRoutes() chi.Router {
	router := chi.NewRouter()
	router.Use(middleware.RequireAuth)

	router.Get("/{id}", handler.getModule)
	router.Patch("/{id}", handler.updateModule)
	router.Delete("/{id}", handler.deleteModule)
	router.Post("/{id}/lessons", handler.createLesson)

	return router
}

// # Request Payloads

type createModuleRequest struct {
	Title string `json:"title"`
	Order *int   `json:"order"`
}

type updateModuleRequest struct {
	Title *string `json:"title"`
	Order *int    `json:"order"`
}

// # Module Endpoints

/*
POST /api/v1/courses/{id}/modules.

Description: Creates a module under the caller's course. Order defaults to
zero when absent and is never auto-compacted.

Request:
  - Body: createModuleRequest (Title, Order?)

Response:
  - 201: Module
  - 400, 401, 403, 404
*/
func (handler *Handler) createModule(writer http.ResponseWriter, request *http.Request) {
	var input createModuleRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	module, err := handler.service.CreateModule(request.Context(), requestutil.Identity(request), requestutil.ID(request, "id"), CreateModuleInput{
		Title: input.Title,
		Order: input.Order,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, module)
}

/*
GET /api/v1/modules/{id}.

Response:
  - 200: Module
  - 401, 403, 404 per the guard
*/
func (handler *Handler) getModule(writer http.ResponseWriter, request *http.Request) {
	module, err := handler.service.GetModule(request.Context(), requestutil.Identity(request), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, module)
}

/*
PATCH /api/v1/modules/{id}.

Description: Partial update of title and order. The owning course cannot
change.

Request:
  - Body: updateModuleRequest (any subset)

Response:
  - 200: Updated module
  - 400, 401, 403, 404
*/
func (handler *Handler) updateModule(writer http.ResponseWriter, request *http.Request) {
	var input updateModuleRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	module, err := handler.service.UpdateModule(request.Context(), requestutil.Identity(request), requestutil.ID(request, "id"), ModulePatch{
		Title: input.Title,
		Order: input.Order,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, module)
}

/*
DELETE /api/v1/modules/{id}.

Description: Removes the module and every lesson in it.

Response:
  - 204: No Content
  - 401, 403, 404 per the guard
*/
func (handler *Handler) deleteModule(writer http.ResponseWriter, request *http.Request) {
	err := handler.service.DeleteModule(request.Context(), requestutil.Identity(request), requestutil.ID(request, "id"))
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}
