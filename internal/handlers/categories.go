// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/domain"
	"inkwell/internal/service"
)

// Categories groups the admin endpoints for category management.
type Categories struct {
	categories *service.CategoryService
	queries    *service.CategoryQueryService
}

// NewCategories creates a new Categories handler group.
func NewCategories(categories *service.CategoryService, queries *service.CategoryQueryService) *Categories {
	return &Categories{categories: categories, queries: queries}
}

type categoryRequest struct {
	Name string `json:"name"`
}

func categoryIDParam(w http.ResponseWriter, r *http.Request) (domain.CategoryID, bool) {
	id, err := domain.ParseCategoryID(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid category id")
		return domain.CategoryID{}, false
	}
	return id, true
}

// List returns every category, name-ordered.
func (h *Categories) List(w http.ResponseWriter, r *http.Request) {
	dtos, err := h.queries.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dtos)
}

// Create makes a new category with a globally unique name.
func (h *Categories) Create(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validateCategoryName(req.Name); msg != "" {
		writeBadRequest(w, msg)
		return
	}

	cat, err := h.categories.Create(r.Context(), req.Name)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, service.ToCategoryDTO(cat))
}

// Update renames a category.
func (h *Categories) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := categoryIDParam(w, r)
	if !ok {
		return
	}
	var req categoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validateCategoryName(req.Name); msg != "" {
		writeBadRequest(w, msg)
		return
	}
	if err := h.categories.Rename(r.Context(), id, req.Name); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Delete removes a category that no active post references.
func (h *Categories) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := categoryIDParam(w, r)
	if !ok {
		return
	}
	if err := h.categories.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
