// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"testing"

	"inkwell/internal/service"
)

func TestCategoryCreateAndList(t *testing.T) {
	api := newTestAPI(t)
	api.createCategory(t, "go")
	api.createCategory(t, "news")

	rec := api.do(t, http.MethodGet, "/admin/categories", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}
	var dtos []service.CategoryDTO
	decode(t, rec, &dtos)
	if len(dtos) != 2 {
		t.Errorf("got %d categories", len(dtos))
	}
}

func TestCategoryCreateDuplicateName(t *testing.T) {
	api := newTestAPI(t)
	api.createCategory(t, "go")

	rec := api.do(t, http.MethodPost, "/admin/categories", categoryRequest{Name: "go"})
	if rec.Code != http.StatusConflict {
		t.Errorf("status %d, want 409", rec.Code)
	}

	// Names are case-sensitive, so a different casing is a new category.
	rec = api.do(t, http.MethodPost, "/admin/categories", categoryRequest{Name: "Go"})
	if rec.Code != http.StatusCreated {
		t.Errorf("status %d, want 201", rec.Code)
	}
}

func TestCategoryCreateBlankName(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodPost, "/admin/categories", categoryRequest{Name: "   "})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status %d, want 400", rec.Code)
	}
}

func TestCategoryRename(t *testing.T) {
	api := newTestAPI(t)
	cat := api.createCategory(t, "old")
	api.createCategory(t, "taken")

	rec := api.do(t, http.MethodPut, "/admin/categories/"+cat.ID, categoryRequest{Name: "new"})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("rename: status %d body %s", rec.Code, rec.Body.String())
	}

	// Renaming onto an existing name conflicts.
	rec = api.do(t, http.MethodPut, "/admin/categories/"+cat.ID, categoryRequest{Name: "taken"})
	if rec.Code != http.StatusConflict {
		t.Errorf("rename to taken: status %d, want 409", rec.Code)
	}

	// Unknown id is a 404.
	rec = api.do(t, http.MethodPut, "/admin/categories/0b862b5e-37b1-41e4-a398-4a03bd0b875f",
		categoryRequest{Name: "whatever"})
	if rec.Code != http.StatusNotFound {
		t.Errorf("rename unknown: status %d, want 404", rec.Code)
	}
}

func TestCategoryDeleteInUse(t *testing.T) {
	api := newTestAPI(t)
	cat := api.createCategory(t, "busy")
	post := api.createPost(t, "Uses Busy", cat.ID)

	rec := api.do(t, http.MethodDelete, "/admin/categories/"+cat.ID, nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("delete in use: status %d, want 409", rec.Code)
	}

	// Soft-deleting the only referencing post releases the category.
	if rec := api.do(t, http.MethodDelete, "/admin/posts/"+post.ID, nil); rec.Code != http.StatusNoContent {
		t.Fatalf("delete post: status %d", rec.Code)
	}
	rec = api.do(t, http.MethodDelete, "/admin/categories/"+cat.ID, nil)
	if rec.Code != http.StatusNoContent {
		t.Errorf("delete after release: status %d, want 204", rec.Code)
	}
}

func TestCategoryDeleteUnknown(t *testing.T) {
	api := newTestAPI(t)

	rec := api.do(t, http.MethodDelete, "/admin/categories/0b862b5e-37b1-41e4-a398-4a03bd0b875f", nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status %d, want 404", rec.Code)
	}
}
