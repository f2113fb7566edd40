// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/domain"
	"inkwell/internal/markdown"
	"inkwell/internal/service"
)

// Public groups the read-only endpoints for the public site: published
// posts only, with Markdown content rendered to HTML and only approved
// comments visible.
type Public struct {
	queries *service.PostQueryService
}

// NewPublic creates a new Public handler group.
func NewPublic(queries *service.PostQueryService) *Public {
	return &Public{queries: queries}
}

// publicPost is the public projection: no draft flags, rendered body,
// approved comments only.
type publicPost struct {
	Title       string                `json:"title"`
	Slug        string                `json:"slug"`
	HTML        string                `json:"html"`
	AuthorID    string                `json:"author_id"`
	Categories  []service.CategoryDTO `json:"categories"`
	Comments    []publicComment       `json:"comments"`
	PublishedAt *time.Time            `json:"published_at"`
}

type publicComment struct {
	Content   string    `json:"content"`
	Commenter string    `json:"commenter"`
	CreatedAt time.Time `json:"created_at"`
}

// publicSummary is the listing shape; the body stays behind the detail
// endpoint.
type publicSummary struct {
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	PublishedAt *time.Time `json:"published_at"`
}

func toPublicPost(dto service.PostDTO) publicPost {
	html, err := markdown.ToHTML(dto.Content)
	if err != nil {
		slog.Warn("markdown render failed", "slug", dto.Slug, "error", err)
		html = ""
	}

	var comments []publicComment
	for _, c := range dto.Comments {
		if !c.IsApproved {
			continue
		}
		comments = append(comments, publicComment{
			Content:   c.Content,
			Commenter: c.Commenter,
			CreatedAt: c.CreatedAt,
		})
	}

	return publicPost{
		Title:       dto.Title,
		Slug:        dto.Slug,
		HTML:        html,
		AuthorID:    dto.AuthorID,
		Categories:  dto.Categories,
		Comments:    comments,
		PublishedAt: dto.PublishedAt,
	}
}

// List returns a page of published post summaries, newest first.
func (h *Public) List(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	result, err := h.queries.ListPublished(r.Context(), page, size)
	if err != nil {
		writeError(w, err)
		return
	}

	summaries := domain.MapPage(result, func(dto service.PostDTO) publicSummary {
		return publicSummary{Title: dto.Title, Slug: dto.Slug, PublishedAt: dto.PublishedAt}
	})
	writeJSON(w, http.StatusOK, toPaged(summaries))
}

// Get returns a single published post by slug with its body rendered to
// HTML.
func (h *Public) Get(w http.ResponseWriter, r *http.Request) {
	dto, err := h.queries.GetPublishedBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPublicPost(dto))
}
