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

// Posts groups the admin endpoints for the post aggregate: CRUD,
// publishing, and the comment subresource.
type Posts struct {
	posts   *service.PostService
	queries *service.PostQueryService
}

// NewPosts creates a new Posts handler group.
func NewPosts(posts *service.PostService, queries *service.PostQueryService) *Posts {
	return &Posts{posts: posts, queries: queries}
}

type postCreateRequest struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	AuthorID    string   `json:"author_id"`
	CategoryIDs []string `json:"category_ids"`
}

type postEditRequest struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	CategoryIDs []string `json:"category_ids"`
}

type commentRequest struct {
	Content     string `json:"content"`
	CommenterID string `json:"commenter_id"`
}

type commentEditRequest struct {
	Content string `json:"content"`
}

// postIDParam parses the {id} URL parameter.
func postIDParam(w http.ResponseWriter, r *http.Request) (domain.PostID, bool) {
	id, err := domain.ParsePostID(chi.URLParam(r, "id"))
	if err != nil {
		writeBadRequest(w, "invalid post id")
		return domain.PostID{}, false
	}
	return id, true
}

// commentIDParam parses the {commentID} URL parameter.
func commentIDParam(w http.ResponseWriter, r *http.Request) (domain.CommentID, bool) {
	id, err := domain.ParseCommentID(chi.URLParam(r, "commentID"))
	if err != nil {
		writeBadRequest(w, "invalid comment id")
		return domain.CommentID{}, false
	}
	return id, true
}

// parseCategoryIDs converts the raw id strings of a request body.
func parseCategoryIDs(w http.ResponseWriter, raw []string) ([]domain.CategoryID, bool) {
	ids := make([]domain.CategoryID, 0, len(raw))
	for _, s := range raw {
		id, err := domain.ParseCategoryID(s)
		if err != nil {
			writeBadRequest(w, "invalid category id: "+s)
			return nil, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

// List returns a page of posts. ?keyword= filters by title or content,
// ?deleted=true switches to the soft-deleted listing.
func (h *Posts) List(w http.ResponseWriter, r *http.Request) {
	page, size := pageParams(r)
	keyword := r.URL.Query().Get("keyword")
	deleted := r.URL.Query().Get("deleted") == "true"

	var (
		result domain.Page[service.PostDTO]
		err    error
	)
	switch {
	case deleted && keyword != "":
		result, err = h.queries.SearchDeleted(r.Context(), keyword, page, size)
	case deleted:
		result, err = h.queries.ListDeleted(r.Context(), page, size)
	case keyword != "":
		result, err = h.queries.Search(r.Context(), keyword, page, size)
	default:
		result, err = h.queries.List(r.Context(), page, size)
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPaged(result))
}

// Get returns a single post by id.
func (h *Posts) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := postIDParam(w, r)
	if !ok {
		return
	}
	dto, err := h.queries.Get(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto)
}

// Create makes a new draft post.
func (h *Posts) Create(w http.ResponseWriter, r *http.Request) {
	var req postCreateRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validatePost(req.Title, req.Content); msg != "" {
		writeBadRequest(w, msg)
		return
	}
	catIDs, ok := parseCategoryIDs(w, req.CategoryIDs)
	if !ok {
		return
	}

	post, err := h.posts.Create(r.Context(), service.PostCreateCommand{
		Title:       req.Title,
		Content:     req.Content,
		AuthorID:    req.AuthorID,
		CategoryIDs: catIDs,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, service.ToPostDTO(post))
}

// Update edits a post's title, content, and category set in one call.
func (h *Posts) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := postIDParam(w, r)
	if !ok {
		return
	}
	var req postEditRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validatePost(req.Title, req.Content); msg != "" {
		writeBadRequest(w, msg)
		return
	}
	catIDs, ok := parseCategoryIDs(w, req.CategoryIDs)
	if !ok {
		return
	}

	post, err := h.posts.Edit(r.Context(), id, service.PostEditCommand{
		Title:       req.Title,
		Content:     req.Content,
		CategoryIDs: catIDs,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, service.ToPostDTO(post))
}

// Delete soft-deletes a post.
func (h *Posts) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := postIDParam(w, r)
	if !ok {
		return
	}
	if err := h.posts.Delete(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Publish moves a draft post to the published state.
func (h *Posts) Publish(w http.ResponseWriter, r *http.Request) {
	id, ok := postIDParam(w, r)
	if !ok {
		return
	}
	if err := h.posts.Publish(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Unpublish reverts a post to draft.
func (h *Posts) Unpublish(w http.ResponseWriter, r *http.Request) {
	id, ok := postIDParam(w, r)
	if !ok {
		return
	}
	if err := h.posts.Unpublish(r.Context(), id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CommentCreate adds a comment to a published post.
func (h *Posts) CommentCreate(w http.ResponseWriter, r *http.Request) {
	id, ok := postIDParam(w, r)
	if !ok {
		return
	}
	var req commentRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validateComment(req.Content); msg != "" {
		writeBadRequest(w, msg)
		return
	}

	comment, err := h.posts.AddComment(r.Context(), id, service.CommentCommand{
		Content:     req.Content,
		CommenterID: req.CommenterID,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": comment.ID().String()})
}

// CommentUpdate edits a comment's content. Editing resets any approval.
func (h *Posts) CommentUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := postIDParam(w, r)
	if !ok {
		return
	}
	commentID, ok := commentIDParam(w, r)
	if !ok {
		return
	}
	var req commentEditRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validateComment(req.Content); msg != "" {
		writeBadRequest(w, msg)
		return
	}
	if err := h.posts.UpdateComment(r.Context(), id, commentID, req.Content); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CommentDelete removes a comment from a post.
func (h *Posts) CommentDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := postIDParam(w, r)
	if !ok {
		return
	}
	commentID, ok := commentIDParam(w, r)
	if !ok {
		return
	}
	if err := h.posts.RemoveComment(r.Context(), id, commentID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CommentApprove marks a comment as approved.
func (h *Posts) CommentApprove(w http.ResponseWriter, r *http.Request) {
	id, ok := postIDParam(w, r)
	if !ok {
		return
	}
	commentID, ok := commentIDParam(w, r)
	if !ok {
		return
	}
	if err := h.posts.ApproveComment(r.Context(), id, commentID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CommentCancelApproval clears a comment's approval.
func (h *Posts) CommentCancelApproval(w http.ResponseWriter, r *http.Request) {
	id, ok := postIDParam(w, r)
	if !ok {
		return
	}
	commentID, ok := commentIDParam(w, r)
	if !ok {
		return
	}
	if err := h.posts.CancelCommentApproval(r.Context(), id, commentID); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
