// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers implements the HTTP layer: admin JSON endpoints for
// posts and categories, and the public read-only endpoints.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"inkwell/internal/domain"
)

// errorResponse is the JSON body for every non-2xx response.
type errorResponse struct {
	Error              string   `json:"error"`
	Code               string   `json:"code,omitempty"`
	MissingCategoryIDs []string `json:"missing_category_ids,omitempty"`
}

// pagedResponse is the wire shape for paginated listings.
type pagedResponse[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"total_items"`
	TotalPages int   `json:"total_pages"`
}

func toPaged[T any](p domain.Page[T]) pagedResponse[T] {
	items := p.Items
	if items == nil {
		items = []T{}
	}
	return pagedResponse[T]{
		Items:      items,
		Page:       p.Number,
		Size:       p.Size,
		TotalItems: p.TotalItems,
		TotalPages: p.TotalPages,
	}
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response failed", "error", err)
	}
}

// writeError maps a domain error to an HTTP status and JSON body.
// Errors without a domain kind become 500s with a generic message.
func writeError(w http.ResponseWriter, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		slog.Error("unhandled error", "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal server error"})
		return
	}

	status := http.StatusInternalServerError
	switch de.Kind {
	case domain.KindInvalidArgument:
		status = http.StatusBadRequest
	case domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindConflict, domain.KindStateViolation, domain.KindUsageConflict:
		status = http.StatusConflict
	}

	body := errorResponse{Error: de.Message, Code: string(de.Code)}
	for _, id := range de.MissingCategoryIDs {
		body.MissingCategoryIDs = append(body.MissingCategoryIDs, id.String())
	}
	writeJSON(w, status, body)
}

// writeBadRequest reports a malformed request (bad JSON, bad id) before
// any domain logic runs.
func writeBadRequest(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg, Code: string(domain.CodeInvalidArgument)})
}

// decodeJSON reads the request body into v. The body size is capped so
// a client cannot stream an unbounded payload.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeBadRequest(w, "invalid JSON body")
		return false
	}
	return true
}

// pageParams reads page/size query parameters with sane bounds.
func pageParams(r *http.Request) (page, size int) {
	page, size = 0, 20
	if v, err := strconv.Atoi(r.URL.Query().Get("page")); err == nil && v >= 0 {
		page = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("size")); err == nil && v > 0 && v <= 100 {
		size = v
	}
	return page, size
}
