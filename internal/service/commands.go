// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package service contains the application services that orchestrate
// commands against the Post aggregate and Category entities. Services
// resolve references through the repository contracts, let the domain
// enforce its invariants, and persist each aggregate once per call.
// A validation failure means no save happens at all.
package service

import "inkwell/internal/domain"

// PostCreateCommand carries the inputs for creating a draft post.
type PostCreateCommand struct {
	Title       string
	Content     string
	AuthorID    string
	CategoryIDs []domain.CategoryID
}

// PostEditCommand carries the inputs for editing a draft post. The
// category id list is the full requested membership; the service diffs
// it against the post's current categories.
type PostEditCommand struct {
	Title       string
	Content     string
	CategoryIDs []domain.CategoryID
}

// CommentCommand carries the inputs for adding or editing a comment.
type CommentCommand struct {
	Content     string
	CommenterID string
}
