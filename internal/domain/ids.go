// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package domain contains the blog's core model: the Post aggregate with
// its publishing state machine, owned Comments, referenced Categories,
// and the repository contracts the services depend on. All invariants
// are enforced here; callers outside the package mutate entities only
// through aggregate methods.
package domain

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// PostID identifies a Post aggregate.
type PostID struct {
	value uuid.UUID
}

// NewPostID returns a fresh random PostID.
func NewPostID() PostID {
	return PostID{value: uuid.New()}
}

// ParsePostID parses the string form of a PostID.
func ParsePostID(s string) (PostID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return PostID{}, fmt.Errorf("parse post id: %w", err)
	}
	return PostID{value: u}, nil
}

// PostIDFromUUID wraps an existing UUID, used when loading from storage.
func PostIDFromUUID(u uuid.UUID) PostID {
	return PostID{value: u}
}

// UUID returns the wrapped UUID.
func (id PostID) UUID() uuid.UUID { return id.value }

// String returns the canonical string form.
func (id PostID) String() string { return id.value.String() }

// IsZero reports whether the id is the zero value.
func (id PostID) IsZero() bool { return id.value == uuid.Nil }

// CategoryID identifies a Category entity.
type CategoryID struct {
	value uuid.UUID
}

// NewCategoryID returns a fresh random CategoryID.
func NewCategoryID() CategoryID {
	return CategoryID{value: uuid.New()}
}

// ParseCategoryID parses the string form of a CategoryID.
func ParseCategoryID(s string) (CategoryID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return CategoryID{}, fmt.Errorf("parse category id: %w", err)
	}
	return CategoryID{value: u}, nil
}

// CategoryIDFromUUID wraps an existing UUID, used when loading from storage.
func CategoryIDFromUUID(u uuid.UUID) CategoryID {
	return CategoryID{value: u}
}

// UUID returns the wrapped UUID.
func (id CategoryID) UUID() uuid.UUID { return id.value }

// String returns the canonical string form.
func (id CategoryID) String() string { return id.value.String() }

// IsZero reports whether the id is the zero value.
func (id CategoryID) IsZero() bool { return id.value == uuid.Nil }

// CommentID identifies a Comment within its owning Post.
type CommentID struct {
	value uuid.UUID
}

// NewCommentID returns a fresh random CommentID.
func NewCommentID() CommentID {
	return CommentID{value: uuid.New()}
}

// ParseCommentID parses the string form of a CommentID.
func ParseCommentID(s string) (CommentID, error) {
	u, err := uuid.Parse(s)
	if err != nil {
		return CommentID{}, fmt.Errorf("parse comment id: %w", err)
	}
	return CommentID{value: u}, nil
}

// CommentIDFromUUID wraps an existing UUID, used when loading from storage.
func CommentIDFromUUID(u uuid.UUID) CommentID {
	return CommentID{value: u}
}

// UUID returns the wrapped UUID.
func (id CommentID) UUID() uuid.UUID { return id.value }

// String returns the canonical string form.
func (id CommentID) String() string { return id.value.String() }

// IsZero reports whether the id is the zero value.
func (id CommentID) IsZero() bool { return id.value == uuid.Nil }

// Author wraps the external identity of a post's author.
// The identity string comes from the calling system and must be non-blank.
type Author struct {
	id string
}

// NewAuthor validates and wraps an author identity.
func NewAuthor(id string) (Author, error) {
	if strings.TrimSpace(id) == "" {
		return Author{}, ErrInvalidArgument("author id")
	}
	return Author{id: id}, nil
}

// ID returns the wrapped identity string.
func (a Author) ID() string { return a.id }

// String returns the wrapped identity string.
func (a Author) String() string { return a.id }

// IsZero reports whether the author is the zero value.
func (a Author) IsZero() bool { return a.id == "" }

// Commenter wraps the external identity of a comment's author.
type Commenter struct {
	id string
}

// NewCommenter validates and wraps a commenter identity.
func NewCommenter(id string) (Commenter, error) {
	if strings.TrimSpace(id) == "" {
		return Commenter{}, ErrInvalidArgument("commenter id")
	}
	return Commenter{id: id}, nil
}

// ID returns the wrapped identity string.
func (c Commenter) ID() string { return c.id }

// String returns the wrapped identity string.
func (c Commenter) String() string { return c.id }

// IsZero reports whether the commenter is the zero value.
func (c Commenter) IsZero() bool { return c.id == "" }
