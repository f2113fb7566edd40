// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package domain

import (
	"strings"
	"time"
)

// Comment is a child entity of Post with its own approval sub-state.
// Comments are created standalone, attached through Post.AddComment, and
// mutated only through the owning aggregate's methods.
type Comment struct {
	id         CommentID
	content    string
	commenter  Commenter
	createdAt  time.Time
	updatedAt  time.Time
	approvedAt *time.Time
}

// NewComment creates an unapproved comment with a fresh id.
func NewComment(content string, commenter Commenter) (*Comment, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrInvalidArgument("comment content")
	}
	if commenter.IsZero() {
		return nil, ErrInvalidArgument("commenter id")
	}
	now := time.Now()
	return &Comment{
		id:        NewCommentID(),
		content:   content,
		commenter: commenter,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstituteComment rebuilds a comment loaded from storage.
func ReconstituteComment(id CommentID, content string, commenter Commenter, createdAt, updatedAt time.Time, approvedAt *time.Time) *Comment {
	return &Comment{
		id:         id,
		content:    content,
		commenter:  commenter,
		createdAt:  createdAt,
		updatedAt:  updatedAt,
		approvedAt: approvedAt,
	}
}

// ID returns the comment's identifier.
func (c *Comment) ID() CommentID { return c.id }

// Content returns the comment's text.
func (c *Comment) Content() string { return c.content }

// Commenter returns the identity of the comment's author.
func (c *Comment) Commenter() Commenter { return c.commenter }

// CreatedAt returns when the comment was created.
func (c *Comment) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns when the comment's content last changed.
func (c *Comment) UpdatedAt() time.Time { return c.updatedAt }

// ApprovedAt returns the approval timestamp, or nil if unapproved.
func (c *Comment) ApprovedAt() *time.Time { return c.approvedAt }

// IsApproved reports whether the comment has been approved.
func (c *Comment) IsApproved() bool { return c.approvedAt != nil }

// updateContent overwrites the text and resets approval. Editing resets
// trust, so an approved comment becomes unapproved again.
func (c *Comment) updateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrInvalidArgument("comment content")
	}
	c.content = content
	c.updatedAt = time.Now()
	c.cancelApproval()
	return nil
}

// approve fails when the comment is already approved.
func (c *Comment) approve() error {
	if c.IsApproved() {
		return ErrCommentAlreadyApproved(c.id)
	}
	now := time.Now()
	c.approvedAt = &now
	return nil
}

// cancelApproval unconditionally clears the approval timestamp.
func (c *Comment) cancelApproval() {
	c.approvedAt = nil
}
