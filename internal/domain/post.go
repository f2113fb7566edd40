// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package domain

import (
	"strings"
	"time"

	"inkwell/internal/slug"
)

// Post is the aggregate root. It exclusively owns its comments, holds
// reference-only links to categories, and enforces every lifecycle
// invariant:
//
//   - a post is never published and soft-deleted at the same time
//   - no two attached categories share a name (exact, case-sensitive)
//   - categories change only while the post is unpublished
//   - comments change only while the post is published
//
// A new post starts as a draft (publishedAt and deletedAt both nil),
// may move between draft and published any number of times, and can be
// soft-deleted only from draft. Deleted is terminal.
type Post struct {
	id          PostID
	title       string
	content     string
	slug        string
	author      Author
	categories  []*Category
	comments    []*Comment
	createdAt   time.Time
	updatedAt   time.Time
	publishedAt *time.Time
	deletedAt   *time.Time
}

// NewPost creates a draft post with zero or more initial categories.
// Duplicate category names among the initial set are rejected.
func NewPost(title, content string, author Author, cats ...*Category) (*Post, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrInvalidArgument("post title")
	}
	if strings.TrimSpace(content) == "" {
		return nil, ErrInvalidArgument("post content")
	}
	if author.IsZero() {
		return nil, ErrInvalidArgument("author id")
	}

	now := time.Now()
	p := &Post{
		id:        NewPostID(),
		title:     title,
		content:   content,
		slug:      slug.Generate(title),
		author:    author,
		createdAt: now,
		updatedAt: now,
	}
	for _, c := range cats {
		if err := p.AddCategory(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// ReconstitutePost rebuilds a post loaded from storage. No invariants
// are re-checked; stored state is trusted.
func ReconstitutePost(id PostID, title, slugStr, content string, author Author,
	cats []*Category, comments []*Comment,
	createdAt, updatedAt time.Time, publishedAt, deletedAt *time.Time) *Post {
	return &Post{
		id:          id,
		title:       title,
		content:     content,
		slug:        slugStr,
		author:      author,
		categories:  append([]*Category(nil), cats...),
		comments:    append([]*Comment(nil), comments...),
		createdAt:   createdAt,
		updatedAt:   updatedAt,
		publishedAt: publishedAt,
		deletedAt:   deletedAt,
	}
}

// UpdateContent overwrites title and content and regenerates the slug.
// Allowed only while the post is a draft.
func (p *Post) UpdateContent(title, content string) error {
	if p.IsDeleted() {
		return ErrPostAlreadyDeleted(p.id)
	}
	if p.IsPublished() {
		return ErrPostAlreadyPublished(p.id)
	}
	if strings.TrimSpace(title) == "" {
		return ErrInvalidArgument("post title")
	}
	if strings.TrimSpace(content) == "" {
		return ErrInvalidArgument("post content")
	}

	p.title = title
	p.content = content
	p.slug = slug.Generate(title)
	p.updatedAt = time.Now()
	return nil
}

// Publish sets the published timestamp. Fails on a deleted post.
func (p *Post) Publish() error {
	if p.IsDeleted() {
		return ErrPostAlreadyDeleted(p.id)
	}
	now := time.Now()
	p.publishedAt = &now
	return nil
}

// Unpublish clears the published timestamp. Idempotent: calling it on a
// draft is a harmless no-op.
func (p *Post) Unpublish() {
	p.publishedAt = nil
}

// SoftDelete marks the post deleted. Fails on a published post, so a
// post can never be published and deleted at once.
func (p *Post) SoftDelete() error {
	if p.IsPublished() {
		return ErrPostAlreadyPublished(p.id)
	}
	now := time.Now()
	p.deletedAt = &now
	p.updatedAt = now
	return nil
}

// AddCategory appends a category reference. The name must be unique
// among the post's current categories.
func (p *Post) AddCategory(c *Category) error {
	if !p.IsCategoryUpdatable() {
		return ErrCannotChangeCategory(p.id)
	}
	if c == nil {
		return ErrInvalidArgument("category")
	}
	for _, existing := range p.categories {
		if existing.Name() == c.Name() {
			return ErrCategoryExists(c.Name())
		}
	}
	p.categories = append(p.categories, c)
	p.updatedAt = time.Now()
	return nil
}

// RemoveCategory detaches a category by id. An absent id is a no-op.
func (p *Post) RemoveCategory(id CategoryID) error {
	if !p.IsCategoryUpdatable() {
		return ErrCannotChangeCategory(p.id)
	}
	for i, c := range p.categories {
		if c.ID() == id {
			p.categories = append(p.categories[:i], p.categories[i+1:]...)
			p.updatedAt = time.Now()
			return nil
		}
	}
	return nil
}

// AddComment appends a comment. Allowed only while published.
func (p *Post) AddComment(c *Comment) error {
	if !p.IsPublished() {
		return ErrPostNotPublished(p.id)
	}
	if c == nil {
		return ErrInvalidArgument("comment")
	}
	p.comments = append(p.comments, c)
	return nil
}

// RemoveComment removes a comment by id. An absent id is a no-op.
func (p *Post) RemoveComment(id CommentID) error {
	if !p.IsPublished() {
		return ErrPostNotPublished(p.id)
	}
	for i, c := range p.comments {
		if c.ID() == id {
			p.comments = append(p.comments[:i], p.comments[i+1:]...)
			return nil
		}
	}
	return nil
}

// ApproveComment approves a comment by id. Fails when the post is
// unpublished or the comment is already approved; an unknown id is a
// no-op.
func (p *Post) ApproveComment(id CommentID) error {
	if !p.IsPublished() {
		return ErrPostNotPublished(p.id)
	}
	if c := p.Comment(id); c != nil {
		return c.approve()
	}
	return nil
}

// CancelCommentApproval clears a comment's approval. Always succeeds on
// a published post; an unknown id is a no-op.
func (p *Post) CancelCommentApproval(id CommentID) error {
	if !p.IsPublished() {
		return ErrPostNotPublished(p.id)
	}
	if c := p.Comment(id); c != nil {
		c.cancelApproval()
	}
	return nil
}

// UpdateComment overwrites a comment's content, which also resets its
// approval. Allowed only while published; an unknown id is a no-op.
func (p *Post) UpdateComment(id CommentID, content string) error {
	if !p.IsPublished() {
		return ErrPostNotPublished(p.id)
	}
	if c := p.Comment(id); c != nil {
		return c.updateContent(content)
	}
	return nil
}

// ID returns the post's identifier.
func (p *Post) ID() PostID { return p.id }

// Title returns the post's title.
func (p *Post) Title() string { return p.title }

// Content returns the post's body text.
func (p *Post) Content() string { return p.content }

// Slug returns the URL slug derived from the title.
func (p *Post) Slug() string { return p.slug }

// Author returns the post's author identity.
func (p *Post) Author() Author { return p.author }

// CreatedAt returns when the post was created.
func (p *Post) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns when the post last changed.
func (p *Post) UpdatedAt() time.Time { return p.updatedAt }

// PublishedAt returns the publish timestamp, or nil for a draft.
func (p *Post) PublishedAt() *time.Time { return p.publishedAt }

// DeletedAt returns the soft-delete timestamp, or nil.
func (p *Post) DeletedAt() *time.Time { return p.deletedAt }

// IsPublished reports whether the post is published.
func (p *Post) IsPublished() bool { return p.publishedAt != nil }

// IsDeleted reports whether the post is soft-deleted.
func (p *Post) IsDeleted() bool { return p.deletedAt != nil }

// IsCategoryUpdatable reports whether categories may currently change.
func (p *Post) IsCategoryUpdatable() bool { return !p.IsPublished() }

// Category returns the attached category with the given id, or nil.
func (p *Post) Category(id CategoryID) *Category {
	for _, c := range p.categories {
		if c.ID() == id {
			return c
		}
	}
	return nil
}

// Categories returns a read-only view of the attached categories in
// attachment order.
func (p *Post) Categories() []*Category {
	return append([]*Category(nil), p.categories...)
}

// CategoryIDs returns the ids of the attached categories in order.
func (p *Post) CategoryIDs() []CategoryID {
	ids := make([]CategoryID, len(p.categories))
	for i, c := range p.categories {
		ids[i] = c.ID()
	}
	return ids
}

// Comment returns the owned comment with the given id, or nil.
func (p *Post) Comment(id CommentID) *Comment {
	for _, c := range p.comments {
		if c.ID() == id {
			return c
		}
	}
	return nil
}

// Comments returns a read-only view of the owned comments in order.
func (p *Post) Comments() []*Comment {
	return append([]*Comment(nil), p.comments...)
}
