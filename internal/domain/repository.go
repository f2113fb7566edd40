// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package domain

import "context"

// PostRepository is the persistence contract for the Post aggregate.
// Save writes the whole aggregate atomically; cross-request consistency
// is the implementation's concern, not the caller's.
type PostRepository interface {
	// FindByID loads a non-deleted post. Returns ErrPostNotFound when
	// the id is unknown or the post is soft-deleted.
	FindByID(ctx context.Context, id PostID) (*Post, error)

	// Save persists the aggregate (post row, category links, comments)
	// as one atomic unit.
	Save(ctx context.Context, p *Post) error

	// FindPublishedBySlug loads a published, non-deleted post by its
	// slug. Returns ErrPostNotFound otherwise.
	FindPublishedBySlug(ctx context.Context, slug string) (*Post, error)

	// FindAll returns non-deleted posts, newest first.
	FindAll(ctx context.Context, page, size int) (Page[*Post], error)

	// FindAllPublished returns published, non-deleted posts, newest
	// first.
	FindAllPublished(ctx context.Context, page, size int) (Page[*Post], error)

	// Search returns non-deleted posts whose title or content matches
	// the keyword, newest first.
	Search(ctx context.Context, keyword string, page, size int) (Page[*Post], error)

	// FindAllDeleted returns soft-deleted posts, newest first.
	FindAllDeleted(ctx context.Context, page, size int) (Page[*Post], error)

	// SearchDeleted searches among soft-deleted posts.
	SearchDeleted(ctx context.Context, keyword string, page, size int) (Page[*Post], error)

	// ExistsByCategory reports whether any non-deleted post references
	// the category.
	ExistsByCategory(ctx context.Context, id CategoryID) (bool, error)
}

// CategoryRepository is the persistence contract for Category entities.
type CategoryRepository interface {
	// FindByID returns ErrCategoryNotFound when the id is unknown.
	FindByID(ctx context.Context, id CategoryID) (*Category, error)

	// FindByIDs returns only the categories that exist; missing ids
	// produce no error, the caller diffs the result.
	FindByIDs(ctx context.Context, ids []CategoryID) ([]*Category, error)

	// ExistsByName reports whether a category with the exact name exists.
	ExistsByName(ctx context.Context, name string) (bool, error)

	// Save inserts or updates a category.
	Save(ctx context.Context, c *Category) error

	// Delete removes a category.
	Delete(ctx context.Context, c *Category) error

	// FindAll returns every category, name-ordered.
	FindAll(ctx context.Context) ([]*Category, error)
}
