// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package service

import (
	"context"
	"log/slog"

	"inkwell/internal/domain"
)

// PostCache is the read-side cache services invalidate after every
// successful write. Implementations must tolerate a cold cache; a nil
// PostCache disables caching entirely.
type PostCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, data []byte)
	Invalidate(ctx context.Context, key string)
}

// PostService orchestrates post lifecycle commands against the Post
// aggregate, resolving category references through the category
// repository.
type PostService struct {
	posts      domain.PostRepository
	categories domain.CategoryRepository
	cache      PostCache
}

// NewPostService creates a PostService. cache may be nil.
func NewPostService(posts domain.PostRepository, categories domain.CategoryRepository, cache PostCache) *PostService {
	return &PostService{posts: posts, categories: categories, cache: cache}
}

// Create resolves the requested category ids, builds a draft post, and
// persists it as one atomic unit. When any id does not resolve, the
// call fails with a category-not-found error listing every missing id
// and nothing is persisted.
func (s *PostService) Create(ctx context.Context, cmd PostCreateCommand) (*domain.Post, error) {
	cats, err := s.resolveCategories(ctx, cmd.CategoryIDs)
	if err != nil {
		return nil, err
	}

	author, err := domain.NewAuthor(cmd.AuthorID)
	if err != nil {
		return nil, err
	}

	post, err := domain.NewPost(cmd.Title, cmd.Content, author, cats...)
	if err != nil {
		return nil, err
	}

	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}

	slog.Info("post created", "post_id", post.ID(), "slug", post.Slug())
	return post, nil
}

// Edit reconciles the post's category membership against the requested
// id list (removing absent ids, adding new ones) and updates title and
// content. The reconciliation diff touches only what changed, so
// category references that stay requested are never detached. Category
// resolution is validated before the aggregate is saved: on any miss,
// in-memory removals are discarded because the post is never persisted.
func (s *PostService) Edit(ctx context.Context, id domain.PostID, cmd PostEditCommand) (*domain.Post, error) {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	requested := make(map[domain.CategoryID]bool, len(cmd.CategoryIDs))
	for _, cid := range cmd.CategoryIDs {
		requested[cid] = true
	}
	current := make(map[domain.CategoryID]bool)
	for _, cid := range post.CategoryIDs() {
		current[cid] = true
	}

	var toRemove []domain.CategoryID
	for _, cid := range post.CategoryIDs() {
		if !requested[cid] {
			toRemove = append(toRemove, cid)
		}
	}
	var toAdd []domain.CategoryID
	for _, cid := range cmd.CategoryIDs {
		if !current[cid] {
			toAdd = append(toAdd, cid)
		}
	}

	for _, cid := range toRemove {
		if err := post.RemoveCategory(cid); err != nil {
			return nil, err
		}
	}

	catsToAdd, err := s.resolveCategories(ctx, toAdd)
	if err != nil {
		return nil, err
	}
	for _, c := range catsToAdd {
		if err := post.AddCategory(c); err != nil {
			return nil, err
		}
	}

	if err := post.UpdateContent(cmd.Title, cmd.Content); err != nil {
		return nil, err
	}

	if err := s.posts.Save(ctx, post); err != nil {
		return nil, err
	}

	s.invalidate(ctx, post.ID())
	slog.Info("post edited", "post_id", post.ID(), "removed", len(toRemove), "added", len(toAdd))
	return post, nil
}

// Delete soft-deletes a draft post. The aggregate rejects deleting a
// published post.
func (s *PostService) Delete(ctx context.Context, id domain.PostID) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := post.SoftDelete(); err != nil {
		return err
	}
	if err := s.posts.Save(ctx, post); err != nil {
		return err
	}

	s.invalidate(ctx, id)
	slog.Info("post deleted", "post_id", id)
	return nil
}

// Publish transitions a post to published.
func (s *PostService) Publish(ctx context.Context, id domain.PostID) error {
	return s.mutate(ctx, id, func(p *domain.Post) error {
		return p.Publish()
	})
}

// Unpublish returns a post to draft. Idempotent.
func (s *PostService) Unpublish(ctx context.Context, id domain.PostID) error {
	return s.mutate(ctx, id, func(p *domain.Post) error {
		p.Unpublish()
		return nil
	})
}

// AddComment attaches a new comment to a published post and returns it.
func (s *PostService) AddComment(ctx context.Context, id domain.PostID, cmd CommentCommand) (*domain.Comment, error) {
	commenter, err := domain.NewCommenter(cmd.CommenterID)
	if err != nil {
		return nil, err
	}
	comment, err := domain.NewComment(cmd.Content, commenter)
	if err != nil {
		return nil, err
	}

	if err := s.mutate(ctx, id, func(p *domain.Post) error {
		return p.AddComment(comment)
	}); err != nil {
		return nil, err
	}
	return comment, nil
}

// RemoveComment detaches a comment from a published post.
func (s *PostService) RemoveComment(ctx context.Context, id domain.PostID, commentID domain.CommentID) error {
	return s.mutate(ctx, id, func(p *domain.Post) error {
		return p.RemoveComment(commentID)
	})
}

// UpdateComment edits a comment's content, resetting its approval.
func (s *PostService) UpdateComment(ctx context.Context, id domain.PostID, commentID domain.CommentID, content string) error {
	return s.mutate(ctx, id, func(p *domain.Post) error {
		return p.UpdateComment(commentID, content)
	})
}

// ApproveComment approves a comment on a published post.
func (s *PostService) ApproveComment(ctx context.Context, id domain.PostID, commentID domain.CommentID) error {
	return s.mutate(ctx, id, func(p *domain.Post) error {
		return p.ApproveComment(commentID)
	})
}

// CancelCommentApproval clears a comment's approval.
func (s *PostService) CancelCommentApproval(ctx context.Context, id domain.PostID, commentID domain.CommentID) error {
	return s.mutate(ctx, id, func(p *domain.Post) error {
		return p.CancelCommentApproval(commentID)
	})
}

// mutate loads the aggregate, applies fn, and saves once. Nothing is
// persisted when fn fails.
func (s *PostService) mutate(ctx context.Context, id domain.PostID, fn func(*domain.Post) error) error {
	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := fn(post); err != nil {
		return err
	}
	if err := s.posts.Save(ctx, post); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

// resolveCategories bulk-loads the requested ids and fails with the
// full missing-id list when any do not resolve.
func (s *PostService) resolveCategories(ctx context.Context, ids []domain.CategoryID) ([]*domain.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	cats, err := s.categories.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	found := make(map[domain.CategoryID]bool, len(cats))
	for _, c := range cats {
		found[c.ID()] = true
	}
	var missing []domain.CategoryID
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, domain.ErrCategoriesNotFound(missing)
	}
	return cats, nil
}

func (s *PostService) invalidate(ctx context.Context, id domain.PostID) {
	if s.cache != nil {
		s.cache.Invalidate(ctx, id.String())
	}
}
