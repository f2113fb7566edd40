// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package service

import (
	"context"
	"encoding/json"
	"log/slog"

	"inkwell/internal/domain"
)

// PostQueryService serves the read side: DTO projections of posts, with
// a read-through cache on single-post lookups.
type PostQueryService struct {
	posts domain.PostRepository
	cache PostCache
}

// NewPostQueryService creates a PostQueryService. cache may be nil.
func NewPostQueryService(posts domain.PostRepository, cache PostCache) *PostQueryService {
	return &PostQueryService{posts: posts, cache: cache}
}

// Get returns a single post projection. Cache hits skip the repository
// entirely; misses populate the cache.
func (s *PostQueryService) Get(ctx context.Context, id domain.PostID) (PostDTO, error) {
	if s.cache != nil {
		if data, ok := s.cache.Get(ctx, id.String()); ok {
			var dto PostDTO
			if err := json.Unmarshal(data, &dto); err == nil {
				return dto, nil
			}
			// A corrupt entry falls through to the repository.
			s.cache.Invalidate(ctx, id.String())
		}
	}

	post, err := s.posts.FindByID(ctx, id)
	if err != nil {
		return PostDTO{}, err
	}
	dto := ToPostDTO(post)

	if s.cache != nil {
		if data, err := json.Marshal(dto); err == nil {
			s.cache.Set(ctx, id.String(), data)
		} else {
			slog.Warn("post cache marshal failed", "post_id", id, "error", err)
		}
	}
	return dto, nil
}

// List returns a page of non-deleted posts, newest first.
func (s *PostQueryService) List(ctx context.Context, page, size int) (domain.Page[PostDTO], error) {
	result, err := s.posts.FindAll(ctx, page, size)
	if err != nil {
		return domain.Page[PostDTO]{}, err
	}
	return domain.MapPage(result, ToPostDTO), nil
}

// GetPublishedBySlug returns the projection of a published post looked
// up by its slug. Slug lookups bypass the cache, which is keyed by id.
func (s *PostQueryService) GetPublishedBySlug(ctx context.Context, slug string) (PostDTO, error) {
	post, err := s.posts.FindPublishedBySlug(ctx, slug)
	if err != nil {
		return PostDTO{}, err
	}
	return ToPostDTO(post), nil
}

// ListPublished returns a page of published posts, newest first.
func (s *PostQueryService) ListPublished(ctx context.Context, page, size int) (domain.Page[PostDTO], error) {
	result, err := s.posts.FindAllPublished(ctx, page, size)
	if err != nil {
		return domain.Page[PostDTO]{}, err
	}
	return domain.MapPage(result, ToPostDTO), nil
}

// Search returns a page of non-deleted posts matching the keyword.
func (s *PostQueryService) Search(ctx context.Context, keyword string, page, size int) (domain.Page[PostDTO], error) {
	result, err := s.posts.Search(ctx, keyword, page, size)
	if err != nil {
		return domain.Page[PostDTO]{}, err
	}
	return domain.MapPage(result, ToPostDTO), nil
}

// ListDeleted returns a page of soft-deleted posts.
func (s *PostQueryService) ListDeleted(ctx context.Context, page, size int) (domain.Page[PostDTO], error) {
	result, err := s.posts.FindAllDeleted(ctx, page, size)
	if err != nil {
		return domain.Page[PostDTO]{}, err
	}
	return domain.MapPage(result, ToPostDTO), nil
}

// SearchDeleted returns a page of soft-deleted posts matching the keyword.
func (s *PostQueryService) SearchDeleted(ctx context.Context, keyword string, page, size int) (domain.Page[PostDTO], error) {
	result, err := s.posts.SearchDeleted(ctx, keyword, page, size)
	if err != nil {
		return domain.Page[PostDTO]{}, err
	}
	return domain.MapPage(result, ToPostDTO), nil
}

// CategoryQueryService serves category projections.
type CategoryQueryService struct {
	categories domain.CategoryRepository
}

// NewCategoryQueryService creates a CategoryQueryService.
func NewCategoryQueryService(categories domain.CategoryRepository) *CategoryQueryService {
	return &CategoryQueryService{categories: categories}
}

// List returns every category.
func (s *CategoryQueryService) List(ctx context.Context) ([]CategoryDTO, error) {
	cats, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	dtos := make([]CategoryDTO, len(cats))
	for i, c := range cats {
		dtos[i] = ToCategoryDTO(c)
	}
	return dtos, nil
}
