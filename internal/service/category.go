// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package service

import (
	"context"
	"log/slog"

	"inkwell/internal/domain"
)

// CategoryService orchestrates category lifecycle commands. Global name
// uniqueness is checked here through the repository rather than left to
// a database constraint, so the error carries a domain code.
type CategoryService struct {
	categories domain.CategoryRepository
	posts      domain.PostRepository
}

// NewCategoryService creates a CategoryService.
func NewCategoryService(categories domain.CategoryRepository, posts domain.PostRepository) *CategoryService {
	return &CategoryService{categories: categories, posts: posts}
}

// Create makes a new category. The name must not match any existing
// category exactly (case-sensitive, no normalization).
func (s *CategoryService) Create(ctx context.Context, name string) (*domain.Category, error) {
	exists, err := s.categories.ExistsByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrCategoryExists(name)
	}

	category, err := domain.NewCategory(name)
	if err != nil {
		return nil, err
	}
	if err := s.categories.Save(ctx, category); err != nil {
		return nil, err
	}

	slog.Info("category created", "category_id", category.ID(), "name", name)
	return category, nil
}

// Rename changes a category's name after checking the new name is not
// already taken.
func (s *CategoryService) Rename(ctx context.Context, id domain.CategoryID, newName string) error {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return err
	}

	exists, err := s.categories.ExistsByName(ctx, newName)
	if err != nil {
		return err
	}
	if exists {
		return domain.ErrCategoryExists(newName)
	}

	if err := category.Rename(newName); err != nil {
		return err
	}
	if err := s.categories.Save(ctx, category); err != nil {
		return err
	}

	slog.Info("category renamed", "category_id", id, "name", newName)
	return nil
}

// Delete removes a category unless a non-deleted post still references
// it.
func (s *CategoryService) Delete(ctx context.Context, id domain.CategoryID) error {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		return err
	}

	inUse, err := s.posts.ExistsByCategory(ctx, id)
	if err != nil {
		return err
	}
	if inUse {
		return domain.ErrCannotDeleteCategory(id)
	}

	if err := s.categories.Delete(ctx, category); err != nil {
		return err
	}

	slog.Info("category deleted", "category_id", id)
	return nil
}
