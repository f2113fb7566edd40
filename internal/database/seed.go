package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"inkwell/internal/domain"
	"inkwell/internal/store"
)

// Seed populates the database with initial development data: a couple
// of categories and a published sample post. It is a no-op when any
// posts already exist.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM posts").Scan(&count); err != nil {
		return fmt.Errorf("seed check posts: %w", err)
	}
	if count > 0 {
		return nil
	}

	ctx := context.Background()
	categories := store.NewCategoryStore(db)
	posts := store.NewPostStore(db)

	catGo, err := domain.NewCategory("Go")
	if err != nil {
		return fmt.Errorf("seed category: %w", err)
	}
	catNews, err := domain.NewCategory("News")
	if err != nil {
		return fmt.Errorf("seed category: %w", err)
	}
	for _, c := range []*domain.Category{catGo, catNews} {
		if err := categories.Save(ctx, c); err != nil {
			return fmt.Errorf("seed save category: %w", err)
		}
	}

	author, err := domain.NewAuthor("seed-admin")
	if err != nil {
		return fmt.Errorf("seed author: %w", err)
	}
	post, err := domain.NewPost(
		"Welcome to Inkwell",
		"This sample post was created by the development seed. Publish, edit, or delete it freely.",
		author, catNews)
	if err != nil {
		return fmt.Errorf("seed post: %w", err)
	}
	if err := post.Publish(); err != nil {
		return fmt.Errorf("seed publish: %w", err)
	}
	if err := posts.Save(ctx, post); err != nil {
		return fmt.Errorf("seed save post: %w", err)
	}

	slog.Info("database seeded", "post_id", post.ID(), "slug", post.Slug())
	return nil
}
