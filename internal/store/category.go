// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"inkwell/internal/domain"
)

// CategoryStore persists Category entities.
type CategoryStore struct {
	db *sql.DB
}

// NewCategoryStore returns a new CategoryStore.
func NewCategoryStore(db *sql.DB) *CategoryStore {
	return &CategoryStore{db: db}
}

// FindByID retrieves a category, surfacing the domain not-found error
// when the id is unknown.
func (s *CategoryStore) FindByID(ctx context.Context, id domain.CategoryID) (*domain.Category, error) {
	var name string
	err := s.db.QueryRowContext(ctx,
		`SELECT name FROM categories WHERE id = $1`, id.UUID()).Scan(&name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrCategoryNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("find category by id: %w", err)
	}
	return domain.ReconstituteCategory(id, name), nil
}

// FindByIDs returns the categories that exist among the given ids.
// Missing ids are simply absent from the result; callers diff.
func (s *CategoryStore) FindByIDs(ctx context.Context, ids []domain.CategoryID) ([]*domain.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	raw := make([]uuid.UUID, len(ids))
	for i, id := range ids {
		raw[i] = id.UUID()
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name FROM categories WHERE id = ANY($1)`, raw)
	if err != nil {
		return nil, fmt.Errorf("find categories by ids: %w", err)
	}
	defer rows.Close()

	var result []*domain.Category
	for rows.Next() {
		var id uuid.UUID
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		result = append(result, domain.ReconstituteCategory(domain.CategoryIDFromUUID(id), name))
	}
	return result, rows.Err()
}

// ExistsByName reports whether a category with the exact name exists.
func (s *CategoryStore) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE name = $1)`, name).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists by name: %w", err)
	}
	return exists, nil
}

// Save inserts or updates a category.
func (s *CategoryStore) Save(ctx context.Context, c *domain.Category) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO categories (id, name)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, updated_at = NOW()
	`, c.ID().UUID(), c.Name())
	if err != nil {
		return fmt.Errorf("save category: %w", err)
	}
	return nil
}

// Delete removes a category. The services check category usage first;
// the foreign key on post_categories is the storage-level backstop.
func (s *CategoryStore) Delete(ctx context.Context, c *domain.Category) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM categories WHERE id = $1`, c.ID().UUID())
	if err != nil {
		return fmt.Errorf("delete category: %w", err)
	}
	return nil
}

// FindAll returns every category ordered by name.
func (s *CategoryStore) FindAll(ctx context.Context) ([]*domain.Category, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, name FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var result []*domain.Category
	for rows.Next() {
		var id uuid.UUID
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		result = append(result, domain.ReconstituteCategory(domain.CategoryIDFromUUID(id), name))
	}
	return result, rows.Err()
}
