// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package domain

import "strings"

// Category is an independently lifecycled entity that posts reference by
// identity. Name uniqueness across all categories is a service-level
// concern, not an entity invariant.
type Category struct {
	id   CategoryID
	name string
}

// NewCategory creates a category with a fresh id.
func NewCategory(name string) (*Category, error) {
	if strings.TrimSpace(name) == "" {
		return nil, ErrInvalidArgument("category name")
	}
	return &Category{id: NewCategoryID(), name: name}, nil
}

// ReconstituteCategory rebuilds a category loaded from storage.
func ReconstituteCategory(id CategoryID, name string) *Category {
	return &Category{id: id, name: name}
}

// ID returns the category's identifier. Assigned at creation, never
// reassigned.
func (c *Category) ID() CategoryID { return c.id }

// Name returns the category's name.
func (c *Category) Name() string { return c.name }

// Rename changes the category's name.
func (c *Category) Rename(newName string) error {
	if strings.TrimSpace(newName) == "" {
		return ErrInvalidArgument("category name")
	}
	c.name = newName
	return nil
}
