// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package service

import (
	"time"

	"inkwell/internal/domain"
)

// PostDTO is the read-side projection of a Post aggregate handed to the
// transport layer.
type PostDTO struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Content     string        `json:"content"`
	AuthorID    string        `json:"author_id"`
	Slug        string        `json:"slug"`
	Categories  []CategoryDTO `json:"categories"`
	Comments    []CommentDTO  `json:"comments"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
	PublishedAt *time.Time    `json:"published_at,omitempty"`
	DeletedAt   *time.Time    `json:"deleted_at,omitempty"`
	IsPublished bool          `json:"is_published"`
	IsDeleted   bool          `json:"is_deleted"`
}

// CategoryDTO is the read-side projection of a Category.
type CategoryDTO struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CommentDTO is the read-side projection of a Comment.
type CommentDTO struct {
	ID         string     `json:"id"`
	Content    string     `json:"content"`
	Commenter  string     `json:"commenter"`
	IsApproved bool       `json:"is_approved"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	ApprovedAt *time.Time `json:"approved_at,omitempty"`
}

// ToPostDTO projects a Post aggregate into its DTO.
func ToPostDTO(p *domain.Post) PostDTO {
	cats := p.Categories()
	catDTOs := make([]CategoryDTO, len(cats))
	for i, c := range cats {
		catDTOs[i] = ToCategoryDTO(c)
	}

	comments := p.Comments()
	commentDTOs := make([]CommentDTO, len(comments))
	for i, c := range comments {
		commentDTOs[i] = toCommentDTO(c)
	}

	return PostDTO{
		ID:          p.ID().String(),
		Title:       p.Title(),
		Content:     p.Content(),
		AuthorID:    p.Author().ID(),
		Slug:        p.Slug(),
		Categories:  catDTOs,
		Comments:    commentDTOs,
		CreatedAt:   p.CreatedAt(),
		UpdatedAt:   p.UpdatedAt(),
		PublishedAt: p.PublishedAt(),
		DeletedAt:   p.DeletedAt(),
		IsPublished: p.IsPublished(),
		IsDeleted:   p.IsDeleted(),
	}
}

// ToCategoryDTO projects a Category into its DTO.
func ToCategoryDTO(c *domain.Category) CategoryDTO {
	return CategoryDTO{ID: c.ID().String(), Name: c.Name()}
}

func toCommentDTO(c *domain.Comment) CommentDTO {
	return CommentDTO{
		ID:         c.ID().String(),
		Content:    c.Content(),
		Commenter:  c.Commenter().ID(),
		IsApproved: c.IsApproved(),
		CreatedAt:  c.CreatedAt(),
		UpdatedAt:  c.UpdatedAt(),
		ApprovedAt: c.ApprovedAt(),
	}
}
