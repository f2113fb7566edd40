// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store implements the domain repository contracts on
// PostgreSQL. Aggregates are written as one transaction and
// reconstituted on load; the stores surface domain not-found errors so
// services never see sql.ErrNoRows.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"inkwell/internal/domain"
)

// PostStore persists Post aggregates.
type PostStore struct {
	db *sql.DB
}

// NewPostStore returns a new PostStore.
func NewPostStore(db *sql.DB) *PostStore {
	return &PostStore{db: db}
}

const postColumns = `id, title, content, slug, author_id, created_at, updated_at, published_at, deleted_at`

// postRow is the flat posts table shape before reconstitution.
type postRow struct {
	id          uuid.UUID
	title       string
	content     string
	slug        string
	authorID    string
	createdAt   time.Time
	updatedAt   time.Time
	publishedAt *time.Time
	deletedAt   *time.Time
}

func scanPostRow(scanner interface{ Scan(...any) error }) (postRow, error) {
	var r postRow
	err := scanner.Scan(
		&r.id, &r.title, &r.content, &r.slug, &r.authorID,
		&r.createdAt, &r.updatedAt, &r.publishedAt, &r.deletedAt,
	)
	return r, err
}

// FindByID loads a non-deleted post aggregate with its categories and
// comments.
func (s *PostStore) FindByID(ctx context.Context, id domain.PostID) (*domain.Post, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+postColumns+` FROM posts WHERE id = $1 AND deleted_at IS NULL`, id.UUID())
	r, err := scanPostRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPostNotFound(id)
	}
	if err != nil {
		return nil, fmt.Errorf("find post by id: %w", err)
	}

	cats, err := s.loadCategories(ctx, []uuid.UUID{r.id})
	if err != nil {
		return nil, err
	}
	comments, err := s.loadComments(ctx, []uuid.UUID{r.id})
	if err != nil {
		return nil, err
	}

	return reconstitute(r, cats[r.id], comments[r.id]), nil
}

// FindPublishedBySlug loads a published, non-deleted post by its slug.
func (s *PostStore) FindPublishedBySlug(ctx context.Context, slugStr string) (*domain.Post, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+postColumns+` FROM posts
		 WHERE slug = $1 AND deleted_at IS NULL AND published_at IS NOT NULL`, slugStr)
	r, err := scanPostRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrPostNotFoundSlug(slugStr)
	}
	if err != nil {
		return nil, fmt.Errorf("find post by slug: %w", err)
	}

	cats, err := s.loadCategories(ctx, []uuid.UUID{r.id})
	if err != nil {
		return nil, err
	}
	comments, err := s.loadComments(ctx, []uuid.UUID{r.id})
	if err != nil {
		return nil, err
	}

	return reconstitute(r, cats[r.id], comments[r.id]), nil
}

// Save writes the whole aggregate in one transaction: the post row is
// upserted and the category links and comments are replaced.
func (s *PostStore) Save(ctx context.Context, p *domain.Post) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO posts (id, title, content, slug, author_id, created_at, updated_at, published_at, deleted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title, content = EXCLUDED.content,
			slug = EXCLUDED.slug, updated_at = EXCLUDED.updated_at,
			published_at = EXCLUDED.published_at, deleted_at = EXCLUDED.deleted_at
	`, p.ID().UUID(), p.Title(), p.Content(), p.Slug(), p.Author().ID(),
		p.CreatedAt(), p.UpdatedAt(), p.PublishedAt(), p.DeletedAt())
	if err != nil {
		return fmt.Errorf("save post: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM post_categories WHERE post_id = $1`, p.ID().UUID()); err != nil {
		return fmt.Errorf("clear post categories: %w", err)
	}
	for i, c := range p.Categories() {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO post_categories (post_id, category_id, position)
			VALUES ($1, $2, $3)
		`, p.ID().UUID(), c.ID().UUID(), i); err != nil {
			return fmt.Errorf("link category %s: %w", c.ID(), err)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM comments WHERE post_id = $1`, p.ID().UUID()); err != nil {
		return fmt.Errorf("clear comments: %w", err)
	}
	for i, c := range p.Comments() {
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO comments (id, post_id, content, commenter, position, created_at, updated_at, approved_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		`, c.ID().UUID(), p.ID().UUID(), c.Content(), c.Commenter().ID(),
			i, c.CreatedAt(), c.UpdatedAt(), c.ApprovedAt()); err != nil {
			return fmt.Errorf("save comment %s: %w", c.ID(), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit post save: %w", err)
	}
	return nil
}

// ExistsByCategory reports whether any non-deleted post references the
// category.
func (s *PostStore) ExistsByCategory(ctx context.Context, id domain.CategoryID) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM post_categories pc
			JOIN posts p ON p.id = pc.post_id
			WHERE pc.category_id = $1 AND p.deleted_at IS NULL
		)
	`, id.UUID()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists by category: %w", err)
	}
	return exists, nil
}

// FindAll returns non-deleted posts, newest first.
func (s *PostStore) FindAll(ctx context.Context, page, size int) (domain.Page[*domain.Post], error) {
	return s.listPage(ctx, `deleted_at IS NULL`, nil, page, size)
}

// FindAllPublished returns published, non-deleted posts, newest first.
func (s *PostStore) FindAllPublished(ctx context.Context, page, size int) (domain.Page[*domain.Post], error) {
	return s.listPage(ctx, `deleted_at IS NULL AND published_at IS NOT NULL`, nil, page, size)
}

// Search returns non-deleted posts whose title or content matches the
// keyword.
func (s *PostStore) Search(ctx context.Context, keyword string, page, size int) (domain.Page[*domain.Post], error) {
	return s.listPage(ctx, `deleted_at IS NULL AND (title ILIKE $1 OR content ILIKE $1)`,
		[]any{"%" + keyword + "%"}, page, size)
}

// FindAllDeleted returns soft-deleted posts, newest first.
func (s *PostStore) FindAllDeleted(ctx context.Context, page, size int) (domain.Page[*domain.Post], error) {
	return s.listPage(ctx, `deleted_at IS NOT NULL`, nil, page, size)
}

// SearchDeleted searches among soft-deleted posts.
func (s *PostStore) SearchDeleted(ctx context.Context, keyword string, page, size int) (domain.Page[*domain.Post], error) {
	return s.listPage(ctx, `deleted_at IS NOT NULL AND (title ILIKE $1 OR content ILIKE $1)`,
		[]any{"%" + keyword + "%"}, page, size)
}

// listPage runs a paginated query over the posts table and assembles
// the aggregates with two batch lookups instead of per-post round trips.
func (s *PostStore) listPage(ctx context.Context, cond string, args []any, page, size int) (domain.Page[*domain.Post], error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 20
	}

	var total int64
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM posts WHERE `+cond, args...).Scan(&total); err != nil {
		return domain.Page[*domain.Post]{}, fmt.Errorf("count posts: %w", err)
	}

	query := fmt.Sprintf(
		`SELECT %s FROM posts WHERE %s ORDER BY created_at DESC LIMIT %d OFFSET %d`,
		postColumns, cond, size, page*size)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return domain.Page[*domain.Post]{}, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var prs []postRow
	var ids []uuid.UUID
	for rows.Next() {
		r, err := scanPostRow(rows)
		if err != nil {
			return domain.Page[*domain.Post]{}, fmt.Errorf("scan post: %w", err)
		}
		prs = append(prs, r)
		ids = append(ids, r.id)
	}
	if err := rows.Err(); err != nil {
		return domain.Page[*domain.Post]{}, err
	}

	cats, err := s.loadCategories(ctx, ids)
	if err != nil {
		return domain.Page[*domain.Post]{}, err
	}
	comments, err := s.loadComments(ctx, ids)
	if err != nil {
		return domain.Page[*domain.Post]{}, err
	}

	posts := make([]*domain.Post, len(prs))
	for i, r := range prs {
		posts[i] = reconstitute(r, cats[r.id], comments[r.id])
	}
	return domain.NewPage(posts, page, size, total), nil
}

// loadCategories returns the ordered category references for each post id.
func (s *PostStore) loadCategories(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID][]*domain.Category, error) {
	result := make(map[uuid.UUID][]*domain.Category)
	if len(postIDs) == 0 {
		return result, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT pc.post_id, c.id, c.name
		FROM post_categories pc
		JOIN categories c ON c.id = pc.category_id
		WHERE pc.post_id = ANY($1)
		ORDER BY pc.post_id, pc.position
	`, postIDs)
	if err != nil {
		return nil, fmt.Errorf("load post categories: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var postID, catID uuid.UUID
		var name string
		if err := rows.Scan(&postID, &catID, &name); err != nil {
			return nil, fmt.Errorf("scan post category: %w", err)
		}
		result[postID] = append(result[postID],
			domain.ReconstituteCategory(domain.CategoryIDFromUUID(catID), name))
	}
	return result, rows.Err()
}

// loadComments returns the ordered comments for each post id.
func (s *PostStore) loadComments(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID][]*domain.Comment, error) {
	result := make(map[uuid.UUID][]*domain.Comment)
	if len(postIDs) == 0 {
		return result, nil
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT post_id, id, content, commenter, created_at, updated_at, approved_at
		FROM comments
		WHERE post_id = ANY($1)
		ORDER BY post_id, position
	`, postIDs)
	if err != nil {
		return nil, fmt.Errorf("load comments: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var postID, commentID uuid.UUID
		var content, commenterID string
		var createdAt, updatedAt time.Time
		var approvedAt *time.Time
		if err := rows.Scan(&postID, &commentID, &content, &commenterID,
			&createdAt, &updatedAt, &approvedAt); err != nil {
			return nil, fmt.Errorf("scan comment: %w", err)
		}
		commenter, err := domain.NewCommenter(commenterID)
		if err != nil {
			return nil, fmt.Errorf("comment %s: %w", commentID, err)
		}
		result[postID] = append(result[postID], domain.ReconstituteComment(
			domain.CommentIDFromUUID(commentID), content, commenter,
			createdAt, updatedAt, approvedAt))
	}
	return result, rows.Err()
}

func reconstitute(r postRow, cats []*domain.Category, comments []*domain.Comment) *domain.Post {
	author, _ := domain.NewAuthor(r.authorID)
	return domain.ReconstitutePost(
		domain.PostIDFromUUID(r.id), r.title, r.slug, r.content, author,
		cats, comments, r.createdAt, r.updatedAt, r.publishedAt, r.deletedAt)
}
