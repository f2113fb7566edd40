// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler tests.
// Services run against in-memory repositories, so no database is needed.
package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/domain"
	"inkwell/internal/service"
)

type memPostRepo struct {
	mu    sync.Mutex
	posts map[domain.PostID]*domain.Post
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: make(map[domain.PostID]*domain.Post)}
}

func (r *memPostRepo) FindByID(_ context.Context, id domain.PostID) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok || p.IsDeleted() {
		return nil, domain.ErrPostNotFound(id)
	}
	return p, nil
}

func (r *memPostRepo) FindPublishedBySlug(_ context.Context, slug string) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.posts {
		if p.Slug() == slug && p.IsPublished() && !p.IsDeleted() {
			return p, nil
		}
	}
	return nil, domain.ErrPostNotFoundSlug(slug)
}

func (r *memPostRepo) Save(_ context.Context, p *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts[p.ID()] = p
	return nil
}

func (r *memPostRepo) list(filter func(*domain.Post) bool) []*domain.Post {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Post
	for _, p := range r.posts {
		if filter(p) {
			out = append(out, p)
		}
	}
	return out
}

func matches(p *domain.Post, keyword string) bool {
	return strings.Contains(p.Title(), keyword) || strings.Contains(p.Content(), keyword)
}

func (r *memPostRepo) FindAll(_ context.Context, page, size int) (domain.Page[*domain.Post], error) {
	items := r.list(func(p *domain.Post) bool { return !p.IsDeleted() })
	return domain.NewPage(items, page, size, int64(len(items))), nil
}

func (r *memPostRepo) FindAllPublished(_ context.Context, page, size int) (domain.Page[*domain.Post], error) {
	items := r.list(func(p *domain.Post) bool { return p.IsPublished() && !p.IsDeleted() })
	return domain.NewPage(items, page, size, int64(len(items))), nil
}

func (r *memPostRepo) Search(_ context.Context, keyword string, page, size int) (domain.Page[*domain.Post], error) {
	items := r.list(func(p *domain.Post) bool { return !p.IsDeleted() && matches(p, keyword) })
	return domain.NewPage(items, page, size, int64(len(items))), nil
}

func (r *memPostRepo) FindAllDeleted(_ context.Context, page, size int) (domain.Page[*domain.Post], error) {
	items := r.list(func(p *domain.Post) bool { return p.IsDeleted() })
	return domain.NewPage(items, page, size, int64(len(items))), nil
}

func (r *memPostRepo) SearchDeleted(_ context.Context, keyword string, page, size int) (domain.Page[*domain.Post], error) {
	items := r.list(func(p *domain.Post) bool { return p.IsDeleted() && matches(p, keyword) })
	return domain.NewPage(items, page, size, int64(len(items))), nil
}

func (r *memPostRepo) ExistsByCategory(_ context.Context, id domain.CategoryID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.posts {
		if p.IsDeleted() {
			continue
		}
		for _, cid := range p.CategoryIDs() {
			if cid == id {
				return true, nil
			}
		}
	}
	return false, nil
}

type memCategoryRepo struct {
	mu         sync.Mutex
	categories map[domain.CategoryID]*domain.Category
}

func newMemCategoryRepo() *memCategoryRepo {
	return &memCategoryRepo{categories: make(map[domain.CategoryID]*domain.Category)}
}

func (r *memCategoryRepo) FindByID(_ context.Context, id domain.CategoryID) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.categories[id]
	if !ok {
		return nil, domain.ErrCategoryNotFound(id)
	}
	return c, nil
}

func (r *memCategoryRepo) FindByIDs(_ context.Context, ids []domain.CategoryID) ([]*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Category
	for _, id := range ids {
		if c, ok := r.categories[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memCategoryRepo) ExistsByName(_ context.Context, name string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.categories {
		if c.Name() == name {
			return true, nil
		}
	}
	return false, nil
}

func (r *memCategoryRepo) Save(_ context.Context, c *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.categories[c.ID()] = c
	return nil
}

func (r *memCategoryRepo) Delete(_ context.Context, c *domain.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.categories, c.ID())
	return nil
}

func (r *memCategoryRepo) FindAll(_ context.Context) ([]*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Category
	for _, c := range r.categories {
		out = append(out, c)
	}
	return out, nil
}

// testAPI bundles the handler groups and their backing fakes.
type testAPI struct {
	mux        *chi.Mux
	posts      *memPostRepo
	categories *memCategoryRepo
	postSvc    *service.PostService
}

// newTestAPI wires handlers over in-memory repositories and mounts them
// on the same paths the router uses.
func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	posts := newMemPostRepo()
	categories := newMemCategoryRepo()

	postSvc := service.NewPostService(posts, categories, nil)
	categorySvc := service.NewCategoryService(categories, posts)
	postQueries := service.NewPostQueryService(posts, nil)
	categoryQueries := service.NewCategoryQueryService(categories)

	ph := NewPosts(postSvc, postQueries)
	ch := NewCategories(categorySvc, categoryQueries)
	pub := NewPublic(postQueries)

	mux := chi.NewRouter()
	mux.Route("/admin/posts", func(r chi.Router) {
		r.Get("/", ph.List)
		r.Post("/", ph.Create)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", ph.Get)
			r.Put("/", ph.Update)
			r.Delete("/", ph.Delete)
			r.Post("/publish", ph.Publish)
			r.Post("/unpublish", ph.Unpublish)
			r.Route("/comments", func(r chi.Router) {
				r.Post("/", ph.CommentCreate)
				r.Route("/{commentID}", func(r chi.Router) {
					r.Put("/", ph.CommentUpdate)
					r.Delete("/", ph.CommentDelete)
					r.Post("/approval", ph.CommentApprove)
					r.Delete("/approval", ph.CommentCancelApproval)
				})
			})
		})
	})
	mux.Route("/admin/categories", func(r chi.Router) {
		r.Get("/", ch.List)
		r.Post("/", ch.Create)
		r.Put("/{id}", ch.Update)
		r.Delete("/{id}", ch.Delete)
	})
	mux.Get("/posts", pub.List)
	mux.Get("/posts/{slug}", pub.Get)

	return &testAPI{mux: mux, posts: posts, categories: categories, postSvc: postSvc}
}

// do sends a request with an optional JSON body and returns the recorder.
func (a *testAPI) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	a.mux.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals a recorded JSON response body.
func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("unmarshal response %q: %v", rec.Body.String(), err)
	}
}

// createPost creates a post through the API and returns its DTO.
func (a *testAPI) createPost(t *testing.T, title string, categoryIDs ...string) service.PostDTO {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/admin/posts", postCreateRequest{
		Title: title, Content: "some *markdown* content", AuthorID: "author-1",
		CategoryIDs: categoryIDs,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create post: status %d body %s", rec.Code, rec.Body.String())
	}
	var dto service.PostDTO
	decode(t, rec, &dto)
	return dto
}

// createCategory creates a category through the API and returns its DTO.
func (a *testAPI) createCategory(t *testing.T, name string) service.CategoryDTO {
	t.Helper()
	rec := a.do(t, http.MethodPost, "/admin/categories", categoryRequest{Name: name})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create category: status %d body %s", rec.Code, rec.Body.String())
	}
	var dto service.CategoryDTO
	decode(t, rec, &dto)
	return dto
}
