// service_test.go provides in-memory repository fakes shared by the
// service tests. The fakes deep-copy aggregates on save and load so a
// mutation that is never saved stays invisible, the same way a real
// database behaves.
package service

import (
	"context"
	"strings"
	"sync"
	"testing"

	"inkwell/internal/domain"
)

type memPostRepo struct {
	mu    sync.Mutex
	posts map[domain.PostID]*domain.Post
	saves int
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{posts: make(map[domain.PostID]*domain.Post)}
}

// copyPost rebuilds an independent aggregate so callers cannot mutate
// stored state through a shared pointer.
func copyPost(p *domain.Post) *domain.Post {
	cats := p.Categories()
	catCopies := make([]*domain.Category, len(cats))
	for i, c := range cats {
		catCopies[i] = domain.ReconstituteCategory(c.ID(), c.Name())
	}
	comments := p.Comments()
	commentCopies := make([]*domain.Comment, len(comments))
	for i, c := range comments {
		commentCopies[i] = domain.ReconstituteComment(
			c.ID(), c.Content(), c.Commenter(), c.CreatedAt(), c.UpdatedAt(), c.ApprovedAt())
	}
	return domain.ReconstitutePost(p.ID(), p.Title(), p.Slug(), p.Content(), p.Author(),
		catCopies, commentCopies, p.CreatedAt(), p.UpdatedAt(), p.PublishedAt(), p.DeletedAt())
}

func (r *memPostRepo) FindByID(_ context.Context, id domain.PostID) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok || p.IsDeleted() {
		return nil, domain.ErrPostNotFound(id)
	}
	return copyPost(p), nil
}

func (r *memPostRepo) FindPublishedBySlug(_ context.Context, slug string) (*domain.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.posts {
		if p.Slug() == slug && p.IsPublished() && !p.IsDeleted() {
			return copyPost(p), nil
		}
	}
	return nil, domain.ErrPostNotFoundSlug(slug)
}

func (r *memPostRepo) Save(_ context.Context, p *domain.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.posts[p.ID()] = copyPost(p)
	r.saves++
	return nil
}

func (r *memPostRepo) list(deleted bool, keyword string) []*domain.Post {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Post
	for _, p := range r.posts {
		if p.IsDeleted() != deleted {
			continue
		}
		if keyword != "" && !strings.Contains(p.Title(), keyword) && !strings.Contains(p.Content(), keyword) {
			continue
		}
		out = append(out, copyPost(p))
	}
	return out
}

func (r *memPostRepo) FindAll(_ context.Context, page, size int) (domain.Page[*domain.Post], error) {
	items := r.list(false, "")
	return domain.NewPage(items, page, size, int64(len(items))), nil
}

func (r *memPostRepo) FindAllPublished(_ context.Context, page, size int) (domain.Page[*domain.Post], error) {
	r.mu.Lock()
	var items []*domain.Post
	for _, p := range r.posts {
		if p.IsPublished() && !p.IsDeleted() {
			items = append(items, copyPost(p))
		}
	}
	r.mu.Unlock()
	return domain.NewPage(items, page, size, int64(len(items))), nil
}

func (r *memPostRepo) Search(_ context.Context, keyword string, page, size int) (domain.Page[*domain.Post], error) {
	items := r.list(false, keyword)
	return domain.NewPage(items, page, size, int64(len(items))), nil
}

func (r *memPostRepo) FindAllDeleted(_ context.Context, page, size int) (domain.Page[*domain.Post], error) {
	items := r.list(true, "")
	return domain.NewPage(items, page, size, int64(len(items))), nil
}

func (r *memPostRepo) SearchDeleted(_ context.Context, keyword string, page, size int) (domain.Page[*domain.Post], error) {
	items := r.list(true, keyword)
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

// stored returns the persisted aggregate, including soft-deleted ones.
func (r *memPostRepo) stored(t *testing.T, id domain.PostID) *domain.Post {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.posts[id]
	if !ok {
		t.Fatalf("post %s not in repo", id)
	}
	return copyPost(p)
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
	return domain.ReconstituteCategory(c.ID(), c.Name()), nil
}

func (r *memCategoryRepo) FindByIDs(_ context.Context, ids []domain.CategoryID) ([]*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*domain.Category
	for _, id := range ids {
		if c, ok := r.categories[id]; ok {
			out = append(out, domain.ReconstituteCategory(c.ID(), c.Name()))
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
	r.categories[c.ID()] = domain.ReconstituteCategory(c.ID(), c.Name())
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
		out = append(out, domain.ReconstituteCategory(c.ID(), c.Name()))
	}
	return out, nil
}

// seedCategory inserts a category directly into the fake repo.
func seedCategory(t *testing.T, r *memCategoryRepo, name string) *domain.Category {
	t.Helper()
	c, err := domain.NewCategory(name)
	if err != nil {
		t.Fatalf("NewCategory(%q): %v", name, err)
	}
	if err := r.Save(context.Background(), c); err != nil {
		t.Fatalf("Save: %v", err)
	}
	return c
}

// fakeCache records invalidations so cache wiring can be asserted.
type fakeCache struct {
	mu          sync.Mutex
	entries     map[string][]byte
	invalidated []string
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: make(map[string][]byte)}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	data, ok := c.entries[key]
	return data, ok
}

func (c *fakeCache) Set(_ context.Context, key string, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = data
}

func (c *fakeCache) Invalidate(_ context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	c.invalidated = append(c.invalidated, key)
}
