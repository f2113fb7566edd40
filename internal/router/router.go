// Package router sets up all HTTP routes and middleware chains for the
// Inkwell API. It organizes routes into admin and public groups.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"inkwell/internal/handlers"
	"inkwell/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(posts *handlers.Posts, categories *handlers.Categories, public *handlers.Public) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check.
	r.Get("/health", healthHandler)

	// Admin routes: the write side plus full listings including drafts
	// and soft-deleted posts.
	r.Route("/admin", func(r chi.Router) {
		r.Route("/posts", func(r chi.Router) {
			r.Get("/", posts.List)
			r.Post("/", posts.Create)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", posts.Get)
				r.Put("/", posts.Update)
				r.Delete("/", posts.Delete)
				r.Post("/publish", posts.Publish)
				r.Post("/unpublish", posts.Unpublish)

				r.Route("/comments", func(r chi.Router) {
					r.Post("/", posts.CommentCreate)
					r.Route("/{commentID}", func(r chi.Router) {
						r.Put("/", posts.CommentUpdate)
						r.Delete("/", posts.CommentDelete)
						r.Post("/approval", posts.CommentApprove)
						r.Delete("/approval", posts.CommentCancelApproval)
					})
				})
			})
		})

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", categories.List)
			r.Post("/", categories.Create)
			r.Put("/{id}", categories.Update)
			r.Delete("/{id}", categories.Delete)
		})
	})

	// Public routes: published posts only, rate-limited.
	publicLimiter := middleware.NewRateLimiter(120, time.Minute)
	r.Group(func(r chi.Router) {
		r.Use(publicLimiter.Middleware)
		r.Get("/posts", public.List)
		r.Get("/posts/{slug}", public.Get)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
