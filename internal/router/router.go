// Package router sets up all HTTP routes and middleware chains for the
// prompt library. It organizes routes into public and admin groups with
// appropriate middleware stacks.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"promptoteka/internal/handlers"
	"promptoteka/internal/middleware"
	"promptoteka/internal/session"
	"promptoteka/web"
)

// Deps carries everything the router wires together.
type Deps struct {
	Sessions *session.Store
	Public   *handlers.Public
	Admin    *handlers.Admin
	AdminAI  *handlers.AdminAI
	Auth     *handlers.Auth

	// BaseURL is the canonical site URL used in feed links.
	BaseURL string
	// SecureCookies toggles the Secure attribute on the CSRF cookie.
	SecureCookies bool
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.LoadSession(d.Sessions))

	// Brute-force protection for login and the contact form, and a
	// separate limit for the LLM-backed endpoints.
	loginLimiter := middleware.NewRateLimiter(10, time.Minute)
	aiLimiter := middleware.NewRateLimiter(20, time.Minute)

	// Health and metrics — no auth, no CSRF.
	r.Get("/health", d.Public.Health)
	r.Handle("/metrics", promhttp.Handler())

	// Embedded static assets (compiled CSS).
	r.Handle("/static/*", http.FileServerFS(web.StaticFS))

	// Admin routes — CSRF protection on every form post.
	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.NewCSRF(d.SecureCookies))

		// Auth pages — accessible without a session.
		r.Get("/login", d.Auth.LoginPage)
		r.With(loginLimiter.Middleware).Post("/login", d.Auth.LoginSubmit)
		r.Post("/logout", d.Auth.Logout)

		// 2FA — requires auth but NOT completed 2FA.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Get("/2fa/setup", d.Auth.TwoFASetupPage)
			r.Post("/2fa/setup", d.Auth.TwoFASetupSubmit)
			r.Get("/2fa/verify", d.Auth.TwoFAVerifyPage)
			r.With(loginLimiter.Middleware).Post("/2fa/verify", d.Auth.TwoFAVerifySubmit)
		})

		// Authenticated + 2FA-verified admin area.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth)
			r.Use(middleware.Require2FA)

			// Dashboard + category backlog
			r.Get("/", d.Admin.Dashboard)
			r.Post("/classify", d.Admin.ClassifyAll)

			// Prompts
			r.Route("/prompts", func(r chi.Router) {
				r.Get("/", d.Admin.Prompts)
				r.Get("/new", d.Admin.PromptNew)
				r.Post("/new", d.Admin.PromptCreate)
				r.Get("/import", d.AdminAI.PromptImportForm)
				r.Post("/import", d.AdminAI.PromptImportSubmit)
				r.Get("/{id}", d.Admin.PromptEdit)
				r.Post("/{id}", d.Admin.PromptUpdate)
				r.Post("/{id}/delete", d.Admin.PromptDelete)
			})

			// Articles
			r.Route("/articles", func(r chi.Router) {
				r.Get("/", d.Admin.Articles)
				r.Get("/new", d.Admin.ArticleNew)
				r.Post("/new", d.Admin.ArticleCreate)
				r.Get("/{id}", d.Admin.ArticleEdit)
				r.Post("/{id}", d.Admin.ArticleUpdate)
				r.Post("/{id}/delete", d.Admin.ArticleDelete)
			})

			// AI assistant (prompt form helpers)
			r.Route("/ai", func(r chi.Router) {
				r.Use(aiLimiter.Middleware)
				r.Post("/translate", d.AdminAI.Translate)
				r.Post("/tags", d.AdminAI.Tags)
				r.Post("/intro", d.AdminAI.Intro)
			})
		})
	})

	// Public routes.
	r.Get("/", d.Public.Home)
	r.Get("/kategoria/{slug}", d.Public.Category)
	r.Get("/prompt/{id}", d.Public.PromptDetail)
	r.Get("/blog", d.Public.Blog)
	r.Get("/blog/{slug}", d.Public.Article)
	r.Get("/rss.xml", d.Public.Feed(d.BaseURL))
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewCSRF(d.SecureCookies))
		r.Get("/kontakt", d.Public.ContactForm)
		r.With(loginLimiter.Middleware).Post("/kontakt", d.Public.ContactSubmit)
	})

	return r
}
