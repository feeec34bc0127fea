// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"promptoteka/internal/cache"
	"promptoteka/internal/catalog"
	"promptoteka/internal/mailer"
	"promptoteka/internal/markdown"
	"promptoteka/internal/models"
	"promptoteka/internal/render"
	"promptoteka/internal/store"
	"promptoteka/internal/taxonomy"
)

// Public groups handlers for the public-facing site. Listing pages read
// the prompt list through the catalog cache; fully rendered detail pages
// go through the page cache. Listing pages with a search query skip the
// page cache entirely.
type Public struct {
	renderer     *render.Renderer
	promptStore  *store.PromptStore
	articleStore *store.ArticleStore
	catalogCache *cache.CatalogCache
	pageCache    *cache.PageCache
	mail         *mailer.Mailer // may be nil if SMTP is not configured
}

// NewPublic creates a new Public handler group.
func NewPublic(renderer *render.Renderer, promptStore *store.PromptStore, articleStore *store.ArticleStore, catalogCache *cache.CatalogCache, pageCache *cache.PageCache, mail *mailer.Mailer) *Public {
	return &Public{
		renderer:     renderer,
		promptStore:  promptStore,
		articleStore: articleStore,
		catalogCache: catalogCache,
		pageCache:    pageCache,
		mail:         mail,
	}
}

// loadCatalog returns the full prompt list, preferring the catalog cache.
func (p *Public) loadCatalog(ctx context.Context) ([]models.Prompt, error) {
	if prompts, ok := p.catalogCache.Get(ctx); ok {
		return prompts, nil
	}

	prompts, err := p.promptStore.List()
	if err != nil {
		return nil, err
	}
	p.catalogCache.Set(ctx, prompts)
	return prompts, nil
}

// Home renders the catalog listing: all prompts, optionally narrowed by
// a tag search (?q=) and paginated (?strona=).
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	p.listing(w, r, taxonomy.Category(""), "")
}

// Category renders the catalog narrowed to one category, addressed by its
// URL slug. Unknown slugs get a 404.
func (p *Public) Category(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")

	cat, ok := taxonomy.FromSlug(slugParam)
	if !ok {
		http.NotFound(w, r)
		return
	}
	p.listing(w, r, cat, cat.Slug())
}

// listing is the shared implementation behind Home and Category.
func (p *Public) listing(w http.ResponseWriter, r *http.Request, activeCat taxonomy.Category, catSlug string) {
	ctx := r.Context()
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	page := parsePage(r.URL.Query().Get("strona"))

	// Cached HTML only serves query-less listings.
	cacheable := query == ""
	cacheKey := cache.ListKey(catSlug, page)
	if cacheable {
		if cached, ok := p.pageCache.Get(ctx, cacheKey); ok {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Write(cached)
			return
		}
	}

	prompts, err := p.loadCatalog(ctx)
	if err != nil {
		slog.Error("load catalog failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if activeCat != "" {
		prompts = catalog.FilterByCategory(prompts, activeCat)
	}
	prompts = catalog.Filter(prompts, query)

	pageItems, totalPages, currentPage := catalog.Paginate(prompts, catalog.DefaultPageSize, page)

	heading := "Biblioteka Promptów"
	title := "Katalog"
	if activeCat != "" {
		heading = string(activeCat)
		title = string(activeCat)
	}

	data := &render.PageData{
		Title: title,
		Data: map[string]any{
			"Heading":        heading,
			"Query":          query,
			"Categories":     taxonomy.Categories(),
			"ActiveCategory": activeCat,
			"Prompts":        pageItems,
			"TotalPages":     totalPages,
			"CurrentPage":    currentPage,
			"PageNumbers":    catalog.PageNumbers(currentPage, totalPages),
			"PageBaseURL":    listingBaseURL(catSlug, query),
		},
	}

	if !cacheable {
		p.renderer.Public(w, r, "home", data)
		return
	}

	// Render to a buffer so the result can be cached before sending.
	var buf bytes.Buffer
	if err := p.renderer.PublicHTML(&buf, "home", data); err != nil {
		slog.Error("render listing failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	p.pageCache.Set(ctx, cacheKey, buf.Bytes())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// listingBaseURL builds the href prefix pagination links append
// "strona=N" to, preserving the category path and search query.
func listingBaseURL(catSlug, query string) string {
	base := "/"
	if catSlug != "" {
		base = "/kategoria/" + catSlug
	}
	if query != "" {
		return base + "?q=" + url.QueryEscape(query) + "&"
	}
	return base + "?"
}

// parsePage parses the ?strona= parameter. Non-numeric or missing values
// become page 1; range clamping happens in Paginate.
func parsePage(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return 1
	}
	return n
}

// PromptDetail renders one prompt's page.
func (p *Public) PromptDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	idParam := chi.URLParam(r, "id")

	id, err := uuid.Parse(idParam)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	cacheKey := cache.PromptKey(id.String())
	if cached, ok := p.pageCache.Get(ctx, cacheKey); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(cached)
		return
	}

	prompt, err := p.promptStore.FindByID(id)
	if err != nil {
		slog.Error("find prompt failed", "error", err, "id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if prompt == nil {
		http.NotFound(w, r)
		return
	}

	data := &render.PageData{
		Title: prompt.DisplayTitle(),
		Data: map[string]any{
			"Prompt":          prompt,
			"MetaDescription": derefOr(prompt.Intro, ""),
		},
	}

	var buf bytes.Buffer
	if err := p.renderer.PublicHTML(&buf, "prompt", data); err != nil {
		slog.Error("render prompt failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	p.pageCache.Set(ctx, cacheKey, buf.Bytes())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// Blog renders the list of published articles.
func (p *Public) Blog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if cached, ok := p.pageCache.Get(ctx, cache.BlogKey()); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(cached)
		return
	}

	articles, err := p.articleStore.ListPublished()
	if err != nil {
		slog.Error("list published articles failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := &render.PageData{
		Title: "Blog",
		Data:  map[string]any{"Articles": articles},
	}

	var buf bytes.Buffer
	if err := p.renderer.PublicHTML(&buf, "blog", data); err != nil {
		slog.Error("render blog failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	p.pageCache.Set(ctx, cache.BlogKey(), buf.Bytes())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// Article renders a published article, converting its Markdown body to HTML.
func (p *Public) Article(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slugParam := chi.URLParam(r, "slug")

	cacheKey := cache.ArticleKey(slugParam)
	if cached, ok := p.pageCache.Get(ctx, cacheKey); ok {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(cached)
		return
	}

	article, err := p.articleStore.FindBySlug(slugParam)
	if err != nil {
		slog.Error("find article failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if article == nil {
		http.NotFound(w, r)
		return
	}

	bodyHTML, err := markdown.ToHTML(article.Body)
	if err != nil {
		slog.Error("markdown convert failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := &render.PageData{
		Title: article.Title,
		Data: map[string]any{
			"Article":         article,
			"BodyHTML":        template.HTML(bodyHTML),
			"MetaDescription": derefOr(article.MetaDescription, ""),
		},
	}

	var buf bytes.Buffer
	if err := p.renderer.PublicHTML(&buf, "article", data); err != nil {
		slog.Error("render article failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	p.pageCache.Set(ctx, cacheKey, buf.Bytes())

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// ContactForm renders the contact page.
func (p *Public) ContactForm(w http.ResponseWriter, r *http.Request) {
	p.renderer.Public(w, r, "kontakt", &render.PageData{
		Title: "Kontakt",
		Data:  map[string]any{},
	})
}

// ContactSubmit validates and forwards a contact-form submission.
func (p *Public) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	message := strings.TrimSpace(r.FormValue("message"))

	fail := func(msg string) {
		p.renderer.Public(w, r, "kontakt", &render.PageData{
			Title:   "Kontakt",
			Flashes: []render.Flash{{Type: "error", Message: msg}},
			Data:    map[string]any{"Name": name, "Email": email, "Message": message},
		})
	}

	if email == "" || message == "" {
		fail("E-mail i wiadomość są wymagane.")
		return
	}
	if !strings.Contains(email, "@") {
		fail("Podaj poprawny adres e-mail.")
		return
	}

	if p.mail == nil {
		fail("Wysyłka wiadomości jest chwilowo niedostępna.")
		return
	}

	if err := p.mail.SendContactMessage(name, email, message); err != nil {
		slog.Error("contact mail failed", "error", err)
		fail("Nie udało się wysłać wiadomości. Spróbuj ponownie później.")
		return
	}

	p.renderer.Public(w, r, "kontakt", &render.PageData{
		Title: "Kontakt",
		Data:  map[string]any{"Sent": true},
	})
}

// Health is a minimal liveness endpoint for load balancers.
func (p *Public) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

// derefOr returns the pointed-to string or a fallback.
func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
