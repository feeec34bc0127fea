// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"promptoteka/internal/cache"
	"promptoteka/internal/catalog"
	"promptoteka/internal/models"
	"promptoteka/internal/render"
	"promptoteka/internal/slug"
	"promptoteka/internal/store"
	"promptoteka/internal/taxonomy"
)

// Admin groups the admin-panel CRUD handlers for prompts and articles.
// Every write invalidates the catalog cache and the affected page-cache
// entries, keeping the public site consistent.
type Admin struct {
	renderer     *render.Renderer
	promptStore  *store.PromptStore
	articleStore *store.ArticleStore
	classifier   *catalog.Service
	catalogCache *cache.CatalogCache
	pageCache    *cache.PageCache
}

// NewAdmin creates a new Admin handler group.
func NewAdmin(renderer *render.Renderer, promptStore *store.PromptStore, articleStore *store.ArticleStore, classifier *catalog.Service, catalogCache *cache.CatalogCache, pageCache *cache.PageCache) *Admin {
	return &Admin{
		renderer:     renderer,
		promptStore:  promptStore,
		articleStore: articleStore,
		classifier:   classifier,
		catalogCache: catalogCache,
		pageCache:    pageCache,
	}
}

// invalidatePromptCaches drops everything a prompt write can affect:
// the catalog list and all cached listing/detail pages.
func (h *Admin) invalidatePromptCaches(r *http.Request) {
	ctx := r.Context()
	h.catalogCache.Invalidate(ctx)
	h.pageCache.InvalidateAll(ctx)
}

// Dashboard shows entity counts and the classification backlog.
func (h *Admin) Dashboard(w http.ResponseWriter, r *http.Request) {
	prompts, err := h.promptStore.List()
	if err != nil {
		slog.Error("dashboard list prompts failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	articles, err := h.articleStore.List()
	if err != nil {
		slog.Error("dashboard list articles failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	uncategorized := 0
	for _, p := range prompts {
		if !p.HasCategory() {
			uncategorized++
		}
	}

	h.renderer.Admin(w, r, "dashboard", &render.PageData{
		Title:   "Pulpit",
		Section: "dashboard",
		Data: map[string]any{
			"PromptCount":        len(prompts),
			"UncategorizedCount": uncategorized,
			"ArticleCount":       len(articles),
		},
	})
}

// ClassifyAll runs keyword classification over all uncategorized prompts.
func (h *Admin) ClassifyAll(w http.ResponseWriter, r *http.Request) {
	n, err := h.classifier.ClassifyAll()
	if err != nil {
		slog.Error("classify all failed", "error", err, "classified", n)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if n > 0 {
		h.invalidatePromptCaches(r)
	}
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// --- Prompts ---

// Prompts lists all prompts for the admin panel.
func (h *Admin) Prompts(w http.ResponseWriter, r *http.Request) {
	prompts, err := h.promptStore.List()
	if err != nil {
		slog.Error("admin list prompts failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.renderer.Admin(w, r, "prompts", &render.PageData{
		Title:   "Prompty",
		Section: "prompts",
		Data:    map[string]any{"Prompts": prompts},
	})
}

// PromptNew renders an empty prompt form.
func (h *Admin) PromptNew(w http.ResponseWriter, r *http.Request) {
	h.renderPromptForm(w, r, &models.Prompt{Kind: models.PromptKindText}, true, nil)
}

// PromptEdit renders the form pre-filled with an existing prompt.
func (h *Admin) PromptEdit(w http.ResponseWriter, r *http.Request) {
	prompt, ok := h.findPrompt(w, r)
	if !ok {
		return
	}
	h.renderPromptForm(w, r, prompt, false, nil)
}

func (h *Admin) renderPromptForm(w http.ResponseWriter, r *http.Request, p *models.Prompt, isNew bool, flashes []render.Flash) {
	action := "/admin/prompts/new"
	if !isNew {
		action = "/admin/prompts/" + p.ID.String()
	}

	h.renderer.Admin(w, r, "prompt_form", &render.PageData{
		Title:   "Prompt",
		Section: "prompts",
		Flashes: flashes,
		Data: map[string]any{
			"Prompt":           p,
			"IsNew":            isNew,
			"Action":           action,
			"TagsJoined":       strings.Join(p.Tags, ", "),
			"Categories":       taxonomy.Categories(),
			"SelectedCategory": p.CategoryName(),
		},
	})
}

// promptFromForm builds a Prompt from submitted form values.
func promptFromForm(r *http.Request) *models.Prompt {
	p := &models.Prompt{
		Title:           strings.TrimSpace(r.FormValue("title")),
		TitlePL:         optionalField(r.FormValue("title_pl")),
		Body:            r.FormValue("body"),
		BodyPL:          optionalField(r.FormValue("body_pl")),
		Intro:           optionalField(r.FormValue("intro")),
		Kind:            models.PromptKind(r.FormValue("kind")),
		Tags:            parseTags(r.FormValue("tags")),
		AuthorName:      strings.TrimSpace(r.FormValue("author_name")),
		AuthorHandle:    optionalField(r.FormValue("author_handle")),
		AuthorAvatarURL: optionalField(r.FormValue("author_avatar_url")),
		SourceURL:       optionalField(r.FormValue("source_url")),
	}

	switch p.Kind {
	case models.PromptKindText, models.PromptKindImage, models.PromptKindVideo:
	default:
		p.Kind = models.PromptKindText
	}

	// Explicit category choice overrides the classifier; blank means
	// "classify automatically from tags".
	if raw := r.FormValue("category"); raw != "" && taxonomy.Valid(taxonomy.Category(raw)) {
		c := taxonomy.Category(raw)
		p.Category = &c
	} else if len(p.Tags) > 0 {
		c := taxonomy.Classify(p.Tags)
		p.Category = &c
	}

	return p
}

// PromptCreate handles the new-prompt form submission.
func (h *Admin) PromptCreate(w http.ResponseWriter, r *http.Request) {
	p := promptFromForm(r)

	if msg := validatePrompt(p.Title, p.Body, r.FormValue("tags")); msg != "" {
		h.renderPromptForm(w, r, p, true, []render.Flash{{Type: "error", Message: msg}})
		return
	}

	if _, err := h.promptStore.Create(p); err != nil {
		slog.Error("create prompt failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.invalidatePromptCaches(r)
	http.Redirect(w, r, "/admin/prompts", http.StatusSeeOther)
}

// PromptUpdate handles the edit form submission.
func (h *Admin) PromptUpdate(w http.ResponseWriter, r *http.Request) {
	existing, ok := h.findPrompt(w, r)
	if !ok {
		return
	}

	p := promptFromForm(r)
	p.ID = existing.ID
	p.ImageURLs = existing.ImageURLs // images are managed via import/upload, not the form

	if msg := validatePrompt(p.Title, p.Body, r.FormValue("tags")); msg != "" {
		h.renderPromptForm(w, r, p, false, []render.Flash{{Type: "error", Message: msg}})
		return
	}

	if err := h.promptStore.Update(p); err != nil {
		slog.Error("update prompt failed", "error", err, "id", p.ID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.invalidatePromptCaches(r)
	http.Redirect(w, r, "/admin/prompts", http.StatusSeeOther)
}

// PromptDelete removes a prompt.
func (h *Admin) PromptDelete(w http.ResponseWriter, r *http.Request) {
	prompt, ok := h.findPrompt(w, r)
	if !ok {
		return
	}

	if err := h.promptStore.Delete(prompt.ID); err != nil {
		slog.Error("delete prompt failed", "error", err, "id", prompt.ID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.invalidatePromptCaches(r)
	http.Redirect(w, r, "/admin/prompts", http.StatusSeeOther)
}

// findPrompt resolves the {id} URL parameter. Writes the error response
// and returns ok=false when the prompt can't be served.
func (h *Admin) findPrompt(w http.ResponseWriter, r *http.Request) (*models.Prompt, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return nil, false
	}

	prompt, err := h.promptStore.FindByID(id)
	if err != nil {
		slog.Error("find prompt failed", "error", err, "id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil, false
	}
	if prompt == nil {
		http.NotFound(w, r)
		return nil, false
	}
	return prompt, true
}

// --- Articles ---

// Articles lists all articles, drafts included.
func (h *Admin) Articles(w http.ResponseWriter, r *http.Request) {
	articles, err := h.articleStore.List()
	if err != nil {
		slog.Error("admin list articles failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.renderer.Admin(w, r, "articles", &render.PageData{
		Title:   "Artykuły",
		Section: "articles",
		Data:    map[string]any{"Articles": articles},
	})
}

// ArticleNew renders an empty article form.
func (h *Admin) ArticleNew(w http.ResponseWriter, r *http.Request) {
	h.renderArticleForm(w, r, &models.Article{Status: models.ArticleStatusDraft}, true, nil)
}

// ArticleEdit renders the form pre-filled with an existing article.
func (h *Admin) ArticleEdit(w http.ResponseWriter, r *http.Request) {
	article, ok := h.findArticle(w, r)
	if !ok {
		return
	}
	h.renderArticleForm(w, r, article, false, nil)
}

func (h *Admin) renderArticleForm(w http.ResponseWriter, r *http.Request, a *models.Article, isNew bool, flashes []render.Flash) {
	action := "/admin/articles/new"
	if !isNew {
		action = "/admin/articles/" + a.ID.String()
	}

	h.renderer.Admin(w, r, "article_form", &render.PageData{
		Title:   "Artykuł",
		Section: "articles",
		Flashes: flashes,
		Data: map[string]any{
			"Article": a,
			"IsNew":   isNew,
			"Action":  action,
		},
	})
}

// articleFromForm builds an Article from submitted form values. An empty
// slug is derived from the title.
func articleFromForm(r *http.Request) *models.Article {
	a := &models.Article{
		Title:           strings.TrimSpace(r.FormValue("title")),
		Slug:            strings.TrimSpace(r.FormValue("slug")),
		Body:            r.FormValue("body"),
		Excerpt:         optionalField(r.FormValue("excerpt")),
		MetaDescription: optionalField(r.FormValue("meta_description")),
		Status:          models.ArticleStatus(r.FormValue("status")),
	}

	if a.Status != models.ArticleStatusPublished {
		a.Status = models.ArticleStatusDraft
	}
	if a.Slug == "" {
		a.Slug = slug.Generate(a.Title)
	} else {
		a.Slug = slug.Generate(a.Slug)
	}
	return a
}

// ArticleCreate handles the new-article form submission.
func (h *Admin) ArticleCreate(w http.ResponseWriter, r *http.Request) {
	a := articleFromForm(r)

	if msg := validateArticle(a.Title, a.Slug, a.Body); msg != "" {
		h.renderArticleForm(w, r, a, true, []render.Flash{{Type: "error", Message: msg}})
		return
	}

	if _, err := h.articleStore.Create(a); err != nil {
		slog.Error("create article failed", "error", err)
		h.renderArticleForm(w, r, a, true, []render.Flash{{Type: "error", Message: "Nie udało się zapisać artykułu (czy slug jest unikalny?)."}})
		return
	}

	h.pageCache.InvalidateAll(r.Context())
	http.Redirect(w, r, "/admin/articles", http.StatusSeeOther)
}

// ArticleUpdate handles the edit form submission.
func (h *Admin) ArticleUpdate(w http.ResponseWriter, r *http.Request) {
	existing, ok := h.findArticle(w, r)
	if !ok {
		return
	}

	a := articleFromForm(r)
	a.ID = existing.ID
	a.PublishedAt = existing.PublishedAt

	if msg := validateArticle(a.Title, a.Slug, a.Body); msg != "" {
		h.renderArticleForm(w, r, a, false, []render.Flash{{Type: "error", Message: msg}})
		return
	}

	if err := h.articleStore.Update(a); err != nil {
		slog.Error("update article failed", "error", err, "id", a.ID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.pageCache.InvalidateAll(r.Context())
	http.Redirect(w, r, "/admin/articles", http.StatusSeeOther)
}

// ArticleDelete removes an article.
func (h *Admin) ArticleDelete(w http.ResponseWriter, r *http.Request) {
	article, ok := h.findArticle(w, r)
	if !ok {
		return
	}

	if err := h.articleStore.Delete(article.ID); err != nil {
		slog.Error("delete article failed", "error", err, "id", article.ID)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.pageCache.InvalidateAll(r.Context())
	http.Redirect(w, r, "/admin/articles", http.StatusSeeOther)
}

// findArticle resolves the {id} URL parameter for article handlers.
func (h *Admin) findArticle(w http.ResponseWriter, r *http.Request) (*models.Article, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return nil, false
	}

	article, err := h.articleStore.FindByID(id)
	if err != nil {
		slog.Error("find article failed", "error", err, "id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return nil, false
	}
	if article == nil {
		http.NotFound(w, r)
		return nil, false
	}
	return article, true
}
