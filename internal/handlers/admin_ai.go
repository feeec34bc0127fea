// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"promptoteka/internal/cache"
	"promptoteka/internal/enrich"
	"promptoteka/internal/models"
	"promptoteka/internal/render"
	"promptoteka/internal/storage"
	"promptoteka/internal/store"
	"promptoteka/internal/twitter"
)

const (
	// maxImportTitleLen caps titles derived from imported post text.
	maxImportTitleLen = 80

	// maxImportImageBytes caps how much of a remote image gets mirrored.
	maxImportImageBytes = 10 << 20
)

// AdminAI groups the AI-assisted admin endpoints: field enrichment for
// the prompt form and the social-media import flow.
type AdminAI struct {
	renderer     *render.Renderer
	promptStore  *store.PromptStore
	enricher     *enrich.Service
	tweets       *twitter.Client
	images       *storage.Client // may be nil if S3 is not configured
	catalogCache *cache.CatalogCache
	pageCache    *cache.PageCache
}

// NewAdminAI creates a new AdminAI handler group.
func NewAdminAI(renderer *render.Renderer, promptStore *store.PromptStore, enricher *enrich.Service, tweets *twitter.Client, images *storage.Client, catalogCache *cache.CatalogCache, pageCache *cache.PageCache) *AdminAI {
	return &AdminAI{
		renderer:     renderer,
		promptStore:  promptStore,
		enricher:     enricher,
		tweets:       tweets,
		images:       images,
		catalogCache: catalogCache,
		pageCache:    pageCache,
	}
}

// Translate returns the Polish translation of the submitted prompt body.
// The response is plain text; the form swaps it into the translation field.
func (h *AdminAI) Translate(w http.ResponseWriter, r *http.Request) {
	body := r.FormValue("body")
	if strings.TrimSpace(body) == "" {
		http.Error(w, "Brak treści do przetłumaczenia.", http.StatusBadRequest)
		return
	}

	translated, err := h.enricher.Translate(r.Context(), body)
	if err != nil {
		h.enrichError(w, "translate", err)
		return
	}
	writePlainText(w, translated)
}

// Tags returns AI-suggested tags for the submitted prompt body as a
// comma-separated list.
func (h *AdminAI) Tags(w http.ResponseWriter, r *http.Request) {
	body := r.FormValue("body")
	if strings.TrimSpace(body) == "" {
		http.Error(w, "Brak treści do oznaczenia tagami.", http.StatusBadRequest)
		return
	}

	tags, err := h.enricher.GenerateTags(r.Context(), body)
	if err != nil {
		h.enrichError(w, "tags", err)
		return
	}
	writePlainText(w, strings.Join(tags, ", "))
}

// Intro returns a one-sentence Polish introduction for the submitted
// prompt body.
func (h *AdminAI) Intro(w http.ResponseWriter, r *http.Request) {
	body := r.FormValue("body")
	if strings.TrimSpace(body) == "" {
		http.Error(w, "Brak treści do opisania.", http.StatusBadRequest)
		return
	}

	intro, err := h.enricher.GenerateIntro(r.Context(), body)
	if err != nil {
		h.enrichError(w, "intro", err)
		return
	}
	writePlainText(w, intro)
}

// enrichError maps enrichment failures to responses. An open circuit
// breaker gets 503 with a friendly message; everything else is a 502.
func (h *AdminAI) enrichError(w http.ResponseWriter, op string, err error) {
	if enrich.IsUnavailable(err) {
		slog.Warn("ai enrichment unavailable", "op", op, "error", err)
		http.Error(w, "Asystent AI jest chwilowo niedostępny. Spróbuj ponownie za chwilę.", http.StatusServiceUnavailable)
		return
	}
	slog.Error("ai enrichment failed", "op", op, "error", err)
	http.Error(w, "Generowanie nie powiodło się. Spróbuj ponownie.", http.StatusBadGateway)
}

func writePlainText(w http.ResponseWriter, s string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(s))
}

// PromptImportForm renders the import-from-URL form.
func (h *AdminAI) PromptImportForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.Admin(w, r, "prompt_import", &render.PageData{
		Title:   "Import promptu",
		Section: "prompts",
		Data:    map[string]any{"URL": ""},
	})
}

// PromptImportSubmit fetches a public post, creates a prompt from it and
// redirects to the edit form so the admin can enrich and categorize it.
// Imported prompts start without tags and land in the classification
// backlog.
func (h *AdminAI) PromptImportSubmit(w http.ResponseWriter, r *http.Request) {
	postURL := strings.TrimSpace(r.FormValue("url"))

	fail := func(msg string) {
		h.renderer.Admin(w, r, "prompt_import", &render.PageData{
			Title:   "Import promptu",
			Section: "prompts",
			Flashes: []render.Flash{{Type: "error", Message: msg}},
			Data:    map[string]any{"URL": postURL},
		})
	}

	if postURL == "" {
		fail("Adres posta jest wymagany.")
		return
	}

	tweet, err := h.tweets.FetchByURL(r.Context(), postURL)
	if err != nil {
		slog.Error("tweet import failed", "error", err, "url", postURL)
		fail("Nie udało się pobrać posta. Sprawdź adres i spróbuj ponownie.")
		return
	}

	prompt := promptFromTweet(tweet, postURL)
	prompt.ImageURLs = h.mirrorImages(r.Context(), prompt.ImageURLs)

	created, err := h.promptStore.Create(prompt)
	if err != nil {
		slog.Error("create imported prompt failed", "error", err)
		fail("Nie udało się zapisać promptu.")
		return
	}

	h.catalogCache.Invalidate(r.Context())
	h.pageCache.InvalidateAll(r.Context())

	http.Redirect(w, r, "/admin/prompts/"+created.ID.String(), http.StatusSeeOther)
}

// mirrorImages re-hosts remote post images in our own bucket so prompts
// don't depend on third-party CDN retention. Without configured storage,
// or when a single download fails, the original URL is kept.
func (h *AdminAI) mirrorImages(ctx context.Context, urls []string) []string {
	if h.images == nil || len(urls) == 0 {
		return urls
	}

	mirrored := make([]string, 0, len(urls))
	for _, src := range urls {
		u, err := h.mirrorImage(ctx, src)
		if err != nil {
			slog.Warn("image mirror failed, keeping source url", "error", err, "url", src)
			u = src
		}
		mirrored = append(mirrored, u)
	}
	return mirrored
}

func (h *AdminAI) mirrorImage(ctx context.Context, src string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
	if err != nil {
		return "", err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("fetch image: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImportImageBytes+1))
	if err != nil {
		return "", err
	}
	if len(body) > maxImportImageBytes {
		return "", fmt.Errorf("image exceeds %d bytes", maxImportImageBytes)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(body)
	}

	key := "prompts/" + uuid.NewString() + imageExtension(contentType)
	if err := h.images.Upload(ctx, key, contentType, bytes.NewReader(body), int64(len(body))); err != nil {
		return "", err
	}
	return h.images.FileURL(key), nil
}

// imageExtension maps common image content types to a file extension.
func imageExtension(contentType string) string {
	switch contentType {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}

// promptFromTweet maps a fetched post onto a new prompt.
func promptFromTweet(t *twitter.Tweet, postURL string) *models.Prompt {
	prompt := &models.Prompt{
		Title:      importTitle(t.Text),
		Body:       t.Text,
		Kind:       models.PromptKindText,
		AuthorName: t.User.Name,
		SourceURL:  optionalField(postURL),
	}

	if t.User.ScreenName != "" {
		handle := "@" + t.User.ScreenName
		prompt.AuthorHandle = &handle
	}
	if t.User.ProfileImageURL != "" {
		avatar := t.User.ProfileImageURL
		prompt.AuthorAvatarURL = &avatar
	}

	for _, photo := range t.Photos {
		if len(prompt.ImageURLs) == models.MaxPromptImages {
			break
		}
		prompt.ImageURLs = append(prompt.ImageURLs, photo.URL)
	}
	if len(prompt.ImageURLs) > 0 {
		prompt.Kind = models.PromptKindImage
	}

	return prompt
}

// importTitle derives a short title from post text: the first non-empty
// line, truncated on a rune boundary.
func importTitle(text string) string {
	title := strings.TrimSpace(text)
	for _, line := range strings.Split(title, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			title = line
			break
		}
	}
	if utf8.RuneCountInString(title) > maxImportTitleLen {
		runes := []rune(title)
		title = strings.TrimSpace(string(runes[:maxImportTitleLen])) + "…"
	}
	return title
}
