// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"promptoteka/internal/render"
)

func newTestRenderer(t *testing.T) *render.Renderer {
	t.Helper()
	renderer, err := render.New(true)
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}
	return renderer
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"", 1},
		{"abc", 1},
		{"0", 1},
		{"-3", 1},
		{"1", 1},
		{"7", 7},
	}

	for _, tt := range tests {
		if got := parsePage(tt.raw); got != tt.want {
			t.Errorf("parsePage(%q) = %d, want %d", tt.raw, got, tt.want)
		}
	}
}

func TestListingBaseURL(t *testing.T) {
	tests := []struct {
		catSlug string
		query   string
		want    string
	}{
		{"", "", "/?"},
		{"marketing-i-sprzedaz", "", "/kategoria/marketing-i-sprzedaz?"},
		{"", "e-mail", "/?q=e-mail&"},
		{"inne", "kod go", "/kategoria/inne?q=kod+go&"},
	}

	for _, tt := range tests {
		if got := listingBaseURL(tt.catSlug, tt.query); got != tt.want {
			t.Errorf("listingBaseURL(%q, %q) = %q, want %q", tt.catSlug, tt.query, got, tt.want)
		}
	}
}

func TestCategoryUnknownSlug(t *testing.T) {
	p := &Public{renderer: newTestRenderer(t)}

	router := chi.NewRouter()
	router.Get("/kategoria/{slug}", p.Category)

	req := httptest.NewRequest(http.MethodGet, "/kategoria/nie-ma-takiej", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestPromptDetailBadID(t *testing.T) {
	p := &Public{renderer: newTestRenderer(t)}

	router := chi.NewRouter()
	router.Get("/prompt/{id}", p.PromptDetail)

	req := httptest.NewRequest(http.MethodGet, "/prompt/not-a-uuid", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestContactSubmitValidation(t *testing.T) {
	tests := []struct {
		name    string
		form    url.Values
		wantMsg string
	}{
		{
			name:    "missing email",
			form:    url.Values{"message": {"Dzień dobry"}},
			wantMsg: "E-mail i wiadomość są wymagane.",
		},
		{
			name:    "missing message",
			form:    url.Values{"email": {"jan@example.com"}},
			wantMsg: "E-mail i wiadomość są wymagane.",
		},
		{
			name:    "invalid email",
			form:    url.Values{"email": {"nie-email"}, "message": {"Dzień dobry"}},
			wantMsg: "Podaj poprawny adres e-mail.",
		},
		{
			name:    "mailer not configured",
			form:    url.Values{"email": {"jan@example.com"}, "message": {"Dzień dobry"}},
			wantMsg: "Wysyłka wiadomości jest chwilowo niedostępna.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &Public{renderer: newTestRenderer(t)}

			req := httptest.NewRequest(http.MethodPost, "/kontakt", strings.NewReader(tt.form.Encode()))
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
			rec := httptest.NewRecorder()
			p.ContactSubmit(rec, req)

			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
			}
			if !strings.Contains(rec.Body.String(), tt.wantMsg) {
				t.Errorf("body does not contain %q", tt.wantMsg)
			}
		})
	}
}

func TestHealth(t *testing.T) {
	p := &Public{}

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	p.Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if got := strings.TrimSpace(rec.Body.String()); got != "ok" {
		t.Errorf("body = %q, want %q", got, "ok")
	}
}
