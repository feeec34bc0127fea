package render

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"promptoteka/internal/models"
	"promptoteka/internal/taxonomy"
)

func TestNewParsesAllTemplates(t *testing.T) {
	r, err := New(true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, name := range []string{"dashboard", "prompts", "prompt_form", "prompt_import", "articles", "article_form", "login", "2fa_setup", "2fa_verify"} {
		if _, ok := r.admin[name]; !ok {
			t.Errorf("admin template %q not parsed", name)
		}
	}
	for _, name := range []string{"home", "prompt", "blog", "article", "kontakt"} {
		if _, ok := r.public[name]; !ok {
			t.Errorf("public template %q not parsed", name)
		}
	}
}

func TestPublicRendersFullPage(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()

	rn.Public(rr, req, "home", &PageData{
		Title: "Katalog",
		Data: map[string]any{
			"Heading":        "Biblioteka Promptów",
			"Query":          "",
			"Categories":     taxonomy.Categories(),
			"ActiveCategory": taxonomy.Category(""),
			"Prompts":        []models.Prompt{},
			"TotalPages":     1,
			"CurrentPage":    1,
			"PageNumbers":    nil,
			"PageBaseURL":    "/?",
		},
	})

	body := rr.Body.String()
	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d", rr.Code)
	}
	for _, want := range []string{"<!DOCTYPE html>", "Biblioteka Promptów", "Marketing i sprzedaż", "Inne"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestAdminHTMXPartial(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	data := &PageData{
		Title:   "Pulpit",
		Section: "dashboard",
		Data: map[string]any{
			"PromptCount":        3,
			"UncategorizedCount": 0,
			"ArticleCount":       1,
		},
	}

	// Full page load includes the layout.
	fullReq := httptest.NewRequest(http.MethodGet, "/admin", nil)
	fullRR := httptest.NewRecorder()
	rn.Admin(fullRR, fullReq, "dashboard", data)
	if !strings.Contains(fullRR.Body.String(), "<!DOCTYPE html>") {
		t.Error("full page should include the layout")
	}

	// HTMX request gets only the content fragment.
	hxReq := httptest.NewRequest(http.MethodGet, "/admin", nil)
	hxReq.Header.Set("HX-Request", "true")
	hxRR := httptest.NewRecorder()
	rn.Admin(hxRR, hxReq, "dashboard", data)
	body := hxRR.Body.String()
	if strings.Contains(body, "<!DOCTYPE html>") {
		t.Error("HTMX partial should not include the layout")
	}
	if !strings.Contains(body, "Pulpit") {
		t.Error("HTMX partial should include the content block")
	}
}

func TestAdminUnknownTemplate(t *testing.T) {
	rn, err := New(true)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	rr := httptest.NewRecorder()
	rn.Admin(rr, req, "does-not-exist", &PageData{})

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rr.Code)
	}
}
