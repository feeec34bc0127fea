package catalog

import (
	"testing"

	"promptoteka/internal/models"
	"promptoteka/internal/taxonomy"
)

// promptWithTags builds a minimal prompt for filter tests.
func promptWithTags(title string, tags ...string) models.Prompt {
	return models.Prompt{Title: title, Tags: tags}
}

func titles(items []models.Prompt) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.Title
	}
	return out
}

func TestFilter(t *testing.T) {
	items := []models.Prompt{
		promptWithTags("a", "marketing", "seo"),
		promptWithTags("b", "python", "code"),
		promptWithTags("c"), // untagged
		promptWithTags("d", "Content-Marketing"),
		promptWithTags("e", "grafika"),
	}

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "empty query is identity",
			query: "",
			want:  []string{"a", "b", "c", "d", "e"},
		},
		{
			name:  "whitespace query is identity",
			query: "   \t",
			want:  []string{"a", "b", "c", "d", "e"},
		},
		{
			name:  "substring match",
			query: "market",
			want:  []string{"a", "d"},
		},
		{
			name:  "case-insensitive query",
			query: "MARKETING",
			want:  []string{"a", "d"},
		},
		{
			name:  "case-insensitive tag",
			query: "content",
			want:  []string{"d"},
		},
		{
			name:  "exact tag",
			query: "python",
			want:  []string{"b"},
		},
		{
			name:  "query trimmed before matching",
			query: "  seo  ",
			want:  []string{"a"},
		},
		{
			name:  "no matches",
			query: "xyz",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := titles(Filter(items, tt.query))
			if len(got) != len(tt.want) {
				t.Fatalf("Filter(%q) returned %v, want %v", tt.query, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Filter(%q)[%d] = %q, want %q (order must be preserved)", tt.query, i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestFilterExcludesUntagged pins that untagged items never match a
// non-empty query, even one that is a substring of the title.
func TestFilterExcludesUntagged(t *testing.T) {
	items := []models.Prompt{promptWithTags("untagged prompt")}
	if got := Filter(items, "prompt"); len(got) != 0 {
		t.Errorf("untagged item matched query: %v", titles(got))
	}
	if got := Filter(items, ""); len(got) != 1 {
		t.Errorf("empty query should return untagged item, got %v", titles(got))
	}
}

func TestFilterByCategory(t *testing.T) {
	mk := func(title string, c *taxonomy.Category, tags ...string) models.Prompt {
		p := promptWithTags(title, tags...)
		p.Category = c
		return p
	}
	marketing := taxonomy.CategoryMarketing
	other := taxonomy.CategoryOther

	items := []models.Prompt{
		mk("a", &marketing),
		mk("b", nil),
		mk("c", &other),
		mk("d", &marketing),
	}

	if got := titles(FilterByCategory(items, taxonomy.CategoryMarketing)); len(got) != 2 || got[0] != "a" || got[1] != "d" {
		t.Errorf("marketing filter = %v, want [a d]", got)
	}

	// Unclassified prompts surface under the catch-all.
	if got := titles(FilterByCategory(items, taxonomy.CategoryOther)); len(got) != 2 || got[0] != "b" || got[1] != "c" {
		t.Errorf("catch-all filter = %v, want [b c]", got)
	}

	if got := FilterByCategory(items, taxonomy.CategoryDesign); len(got) != 0 {
		t.Errorf("design filter = %v, want empty", titles(got))
	}
}

// TestFilterThenPaginate is the end-to-end scenario: search narrows the
// catalog, pagination serves it on a single page.
func TestFilterThenPaginate(t *testing.T) {
	var items []models.Prompt
	for i := 0; i < 15; i++ {
		items = append(items, promptWithTags("plain", "biznes"))
	}
	for i := 0; i < 5; i++ {
		items = append(items, promptWithTags("ai-tagged", "ai"))
	}

	matched := Filter(items, "ai")
	page, totalPages, current := Paginate(matched, 16, 1)

	if len(page) != 5 {
		t.Errorf("page has %d items, want 5", len(page))
	}
	if totalPages != 1 {
		t.Errorf("totalPages = %d, want 1", totalPages)
	}
	if current != 1 {
		t.Errorf("currentPage = %d, want 1", current)
	}
	for _, p := range page {
		if p.Title != "ai-tagged" {
			t.Errorf("unexpected item %q on page", p.Title)
		}
	}
}
