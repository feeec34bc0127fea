package slug

import "testing"

// TestGenerate exercises the slug generator with typical titles, Polish
// diacritics, punctuation, and boundary conditions.
func TestGenerate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// --- Normal titles ---
		{
			name:  "simple two words",
			input: "Hello World",
			want:  "hello-world",
		},
		{
			name:  "title with year",
			input: "Hello World 2026",
			want:  "hello-world-2026",
		},
		{
			name:  "already lowercase",
			input: "already lowercase",
			want:  "already-lowercase",
		},
		{
			name:  "single word",
			input: "GoLang",
			want:  "golang",
		},

		// --- Polish diacritics ---
		{
			name:  "category name with diacritics",
			input: "Biznes i zarządzanie",
			want:  "biznes-i-zarzadzanie",
		},
		{
			name:  "sales category",
			input: "Marketing i sprzedaż",
			want:  "marketing-i-sprzedaz",
		},
		{
			name:  "l with stroke",
			input: "Całość łącznie",
			want:  "calosc-lacznie",
		},
		{
			name:  "every polish letter",
			input: "ąćęłńóśźż",
			want:  "acelnoszz",
		},
		{
			name:  "uppercase diacritics",
			input: "ŚWIĘTA ŁĄKA",
			want:  "swieta-laka",
		},

		// --- Other accented characters ---
		{
			name:  "french accents stripped",
			input: "Les misérables à la carte",
			want:  "les-miserables-a-la-carte",
		},
		{
			name:  "german umlauts stripped",
			input: "Über die Brücke",
			want:  "uber-die-brucke",
		},

		// --- Special characters ---
		{
			name:  "punctuation marks",
			input: "Hello, World! How's it going?",
			want:  "hello-world-how-s-it-going",
		},
		{
			name:  "ampersand and at sign",
			input: "Rock & Roll @ the Arena",
			want:  "rock-roll-the-arena",
		},
		{
			name:  "hash and dollar",
			input: "Issue #42 costs $100",
			want:  "issue-42-costs-100",
		},

		// --- Whitespace and hyphen runs ---
		{
			name:  "leading and trailing spaces",
			input: "  hello world  ",
			want:  "hello-world",
		},
		{
			name:  "multiple inner spaces",
			input: "hello    world",
			want:  "hello-world",
		},
		{
			name:  "existing hyphens preserved",
			input: "pre-existing-slug",
			want:  "pre-existing-slug",
		},
		{
			name:  "hyphen runs collapsed",
			input: "a -- b --- c",
			want:  "a-b-c",
		},

		// --- Edge cases ---
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only punctuation",
			input: "???!!!",
			want:  "",
		},
		{
			name:  "only whitespace",
			input: "   ",
			want:  "",
		},
		{
			name:  "only numbers",
			input: "12345",
			want:  "12345",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Generate(tt.input); got != tt.want {
				t.Errorf("Generate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

// TestGenerateIdempotent verifies that slugging a slug changes nothing.
func TestGenerateIdempotent(t *testing.T) {
	inputs := []string{"Biznes i zarządzanie", "Hello, World!", "Grafika i design"}
	for _, in := range inputs {
		once := Generate(in)
		if twice := Generate(once); twice != once {
			t.Errorf("Generate not idempotent: %q → %q → %q", in, once, twice)
		}
	}
}
