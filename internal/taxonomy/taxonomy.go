// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package taxonomy defines the fixed prompt category set and the keyword
// tables used to classify prompts from their tags. The taxonomy is declared
// once and never mutated at runtime, so it is safe for concurrent reads.
package taxonomy

import (
	"promptoteka/internal/slug"
)

// Category is one entry of the fixed prompt taxonomy.
type Category string

// The taxonomy in declaration order. Order matters: when a prompt's tags
// match keywords from more than one category, the earliest declared
// category wins.
const (
	CategoryMarketing   Category = "Marketing i sprzedaż"
	CategoryProgramming Category = "Programowanie i technologia"
	CategoryBusiness    Category = "Biznes i zarządzanie"
	CategoryEducation   Category = "Edukacja i nauka"
	CategoryDesign      Category = "Grafika i design"
	CategoryWriting     Category = "Pisanie i treści"
	CategoryCreative    Category = "Rozrywka i kreatywność"
	CategoryOther       Category = "Inne"
)

// categories lists all taxonomy entries in declaration order, the catch-all
// last. Classify iterates this slice, skipping CategoryOther.
var categories = []Category{
	CategoryMarketing,
	CategoryProgramming,
	CategoryBusiness,
	CategoryEducation,
	CategoryDesign,
	CategoryWriting,
	CategoryCreative,
	CategoryOther,
}

// keywords holds the lowercase keyword stems per non-catch-all category.
// Stems are matched by substring containment in both directions, so plural
// and inflected forms of a stem still match.
var keywords = map[Category][]string{
	CategoryMarketing: {
		"marketing", "sprzedaż", "sprzedaz", "reklam", "seo",
		"social media", "kampani", "copywriting", "newsletter", "brand",
	},
	CategoryProgramming: {
		"programowan", "kod", "code", "developer", "software",
		"aplikacj", "python", "javascript", "frontend", "backend", "api",
	},
	CategoryBusiness: {
		"biznes", "business", "firma", "zarządzan", "zarzadzan",
		"strategi", "startup", "finans", "produktywno",
	},
	CategoryEducation: {
		"edukacj", "nauka", "nauczan", "szkoł", "szkol",
		"kurs", "lekcj", "student", "egzamin",
	},
	CategoryDesign: {
		"grafik", "design", "logo", "ilustracj", "obraz",
		"zdjęci", "zdjeci", "photo", "ui", "ux",
	},
	CategoryWriting: {
		"pisani", "tekst", "artykuł", "artykul", "blog",
		"treści", "tresci", "opowiadan", "histori", "scenariusz",
	},
	CategoryCreative: {
		"rozrywk", "kreatywn", "gra", "muzyk", "film",
		"zabaw", "humor", "poezj",
	},
}

// Categories returns the full taxonomy in declaration order, catch-all last.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// Keywords returns the keyword stems for a category. The catch-all and
// unknown categories have none.
func Keywords(c Category) []string {
	stems, ok := keywords[c]
	if !ok {
		return nil
	}
	out := make([]string, len(stems))
	copy(out, stems)
	return out
}

// Valid reports whether c is a member of the fixed taxonomy.
func Valid(c Category) bool {
	for _, known := range categories {
		if c == known {
			return true
		}
	}
	return false
}

// Slug returns the URL-safe route segment for the category.
// Example: "Biznes i zarządzanie" → "biznes-i-zarzadzanie".
func (c Category) Slug() string {
	return slug.Generate(string(c))
}

// FromSlug resolves a route segment back to its taxonomy category.
// Matching is case-insensitive and tolerant of surrounding whitespace; the
// second return value is false when the slug names no category. Since every
// category has a distinct slug, the mapping round-trips for the whole
// taxonomy.
func FromSlug(s string) (Category, bool) {
	normalized := slug.Generate(s)
	if normalized == "" {
		return "", false
	}
	for _, c := range categories {
		if c.Slug() == normalized {
			return c, true
		}
	}
	return "", false
}
