package handlers

import (
	"strings"
	"unicode/utf8"
)

// Validation limits for prompt and article form fields.
const (
	maxTitleLen    = 300
	maxSlugLen     = 300
	maxBodyLen     = 100_000
	maxIntroLen    = 1_000
	maxExcerptLen  = 1_000
	maxMetaDescLen = 500
	maxTagsLen     = 1_000
	maxAuthorLen   = 200
)

// validatePrompt checks prompt form inputs and returns the first error found.
func validatePrompt(title, body, tags string) string {
	if strings.TrimSpace(title) == "" {
		return "Tytuł jest wymagany."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Tytuł jest zbyt długi (maks. 300 znaków)."
	}
	if strings.TrimSpace(body) == "" {
		return "Treść promptu jest wymagana."
	}
	if utf8.RuneCountInString(body) > maxBodyLen {
		return "Treść jest zbyt długa (maks. 100 000 znaków)."
	}
	if utf8.RuneCountInString(tags) > maxTagsLen {
		return "Lista tagów jest zbyt długa (maks. 1 000 znaków)."
	}
	return ""
}

// validateArticle checks article form inputs and returns the first error found.
func validateArticle(title, slug, body string) string {
	if strings.TrimSpace(title) == "" {
		return "Tytuł jest wymagany."
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return "Tytuł jest zbyt długi (maks. 300 znaków)."
	}
	if utf8.RuneCountInString(slug) > maxSlugLen {
		return "Slug jest zbyt długi (maks. 300 znaków)."
	}
	if strings.TrimSpace(body) == "" {
		return "Treść artykułu jest wymagana."
	}
	if utf8.RuneCountInString(body) > maxBodyLen {
		return "Treść jest zbyt długa (maks. 100 000 znaków)."
	}
	return ""
}

// parseTags splits a comma-separated tag string into cleaned lowercase tags.
func parseTags(raw string) []string {
	var tags []string
	for _, part := range strings.Split(raw, ",") {
		tag := strings.ToLower(strings.TrimSpace(part))
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

// optionalField turns a trimmed form value into a nullable column value.
func optionalField(raw string) *string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	return &s
}
