// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package catalog implements the browsing logic of the prompt library:
// tag search, pagination, and batch classification. Everything here is a
// pure function over explicit inputs — no ambient state, safe to call from
// concurrent request handlers.
package catalog

import (
	"strings"

	"promptoteka/internal/models"
	"promptoteka/internal/taxonomy"
)

// Filter returns the order-preserving subsequence of items that have at
// least one tag containing the query as a case-insensitive substring.
//
// An empty or all-whitespace query means "no filter" and returns items
// unchanged. Matching is substring-based, not word-based, so "market"
// matches a "marketing" tag. Untagged items never match a non-empty query.
func Filter(items []models.Prompt, query string) []models.Prompt {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}

	filtered := make([]models.Prompt, 0, len(items))
	for _, item := range items {
		for _, tag := range item.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				filtered = append(filtered, item)
				break
			}
		}
	}
	return filtered
}

// FilterByCategory returns the order-preserving subsequence of items
// assigned to the given category. Unclassified items appear only under the
// catch-all, so every prompt stays reachable while batch classification
// catches up.
func FilterByCategory(items []models.Prompt, c taxonomy.Category) []models.Prompt {
	filtered := make([]models.Prompt, 0, len(items))
	for _, item := range items {
		switch {
		case item.Category != nil && *item.Category == c:
			filtered = append(filtered, item)
		case item.Category == nil && c == taxonomy.CategoryOther:
			filtered = append(filtered, item)
		}
	}
	return filtered
}
