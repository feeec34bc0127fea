// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package taxonomy

import "strings"

// Classify maps a prompt's free-text tags to exactly one taxonomy category.
//
// Every tag is lowercased and trimmed before matching. Categories are tried
// in declaration order and the first match wins; there is no scoring. A
// category matches when any of its keyword stems contains a normalized tag
// or is contained by one — the bidirectional containment deliberately lets
// plural and inflected forms match in both directions.
//
// Classify is total: any input, including an empty or all-blank tag list,
// resolves to a taxonomy member, falling back to CategoryOther.
func Classify(tags []string) Category {
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		t := strings.ToLower(strings.TrimSpace(tag))
		// An empty string is a substring of every keyword and would
		// always match the first category, so blank tags are skipped.
		if t == "" {
			continue
		}
		normalized = append(normalized, t)
	}
	if len(normalized) == 0 {
		return CategoryOther
	}

	for _, c := range categories {
		if c == CategoryOther {
			continue
		}
		for _, stem := range keywords[c] {
			for _, tag := range normalized {
				if strings.Contains(tag, stem) || strings.Contains(stem, tag) {
					return c
				}
			}
		}
	}
	return CategoryOther
}
