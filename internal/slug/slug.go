// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package slug provides URL-friendly slug generation from arbitrary strings.
// Polish diacritics are transliterated to their ASCII base letters so that
// category names and article titles round-trip through URLs.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// polish transliterates the Polish letters up front. ł/Ł has no NFD
// decomposition, so mark stripping alone would drop it entirely.
var polish = strings.NewReplacer(
	"ą", "a", "ć", "c", "ę", "e", "ł", "l", "ń", "n",
	"ó", "o", "ś", "s", "ź", "z", "ż", "z",
)

// stripMarks removes combining diacritical marks after NFD decomposition,
// turning e.g. "é" into "e".
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// nonAlphanumeric matches every maximal run of characters outside [a-z0-9].
var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Generate creates a URL-friendly slug from the given string.
// Example: "Biznes i zarządzanie" → "biznes-i-zarzadzanie"
func Generate(s string) string {
	result := strings.ToLower(strings.TrimSpace(s))
	result = polish.Replace(result)
	if stripped, _, err := transform.String(stripMarks, result); err == nil {
		result = stripped
	}
	result = nonAlphanumeric.ReplaceAllString(result, "-")
	return strings.Trim(result, "-")
}
