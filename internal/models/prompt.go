// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"

	"promptoteka/internal/taxonomy"
)

// PromptKind distinguishes what a prompt template produces.
type PromptKind string

const (
	PromptKindText  PromptKind = "text"
	PromptKindImage PromptKind = "image"
	PromptKindVideo PromptKind = "video"
)

// MaxPromptImages is the maximum number of example images a prompt may carry.
const MaxPromptImages = 4

// Prompt is a single entry of the prompt library. The source text is usually
// English (imported from a social-media post); the PL fields hold the Polish
// translation produced by the enrichment service.
type Prompt struct {
	ID        uuid.UUID  `json:"id"`
	Title     string     `json:"title"`
	TitlePL   *string    `json:"title_pl,omitempty"`
	Body      string     `json:"body"`
	BodyPL    *string    `json:"body_pl,omitempty"`
	Intro     *string    `json:"intro,omitempty"`
	Kind      PromptKind `json:"kind"`
	Tags      []string   `json:"tags"`

	// Category is assigned lazily by the classifier and persisted back.
	// When set, it is always a member of the fixed taxonomy.
	Category *taxonomy.Category `json:"category,omitempty"`

	AuthorName      string  `json:"author_name"`
	AuthorHandle    *string `json:"author_handle,omitempty"`
	AuthorAvatarURL *string `json:"author_avatar_url,omitempty"`

	// ImageURLs holds up to MaxPromptImages example images; only meaningful
	// when Kind is PromptKindImage.
	ImageURLs []string `json:"image_urls,omitempty"`

	// SourceURL links back to the imported social-media post, if any.
	SourceURL *string `json:"source_url,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DisplayTitle returns the Polish title when a translation exists,
// falling back to the source title.
func (p *Prompt) DisplayTitle() string {
	if p.TitlePL != nil && *p.TitlePL != "" {
		return *p.TitlePL
	}
	return p.Title
}

// DisplayBody returns the Polish body when a translation exists,
// falling back to the source body.
func (p *Prompt) DisplayBody() string {
	if p.BodyPL != nil && *p.BodyPL != "" {
		return *p.BodyPL
	}
	return p.Body
}

// HasCategory reports whether the prompt has been classified yet.
func (p *Prompt) HasCategory() bool {
	return p.Category != nil
}

// CategoryName returns the category display name, or "" if unclassified.
func (p *Prompt) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return string(*p.Category)
}

// CategorySlug returns the category's URL slug, or "" if unclassified.
func (p *Prompt) CategorySlug() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Slug()
}
