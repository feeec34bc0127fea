// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store provides database access methods for all Promptoteka
// entities. Each store struct wraps a *sql.DB and exposes typed query methods.
package store

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"promptoteka/internal/models"
	"promptoteka/internal/taxonomy"
)

// PromptStore handles all prompt-related database operations.
type PromptStore struct {
	db *sql.DB
}

// NewPromptStore creates a new PromptStore with the given database connection.
func NewPromptStore(db *sql.DB) *PromptStore {
	return &PromptStore{db: db}
}

// joinList serializes a string slice into the comma-joined TEXT
// representation used by the tags and image_urls columns. Elements are
// trimmed; empty elements are dropped.
func joinList(items []string) string {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if s := strings.TrimSpace(item); s != "" {
			cleaned = append(cleaned, s)
		}
	}
	return strings.Join(cleaned, ",")
}

// splitList parses the comma-joined TEXT representation back into a slice.
// Returns nil for an empty column value.
func splitList(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			items = append(items, s)
		}
	}
	if len(items) == 0 {
		return nil
	}
	return items
}

const promptColumns = `id, title, title_pl, body, body_pl, intro, kind, tags, category,
	       author_name, author_handle, author_avatar_url, image_urls, source_url,
	       created_at, updated_at`

// scanPrompt reads one row into a Prompt, decoding the list columns and
// the nullable category.
func scanPrompt(row interface{ Scan(...any) error }) (*models.Prompt, error) {
	p := &models.Prompt{}
	var tags, imageURLs string
	var category sql.NullString

	err := row.Scan(
		&p.ID, &p.Title, &p.TitlePL, &p.Body, &p.BodyPL, &p.Intro, &p.Kind,
		&tags, &category, &p.AuthorName, &p.AuthorHandle, &p.AuthorAvatarURL,
		&imageURLs, &p.SourceURL, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Tags = splitList(tags)
	p.ImageURLs = splitList(imageURLs)
	if category.Valid {
		c := taxonomy.Category(category.String)
		p.Category = &c
	}
	return p, nil
}

// categoryValue converts the nullable category pointer to a driver value.
func categoryValue(c *taxonomy.Category) any {
	if c == nil {
		return nil
	}
	return string(*c)
}

// List returns all prompts ordered by creation date descending (newest first).
func (s *PromptStore) List() ([]models.Prompt, error) {
	rows, err := s.db.Query(`
		SELECT ` + promptColumns + `
		FROM prompts
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list prompts: %w", err)
	}
	defer rows.Close()

	var items []models.Prompt
	for rows.Next() {
		p, err := scanPrompt(rows)
		if err != nil {
			return nil, fmt.Errorf("scan prompt: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// ListUncategorized returns prompts that have no category assigned yet,
// oldest first so classification processes the backlog in order.
func (s *PromptStore) ListUncategorized() ([]models.Prompt, error) {
	rows, err := s.db.Query(`
		SELECT ` + promptColumns + `
		FROM prompts
		WHERE category IS NULL
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list uncategorized prompts: %w", err)
	}
	defer rows.Close()

	var items []models.Prompt
	for rows.Next() {
		p, err := scanPrompt(rows)
		if err != nil {
			return nil, fmt.Errorf("scan prompt: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindByID retrieves a prompt by its UUID. Returns nil if not found.
func (s *PromptStore) FindByID(id uuid.UUID) (*models.Prompt, error) {
	p, err := scanPrompt(s.db.QueryRow(`
		SELECT `+promptColumns+`
		FROM prompts WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find prompt by id: %w", err)
	}
	return p, nil
}

// Create inserts a new prompt and returns it with the generated ID.
func (s *PromptStore) Create(p *models.Prompt) (*models.Prompt, error) {
	result, err := scanPrompt(s.db.QueryRow(`
		INSERT INTO prompts (title, title_pl, body, body_pl, intro, kind, tags, category,
		                     author_name, author_handle, author_avatar_url, image_urls, source_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING `+promptColumns+`
	`, p.Title, p.TitlePL, p.Body, p.BodyPL, p.Intro, p.Kind, joinList(p.Tags),
		categoryValue(p.Category), p.AuthorName, p.AuthorHandle, p.AuthorAvatarURL,
		joinList(p.ImageURLs), p.SourceURL,
	))
	if err != nil {
		return nil, fmt.Errorf("create prompt: %w", err)
	}
	return result, nil
}

// Update modifies an existing prompt.
func (s *PromptStore) Update(p *models.Prompt) error {
	_, err := s.db.Exec(`
		UPDATE prompts SET
			title = $1, title_pl = $2, body = $3, body_pl = $4, intro = $5,
			kind = $6, tags = $7, category = $8, author_name = $9,
			author_handle = $10, author_avatar_url = $11, image_urls = $12,
			source_url = $13, updated_at = NOW()
		WHERE id = $14
	`, p.Title, p.TitlePL, p.Body, p.BodyPL, p.Intro, p.Kind, joinList(p.Tags),
		categoryValue(p.Category), p.AuthorName, p.AuthorHandle, p.AuthorAvatarURL,
		joinList(p.ImageURLs), p.SourceURL, p.ID,
	)
	if err != nil {
		return fmt.Errorf("update prompt: %w", err)
	}
	return nil
}

// UpdateCategory assigns a category to a single prompt. Used by the
// batch classifier so it can persist each assignment individually.
func (s *PromptStore) UpdateCategory(id uuid.UUID, c taxonomy.Category) error {
	_, err := s.db.Exec(`
		UPDATE prompts SET category = $1, updated_at = NOW() WHERE id = $2
	`, string(c), id)
	if err != nil {
		return fmt.Errorf("update prompt category: %w", err)
	}
	return nil
}

// Delete removes a prompt by ID.
func (s *PromptStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM prompts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete prompt: %w", err)
	}
	return nil
}
