// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"promptoteka/internal/models"
)

// ArticleStore handles all blog article database operations.
type ArticleStore struct {
	db *sql.DB
}

// NewArticleStore creates a new ArticleStore with the given database connection.
func NewArticleStore(db *sql.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

const articleColumns = `id, title, slug, body, excerpt, meta_description, status,
	       published_at, created_at, updated_at`

func scanArticle(row interface{ Scan(...any) error }) (*models.Article, error) {
	a := &models.Article{}
	err := row.Scan(
		&a.ID, &a.Title, &a.Slug, &a.Body, &a.Excerpt, &a.MetaDescription,
		&a.Status, &a.PublishedAt, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// List returns all articles ordered by creation date descending. Used by
// the admin panel, so drafts are included.
func (s *ArticleStore) List() ([]models.Article, error) {
	rows, err := s.db.Query(`
		SELECT ` + articleColumns + `
		FROM articles
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var items []models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

// ListPublished returns published articles ordered by publication date
// descending. Used by the public blog and the RSS feed.
func (s *ArticleStore) ListPublished() ([]models.Article, error) {
	rows, err := s.db.Query(`
		SELECT ` + articleColumns + `
		FROM articles
		WHERE status = 'published'
		ORDER BY published_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list published articles: %w", err)
	}
	defer rows.Close()

	var items []models.Article
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		items = append(items, *a)
	}
	return items, rows.Err()
}

// FindByID retrieves an article by its UUID. Returns nil if not found.
func (s *ArticleStore) FindByID(id uuid.UUID) (*models.Article, error) {
	a, err := scanArticle(s.db.QueryRow(`
		SELECT `+articleColumns+`
		FROM articles WHERE id = $1
	`, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find article by id: %w", err)
	}
	return a, nil
}

// FindBySlug retrieves a published article by its slug. Used for public
// blog rendering, so drafts are not visible. Returns nil if not found.
func (s *ArticleStore) FindBySlug(slug string) (*models.Article, error) {
	a, err := scanArticle(s.db.QueryRow(`
		SELECT `+articleColumns+`
		FROM articles WHERE slug = $1 AND status = 'published'
	`, slug))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find article by slug: %w", err)
	}
	return a, nil
}

// Create inserts a new article and returns it with the generated ID.
func (s *ArticleStore) Create(a *models.Article) (*models.Article, error) {
	// If publishing, set the published_at timestamp.
	if a.Status == models.ArticleStatusPublished && a.PublishedAt == nil {
		now := time.Now()
		a.PublishedAt = &now
	}

	result, err := scanArticle(s.db.QueryRow(`
		INSERT INTO articles (title, slug, body, excerpt, meta_description, status, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+articleColumns+`
	`, a.Title, a.Slug, a.Body, a.Excerpt, a.MetaDescription, a.Status, a.PublishedAt))
	if err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return result, nil
}

// Update modifies an existing article.
func (s *ArticleStore) Update(a *models.Article) error {
	// If transitioning to published and no published_at set, set it now.
	if a.Status == models.ArticleStatusPublished && a.PublishedAt == nil {
		now := time.Now()
		a.PublishedAt = &now
	}

	_, err := s.db.Exec(`
		UPDATE articles SET
			title = $1, slug = $2, body = $3, excerpt = $4,
			meta_description = $5, status = $6, published_at = $7,
			updated_at = NOW()
		WHERE id = $8
	`, a.Title, a.Slug, a.Body, a.Excerpt, a.MetaDescription, a.Status, a.PublishedAt, a.ID)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}

// Delete removes an article by ID.
func (s *ArticleStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}
