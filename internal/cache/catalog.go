// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// catalog.go provides a Valkey-backed cache of the full prompt catalog.
// Public listing pages filter and paginate the catalog in memory, so they
// read the whole list on every request; the cache keeps that off the
// database. Invalidation contract: every prompt write (create, update,
// delete, category assignment) must call Invalidate.
package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"promptoteka/internal/models"
)

const (
	// catalogKey is the Valkey key holding the serialized prompt list.
	catalogKey = "catalog:prompts"

	// DefaultCatalogTTL bounds staleness if an invalidation is ever missed.
	DefaultCatalogTTL = 10 * time.Minute
)

// CatalogCache caches the full prompt list as JSON in Valkey.
type CatalogCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewCatalogCache creates a catalog cache backed by the given Valkey client.
func NewCatalogCache(client *redis.Client, ttl time.Duration) *CatalogCache {
	if ttl == 0 {
		ttl = DefaultCatalogTTL
	}
	return &CatalogCache{client: client, ttl: ttl}
}

// Get returns the cached prompt list, or (nil, false) on miss. Decode
// failures count as misses so a stale payload from an older schema never
// breaks a request.
func (cc *CatalogCache) Get(ctx context.Context) ([]models.Prompt, bool) {
	payload, err := cc.client.Get(ctx, catalogKey).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("catalog cache get error", "error", err)
		return nil, false
	}

	var prompts []models.Prompt
	if err := json.Unmarshal(payload, &prompts); err != nil {
		slog.Warn("catalog cache decode error", "error", err)
		return nil, false
	}
	return prompts, true
}

// Set stores the prompt list with the configured TTL. Failures are logged
// and swallowed; the cache is an optimization, never a source of truth.
func (cc *CatalogCache) Set(ctx context.Context, prompts []models.Prompt) {
	payload, err := json.Marshal(prompts)
	if err != nil {
		slog.Warn("catalog cache encode error", "error", err)
		return
	}
	if err := cc.client.Set(ctx, catalogKey, payload, cc.ttl).Err(); err != nil {
		slog.Warn("catalog cache set error", "error", err)
	}
}

// Invalidate drops the cached catalog. Must be called after every prompt
// write so the next read repopulates from the database.
func (cc *CatalogCache) Invalidate(ctx context.Context) {
	if err := cc.client.Del(ctx, catalogKey).Err(); err != nil {
		slog.Warn("catalog cache invalidate error", "error", err)
	}
	slog.Debug("catalog cache invalidated")
}
