// Copyright (c) 2026 Geodex. All rights reserved.

package metadata

import (
	stdctx "context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/geodexhq/geodex/internal/platform/constants"
	"github.com/geodexhq/geodex/pkg/pagination"
)

// # Redis Read Cache

// RedisCache is the Redis-backed implementation of [Cache].
//
// Entries are JSON blobs keyed per scope, so an admin never serves a cached
// user-scoped page and vice versa. Every failure degrades to a miss; the
// cache is an accelerator, never a dependency.
type RedisCache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewRedisCache constructs a catalog read cache on an existing client.
func NewRedisCache(client *redis.Client, logger *slog.Logger) *RedisCache {
	return &RedisCache{
		client: client,
		logger: logger.With(slog.String("component", "catalog_cache")),
	}
}

// GetRecord returns a cached aggregate, or ok=false on a miss.
func (cache *RedisCache) GetRecord(context stdctx.Context, scope Scope, id string) (*Metadata, bool) {
	payload, err := cache.client.Get(context, cache.recordKey(scope, id)).Bytes()
	if err != nil {
		if err != redis.Nil {
			cache.logger.Warn("cache_get_failed", slog.String("error", err.Error()))
		}
		return nil, false
	}

	record := &Metadata{}
	if err := json.Unmarshal(payload, record); err != nil {
		return nil, false
	}
	return record, true
}

// SetRecord stores an aggregate under the scope it was fetched with.
func (cache *RedisCache) SetRecord(context stdctx.Context, scope Scope, record *Metadata) {
	payload, err := json.Marshal(record)
	if err != nil {
		return
	}
	if err := cache.client.Set(context, cache.recordKey(scope, record.ID), payload, constants.CatalogCacheTTL).Err(); err != nil {
		cache.logger.Warn("cache_set_failed", slog.String("error", err.Error()))
	}
}

// GetPage returns a cached listing page, or ok=false on a miss.
func (cache *RedisCache) GetPage(context stdctx.Context, scope Scope, filter Filter, params pagination.Params) (*Page, bool) {
	payload, err := cache.client.Get(context, cache.pageKey(scope, filter, params)).Bytes()
	if err != nil {
		if err != redis.Nil {
			cache.logger.Warn("cache_get_failed", slog.String("error", err.Error()))
		}
		return nil, false
	}

	page := &Page{}
	if err := json.Unmarshal(payload, page); err != nil {
		return nil, false
	}
	return page, true
}

// SetPage stores a listing page under the scope it was fetched with.
func (cache *RedisCache) SetPage(context stdctx.Context, scope Scope, filter Filter, params pagination.Params, page *Page) {
	payload, err := json.Marshal(page)
	if err != nil {
		return
	}
	if err := cache.client.Set(context, cache.pageKey(scope, filter, params), payload, constants.CatalogCacheTTL).Err(); err != nil {
		cache.logger.Warn("cache_set_failed", slog.String("error", err.Error()))
	}
}

// Invalidate drops every cached catalog entry via a cursor scan. Coarse on
// purpose: writes are rare next to reads, and a full flush can never serve
// stale data.
func (cache *RedisCache) Invalidate(context stdctx.Context) {
	var cursor uint64
	pattern := constants.RedisPrefixCatalogCache + "*"

	for {
		keys, next, err := cache.client.Scan(context, cursor, pattern, 100).Result()
		if err != nil {
			cache.logger.Warn("cache_invalidate_failed", slog.String("error", err.Error()))
			return
		}
		if len(keys) > 0 {
			if err := cache.client.Del(context, keys...).Err(); err != nil {
				cache.logger.Warn("cache_invalidate_failed", slog.String("error", err.Error()))
				return
			}
		}
		cursor = next
		if cursor == 0 {
			return
		}
	}
}

// # Key Derivation

// scopeKey separates admin-wide entries from per-user ones.
func scopeKey(scope Scope) string {
	if scope.Unrestricted() {
		return "admin"
	}
	return scope.UserID
}

func (cache *RedisCache) recordKey(scope Scope, id string) string {
	return constants.RedisPrefixCatalogCache + "record:" + scopeKey(scope) + ":" + id
}

// pageKey digests the filter and pagination parameters so every distinct
// query combination caches independently.
func (cache *RedisCache) pageKey(scope Scope, filter Filter, params pagination.Params) string {
	fingerprint, _ := json.Marshal(struct {
		Filter Filter            `json:"filter"`
		Params pagination.Params `json:"params"`
	}{filter, params})

	digest := sha256.Sum256(fingerprint)
	return constants.RedisPrefixCatalogCache + "page:" + scopeKey(scope) + ":" + hex.EncodeToString(digest[:16])
}
