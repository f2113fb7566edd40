// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// post.go provides a Redis-backed cache for marshaled post projections.
// Single-post reads hit Redis first; every successful write to a post
// invalidates its entry.
package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	// postKeyPrefix is the Redis key prefix for cached post projections.
	postKeyPrefix = "post:"

	// DefaultPostTTL is how long a post projection stays cached.
	DefaultPostTTL = 5 * time.Minute
)

// PostCache stores marshaled post projections in Redis, keyed by post id.
type PostCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewPostCache creates a post cache backed by the given Redis client.
func NewPostCache(client *redis.Client, ttl time.Duration) *PostCache {
	if ttl == 0 {
		ttl = DefaultPostTTL
	}
	return &PostCache{client: client, ttl: ttl}
}

// Get retrieves a cached projection by post id. The second return value
// reports whether the entry was found.
func (pc *PostCache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := pc.client.Get(ctx, postKeyPrefix+key).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		slog.Warn("post cache get error", "key", key, "error", err)
		return nil, false
	}
	slog.Debug("post cache hit", "key", key)
	return val, true
}

// Set stores a marshaled projection with the configured TTL.
func (pc *PostCache) Set(ctx context.Context, key string, data []byte) {
	if err := pc.client.Set(ctx, postKeyPrefix+key, data, pc.ttl).Err(); err != nil {
		slog.Warn("post cache set error", "key", key, "error", err)
	}
}

// Invalidate removes a single post from the cache.
func (pc *PostCache) Invalidate(ctx context.Context, key string) {
	if err := pc.client.Del(ctx, postKeyPrefix+key).Err(); err != nil {
		slog.Warn("post cache invalidate error", "key", key, "error", err)
	}
	slog.Debug("post cache invalidated", "key", key)
}

// InvalidateAll removes all cached posts by scanning for the prefix.
func (pc *PostCache) InvalidateAll(ctx context.Context) {
	var cursor uint64
	var deleted int
	for {
		keys, nextCursor, err := pc.client.Scan(ctx, cursor, postKeyPrefix+"*", 100).Result()
		if err != nil {
			slog.Warn("post cache scan error", "error", err)
			return
		}
		if len(keys) > 0 {
			if err := pc.client.Del(ctx, keys...).Err(); err != nil {
				slog.Warn("post cache bulk delete error", "error", err)
			}
			deleted += len(keys)
		}
		cursor = nextCursor
		if cursor == 0 {
			break
		}
	}
	if deleted > 0 {
		slog.Info("post cache fully cleared", "deleted", deleted)
	}
}
