package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/foxhands/generationTextSerega/types"
)

// DefaultCacheTTL keeps generated articles around for a day; the same
// request within that window is answered without calling the model.
const DefaultCacheTTL = 24 * time.Hour

// ResultCache stores generated articles in Redis keyed by request hash.
type ResultCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResultCacheFromEnv returns a cache when REDIS_ADDR is configured,
// otherwise nil (caching disabled). Optional: REDIS_PASSWORD, REDIS_DB
// is always 0, CACHE_TTL as a Go duration string.
func NewResultCacheFromEnv() *ResultCache {
	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil
	}

	ttl := DefaultCacheTTL
	if raw := strings.TrimSpace(os.Getenv("CACHE_TTL")); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			ttl = d
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
	return &ResultCache{client: client, ttl: ttl}
}

// NewResultCache wraps an existing Redis client.
func NewResultCache(client *redis.Client, ttl time.Duration) *ResultCache {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &ResultCache{client: client, ttl: ttl}
}

func cacheKey(req types.GenerationRequest) string {
	return "article:" + req.RequestKey()
}

// Get returns the cached article for the request, or (nil, nil) on a
// miss. Decode failures count as misses so a bad entry never blocks
// generation.
func (c *ResultCache) Get(ctx context.Context, req types.GenerationRequest) (*types.GeneratedArticle, error) {
	raw, err := c.client.Get(ctx, cacheKey(req)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache read failed: %w", err)
	}

	var article types.GeneratedArticle
	if err := json.Unmarshal(raw, &article); err != nil {
		return nil, nil
	}
	return &article, nil
}

// Put stores the generated article under the request hash.
func (c *ResultCache) Put(ctx context.Context, req types.GenerationRequest, article *types.GeneratedArticle) error {
	raw, err := json.Marshal(article)
	if err != nil {
		return fmt.Errorf("cache encode failed: %w", err)
	}
	if err := c.client.Set(ctx, cacheKey(req), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache write failed: %w", err)
	}
	return nil
}
