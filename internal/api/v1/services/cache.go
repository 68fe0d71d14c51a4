package services

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultTranscriptTTL = 24 * time.Hour

// TranscriptCache stores transcripts keyed by provider, model and content
// hash, so re-uploads of the same media skip the provider round trip.
// A nil cache is valid and disables caching.
type TranscriptCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTranscriptCache creates a cache on an existing Redis client.
func NewTranscriptCache(client *redis.Client, ttl time.Duration) *TranscriptCache {
	if ttl <= 0 {
		ttl = defaultTranscriptTTL
	}
	return &TranscriptCache{client: client, ttl: ttl}
}

// NewTranscriptCacheFromEnv builds a cache from C2T_REDIS_ADDR and optional
// C2T_REDIS_PASSWORD / C2T_REDIS_DB / C2T_CACHE_TTL_HOURS. Returns nil when
// no Redis address is configured.
func NewTranscriptCacheFromEnv() *TranscriptCache {
	addr := os.Getenv("C2T_REDIS_ADDR")
	if addr == "" {
		return nil
	}

	db := 0
	if raw := os.Getenv("C2T_REDIS_DB"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			db = parsed
		}
	}

	ttl := defaultTranscriptTTL
	if raw := os.Getenv("C2T_CACHE_TTL_HOURS"); raw != "" {
		if hours, err := strconv.Atoi(raw); err == nil && hours > 0 {
			ttl = time.Duration(hours) * time.Hour
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("C2T_REDIS_PASSWORD"),
		DB:       db,
	})
	return NewTranscriptCache(client, ttl)
}

// Get returns the cached transcript for a key, if present.
func (c *TranscriptCache) Get(ctx context.Context, key string) (string, bool) {
	if c == nil || c.client == nil || key == "" {
		return "", false
	}
	text, err := c.client.Get(ctx, c.prefixed(key)).Result()
	if err != nil {
		return "", false
	}
	return text, true
}

// Set stores the transcript for a key. Failures are silent; the cache is an
// optimization and never gates a response.
func (c *TranscriptCache) Set(ctx context.Context, key string, text string) {
	if c == nil || c.client == nil || key == "" || text == "" {
		return
	}
	c.client.Set(ctx, c.prefixed(key), text, c.ttl)
}

func (c *TranscriptCache) prefixed(key string) string {
	return "transcript:" + key
}
