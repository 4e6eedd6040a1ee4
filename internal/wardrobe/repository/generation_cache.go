package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/meshfit/meshfit-backend/internal/wardrobe/engine"
)

const (
	revisionKeyPrefix = "wardrobe:rev:" // Wardrobe revision counter: wardrobe:rev:{owner_id}
	resultKeyPrefix   = "wardrobe:gen:" // Cached candidates: wardrobe:gen:{owner_id}:{revision}:{request_key}
	defaultCacheTTL   = 10 * time.Minute
)

// GenerationCache stores generated candidates in Redis. Entries are keyed by the owner's
// wardrobe revision, so bumping the revision makes every older entry unreachable; the TTL
// reclaims them.
type GenerationCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewGenerationCache(client *redis.Client, ttl time.Duration) *GenerationCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &GenerationCache{client: client, ttl: ttl}
}

// Revision returns the owner's current wardrobe revision, 0 if it was never bumped.
func (c *GenerationCache) Revision(ctx context.Context, ownerID string) (int64, error) {
	rev, err := c.client.Get(ctx, c.revisionKey(ownerID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read wardrobe revision: %w", err)
	}
	return rev, nil
}

func (c *GenerationCache) Get(ctx context.Context, ownerID string, rev int64, key string) ([]engine.Candidate, bool, error) {
	data, err := c.client.Get(ctx, c.resultKey(ownerID, rev, key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cached outfits: %w", err)
	}

	var cands []engine.Candidate
	if err := json.Unmarshal(data, &cands); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal cached outfits: %w", err)
	}
	return cands, true, nil
}

func (c *GenerationCache) Put(ctx context.Context, ownerID string, rev int64, key string, cands []engine.Candidate) error {
	data, err := json.Marshal(cands)
	if err != nil {
		return fmt.Errorf("failed to marshal outfits: %w", err)
	}
	if err := c.client.Set(ctx, c.resultKey(ownerID, rev, key), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache outfits: %w", err)
	}
	return nil
}

// Invalidate bumps the owner's revision.
func (c *GenerationCache) Invalidate(ctx context.Context, ownerID string) error {
	if err := c.client.Incr(ctx, c.revisionKey(ownerID)).Err(); err != nil {
		return fmt.Errorf("failed to bump wardrobe revision: %w", err)
	}
	return nil
}

func (c *GenerationCache) revisionKey(ownerID string) string {
	return fmt.Sprintf("%s%s", revisionKeyPrefix, ownerID)
}

func (c *GenerationCache) resultKey(ownerID string, rev int64, key string) string {
	return fmt.Sprintf("%s%s:%d:%s", resultKeyPrefix, ownerID, rev, key)
}
