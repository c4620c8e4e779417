package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"lexify/models"
	"lexify/utils"

	"github.com/go-redis/redis/v8"
)

// RedisFeedCache stores each generation of the homepage feed as one JSON value
// under feed:answered:{gen}. Superseded generations expire with their TTL.
type RedisFeedCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisFeedCache(client *redis.Client, ttl time.Duration) *RedisFeedCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisFeedCache{client: client, ttl: ttl}
}

func feedKey(gen int64) string {
	return utils.FeedCachePrefix + strconv.FormatInt(gen, 10)
}

// Generation returns 0 until the feed is first invalidated.
func (c *RedisFeedCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, utils.FeedGenerationKey).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read feed generation: %w", err)
	}
	return gen, nil
}

// GetAnswered reports false on a cache miss.
func (c *RedisFeedCache) GetAnswered(ctx context.Context, gen int64) ([]models.QuestionView, bool, error) {
	data, err := c.client.Get(ctx, feedKey(gen)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read feed cache: %w", err)
	}
	var views []models.QuestionView
	if err := json.Unmarshal(data, &views); err != nil {
		return nil, false, fmt.Errorf("failed to decode feed cache: %w", err)
	}
	return views, true, nil
}

func (c *RedisFeedCache) SetAnswered(ctx context.Context, gen int64, views []models.QuestionView) error {
	bytes, err := json.Marshal(views)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, feedKey(gen), bytes, c.ttl).Err()
}

func (c *RedisFeedCache) Invalidate(ctx context.Context) error {
	return c.client.Incr(ctx, utils.FeedGenerationKey).Err()
}
