// Package cache provides redis-backed caches for read-heavy views.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"skymaint/internal/application/maintenance/dto"
	"skymaint/internal/shared/logger"
)

const statusKeyPrefix = "fleet:statuses:"

// RedisStatusCache caches the evaluated fleet view per owner with a short
// TTL. Ticket closure invalidates it because counter resets change the
// evaluation inputs.
type RedisStatusCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Interface
}

func NewRedisStatusCache(client *redis.Client, ttl time.Duration, logger logger.Interface) *RedisStatusCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &RedisStatusCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

func (c *RedisStatusCache) key(ownerID uint) string {
	return fmt.Sprintf("%s%d", statusKeyPrefix, ownerID)
}

func (c *RedisStatusCache) Get(ctx context.Context, ownerID uint) ([]dto.EntityStatusDTO, bool, error) {
	data, err := c.client.Get(ctx, c.key(ownerID)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read status cache: %w", err)
	}

	var statuses []dto.EntityStatusDTO
	if err := json.Unmarshal(data, &statuses); err != nil {
		// A corrupt entry behaves like a miss; the next Set overwrites it.
		c.logger.Warnw("dropping corrupt status cache entry", "owner_id", ownerID, "error", err)
		return nil, false, nil
	}

	return statuses, true, nil
}

func (c *RedisStatusCache) Set(ctx context.Context, ownerID uint, statuses []dto.EntityStatusDTO) error {
	data, err := json.Marshal(statuses)
	if err != nil {
		return fmt.Errorf("failed to marshal statuses: %w", err)
	}

	if err := c.client.Set(ctx, c.key(ownerID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write status cache: %w", err)
	}

	return nil
}

func (c *RedisStatusCache) Invalidate(ctx context.Context, ownerID uint) error {
	if err := c.client.Del(ctx, c.key(ownerID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate status cache: %w", err)
	}
	return nil
}
