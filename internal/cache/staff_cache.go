// Package cache implements the cache-aside read path for staff records.
// Misses and marshal errors degrade to the repository; the cache is never
// load-bearing.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/staff-service/internal/domain"
)

const listKey = "staff:all"

// StaffCache caches staff reads in Redis. A nil client disables it.
type StaffCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewStaffCache constructs the cache.
func NewStaffCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *StaffCache {
	return &StaffCache{client: client, ttl: ttl, logger: logger}
}

func recordKey(id int) string {
	return fmt.Sprintf("staff:id:%d", id)
}

// GetList returns the cached full list, if present.
func (c *StaffCache) GetList(ctx context.Context) ([]domain.Staff, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, listKey).Bytes()
	if err != nil {
		return nil, false
	}
	var list []domain.Staff
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, false
	}
	return list, true
}

// SetList stores the full list with the configured TTL.
func (c *StaffCache) SetList(ctx context.Context, list []domain.Staff) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, listKey, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("cache set failed", zap.String("key", listKey), zap.Error(err))
	}
}

// GetRecord returns a cached record by id, if present.
func (c *StaffCache) GetRecord(ctx context.Context, id int) (*domain.Staff, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	raw, err := c.client.Get(ctx, recordKey(id)).Bytes()
	if err != nil {
		return nil, false
	}
	var staff domain.Staff
	if err := json.Unmarshal(raw, &staff); err != nil {
		return nil, false
	}
	return &staff, true
}

// SetRecord stores a single record with the configured TTL.
func (c *StaffCache) SetRecord(ctx context.Context, staff domain.Staff) {
	if c == nil || c.client == nil {
		return
	}
	raw, err := json.Marshal(staff)
	if err != nil {
		return
	}
	key := recordKey(staff.ID)
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		c.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

// Invalidate drops the list entry and the record entry for id.
func (c *StaffCache) Invalidate(ctx context.Context, id int) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, listKey, recordKey(id)).Err(); err != nil {
		c.logger.Warn("cache invalidation failed", zap.Int("staff_id", id), zap.Error(err))
	}
}
