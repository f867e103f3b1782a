package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/department-service/internal/domain"
)

// DefaultTTL bounds how long a cached department may go stale.
const DefaultTTL = 5 * time.Minute

// DepartmentCache is a redis-backed read cache for departments. A nil
// *DepartmentCache is valid and disables caching, so callers never branch
// on configuration.
type DepartmentCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewDepartmentCache builds the cache. A non-positive ttl falls back to
// DefaultTTL.
func NewDepartmentCache(client *redis.Client, ttl time.Duration, logger *zap.Logger) *DepartmentCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &DepartmentCache{client: client, ttl: ttl, logger: logger}
}

func departmentKey(id int64) string {
	return fmt.Sprintf("department:%d", id)
}

// Get returns the cached department and whether the lookup hit. Transport
// errors count as misses and are logged, never propagated.
func (c *DepartmentCache) Get(ctx context.Context, id int64) (*domain.Department, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}
	data, err := c.client.Get(ctx, departmentKey(id)).Bytes()
	if err == redis.Nil {
		return nil, false
	}
	if err != nil {
		c.logger.Warn("department cache read failed", zap.Int64("id", id), zap.Error(err))
		return nil, false
	}
	var dept domain.Department
	if err := json.Unmarshal(data, &dept); err != nil {
		c.logger.Warn("department cache entry corrupt", zap.Int64("id", id), zap.Error(err))
		return nil, false
	}
	return &dept, true
}

// Set stores the department under its id key.
func (c *DepartmentCache) Set(ctx context.Context, dept domain.Department) {
	if c == nil || c.client == nil {
		return
	}
	data, err := json.Marshal(dept)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, departmentKey(dept.ID), data, c.ttl).Err(); err != nil {
		c.logger.Warn("department cache write failed", zap.Int64("id", dept.ID), zap.Error(err))
	}
}

// Invalidate drops the cached entry for the id.
func (c *DepartmentCache) Invalidate(ctx context.Context, id int64) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, departmentKey(id)).Err(); err != nil {
		c.logger.Warn("department cache invalidation failed", zap.Int64("id", id), zap.Error(err))
	}
}
