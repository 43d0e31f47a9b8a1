package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/ledgerline/practice-api/internal/api/metrics"
	"github.com/ledgerline/practice-api/internal/core/domain"
	"github.com/ledgerline/practice-api/internal/core/ports"
)

// PermissionCache is a read-through cache over a permission repository.
// Key format: perms:<firm_id>:<user_id>
//
// Cache failures never fail the access check: on any Redis error the call
// falls through to the inner repository.
type PermissionCache struct {
	client *redis.Client
	inner  ports.PermissionRepository
	ttl    time.Duration
	logger zerolog.Logger
}

// NewPermissionCache wraps the given repository with a Redis-backed cache.
func NewPermissionCache(client *redis.Client, inner ports.PermissionRepository, ttl time.Duration, logger zerolog.Logger) *PermissionCache {
	return &PermissionCache{client: client, inner: inner, ttl: ttl, logger: logger}
}

// GetPermissions returns the cached module list for the user, loading and
// caching from the inner repository on a miss.
func (c *PermissionCache) GetPermissions(ctx context.Context, userID, firmID string) ([]domain.ModuleKey, error) {
	key := c.key(userID, firmID)

	raw, err := c.client.Get(ctx, key).Bytes()
	if err == nil {
		var modules []domain.ModuleKey
		if jsonErr := json.Unmarshal(raw, &modules); jsonErr == nil {
			metrics.PermissionCacheTotal.WithLabelValues("hit").Inc()
			return modules, nil
		}
		// Unreadable entry, treat as a miss and overwrite below.
	} else if err != redis.Nil {
		metrics.PermissionCacheTotal.WithLabelValues("error").Inc()
		c.logger.Warn().Err(err).Str("key", key).Msg("permission cache read failed")
	}

	metrics.PermissionCacheTotal.WithLabelValues("miss").Inc()

	modules, err := c.inner.GetPermissions(ctx, userID, firmID)
	if err != nil {
		return nil, err
	}

	if encoded, jsonErr := json.Marshal(modules); jsonErr == nil {
		if setErr := c.client.Set(ctx, key, encoded, c.ttl).Err(); setErr != nil {
			c.logger.Warn().Err(setErr).Str("key", key).Msg("permission cache write failed")
		}
	}

	return modules, nil
}

// SetPermissions writes through to the inner repository and invalidates the
// cached entry so the next read sees the new grants.
func (c *PermissionCache) SetPermissions(ctx context.Context, userID, firmID string, modules []domain.ModuleKey) error {
	if err := c.inner.SetPermissions(ctx, userID, firmID, modules); err != nil {
		return err
	}

	if err := c.client.Del(ctx, c.key(userID, firmID)).Err(); err != nil {
		c.logger.Warn().Err(err).Str("user_id", userID).Msg("permission cache invalidation failed")
	}
	return nil
}

func (c *PermissionCache) key(userID, firmID string) string {
	return fmt.Sprintf("perms:%s:%s", firmID, userID)
}
