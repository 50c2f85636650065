package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	dom "Dashboard/internal/domain"

	"github.com/redis/go-redis/v9"
)

const keyProfile = "profile:"

// ProfileCache caches public profile reads in Redis.
type ProfileCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewProfileCache returns a new ProfileCache.
func NewProfileCache(rdb *redis.Client, ttl time.Duration) *ProfileCache {
	return &ProfileCache{rdb: rdb, ttl: ttl}
}

// Get returns the cached user or nil on miss.
func (c *ProfileCache) Get(ctx context.Context, userID int64) (*dom.User, error) {
	b, err := c.rdb.Get(ctx, profileKey(userID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var u dom.User
	if err := json.Unmarshal(b, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// Set stores the user in cache.
func (c *ProfileCache) Set(ctx context.Context, u dom.User) error {
	b, err := json.Marshal(u)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, profileKey(u.ID), b, c.ttl).Err()
}

// Invalidate removes the cached profile (called on profile update).
func (c *ProfileCache) Invalidate(ctx context.Context, userID int64) error {
	return c.rdb.Del(ctx, profileKey(userID)).Err()
}

func profileKey(userID int64) string {
	return keyProfile + strconv.FormatInt(userID, 10)
}
