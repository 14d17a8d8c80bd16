package cache

import (
	"context"
	"time"

	"gatekeeper/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Keys are namespaced per user so that revoking all of a user's sessions is a
// bounded scan over auth:token:<userID>:*.
const tokenKeyPrefix = "auth:token:"

// deleteAllScanCount is the batch size hint for SCAN during DeleteAll.
const deleteAllScanCount = 100

// redisTokenCache implements repository.TokenCache over a Redis connection.
// Redis TTL expiry is the only expiry mechanism; nothing sweeps tokens
// explicitly.
type redisTokenCache struct {
	client *redis.Client
}

// NewTokenCache is the constructor for redisTokenCache.
func NewTokenCache(client *redis.Client) repository.TokenCache {
	return &redisTokenCache{client: client}
}

func tokenKey(userID uuid.UUID, token string) string {
	return tokenKeyPrefix + userID.String() + ":" + token
}

func userTokenPattern(userID uuid.UUID) string {
	return tokenKeyPrefix + userID.String() + ":*"
}

// Put stores the (user id, token) pair with the given TTL. SET overwrites
// silently, so re-issuing the same token refreshes its expiry.
func (c *redisTokenCache) Put(ctx context.Context, userID uuid.UUID, token string, ttl time.Duration) error {
	if err := c.client.Set(ctx, tokenKey(userID, token), 1, ttl).Err(); err != nil {
		return errors.Wrapf(repository.ErrCacheUnavailable, "failed to store token: %v", err)
	}

	return nil
}

// Exists reports whether the pair is present and unexpired. Redis drops
// expired keys itself, so presence alone answers both questions.
func (c *redisTokenCache) Exists(ctx context.Context, userID uuid.UUID, token string) (bool, error) {
	n, err := c.client.Exists(ctx, tokenKey(userID, token)).Result()
	if err != nil {
		return false, errors.Wrapf(repository.ErrCacheUnavailable, "failed to check token: %v", err)
	}

	return n > 0, nil
}

// Delete removes the pair. DEL on an absent key is a no-op in Redis, which
// gives Delete its idempotency for free.
func (c *redisTokenCache) Delete(ctx context.Context, userID uuid.UUID, token string) error {
	if err := c.client.Del(ctx, tokenKey(userID, token)).Err(); err != nil {
		return errors.Wrapf(repository.ErrCacheUnavailable, "failed to delete token: %v", err)
	}

	return nil
}

// DeleteAll walks the user's key namespace and removes every live token,
// ending all their sessions at once.
func (c *redisTokenCache) DeleteAll(ctx context.Context, userID uuid.UUID) error {
	iter := c.client.Scan(ctx, 0, userTokenPattern(userID), deleteAllScanCount).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			return errors.Wrapf(repository.ErrCacheUnavailable, "failed to delete token during revoke-all: %v", err)
		}
	}
	if err := iter.Err(); err != nil {
		return errors.Wrapf(repository.ErrCacheUnavailable, "failed to scan tokens during revoke-all: %v", err)
	}

	return nil
}
