package cache

import (
	"context"
	"testing"
	"time"

	"gatekeeper/internal/domain/repository"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTokenCache(t *testing.T) (repository.TokenCache, *miniredis.Miniredis) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewTokenCache(client), mr
}

func TestTokenCache_PutExistsDelete(t *testing.T) {
	cache, _ := newTestTokenCache(t)
	ctx := context.Background()
	userID := uuid.New()

	ok, err := cache.Exists(ctx, userID, "t-1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Put(ctx, userID, "t-1", time.Hour))

	ok, err = cache.Exists(ctx, userID, "t-1")
	require.NoError(t, err)
	assert.True(t, ok)

	// A different token for the same user is a different session.
	ok, err = cache.Exists(ctx, userID, "t-2")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Delete(ctx, userID, "t-1"))

	ok, err = cache.Exists(ctx, userID, "t-1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestTokenCache_PutOverwritesSilently(t *testing.T) {
	cache, mr := newTestTokenCache(t)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, cache.Put(ctx, userID, "t-1", time.Minute))
	require.NoError(t, cache.Put(ctx, userID, "t-1", time.Hour))

	ttl := mr.TTL(tokenKey(userID, "t-1"))
	assert.Equal(t, time.Hour, ttl)
}

func TestTokenCache_TTLExpiry(t *testing.T) {
	cache, mr := newTestTokenCache(t)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, cache.Put(ctx, userID, "t-1", time.Minute))

	mr.FastForward(time.Minute + time.Second)

	ok, err := cache.Exists(ctx, userID, "t-1")
	require.NoError(t, err)
	assert.False(t, ok, "token must expire with its TTL")
}

func TestTokenCache_DeleteIdempotent(t *testing.T) {
	cache, _ := newTestTokenCache(t)
	ctx := context.Background()
	userID := uuid.New()

	// Deleting an absent pair is not an error, and repeating a delete is fine.
	require.NoError(t, cache.Delete(ctx, userID, "never-issued"))

	require.NoError(t, cache.Put(ctx, userID, "t-1", time.Hour))
	require.NoError(t, cache.Delete(ctx, userID, "t-1"))
	require.NoError(t, cache.Delete(ctx, userID, "t-1"))
}

func TestTokenCache_DeleteLeavesOtherTokens(t *testing.T) {
	cache, _ := newTestTokenCache(t)
	ctx := context.Background()
	userID := uuid.New()

	require.NoError(t, cache.Put(ctx, userID, "phone", time.Hour))
	require.NoError(t, cache.Put(ctx, userID, "laptop", time.Hour))

	require.NoError(t, cache.Delete(ctx, userID, "phone"))

	ok, err := cache.Exists(ctx, userID, "laptop")
	require.NoError(t, err)
	assert.True(t, ok, "logout of one device must not touch the other")
}

func TestTokenCache_DeleteAll(t *testing.T) {
	cache, _ := newTestTokenCache(t)
	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()

	require.NoError(t, cache.Put(ctx, userID, "phone", time.Hour))
	require.NoError(t, cache.Put(ctx, userID, "laptop", time.Hour))
	require.NoError(t, cache.Put(ctx, otherID, "tablet", time.Hour))

	require.NoError(t, cache.DeleteAll(ctx, userID))

	for _, token := range []string{"phone", "laptop"} {
		ok, err := cache.Exists(ctx, userID, token)
		require.NoError(t, err)
		assert.False(t, ok)
	}

	// Another user's sessions survive the revoke-all.
	ok, err := cache.Exists(ctx, otherID, "tablet")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTokenCache_UnavailableBackend(t *testing.T) {
	cache, mr := newTestTokenCache(t)
	ctx := context.Background()
	userID := uuid.New()

	mr.Close()

	err := cache.Put(ctx, userID, "t-1", time.Hour)
	assert.ErrorIs(t, err, repository.ErrCacheUnavailable)

	ok, err := cache.Exists(ctx, userID, "t-1")
	assert.False(t, ok)
	assert.ErrorIs(t, err, repository.ErrCacheUnavailable)

	err = cache.Delete(ctx, userID, "t-1")
	assert.ErrorIs(t, err, repository.ErrCacheUnavailable)
}
