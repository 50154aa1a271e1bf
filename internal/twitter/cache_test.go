package twitter

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestCache(t *testing.T) (*RetweetCache, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRetweetCache(client), mr
}

func TestRetweetCache(t *testing.T) {
	ctx := context.Background()

	t.Run("miss then hit", func(t *testing.T) {
		cache, _ := setupTestCache(t)

		hit, err := cache.Get(ctx, "hetu", "u1", "99")
		require.NoError(t, err)
		assert.False(t, hit)

		require.NoError(t, cache.Set(ctx, "hetu", "u1", "99"))

		hit, err = cache.Get(ctx, "hetu", "u1", "99")
		require.NoError(t, err)
		assert.True(t, hit)
	})

	t.Run("keys are scoped per account, user, and post", func(t *testing.T) {
		cache, _ := setupTestCache(t)

		require.NoError(t, cache.Set(ctx, "hetu", "u1", "99"))

		hit, err := cache.Get(ctx, "hetu", "u2", "99")
		require.NoError(t, err)
		assert.False(t, hit)

		hit, err = cache.Get(ctx, "hetu", "u1", "100")
		require.NoError(t, err)
		assert.False(t, hit)
	})

	t.Run("entries expire", func(t *testing.T) {
		cache, mr := setupTestCache(t)

		require.NoError(t, cache.Set(ctx, "hetu", "u1", "99"))
		mr.FastForward(retweetTTL + time.Second)

		hit, err := cache.Get(ctx, "hetu", "u1", "99")
		require.NoError(t, err)
		assert.False(t, hit)
	})
}
