package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedPayload struct {
	Names []string `json:"names"`
	Total int      `json:"total"`
}

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func discardLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestRedisListCache_RoundTrip(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewRedisListCache(client, discardLogger(), time.Minute)
	ctx := context.Background()

	generation, err := cache.Generation(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), generation)

	var got cachedPayload
	hit, err := cache.Get(ctx, generation, ListKeyDoctors, &got)
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, cache.Set(ctx, generation, ListKeyDoctors, cachedPayload{Names: []string{"a", "b"}, Total: 2}))
	assert.True(t, mr.Exists(RedisListEntryKey(generation, ListKeyDoctors)))

	hit, err = cache.Get(ctx, generation, ListKeyDoctors, &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, cachedPayload{Names: []string{"a", "b"}, Total: 2}, got)

	mr.FastForward(2 * time.Minute)
	hit, err = cache.Get(ctx, generation, ListKeyDoctors, &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisListCache_InvalidateDropsOnlyLists(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewRedisListCache(client, discardLogger(), time.Minute)
	ctx := context.Background()

	for _, key := range []string{ListKeyDepartments, ListKeyDoctors, ListKeyPatients, ListKeyAppointments} {
		require.NoError(t, cache.Set(ctx, 0, key, cachedPayload{Total: 1}))
	}
	require.NoError(t, mr.Set("unrelated", "keep"))

	require.NoError(t, cache.Invalidate(ctx))

	for _, key := range []string{ListKeyDepartments, ListKeyDoctors, ListKeyPatients, ListKeyAppointments} {
		assert.False(t, mr.Exists(RedisListEntryKey(0, key)), key)
	}
	assert.True(t, mr.Exists("unrelated"))

	generation, err := cache.Generation(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), generation)
}

func TestRedisListCache_SetAfterInvalidateIsNotServed(t *testing.T) {
	_, client := newTestRedis(t)
	cache := NewRedisListCache(client, discardLogger(), time.Minute)
	ctx := context.Background()

	// A reader picks up the generation and loads a list, then a writer
	// invalidates before the reader stores what it loaded.
	stale, err := cache.Generation(ctx)
	require.NoError(t, err)
	require.NoError(t, cache.Invalidate(ctx))
	require.NoError(t, cache.Set(ctx, stale, ListKeyDepartments, cachedPayload{Total: 3}))

	current, err := cache.Generation(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, stale, current)

	var got cachedPayload
	hit, err := cache.Get(ctx, current, ListKeyDepartments, &got)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisListCache_CorruptValue(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewRedisListCache(client, discardLogger(), time.Minute)

	require.NoError(t, mr.Set(RedisListEntryKey(0, ListKeyPatients), "{not json"))

	var got cachedPayload
	hit, err := cache.Get(context.Background(), 0, ListKeyPatients, &got)
	assert.Error(t, err)
	assert.False(t, hit)
}

func TestRedisListCache_CorruptGeneration(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewRedisListCache(client, discardLogger(), time.Minute)

	require.NoError(t, mr.Set(RedisListGenerationKey, "abc"))

	_, err := cache.Generation(context.Background())
	assert.Error(t, err)
}

func TestRedisListCache_ServerDown(t *testing.T) {
	mr, client := newTestRedis(t)
	cache := NewRedisListCache(client, discardLogger(), time.Minute)
	mr.Close()

	ctx := context.Background()
	_, err := cache.Generation(ctx)
	assert.Error(t, err)

	var got cachedPayload
	_, err = cache.Get(ctx, 0, ListKeyPatients, &got)
	assert.Error(t, err)
	assert.Error(t, cache.Invalidate(ctx))
}

func TestNoopListCache(t *testing.T) {
	cache := NewNoopListCache()
	ctx := context.Background()

	generation, err := cache.Generation(ctx)
	require.NoError(t, err)
	require.NoError(t, cache.Set(ctx, generation, ListKeyDoctors, cachedPayload{Total: 1}))
	var got cachedPayload
	hit, err := cache.Get(ctx, generation, ListKeyDoctors, &got)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, cache.Invalidate(ctx))
}
