package kvstore

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisStore(client, ttl), mr
}

func TestRedisStore_SetGet(t *testing.T) {
	store, mr := setupTestRedis(t, 24*time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "cart:user-1", []byte(`{"user_id":"user-1"}`)))
	assert.True(t, mr.Exists("cart:user-1"))

	got, err := store.Get(ctx, "cart:user-1")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"user_id":"user-1"}`), got)
}

func TestRedisStore_Get_NotFound(t *testing.T) {
	store, _ := setupTestRedis(t, 24*time.Hour)

	got, err := store.Get(context.Background(), "missing")
	assert.Nil(t, got)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRedisStore_Set_TTL(t *testing.T) {
	store, mr := setupTestRedis(t, 24*time.Hour)

	require.NoError(t, store.Set(context.Background(), "k", []byte("v")))

	ttl := mr.TTL("k")
	assert.True(t, ttl > 23*time.Hour, "expected TTL > 23h, got %v", ttl)
	assert.True(t, ttl <= 24*time.Hour, "expected TTL <= 24h, got %v", ttl)
}

func TestRedisStore_ZeroTTLMeansNoExpiry(t *testing.T) {
	store, mr := setupTestRedis(t, 0)

	require.NoError(t, store.Set(context.Background(), "k", []byte("v")))
	assert.Equal(t, time.Duration(0), mr.TTL("k"))
}

func TestRedisStore_Delete(t *testing.T) {
	store, mr := setupTestRedis(t, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	require.NoError(t, store.Delete(ctx, "k"))
	assert.False(t, mr.Exists("k"))

	// Deleting a missing key is not an error.
	assert.NoError(t, store.Delete(ctx, "k"))
}
