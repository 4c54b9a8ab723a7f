package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisStore(rdb)
}

func TestRedisStoreRoundTrip(t *testing.T) {
	st := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, KeyProductos, []byte(`[{"id":"1"}]`)))

	got, found, err := st.Get(ctx, KeyProductos)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, `[{"id":"1"}]`, string(got))
}

func TestRedisStoreMissingKey(t *testing.T) {
	st := newTestRedis(t)

	got, found, err := st.Get(context.Background(), KeyDeudas)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, got)
}

func TestRedisStoreOverwrite(t *testing.T) {
	st := newTestRedis(t)
	ctx := context.Background()

	require.NoError(t, st.Set(ctx, KeyCategorias, []byte(`["Cervezas"]`)))
	require.NoError(t, st.Set(ctx, KeyCategorias, []byte(`["Cervezas","Vinos"]`)))

	got, found, err := st.Get(ctx, KeyCategorias)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, `["Cervezas","Vinos"]`, string(got))
}
