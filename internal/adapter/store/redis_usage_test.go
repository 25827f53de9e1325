package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisUsageMeter(t *testing.T) {
	mr, client := newTestRedis(t)
	meter := NewRedisUsageMeter(client, time.Hour)
	ctx := context.Background()

	require.NoError(t, meter.Increment(ctx, "abc", "predicaoVenda"))
	require.NoError(t, meter.Increment(ctx, "abc", "predicaoVenda"))
	require.NoError(t, meter.Increment(ctx, "abc", "predicaoDemanda"))
	require.NoError(t, meter.Increment(ctx, "other", "predicaoVenda"))

	got, err := meter.Usage(ctx, "abc")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"predicaoVenda": 2, "predicaoDemanda": 1}, got)

	assert.Equal(t, time.Hour, mr.TTL("ia:usage:abc"))
}

func TestRedisUsageMeterUnknownCaller(t *testing.T) {
	_, client := newTestRedis(t)
	got, err := NewRedisUsageMeter(client, 0).Usage(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRedisUsageMeterNoTTL(t *testing.T) {
	mr, client := newTestRedis(t)
	require.NoError(t, NewRedisUsageMeter(client, 0).Increment(context.Background(), "abc", "x"))
	assert.Equal(t, time.Duration(0), mr.TTL("ia:usage:abc"))
}

func TestRedisUsageMeterServerDown(t *testing.T) {
	mr, client := newTestRedis(t)
	mr.Close()
	err := NewRedisUsageMeter(client, 0).Increment(context.Background(), "abc", "x")
	assert.Error(t, err)
}

func TestConnect(t *testing.T) {
	mr := miniredis.RunT(t)
	ctx := context.Background()

	client, err := Connect(ctx, mr.Addr())
	require.NoError(t, err)
	_ = client.Close()

	client, err = Connect(ctx, "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	_ = client.Close()

	_, err = Connect(ctx, "redis://%zz")
	assert.Error(t, err)
}
