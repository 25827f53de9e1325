package store

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const usageKeyPrefix = "ia:usage:"

// RedisUsageMeter keeps one hash per caller with a counter per endpoint.
type RedisUsageMeter struct {
	client *redis.Client
	ttl    time.Duration // zero keeps keys forever
}

func NewRedisUsageMeter(client *redis.Client, ttl time.Duration) *RedisUsageMeter {
	return &RedisUsageMeter{
		client: client,
		ttl:    ttl,
	}
}

func (r *RedisUsageMeter) Increment(ctx context.Context, caller, endpoint string) error {
	key := usageKeyPrefix + caller
	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.HIncrBy(ctx, key, endpoint, 1)
		if r.ttl > 0 {
			p.Expire(ctx, key, r.ttl)
		}
		return nil
	})
	return err
}

func (r *RedisUsageMeter) Usage(ctx context.Context, caller string) (map[string]int64, error) {
	data, err := r.client.HGetAll(ctx, usageKeyPrefix+caller).Result()
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(data))
	for endpoint, raw := range data {
		n, convErr := strconv.ParseInt(raw, 10, 64)
		if convErr != nil {
			continue
		}
		out[endpoint] = n
	}
	return out, nil
}
