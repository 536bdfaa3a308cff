package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// redisCache keeps responses in Redis so multiple instances share one
// cache. Backend failures degrade to misses rather than failing requests.
type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func newRedis(url string, ttlSecs int) (*redisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, eris.Wrapf(err, "cache: parse redis url %q", url)
	}
	return &redisCache{
		client: redis.NewClient(opts),
		ttl:    time.Duration(ttlSecs) * time.Second,
	}, nil
}

// Ping checks the backend connection.
func (r *redisCache) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return eris.Wrap(err, "cache: redis ping")
	}
	return nil
}

func (r *redisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	value, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			zap.L().Warn("cache: redis get failed", zap.String("key", key), zap.Error(err))
		}
		return nil, false
	}
	return value, true
}

func (r *redisCache) Set(ctx context.Context, key string, value []byte) {
	if err := r.client.Set(ctx, key, value, r.ttl).Err(); err != nil {
		zap.L().Warn("cache: redis set failed", zap.String("key", key), zap.Error(err))
	}
}

func (r *redisCache) Close() error {
	return r.client.Close()
}
