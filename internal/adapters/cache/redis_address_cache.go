package cache

import (
	"ambulance-dispatch-service/internal/domain"
	"ambulance-dispatch-service/internal/platform/obs"
	"ambulance-dispatch-service/internal/ports"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "dispatch:address:"

// RedisAddressCache keeps addresses in Redis with an expiry.
type RedisAddressCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisAddressCache(rdb *redis.Client, ttl time.Duration) *RedisAddressCache {
	return &RedisAddressCache{rdb: rdb, ttl: ttl}
}

// OpenRedis connects using a redis:// URL and verifies the connection.
func OpenRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("open redis: parse url: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("open redis: ping: %w", err)
	}
	return rdb, nil
}

func redisKey(c domain.LatLng) string {
	return redisKeyPrefix + ports.AddressCacheKey(c)
}

func (r *RedisAddressCache) GetAddress(ctx context.Context, c domain.LatLng) (_ string, _ bool, err error) {
	defer obs.Time(ctx, "address.cache.redis.Get")(&err)

	addr, err := r.rdb.Get(ctx, redisKey(c)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get address cache: %w", err)
	}
	return addr, true, nil
}

func (r *RedisAddressCache) PutAddress(ctx context.Context, c domain.LatLng, address string) error {
	if strings.TrimSpace(address) == "" {
		return fmt.Errorf("insert address cache coord=%q: empty address", ports.AddressCacheKey(c))
	}
	if err := r.rdb.Set(ctx, redisKey(c), address, r.ttl).Err(); err != nil {
		return fmt.Errorf("insert address cache coord=%q: %w", ports.AddressCacheKey(c), err)
	}
	return nil
}
