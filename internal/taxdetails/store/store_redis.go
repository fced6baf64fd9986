package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"bemyrider/internal/taxdetails/models"
	id "bemyrider/pkg/domain"
)

const (
	riderKeyPrefix    = "taxdetails:rider:"
	merchantKeyPrefix = "taxdetails:merchant:"
)

// RedisCache caches tax-detail records as JSON with a TTL. It is never the
// source of truth: misses return ErrNotFound and the caller reads the store.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{client: client, ttl: ttl}
}

func (c *RedisCache) GetRider(ctx context.Context, riderID id.RiderID) (*models.RiderTaxDetails, error) {
	var record models.RiderTaxDetails
	if err := c.get(ctx, riderKeyPrefix+riderID.String(), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *RedisCache) SetRider(ctx context.Context, details *models.RiderTaxDetails) error {
	return c.set(ctx, riderKeyPrefix+details.RiderID.String(), details)
}

func (c *RedisCache) DeleteRider(ctx context.Context, riderID id.RiderID) error {
	return c.del(ctx, riderKeyPrefix+riderID.String())
}

func (c *RedisCache) GetMerchant(ctx context.Context, merchantID id.MerchantID) (*models.MerchantTaxDetails, error) {
	var record models.MerchantTaxDetails
	if err := c.get(ctx, merchantKeyPrefix+merchantID.String(), &record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (c *RedisCache) SetMerchant(ctx context.Context, details *models.MerchantTaxDetails) error {
	return c.set(ctx, merchantKeyPrefix+details.MerchantID.String(), details)
}

func (c *RedisCache) DeleteMerchant(ctx context.Context, merchantID id.MerchantID) error {
	return c.del(ctx, merchantKeyPrefix+merchantID.String())
}

func (c *RedisCache) get(ctx context.Context, key string, dst any) error {
	raw, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("redis get %s: %w: %w", key, ErrCacheUnavailable, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("decode cached record: %w", err)
	}
	return nil
}

func (c *RedisCache) set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode cached record: %w", err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w: %w", key, ErrCacheUnavailable, err)
	}
	return nil
}

func (c *RedisCache) del(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis del %s: %w: %w", key, ErrCacheUnavailable, err)
	}
	return nil
}
