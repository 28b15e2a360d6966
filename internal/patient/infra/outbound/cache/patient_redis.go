package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisPatientCache implementa domain.PatientCache sobre Redis. Todo el
// estado compartido entre requests vive fuera del proceso.
type RedisPatientCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisPatientCache(client *redis.Client, ttl time.Duration) *RedisPatientCache {
	return &RedisPatientCache{client: client, ttl: ttl}
}

func (c *RedisPatientCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return false, nil // cache miss
		}
		return false, err
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, err
	}
	return true, nil
}

func (c *RedisPatientCache) Set(ctx context.Context, key string, val interface{}) error {
	data, err := json.Marshal(val)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, data, c.ttl).Err()
}

func (c *RedisPatientCache) Delete(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}
