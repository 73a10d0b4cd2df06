package storage

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisKV keeps values in Redis without TTL; the stored keys have no expiry
// semantics of their own.
type RedisKV struct {
	client *redis.Client
	prefix string
}

// NewRedisKV builds a Redis-backed store. Keys are namespaced under prefix
// so several clients can share one instance.
func NewRedisKV(addr, password, prefix string) *RedisKV {
	return &RedisKV{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
		}),
		prefix: prefix,
	}
}

func (r *RedisKV) key(key string) string {
	if r.prefix == "" {
		return key
	}
	return r.prefix + ":" + key
}

func (r *RedisKV) Get(key string) (string, bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	val, err := r.client.Get(ctx, r.key(key)).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (r *RedisKV) Set(key, value string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	return r.client.Set(ctx, r.key(key), value, 0).Err()
}

func (r *RedisKV) Delete(key string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := r.client.Del(ctx, r.key(key)).Err(); err != nil && err != redis.Nil {
		return err
	}
	return nil
}

func (r *RedisKV) Close() error { return r.client.Close() }
