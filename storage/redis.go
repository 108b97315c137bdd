package storage

import (
	"context"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient builds a redis client from a REDIS_URL-like string. Accepts
// either a plain `host:port` or a `redis://`/`rediss://` URL.
func NewRedisClient(raw string) *redis.Client {
	addr, password, db := ParseRedisURL(raw)
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	// warm up (best-effort)
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()
	_ = client.Ping(ctx).Err()
	return client
}

// ParseRedisURL splits a REDIS_URL-like string into address, password, and
// database number. A plain `host:port` passes through unchanged.
func ParseRedisURL(raw string) (addr, password string, db int) {
	if raw == "" {
		raw = "localhost:6379"
	}
	addr = raw
	if strings.HasPrefix(raw, "redis://") || strings.HasPrefix(raw, "rediss://") {
		if u, err := url.Parse(raw); err == nil {
			addr = u.Host
			if u.User != nil {
				if pw, ok := u.User.Password(); ok {
					password = pw
				}
			}
			if p := strings.Trim(u.Path, "/"); p != "" {
				if n, err := strconv.Atoi(p); err == nil {
					db = n
				}
			}
		}
	}
	return addr, password, db
}

// RedisKV adapts *redis.Client to the KV interface. Values carry no TTL: the
// snapshot is the durable copy of the store, not a cache.
type RedisKV struct {
	client *redis.Client
}

func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{client: client}
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	s, err := r.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return s, true, nil
}

func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

func (r *RedisKV) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *RedisKV) Close() error {
	return r.client.Close()
}

var _ KV = (*RedisKV)(nil)
