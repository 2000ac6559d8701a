package redisad

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"betu_homestay/internal/adapters/observability"
)

// KeyPrefix namespaces every catalog key so the site can share a Redis
// database with other services.
const KeyPrefix = "homestay:"

// Cache stores catalog read models as JSON under namespaced keys.
type Cache struct {
	c      *redis.Client
	prefix string
}

func New(addr, pass string, db int) *Cache {
	return &Cache{
		c:      redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db}),
		prefix: KeyPrefix,
	}
}

func (r *Cache) key(k string) string { return r.prefix + k }

func (r *Cache) Get(ctx context.Context, key string, dst any) (bool, error) {
	v, err := r.c.Get(ctx, r.key(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		observability.ObserveCache("catalog", "miss")
		return false, nil
	}
	if err != nil {
		observability.ObserveCache("catalog", "error")
		return false, err
	}
	// a payload that no longer decodes (schema change) counts as a miss
	if err := json.Unmarshal(v, dst); err != nil {
		observability.ObserveCache("catalog", "stale")
		return false, nil
	}
	observability.ObserveCache("catalog", "hit")
	return true, nil
}

func (r *Cache) Set(ctx context.Context, key string, v any, ttlSec int) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	observability.ObserveCache("catalog", "set")
	return r.c.Set(ctx, r.key(key), b, time.Duration(ttlSec)*time.Second).Err()
}

func (r *Cache) Del(ctx context.Context, key string) error {
	observability.ObserveCache("catalog", "del")
	return r.c.Del(ctx, r.key(key)).Err()
}

func (r *Cache) Ping(ctx context.Context) error { return r.c.Ping(ctx).Err() }

func (r *Cache) Close() error { return r.c.Close() }
