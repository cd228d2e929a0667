package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps views in redis. Each tag is a redis set holding the keys
// written under it, plus a counter holding its generation.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (r *RedisStore) Generation(ctx context.Context, tag string) (int64, error) {
	if r.client == nil {
		return 0, nil
	}
	gen, err := r.client.Get(ctx, r.genKey(tag)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

func (r *RedisStore) Get(ctx context.Context, key string, dest any) (bool, error) {
	if r.client == nil {
		return false, nil
	}
	val, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(val, dest); err != nil {
		return false, err
	}
	return true, nil
}

// Set writes the view only while the tag generation still equals gen. The
// generation key is watched so a concurrent Invalidate aborts the write.
func (r *RedisStore) Set(ctx context.Context, key, tag string, gen int64, value any, ttl time.Duration) error {
	if r.client == nil {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	genKey := r.genKey(tag)
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != gen {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, r.prefix+key, data, ttl)
			pipe.SAdd(ctx, r.tagKey(tag), r.prefix+key)
			if ttl > 0 {
				pipe.Expire(ctx, r.tagKey(tag), ttl)
			}
			return nil
		})
		return err
	}, genKey)
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

// Invalidate advances each tag's generation before deleting its keys, so a
// Set racing with it either sees the new generation or fails its EXEC.
func (r *RedisStore) Invalidate(ctx context.Context, tags ...string) error {
	if r.client == nil {
		return nil
	}
	for _, tag := range tags {
		if err := r.client.Incr(ctx, r.genKey(tag)).Err(); err != nil {
			return err
		}
		members, err := r.client.SMembers(ctx, r.tagKey(tag)).Result()
		if err != nil {
			return err
		}
		keys := append(members, r.tagKey(tag))
		if err := r.client.Del(ctx, keys...).Err(); err != nil {
			return err
		}
	}
	return nil
}

func (r *RedisStore) tagKey(tag string) string {
	return r.prefix + "tag:" + tag
}

func (r *RedisStore) genKey(tag string) string {
	return r.prefix + "tag:" + tag + ":gen"
}
