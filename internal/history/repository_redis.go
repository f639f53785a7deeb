package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisRepo struct {
	rdb *redis.Client
}

func NewRedisRepo(rdb *redis.Client) Repo {
	return &redisRepo{rdb: rdb}
}

// key 约定：
//
//	kv  : west:match:{id}  -> JSON Record (TTL)
//	list: west:recent      -> ids, newest first, capped at recentCap
const recentKey = "west:recent"

func matchKey(id string) string {
	return fmt.Sprintf("west:match:%s", id)
}

func (r *redisRepo) Save(ctx context.Context, rec *Record, ttlSeconds int) error {
	data, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	p := r.rdb.TxPipeline()
	p.Set(ctx, matchKey(rec.ID), data, time.Duration(ttlSeconds)*time.Second)
	p.LRem(ctx, recentKey, 0, rec.ID)
	p.LPush(ctx, recentKey, rec.ID)
	p.LTrim(ctx, recentKey, 0, recentCap-1)
	_, err = p.Exec(ctx)
	return err
}

func (r *redisRepo) Get(ctx context.Context, id string) (*Record, error) {
	data, err := r.rdb.Get(ctx, matchKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode %s: %w", id, err)
	}
	return &rec, nil
}

// Recent skips ids whose record already expired.
func (r *redisRepo) Recent(ctx context.Context, n int) ([]*Record, error) {
	if n <= 0 {
		return nil, nil
	}
	ids, err := r.rdb.LRange(ctx, recentKey, 0, int64(n-1)).Result()
	if err != nil {
		return nil, err
	}
	out := make([]*Record, 0, len(ids))
	for _, id := range ids {
		rec, err := r.Get(ctx, id)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}
