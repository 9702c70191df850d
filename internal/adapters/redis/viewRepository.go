package redis

import (
	"context"
	"strconv"
	"strings"

	"github.com/go-redis/redis/v8"
)

const viewKeyPrefix = "views:"

// ViewRepositoryRedis keeps per-post view counters in Redis. Counters
// accumulate here and a worker flushes them into the posts table, so a lost
// Redis only loses not-yet-flushed views.
type ViewRepositoryRedis struct {
	Client *redis.Client
}

func NewViewRepositoryRedis(client *redis.Client) *ViewRepositoryRedis {
	return &ViewRepositoryRedis{
		Client: client,
	}
}

func (r *ViewRepositoryRedis) Hit(ctx context.Context, postID string) (int64, error) {
	return r.Client.Incr(ctx, viewKeyPrefix+postID).Result()
}

// Drain takes pending counters with GETDEL, hits arriving after the take
// simply start a fresh counter.
func (r *ViewRepositoryRedis) Drain(ctx context.Context, limit int64) (map[string]int64, error) {
	out := make(map[string]int64)
	var cursor uint64
	for {
		keys, next, err := r.Client.Scan(ctx, cursor, viewKeyPrefix+"*", limit).Result()
		if err != nil {
			return nil, err
		}

		for _, key := range keys {
			val, err := r.Client.GetDel(ctx, key).Result()
			if err == redis.Nil {
				continue
			}
			if err != nil {
				return out, err
			}
			n, err := strconv.ParseInt(val, 10, 64)
			if err != nil || n <= 0 {
				continue
			}
			out[strings.TrimPrefix(key, viewKeyPrefix)] += n
		}

		cursor = next
		if cursor == 0 || int64(len(out)) >= limit {
			break
		}
	}
	return out, nil
}
