package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tripline/tripline-backend/logger"
	"github.com/tripline/tripline-backend/types"
)

const redisKeyPrefix = "locker_search:"

// Redis is a Cache backed by a Redis instance, for deployments where
// multiple processes should share one result cache. TTL enforcement is
// delegated to Redis key expiry.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

// Lookup treats any Redis failure as a miss; the search then falls
// through to a fresh fetch.
func (r *Redis) Lookup(ctx context.Context, key string) (*types.LockerSearchResult, bool) {
	log := logger.GetLogger()

	payload, err := r.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warnw("Cache lookup failed", "key", key, "error", err)
		}
		return nil, false
	}

	var result types.LockerSearchResult
	if err := json.Unmarshal(payload, &result); err != nil {
		log.Warnw("Cache entry is not decodable, treating as miss", "key", key, "error", err)
		return nil, false
	}
	return &result, true
}

// Store is best-effort: a failed write only costs a future cache miss.
func (r *Redis) Store(ctx context.Context, key string, result *types.LockerSearchResult) {
	log := logger.GetLogger()

	payload, err := json.Marshal(result)
	if err != nil {
		log.Warnw("Failed to encode cache entry", "key", key, "error", err)
		return
	}

	if err := r.client.Set(ctx, redisKeyPrefix+key, payload, r.ttl).Err(); err != nil {
		log.Warnw("Cache store failed", "key", key, "error", err)
	}
}
