package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cached distances change only when the routing collaborator's road network
// does, so entries can live for a long time.
const distanceKeyTTL = 30 * 24 * time.Hour

// Redis backed distance cache, for deployments where multiple engine
// instances share one cache. Implements the same port as the SQLite cache.
type RedisDistanceCache struct {
	Client *redis.Client
}

func NewRedisDistanceCache(client *redis.Client) *RedisDistanceCache {
	return &RedisDistanceCache{Client: client}
}

func distanceKey(origin, destination string) string {
	return "dist:" + origin + "|" + destination
}

// Fetch cached distances for one origin and multiple destinations with a
// single MGET.
func (r *RedisDistanceCache) GetMany(
	ctx context.Context,
	origin string,
	destinations []string,
) (map[string]int, error) {
	if r.Client == nil {
		return nil, errors.New("redis distance cache: client is nil")
	}

	if origin == "" {
		return nil, errors.New("get distance cache: origin must not be empty")
	}

	if len(destinations) == 0 {
		return map[string]int{}, nil
	}

	keys := make([]string, 0, len(destinations))
	for _, d := range destinations {
		keys = append(keys, distanceKey(origin, d))
	}

	values, err := r.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get distance cache: mget: %w", err)
	}

	out := make(map[string]int, len(destinations))
	for i, v := range values {
		if v == nil {
			continue
		}

		s, ok := v.(string)
		if !ok {
			continue
		}

		km, err := strconv.Atoi(s)
		if err != nil {
			// A corrupt entry behaves like a miss; the caller refetches.
			continue
		}
		out[destinations[i]] = km
	}

	return out, nil
}

// Store many cached distances for a single origin using a pipeline.
func (r *RedisDistanceCache) PutMany(ctx context.Context, origin string, distancesKm map[string]int) error {
	if r.Client == nil {
		return errors.New("redis distance cache: client is nil")
	}

	if origin == "" {
		return errors.New("insert distance cache: origin must not be empty")
	}

	if len(distancesKm) == 0 {
		return nil
	}

	pipe := r.Client.Pipeline()
	for dest, km := range distancesKm {
		if dest == "" {
			return errors.New("insert distance cache: empty destination key")
		}
		pipe.Set(ctx, distanceKey(origin, dest), strconv.Itoa(km), distanceKeyTTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("insert distance cache: pipeline exec: %w", err)
	}
	return nil
}
