package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/config"
	"github.com/GSP25SE81-hotpot/HotPot-BE-sub000/internal/constants"

	"github.com/redis/go-redis/v9"
)

// state is nil until InitRedis runs with caching enabled. All exported
// helpers degrade to no-ops when the cache is off so callers never
// branch on availability.
var state *redisState

type redisState struct {
	client *redis.Client
	prefix string
}

func (s *redisState) key(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return s.prefix
	}
	return s.prefix + ":" + raw
}

// InitRedis connects the shared Redis client. A disabled or nil config
// leaves caching off and is not an error.
func InitRedis(cfg *config.RedisConfig) error {
	if cfg == nil || !cfg.Enabled {
		state = nil
		return nil
	}
	host := strings.TrimSpace(cfg.Host)
	if host == "" {
		host = "127.0.0.1"
	}
	port := cfg.Port
	if port <= 0 {
		port = 6379
	}
	prefix := strings.TrimSpace(cfg.Prefix)
	if prefix == "" {
		prefix = constants.RedisPrefixDefault
	}
	state = &redisState{
		client: redis.NewClient(&redis.Options{
			Addr:     host + ":" + strconv.Itoa(port),
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
		prefix: prefix,
	}
	return nil
}

// Enabled reports whether caching is on.
func Enabled() bool {
	return state != nil
}

// Client returns the Redis client, nil when disabled.
func Client() *redis.Client {
	if state == nil {
		return nil
	}
	return state.client
}

// GetJSON loads and decodes a cached value. The bool is false on miss
// or when the cache is disabled.
func GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	if state == nil {
		return false, nil
	}
	raw, err := state.client.Get(ctx, state.key(key)).Bytes()
	switch {
	case err == redis.Nil:
		return false, nil
	case err != nil:
		return false, err
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON stores a value encoded as JSON with the given TTL.
func SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if state == nil {
		return nil
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return state.client.Set(ctx, state.key(key), payload, ttl).Err()
}

// Del drops a cached entry.
func Del(ctx context.Context, key string) error {
	if state == nil {
		return nil
	}
	return state.client.Del(ctx, state.key(key)).Err()
}
