package irbridge

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RepeatCacheConfig configures the repeat-dedup cache, narrowed from the
// teacher's RedisContextConfig to the one key-prefix/TTL pair this decoder
// needs (no pool tuning, no arbitrary scope/key scan surface - just
// SETEX/GET on one key per pin).
type RepeatCacheConfig struct {
	Addr     string
	DB       int
	Password string
	Prefix   string // default "irdecode"
}

// RepeatCache collapses a held button's repeated RepeatDone frames into one
// transport event per window, the Redis analogue of the teacher's
// RedisContextStorage.SetWithTTL, narrowed to a single "last command seen
// on this pin" key.
type RepeatCache struct {
	client *redis.Client
	prefix string
}

// NewRepeatCache connects to Redis and returns a cache. Connection errors
// are surfaced immediately, matching RedisContextStorage's constructor-time
// Ping check.
func NewRepeatCache(cfg RepeatCacheConfig) (*RepeatCache, error) {
	prefix := cfg.Prefix
	if prefix == "" {
		prefix = "irdecode"
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("irbridge: failed to connect to redis: %w", err)
	}

	return &RepeatCache{client: client, prefix: prefix}, nil
}

// ShouldPublish reports whether env represents a new logical press rather
// than a repeat already reported within window: a non-repeat envelope is
// always published (and resets the window); a repeat envelope is published
// only if no prior command for this pin is still live in the cache.
func (c *RepeatCache) ShouldPublish(ctx context.Context, env Envelope, window time.Duration) (bool, error) {
	key := c.key(env.Pin)

	if !env.Repeat {
		return true, c.client.Set(ctx, key, env.ID, window).Err()
	}

	exists, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("irbridge: repeat cache lookup failed: %w", err)
	}

	if exists > 0 {
		// Refresh the TTL so a continuously-held button never lapses
		// mid-press, but don't re-publish.
		c.client.Expire(ctx, key, window)
		return false, nil
	}

	return true, c.client.Set(ctx, key, env.ID, window).Err()
}

func (c *RepeatCache) key(pin int) string {
	return fmt.Sprintf("%s:last:%d", c.prefix, pin)
}

// Close closes the Redis connection.
func (c *RepeatCache) Close() error {
	return c.client.Close()
}
