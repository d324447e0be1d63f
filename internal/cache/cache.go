package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Client is a thin Redis wrapper for user lookups and the refresh-token
// store. Redis being down must never fail a request, so every method
// degrades to a cache miss or a no-op. A nil *Client behaves the same
// way, which lets the seeder run without Redis at all.
type Client struct {
	rdb *redis.Client
}

// New connects to Redis at addr.
func New(addr, password string, db int) *Client {
	return &Client{rdb: redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})}
}

// Get returns the cached value, or nil when the key is absent or Redis
// is unreachable.
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	if c == nil || c.rdb == nil {
		return nil, nil
	}
	data, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		// redis.Nil and connectivity errors both read as a miss
		return nil, nil
	}
	return data, nil
}

// Set stores value under key for ttl. Errors are dropped.
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	c.rdb.Set(ctx, key, value, ttl)
	return nil
}

// Delete removes key. Errors are dropped.
func (c *Client) Delete(ctx context.Context, key string) error {
	if c == nil || c.rdb == nil {
		return nil
	}
	c.rdb.Del(ctx, key)
	return nil
}
