// Package redis holds the live snapshot of each running game and the all-time
// win leaderboard.
package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Client implements repository.GameCache. Snapshots expire after StateTTL;
// leaderboard entries never do.
type Client struct {
	rdb *redis.Client
}

// NewClient connects to the cache named by redisURL and pings it.
func NewClient(ctx context.Context, redisURL string) (*Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse cache URL: %w", err)
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("ping cache: %w", err)
	}
	return &Client{rdb: rdb}, nil
}

// NewClientFromPool wraps an already connected client, e.g. the integration
// test pool.
func NewClientFromPool(rdb *redis.Client) *Client {
	return &Client{rdb: rdb}
}

// Close releases the connection pool.
func (c *Client) Close() error {
	return c.rdb.Close()
}
