// Package rds provides a small redis client for caching extracted article text
package rds

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config configures the redis client
type Config struct {
	Addr     string
	Password string
	DB       int
}

// Client is a string cache over go-redis
type Client struct {
	c *redis.Client
}

// Open connects and pings once so misconfiguration fails at boot
func Open(ctx context.Context, cfg Config) (*Client, error) {
	if cfg.Addr == "" {
		return nil, errors.New("redis: empty address")
	}
	c := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := c.Ping(pingCtx).Err(); err != nil {
		_ = c.Close()
		return nil, err
	}
	return &Client{c: c}, nil
}

// Get returns the value at key; a missing key is ok=false with no error
func (c *Client) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := c.c.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

// Set stores val under key; ttl 0 keeps it forever
func (c *Client) Set(ctx context.Context, key, val string, ttl time.Duration) error {
	return c.c.Set(ctx, key, val, ttl).Err()
}

// Ping checks connectivity
func (c *Client) Ping(ctx context.Context) error { return c.c.Ping(ctx).Err() }

// Close releases the connection pool
func (c *Client) Close() error { return c.c.Close() }
