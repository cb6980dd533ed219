package store

import (
	"articlestats/internal/platform/logger"
)

// Option mutates Store during Open
type Option func(*Store) error

// WithLogger sets the logger used by subclients
func WithLogger(log logger.Logger) Option {
	return func(s *Store) error {
		s.Log = log
		return nil
	}
}

// WithKV injects a ready cache, e.g. one shared with another process component
func WithKV(kv KV) Option {
	return func(s *Store) error {
		s.KV = kv
		return nil
	}
}
