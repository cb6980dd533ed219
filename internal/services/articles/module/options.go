package module

import (
	"time"

	"articlestats/internal/platform/config"
)

// Options holds configuration for the articles module
type Options struct {
	Dir      string
	CacheTTL time.Duration
}

// FromConfig reads CORE_ARTICLES_*
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_ARTICLES_")
	return Options{
		Dir:      c.MayPath("DIR", "articles"),
		CacheTTL: c.MayDuration("CACHE_TTL", 7*24*time.Hour),
	}
}
