package module

import (
	"time"

	"articlestats/internal/platform/config"
)

// Options holds configuration settings for the fetch module
type Options struct {
	Workers       int
	Delay         time.Duration
	ProgressEvery int

	Timeout    time.Duration
	MaxRetries int
	MaxBytes   int64
	UserAgents []string
}

// FromConfig reads CORE_FETCH_*
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_FETCH_")
	return Options{
		Workers:       c.MayInt("WORKERS", 20),
		Delay:         c.MayDuration("DELAY", 2*time.Second),
		ProgressEvery: c.MayInt("PROGRESS_EVERY", 10),
		Timeout:       c.MayDuration("TIMEOUT", 30*time.Second),
		MaxRetries:    c.MayInt("MAX_RETRIES", 3),
		MaxBytes:      c.MayInt64("MAX_BYTES", 8<<20),
		UserAgents:    c.MayCSV("USER_AGENTS", nil),
	}
}
