package module

import (
	"time"

	"articlestats/internal/platform/config"
)

// Options holds configuration settings for the report module
type Options struct {
	Output           string
	PG               bool // write to postgres when it is configured
	CH               bool // write to clickhouse when it is configured
	StatementTimeout time.Duration
}

// FromConfig reads CORE_REPORT_*
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_REPORT_")
	return Options{
		Output:           c.MayPath("OUTPUT", "output.xlsx"),
		PG:               c.MayBool("PG", true),
		CH:               c.MayBool("CH", true),
		StatementTimeout: c.MayDuration("STATEMENT_TIMEOUT", 30*time.Second),
	}
}
