// Package config reads application configuration from environment variables
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"articlestats/internal/platform/logger"
)

// Conf is a namespaced view over environment variables (e.g. "CORE_FETCH_", "SERVICE_PGSQL_")
// New() is the global view; Prefix scopes it for a module
type Conf struct{ prefix string }

// New creates a root Conf (no prefix)
func New() Conf { return Conf{} }

// Prefix creates a child Conf with an additional prefix, e.g. cfg.Prefix("CORE_API_")
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Key returns the fully-qualified env var name for k
func (c Conf) Key(k string) string { return c.prefix + k }

// lookup returns the trimmed value and whether it was non-empty
func (c Conf) lookup(k string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(c.Key(k)))
	return v, v != ""
}

// invalid logs a bad value and reports the default we fall back to
func (c Conf) invalid(k, v string, def any, kind string) {
	logger.Get().Warn().
		Str("key", c.Key(k)).
		Str("value", v).
		Interface("default", def).
		Msg("invalid " + kind + "; using default")
}

// MustString panics if the given key is missing or empty
func (c Conf) MustString(key string) string {
	v, ok := c.lookup(key)
	if !ok {
		logger.Get().Panic().Str("key", c.Key(key)).Msg("missing required env")
	}
	return v
}

// MustInt panics if the given key is missing, empty, or not an int
func (c Conf) MustInt(key string) int {
	s := c.MustString(key)
	v, err := strconv.Atoi(s)
	if err != nil {
		logger.Get().Panic().Str("key", c.Key(key)).Str("value", s).Msg("invalid int value")
	}
	return v
}

// MustDuration panics if the given key is missing, empty, or not a valid duration
func (c Conf) MustDuration(key string) time.Duration {
	s := c.MustString(key)
	d, err := time.ParseDuration(s)
	if err != nil {
		logger.Get().Panic().Str("key", c.Key(key)).Str("value", s).Msg("invalid duration (e.g., 250ms, 2s, 1h)")
	}
	return d
}

// MustPort returns a net/http addr like ":4000" after validating 1..65535
func (c Conf) MustPort(key string) string {
	s := c.MustString(key)
	p, err := strconv.Atoi(s)
	if err != nil || p < 1 || p > 65535 {
		logger.Get().Panic().Str("key", c.Key(key)).Str("value", s).Msg("invalid TCP port; expected 1..65535")
	}
	return ":" + s
}

// Require panics unless every key is present and non-empty
func (c Conf) Require(keys ...string) {
	for _, k := range keys {
		if _, ok := c.lookup(k); !ok {
			logger.Get().Panic().Str("key", c.Key(k)).Msg("missing required env")
		}
	}
}

// Has reports whether key is set to a non-empty value
func (c Conf) Has(key string) bool {
	_, ok := c.lookup(key)
	return ok
}

// MayString returns the value or def if missing/empty
func (c Conf) MayString(key, def string) string {
	if v, ok := c.lookup(key); ok {
		return v
	}
	return def
}

// MayPath returns a cleaned filesystem path or def; a leading ~/ expands to the home dir
func (c Conf) MayPath(key, def string) string {
	p := c.MayString(key, def)
	if p == "" {
		return p
	}
	if strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, p[2:])
		}
	}
	return filepath.Clean(p)
}

// MayInt returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayInt(key string, def int) int {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	if v, err := strconv.Atoi(s); err == nil {
		return v
	}
	c.invalid(key, s, def, "int")
	return def
}

// MayInt64 is MayInt for sizes that may exceed 32 bits
func (c Conf) MayInt64(key string, def int64) int64 {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v
	}
	c.invalid(key, s, def, "int64")
	return def
}

// MayFloat64 returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayFloat64(key string, def float64) float64 {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	c.invalid(key, s, def, "float64")
	return def
}

// MayBool returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayBool(key string, def bool) bool {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	if v, err := strconv.ParseBool(s); err == nil {
		return v
	}
	c.invalid(key, s, def, "bool")
	return def
}

// MayDuration returns the value or def if missing/empty; logs and returns def if invalid
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	c.invalid(key, s, def, "duration")
	return def
}

// MayCSV splits a comma-separated value into trimmed parts; def if missing or all blank
func (c Conf) MayCSV(key string, def []string) []string {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

// MayEnum ensures value is one of allowed; returns def if empty; panics if invalid
func (c Conf) MayEnum(key, def string, allowed ...string) string {
	v := c.MayString(key, def)
	if v == "" {
		return v
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return strings.ToLower(a)
		}
	}
	logger.Get().Panic().Str("key", c.Key(key)).Str("value", v).Strs("allowed", allowed).Msg("invalid enum value")
	return ""
}
