package module

import "articlestats/internal/platform/config"

// Options holds configuration settings for the analyze module
type Options struct {
	Workers          int
	MasterDictionary string
	StopWords        string
	ExactCase        bool
}

// FromConfig reads CORE_ANALYZE_*
func FromConfig(cfg config.Conf) Options {
	c := cfg.Prefix("CORE_ANALYZE_")
	return Options{
		Workers:          c.MayInt("WORKERS", 4),
		MasterDictionary: c.MayPath("MASTER_DICTIONARY", "MasterDictionary"),
		StopWords:        c.MayPath("STOP_WORDS", "StopWords"),
		ExactCase:        c.MayBool("EXACT_CASE", false),
	}
}
