// Package domain defines pipeline options and summaries
package domain

import (
	"context"

	repdom "articlestats/internal/services/report/domain"
)

// Mode is how a run obtained its texts
type Mode string

// run modes
const (
	// ModeFetch downloads every source before analysis
	ModeFetch Mode = "fetch"
	// ModeExisting analyzes texts already saved in the articles dir
	ModeExisting Mode = "existing"
)

// Options for one run
type Options struct {
	Input     string // xlsx with URL_ID and URL columns
	Feed      string // rss or atom url, used instead of Input
	FeedLimit int
	Refetch   bool // fetch even when the articles dir already has texts
	FetchOnly bool // stop after saving texts
	// AnalyzeOnly never downloads; a run over an empty articles dir fails with NotFound
	AnalyzeOnly bool
}

// Summary reports what a run did
type Summary struct {
	Mode      Mode          `json:"mode"`
	Sources   int           `json:"sources"`
	Fetched   int           `json:"fetched"`
	Failed    int           `json:"failed"`
	Analyzed  int           `json:"analyzed"`
	Report    repdom.Result `json:"report"`
	Published bool          `json:"published"`
}

// RunnerPort runs the whole pipeline
type RunnerPort interface {
	Run(ctx context.Context, o Options) (Summary, error)
}
