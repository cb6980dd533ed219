// Package domain defines the fetch ports and results
package domain

import (
	"context"

	"articlestats/internal/adapters/web"
	artdom "articlestats/internal/services/articles/domain"
)

// Outcome is the result of fetching one Source; Err is set when Article.Text is empty because of a failure
type Outcome struct {
	Article artdom.Article
	Err     error
}

// FetcherPort downloads and extracts articles
type FetcherPort interface {
	FetchOne(ctx context.Context, url string) (artdom.Article, error)
	FetchAll(ctx context.Context, srcs []artdom.Source) []Outcome
}

// Getter is the page download seam; *web.Client satisfies it
type Getter interface {
	Get(ctx context.Context, url string) (web.Page, error)
}

// Ports the fetch module needs from other modules
type Ports struct {
	Store artdom.StorePort
}
