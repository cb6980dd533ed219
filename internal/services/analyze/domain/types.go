// Package domain defines the analyze ports and rows
package domain

import (
	"context"

	"articlestats/internal/core/metrics"
	artdom "articlestats/internal/services/articles/domain"
)

// Row is one scored article, written as one output line
type Row struct {
	artdom.Source
	Metrics metrics.Metrics `json:"metrics"`
}

// Values returns URL_ID, URL and the statistics in metrics.Columns order
func (r Row) Values() []any {
	return append([]any{r.ID, r.URL}, r.Metrics.Values()...)
}

// AnalyzerPort scores texts and saved articles
type AnalyzerPort interface {
	AnalyzeText(text string) metrics.Metrics
	AnalyzeSources(ctx context.Context, srcs []artdom.Source) ([]Row, error)
	AnalyzeStored(ctx context.Context) ([]Row, error)
}

// Ports the analyze module needs from other modules
type Ports struct {
	Store artdom.StorePort
}
