// Package service implements the analyze service
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"articlestats/internal/core/metrics"
	perr "articlestats/internal/platform/errors"
	"articlestats/internal/platform/logger"
	"articlestats/internal/services/analyze/domain"
	artdom "articlestats/internal/services/articles/domain"
)

// Config for the analyze service
type Config struct {
	Workers int
}

// Service implements domain.AnalyzerPort
type Service struct {
	Store artdom.StorePort
	An    *metrics.Analyzer
	Cfg   Config
}

// New constructs the analyze service over a loaded lexicon
func New(store artdom.StorePort, lx metrics.Lexicon, cfg Config) *Service {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	return &Service{Store: store, An: metrics.New(lx), Cfg: cfg}
}

// AnalyzeText scores a single text
func (s *Service) AnalyzeText(text string) metrics.Metrics { return s.An.Analyze(text) }

// AnalyzeSources scores the saved text of every source, keeping input order
// a source with no saved text is skipped with a warning; other read errors are skipped and returned joined
func (s *Service) AnalyzeSources(ctx context.Context, srcs []artdom.Source) ([]domain.Row, error) {
	log := logger.C(ctx).With().Str("component", "analyze").Logger()
	started := time.Now()

	rows := make([]*domain.Row, len(srcs))
	errs := make([]error, len(srcs))

	sem := make(chan struct{}, s.Cfg.Workers)
	wg := sync.WaitGroup{}
	for i := range srcs {
		if ctx.Err() != nil {
			break
		}
		wg.Add(1)
		sem <- struct{}{}
		go func(i int) {
			defer func() { <-sem; wg.Done() }()
			src := srcs[i]
			text, err := s.Store.Load(ctx, src.ID)
			switch {
			case perr.IsCode(err, perr.ErrorCodeNotFound):
				log.Warn().Str("url_id", src.ID).Str("dir", s.Store.Dir()).Msg("no saved text; skipping")
				return
			case err != nil:
				log.Error().Err(err).Str("url_id", src.ID).Msg("read failed; skipping")
				errs[i] = err
				return
			}
			rows[i] = &domain.Row{Source: src, Metrics: s.An.Analyze(text)}
		}(i)
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]domain.Row, 0, len(srcs))
	for _, r := range rows {
		if r != nil {
			out = append(out, *r)
		}
	}
	log.Info().
		Int("sources", len(srcs)).
		Int("rows", len(out)).
		Dur("elapsed", time.Since(started)).
		Msg("analysis done")
	return out, errors.Join(errs...)
}

// AnalyzeStored scores every saved text in id order; rows carry no URL
func (s *Service) AnalyzeStored(ctx context.Context) ([]domain.Row, error) {
	ids, err := s.Store.IDs(ctx)
	if err != nil {
		return nil, err
	}
	srcs := make([]artdom.Source, len(ids))
	for i, id := range ids {
		srcs[i] = artdom.Source{ID: id}
	}
	return s.AnalyzeSources(ctx, srcs)
}
