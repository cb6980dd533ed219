// Package service implements the pipeline: read sources, fetch or reuse texts, analyze, publish
package service

import (
	"context"
	"time"

	"articlestats/internal/adapters/feed"
	"articlestats/internal/adapters/sheet"
	perr "articlestats/internal/platform/errors"
	"articlestats/internal/platform/logger"
	anadom "articlestats/internal/services/analyze/domain"
	artdom "articlestats/internal/services/articles/domain"
	fetchdom "articlestats/internal/services/fetch/domain"
	"articlestats/internal/services/pipeline/domain"
	repdom "articlestats/internal/services/report/domain"
)

// Inputs are the source readers; zero fields fall back to the sheet and feed adapters
type Inputs struct {
	Sheet func(path string) ([]artdom.Source, error)
	Feed  func(ctx context.Context, url string, limit int) ([]artdom.Source, error)
}

// Service implements domain.RunnerPort
type Service struct {
	Store     artdom.StorePort
	Fetcher   fetchdom.FetcherPort
	Analyzer  anadom.AnalyzerPort
	Publisher repdom.PublisherPort
	In        Inputs
}

// New constructs the pipeline over the module ports
func New(store artdom.StorePort, f fetchdom.FetcherPort, a anadom.AnalyzerPort, p repdom.PublisherPort) *Service {
	return &Service{
		Store:     store,
		Fetcher:   f,
		Analyzer:  a,
		Publisher: p,
		In: Inputs{
			Sheet: sheet.ReadSources,
			Feed: func(ctx context.Context, url string, limit int) ([]artdom.Source, error) {
				return feed.Sources(ctx, url, feed.Options{Limit: limit})
			},
		},
	}
}

// Run reads the sources, then either analyzes the texts already saved or fetches them first, then publishes
// saved texts are reused when the articles dir is non-empty, unless o.Refetch is set
func (s *Service) Run(ctx context.Context, o domain.Options) (domain.Summary, error) {
	source := o.Input
	if o.Feed != "" {
		source = o.Feed
	}
	run := repdom.NewRun(source)
	ctx = logger.WithRun(ctx, run.ID.String())
	log := logger.C(ctx).With().Str("component", "pipeline").Logger()
	started := time.Now()

	var sum domain.Summary
	srcs, err := s.sources(ctx, o)
	if err != nil {
		return sum, err
	}
	sum.Sources = len(srcs)

	empty, err := s.Store.Empty(ctx)
	if err != nil {
		return sum, perr.Wrapf(err, perr.ErrorCodeUnknown, "inspect %s", s.Store.Dir())
	}
	sum.Mode = domain.ModeFetch
	if !empty && !o.Refetch {
		sum.Mode = domain.ModeExisting
	}
	if o.AnalyzeOnly {
		if empty {
			return sum, perr.NotFoundf("no saved texts in %s", s.Store.Dir())
		}
		sum.Mode = domain.ModeExisting
	}
	log.Info().
		Str("mode", string(sum.Mode)).
		Int("sources", len(srcs)).
		Str("dir", s.Store.Dir()).
		Msg("run started")

	if sum.Mode == domain.ModeFetch {
		if len(srcs) == 0 {
			return sum, perr.InvalidArgf("no sources to fetch; pass an input workbook or a feed")
		}
		outs := s.Fetcher.FetchAll(ctx, srcs)
		for _, out := range outs {
			if out.Err != nil {
				sum.Failed++
			} else {
				sum.Fetched++
			}
		}
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		log.Info().Int("fetched", sum.Fetched).Int("failed", sum.Failed).Msg("fetch done")
		if o.FetchOnly {
			return sum, nil
		}
	}

	var rows []anadom.Row
	if len(srcs) == 0 {
		rows, err = s.Analyzer.AnalyzeStored(ctx)
	} else {
		rows, err = s.Analyzer.AnalyzeSources(ctx, srcs)
	}
	if err != nil {
		if ctx.Err() != nil || len(rows) == 0 {
			return sum, err
		}
		log.Warn().Err(err).Int("rows", len(rows)).Msg("some texts could not be read; publishing the rest")
	}
	sum.Analyzed = len(rows)

	sum.Report, err = s.Publisher.Publish(ctx, run, rows)
	sum.Published = err == nil
	log.Info().
		Int("rows", sum.Analyzed).
		Str("output", sum.Report.Output).
		Strs("sinks", sum.Report.Sinks).
		Dur("elapsed", time.Since(started)).
		Msg("run finished")
	return sum, err
}

func (s *Service) sources(ctx context.Context, o domain.Options) ([]artdom.Source, error) {
	switch {
	case o.Feed != "":
		return s.In.Feed(ctx, o.Feed, o.FeedLimit)
	case o.Input != "":
		return s.In.Sheet(o.Input)
	default:
		return nil, nil
	}
}
