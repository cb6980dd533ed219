// Package service implements the fetch service
package service

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"articlestats/internal/core/extract"
	perr "articlestats/internal/platform/errors"
	"articlestats/internal/platform/logger"
	artdom "articlestats/internal/services/articles/domain"
	"articlestats/internal/services/fetch/domain"

	"golang.org/x/sync/errgroup"
)

// Config for the fetch service
type Config struct {
	Workers       int
	Delay         time.Duration // pause per worker after each request
	ProgressEvery int
}

// Service implements domain.FetcherPort
type Service struct {
	Web   domain.Getter
	Store artdom.StorePort
	Cfg   Config
}

// New constructs the fetch service
func New(web domain.Getter, store artdom.StorePort, cfg Config) *Service {
	if cfg.Workers <= 0 {
		cfg.Workers = 20
	}
	if cfg.Delay < 0 {
		cfg.Delay = 0
	}
	if cfg.ProgressEvery <= 0 {
		cfg.ProgressEvery = 10
	}
	return &Service{Web: web, Store: store, Cfg: cfg}
}

// FetchOne returns the formatted article text for url, from the cache when possible
func (s *Service) FetchOne(ctx context.Context, url string) (artdom.Article, error) {
	a := artdom.Article{Source: artdom.Source{URL: url}}
	if s.Store != nil {
		if text, ok := s.Store.Cached(ctx, url); ok {
			a.Text, a.Cached = text, true
			if title, _, found := strings.Cut(text, "\n\n"); found {
				a.Title = title
			}
			return a, nil
		}
	}

	page, err := s.Web.Get(ctx, url)
	if err != nil {
		return a, err
	}
	base := page.FinalURL
	if base == "" {
		base = url
	}
	ex, err := extract.Extract(page.Body, base)
	if err != nil {
		return a, perr.WithOp(err, "extract "+url)
	}
	a.Title, a.Method, a.Text = ex.Title, string(ex.Method), extract.Format(ex)
	if s.Store != nil {
		s.Store.Remember(ctx, url, a.Text)
	}
	return a, nil
}

// FetchAll fetches every source with bounded concurrency and saves each text
// results keep the input order; a failed fetch saves an empty text and carries the error
func (s *Service) FetchAll(ctx context.Context, srcs []artdom.Source) []domain.Outcome {
	log := logger.C(ctx).With().Str("component", "fetch").Logger()
	out := make([]domain.Outcome, len(srcs))

	var done, failed atomic.Int64
	total := len(srcs)
	started := time.Now()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.Cfg.Workers)
	for i, src := range srcs {
		i, src := i, src
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				out[i] = domain.Outcome{Article: artdom.Article{Source: src}, Err: err}
				return nil
			}
			a, err := s.FetchOne(gctx, src.URL)
			a.Source = src
			if err != nil {
				failed.Add(1)
				a.Text, a.Title, a.Method = "", "", ""
				log.Warn().Err(err).Str("url_id", src.ID).Str("url", src.URL).Int("status", perr.StatusOf(err)).Msg("fetch failed; saving empty text")
			}
			if serr := s.Store.Save(gctx, src, a.Text); serr != nil {
				log.Error().Err(serr).Str("url_id", src.ID).Msg("save failed")
				if err == nil {
					err = serr
				}
			}
			out[i] = domain.Outcome{Article: a, Err: err}

			if n := done.Add(1); n%int64(s.Cfg.ProgressEvery) == 0 || int(n) == total {
				log.Info().
					Int64("done", n).
					Int("total", total).
					Int64("failed", failed.Load()).
					Dur("elapsed", time.Since(started)).
					Msg("fetch progress")
			}
			pause(gctx, s.Cfg.Delay)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}

// Failed returns the outcomes that carry an error
func Failed(outs []domain.Outcome) []domain.Outcome {
	var bad []domain.Outcome
	for _, o := range outs {
		if o.Err != nil {
			bad = append(bad, o)
		}
	}
	return bad
}
