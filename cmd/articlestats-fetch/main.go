// Command articlestats-fetch downloads and saves article texts without scoring them
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"articlestats/internal/modkit"
	"articlestats/internal/modkit/module"
	"articlestats/internal/modkit/repokit"
	"articlestats/internal/platform/config"
	"articlestats/internal/platform/logger"
	"articlestats/internal/platform/store"
	articlesmod "articlestats/internal/services/articles/module"
	fetchmod "articlestats/internal/services/fetch/module"
	pipedom "articlestats/internal/services/pipeline/domain"
	pipemod "articlestats/internal/services/pipeline/module"
)

func main() {
	var (
		input     = flag.String("input", "Input.xlsx", "workbook with URL_ID and URL columns")
		feedURL   = flag.String("feed", "", "rss or atom feed to read sources from instead of -input")
		feedLimit = flag.Int("feed-limit", 0, "max feed items (0 = all)")
		articles  = flag.String("articles", "", "dir to save texts into")
		workers   = flag.Int("workers", 0, "concurrent downloads (0 = CORE_FETCH_WORKERS)")
		delay     = flag.Duration("delay", -1, "pause after each download (<0 = CORE_FETCH_DELAY)")
	)
	flag.Parse()

	root := config.New()
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// only the redis text cache matters here
	cfg := store.ConfigFromEnv(root, "fetch")
	cfg.PG.Enabled, cfg.CH.Enabled = false, false
	st, err := store.Open(ctx, cfg, store.WithLogger(*l))
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	pm, err := pipemod.New(modkit.FromStore(*l, root, st), nil, pipemod.Overrides{
		Articles: []articlesmod.Override{func(o *articlesmod.Options) {
			if *articles != "" {
				o.Dir = *articles
			}
		}},
		Fetch: []fetchmod.Override{func(o *fetchmod.Options) {
			if *workers > 0 {
				o.Workers = *workers
			}
			if *delay >= 0 {
				o.Delay = *delay
			}
		}},
	})
	if err != nil {
		l.Fatal().Err(err).Msg("pipeline setup failed")
	}
	module.Register(pm.Name(), pm.Ports())

	sum, err := module.MustPortsOf[pipemod.Ports](pm).Runner.Run(ctx, pipedom.Options{
		Input:     *input,
		Feed:      *feedURL,
		FeedLimit: *feedLimit,
		Refetch:   true,
		FetchOnly: true,
	})
	if err != nil {
		l.Fatal().Err(err).Msg("fetch failed")
	}
	l.Info().Int("fetched", sum.Fetched).Int("failed", sum.Failed).Msg("done")
}
