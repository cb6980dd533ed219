// Command articlestats fetches the articles listed in a workbook or feed, scores them and writes the output workbook
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"articlestats/internal/adapters/blob"
	"articlestats/internal/modkit"
	"articlestats/internal/modkit/module"
	"articlestats/internal/modkit/repokit"
	"articlestats/internal/platform/config"
	"articlestats/internal/platform/logger"
	"articlestats/internal/platform/store"
	analyzemod "articlestats/internal/services/analyze/module"
	articlesmod "articlestats/internal/services/articles/module"
	fetchmod "articlestats/internal/services/fetch/module"
	pipedom "articlestats/internal/services/pipeline/domain"
	pipemod "articlestats/internal/services/pipeline/module"
	reportmod "articlestats/internal/services/report/module"
	"articlestats/internal/services/report/repo"
)

func main() {
	var (
		input     = flag.String("input", "Input.xlsx", "workbook with URL_ID and URL columns")
		feedURL   = flag.String("feed", "", "rss or atom feed to read sources from instead of -input")
		feedLimit = flag.Int("feed-limit", 0, "max feed items (0 = all)")
		articles  = flag.String("articles", "", "dir holding one text file per article")
		dict      = flag.String("dict", "", "dir with positive-words.txt and negative-words.txt")
		stopwords = flag.String("stopwords", "", "dir of stop word lists")
		output    = flag.String("output", "", "output workbook path; default CORE_REPORT_OUTPUT or output.xlsx")
		workers   = flag.Int("workers", 0, "concurrent downloads (0 = CORE_FETCH_WORKERS)")
		refetch   = flag.Bool("refetch", false, "download even when the articles dir already has texts")
		exact     = flag.Bool("exact-lexicon", false, "match word lists case-sensitively")
	)
	flag.Parse()

	root := config.New()
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, store.ConfigFromEnv(root, "pipeline"), store.WithLogger(*l))
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	var up repo.Uploader
	if s3cfg := blob.ConfigFromEnv(root); s3cfg.Enabled() {
		b, err := blob.New(ctx, s3cfg)
		if err != nil {
			l.Fatal().Err(err).Msg("s3 setup failed")
		}
		up = b
	}

	// flags win over CORE_* env
	ov := pipemod.Overrides{
		Articles: []articlesmod.Override{func(o *articlesmod.Options) {
			if *articles != "" {
				o.Dir = *articles
			}
		}},
		Fetch: []fetchmod.Override{func(o *fetchmod.Options) {
			if *workers > 0 {
				o.Workers = *workers
			}
		}},
		Analyze: []analyzemod.Override{func(o *analyzemod.Options) {
			if *dict != "" {
				o.MasterDictionary = *dict
			}
			if *stopwords != "" {
				o.StopWords = *stopwords
			}
			o.ExactCase = o.ExactCase || *exact
		}},
		Report: []reportmod.Override{func(o *reportmod.Options) {
			if *output != "" {
				o.Output = *output
			}
		}},
	}

	pm, err := pipemod.New(modkit.FromStore(*l, root, st), up, ov)
	if err != nil {
		l.Fatal().Err(err).Msg("pipeline setup failed")
	}
	for _, m := range pm.Parts() {
		module.Register(m.Name(), m.Ports())
	}
	module.Register(pm.Name(), pm.Ports())

	ports := module.MustPortsOf[pipemod.Ports](pm)
	sum, err := ports.Runner.Run(ctx, pipedom.Options{
		Input:     *input,
		Feed:      *feedURL,
		FeedLimit: *feedLimit,
		Refetch:   *refetch,
	})
	if err != nil {
		l.Fatal().Err(err).Msg("run failed")
	}
	l.Info().
		Str("mode", string(sum.Mode)).
		Int("sources", sum.Sources).
		Int("failed", sum.Failed).
		Int("rows", sum.Analyzed).
		Str("output", sum.Report.Output).
		Msg("done")
}
