// Command articlestats-analyze scores the texts already saved in the articles dir and writes the output workbook
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
	pipedom "articlestats/internal/services/pipeline/domain"
	pipemod "articlestats/internal/services/pipeline/module"
	reportmod "articlestats/internal/services/report/module"
	"articlestats/internal/services/report/repo"
)

func main() {
	var (
		input     = flag.String("input", "Input.xlsx", "workbook with URL_ID and URL columns; empty scores every saved text")
		articles  = flag.String("articles", "", "dir holding one text file per article")
		dict      = flag.String("dict", "", "dir with positive-words.txt and negative-words.txt")
		stopwords = flag.String("stopwords", "", "dir of stop word lists")
		output    = flag.String("output", "", "output workbook path; default CORE_REPORT_OUTPUT or output.xlsx")
		workers   = flag.Int("workers", 0, "concurrent analyses (0 = CORE_ANALYZE_WORKERS)")
		exact     = flag.Bool("exact-lexicon", false, "match word lists case-sensitively")
	)
	flag.Parse()

	root := config.New()
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	st, err := store.Open(ctx, store.ConfigFromEnv(root, "analyze"), store.WithLogger(*l))
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

	pm, err := pipemod.New(modkit.FromStore(*l, root, st), up, pipemod.Overrides{
		Articles: []articlesmod.Override{func(o *articlesmod.Options) {
			if *articles != "" {
				o.Dir = *articles
			}
		}},
		Analyze: []analyzemod.Override{func(o *analyzemod.Options) {
			if *dict != "" {
				o.MasterDictionary = *dict
			}
			if *stopwords != "" {
				o.StopWords = *stopwords
			}
			if *workers > 0 {
				o.Workers = *workers
			}
			o.ExactCase = o.ExactCase || *exact
		}},
		Report: []reportmod.Override{func(o *reportmod.Options) {
			if *output != "" {
				o.Output = *output
			}
		}},
	})
	if err != nil {
		l.Fatal().Err(err).Msg("pipeline setup failed")
	}
	module.Register(pm.Name(), pm.Ports())

	sum, err := module.MustPortsOf[pipemod.Ports](pm).Runner.Run(ctx, pipedom.Options{Input: *input, AnalyzeOnly: true})
	if err != nil {
		l.Fatal().Err(err).Msg("analysis failed")
	}
	l.Info().Int("rows", sum.Analyzed).Str("output", sum.Report.Output).Strs("sinks", sum.Report.Sinks).Msg("done")
}
