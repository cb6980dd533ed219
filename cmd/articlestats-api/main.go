// @title         articlestats API
// @version       0.1.0
// @description   Score article texts and urls

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"articlestats/internal/modkit/repokit"
	"articlestats/internal/platform/config"
	"articlestats/internal/platform/logger"
	phttp "articlestats/internal/platform/net/http"
	"articlestats/internal/platform/store"
	"articlestats/internal/services/api"
)

func main() {
	root := config.New()
	apiCfg := root.Prefix("CORE_API_")
	l := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// every backend is optional; /meta/ready reports the ones that are configured
	st, err := store.Open(ctx, store.ConfigFromEnv(root, "api"), store.WithLogger(*l))
	if err != nil {
		l.Fatal().Err(err).Msg("store.Open failed")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	repokit.MustGuard(ctx, st)

	srv := phttp.NewServer(apiCfg)
	if err := api.Mount(srv.Router(), api.Options{
		Config:         root,
		Store:          st,
		EnableSwagger:  apiCfg.MayBool("SWAGGER", true),
		EnableProfiler: apiCfg.MayBool("PROFILER", false),
	}); err != nil {
		l.Fatal().Err(err).Msg("api setup failed")
	}

	if err := srv.Run(ctx); err != nil {
		l.Fatal().Err(err).Msg("http server stopped")
	}
}
