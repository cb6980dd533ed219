// Package api provides the HTTP API for the application
package api

import (
	"articlestats/internal/platform/config"
	"articlestats/internal/platform/logger"
	phttp "articlestats/internal/platform/net/http"
	"articlestats/internal/platform/net/middleware"
	"articlestats/internal/platform/store"

	"articlestats/internal/modkit"
	"articlestats/internal/modkit/httpkit"
	"articlestats/internal/modkit/module"
	"articlestats/internal/modkit/swaggerkit"

	analyzemod "articlestats/internal/services/analyze/module"
	anaapi "articlestats/internal/services/api/analyze/module"
	metamod "articlestats/internal/services/api/meta/module"
	articlesmod "articlestats/internal/services/articles/module"
	fetchmod "articlestats/internal/services/fetch/module"

	anadom "articlestats/internal/services/analyze/domain"
	fetchdom "articlestats/internal/services/fetch/domain"
)

// Options are the API options
type Options struct {
	Config         config.Conf
	Store          *store.Store
	EnableSwagger  bool
	EnableProfiler bool
}

// Mount builds the modules and mounts the API onto r
// it fails when the word lists cannot be loaded
func Mount(r phttp.Router, opt Options) error {
	deps := modkit.FromStore(*logger.Get(), opt.Config, opt.Store)

	articles := articlesmod.New(deps)
	texts := module.MustPortsOf[articlesmod.Ports](articles).Store

	fetch := fetchmod.New(deps, []fetchmod.Override{
		// a request should not sit behind a politeness pause
		func(o *fetchmod.Options) { o.Delay = 0 },
	}, modkit.WithPorts(fetchdom.Ports{Store: texts}))

	analyze, err := analyzemod.New(deps, nil, modkit.WithPorts(anadom.Ports{Store: texts}))
	if err != nil {
		return err
	}
	ap := module.MustPortsOf[analyzemod.Ports](analyze)
	fp := module.MustPortsOf[fetchmod.Ports](fetch)

	mods := []module.Module{
		articles,
		fetch,
		analyze,
		metamod.New(deps, ap.Lexicon),
		anaapi.New(modkit.WithPorts(anaapi.Ports{Analyzer: ap.Analyzer, Fetcher: fp.Fetcher})),
	}

	api := opt.Config.Prefix("CORE_API_")
	stack := httpkit.CommonStack(httpkit.StackOptions{
		Timeout:     api.MayDuration("REQUEST_TIMEOUT", 0),
		SlowRequest: api.MayDuration("SLOW_REQUEST", 0),
		MaxInFlight: api.MayInt("MAX_INFLIGHT", 64),
		CORS: middleware.CORSOptions{
			AllowedOrigins: api.MayCSV("CORS_ORIGINS", nil),
		},
	})

	swaggerkit.Mount(r, opt.EnableSwagger)
	phttp.MountProfiler(r, "/debug", opt.EnableProfiler)

	httpkit.MountAPIV1(r, stack, func(sub httpkit.Router) {
		for _, m := range mods {
			module.Register(m.Name(), m.Ports())
			m.MountRoutes(sub)
		}
	})
	return nil
}
