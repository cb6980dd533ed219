// Package module implements the fetch module
package module

import (
	"articlestats/internal/adapters/web"
	"articlestats/internal/modkit"
	"articlestats/internal/modkit/httpkit"
	"articlestats/internal/services/fetch/domain"
	"articlestats/internal/services/fetch/service"
)

// Ports exposed by the fetch module
type Ports struct {
	Fetcher domain.FetcherPort
}

// Module implements modkit.Module
type Module struct {
	ports Ports
}

// Override adjusts options after they are read from config
type Override func(*Options)

// New constructs the fetch module; it needs WithPorts(fetch/domain.Ports)
func New(deps modkit.Deps, overrides []Override, opts ...modkit.Option) *Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("fetch"),
	}, opts...)...)

	ports, ok := b.Ports.(domain.Ports)
	if !ok {
		panic("fetch module: expected WithPorts(fetch/domain.Ports)")
	}
	if ports.Store == nil {
		panic("fetch module: Ports missing Store")
	}

	cfg := FromConfig(deps.Cfg)
	for _, o := range overrides {
		o(&cfg)
	}

	retries := cfg.MaxRetries
	if retries == 0 {
		retries = -1
	}
	client := web.NewClient(web.Options{
		Timeout:    cfg.Timeout,
		MaxRetries: retries,
		MaxBytes:   cfg.MaxBytes,
		UserAgents: cfg.UserAgents,
	})
	svc := service.New(client, ports.Store, service.Config{
		Workers:       cfg.Workers,
		Delay:         cfg.Delay,
		ProgressEvery: cfg.ProgressEvery,
	})
	return &Module{ports: Ports{Fetcher: svc}}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "fetch" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(httpkit.Router) {}
