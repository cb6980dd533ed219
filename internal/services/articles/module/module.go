// Package module wires the articles store into the module graph
package module

import (
	"articlestats/internal/modkit"
	"articlestats/internal/modkit/httpkit"
	"articlestats/internal/services/articles/domain"
	"articlestats/internal/services/articles/repo"
	"articlestats/internal/services/articles/service"
)

// Ports exposed by the articles module
type Ports struct {
	Store domain.StorePort
}

// Module implements modkit.Module
type Module struct {
	ports Ports
}

// Override adjusts options after they are read from config, e.g. from cli flags
type Override func(*Options)

// New builds the module; the redis cache is used when deps.KV is set
func New(deps modkit.Deps, overrides ...Override) *Module {
	opts := FromConfig(deps.Cfg)
	for _, o := range overrides {
		o(&opts)
	}
	var cache domain.TextCache
	if deps.KV != nil {
		cache = repo.NewCache(deps.KV)
	}
	svc := service.New(repo.NewDir(opts.Dir), cache, service.Config{CacheTTL: opts.CacheTTL})
	return &Module{ports: Ports{Store: svc}}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "articles" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(httpkit.Router) {}
