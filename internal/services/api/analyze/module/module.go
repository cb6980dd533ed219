// Package module wires the analyze endpoints into the API
package module

import (
	modkit "articlestats/internal/modkit"
	"articlestats/internal/modkit/httpkit"
	anadom "articlestats/internal/services/analyze/domain"
	anahttp "articlestats/internal/services/api/analyze/http"
	fetchdom "articlestats/internal/services/fetch/domain"
)

// Ports the analyze API module needs
type Ports struct {
	Analyzer anadom.AnalyzerPort
	Fetcher  fetchdom.FetcherPort
}

// Module implements the modkit.Module interface
type Module struct {
	built modkit.Built
	ports Ports
}

// New constructs the module; it needs WithPorts(Ports)
func New(opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("analyze-api"),
		modkit.WithPrefix("/analyze"),
	}, opts...)...)

	ports, ok := b.Ports.(Ports)
	if !ok {
		panic("analyze api module: expected WithPorts(module.Ports)")
	}
	if ports.Analyzer == nil || ports.Fetcher == nil {
		panic("analyze api module: Ports missing Analyzer or Fetcher")
	}
	return &Module{built: b, ports: ports}
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		anahttp.Register(rr, m.ports.Analyzer, m.ports.Fetcher)
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.built.Name }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return m.ports }
