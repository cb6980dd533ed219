// Package module implements the analyze module
package module

import (
	"articlestats/internal/core/lexicon"
	"articlestats/internal/modkit"
	"articlestats/internal/modkit/httpkit"
	"articlestats/internal/services/analyze/domain"
	"articlestats/internal/services/analyze/service"
)

// Ports exposed by the analyze module
type Ports struct {
	Analyzer domain.AnalyzerPort
	Lexicon  lexicon.Sizes
}

// Module implements modkit.Module
type Module struct {
	ports Ports
}

// Override adjusts options after they are read from config
type Override func(*Options)

// New loads the word lists and constructs the analyze module; it needs WithPorts(analyze/domain.Ports)
func New(deps modkit.Deps, overrides []Override, opts ...modkit.Option) (*Module, error) {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("analyze"),
	}, opts...)...)

	ports, ok := b.Ports.(domain.Ports)
	if !ok {
		panic("analyze module: expected WithPorts(analyze/domain.Ports)")
	}

	cfg := FromConfig(deps.Cfg)
	for _, o := range overrides {
		o(&cfg)
	}

	lx, err := lexicon.Load(lexicon.Options{
		MasterDictionary: cfg.MasterDictionary,
		StopWords:        cfg.StopWords,
		ExactCase:        cfg.ExactCase,
	})
	if err != nil {
		return nil, err
	}
	svc := service.New(ports.Store, lx, service.Config{Workers: cfg.Workers})
	return &Module{ports: Ports{Analyzer: svc, Lexicon: lx.Sizes()}}, nil
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "analyze" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(httpkit.Router) {}
