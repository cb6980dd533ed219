// Package module assembles the articles, fetch, analyze and report modules into one runner
package module

import (
	"articlestats/internal/modkit"
	"articlestats/internal/modkit/httpkit"
	"articlestats/internal/modkit/module"
	anadom "articlestats/internal/services/analyze/domain"
	analyzemod "articlestats/internal/services/analyze/module"
	articlesmod "articlestats/internal/services/articles/module"
	fetchdom "articlestats/internal/services/fetch/domain"
	fetchmod "articlestats/internal/services/fetch/module"
	"articlestats/internal/services/pipeline/domain"
	"articlestats/internal/services/pipeline/service"
	reportmod "articlestats/internal/services/report/module"
	"articlestats/internal/services/report/repo"
)

// Ports exposed by the pipeline module
type Ports struct {
	Runner domain.RunnerPort
	Sinks  []string
}

// Overrides are per module option overrides, usually built from cli flags
type Overrides struct {
	Articles []articlesmod.Override
	Fetch    []fetchmod.Override
	Analyze  []analyzemod.Override
	Report   []reportmod.Override
}

// Module implements modkit.Module
type Module struct {
	ports Ports
	parts []module.Module
}

// New builds the dependency modules and the runner over their ports
// up may be nil, in which case nothing is uploaded
func New(deps modkit.Deps, up repo.Uploader, ov Overrides) (*Module, error) {
	articles := articlesmod.New(deps, ov.Articles...)
	texts := module.MustPortsOf[articlesmod.Ports](articles).Store

	fetch := fetchmod.New(deps, ov.Fetch, modkit.WithPorts(fetchdom.Ports{Store: texts}))
	analyze, err := analyzemod.New(deps, ov.Analyze, modkit.WithPorts(anadom.Ports{Store: texts}))
	if err != nil {
		return nil, err
	}
	report := reportmod.New(deps, up, ov.Report...)
	rp := module.MustPortsOf[reportmod.Ports](report)

	runner := service.New(
		texts,
		module.MustPortsOf[fetchmod.Ports](fetch).Fetcher,
		module.MustPortsOf[analyzemod.Ports](analyze).Analyzer,
		rp.Publisher,
	)
	return &Module{
		ports: Ports{Runner: runner, Sinks: rp.Sinks},
		parts: []module.Module{articles, fetch, analyze, report},
	}, nil
}

// Parts returns the dependency modules in build order
func (m *Module) Parts() []module.Module { return m.parts }

// Name satisfies modkit.Module
func (m *Module) Name() string { return "pipeline" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(httpkit.Router) {}
