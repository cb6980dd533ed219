// Package module implements the report module
package module

import (
	"articlestats/internal/modkit"
	"articlestats/internal/modkit/httpkit"
	"articlestats/internal/services/report/domain"
	"articlestats/internal/services/report/repo"
	"articlestats/internal/services/report/service"
)

// Ports exposed by the report module
type Ports struct {
	Publisher domain.PublisherPort
	Sinks     []string
}

// Module implements modkit.Module
type Module struct {
	ports Ports
}

// Override adjusts options after they are read from config
type Override func(*Options)

// New constructs the report module; PG and CH sinks follow the configured store seams
// an uploader (e.g. *blob.Store) adds the S3 sink
func New(deps modkit.Deps, up repo.Uploader, overrides ...Override) *Module {
	cfg := FromConfig(deps.Cfg)
	for _, o := range overrides {
		o(&cfg)
	}

	var sinks []domain.Sink
	if cfg.PG && deps.PG != nil {
		sinks = append(sinks, repo.NewPGSink(deps.PG, cfg.StatementTimeout))
	}
	if cfg.CH && deps.CH != nil {
		sinks = append(sinks, repo.NewCHSink(deps.CH))
	}
	if up != nil {
		sinks = append(sinks, repo.NewS3Sink(up))
	}
	names := make([]string, len(sinks))
	for i, s := range sinks {
		names[i] = s.Name()
	}

	svc := service.New(service.Config{Output: cfg.Output}, sinks...)
	return &Module{ports: Ports{Publisher: svc, Sinks: names}}
}

// Name satisfies modkit.Module
func (m *Module) Name() string { return "report" }

// Ports satisfies modkit.Module
func (m *Module) Ports() any { return m.ports }

// MountRoutes satisfies modkit.Module
func (m *Module) MountRoutes(httpkit.Router) {}
