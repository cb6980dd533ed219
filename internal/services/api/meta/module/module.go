// Package module wires meta endpoints into the API using a tiny module
package module

import (
	"time"

	"articlestats/internal/core/lexicon"
	modkit "articlestats/internal/modkit"
	"articlestats/internal/modkit/httpkit"

	metahttp "articlestats/internal/services/api/meta/http"
)

// Module implements the modkit.Module interface
type Module struct {
	built     modkit.Built
	deps      metahttp.Deps
	startedAt time.Time
}

// New constructs a meta module with the provided dependencies and options
func New(deps modkit.Deps, lex lexicon.Sizes, opts ...modkit.Option) modkit.Module {
	b := modkit.Build(append([]modkit.Option{
		modkit.WithName("meta"),
		modkit.WithPrefix("/meta"),
	}, opts...)...)

	m := &Module{built: b, startedAt: time.Now()}
	m.deps = metahttp.Deps{
		ServiceName: "articlestats-api",
		StartedAt:   m.startedAt,
		PG:          deps.PG,
		CH:          deps.CH,
		KV:          deps.KV,
		Lexicon:     lex,
	}
	return m
}

// MountRoutes implements the modkit.Module interface
func (m *Module) MountRoutes(r httpkit.Router) {
	m.built.Mount(r, func(rr httpkit.Router) {
		metahttp.Register(rr, m.deps)
	})
}

// Name implements the modkit.Module interface
func (m *Module) Name() string { return m.built.Name }

// Ports implements the modkit.Module interface
func (m *Module) Ports() any { return m.built.Ports }
