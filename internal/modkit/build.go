package modkit

import (
	"net/http"
	"strings"

	"articlestats/internal/modkit/httpkit"
	pstrings "articlestats/internal/platform/strings"
)

// Built is a plain struct with the fields modules care about
type Built struct {
	Name     string
	Prefix   string
	Mw       []func(http.Handler) http.Handler
	Ports    any
	Register func(httpkit.Router)
}

// Build applies Option funcs and returns a plain struct
// a set Prefix is normalized to "/x"; modules without routes leave it empty
func Build(opts ...Option) Built {
	var c buildCfg
	for _, o := range opts {
		o(&c)
	}
	if c.register == nil {
		c.register = func(httpkit.Router) {}
	}
	prefix := c.prefix
	if strings.TrimSpace(prefix) != "" {
		prefix = pstrings.MustPrefix(prefix)
	}
	return Built{
		Name:     pstrings.MustString(c.name, "module name"),
		Prefix:   prefix,
		Mw:       append([]func(http.Handler) http.Handler(nil), c.mw...),
		Ports:    c.ports,
		Register: c.register,
	}
}

// Mount routes a module under its prefix with its middleware, then calls each register in order
// it panics when the module was built without a prefix
func (b Built) Mount(r httpkit.Router, register ...func(httpkit.Router)) {
	httpkit.MountUnder(r, pstrings.MustPrefix(b.Prefix), b.Mw, func(sub httpkit.Router) {
		for _, fn := range register {
			fn(sub)
		}
		b.Register(sub)
	})
}
