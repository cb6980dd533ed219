// Package modkit provides module wiring and core deps
package modkit

import "articlestats/internal/modkit/module"

// Module is the common surface for API modules; see module.Module
type Module = module.Module

// Builder constructs a Module from shared deps and options
type Builder func(Deps, ...Option) Module
