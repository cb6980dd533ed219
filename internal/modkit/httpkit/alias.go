// Package httpkit provides handler and routing helpers that alias the platform http package
// modules use these so they do not import internal/platform/net/http directly
package httpkit

import (
	"net/http"

	phttp "articlestats/internal/platform/net/http"
	"articlestats/internal/platform/net/http/bind"
)

type (
	// Envelope is the transport envelope type
	Envelope = phttp.Envelope

	// Response is the HTTP response type
	Response = phttp.Response

	// Handler is the platform handler type
	Handler = phttp.Handler

	// Router is a re-export of the platform router seam
	Router = phttp.Router

	// JSONOptions tunes body binding (size cap, unknown fields)
	JSONOptions = bind.JSONOptions
)

// OK returns a 200 response
func OK(data any) Response { return phttp.OK(data) }

// Error returns a response that maps an error to status and envelope
func Error(err error) Response { return phttp.Error(err) }

// JSON binds and validates T before calling fn
func JSON[T any](fn func(*http.Request, T) (any, error), opts ...JSONOptions) Handler {
	return phttp.JSONHandler(fn, opts...)
}

// Call adapts a handler that takes no JSON body
func Call(fn func(*http.Request) (any, error)) Handler {
	return phttp.JSONHandlerNoBody(fn)
}

// Handle adapts a Response-returning function directly
func Handle(fn func(*http.Request) Response) Handler {
	return phttp.Handle(fn)
}
