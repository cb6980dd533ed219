package http

import (
	"net/http"

	"articlestats/internal/platform/net/http/bind"
)

// GetJSON mounts a body-less JSON handler for GET
func GetJSON(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, JSONHandlerNoBody(h))
}

// PostJSON mounts a binding JSON handler for POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error), opts ...bind.JSONOptions) {
	r.Post(path, JSONHandler(h, opts...))
}
