package httpkit

import "net/http"

// Get registers a body-less handler under GET
func Get(r Router, path string, h func(*http.Request) (any, error)) {
	r.Get(path, Call(h))
}

// PostJSON registers a binding handler under POST
func PostJSON[T any](r Router, path string, h func(*http.Request, T) (any, error), opts ...JSONOptions) {
	r.Post(path, JSON(h, opts...))
}
