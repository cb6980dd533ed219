// Package http provides the analyze endpoints
package http

import (
	stdhttp "net/http"
	"unicode/utf8"

	"articlestats/internal/modkit/httpkit"
	perr "articlestats/internal/platform/errors"
	anadom "articlestats/internal/services/analyze/domain"
	"articlestats/internal/services/api/analyze/domain"
	artdom "articlestats/internal/services/articles/domain"
	fetchdom "articlestats/internal/services/fetch/domain"
)

// Register mounts the analyze endpoints
func Register(r httpkit.Router, a anadom.AnalyzerPort, f fetchdom.FetcherPort) {
	h := &handlers{an: a, fetch: f}
	// json escaping can grow a text well past its raw size
	httpkit.PostJSON(r, "/text", h.text, httpkit.JSONOptions{MaxBytes: 3 * domain.MaxTextBytes, DisallowUnknown: true})
	httpkit.PostJSON(r, "/url", h.url, httpkit.JSONOptions{MaxBytes: 8 << 10, DisallowUnknown: true})
}

type handlers struct {
	an    anadom.AnalyzerPort
	fetch fetchdom.FetcherPort
}

func (h *handlers) text(_ *stdhttp.Request, in domain.TextInput) (any, error) {
	// validator's max counts runes; the cap is on bytes
	if len(in.Text) > domain.MaxTextBytes {
		return nil, perr.WithField(perr.Newf(perr.ErrorCodeValidation, "text exceeds %d bytes", domain.MaxTextBytes), "text")
	}
	return h.an.AnalyzeText(in.Text), nil
}

func (h *handlers) url(r *stdhttp.Request, in domain.URLInput) (any, error) {
	a, err := h.fetch.FetchOne(r.Context(), in.URL)
	if err != nil {
		return nil, err
	}
	id := in.URLID
	if id == "" {
		id = artdom.HashID(in.URL)
	}
	return domain.Article{
		URLID:   id,
		URL:     in.URL,
		Title:   a.Title,
		Chars:   utf8.RuneCountInString(a.Text),
		Cached:  a.Cached,
		Method:  a.Method,
		Metrics: h.an.AnalyzeText(a.Text),
	}, nil
}
