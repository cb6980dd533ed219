package http_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"articlestats/internal/platform/config"
	phttp "articlestats/internal/platform/net/http"

	"github.com/go-chi/chi/v5"
)

func TestRouterAdapter(t *testing.T) {
	optCalled := false
	srv := phttp.NewServer(config.New().Prefix("RT_"), func(*chi.Mux) { optCalled = true })
	if !optCalled {
		t.Fatalf("expected NewServer option to be called")
	}
	if srv.Addr() != ":4000" {
		t.Fatalf("default addr = %q", srv.Addr())
	}

	r := srv.Router()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-MW", "yes")
			next.ServeHTTP(w, req)
		})
	})
	r.Route("/api/v1", func(api phttp.Router) {
		api.Group(func(g phttp.Router) {
			g.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, "pong") })
		})
		api.Post("/echo", func(w http.ResponseWriter, r *http.Request) { _, _ = io.Copy(w, r.Body) })
		api.Handle("/raw", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusTeapot) }))

		// Mux from a sub router still serves the whole tree
		if api.Mux() != r.Mux() {
			t.Fatalf("sub router Mux should be the root mux")
		}
	})

	cases := []struct {
		method, path string
		want         int
	}{
		{http.MethodGet, "/api/v1/ping", http.StatusOK},
		{http.MethodPost, "/api/v1/echo", http.StatusOK},
		{http.MethodGet, "/api/v1/raw", http.StatusTeapot},
		{http.MethodPost, "/api/v1/ping", http.StatusMethodNotAllowed},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}
	for _, c := range cases {
		rec := httptest.NewRecorder()
		r.Mux().ServeHTTP(rec, httptest.NewRequest(c.method, c.path, nil))
		if rec.Code != c.want {
			t.Fatalf("%s %s = %d, want %d", c.method, c.path, rec.Code, c.want)
		}
		if rec.Header().Get("X-MW") != "yes" {
			t.Fatalf("%s %s missed middleware", c.method, c.path)
		}
	}
}

func TestServerAddrFromConfig(t *testing.T) {
	t.Setenv("SRV_ADDR", "127.0.0.1:9999")
	if got := phttp.NewServer(config.New().Prefix("SRV_")).Addr(); got != "127.0.0.1:9999" {
		t.Fatalf("Addr = %q", got)
	}
}
