package httpkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	perr "articlestats/internal/platform/errors"
	phttp "articlestats/internal/platform/net/http"
	kit "articlestats/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

type echoIn struct {
	Text string `json:"text" validate:"required"`
}

func newRouter() Router { return phttp.AdaptChi(chi.NewRouter()) }

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, Envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	var env Envelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return rec, env
}

func TestMountAPIV1_Sugar(t *testing.T) {
	r := newRouter()
	MountAPIV1(r, CommonStack(StackOptions{}), func(api Router) {
		MountUnder(api, "/echo", nil, func(sub Router) {
			Get(sub, "/ping", func(*http.Request) (any, error) { return "pong", nil })
			Get(sub, "/missing", func(*http.Request) (any, error) { return nil, perr.NotFoundf("nope") })
			PostJSON(sub, "/text", func(_ *http.Request, in echoIn) (any, error) {
				return map[string]int{"len": len(in.Text)}, nil
			})
		})
	})
	h := r.Mux()

	cases := []struct {
		name, method, path, body string
		status                   int
		want                     string
	}{
		{"get", http.MethodGet, "/api/v1/echo/ping", "", http.StatusOK, `"data":"pong"`},
		{"trailing slash", http.MethodGet, "/api/v1/echo/ping/", "", http.StatusOK, `"data":"pong"`},
		{"not found code", http.MethodGet, "/api/v1/echo/missing", "", http.StatusNotFound, `"error":"nope"`},
		{"post ok", http.MethodPost, "/api/v1/echo/text", `{"text":"abc"}`, http.StatusOK, `"len":3`},
		{"post invalid", http.MethodPost, "/api/v1/echo/text", `{}`, http.StatusBadRequest, `"field":"text"`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec, env := do(t, h, c.method, c.path, c.body)
			if rec.Code != c.status || env.StatusCode != c.status {
				t.Fatalf("status = %d/%d, want %d; body %s", rec.Code, env.StatusCode, c.status, rec.Body.String())
			}
			kit.MustContain(t, rec.Body.String(), c.want)
			if env.RequestID == "" {
				t.Fatalf("request id missing from envelope")
			}
		})
	}
}

func TestHandle_PassesResponse(t *testing.T) {
	r := newRouter()
	r.Get("/accepted", Handle(func(*http.Request) Response {
		return Response{Status: http.StatusAccepted, Body: "queued"}
	}))
	rec, env := do(t, r.Mux(), http.MethodGet, "/accepted", "")
	if rec.Code != http.StatusAccepted || env.Data != "queued" {
		t.Fatalf("got %d %v", rec.Code, env.Data)
	}
}

func TestIsProbe(t *testing.T) {
	cases := map[string]bool{
		"/api/v1/meta/health":  true,
		"/api/v1/meta/ready":   true,
		"/api/v1/meta/version": false,
		"/api/v1/analyze/text": false,
	}
	for p, want := range cases {
		if got := isProbe(httptest.NewRequest(http.MethodGet, p, nil)); got != want {
			t.Errorf("isProbe(%s) = %v", p, got)
		}
	}
}
