package swaggerkit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	phttp "articlestats/internal/platform/net/http"
	kit "articlestats/internal/platform/testkit"

	"github.com/go-chi/chi/v5"
)

func resetDoc() {
	docOnce = sync.Once{}
	docBody, docErr = nil, nil
}

func TestMount_ServesDocAndUI(t *testing.T) {
	kit.Serial(t)
	resetDoc()
	t.Cleanup(resetDoc)

	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, true)

	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/doc.json", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("doc.json status = %d", rec.Code)
	}
	var spec struct {
		Servers []struct{ URL string } `json:"servers"`
		Paths   map[string]map[string]struct {
			Responses map[string]any `json:"responses"`
		} `json:"paths"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &spec); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(spec.Servers) != 1 || spec.Servers[0].URL != "/api/v1" {
		t.Fatalf("servers = %+v", spec.Servers)
	}
	for _, p := range []string{"/analyze/text", "/analyze/url", "/meta/ready"} {
		if len(spec.Paths[p]) == 0 {
			t.Fatalf("path %s missing", p)
		}
	}
	if _, ok := spec.Paths["/analyze/text"]["post"].Responses["500"]; !ok {
		t.Fatalf("default 500 not injected")
	}

	rec = httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))
	if rec.Code != http.StatusPermanentRedirect {
		t.Fatalf("redirect status = %d", rec.Code)
	}
}

func TestMount_BrokenDoc(t *testing.T) {
	kit.Serial(t)
	resetDoc()
	t.Cleanup(resetDoc)
	kit.Swap(t, &docReader, func() []byte { return []byte("{") })

	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, true)
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/doc.json", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestMount_Disabled(t *testing.T) {
	r := phttp.AdaptChi(chi.NewRouter())
	Mount(r, false)
	rec := httptest.NewRecorder()
	r.Mux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs/doc.json", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}
}
