package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	perr "articlestats/internal/platform/errors"
	kit "articlestats/internal/platform/testkit"
)

func fast(o Options) Options {
	o.RetryBase = time.Millisecond
	o.Timeout = 5 * time.Second
	return o
}

func TestGet_HeadersAndRotation(t *testing.T) {
	var mu sync.Mutex
	var agents []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		agents = append(agents, r.UserAgent())
		mu.Unlock()
		if r.Header.Get("Accept-Language") != "en-US,en;q=0.5" || r.Header.Get("DNT") != "1" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte("<p>hello</p>"))
	}))
	defer srv.Close()

	c := NewClient(fast(Options{UserAgents: []string{"ua-1", "ua-2"}}))
	for i := 0; i < 3; i++ {
		p, err := c.Get(context.Background(), srv.URL)
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if string(p.Body) != "<p>hello</p>" || p.Status != http.StatusOK {
			t.Fatalf("page = %+v", p)
		}
	}
	if strings.Join(agents, ",") != "ua-1,ua-2,ua-1" {
		t.Fatalf("agents = %v", agents)
	}
}

func TestGet_RetriesTransient(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	p, err := NewClient(fast(Options{MaxRetries: 3})).Get(context.Background(), srv.URL)
	if err != nil || string(p.Body) != "ok" {
		t.Fatalf("Get = %q, %v", p.Body, err)
	}
	if hits.Load() != 3 {
		t.Fatalf("hits = %d, want 3", hits.Load())
	}
}

func TestGet_GivesUp(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		retries  int
		wantHits int32
		wantCode perr.ErrorCode
	}{
		{"not found is permanent", http.StatusNotFound, 3, 1, perr.ErrorCodeNotFound},
		{"forbidden is permanent", http.StatusForbidden, 3, 1, perr.ErrorCodeFetch},
		{"429 exhausts retries", http.StatusTooManyRequests, 2, 3, perr.ErrorCodeFetch},
		{"retries disabled", http.StatusBadGateway, -1, 1, perr.ErrorCodeFetch},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var hits atomic.Int32
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				hits.Add(1)
				w.WriteHeader(tc.status)
			}))
			defer srv.Close()

			_, err := NewClient(fast(Options{MaxRetries: tc.retries})).Get(context.Background(), srv.URL)
			if !perr.IsCode(err, tc.wantCode) || perr.StatusOf(err) != tc.status {
				t.Fatalf("err = %v (code %d, status %d)", err, perr.CodeOf(err), perr.StatusOf(err))
			}
			if hits.Load() != tc.wantHits {
				t.Fatalf("hits = %d, want %d", hits.Load(), tc.wantHits)
			}
		})
	}
}

func TestGet_NetworkErrorWrapped(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(fast(Options{MaxRetries: 1})).Get(context.Background(), url)
	if !perr.IsCode(err, perr.ErrorCodeFetch) {
		t.Fatalf("err = %v", err)
	}
}

func TestGet_CookiesPersist(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie("consent"); err != nil {
			http.SetCookie(w, &http.Cookie{Name: "consent", Value: "yes", Path: "/"})
			w.WriteHeader(http.StatusForbidden)
			return
		}
		_, _ = w.Write([]byte("article"))
	}))
	defer srv.Close()

	c := NewClient(fast(Options{MaxRetries: -1}))
	if _, err := c.Get(context.Background(), srv.URL); err == nil {
		t.Fatalf("first request should be refused")
	}
	p, err := c.Get(context.Background(), srv.URL)
	if err != nil || string(p.Body) != "article" {
		t.Fatalf("second request = %q, %v", p.Body, err)
	}
}

func TestGet_TruncatesAndDecodes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/latin1" {
			w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
			_, _ = w.Write([]byte("caf\xe9"))
			return
		}
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(strings.Repeat("x", 64)))
	}))
	defer srv.Close()

	c := NewClient(fast(Options{MaxBytes: 16}))
	p, err := c.Get(context.Background(), srv.URL+"/big")
	if err != nil || len(p.Body) != 16 || !p.Truncated {
		t.Fatalf("truncated page = %d bytes, truncated=%v, err=%v", len(p.Body), p.Truncated, err)
	}
	p, err = c.Get(context.Background(), srv.URL+"/latin1")
	if err != nil || string(p.Body) != "café" {
		t.Fatalf("decoded = %q, %v", p.Body, err)
	}
}

func TestGet_Canceled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewClient(fast(Options{})).Get(ctx, srv.URL)
	if err == nil {
		t.Fatalf("canceled context should fail")
	}
	kit.MustContain(t, err.Error(), "context canceled")
}
