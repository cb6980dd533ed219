package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	perr "articlestats/internal/platform/errors"
	"articlestats/internal/services/articles/domain"
)

const rss = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0"><channel>
<title>Example News</title>
<item><title>One</title><link>https://example.com/one</link></item>
<item><title>No link</title></item>
<item><title>One again</title><link>https://example.com/one</link></item>
<item><title>Two</title><link> https://example.com/two </link></item>
<item><title>Three</title><link>https://example.com/three</link></item>
</channel></rss>`

func TestSources(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "articlestats/test" {
			t.Errorf("user agent = %q", r.Header.Get("User-Agent"))
		}
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(rss))
	}))
	defer srv.Close()

	got, err := Sources(context.Background(), srv.URL, Options{UserAgent: "articlestats/test"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"https://example.com/one", "https://example.com/two", "https://example.com/three"}
	if len(got) != len(want) {
		t.Fatalf("got %+v", got)
	}
	for i, u := range want {
		if got[i].URL != u || got[i].ID != domain.HashID(u) {
			t.Errorf("source %d = %+v", i, got[i])
		}
	}

	limited, err := Sources(context.Background(), srv.URL, Options{Limit: 2, UserAgent: "articlestats/test"})
	if err != nil || len(limited) != 2 {
		t.Fatalf("limit: %+v %v", limited, err)
	}
}

func TestSources_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/gone":
			http.NotFound(w, r)
		case "/bad":
			w.WriteHeader(http.StatusBadGateway)
		default:
			_, _ = w.Write([]byte("not a feed"))
		}
	}))
	defer srv.Close()

	cases := []struct {
		path string
		code perr.ErrorCode
	}{
		{"/gone", perr.ErrorCodeNotFound},
		{"/bad", perr.ErrorCodeFetch},
		{"/junk", perr.ErrorCodeFetch},
	}
	for _, tc := range cases {
		_, err := Sources(context.Background(), srv.URL+tc.path, Options{})
		if !perr.IsCode(err, tc.code) {
			t.Errorf("%s: err = %v, want code %d", tc.path, err, tc.code)
		}
	}
}

func TestFromFeed_Nil(t *testing.T) {
	if FromFeed(nil, 0) != nil {
		t.Fatal("nil feed should give no sources")
	}
}
