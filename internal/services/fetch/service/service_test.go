package service

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"articlestats/internal/adapters/web"
	perr "articlestats/internal/platform/errors"
	artdom "articlestats/internal/services/articles/domain"
	"articlestats/internal/services/articles/repo"
	artsvc "articlestats/internal/services/articles/service"
)

type memCache struct{ m map[string]string }

func (c *memCache) Get(_ context.Context, url string) (string, bool, error) {
	v, ok := c.m[url]
	return v, ok, nil
}

func (c *memCache) Put(_ context.Context, url, text string, _ time.Duration) error {
	c.m[url] = text
	return nil
}

func articlePage(title string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<html><head><title>%s</title></head><body><nav>Home News Sport</nav><article><h1>%s</h1>", title, title)
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&b, "<p>Paragraph %d explains how the city council approved the new budget after a long debate about schools and roads.</p>", i)
	}
	b.WriteString("</article><footer>Related Articles and more links</footer></body></html>")
	return b.String()
}

type fixture struct {
	srv   *httptest.Server
	hits  atomic.Int64
	store *artsvc.Service
	root  string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{root: filepath.Join(t.TempDir(), "articles")}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.hits.Add(1)
		if strings.HasPrefix(r.URL.Path, "/missing") {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(articlePage("Council passes budget " + strings.TrimPrefix(r.URL.Path, "/"))))
	}))
	t.Cleanup(f.srv.Close)
	f.store = artsvc.New(repo.NewDir(f.root), &memCache{m: map[string]string{}}, artsvc.Config{})
	return f
}

func (f *fixture) service(workers int) *Service {
	client := web.NewClient(web.Options{MaxRetries: -1, Timeout: 5 * time.Second})
	return New(client, f.store, Config{Workers: workers})
}

func TestFetchOne_CacheReadThrough(t *testing.T) {
	f := newFixture(t)
	s := f.service(1)
	ctx := context.Background()

	a, err := s.FetchOne(ctx, f.srv.URL+"/one")
	if err != nil {
		t.Fatal(err)
	}
	if a.Cached || a.Method == "" || !strings.Contains(a.Text, "city council approved") {
		t.Fatalf("article = %+v", a)
	}
	if a.Title != "" && !strings.HasPrefix(a.Text, a.Title+"\n\n") {
		t.Fatalf("text should start with the title: %q", a.Text[:40])
	}
	if strings.Contains(a.Text, "Related Articles") {
		t.Fatalf("trailer should be cut")
	}

	again, err := s.FetchOne(ctx, f.srv.URL+"/one")
	if err != nil || !again.Cached || again.Text != a.Text {
		t.Fatalf("second fetch = %+v %v", again, err)
	}
	if f.hits.Load() != 1 {
		t.Fatalf("server hits = %d, want 1", f.hits.Load())
	}
}

func TestFetchAll_OrderAndFailures(t *testing.T) {
	f := newFixture(t)
	s := f.service(3)
	ctx := context.Background()

	srcs := []artdom.Source{
		{ID: "1", URL: f.srv.URL + "/a"},
		{ID: "2", URL: f.srv.URL + "/missing"},
		{ID: "3", URL: f.srv.URL + "/b"},
		{ID: "4", URL: f.srv.URL + "/c"},
	}
	outs := s.FetchAll(ctx, srcs)
	if len(outs) != len(srcs) {
		t.Fatalf("outcomes = %d", len(outs))
	}
	for i, o := range outs {
		if o.Article.ID != srcs[i].ID {
			t.Fatalf("order broken at %d: %s", i, o.Article.ID)
		}
	}
	if !perr.IsCode(outs[1].Err, perr.ErrorCodeNotFound) || outs[1].Article.Text != "" {
		t.Fatalf("missing page outcome = %+v", outs[1])
	}
	if bad := Failed(outs); len(bad) != 1 {
		t.Fatalf("Failed = %d", len(bad))
	}

	for _, src := range srcs {
		text, err := f.store.Load(ctx, src.ID)
		if err != nil {
			t.Fatalf("Load %s: %v", src.ID, err)
		}
		if (src.ID == "2") != (text == "") {
			t.Fatalf("saved text for %s = %q", src.ID, text)
		}
	}
}

func TestFetchAll_Canceled(t *testing.T) {
	f := newFixture(t)
	s := f.service(2)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outs := s.FetchAll(ctx, []artdom.Source{{ID: "1", URL: f.srv.URL + "/a"}})
	if outs[0].Err == nil {
		t.Fatalf("canceled fetch should carry an error")
	}
	if ok, _ := f.store.Has(context.Background(), "1"); ok {
		t.Fatalf("canceled fetch should not save")
	}
}

func TestPause(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	start := time.Now()
	pause(ctx, time.Minute)
	if time.Since(start) > time.Second {
		t.Fatalf("pause should return on cancel")
	}
}
