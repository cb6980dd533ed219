// Package web downloads article pages with browser-like headers, cookies and retries
package web

import (
	"bytes"
	"context"
	stderrs "errors"
	"io"
	"net/http"
	"net/http/cookiejar"
	"sync/atomic"
	"time"

	perr "articlestats/internal/platform/errors"
	"articlestats/internal/platform/logger"

	"github.com/cenkalti/backoff/v4"
	"golang.org/x/net/html/charset"
	"golang.org/x/net/publicsuffix"
)

const (
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
	defaultRetryBase  = 500 * time.Millisecond
	defaultMaxBytes   = 8 << 20
)

// DefaultUserAgents rotate round robin across requests
var DefaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36 Edg/120.0.0.0",
	"Mozilla/5.0 (Linux; Android 10; K) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Mobile Safari/537.36",
}

// Options configures the Client
type Options struct {
	Timeout    time.Duration // per attempt
	MaxRetries int           // retries after the first attempt; negative disables
	RetryBase  time.Duration // first backoff interval
	MaxBytes   int64         // body cap; longer bodies are truncated
	UserAgents []string

	Transport http.RoundTripper
}

// Page is a downloaded document, decoded to UTF-8
type Page struct {
	URL         string
	FinalURL    string
	Status      int
	ContentType string
	Body        []byte
	Truncated   bool
}

// Client is safe for concurrent use
type Client struct {
	http *http.Client
	opts Options
	next atomic.Uint32
	log  logger.Logger
}

// NewClient creates a Client with defaults filled in
func NewClient(o Options) *Client {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxRetries < 0 {
		o.MaxRetries = 0
	} else if o.MaxRetries == 0 {
		o.MaxRetries = defaultMaxRetries
	}
	if o.RetryBase <= 0 {
		o.RetryBase = defaultRetryBase
	}
	if o.MaxBytes <= 0 {
		o.MaxBytes = defaultMaxBytes
	}
	if len(o.UserAgents) == 0 {
		o.UserAgents = DefaultUserAgents
	}
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	return &Client{
		http: &http.Client{Timeout: o.Timeout, Jar: jar, Transport: o.Transport},
		opts: o,
		log:  *logger.Named("web"),
	}
}

// userAgent returns the next agent in rotation
func (c *Client) userAgent() string {
	n := c.next.Add(1) - 1
	return c.opts.UserAgents[int(n)%len(c.opts.UserAgents)]
}

// Get downloads url, retrying 429, 5xx and network failures with exponential backoff
// other 4xx answers fail at once
func (c *Client) Get(ctx context.Context, url string) (Page, error) {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.opts.RetryBase
	b.MaxInterval = 30 * time.Second
	b.MaxElapsedTime = 0

	attempt := 0
	op := func() (Page, error) {
		attempt++
		p, err := c.once(ctx, url)
		if err == nil {
			return p, nil
		}
		if ctx.Err() != nil || !perr.IsUpstreamRetryable(err) {
			return Page{}, backoff.Permanent(err)
		}
		return Page{}, err
	}
	notify := func(err error, wait time.Duration) {
		c.log.Warn().Err(err).Str("url", url).Int("attempt", attempt).Dur("retry_in", wait).Msg("fetch failed; retrying")
	}

	p, err := backoff.RetryNotifyWithData(op,
		backoff.WithContext(backoff.WithMaxRetries(b, uint64(c.opts.MaxRetries)), ctx), notify)
	if err != nil {
		if _, ok := perr.As(err); !ok {
			err = perr.Wrapf(err, perr.ErrorCodeFetch, "fetch %s", url)
		}
		return Page{}, err
	}
	return p, nil
}

func (c *Client) once(ctx context.Context, url string) (Page, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Page{}, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "bad url %q", url)
	}
	c.browserHeaders(req)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return Page{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	c.log.Debug().
		Str("url", url).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("http response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		return Page{}, perr.Upstream(url, resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, c.opts.MaxBytes+1))
	if err != nil {
		return Page{}, err
	}
	p := Page{
		URL:         url,
		FinalURL:    resp.Request.URL.String(),
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
	}
	if int64(len(raw)) > c.opts.MaxBytes {
		raw, p.Truncated = raw[:c.opts.MaxBytes], true
		c.log.Warn().Str("url", url).Int64("max_bytes", c.opts.MaxBytes).Msg("body truncated")
	}
	p.Body = toUTF8(raw, p.ContentType)
	return p, nil
}

func (c *Client) browserHeaders(req *http.Request) {
	h := req.Header
	h.Set("User-Agent", c.userAgent())
	h.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	h.Set("Accept-Language", "en-US,en;q=0.5")
	h.Set("DNT", "1")
	h.Set("Upgrade-Insecure-Requests", "1")
	h.Set("Cache-Control", "max-age=0")
}

// toUTF8 converts body using the charset from the header or a meta tag; unknown input passes through
func toUTF8(raw []byte, contentType string) []byte {
	r, err := charset.NewReader(bytes.NewReader(raw), contentType)
	if err != nil {
		return raw
	}
	out, err := io.ReadAll(r)
	if err != nil && !stderrs.Is(err, io.EOF) {
		return raw
	}
	return out
}
