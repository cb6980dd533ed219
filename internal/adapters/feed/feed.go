// Package feed turns an RSS or Atom feed into article sources
package feed

import (
	"context"
	stderrs "errors"
	"net/http"
	"strings"
	"time"

	"articlestats/internal/core/version"
	perr "articlestats/internal/platform/errors"
	"articlestats/internal/platform/logger"
	"articlestats/internal/services/articles/domain"

	"github.com/mmcdole/gofeed"
)

// Options for reading a feed
type Options struct {
	Limit     int // 0 keeps every item
	Timeout   time.Duration
	UserAgent string
	Client    *http.Client
}

// Sources fetches feedURL and returns one Source per item link, in feed order
// duplicate links are dropped; ids are derived from the link so reruns are stable
func Sources(ctx context.Context, feedURL string, o Options) ([]domain.Source, error) {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, o.Timeout)
	defer cancel()

	p := gofeed.NewParser()
	p.UserAgent = version.UserAgentTag()
	if o.UserAgent != "" {
		p.UserAgent = o.UserAgent
	}
	if o.Client != nil {
		p.Client = o.Client
	}
	f, err := p.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		var he gofeed.HTTPError
		if stderrs.As(err, &he) {
			return nil, perr.Upstream(feedURL, he.StatusCode)
		}
		return nil, perr.Wrapf(err, perr.ErrorCodeFetch, "read feed %s", feedURL)
	}
	out := FromFeed(f, o.Limit)
	logger.C(ctx).Info().
		Str("feed", feedURL).
		Str("title", f.Title).
		Int("items", len(f.Items)).
		Int("sources", len(out)).
		Msg("feed read")
	return out, nil
}

// FromFeed maps parsed items to sources
func FromFeed(f *gofeed.Feed, limit int) []domain.Source {
	if f == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(f.Items))
	var out []domain.Source
	for _, it := range f.Items {
		if limit > 0 && len(out) >= limit {
			break
		}
		link := strings.TrimSpace(it.Link)
		if link == "" && len(it.Links) > 0 {
			link = strings.TrimSpace(it.Links[0])
		}
		if link == "" {
			continue
		}
		if _, dup := seen[link]; dup {
			continue
		}
		seen[link] = struct{}{}
		out = append(out, domain.Source{ID: domain.HashID(link), URL: link})
	}
	return out
}
