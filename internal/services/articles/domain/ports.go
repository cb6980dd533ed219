package domain

import (
	"context"
	"time"
)

// TextStore persists article texts by URL_ID
type TextStore interface {
	Get(ctx context.Context, id string) (string, error)
	Put(ctx context.Context, id, text string) error
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]string, error)
	Empty(ctx context.Context) (bool, error)
}

// TextCache memoizes extracted texts by url
type TextCache interface {
	Get(ctx context.Context, url string) (string, bool, error)
	Put(ctx context.Context, url, text string, ttl time.Duration) error
}

// StorePort is what other modules use to save and read article texts
type StorePort interface {
	Save(ctx context.Context, src Source, text string) error
	Load(ctx context.Context, id string) (string, error)
	Has(ctx context.Context, id string) (bool, error)
	IDs(ctx context.Context) ([]string, error)
	Empty(ctx context.Context) (bool, error)
	Dir() string

	Cached(ctx context.Context, url string) (string, bool)
	Remember(ctx context.Context, url, text string)
}
