// Package service composes the article text store and the optional url cache
package service

import (
	"context"
	"time"

	"articlestats/internal/platform/logger"
	"articlestats/internal/services/articles/domain"
	"articlestats/internal/services/articles/repo"
)

// Config for the articles service
type Config struct {
	CacheTTL time.Duration
}

// Service implements domain.StorePort
type Service struct {
	Texts domain.TextStore
	Cache domain.TextCache
	Cfg   Config
	root  string
}

// New builds the service over a Dir and an optional cache
func New(dir *repo.Dir, cache domain.TextCache, cfg Config) *Service {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 7 * 24 * time.Hour
	}
	return &Service{Texts: dir, Cache: cache, Cfg: cfg, root: dir.Root()}
}

// Save implements domain.StorePort
func (s *Service) Save(ctx context.Context, src domain.Source, text string) error {
	return s.Texts.Put(ctx, src.ID, text)
}

// Load implements domain.StorePort
func (s *Service) Load(ctx context.Context, id string) (string, error) {
	return s.Texts.Get(ctx, id)
}

// Has implements domain.StorePort
func (s *Service) Has(ctx context.Context, id string) (bool, error) {
	return s.Texts.Exists(ctx, id)
}

// IDs implements domain.StorePort
func (s *Service) IDs(ctx context.Context) ([]string, error) {
	return s.Texts.List(ctx)
}

// Empty implements domain.StorePort
func (s *Service) Empty(ctx context.Context) (bool, error) {
	return s.Texts.Empty(ctx)
}

// Dir implements domain.StorePort
func (s *Service) Dir() string { return s.root }

// Cached returns a previously extracted text for url; cache errors count as a miss
func (s *Service) Cached(ctx context.Context, url string) (string, bool) {
	if s.Cache == nil {
		return "", false
	}
	text, ok, err := s.Cache.Get(ctx, url)
	if err != nil {
		logger.C(ctx).Warn().Err(err).Str("url", url).Msg("text cache read failed")
		return "", false
	}
	return text, ok
}

// Remember caches text for url; empty texts are not cached so failures get retried
func (s *Service) Remember(ctx context.Context, url, text string) {
	if s.Cache == nil || text == "" {
		return
	}
	if err := s.Cache.Put(ctx, url, text, s.Cfg.CacheTTL); err != nil {
		logger.C(ctx).Warn().Err(err).Str("url", url).Msg("text cache write failed")
	}
}
