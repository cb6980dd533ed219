package store

import (
	"context"
	"fmt"
	"time"

	chx "articlestats/internal/platform/store/ch"
	"articlestats/internal/platform/store/pg"
	"articlestats/internal/platform/store/rds"

	"github.com/cenkalti/backoff/v4"
)

// pingPool is a seam so tests can fake a flaky database
var pingPool = func(ctx context.Context, p *pg.PG) error { return p.Pool.Ping(ctx) }

// openPG opens pg, waits for it to answer a ping, then wraps it with our sql adapter
func openPG(ctx context.Context, cfg Config, s *Store) (TxRunner, error) {
	var tracer pg.QueryTracer
	if cfg.PG.LogSQL {
		tracer = pg.Tracer(s.Log)
	}

	p, err := pg.Open(ctx, pg.Config{
		URL:      cfg.PG.URL,
		MaxConns: cfg.PG.MaxConns,
		SlowMs:   cfg.PG.SlowQueryMs,
	}, tracer, nil)
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	retries := cfg.PG.ConnectRetries
	if retries <= 0 {
		retries = 6
	}
	pingTimeout := cfg.PG.PingTimeout
	if pingTimeout <= 0 {
		pingTimeout = 3 * time.Second
	}

	eb := backoff.NewExponentialBackOff()
	eb.InitialInterval = 150 * time.Millisecond
	eb.MaxInterval = 2 * time.Second
	policy := backoff.WithContext(backoff.WithMaxRetries(eb, uint64(retries)), ctx)

	attempt := 0
	err = backoff.Retry(func() error {
		attempt++
		toCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		return pingPool(toCtx, p)
	}, policy)
	if err != nil {
		p.Close()
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("postgres ping failed after %d attempts: %w", attempt, err)
	}
	return newPGAdapter(p), nil
}

func openCH(ctx context.Context, cfg Config) (Clickhouse, error) {
	c, err := chx.Open(ctx, chx.Config{
		URL:         cfg.CH.URL,
		Role:        cfg.Role,
		DialTimeout: cfg.CH.DialTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("clickhouse open: %w", err)
	}
	return newCHAdapter(c), nil
}

func openRedis(ctx context.Context, cfg Config) (KV, error) {
	c, err := rds.Open(ctx, rds.Config{
		Addr:     cfg.RDS.Addr,
		Password: cfg.RDS.Password,
		DB:       cfg.RDS.DB,
	})
	if err != nil {
		return nil, fmt.Errorf("redis open: %w", err)
	}
	return c, nil
}
