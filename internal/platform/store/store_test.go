package store

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"articlestats/internal/platform/config"
	"articlestats/internal/platform/store/pg"
	kit "articlestats/internal/platform/testkit"
)

type fakeKV struct {
	pingErr  error
	closeErr error
	closed   bool
}

func (f *fakeKV) Get(context.Context, string) (string, bool, error)        { return "", false, nil }
func (f *fakeKV) Set(context.Context, string, string, time.Duration) error { return nil }
func (f *fakeKV) Ping(context.Context) error                               { return f.pingErr }
func (f *fakeKV) Close() error                                             { f.closed = true; return f.closeErr }

func TestOpen_NoBackends(t *testing.T) {
	s, err := Open(context.Background(), Config{})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if s.PG != nil || s.CH != nil || s.KV != nil {
		t.Fatalf("no backend should be set: %+v", s)
	}
	if err := s.Guard(context.Background()); err != nil {
		t.Fatalf("Guard on empty store: %v", err)
	}
	if err := s.Close(context.Background()); err != nil {
		t.Fatalf("Close on empty store: %v", err)
	}
}

func TestOpen_PGBadURL(t *testing.T) {
	_, err := Open(context.Background(), Config{PG: PGConfig{Enabled: true, URL: "://bad"}})
	if err == nil || !strings.Contains(err.Error(), "postgres open") {
		t.Fatalf("want postgres open error, got %v", err)
	}
}

func TestOpen_CHEmptyDSN(t *testing.T) {
	_, err := Open(context.Background(), Config{CH: CHConfig{Enabled: true}})
	if err == nil || !strings.Contains(err.Error(), "clickhouse open") {
		t.Fatalf("want clickhouse open error, got %v", err)
	}
}

func TestOpenPG_RetriesPing(t *testing.T) {
	kit.Serial(t)
	calls := 0
	kit.Swap(t, &pingPool, func(context.Context, *pg.PG) error {
		calls++
		if calls < 3 {
			return errors.New("connection refused")
		}
		return nil
	})

	s, err := Open(context.Background(), Config{PG: PGConfig{
		Enabled:        true,
		URL:            "postgres://u:p@127.0.0.1:1/articles?sslmode=disable",
		ConnectRetries: 5,
		PingTimeout:    time.Second,
	}})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer s.Close(context.Background())
	if calls != 3 || s.PG == nil {
		t.Fatalf("calls=%d pg=%v", calls, s.PG)
	}
}

func TestOpenPG_GivesUp(t *testing.T) {
	kit.Serial(t)
	kit.Swap(t, &pingPool, func(context.Context, *pg.PG) error { return errors.New("down") })

	_, err := Open(context.Background(), Config{PG: PGConfig{
		Enabled:        true,
		URL:            "postgres://u:p@127.0.0.1:1/articles?sslmode=disable",
		ConnectRetries: 2,
	}})
	if err == nil || !strings.Contains(err.Error(), "after 3 attempts") {
		t.Fatalf("want give-up error, got %v", err)
	}
}

func TestGuardAndClose(t *testing.T) {
	kv := &fakeKV{pingErr: errors.New("no route"), closeErr: errors.New("closing")}
	s := &Store{KV: kv}

	err := s.Guard(context.Background())
	if err == nil || !strings.Contains(err.Error(), "redis: no route") {
		t.Fatalf("Guard = %v", err)
	}
	if err := s.Close(context.Background()); err == nil || !kv.closed {
		t.Fatalf("Close should close kv and surface its error")
	}

	var nilStore *Store
	if nilStore.Guard(context.Background()) == nil {
		t.Fatalf("nil store Guard should error")
	}
}

func TestWithKV(t *testing.T) {
	kv := &fakeKV{}
	s, err := Open(context.Background(), Config{}, WithKV(kv))
	if err != nil || s.KV != kv {
		t.Fatalf("WithKV not applied: %v", err)
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("SERVICE_PGSQL_DBURL", "postgres://localhost/articles")
	t.Setenv("SERVICE_PGSQL_MAX_CONNS", "8")
	t.Setenv("SERVICE_REDIS_ADDR", "localhost:6379")
	t.Setenv("SERVICE_REDIS_DB", "2")

	cfg := ConfigFromEnv(config.New(), "pipeline")
	if !cfg.PG.Enabled || cfg.PG.MaxConns != 8 || cfg.PG.ConnectRetries != 6 {
		t.Fatalf("pg config = %+v", cfg.PG)
	}
	if cfg.CH.Enabled {
		t.Fatalf("ch should be disabled without a DSN")
	}
	if !cfg.RDS.Enabled || cfg.RDS.DB != 2 || cfg.Role != "pipeline" {
		t.Fatalf("redis config = %+v", cfg.RDS)
	}
}
