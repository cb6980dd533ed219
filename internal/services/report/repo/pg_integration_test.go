//go:build integration_pg

package repo

import (
	"context"
	"testing"
	"time"

	"articlestats/internal/platform/store"
	kit "articlestats/internal/platform/testkit"
)

func TestPGSink_Integration(t *testing.T) {
	dsn := kit.StartPostgres(t)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	st, err := store.Open(ctx, store.Config{PG: store.PGConfig{Enabled: true, URL: dsn}})
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer st.Close(ctx)

	sink := NewPGSink(st.PG, 5*time.Second)
	b := batch(3)
	if err := sink.Write(ctx, b); err != nil {
		t.Fatalf("Write: %v", err)
	}

	// a rerun of the same run overwrites instead of duplicating
	b.Rows[0].Metrics.PositiveScore = 42
	if err := sink.Write(ctx, b); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	n, err := store.Scalar[int](ctx, st.PG, `SELECT count(*) FROM article_metrics WHERE run_id = $1`, b.Run.ID.String())
	if err != nil || n != 3 {
		t.Fatalf("count = %d, %v", n, err)
	}
	rows, err := store.Scalar[int32](ctx, st.PG, `SELECT row_count FROM report_runs WHERE run_id = $1`, b.Run.ID.String())
	if err != nil || rows != 3 {
		t.Fatalf("run header rows = %d, %v", rows, err)
	}
	pos, err := store.Scalar[int32](ctx, st.PG, `SELECT positive_score FROM article_metrics WHERE run_id = $1 AND url_id = 'a'`, b.Run.ID.String())
	if err != nil || pos != 42 {
		t.Fatalf("positive_score = %d, %v", pos, err)
	}
}
