// Package repo holds the report sinks backed by databases and object storage
package repo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"articlestats/internal/modkit/repokit"
	"articlestats/internal/platform/store"
	"articlestats/internal/services/report/domain"
)

// Table receives one row per article per run in both PG and CH
const Table = "article_metrics"

const pgSchema = `CREATE TABLE IF NOT EXISTS article_metrics (
	run_id                           uuid             NOT NULL,
	url_id                           text             NOT NULL,
	url                              text             NOT NULL DEFAULT '',
	run_source                       text             NOT NULL DEFAULT '',
	started_at                       timestamptz      NOT NULL,
	positive_score                   integer          NOT NULL,
	negative_score                   integer          NOT NULL,
	polarity_score                   double precision NOT NULL,
	subjectivity_score               double precision NOT NULL,
	avg_sentence_length              double precision NOT NULL,
	percentage_of_complex_words      double precision NOT NULL,
	fog_index                        double precision NOT NULL,
	avg_number_of_words_per_sentence double precision NOT NULL,
	complex_word_count               integer          NOT NULL,
	word_count                       integer          NOT NULL,
	syllable_per_word                double precision NOT NULL,
	personal_pronouns                integer          NOT NULL,
	avg_word_length                  double precision NOT NULL,
	written_at                       timestamptz      NOT NULL DEFAULT now(),
	PRIMARY KEY (run_id, url_id)
)`

// Runs keeps one header row per run
const Runs = "report_runs"

const pgRunsSchema = `CREATE TABLE IF NOT EXISTS report_runs (
	run_id     uuid        PRIMARY KEY,
	run_source text        NOT NULL DEFAULT '',
	started_at timestamptz NOT NULL,
	row_count  integer     NOT NULL,
	written_at timestamptz NOT NULL DEFAULT now()
)`

const pgRunSQL = `INSERT INTO report_runs (run_id, run_source, started_at, row_count)
VALUES ($1, $2, $3, $4)
ON CONFLICT (run_id) DO UPDATE SET row_count = EXCLUDED.row_count, written_at = now()`

// columns in insert order; the 13 statistics follow metrics.Columns
var pgColumns = []string{
	"run_id", "url_id", "url", "run_source", "started_at",
	"positive_score", "negative_score", "polarity_score", "subjectivity_score",
	"avg_sentence_length", "percentage_of_complex_words", "fog_index",
	"avg_number_of_words_per_sentence", "complex_word_count", "word_count",
	"syllable_per_word", "personal_pronouns", "avg_word_length",
}

// pgChunk bounds rows per statement to stay well under the 65535 parameter limit
const pgChunk = 500

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// Storage writes metrics rows
type Storage interface {
	EnsureSchema(ctx context.Context) error
	Upsert(ctx context.Context, b domain.Batch) (int64, error)
	RecordRun(ctx context.Context, run domain.Run) (int, error)
}

// EnsureSchema implements Storage
func (s *pg) EnsureSchema(ctx context.Context) error {
	for _, ddl := range []string{pgSchema, pgRunsSchema} {
		if _, err := s.q.Exec(ctx, ddl); err != nil {
			return err
		}
	}
	return nil
}

// RecordRun implements Storage; the header carries the row count stored for the run
func (s *pg) RecordRun(ctx context.Context, run domain.Run) (int, error) {
	n, err := store.Scalar[int](ctx, s.q, `SELECT count(*) FROM `+Table+` WHERE run_id = $1`, run.ID.String())
	if err != nil {
		return 0, err
	}
	return n, store.ExecOne(ctx, s.q, pgRunSQL, run.ID.String(), run.Source, run.StartedAt, n)
}

// Upsert implements Storage; a rerun of the same run id overwrites its rows
func (s *pg) Upsert(ctx context.Context, b domain.Batch) (int64, error) {
	var n int64
	for start := 0; start < len(b.Rows); start += pgChunk {
		end := min(start+pgChunk, len(b.Rows))
		sql, args := upsertSQL(b, start, end)
		tag, err := s.q.Exec(ctx, sql, args...)
		if err != nil {
			return n, err
		}
		n += tag.RowsAffected()
	}
	return n, nil
}

func upsertSQL(b domain.Batch, start, end int) (string, []any) {
	var sb strings.Builder
	sb.WriteString("INSERT INTO " + Table + " (" + strings.Join(pgColumns, ", ") + ") VALUES ")

	width := len(pgColumns)
	args := make([]any, 0, (end-start)*width)
	for i, r := range b.Rows[start:end] {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte('(')
		for c := 0; c < width; c++ {
			if c > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(&sb, "$%d", i*width+c+1)
		}
		sb.WriteByte(')')

		args = append(args, b.Run.ID.String(), r.ID, r.URL, b.Run.Source, b.Run.StartedAt)
		args = append(args, r.Metrics.Values()...)
	}

	sb.WriteString(" ON CONFLICT (run_id, url_id) DO UPDATE SET ")
	for i, c := range pgColumns[2:] {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(c + " = EXCLUDED." + c)
	}
	sb.WriteString(", written_at = now()")
	return sb.String(), args
}

// PGSink writes batches to Postgres inside one transaction
type PGSink struct {
	tx      repokit.TxRunner
	storage repokit.Binder[Storage]
}

// NewPGSink wraps tx so every statement in the write is capped by timeout
func NewPGSink(tx repokit.TxRunner, timeout time.Duration) *PGSink {
	if timeout > 0 {
		tx = repokit.WithBeginHooks(tx, repokit.StatementTimeout(timeout))
	}
	return &PGSink{tx: tx, storage: NewPG()}
}

// Name implements domain.Sink
func (s *PGSink) Name() string { return "postgres" }

// Write implements domain.Sink
func (s *PGSink) Write(ctx context.Context, b domain.Batch) error {
	if len(b.Rows) == 0 {
		return nil
	}
	return repokit.WithTx(ctx, s.tx, func(q repokit.Queryer) error {
		st := repokit.MustBind(s.storage, q)
		if err := st.EnsureSchema(ctx); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
		if _, err := st.Upsert(ctx, b); err != nil {
			return err
		}
		_, err := st.RecordRun(ctx, b.Run)
		return err
	})
}
