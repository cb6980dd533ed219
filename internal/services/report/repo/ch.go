package repo

import (
	"context"
	"fmt"

	"articlestats/internal/platform/store"
	"articlestats/internal/services/report/domain"
)

const chSchema = `CREATE TABLE IF NOT EXISTS article_metrics (
	run_id                           UUID,
	url_id                           String,
	url                              String,
	run_source                       String,
	started_at                       DateTime64(3, 'UTC'),
	positive_score                   Int32,
	negative_score                   Int32,
	polarity_score                   Float64,
	subjectivity_score               Float64,
	avg_sentence_length              Float64,
	percentage_of_complex_words      Float64,
	fog_index                        Float64,
	avg_number_of_words_per_sentence Float64,
	complex_word_count               Int32,
	word_count                       Int32,
	syllable_per_word                Float64,
	personal_pronouns                Int32,
	avg_word_length                  Float64
) ENGINE = ReplacingMergeTree
ORDER BY (run_id, url_id)`

// CHSink batch inserts rows into ClickHouse
type CHSink struct {
	ch store.Clickhouse
}

// NewCHSink wraps an open clickhouse seam
func NewCHSink(ch store.Clickhouse) *CHSink { return &CHSink{ch: ch} }

// Name implements domain.Sink
func (s *CHSink) Name() string { return "clickhouse" }

// Write implements domain.Sink
func (s *CHSink) Write(ctx context.Context, b domain.Batch) error {
	if len(b.Rows) == 0 {
		return nil
	}
	if err := s.ch.Exec(ctx, chSchema); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return s.ch.Insert(ctx, Table, chRows(b))
}

func chRows(b domain.Batch) [][]any {
	out := make([][]any, 0, len(b.Rows))
	for _, r := range b.Rows {
		m := r.Metrics
		out = append(out, []any{
			b.Run.ID, r.ID, r.URL, b.Run.Source, b.Run.StartedAt,
			int32(m.PositiveScore), int32(m.NegativeScore),
			m.PolarityScore, m.SubjectivityScore, m.AvgSentenceLength,
			m.PercentageComplexWords, m.FogIndex, m.AvgWordsPerSentence,
			int32(m.ComplexWordCount), int32(m.WordCount),
			m.SyllablesPerWord, int32(m.PersonalPronouns), m.AvgWordLength,
		})
	}
	return out
}
