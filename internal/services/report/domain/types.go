// Package domain defines report runs, batches and sinks
package domain

import (
	"context"
	"time"

	anadom "articlestats/internal/services/analyze/domain"

	"github.com/google/uuid"
)

// Run identifies one pipeline execution
type Run struct {
	ID        uuid.UUID `json:"run_id"`
	StartedAt time.Time `json:"started_at"`
	Source    string    `json:"source"` // input workbook path or feed url
}

// NewRun stamps a fresh run
func NewRun(source string) Run {
	return Run{ID: uuid.New(), StartedAt: time.Now().UTC(), Source: source}
}

// Batch is everything a sink may persist for a run
type Batch struct {
	Run      Run
	Rows     []anadom.Row
	Workbook []byte // encoded xlsx, as written to the output file
}

// Sink persists a batch somewhere besides the output workbook
type Sink interface {
	Name() string
	Write(ctx context.Context, b Batch) error
}

// Result describes a publish
type Result struct {
	Run    Run      `json:"run"`
	Output string   `json:"output"`
	Rows   int      `json:"rows"`
	Sinks  []string `json:"sinks"`
}

// PublisherPort writes analysis rows to the output workbook and every configured sink
type PublisherPort interface {
	Publish(ctx context.Context, run Run, rows []anadom.Row) (Result, error)
}
