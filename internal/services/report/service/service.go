// Package service implements the report service
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"articlestats/internal/adapters/sheet"
	"articlestats/internal/core/metrics"
	"articlestats/internal/platform/logger"
	anadom "articlestats/internal/services/analyze/domain"
	"articlestats/internal/services/report/domain"
)

// Config for the report service
type Config struct {
	Output string // path of the output workbook
}

// Service implements domain.PublisherPort
type Service struct {
	Sinks []domain.Sink
	Cfg   Config
}

// New constructs the report service; sinks run after the workbook is written, in order
func New(cfg Config, sinks ...domain.Sink) *Service {
	if cfg.Output == "" {
		cfg.Output = "output.xlsx"
	}
	return &Service{Sinks: sinks, Cfg: cfg}
}

// Encode renders rows as a workbook with the metrics header
func Encode(rows []anadom.Row) ([]byte, error) {
	w, err := sheet.NewWriter(metrics.Columns)
	if err != nil {
		return nil, err
	}
	defer func() { _ = w.Close() }()
	for _, r := range rows {
		if err := w.Append(r.Values()...); err != nil {
			return nil, err
		}
	}
	return w.Bytes()
}

// Publish writes the output workbook, then hands the batch to every sink
// a workbook failure stops the publish; sink failures are joined and returned after all sinks ran
func (s *Service) Publish(ctx context.Context, run domain.Run, rows []anadom.Row) (domain.Result, error) {
	log := logger.C(ctx).With().Str("component", "report").Str("run_id", run.ID.String()).Logger()
	res := domain.Result{Run: run, Output: s.Cfg.Output, Rows: len(rows)}

	wb, err := Encode(rows)
	if err != nil {
		return res, err
	}
	if err := sheet.WriteFile(s.Cfg.Output, wb); err != nil {
		return res, err
	}
	log.Info().Str("output", s.Cfg.Output).Int("rows", len(rows)).Msg("workbook written")

	batch := domain.Batch{Run: run, Rows: rows, Workbook: wb}
	var errs []error
	for _, sink := range s.Sinks {
		started := time.Now()
		if err := sink.Write(ctx, batch); err != nil {
			log.Error().Err(err).Str("sink", sink.Name()).Msg("sink failed")
			errs = append(errs, fmt.Errorf("%s: %w", sink.Name(), err))
			continue
		}
		res.Sinks = append(res.Sinks, sink.Name())
		log.Info().Str("sink", sink.Name()).Dur("elapsed", time.Since(started)).Msg("sink written")
	}
	return res, errors.Join(errs...)
}
