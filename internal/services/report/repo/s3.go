package repo

import (
	"context"

	"articlestats/internal/platform/logger"
	"articlestats/internal/services/report/domain"
)

// xlsxContentType is the registered media type for .xlsx
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Uploader puts an object and returns where it landed; *blob.Store satisfies it
type Uploader interface {
	Key(parts ...string) string
	Put(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

// S3Sink uploads the workbook to <prefix>/<run_id>/output.xlsx
type S3Sink struct {
	up Uploader
}

// NewS3Sink wraps an uploader
func NewS3Sink(up Uploader) *S3Sink { return &S3Sink{up: up} }

// Name implements domain.Sink
func (s *S3Sink) Name() string { return "s3" }

// Write implements domain.Sink
func (s *S3Sink) Write(ctx context.Context, b domain.Batch) error {
	if len(b.Workbook) == 0 {
		return nil
	}
	uri, err := s.up.Put(ctx, s.up.Key(b.Run.ID.String(), "output.xlsx"), b.Workbook, xlsxContentType)
	if err != nil {
		return err
	}
	logger.C(ctx).Info().Str("uri", uri).Int("bytes", len(b.Workbook)).Msg("workbook uploaded")
	return nil
}
