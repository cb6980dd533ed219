// Package net provides utilities for working with request contexts
package net

import (
	"context"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// ctxKey is an unexported key type for context values
type ctxKey string

const keyRunID ctxKey = "run_id"

// WithRequest annotates context with the request id and, when known, the pipeline run id
func WithRequest(ctx context.Context, reqID, runID string) context.Context {
	if reqID != "" {
		// set chi RequestID so chimw.GetReqID can retrieve it
		ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	}
	if runID != "" {
		ctx = context.WithValue(ctx, keyRunID, runID)
	}
	return ctx
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string {
	return chimw.GetReqID(ctx)
}

// RunID returns the run id on the context if present
func RunID(ctx context.Context) string {
	if v, ok := ctx.Value(keyRunID).(string); ok {
		return v
	}
	return ""
}
