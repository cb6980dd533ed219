package errors

// Helpers for errors coming back from the sites we download articles from

import (
	"context"
	stderrs "errors"
	"fmt"
	"net"
	"net/http"
)

// StatusError is a non-2xx answer from an upstream server
type StatusError struct {
	URL    string
	Status int
}

// Error implements error
func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream %s returned %d %s", e.URL, e.Status, http.StatusText(e.Status))
}

// Temporary reports whether the status is worth retrying (429 and 5xx)
func (e *StatusError) Temporary() bool {
	return e.Status == http.StatusTooManyRequests || e.Status >= 500
}

// Upstream wraps a StatusError into a coded fetch error
func Upstream(url string, status int) error {
	se := &StatusError{URL: url, Status: status}
	code := ErrorCodeFetch
	if status == http.StatusNotFound || status == http.StatusGone {
		code = ErrorCodeNotFound
	}
	return &Error{code: code, msg: "fetch failed", orig: se}
}

// StatusOf returns the upstream status carried by err, or 0
func StatusOf(err error) int {
	var se *StatusError
	if stderrs.As(err, &se) {
		return se.Status
	}
	return 0
}

// IsUpstreamRetryable reports whether err is an upstream status or network failure that may clear on retry
// Local cancellation is never retryable
func IsUpstreamRetryable(err error) bool {
	if err == nil {
		return false
	}
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return false
	}
	var se *StatusError
	if stderrs.As(err, &se) {
		return se.Temporary()
	}
	var ne net.Error
	if stderrs.As(err, &ne) {
		return true
	}
	return false
}
