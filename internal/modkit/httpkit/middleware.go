package httpkit

import (
	"compress/flate"
	"net/http"
	"strings"
	"time"

	"articlestats/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	Timeout     time.Duration
	SlowRequest time.Duration
	CORS        middleware.CORSOptions
	MaxInFlight int // 0 leaves concurrency unbounded
}

// CommonStack returns the baseline middleware slice applied under /api/v1
// zero options give a 2m timeout and a 2s slow request mark
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 2 * time.Minute
	}
	if o.SlowRequest <= 0 {
		o.SlowRequest = 2 * time.Second
	}
	mw := []func(http.Handler) http.Handler{
		middleware.RequestID(),
		middleware.RealIP(),

		middleware.RecoverJSON,
		middleware.NoCache(),

		middleware.AccessLogZerolog(middleware.AccessLogOptions{
			Slow: o.SlowRequest,
			Skip: isProbe,
		}),

		middleware.CORS(o.CORS),
		middleware.Compress(flate.BestSpeed),
		middleware.StripSlashes(),
		middleware.Timeout(o.Timeout),
	}
	if o.MaxInFlight > 0 {
		mw = append(mw, middleware.Throttle(o.MaxInFlight))
	}
	return mw
}

// probes are polled every few seconds and would drown the access log
func isProbe(r *http.Request) bool {
	p := r.URL.Path
	return strings.HasSuffix(p, "/meta/health") || strings.HasSuffix(p, "/meta/ready")
}
