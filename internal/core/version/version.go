// Package version reports build information stamped in with -ldflags
package version

// BuildInfo holds version information about the build
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information for service
//
//	go build -ldflags "-X 'articlestats/internal/core/version.version=v0.1.0' \
//	  -X 'articlestats/internal/core/version.commit=abcd' -X 'articlestats/internal/core/version.date=2026-10-16'"
func Info(service string) BuildInfo {
	if service == "" {
		service = "articlestats"
	}
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// UserAgentTag is the product token sent alongside browser user agents, e.g. articlestats/v0.1.0
func UserAgentTag() string { return "articlestats/" + version }

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
