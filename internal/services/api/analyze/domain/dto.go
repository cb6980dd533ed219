// Package domain holds the analyze API payloads
package domain

import "articlestats/internal/core/metrics"

// MaxTextBytes caps /analyze/text input, counted in UTF-8 bytes
const MaxTextBytes = 2 << 20

// TextInput is the body of POST /analyze/text
type TextInput struct {
	Text string `json:"text" validate:"required"`
}

// URLInput is the body of POST /analyze/url
type URLInput struct {
	URL   string `json:"url"    validate:"required,http_url,max=2048"`
	URLID string `json:"url_id" validate:"omitempty,max=128,excludesall=/\\"`
}

// Article is the result of POST /analyze/url
type Article struct {
	URLID   string          `json:"url_id"`
	URL     string          `json:"url"`
	Title   string          `json:"title"`
	Chars   int             `json:"chars"`
	Cached  bool            `json:"cached"`
	Method  string          `json:"method,omitempty"`
	Metrics metrics.Metrics `json:"metrics"`
}
