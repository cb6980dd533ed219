// Package domain defines the article types shared by fetch, analyze and report
package domain

import (
	"crypto/sha256"
	"encoding/hex"
)

// Source is one input row: a stable id and the page to fetch
type Source struct {
	ID  string `json:"url_id"`
	URL string `json:"url"`
}

// Article is the extracted text for a Source
type Article struct {
	Source
	Title  string `json:"title"`
	Text   string `json:"text"`             // title, blank line, body; what gets saved
	Method string `json:"method,omitempty"` // extraction strategy
	Cached bool   `json:"cached"`
}

// HashID derives a short stable id from a url, used for feed items and cache keys
func HashID(url string) string {
	sum := sha256.Sum256([]byte(url))
	return hex.EncodeToString(sum[:8])
}
