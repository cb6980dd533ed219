package normalize

import (
	"regexp"
	"strings"
)

var (
	reTag      = regexp.MustCompile(`<[^>]+>`)
	reCtrlRun  = regexp.MustCompile(`[\n\r\t]+`)
	reBlankRun = regexp.MustCompile(`\n\s*\n`)
	reTrailers = regexp.MustCompile(`(?is)(related articles|recommended stories).*`)
)

// StripTags removes anything shaped like an html tag
func StripTags(s string) string { return reTag.ReplaceAllString(s, "") }

// CleanParagraph flattens one extracted block to a single line of prose
// tags are stripped after collapsing, so a removed tag can leave a double space
func CleanParagraph(s string) string {
	s = reCtrlRun.ReplaceAllString(Sanitize(s), " ")
	s = collapseSpaces(s)
	s = StripTags(s)
	return keepOnly(s, `.,!?"'-`)
}

// CleanTitle is CleanParagraph for headlines; pipes and colons survive
func CleanTitle(s string) string {
	if s == "" {
		return ""
	}
	s = StripTags(Sanitize(s))
	s = collapseSpaces(s)
	return keepOnly(s, `.,!?"|:-`)
}

// TidyBody cleans a full article body: leftover tags go, blank line runs shrink
// to one empty line, and everything from a related/recommended trailer on is cut
func TidyBody(s string) string {
	s = StripTags(Sanitize(s))
	s = reBlankRun.ReplaceAllString(s, "\n\n")
	s = reTrailers.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// WordCount counts whitespace separated fields
func WordCount(s string) int { return len(strings.Fields(s)) }
