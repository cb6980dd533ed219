// Package pronoun counts first person pronouns in article text
package pronoun

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// boundaries are checked in Count; RE2's \b only knows ASCII word characters
var re = regexp.MustCompile(`(?i)(i|we|my|ours|us)`)

// Count returns how many of I, we, my, ours and us appear as whole words, any case
//
// two readings of "us" are skipped: the all caps country name, and any match
// followed by whitespace and "state" or "states" ("US states", "us state")
func Count(text string) int {
	n := 0
	for _, m := range re.FindAllStringIndex(text, -1) {
		if !wholeWord(text, m[0], m[1]) {
			continue
		}
		word := text[m[0]:m[1]]
		if word == "US" || beforeState(text[m[1]:]) {
			continue
		}
		n++
	}
	return n
}

// wholeWord reports whether text[start:end] has no word rune on either side
func wholeWord(text string, start, end int) bool {
	if prev, size := utf8.DecodeLastRuneInString(text[:start]); size > 0 && isWord(prev) {
		return false
	}
	if next, size := utf8.DecodeRuneInString(text[end:]); size > 0 && isWord(next) {
		return false
	}
	return true
}

func isWord(r rune) bool { return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) }

// beforeState reports whether rest is whitespace followed by "state", any case
func beforeState(rest string) bool {
	trimmed := strings.TrimLeftFunc(rest, unicode.IsSpace)
	if len(trimmed) == len(rest) {
		return false
	}
	return len(trimmed) >= 5 && strings.EqualFold(trimmed[:5], "state")
}
