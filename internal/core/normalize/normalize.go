// Package normalize cleans extracted article text and folds words into lexicon keys
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// pool of fresh fold chains; a transform.Transformer is not safe for concurrent use
var foldPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			cases.Fold(),
			runes.Remove(runes.In(unicode.Cf)), // ZWJ ZWNJ FEFF
		)
	},
}

// Fold maps a word to its lexicon key: NFKC, unicode case fold, format chars dropped
// Fold("Ａbandon") == Fold("abandon") == "abandon"
func Fold(s string) string {
	if s == "" {
		return ""
	}
	tr := foldPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, Sanitize(s))
	tr.Reset()
	foldPool.Put(tr)
	if err != nil {
		return strings.ToLower(s)
	}
	return out
}

// LowerWords lowercases text and blanks every rune that is neither a word rune nor whitespace
// the result is what gets split into scoring words
func LowerWords(text string) string {
	return strings.Map(func(r rune) rune {
		if isWord(r) || unicode.IsSpace(r) {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)
}

// isWord reports letters, numbers of any kind (½ ² Ⅻ) and underscore
// combining marks are not word runes, so a decomposed "café" splits to "cafe"
func isWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// keepOnly drops every rune that is not a word rune, whitespace or one of extra
func keepOnly(s, extra string) string {
	return strings.Map(func(r rune) rune {
		if isWord(r) || unicode.IsSpace(r) || strings.ContainsRune(extra, r) {
			return r
		}
		return -1
	}, s)
}

// collapseSpaces turns whitespace runs into one ASCII space and trims the ends
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
