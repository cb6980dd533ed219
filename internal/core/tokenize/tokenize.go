// Package tokenize splits article text into sentences and words
package tokenize

import (
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// punkt loads the trained english model once; it is read only afterwards
var punkt = sync.OnceValues(func() (*sentences.DefaultSentenceTokenizer, error) {
	return english.NewSentenceTokenizer(nil)
})

var reTerminators = regexp.MustCompile(`[.!?]+`)

// Sentences splits text with the Punkt english model
// when the model cannot load it splits on runs of . ! and ?
func Sentences(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	tok, err := punkt()
	if err != nil {
		return nonEmpty(reTerminators.Split(text, -1))
	}
	raw := tok.Tokenize(text)
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// Words tokenizes each sentence Treebank style; punctuation comes back as its own token
func Words(text string) []string {
	var out []string
	for _, s := range Sentences(text) {
		out = append(out, treebank(s)...)
	}
	return out
}

// Fields splits on whitespace and fused contractions ("cannot" gives can, not)
// and keeps tokens made only of letters and numbers
func Fields(s string) []string {
	parts := strings.Fields(splitContractions(s))
	out := parts[:0]
	for _, p := range parts {
		if isAlnum(p) {
			out = append(out, p)
		}
	}
	return out
}

func isAlnum(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsNumber(r) {
			return false
		}
	}
	return true
}

func isWord(r rune) bool { return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r) }

func nonEmpty(in []string) []string {
	var out []string
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
