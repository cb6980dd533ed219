// Package syllable estimates english syllable counts with a vowel group heuristic
package syllable

import "strings"

const vowels = "aeiouy"

// Count returns the number of syllables in word, never less than 1
//
// one trailing "es" or "ed" is dropped first, then runs of aeiouy are counted,
// and a silent final e takes one off
func Count(word string) int {
	w := strings.ToLower(word)
	if strings.HasSuffix(w, "es") || strings.HasSuffix(w, "ed") {
		w = w[:len(w)-2]
	}
	n := 0
	prevVowel := false
	for _, r := range w {
		v := strings.ContainsRune(vowels, r)
		if v && !prevVowel {
			n++
		}
		prevVowel = v
	}
	if strings.HasSuffix(w, "e") {
		n--
	}
	return max(n, 1)
}

// IsComplex reports whether word has more than two syllables
func IsComplex(word string) bool { return Count(word) > 2 }
