// Package metrics computes the sentiment and readability statistics for one article
package metrics

import (
	"strings"
	"unicode/utf8"

	"articlestats/internal/core/normalize"
	"articlestats/internal/core/pronoun"
	"articlestats/internal/core/syllable"
	"articlestats/internal/core/tokenize"
)

// epsilon keeps the sentiment ratios finite for texts with no hits
const epsilon = 0.000001

// Columns is the exact output header order
var Columns = []string{
	"URL_ID",
	"URL",
	"POSITIVE SCORE",
	"NEGATIVE SCORE",
	"POLARITY SCORE",
	"SUBJECTIVITY SCORE",
	"AVG SENTENCE LENGTH",
	"PERCENTAGE OF COMPLEX WORDS",
	"FOG INDEX",
	"AVG NUMBER OF WORDS PER SENTENCE",
	"COMPLEX WORD COUNT",
	"WORD COUNT",
	"SYLLABLE PER WORD",
	"PERSONAL PRONOUNS",
	"AVG WORD LENGTH",
}

// Metrics holds the thirteen statistics in column order
type Metrics struct {
	PositiveScore          int     `json:"positive_score"`
	NegativeScore          int     `json:"negative_score"`
	PolarityScore          float64 `json:"polarity_score"`
	SubjectivityScore      float64 `json:"subjectivity_score"`
	AvgSentenceLength      float64 `json:"avg_sentence_length"`
	PercentageComplexWords float64 `json:"percentage_of_complex_words"`
	FogIndex               float64 `json:"fog_index"`
	AvgWordsPerSentence    float64 `json:"avg_number_of_words_per_sentence"`
	ComplexWordCount       int     `json:"complex_word_count"`
	WordCount              int     `json:"word_count"`
	SyllablesPerWord       float64 `json:"syllable_per_word"`
	PersonalPronouns       int     `json:"personal_pronouns"`
	AvgWordLength          float64 `json:"avg_word_length"`
}

// Values returns the statistics in Columns order, without URL_ID and URL
func (m Metrics) Values() []any {
	return []any{
		m.PositiveScore,
		m.NegativeScore,
		m.PolarityScore,
		m.SubjectivityScore,
		m.AvgSentenceLength,
		m.PercentageComplexWords,
		m.FogIndex,
		m.AvgWordsPerSentence,
		m.ComplexWordCount,
		m.WordCount,
		m.SyllablesPerWord,
		m.PersonalPronouns,
		m.AvgWordLength,
	}
}

// IsZero reports whether nothing was scored
func (m Metrics) IsZero() bool { return m == Metrics{} }

// Lexicon is the word list lookup the analyzer scores against
type Lexicon interface {
	IsPositive(word string) bool
	IsNegative(word string) bool
	IsStop(word string) bool
}

// Analyzer scores texts against a Lexicon; safe for concurrent use
type Analyzer struct {
	lx Lexicon
}

// New returns an Analyzer over lx
func New(lx Lexicon) *Analyzer { return &Analyzer{lx: lx} }

// Analyze computes Metrics for text; empty text or no scoring words gives all zeros
func (a *Analyzer) Analyze(text string) Metrics {
	if strings.TrimSpace(text) == "" {
		return Metrics{}
	}

	sentences := tokenize.Sentences(text)
	raw := tokenize.Words(text)

	all := tokenize.Fields(normalize.LowerWords(text))
	words := all[:0]
	for _, w := range all {
		if !a.lx.IsStop(w) {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return Metrics{}
	}

	var m Metrics
	var syllables, runes int
	for _, w := range words {
		if a.lx.IsPositive(w) {
			m.PositiveScore++
		}
		if a.lx.IsNegative(w) {
			m.NegativeScore++
		}
		n := syllable.Count(w)
		syllables += n
		if n > 2 {
			m.ComplexWordCount++
		}
		runes += utf8.RuneCountInString(w)
	}

	p, n, wc := float64(m.PositiveScore), float64(m.NegativeScore), float64(len(words))
	m.PolarityScore = (p - n) / ((p + n) + epsilon)
	m.SubjectivityScore = (p + n) / (wc + epsilon)

	if len(sentences) > 0 {
		m.AvgSentenceLength = float64(len(raw)) / float64(len(sentences))
	}
	m.PercentageComplexWords = float64(m.ComplexWordCount) / wc
	m.FogIndex = 0.4 * (m.AvgSentenceLength + m.PercentageComplexWords)
	m.AvgWordsPerSentence = m.AvgSentenceLength
	m.WordCount = len(words)
	m.SyllablesPerWord = float64(syllables) / wc
	m.PersonalPronouns = pronoun.Count(text)
	m.AvgWordLength = float64(runes) / wc
	return m
}
