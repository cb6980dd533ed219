// Package lexicon loads the sentiment dictionaries and stop word lists used for scoring
package lexicon

import (
	"bufio"
	"bytes"
	stderrs "errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"articlestats/internal/core/normalize"
	perr "articlestats/internal/platform/errors"
	"articlestats/internal/platform/logger"
)

// file names expected under Options.MasterDictionary
const (
	PositiveFile = "positive-words.txt"
	NegativeFile = "negative-words.txt"
)

// Options locates the word lists
type Options struct {
	MasterDictionary string // dir holding positive-words.txt and negative-words.txt
	StopWords        string // dir of *.txt stop word lists
	ExactCase        bool   // keep entries as written instead of case folding them
}

// Sizes reports entry counts per set
type Sizes struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Stop     int `json:"stop"`
}

// Lexicon is a read only set of word lists; safe for concurrent use
type Lexicon struct {
	positive map[string]struct{}
	negative map[string]struct{}
	stop     map[string]struct{}
	exact    bool
}

// Load reads the dictionaries described by o
// a missing positive or negative list is an error, a missing stop word dir only warns
func Load(o Options) (*Lexicon, error) {
	log := logger.Named("lexicon")
	lx := &Lexicon{exact: o.ExactCase, stop: map[string]struct{}{}}

	var err error
	if lx.positive, err = lx.loadFile(filepath.Join(o.MasterDictionary, PositiveFile), false); err != nil {
		return nil, err
	}
	if lx.negative, err = lx.loadFile(filepath.Join(o.MasterDictionary, NegativeFile), false); err != nil {
		return nil, err
	}

	files, err := stopFiles(o.StopWords)
	if err != nil {
		log.Warn().Err(err).Str("dir", o.StopWords).Msg("stop words unavailable; scoring without them")
	}
	for _, f := range files {
		set, err := lx.loadFile(f, true)
		if err != nil {
			return nil, err
		}
		for w := range set {
			lx.stop[w] = struct{}{}
		}
	}

	s := lx.Sizes()
	log.Info().
		Int("positive", s.Positive).
		Int("negative", s.Negative).
		Int("stop", s.Stop).
		Int("stop_files", len(files)).
		Bool("exact_case", o.ExactCase).
		Msg("lexicon loaded")
	return lx, nil
}

// FromWords builds a Lexicon from in memory lists using the same line rules as Load
func FromWords(positive, negative, stop []string, exact bool) *Lexicon {
	lx := &Lexicon{exact: exact}
	lx.positive = lx.collect(strings.Join(positive, "\n"), false)
	lx.negative = lx.collect(strings.Join(negative, "\n"), false)
	lx.stop = lx.collect(strings.Join(stop, "\n"), true)
	return lx
}

// IsPositive reports whether word is in the positive list
func (l *Lexicon) IsPositive(word string) bool { return l.has(l.positive, word) }

// IsNegative reports whether word is in the negative list
func (l *Lexicon) IsNegative(word string) bool { return l.has(l.negative, word) }

// IsStop reports whether word is a stop word
func (l *Lexicon) IsStop(word string) bool { return l.has(l.stop, word) }

// Sizes returns entry counts
func (l *Lexicon) Sizes() Sizes {
	return Sizes{Positive: len(l.positive), Negative: len(l.negative), Stop: len(l.stop)}
}

func (l *Lexicon) has(set map[string]struct{}, word string) bool {
	_, ok := set[l.key(word)]
	return ok
}

func (l *Lexicon) key(word string) string {
	if l.exact {
		return word
	}
	return normalize.Fold(word)
}

func (l *Lexicon) loadFile(path string, stopList bool) (map[string]struct{}, error) {
	b, err := os.ReadFile(path)
	if stderrs.Is(err, fs.ErrNotExist) {
		return nil, perr.Wrapf(err, perr.ErrorCodeNotFound, "word list %s not found", path)
	}
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "read word list %s", path)
	}
	text, err := decode(b)
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "decode word list %s", path)
	}
	return l.collect(text, stopList), nil
}

// collect applies the line rules: trim, skip blanks and ; comments,
// and for stop lists cut a trailing "| comment"
func (l *Lexicon) collect(text string, stopList bool) map[string]struct{} {
	set := make(map[string]struct{}, 1024)
	sc := bufio.NewScanner(strings.NewReader(text))
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		if stopList {
			if i := strings.IndexByte(line, '|'); i >= 0 {
				line = strings.TrimSpace(line[:i])
			}
			if line == "" {
				continue
			}
		}
		set[l.key(line)] = struct{}{}
	}
	return set
}

// stopFiles lists *.txt under dir in name order
func stopFiles(dir string) ([]string, error) {
	if dir == "" {
		return nil, perr.InvalidArgf("stop word dir not set")
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".txt") {
			continue
		}
		out = append(out, filepath.Join(dir, e.Name()))
	}
	sort.Strings(out)
	return out, nil
}

var bom = []byte{0xEF, 0xBB, 0xBF}

func trimBOM(b []byte) []byte { return bytes.TrimPrefix(b, bom) }
