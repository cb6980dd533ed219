package lexicon

import (
	"path/filepath"
	"testing"

	perr "articlestats/internal/platform/errors"
	kit "articlestats/internal/platform/testkit"
)

func fixture(t *testing.T) string {
	t.Helper()
	return kit.WriteFiles(t, map[string]string{
		"MasterDictionary/positive-words.txt": "; opinion lexicon header\n;\n\nGood\nexcellent\n  happy  \ncaf\xe9\n",
		"MasterDictionary/negative-words.txt": "\xef\xbb\xbfbad\nterrible\n2-faced\n",
		"StopWords/StopWords_Names.txt":       "SMITH | Surnames from 1990 census\nJONES\n | orphan comment\n",
		"StopWords/StopWords_Generic.txt":     "a\nthe\nOF\n",
		"StopWords/readme.md":                 "ignored\n",
	})
}

func TestLoad_FoldsByDefault(t *testing.T) {
	root := fixture(t)
	lx, err := Load(Options{
		MasterDictionary: filepath.Join(root, "MasterDictionary"),
		StopWords:        filepath.Join(root, "StopWords"),
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if got := lx.Sizes(); got != (Sizes{Positive: 4, Negative: 3, Stop: 5}) {
		t.Fatalf("Sizes = %+v", got)
	}
	checks := []struct {
		name string
		fn   func(string) bool
		word string
		want bool
	}{
		{"positive folded", lx.IsPositive, "good", true},
		{"positive trimmed", lx.IsPositive, "HAPPY", true},
		{"latin1 decoded", lx.IsPositive, "café", true},
		{"comment skipped", lx.IsPositive, "; opinion lexicon header", false},
		{"bom stripped", lx.IsNegative, "bad", true},
		{"hyphenated entry", lx.IsNegative, "2-faced", true},
		{"stop comment cut", lx.IsStop, "smith", true},
		{"stop plain", lx.IsStop, "jones", true},
		{"stop generic", lx.IsStop, "of", true},
		{"non txt ignored", lx.IsStop, "ignored", false},
	}
	for _, c := range checks {
		if got := c.fn(c.word); got != c.want {
			t.Errorf("%s: %q = %v, want %v", c.name, c.word, got, c.want)
		}
	}
}

func TestLoad_ExactCase(t *testing.T) {
	root := fixture(t)
	lx, err := Load(Options{
		MasterDictionary: filepath.Join(root, "MasterDictionary"),
		StopWords:        filepath.Join(root, "StopWords"),
		ExactCase:        true,
	})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if lx.IsStop("smith") || !lx.IsStop("SMITH") {
		t.Fatalf("exact case should keep upper case stop words as written")
	}
	if lx.IsPositive("good") || !lx.IsPositive("Good") {
		t.Fatalf("exact case should not fold positives")
	}
}

func TestLoad_Missing(t *testing.T) {
	root := fixture(t)

	_, err := Load(Options{MasterDictionary: filepath.Join(root, "nope")})
	if !perr.IsCode(err, perr.ErrorCodeNotFound) {
		t.Fatalf("missing dictionary should be NotFound, got %v", err)
	}

	lx, err := Load(Options{
		MasterDictionary: filepath.Join(root, "MasterDictionary"),
		StopWords:        filepath.Join(root, "absent"),
	})
	if err != nil {
		t.Fatalf("missing stop words should not fail: %v", err)
	}
	if lx.Sizes().Stop != 0 {
		t.Fatalf("stop set should be empty")
	}
}

func TestFromWords(t *testing.T) {
	lx := FromWords([]string{"Win", ""}, []string{"loss"}, []string{"AND | conj", ";x"}, false)
	if !lx.IsPositive("win") || !lx.IsNegative("LOSS") || !lx.IsStop("and") {
		t.Fatalf("FromWords lookups failed: %+v", lx.Sizes())
	}
	if lx.Sizes() != (Sizes{Positive: 1, Negative: 1, Stop: 1}) {
		t.Fatalf("Sizes = %+v", lx.Sizes())
	}
}

func TestDecode(t *testing.T) {
	tests := []struct{ name, in, want string }{
		{"utf8", "naïve", "naïve"},
		{"bom", "\xef\xbb\xbfok", "ok"},
		{"latin1", "na\xefve", "naïve"},
	}
	for _, tc := range tests {
		got, err := decode([]byte(tc.in))
		if err != nil || got != tc.want {
			t.Errorf("%s: decode = %q, %v", tc.name, got, err)
		}
	}
}
