package syllable

import "testing"

func TestCount(t *testing.T) {
	tests := []struct {
		word string
		want int
	}{
		{"", 1},
		{"a", 1},
		{"cat", 1},
		{"the", 1},
		{"make", 1},
		{"water", 2},
		{"beautiful", 3},
		{"Yesterday", 3},
		{"created", 1},
		{"boxes", 1},
		{"horses", 1},
		{"played", 1},
		{"queue", 1},
		{"rhythm", 1},
		{"education", 4},
		{"ed", 1},
	}
	for _, tc := range tests {
		if got := Count(tc.word); got != tc.want {
			t.Errorf("Count(%q) = %d, want %d", tc.word, got, tc.want)
		}
	}
}

func TestIsComplex(t *testing.T) {
	for word, want := range map[string]bool{
		"analysis":   true,
		"simple":     false,
		"government": true,
		"word":       false,
	} {
		if got := IsComplex(word); got != want {
			t.Errorf("IsComplex(%q) = %v", word, got)
		}
	}
}
