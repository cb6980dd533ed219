package pronoun

import "testing"

func TestCount(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{"empty", "", 0},
		{"basic", "I think we should go. It is my call, and ours.", 4},
		{"case insensitive", "WE and We and wE", 3},
		{"us lowercase", "Join us today.", 1},
		{"us country", "The US economy grew.", 0},
		{"us title case", "Us versus them.", 1},
		{"followed by states", "we states and us  States", 0},
		{"followed by state", "my\tstate of mind", 0},
		{"state needs whitespace", "us-state ties", 1},
		{"statesman prefix", "us statesmen", 0},
		{"whole words only", "mine wealthy business myth iPhone", 0},
		{"apostrophe", "I'm sure we're fine", 2},
		{"accented letter before", "éwe and mymé", 0},
		{"accented letter after", "weé usñ", 0},
		{"digits and underscore join words", "we2 _my 3us", 0},
		{"non ascii punctuation splits", "«we» “my” (us)", 3},
		{"greek neighbours", "αus weβ", 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Count(tc.in); got != tc.want {
				t.Fatalf("Count(%q) = %d, want %d", tc.in, got, tc.want)
			}
		})
	}
}
