package tokenize

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

type rule struct {
	re   *regexp.Regexp
	repl string
}

func r(pattern, repl string) rule { return rule{regexp.MustCompile(pattern), repl} }

// Treebank rules, applied in order to one sentence
var (
	startQuotes = []rule{
		r("([«“‘„]|`+)", " ${1} "),
		r(`^"`, "``"),
		r("(``)", " ${1} "),
		r(`([ (\[{<])("|'')`, "${1} `` "),
	}
	punctuation = []rule{
		r(`([^.])(\.)([\])}>"']*)\s*$`, "${1} ${2} ${3} "),
		r(`([:,])([^\p{Nd}])`, " ${1} ${2}"),
		r(`([:,])$`, " ${1} "),
		r(`\.{2,}`, " ${0} "),
		r(`[;@#$%&]`, " ${0} "),
		r(`([^.])(\.)([\])}>"']*)\s*$`, "${1} ${2}${3} "),
		r(`[?!]`, " ${0} "),
		r(`([^'])' `, "${1} ' "),
		r(`[*]`, " ${0} "),
	}
	brackets = []rule{
		r(`[\]\[(){}<>]`, " ${0} "),
		r(`--`, " -- "),
	}
	endQuotes = []rule{
		r(`([»”’])`, " ${1} "),
		r(`''`, " '' "),
		r(`"`, " '' "),
		r(`([^' ])('[sS]|'[mM]|'[dD]|') `, "${1} ${2} "),
		r(`([^' ])('ll|'LL|'re|'RE|'ve|'VE|n't|N'T) `, "${1} ${2} "),
	}
)

// contraction splits a fused form such as "cannot" into its two halves
// boundaries are checked by hand so that they follow unicode word runes
type contraction struct {
	re    *regexp.Regexp
	lead  bool // a word boundary is required before the match
	space bool // whitespace, not just a boundary, must follow
}

var contractions = []contraction{
	{re: regexp.MustCompile(`(?i)(can)(not)`), lead: true},
	{re: regexp.MustCompile(`(?i)(d)('ye)`), lead: true},
	{re: regexp.MustCompile(`(?i)(gim)(me)`), lead: true},
	{re: regexp.MustCompile(`(?i)(gon)(na)`), lead: true},
	{re: regexp.MustCompile(`(?i)(got)(ta)`), lead: true},
	{re: regexp.MustCompile(`(?i)(lem)(me)`), lead: true},
	{re: regexp.MustCompile(`(?i)(more)('n)`), lead: true},
	{re: regexp.MustCompile(`(?i)(wan)(na)`), lead: true, space: true},
	{re: regexp.MustCompile(`(?i) ('t)(is)`)},
	{re: regexp.MustCompile(`(?i) ('t)(was)`)},
}

func treebank(sentence string) []string {
	s := apply(sentence, startQuotes)
	s = splitQuote(s)
	s = apply(s, punctuation)
	s = apply(s, brackets)
	s = apply(" "+s+" ", endQuotes)
	return strings.Fields(splitContractions(s))
}

func apply(s string, rules []rule) string {
	for _, ru := range rules {
		s = ru.re.ReplaceAllString(s, ru.repl)
	}
	return s
}

// splitContractions pads s and separates every fused contraction in it
func splitContractions(s string) string {
	s = " " + s + " "
	for _, c := range contractions {
		s = c.split(s)
	}
	return s
}

func (c contraction) split(s string) string {
	var b strings.Builder
	last := 0
	for _, m := range c.re.FindAllStringSubmatchIndex(s, -1) {
		if c.lead {
			if prev, _ := utf8.DecodeLastRuneInString(s[:m[0]]); m[0] > 0 && isWord(prev) {
				continue
			}
		}
		next, n := utf8.DecodeRuneInString(s[m[1]:])
		if c.space && (n == 0 || !unicode.IsSpace(next)) {
			continue
		}
		if !c.space && n > 0 && isWord(next) {
			continue
		}
		b.WriteString(s[last:m[0]])
		b.WriteString(" " + s[m[2]:m[3]] + " " + s[m[4]:m[5]] + " ")
		last = m[1]
	}
	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}

// splitQuote detaches a lone word rune after an apostrophe ('x becomes ' x)
// unless the rune opens a contraction ('m 't 's 'd 'n)
func splitQuote(s string) string {
	if !strings.Contains(s, "'") {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); {
		if s[i] == '\'' {
			c, n := utf8.DecodeRuneInString(s[i+1:])
			if n > 0 && isWord(c) && !strings.ContainsRune("mtsdnMTSDN", c) {
				after, m := utf8.DecodeRuneInString(s[i+1+n:])
				if m == 0 || !isWord(after) {
					b.WriteString("' ")
					b.WriteRune(c)
					i += 1 + n
					continue
				}
			}
		}
		b.WriteByte(s[i])
		i++
	}
	return b.String()
}
