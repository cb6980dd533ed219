// Package extract recovers the article title and body from a downloaded html page
package extract

import (
	"bytes"
	"net/url"
	"strings"

	"articlestats/internal/core/normalize"
	perr "articlestats/internal/platform/errors"
	pstrings "articlestats/internal/platform/strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

const (
	// minBodyWords is the word count a candidate body must exceed
	minBodyWords = 100
	// minBlockWords is the word count a paragraph must exceed to be kept
	minBlockWords = 4
)

// Method names which strategy produced the body
type Method string

// extraction strategies, tried in this order
const (
	MethodReadability Method = "readability"
	MethodSelector    Method = "selector"
	MethodParagraphs  Method = "paragraphs"
)

// ErrNoContent means no strategy found a long enough body
var ErrNoContent = perr.New(perr.ErrorCodeExtract, "no article content found")

// Article is the cleaned result of an extraction
type Article struct {
	Title    string `json:"title"`
	Text     string `json:"text"`
	Method   Method `json:"method"`
	Selector string `json:"selector,omitempty"`
}

// Format renders the article the way it is saved: title, blank line, body
func Format(a Article) string {
	if a.Title == "" {
		return a.Text
	}
	return a.Title + "\n\n" + a.Text
}

// content containers tried in order when readability comes up short
var selectors = []string{
	"article",
	"div.article-body, div.article-content, div.story-content",
	"div[itemprop=articleBody]",
	"div[class]", // narrowed to class names containing "article" by match
	"div[role=main]",
}

// Extract pulls the article out of page; pageURL resolves relative links for readability
func Extract(page []byte, pageURL string) (Article, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		base = &url.URL{}
	}

	var rdTitle string
	if rd, err := readability.FromReader(bytes.NewReader(page), base); err == nil {
		rdTitle = rd.Title
		if text := normalize.TidyBody(rd.TextContent); normalize.WordCount(text) > minBodyWords {
			return Article{Title: normalize.CleanTitle(rdTitle), Text: text, Method: MethodReadability}, nil
		}
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return Article{}, perr.Wrap(err, perr.ErrorCodeExtract, "parse html")
	}
	title := pstrings.FirstNonBlank(
		normalize.CleanTitle(rdTitle),
		normalize.CleanTitle(doc.Find("title").First().Text()),
		normalize.CleanTitle(doc.Find(`meta[property="og:title"]`).AttrOr("content", "")),
	)

	for _, sel := range selectors {
		node := match(doc, sel)
		if node.Length() == 0 {
			continue
		}
		if text, ok := collect(node.Find("p, h2, h3, h4")); ok {
			return Article{Title: title, Text: normalize.TidyBody(text), Method: MethodSelector, Selector: sel}, nil
		}
	}
	if text, ok := collect(doc.Find("p")); ok {
		return Article{Title: title, Text: normalize.TidyBody(text), Method: MethodParagraphs}, nil
	}
	return Article{Title: title}, ErrNoContent
}

// match returns the first element for sel
func match(doc *goquery.Document, sel string) *goquery.Selection {
	found := doc.Find(sel)
	if sel == "div[class]" {
		found = found.FilterFunction(func(_ int, s *goquery.Selection) bool {
			return strings.Contains(strings.ToLower(s.AttrOr("class", "")), "article")
		})
	}
	return found.First()
}

// collect joins the cleaned blocks that are long enough and reports whether the body qualifies
func collect(blocks *goquery.Selection) (string, bool) {
	var kept []string
	blocks.Each(func(_ int, s *goquery.Selection) {
		if text := normalize.CleanParagraph(s.Text()); normalize.WordCount(text) > minBlockWords {
			kept = append(kept, text)
		}
	})
	joined := strings.Join(kept, " ")
	return joined, normalize.WordCount(joined) > minBodyWords
}
