// Package parser turns an HTML page into plain text and a naive paragraph
// list, the input format of the enrichment pipeline.
package parser

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
	"golang.org/x/text/unicode/norm"
)

// boilerplateTags never carry article text.
const boilerplateTags = "script, style, header, footer, nav, aside, img, figure, noscript, iframe"

// blockSelector lists the elements that become lines of text.
const blockSelector = "h1, h2, h3, h4, h5, h6, p, li, pre, blockquote, td, th, dt, dd, figcaption, caption"

type Parser struct{}

// Extraction is the text content of one page.
type Extraction struct {
	Title      string
	RawText    string
	Paragraphs []string
}

// Extract strips boilerplate elements from html, lets readability pick the
// main content (falling back to the stripped body) and splits the text into
// paragraphs.
func (p *Parser) Extract(html string, pageURL *url.URL) (*Extraction, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	title := normalizeText(doc.Find("title").First().Text())

	doc.Find(boilerplateTags).Remove()
	stripped, err := doc.Html()
	if err != nil {
		return nil, fmt.Errorf("failed to render stripped HTML: %w", err)
	}

	text := ""
	rp := readability.NewParser()
	article, err := rp.Parse(strings.NewReader(stripped), pageURL)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		if t := normalizeText(article.Title); t != "" {
			title = t
		}
		content, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
		if err == nil {
			text = blockText(content.Selection)
		}
	}
	if strings.TrimSpace(text) == "" {
		text = blockText(doc.Find("body"))
	}

	raw := NormalizeLines(text)
	return &Extraction{
		Title:      title,
		RawText:    raw,
		Paragraphs: SplitParagraphs(raw),
	}, nil
}

// blockText renders every outermost block element of sel as one line. If sel
// has no block elements its whole text is used.
func blockText(sel *goquery.Selection) string {
	var lines []string
	sel.Find(blockSelector).Each(func(i int, s *goquery.Selection) {
		if s.ParentsFiltered(blockSelector).Length() > 0 {
			return
		}
		if line := normalizeText(s.Text()); line != "" {
			lines = append(lines, line)
		}
	})
	if len(lines) == 0 {
		return sel.Text()
	}
	return strings.Join(lines, "\n\n")
}

// normalizeText collapses all whitespace runs to single spaces.
func normalizeText(input string) string {
	return strings.Join(strings.Fields(input), " ")
}

// NormalizeLines NFC-normalizes and trims each line and drops empty lines.
func NormalizeLines(text string) string {
	var lines []string
	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, norm.NFC.String(line))
	}
	return strings.Join(lines, "\n")
}

var blankLines = regexp.MustCompile(`\n\s*\n+`)

// SplitParagraphs splits on blank lines; when that yields at most one
// paragraph every non-empty line becomes its own paragraph.
func SplitParagraphs(text string) []string {
	paragraphs := []string{}
	for _, p := range blankLines.Split(text, -1) {
		if p = strings.TrimSpace(p); p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	if len(paragraphs) > 1 {
		return paragraphs
	}

	paragraphs = []string{}
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			paragraphs = append(paragraphs, line)
		}
	}
	return paragraphs
}
