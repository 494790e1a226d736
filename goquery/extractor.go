// Package goquery implements adgen.Extractor with CSS selectors over a
// parsed DOM.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/adgen"
)

// Ensure Extractor implements adgen.Extractor at compile time.
var _ adgen.Extractor = (*Extractor)(nil)

const (
	// boilerplateSelectors are removed before any text is read.
	boilerplateSelectors = "script, style, nav, header, footer, .advertisement, .ads, .social-share"

	// blockSelectors are scanned first, in document order.
	blockSelectors = "p, h1, h2, h3, h4, h5, h6"

	// containerSelectors hint at article bodies on pages whose text is not in
	// top-level paragraphs the primary pass can see.
	containerSelectors = `div[class*="content"], div[class*="article"], div[class*="post"], div[class*="story"]`
	containerBlocks    = "p, h1, h2, h3"
)

// NoContentMessage is reported when no readable block is found.
const NoContentMessage = "No readable content found on this page. The page might be behind a paywall or use dynamic content loading."

// Extractor extracts headings and paragraphs from HTML.
type Extractor struct {
	cleaner   adgen.Cleaner
	minLength int
	maxBlocks int
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithCleaner runs the cleaner over raw HTML before blocks are scanned.
// If the cleaner fails or returns no content, the raw HTML is scanned.
func WithCleaner(c adgen.Cleaner) Option {
	return func(e *Extractor) {
		e.cleaner = c
	}
}

// WithMaxBlocks sets the number of blocks kept.
// Defaults to adgen.MaxBlocks if not specified.
func WithMaxBlocks(n int) Option {
	return func(e *Extractor) {
		e.maxBlocks = n
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		minLength: adgen.MinTextLength,
		maxBlocks: adgen.MaxBlocks,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses HTML and returns the page title and its text blocks.
// Blocks come from p and h1-h6 elements outside boilerplate. If none
// qualify, headings and paragraphs inside content-like containers of the
// same stripped document are tried. Returns ENOCONTENT when both passes come
// up empty.
func (e *Extractor) Extract(rawHTML string) (*adgen.ExtractResult, error) {
	doc, err := parse(rawHTML, boilerplateSelectors)
	if err != nil {
		return nil, err
	}
	title := pageTitle(doc)

	if e.cleaner != nil {
		if cleaned, err := e.cleaner.Clean(rawHTML); err == nil && strings.TrimSpace(cleaned.ContentHTML) != "" {
			if t := strings.TrimSpace(cleaned.Title); t != "" {
				title = t
			}
			if doc, err = parse(cleaned.ContentHTML, boilerplateSelectors); err != nil {
				return nil, err
			}
		}
	}

	blocks := e.collect(doc.Find(blockSelectors))
	if len(blocks) == 0 {
		blocks = e.collect(doc.Find(containerSelectors).Find(containerBlocks))
	}
	if len(blocks) == 0 {
		return nil, adgen.Errorf(adgen.ENOCONTENT, NoContentMessage)
	}

	if e.maxBlocks > 0 && len(blocks) > e.maxBlocks {
		blocks = blocks[:e.maxBlocks]
	}

	return &adgen.ExtractResult{
		Title:  title,
		Blocks: blocks,
	}, nil
}

// parse builds a document from html with the elements matching strip removed.
func parse(html, strip string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, adgen.Errorf(adgen.ENOCONTENT, "failed to parse HTML: %v", err)
	}
	doc.Find(strip).Remove()
	return doc, nil
}

// collect converts a selection into blocks, keeping only those whose trimmed
// text is longer than the minimum length.
func (e *Extractor) collect(sel *goquery.Selection) []adgen.ContentBlock {
	var blocks []adgen.ContentBlock
	sel.Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if utf8.RuneCountInString(text) <= e.minLength {
			return
		}
		blocks = append(blocks, adgen.NewContentBlock(adgen.Tag(goquery.NodeName(s)), text))
	})
	return blocks
}

// pageTitle returns the <title> text, the first <h1> text, or the default.
func pageTitle(doc *goquery.Document) string {
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}
	return adgen.DefaultTitle
}
