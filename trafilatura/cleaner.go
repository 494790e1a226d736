// Package trafilatura isolates article content with go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/adgen"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Cleaner implements adgen.Cleaner at compile time.
var _ adgen.Cleaner = (*Cleaner)(nil)

// Cleaner wraps go-trafilatura to strip boilerplate around the main article.
type Cleaner struct {
	opts trafilatura.Options
}

// NewCleaner creates a new Cleaner with trafilatura's fallback extractors
// enabled.
func NewCleaner() *Cleaner {
	return &Cleaner{
		opts: trafilatura.Options{
			EnableFallback: true,
		},
	}
}

// Clean returns the article title and body HTML.
func (c *Cleaner) Clean(rawHTML string) (*adgen.CleanResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, adgen.Errorf(adgen.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), c.opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		var buf bytes.Buffer
		if err := html.Render(&buf, result.ContentNode); err != nil {
			return nil, err
		}
		contentHTML = buf.String()
	}

	return &adgen.CleanResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}
