// Package readability isolates article content with go-readability.
package readability

import (
	"strings"

	"github.com/fwojciec/adgen"
	"github.com/go-shiori/go-readability"
)

// Ensure Cleaner implements adgen.Cleaner at compile time.
var _ adgen.Cleaner = (*Cleaner)(nil)

// Cleaner wraps go-readability to strip boilerplate around the main article.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean returns the article title and body HTML.
func (c *Cleaner) Clean(rawHTML string) (*adgen.CleanResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, adgen.Errorf(adgen.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &adgen.CleanResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}
