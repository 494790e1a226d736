package mock

import "github.com/fwojciec/adgen"

var _ adgen.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of adgen.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*adgen.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*adgen.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ adgen.Cleaner = (*Cleaner)(nil)

// Cleaner is a mock implementation of adgen.Cleaner.
type Cleaner struct {
	CleanFn func(html string) (*adgen.CleanResult, error)
}

func (c *Cleaner) Clean(html string) (*adgen.CleanResult, error) {
	return c.CleanFn(html)
}
