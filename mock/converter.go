package mock

import "github.com/fwojciec/adgen"

var _ adgen.Converter = (*Converter)(nil)

// Converter is a mock implementation of adgen.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
