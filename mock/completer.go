package mock

import (
	"context"

	"github.com/fwojciec/adgen"
)

var _ adgen.Completer = (*Completer)(nil)

// Completer is a mock implementation of adgen.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, prompt string) (string, error)
	ModelFn    func() string
}

func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	return c.CompleteFn(ctx, prompt)
}

func (c *Completer) Model() string {
	if c.ModelFn == nil {
		return "mock-model"
	}
	return c.ModelFn()
}
