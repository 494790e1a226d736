package mock

import (
	"context"

	"github.com/fwojciec/adgen"
)

var _ adgen.Generator = (*Generator)(nil)

// Generator is a mock implementation of adgen.Generator.
type Generator struct {
	GenerateAdsFn     func(ctx context.Context, blocks []adgen.ContentBlock) adgen.AdsResult
	GenerateSummaryFn func(ctx context.Context, blocks []adgen.ContentBlock, title string) adgen.SummaryResult
}

func (g *Generator) GenerateAds(ctx context.Context, blocks []adgen.ContentBlock) adgen.AdsResult {
	return g.GenerateAdsFn(ctx, blocks)
}

func (g *Generator) GenerateSummary(ctx context.Context, blocks []adgen.ContentBlock, title string) adgen.SummaryResult {
	return g.GenerateSummaryFn(ctx, blocks, title)
}

var _ adgen.Augmenter = (*Augmenter)(nil)

// Augmenter is a mock implementation of adgen.Augmenter.
type Augmenter struct {
	ProcessFn   func(ctx context.Context, url string) (*adgen.Processed, error)
	SummarizeFn func(ctx context.Context, url string) (*adgen.Summarized, error)
}

func (a *Augmenter) Process(ctx context.Context, url string) (*adgen.Processed, error) {
	return a.ProcessFn(ctx, url)
}

func (a *Augmenter) Summarize(ctx context.Context, url string) (*adgen.Summarized, error) {
	return a.SummarizeFn(ctx, url)
}
