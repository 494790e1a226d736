package augment

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/adgen"
)

// Warnings attached to results built from fallback content.
const (
	AdsOverloadedWarning      = "AI service is currently overloaded. Using fallback content."
	AdsUnavailableWarning     = "AI service temporarily unavailable. Using fallback content."
	SummaryOverloadedWarning  = "AI service is currently overloaded. Showing fallback summary."
	SummaryUnavailableWarning = "AI service temporarily unavailable. Showing fallback summary."
)

var _ adgen.Generator = (*Generator)(nil)

// Generator asks a Completer for ads and summaries. Overload failures are
// retried with backoff; anything that still fails degrades to fallback
// content with a warning.
type Generator struct {
	Completer   adgen.Completer
	RetryDelays []time.Duration // nil selects DefaultRetryDelays
	Logger      *slog.Logger
}

// GenerateAds returns ads for blocks.
func (g *Generator) GenerateAds(ctx context.Context, blocks []adgen.ContentBlock) adgen.AdsResult {
	text, err := g.complete(ctx, adgen.BuildAdPrompt(blocks))
	if err != nil {
		g.logFallback("ads", err)
		warning := AdsUnavailableWarning
		if adgen.IsOverloaded(err) {
			warning = AdsOverloadedWarning
		}
		return adgen.AdsResult{Ads: adgen.DefaultAds(), Warning: warning}
	}
	return adgen.AdsResult{Ads: adgen.ParseAds(text), AIWorking: true}
}

// GenerateSummary returns a summary of blocks titled title.
func (g *Generator) GenerateSummary(ctx context.Context, blocks []adgen.ContentBlock, title string) adgen.SummaryResult {
	text, err := g.complete(ctx, adgen.BuildSummaryPrompt(blocks, title))
	if err != nil {
		g.logFallback("summary", err)
		warning := SummaryUnavailableWarning
		if adgen.IsOverloaded(err) {
			warning = SummaryOverloadedWarning
		}
		return adgen.SummaryResult{Summary: adgen.FallbackSummary(title, blocks), Warning: warning}
	}
	return adgen.SummaryResult{Summary: adgen.ParseSummary(text), AIWorking: true}
}

func (g *Generator) complete(ctx context.Context, prompt string) (string, error) {
	if g.Completer == nil {
		return "", adgen.Errorf(adgen.EINTERNAL, "no completer configured")
	}
	delays := g.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	return CompleteWithRetry(ctx, prompt, g.Completer.Complete, g.Logger, delays)
}

func (g *Generator) logFallback(kind string, err error) {
	if g.Logger == nil {
		return
	}
	g.Logger.Warn("using fallback content", "kind", kind, "err", err)
}
