package adgen

import "context"

// AdsResult is the outcome of ad generation. When the model could not be
// used, Ads holds fallback content, AIWorking is false and Warning says why.
type AdsResult struct {
	Ads       []Ad
	AIWorking bool
	Warning   string
}

// SummaryResult is the outcome of summary generation.
type SummaryResult struct {
	Summary   Summary
	AIWorking bool
	Warning   string
}

// Generator produces ads and summaries for extracted content.
// Implementations never fail: model errors degrade to fallback content.
type Generator interface {
	GenerateAds(ctx context.Context, blocks []ContentBlock) AdsResult
	GenerateSummary(ctx context.Context, blocks []ContentBlock, title string) SummaryResult
}

// Processed is a page with ads merged into its content.
type Processed struct {
	URL    string
	Title  string
	Blocks []ContentBlock
	Merged []MergedBlock
	Ads    AdsResult
}

// Summarized is a page with a generated summary.
type Summarized struct {
	URL     string
	Title   string
	Blocks  []ContentBlock
	Summary SummaryResult
}

// Augmenter runs the fetch, extract, generate pipeline for a URL.
type Augmenter interface {
	// Process fetches url, extracts its content and merges generated ads.
	// Returns EINVALID for a missing URL and a fetch or extraction code when
	// the page cannot be read.
	Process(ctx context.Context, url string) (*Processed, error)

	// Summarize fetches url, extracts its content and generates a summary.
	Summarize(ctx context.Context, url string) (*Summarized, error)
}
