// Package augment runs the page augmentation pipeline: fetch a URL,
// extract its readable blocks, then generate ads or a summary for them.
package augment

import (
	"context"
	"net/url"
	"strings"

	"github.com/fwojciec/adgen"
)

var _ adgen.Augmenter = (*Service)(nil)

// Service implements adgen.Augmenter.
type Service struct {
	Fetcher   adgen.Fetcher
	Extractor adgen.Extractor
	Generator adgen.Generator
}

// Process fetches rawURL, extracts its content and merges generated ads.
func (s *Service) Process(ctx context.Context, rawURL string) (*adgen.Processed, error) {
	target, extracted, err := s.load(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	ads := s.Generator.GenerateAds(ctx, extracted.Blocks)
	return &adgen.Processed{
		URL:    target,
		Title:  extracted.Title,
		Blocks: extracted.Blocks,
		Merged: adgen.Merge(extracted.Blocks, ads.Ads),
		Ads:    ads,
	}, nil
}

// Summarize fetches rawURL, extracts its content and generates a summary.
func (s *Service) Summarize(ctx context.Context, rawURL string) (*adgen.Summarized, error) {
	target, extracted, err := s.load(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	return &adgen.Summarized{
		URL:     target,
		Title:   extracted.Title,
		Blocks:  extracted.Blocks,
		Summary: s.Generator.GenerateSummary(ctx, extracted.Blocks, extracted.Title),
	}, nil
}

func (s *Service) load(ctx context.Context, rawURL string) (string, *adgen.ExtractResult, error) {
	target, err := ValidateURL(rawURL)
	if err != nil {
		return "", nil, err
	}

	html, err := s.Fetcher.Fetch(ctx, target)
	if err != nil {
		return "", nil, err
	}

	extracted, err := s.Extractor.Extract(html)
	if err != nil {
		return "", nil, err
	}
	return target, extracted, nil
}

// ValidateURL trims rawURL and checks that it is an absolute http(s) URL.
func ValidateURL(rawURL string) (string, error) {
	target := strings.TrimSpace(rawURL)
	if target == "" {
		return "", adgen.Errorf(adgen.EINVALID, "URL required")
	}
	u, err := url.Parse(target)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", adgen.Errorf(adgen.EINVALID, "URL must be an absolute http or https address")
	}
	return target, nil
}
