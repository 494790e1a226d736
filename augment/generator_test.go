package augment_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/fwojciec/adgen"
	"github.com/fwojciec/adgen/augment"
	"github.com/fwojciec/adgen/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const adsResponse = `AD 1:
Headline: Trail Shoes on Sale
Text: Lightweight grip for muddy miles.
CTA: Shop Shoes

AD 2:
Headline: Hydration Packs
Text: Carry two liters without the bounce.
CTA: See Packs`

const summaryResponse = `SUMMARY:
Trail running rewards patience. Start slow on technical terrain.

KEY POINTS:
• Shorten your stride on climbs
• Walk steep sections
• Carry water on long runs

ADVERTISEMENT:
Headline: Trail Running Club
Text: Weekly group runs for every pace.
CTA: Join Free`

func blocks() []adgen.ContentBlock {
	return []adgen.ContentBlock{
		adgen.NewContentBlock(adgen.TagH1, "Getting into trail running"),
		adgen.NewContentBlock(adgen.TagP, "Trail running is slower than road running and that is fine."),
		adgen.NewContentBlock(adgen.TagH2, "Technique on climbs"),
		adgen.NewContentBlock(adgen.TagP, "Short steps and an upright posture save energy on steep grades."),
	}
}

func TestGenerator_GenerateAds(t *testing.T) {
	t.Parallel()

	t.Run("parses model response", func(t *testing.T) {
		t.Parallel()

		var prompt string
		g := &augment.Generator{
			Completer: &mock.Completer{
				CompleteFn: func(_ context.Context, p string) (string, error) {
					prompt = p
					return adsResponse, nil
				},
			},
			RetryDelays: []time.Duration{0, 0},
		}

		result := g.GenerateAds(context.Background(), blocks())

		assert.True(t, result.AIWorking)
		assert.Empty(t, result.Warning)
		require.Len(t, result.Ads, 2)
		assert.Equal(t, "Trail Shoes on Sale", result.Ads[0].Headline)
		assert.Equal(t, "See Packs", result.Ads[1].CallToAction)
		assert.Contains(t, prompt, "Getting into trail running")
	})

	t.Run("recovers after two overloads", func(t *testing.T) {
		t.Parallel()

		var calls int
		g := &augment.Generator{
			Completer: &mock.Completer{
				CompleteFn: func(context.Context, string) (string, error) {
					calls++
					if calls <= 2 {
						return "", errors.New("Error 503, Message: The model is overloaded")
					}
					return adsResponse, nil
				},
			},
			RetryDelays: []time.Duration{0, 0},
		}

		result := g.GenerateAds(context.Background(), blocks())

		assert.True(t, result.AIWorking)
		assert.Empty(t, result.Warning)
		assert.Equal(t, 3, calls)
	})

	t.Run("falls back with overload warning after retries", func(t *testing.T) {
		t.Parallel()

		var calls int
		g := &augment.Generator{
			Completer: &mock.Completer{
				CompleteFn: func(context.Context, string) (string, error) {
					calls++
					return "", adgen.Errorf(adgen.EOVERLOADED, "model overloaded")
				},
			},
			RetryDelays: []time.Duration{0, 0},
		}

		result := g.GenerateAds(context.Background(), blocks())

		assert.False(t, result.AIWorking)
		assert.Equal(t, augment.AdsOverloadedWarning, result.Warning)
		assert.Equal(t, adgen.DefaultAds(), result.Ads)
		assert.Equal(t, 3, calls)
	})

	t.Run("falls back with unavailable warning on other errors", func(t *testing.T) {
		t.Parallel()

		var calls int
		g := &augment.Generator{
			Completer: &mock.Completer{
				CompleteFn: func(context.Context, string) (string, error) {
					calls++
					return "", errors.New("permission denied")
				},
			},
			RetryDelays: []time.Duration{0, 0},
		}

		result := g.GenerateAds(context.Background(), blocks())

		assert.False(t, result.AIWorking)
		assert.Equal(t, augment.AdsUnavailableWarning, result.Warning)
		assert.Len(t, result.Ads, 1)
		assert.Equal(t, 1, calls)
	})

	t.Run("falls back without a completer", func(t *testing.T) {
		t.Parallel()

		result := (&augment.Generator{}).GenerateAds(context.Background(), blocks())

		assert.False(t, result.AIWorking)
		assert.Equal(t, augment.AdsUnavailableWarning, result.Warning)
	})
}

func TestGenerator_GenerateSummary(t *testing.T) {
	t.Parallel()

	t.Run("parses model response", func(t *testing.T) {
		t.Parallel()

		var prompt string
		g := &augment.Generator{
			Completer: &mock.Completer{
				CompleteFn: func(_ context.Context, p string) (string, error) {
					prompt = p
					return summaryResponse, nil
				},
			},
			RetryDelays: []time.Duration{0, 0},
		}

		result := g.GenerateSummary(context.Background(), blocks(), "Trail Running 101")

		assert.True(t, result.AIWorking)
		assert.Empty(t, result.Warning)
		assert.Equal(t, "Trail running rewards patience. Start slow on technical terrain.", result.Summary.Text)
		assert.Len(t, result.Summary.KeyPoints, 3)
		assert.Equal(t, "Trail Running Club", result.Summary.Ad.Headline)
		assert.Contains(t, prompt, "Trail Running 101")
	})

	t.Run("falls back to page-derived summary when overloaded", func(t *testing.T) {
		t.Parallel()

		g := &augment.Generator{
			Completer: &mock.Completer{
				CompleteFn: func(context.Context, string) (string, error) {
					return "", errors.New("model is overloaded")
				},
			},
			RetryDelays: []time.Duration{0, 0},
		}

		result := g.GenerateSummary(context.Background(), blocks(), "Trail Running 101")

		assert.False(t, result.AIWorking)
		assert.Equal(t, augment.SummaryOverloadedWarning, result.Warning)
		assert.Equal(t, adgen.FallbackSummary("Trail Running 101", blocks()), result.Summary)
		assert.Contains(t, result.Summary.Text, "Trail Running 101")
	})

	t.Run("falls back with unavailable warning on other errors", func(t *testing.T) {
		t.Parallel()

		g := &augment.Generator{
			Completer: &mock.Completer{
				CompleteFn: func(context.Context, string) (string, error) {
					return "", errors.New("quota exceeded")
				},
			},
			RetryDelays: []time.Duration{0, 0},
		}

		result := g.GenerateSummary(context.Background(), blocks(), "Trail Running 101")

		assert.False(t, result.AIWorking)
		assert.Equal(t, augment.SummaryUnavailableWarning, result.Warning)
	})
}
