package gemini_test

import (
	"context"
	"testing"

	"github.com/fwojciec/adgen"
	"github.com/fwojciec/adgen/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCounter(t *testing.T) {
	t.Parallel()

	tc, err := gemini.NewTokenCounter("gemini-2.0-flash")
	require.NoError(t, err)

	t.Run("empty prompt is zero", func(t *testing.T) {
		t.Parallel()

		n, err := tc.CountTokens(context.Background(), "")

		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("ad prompt grows with page text", func(t *testing.T) {
		t.Parallel()

		ctx := context.Background()
		short := adgen.BuildAdPrompt([]adgen.ContentBlock{{Tag: adgen.TagP, Text: "Tea."}})
		long := adgen.BuildAdPrompt([]adgen.ContentBlock{
			{Tag: adgen.TagH1, Text: "Brewing green tea"},
			{Tag: adgen.TagP, Text: "Water just off the boil scorches the leaves, so let it rest for a minute first."},
		})

		shortCount, err := tc.CountTokens(ctx, short)
		require.NoError(t, err)
		longCount, err := tc.CountTokens(ctx, long)
		require.NoError(t, err)

		assert.Positive(t, shortCount)
		assert.Greater(t, longCount, shortCount)
	})

	t.Run("count includes system instruction", func(t *testing.T) {
		t.Parallel()

		n, err := tc.CountTokens(context.Background(), "Hi")

		require.NoError(t, err)
		assert.Greater(t, n, 5)
	})
}

func TestNewTokenCounter_UnknownModel(t *testing.T) {
	t.Parallel()

	_, err := gemini.NewTokenCounter("not-a-real-model")

	require.Error(t, err)
	assert.Equal(t, adgen.EINVALID, adgen.ErrorCode(err))
}
