package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/adgen"
	"github.com/fwojciec/adgen/mock"
	adgenslog "github.com/fwojciec/adgen/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html>content</html>", nil
			},
		}

		fetcher := adgenslog.NewLoggingFetcher(inner, logger)
		html, err := fetcher.Fetch(context.Background(), "https://example.com/article")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", html)
		output := buf.String()
		assert.Contains(t, output, "msg=fetch")
		assert.Contains(t, output, "url=https://example.com/article")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
		assert.NotContains(t, output, "code=")
	})

	t.Run("logs error code on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", adgen.Errorf(adgen.ETIMEOUT, "Request timed out - server took too long to respond")
			},
		}

		fetcher := adgenslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://example.com/slow")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "code=timeout")
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	closeCalled := false
	inner := &mock.Fetcher{
		CloseFn: func() error {
			closeCalled = true
			return errors.New("close failed")
		},
	}

	err := adgenslog.NewLoggingFetcher(inner, slog.New(slog.DiscardHandler)).Close()

	require.EqualError(t, err, "close failed")
	assert.True(t, closeCalled)
}
