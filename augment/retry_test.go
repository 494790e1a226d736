package augment_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/adgen"
	"github.com/fwojciec/adgen/augment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRetryDelays(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second}, augment.DefaultRetryDelays())
}

func TestCompleteWithRetry(t *testing.T) {
	t.Parallel()

	noDelay := []time.Duration{0, 0}

	t.Run("returns first success without retrying", func(t *testing.T) {
		t.Parallel()

		var calls int
		complete := func(context.Context, string) (string, error) {
			calls++
			return "ok", nil
		}

		text, err := augment.CompleteWithRetry(context.Background(), "p", complete, nil, noDelay)

		require.NoError(t, err)
		assert.Equal(t, "ok", text)
		assert.Equal(t, 1, calls)
	})

	t.Run("waits each delay in order between attempts", func(t *testing.T) {
		t.Parallel()

		delays := []time.Duration{30 * time.Millisecond, 90 * time.Millisecond}
		var calls []time.Time
		complete := func(context.Context, string) (string, error) {
			calls = append(calls, time.Now())
			if len(calls) < 3 {
				return "", adgen.Errorf(adgen.EOVERLOADED, "model overloaded")
			}
			return "ok", nil
		}
		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))

		text, err := augment.CompleteWithRetry(context.Background(), "p", complete, logger, delays)

		require.NoError(t, err)
		assert.Equal(t, "ok", text)
		require.Len(t, calls, 3)
		first, second := calls[1].Sub(calls[0]), calls[2].Sub(calls[1])
		assert.GreaterOrEqual(t, first, delays[0])
		assert.GreaterOrEqual(t, second, delays[1])
		assert.Greater(t, second, first)

		var attempts []int
		var waited []time.Duration
		for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
			var rec struct {
				Attempt int           `json:"attempt"`
				Delay   time.Duration `json:"delay"`
			}
			require.NoError(t, json.Unmarshal([]byte(line), &rec))
			attempts = append(attempts, rec.Attempt)
			waited = append(waited, rec.Delay)
		}
		assert.Equal(t, []int{2, 3}, attempts)
		assert.Equal(t, delays, waited)
	})

	t.Run("retries overload then succeeds", func(t *testing.T) {
		t.Parallel()

		var calls int
		complete := func(context.Context, string) (string, error) {
			calls++
			if calls < 3 {
				return "", adgen.Errorf(adgen.EOVERLOADED, "model overloaded")
			}
			return "ok", nil
		}

		text, err := augment.CompleteWithRetry(context.Background(), "p", complete, nil, noDelay)

		require.NoError(t, err)
		assert.Equal(t, "ok", text)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up after one attempt per delay plus one", func(t *testing.T) {
		t.Parallel()

		var calls int
		complete := func(context.Context, string) (string, error) {
			calls++
			return "", errors.New("503 Service Unavailable")
		}

		_, err := augment.CompleteWithRetry(context.Background(), "p", complete, nil, noDelay)

		require.Error(t, err)
		assert.True(t, adgen.IsOverloaded(err))
		assert.Equal(t, 3, calls)
	})

	t.Run("does not retry other errors", func(t *testing.T) {
		t.Parallel()

		var calls int
		complete := func(context.Context, string) (string, error) {
			calls++
			return "", errors.New("invalid api key")
		}

		_, err := augment.CompleteWithRetry(context.Background(), "p", complete, nil, noDelay)

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("stops when context is canceled during backoff", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		var calls int
		complete := func(context.Context, string) (string, error) {
			calls++
			cancel()
			return "", adgen.Errorf(adgen.EOVERLOADED, "model overloaded")
		}

		_, err := augment.CompleteWithRetry(ctx, "p", complete, nil, []time.Duration{time.Hour})

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, 1, calls)
	})
}
