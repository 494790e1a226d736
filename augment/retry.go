package augment

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/adgen"
)

// CompleteFunc is the signature for a completion call.
type CompleteFunc func(ctx context.Context, prompt string) (string, error)

// DefaultRetryDelays returns the backoff delays for overload retries: 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{2 * time.Second, 4 * time.Second}
}

// CompleteWithRetry calls complete and retries it once per entry in delays,
// waiting that long first. Only overload failures are retried; any other
// error is returned at once. The logger, if non-nil, records each retry.
func CompleteWithRetry(ctx context.Context, prompt string, complete CompleteFunc, logger *slog.Logger, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		text, err := complete(ctx, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if !adgen.IsOverloaded(err) || attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		if logger != nil {
			logger.Warn("model overloaded, retrying",
				"attempt", attempt+2,
				"delay", delays[attempt],
				"err", err,
			)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
